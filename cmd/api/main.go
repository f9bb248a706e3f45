package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stallworks/stallpos-api/internal/application/service"
	"github.com/stallworks/stallpos-api/internal/config"
	"github.com/stallworks/stallpos-api/internal/infrastructure/database"
	infraRepo "github.com/stallworks/stallpos-api/internal/infrastructure/repository"
	"github.com/stallworks/stallpos-api/internal/presentation/http/handler"
	"github.com/stallworks/stallpos-api/internal/presentation/http/routes"
	"github.com/stallworks/stallpos-api/pkg/email"
	"github.com/stallworks/stallpos-api/pkg/printer"
	"github.com/stallworks/stallpos-api/pkg/utils"
)

func main() {
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if cfg.Database.SeedMenu {
		if err := database.SeedDefaultMenu(db); err != nil {
			log.Fatalf("Failed to seed menu: %v", err)
		}
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours, cfg.JWT.RefreshExpiryHours)

	// Repositories
	menuRepo := infraRepo.NewMenuRepository(db)
	saleRepo := infraRepo.NewSaleRepository(db)
	idempotencyRepo := infraRepo.NewIdempotencyRepository(db)

	// Expired idempotency keys pile up one per completed sale; sweep them
	// hourly so the table stays small.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: idempotency key cleanup failed: %v", err)
			}
		}
	}()

	// Receipt printer is optional hardware; fall back to the null printer
	// so a missing device never blocks sales.
	receiptPrinter, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Printf("Warning: printer unavailable, receipts disabled: %v", err)
		receiptPrinter = printer.NewNullPrinter()
	}
	defer receiptPrinter.Close()

	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		OwnerEmail:   cfg.Email.OwnerEmail,
	})

	// Services
	authService, err := service.NewAuthService(&cfg.Auth, jwtManager)
	if err != nil {
		log.Fatalf("Failed to initialise auth service: %v", err)
	}
	catalogService := service.NewCatalogService(menuRepo)
	receiptService := service.NewReceiptService(receiptPrinter, cfg.App.Name, cfg.Printer.CharWidth)
	billService := service.NewBillService(menuRepo, saleRepo, receiptService)
	reportService := service.NewReportService(saleRepo)
	exportService := service.NewExportService(reportService, cfg.Export.Dir, cfg.App.Name)
	maintenanceService := service.NewMaintenanceService(saleRepo, authService)

	// Handlers
	h := routes.Handlers{
		Auth:   handler.NewAuthHandler(authService),
		Menu:   handler.NewMenuHandler(catalogService),
		Bill:   handler.NewBillHandler(billService),
		Sale:   handler.NewSaleHandler(reportService),
		Report: handler.NewReportHandler(reportService, exportService, maintenanceService, emailService, cfg.App.Name),
	}

	router := routes.Setup(cfg, jwtManager, idempotencyRepo, h)

	log.Printf("%s listening on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
