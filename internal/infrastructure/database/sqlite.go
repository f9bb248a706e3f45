package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stallworks/stallpos-api/internal/config"
	"github.com/stallworks/stallpos-api/internal/domain/entity"
)

// NewSQLiteDB opens the local SQLite database, creating parent directories
// as needed. The stall runs on a single machine, so a single-file store is
// the whole persistence layer.
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// SQLite serializes writes; a single connection avoids SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	log.Printf("Connected to SQLite database at %s", cfg.Path)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Catalog
		&entity.MenuItem{},

		// Ledger
		&entity.Sale{},
		&entity.SaleItem{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultMenu seeds a small starter menu on an empty catalog.
// Gated by config so a fresh production install can start blank.
func SeedDefaultMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding starter menu...")

	items := []entity.MenuItem{
		{Name: "Tea", Price: 20},
		{Name: "Coffee", Price: 30},
		{Name: "Samosa", Price: 15},
		{Name: "Sandwich", Price: 60},
	}

	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			log.Printf("Warning: failed to seed menu item %s: %v", items[i].Name, err)
		}
	}

	return nil
}
