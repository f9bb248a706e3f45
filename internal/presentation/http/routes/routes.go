package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stallworks/stallpos-api/internal/config"
	"github.com/stallworks/stallpos-api/internal/domain/repository"
	"github.com/stallworks/stallpos-api/internal/presentation/http/handler"
	"github.com/stallworks/stallpos-api/internal/presentation/http/middleware"
	"github.com/stallworks/stallpos-api/pkg/utils"
)

// Handlers groups all HTTP handlers for route registration
type Handlers struct {
	Auth   *handler.AuthHandler
	Menu   *handler.MenuHandler
	Bill   *handler.BillHandler
	Sale   *handler.SaleHandler
	Report *handler.ReportHandler
}

// Setup configures the router with all application routes
func Setup(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	idempotencyRepo repository.IdempotencyRepository,
	h Handlers,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(jwtManager))
		protected.Use(rateLimiter.Middleware())
		{
			menu := protected.Group("/menu")
			{
				menu.GET("", h.Menu.List)
				menu.POST("", h.Menu.Create)
				menu.DELETE("/:id", h.Menu.Delete)
			}

			bill := protected.Group("/bill")
			{
				bill.GET("", h.Bill.Get)
				bill.POST("/items", h.Bill.AddItem)
				bill.DELETE("/items/:index", h.Bill.RemoveUnit)
				bill.PUT("/payment", h.Bill.SetPayment)
				bill.DELETE("", h.Bill.Void)
				bill.POST("/complete", middleware.IdempotencyRequired(idempotencyRepo), h.Bill.Complete)
			}

			protected.GET("/sales", h.Sale.List)
			protected.GET("/sales/:id", h.Sale.Get)

			reports := protected.Group("/reports")
			{
				reports.GET("/:date", h.Report.Get)
				reports.GET("/:date/export", h.Report.Export)
				reports.POST("/:date/email", h.Report.Email)
				reports.DELETE("/:date", h.Report.Purge)
			}
		}
	}

	return router
}
