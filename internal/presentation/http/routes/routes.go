package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pmoura/purchases-api/internal/config"
	"github.com/pmoura/purchases-api/internal/presentation/http/handler"
	"github.com/pmoura/purchases-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Customer *handler.CustomerHandler
	Product  *handler.ProductHandler
	Purchase *handler.PurchaseHandler
	Report   *handler.ReportHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter.Middleware())
	{
		customers := v1.Group("/customers")
		{
			customers.POST("", h.Customer.Create)
			customers.GET("", h.Customer.List)
			customers.GET("/best-buyers", h.Report.BestBuyers)
			customers.GET("/:id", h.Customer.Get)
			customers.PATCH("/:id", h.Customer.Update)
			customers.DELETE("/:id", h.Customer.Delete)
		}

		products := v1.Group("/products")
		{
			products.POST("", h.Product.Create)
			products.GET("", h.Product.List)
			products.GET("/best-sellers", h.Report.BestSellers)
			products.GET("/:id", h.Product.Get)
			products.PATCH("/:id", h.Product.Update)
			products.DELETE("/:id", h.Product.Delete)
		}

		purchases := v1.Group("/purchases")
		{
			purchases.POST("", h.Purchase.Create)
			purchases.GET("", h.Purchase.List)
			purchases.GET("/:id", h.Purchase.Get)
			purchases.PATCH("/:id", h.Purchase.Update)
			purchases.DELETE("/:id", h.Purchase.Delete)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/purchase-volume", h.Report.PurchaseVolume)
		}
	}

	return router
}
