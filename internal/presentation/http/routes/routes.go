package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kibetdev/salespulse-api/internal/config"
	"github.com/kibetdev/salespulse-api/internal/presentation/http/handler"
	"github.com/kibetdev/salespulse-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Analytics *handler.AnalyticsHandler
	Sale      *handler.SaleHandler
	Product   *handler.ProductHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		// Analytics
		v1.GET("/analytics", h.Analytics.GetSnapshot)
		v1.GET("/analytics/top-products", h.Analytics.GetTopProducts)

		// Sales
		v1.POST("/sales", h.Sale.Create)
		v1.GET("/sales", h.Sale.List)
		v1.GET("/sales/:id", h.Sale.Get)
		v1.DELETE("/sales/:id", h.Sale.Delete)

		// Product catalog
		v1.POST("/products", h.Product.Create)
		v1.GET("/products", h.Product.List)
		v1.GET("/products/:id", h.Product.Get)
		v1.PATCH("/products/:id", h.Product.Update)
		v1.DELETE("/products/:id", h.Product.Delete)
	}

	return router
}
