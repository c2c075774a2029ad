package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/kibetdev/salespulse-api/internal/application/analytics"
	"github.com/kibetdev/salespulse-api/internal/application/service"
	"github.com/kibetdev/salespulse-api/internal/config"
	"github.com/kibetdev/salespulse-api/internal/infrastructure/database"
	"github.com/kibetdev/salespulse-api/internal/infrastructure/repository"
	"github.com/kibetdev/salespulse-api/internal/presentation/http/handler"
	"github.com/kibetdev/salespulse-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	saleRepo := repository.NewSaleRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Initialize services
	snapshotCache := analytics.NewSnapshotCache(cfg.Analytics.CacheMaxEntries, cfg.Analytics.CacheTTL)
	analyticsService := service.NewAnalyticsService(saleRepo, snapshotCache, cfg.Analytics.TopProductsLimit)
	saleService := service.NewSaleService(saleRepo, productRepo)
	productService := service.NewProductService(productRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Sale:      handler.NewSaleHandler(saleService),
		Product:   handler.NewProductHandler(productService),
	}

	// Setup router and start server
	router := routes.Setup(handlers, cfg)

	addr := ":" + cfg.App.Port
	log.Printf("Starting %s on %s (env=%s)", cfg.App.Name, addr, cfg.App.Env)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
