package main

import (
	"github.com/gin-gonic/gin"
	"github.com/pmoura/purchases-api/internal/application/service"
	"github.com/pmoura/purchases-api/internal/config"
	"github.com/pmoura/purchases-api/internal/infrastructure/database"
	"github.com/pmoura/purchases-api/internal/infrastructure/repository"
	"github.com/pmoura/purchases-api/internal/logger"
	"github.com/pmoura/purchases-api/internal/presentation/http/handler"
	"github.com/pmoura/purchases-api/internal/presentation/http/routes"
)

func main() {
	logger.Init()

	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.AutoMigrate(db); err != nil {
		logger.L().Fatal().Err(err).Msg("failed to run migrations")
	}

	// Repositories
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Services
	customerService := service.NewCustomerService(customerRepo)
	productService := service.NewProductService(productRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo, productRepo, customerRepo)
	reportService := service.NewReportService(analyticsRepo)

	// Handlers
	handlers := &routes.Handlers{
		Customer: handler.NewCustomerHandler(customerService),
		Product:  handler.NewProductHandler(productService),
		Purchase: handler.NewPurchaseHandler(purchaseService),
		Report:   handler.NewReportHandler(reportService),
	}

	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logger.L().Info().Str("service", cfg.App.Name).Str("port", port).Str("env", cfg.App.Env).Msg("starting server")

	if err := router.Run(":" + port); err != nil {
		logger.L().Fatal().Err(err).Msg("server exited")
	}
}
