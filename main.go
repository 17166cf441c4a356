package main

import (
	"github.com/bijalsangnaach/academy-backend/config"
	"github.com/bijalsangnaach/academy-backend/handlers"
	"github.com/bijalsangnaach/academy-backend/logger"
	"github.com/bijalsangnaach/academy-backend/router"
	"github.com/bijalsangnaach/academy-backend/services"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Services
	emailService := services.NewEmailService(&cfg.Email)

	// Handlers
	inquiryHandler := handlers.NewInquiryHandler(emailService, &cfg.Email)
	healthHandler := handlers.NewHealthHandler(cfg)

	// Router setup
	r := router.SetupRouter(router.Dependencies{
		Config:         cfg,
		InquiryHandler: inquiryHandler,
		HealthHandler:  healthHandler,
		Logger:         log,
	})

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
