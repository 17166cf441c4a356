package router

import (
	"github.com/bijalsangnaach/academy-backend/config"
	"github.com/bijalsangnaach/academy-backend/handlers"
	"github.com/bijalsangnaach/academy-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config         *config.Config
	InquiryHandler *handlers.InquiryHandler
	HealthHandler  *handlers.HealthHandler
	Logger         *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	// Global Middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Inquiry submission endpoints. Paths mirror the website's API routes.
	api := r.Group("/api")
	{
		api.POST("/inquiry", deps.InquiryHandler.SubmitRegistration)
		api.POST("/inquiry/contact", deps.InquiryHandler.SubmitContact)
	}

	return r
}
