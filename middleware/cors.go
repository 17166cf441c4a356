package middleware

import (
	"time"

	"github.com/bijalsangnaach/academy-backend/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware creates a middleware for handling CORS with the given
// configuration. The inquiry endpoints are called cross-origin from the
// static site, so the allowed origins come from deployment config.
func CORSMiddleware(cfg *config.ServerConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Length",
			"Content-Type",
			"X-Requested-With",
			"Accept",
		},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) > 0 && !containsOrigin(cfg.AllowedOrigins, "*") {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}

	return cors.New(corsConfig)
}

func containsOrigin(origins []string, target string) bool {
	for _, o := range origins {
		if o == target {
			return true
		}
	}
	return false
}
