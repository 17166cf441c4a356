package middleware

import (
	"strconv"

	apperrors "github.com/bijalsangnaach/academy-backend/errors"
	"github.com/bijalsangnaach/academy-backend/logger"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the generic error shape rendered for errors attached to
// the gin context. The inquiry endpoints write their own legacy response
// shapes directly; this middleware is the catch-all for everything else.
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*apperrors.AppError); ok {
			statusCode := appError.GetHTTPStatus()

			log.Errorw("Request failed",
				"error_type", string(appError.Type),
				"error_message", appError.Message,
				"status_code", statusCode,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"client_ip", c.ClientIP(),
				"request_id", c.GetString(RequestIDKey))

			response := ErrorResponse{
				Type:    string(appError.Type),
				Message: appError.Message,
				Code:    strconv.Itoa(statusCode),
			}

			// Only expose details for user-correctable errors or in debug mode
			if appError.Detail != "" && (gin.IsDebugging() || appError.Type == apperrors.ValidationError) {
				response.Details = appError.Detail
			}

			c.JSON(statusCode, response)
			return
		}

		// Gin binding errors surface as validation failures
		if c.Errors.Last().Type == gin.ErrorTypeBind {
			log.Warnw("Request binding error", "error", err, "path", c.Request.URL.Path)

			response := ErrorResponse{
				Type:    string(apperrors.ValidationError),
				Message: "Failed to bind request",
				Code:    "400",
			}
			if gin.IsDebugging() {
				response.Details = err.Error()
			}
			c.JSON(400, response)
			return
		}

		// Unknown errors
		log.Errorw("Unexpected server error", "error", err, "path", c.Request.URL.Path)

		response := ErrorResponse{
			Type:    string(apperrors.ServerError),
			Message: "Internal Server Error",
			Code:    "500",
		}
		if gin.IsDebugging() {
			response.Details = err.Error()
		}
		c.JSON(500, response)
	}
}
