package middleware

import (
	"net/http"
	"time"

	"recruitdesk/pkg/models"
	"recruitdesk/pkg/utils"

	"github.com/labstack/echo/v4"
)

// maxBodySize bounds JSON and multipart request bodies (resume uploads
// included)
const maxBodySize = 8 * 1024 * 1024

// RequestValidation middleware validates incoming requests
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Add request ID to context
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			// Content length validation for mutating requests
			switch c.Request().Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				if c.Request().ContentLength > maxBodySize {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}
