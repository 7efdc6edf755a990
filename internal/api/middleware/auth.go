package middleware

import (
	"net/http"
	"strings"
	"time"

	"recruitdesk/internal/auth"
	"recruitdesk/pkg/models"

	"github.com/labstack/echo/v4"
)

// RequireSession gates the API behind a valid bearer token when auth is
// enabled. Login and health endpoints stay open so a session can be obtained
// and the backend probe keeps working.
func RequireSession(sessions *auth.Manager, enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}

			path := c.Request().URL.Path
			if path == "/api/login" || strings.HasPrefix(path, "/health") || path == "/" || path == "/status" {
				return next(c)
			}

			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return unauthorized(c, "missing bearer token")
			}

			session, ok := sessions.Validate(token)
			if !ok {
				return unauthorized(c, "invalid or expired session")
			}

			c.Set("session_email", session.Email)
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

func unauthorized(c echo.Context, message string) error {
	requestID, _ := c.Get("request_id").(string)
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:     "unauthorized",
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
