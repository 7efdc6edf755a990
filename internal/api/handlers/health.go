package handlers

import (
	"net/http"
	"time"

	"recruitdesk/internal/logging"
	"recruitdesk/pkg/models"
	"recruitdesk/pkg/utils"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests
func ReadinessHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "ready",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api":     "ok",
			"storage": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// LivenessHandler handles liveness probe requests. This endpoint doubles as
// the known-cheap probe target for client-side backend discovery, so it must
// stay dependency-free and fast.
func LivenessHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}

// StatusHandler provides detailed service status
func StatusHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "operational",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api":     "operational",
			"storage": "operational",
		},
	}

	return c.JSON(http.StatusOK, response)
}
