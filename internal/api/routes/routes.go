package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"recruitdesk/internal/adapter"
	"recruitdesk/internal/api/handlers"
	"recruitdesk/internal/api/middleware"
	"recruitdesk/internal/auth"
	"recruitdesk/internal/config"
	"recruitdesk/pkg/models"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, store *adapter.Store, sessions *auth.Manager) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))
	e.Use(middleware.RequireSession(sessions, cfg.Auth.Enabled))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler)
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler)

	// API routes
	api := e.Group("/api")
	{
		authHandler := handlers.NewAuthHandler(sessions)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)

		handlers.NewResourceHandler(models.JobSchema, store.Jobs, models.ParseJob).Register(api)
		handlers.NewCandidateHandler(cfg, store.Candidates).Register(api)
		handlers.NewApplicationHandler(store).Register(api)
		handlers.NewResourceHandler(models.InterviewSchema, store.Interviews, models.ParseInterview).Register(api)
		handlers.NewResourceHandler(models.SelectedCandidateSchema, store.Selected, models.ParseSelectedCandidate).Register(api)
		handlers.NewJoinedCandidateHandler(store.Joined).Register(api)

		reports := api.Group("/reports")
		{
			reports.GET("/summary", handlers.NewReportsHandler(store).Summary)
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "RecruitDesk Back Office",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
