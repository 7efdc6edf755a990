package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"recruitdesk/internal/adapter"
	"recruitdesk/internal/api/routes"
	"recruitdesk/internal/auth"
	"recruitdesk/internal/config"
	"recruitdesk/internal/logging"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging system
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting RecruitDesk Back Office", map[string]interface{}{
		"storage_driver": cfg.Storage.Driver,
	})

	// Initialize storage adapters
	store, err := adapter.NewStore(cfg)
	if err != nil {
		logger.Error("Failed to initialize storage", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// Initialize session manager
	sessions := auth.NewManager(cfg)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, store, sessions)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Error("Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
