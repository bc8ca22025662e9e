package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"pghive/internal/adapters/http/middleware"
	"pghive/internal/adapters/http/routes"
	"pghive/internal/config"
	"pghive/internal/core/services"
	"pghive/internal/pkg/logger"
)

// @title PGHive API
// @version 1.0
// @description Rental management for a paying-guest building
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	appLog := logger.InitLogger(cfg.AppMode, cfg.LogLevel)
	defer appLog.Sync() //nolint:errcheck

	// Create the in-memory store
	store, err := config.ConnectStore(cfg)
	if err != nil {
		appLog.Fatal("❌ Failed to create store", zap.Error(err))
	}

	owner, err := config.NewOwner(cfg, store, appLog)
	if err != nil {
		appLog.Fatal("❌ Failed to create owner", zap.Error(err))
	}

	if cfg.Seed {
		if err := config.NewSeeder(owner).Run(context.Background()); err != nil {
			appLog.Warn("⚠️ Failed to seed sample data", zap.Error(err))
		}
	}

	authService := services.NewAuthService(owner, cfg.JWT.Secret, cfg.JWT.AccessTokenMins, appLog)

	// Start payment reminder job
	reminders := services.NewReminderService(owner, cfg.Reminder.Schedule, cfg.Reminder.LookaheadDays, appLog)
	if err := reminders.Start(); err != nil {
		appLog.Fatal("❌ Failed to start reminder job", zap.Error(err))
	}
	defer reminders.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "PGHive API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg, appLog)

	// Setup routes
	routes.Setup(app, cfg, owner, authService, reminders)

	// Graceful shutdown
	go gracefulShutdown(app, appLog)

	// Start server
	appLog.Info("🚀 Server starting", zap.String("port", cfg.Port), zap.String("mode", cfg.AppMode))
	if err := app.Listen(":" + cfg.Port); err != nil {
		appLog.Error("❌ Failed to start server", zap.Error(err))
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App, log *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Error("❌ Error during shutdown", zap.Error(err))
	}
	log.Info("✅ Server stopped gracefully")
}
