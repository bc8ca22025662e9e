package config

import (
	"fmt"

	"go.uber.org/zap"

	"pghive/internal/adapters/persistence/models"
	"pghive/internal/adapters/persistence/repositories"
	"pghive/internal/core/domain"
	"pghive/internal/core/services"
	"pghive/internal/pkg/logger"
	"pghive/internal/pkg/password"
)

// Store is the global arena instance
var Store *repositories.Store

// ConnectStore creates the in-memory arena. Its contents live as long as the process.
func ConnectStore(cfg *Config) (*repositories.Store, error) {
	password.SetCost(cfg.Security.PasswordCost)

	db, err := models.NewDB()
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	store := repositories.NewStore(db)
	if err := store.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	// Set global Store instance
	Store = store

	logger.GetLogger().Info("✅ Store ready", zap.Int("password_cost", password.Cost()))
	return store, nil
}

// HealthCheck checks if the store is healthy
func HealthCheck() error {
	if Store == nil {
		return fmt.Errorf("store not initialized")
	}
	return Store.Ping()
}

// NewOwner builds the owner facade from configuration
func NewOwner(cfg *Config, store *repositories.Store, log *zap.Logger) (*services.OwnerService, error) {
	mode, err := services.ParseBillingMode(cfg.Billing.Mode)
	if err != nil {
		return nil, err
	}

	account, err := domain.NewAccount(cfg.Owner.ID, cfg.Owner.Name, cfg.Owner.Email, cfg.Owner.Password)
	if err != nil {
		return nil, fmt.Errorf("create owner account: %w", err)
	}

	return services.NewOwnerService(store, domain.Owner{Account: account}, mode, log), nil
}
