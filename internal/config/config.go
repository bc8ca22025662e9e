package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	LogLevel string
	JWT      JWTConfig
	Owner    OwnerConfig
	Billing  BillingConfig
	Reminder ReminderConfig
	Security SecurityConfig
	Seed     bool
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// OwnerConfig holds the building owner's account
type OwnerConfig struct {
	ID       string
	Name     string
	Email    string
	Password string
}

// BillingConfig holds bulk billing configuration
type BillingConfig struct {
	Mode string
}

// ReminderConfig holds the payment reminder job configuration
type ReminderConfig struct {
	Schedule      string
	LookaheadDays int
}

// SecurityConfig holds password hashing configuration
type SecurityConfig struct {
	PasswordCost int
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env files and environment variables.
// Missing .env files are not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	billingMode := strings.ToLower(strings.TrimSpace(getEnv("BILLING_MODE", "flat")))
	if billingMode != "flat" && billingMode != "cadence" {
		return nil, fmt.Errorf("invalid BILLING_MODE: '%s' (must be 'flat' or 'cadence')", billingMode)
	}

	seed, err := strconv.ParseBool(getEnv("SEED_SAMPLE_DATA", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_SAMPLE_DATA: %w", err)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		LogLevel: getEnv("LOG_LEVEL", defaultLogLevel(appMode)),
		JWT:      loadJWTConfig(appMode),
		Owner:    loadOwnerConfig(),
		Billing:  BillingConfig{Mode: billingMode},
		Reminder: ReminderConfig{
			Schedule:      getEnv("REMINDER_SCHEDULE", "30 8 * * *"),
			LookaheadDays: getEnvInt("REMINDER_LOOKAHEAD_DAYS", 3),
		},
		Security: SecurityConfig{PasswordCost: getEnvInt("PASSWORD_COST", 10)},
		Seed:     seed,
	}

	if config.IsProd() && config.JWT.Secret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod mode")
	}

	// Set global config
	AppConfig = config
	return config, nil
}

const defaultJWTSecret = "default_secret"

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return JWTConfig{
		Secret:          getEnv(prefix+"JWT_SECRET", getEnv("JWT_SECRET", defaultJWTSecret)),
		AccessTokenMins: getEnvInt("ACCESS_TOKEN_MINUTES", 60),
	}
}

// loadOwnerConfig loads the owner account, defaulting to the demo owner
func loadOwnerConfig() OwnerConfig {
	return OwnerConfig{
		ID:       getEnv("OWNER_ID", "O001"),
		Name:     getEnv("OWNER_NAME", "PG Owner"),
		Email:    getEnv("OWNER_EMAIL", "owner@pg.com"),
		Password: getEnv("OWNER_PASSWORD", "admin123"),
	}
}

func defaultLogLevel(mode string) string {
	if mode == "prod" {
		return "info"
	}
	return "debug"
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable, falling back on parse errors
func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return n
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:3000"
	}
	return origins
}
