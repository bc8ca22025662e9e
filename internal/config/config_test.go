package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"pghive/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_MODE", "")
	t.Setenv("BILLING_MODE", "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppMode)
	assert.Equal(t, "flat", cfg.Billing.Mode)
	assert.Equal(t, "O001", cfg.Owner.ID)
	assert.Equal(t, "owner@pg.com", cfg.Owner.Email)
	assert.Equal(t, "30 8 * * *", cfg.Reminder.Schedule)
	assert.Equal(t, 3, cfg.Reminder.LookaheadDays)
	assert.True(t, cfg.Seed)
	assert.Equal(t, "*", cfg.GetAllowedOrigins())
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("BILLING_MODE=Cadence\nREMINDER_LOOKAHEAD_DAYS=7\n"), 0o600))

	// godotenv never overrides variables that are already set
	unsetEnv(t, "BILLING_MODE", "REMINDER_LOOKAHEAD_DAYS")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cadence", cfg.Billing.Mode)
	assert.Equal(t, 7, cfg.Reminder.LookaheadDays)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad app mode", env: map[string]string{"APP_MODE": "staging"}},
		{name: "bad billing mode", env: map[string]string{"BILLING_MODE": "monthly"}},
		{name: "bad seed flag", env: map[string]string{"SEED_SAMPLE_DATA": "maybe"}},
		{name: "prod without secret", env: map[string]string{"APP_MODE": "prod", "JWT_SECRET": "", "PROD_JWT_SECRET": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}

func TestSeeder(t *testing.T) {
	ctx := context.Background()
	t.Setenv("PASSWORD_COST", "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	cfg.Security.PasswordCost = bcrypt.MinCost

	store, err := config.ConnectStore(cfg)
	require.NoError(t, err)
	require.NoError(t, config.HealthCheck())

	owner, err := config.NewOwner(cfg, store, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, config.NewSeeder(owner).Run(ctx))

	rooms, err := owner.Rooms().List(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 4)
	assert.Equal(t, "T001", rooms[0].TenantID)

	report, err := owner.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalTenants)
	assert.Equal(t, 1, report.OccupiedRooms)
	assert.Equal(t, 25, report.OccupancyPercent)

	jane, err := owner.Tenants().FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.False(t, jane.HasRoom())
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
