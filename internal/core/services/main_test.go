package services_test

import (
	"context"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"pghive/internal/adapters/persistence/models"
	"pghive/internal/adapters/persistence/repositories"
	"pghive/internal/core/domain"
	"pghive/internal/core/services"
	"pghive/internal/pkg/password"
)

func TestMain(m *testing.M) {
	password.SetCost(bcrypt.MinCost)
	os.Exit(m.Run())
}

func newOwnerService(t *testing.T, mode services.BillingMode) *services.OwnerService {
	t.Helper()

	db, err := models.NewDB()
	require.NoError(t, err)

	account, err := domain.NewAccount("O001", "PG Owner", "owner@pg.com", "admin123")
	require.NoError(t, err)

	return services.NewOwnerService(repositories.NewStore(db), domain.Owner{Account: account}, mode, zap.NewNop())
}

func addRoom(t *testing.T, owner *services.OwnerService, id string, rent int64, sharing domain.SharingType) *domain.Room {
	t.Helper()

	room, err := owner.AddRoom(context.Background(), services.CreateRoomInput{
		ID:           id,
		BaseRent:     decimal.NewFromInt(rent),
		SizeSqft:     100,
		AmenityScore: 5,
		SharingType:  string(sharing),
	})
	require.NoError(t, err)
	return room
}

func addTenant(t *testing.T, owner *services.OwnerService, id, email, cadence string) *domain.Tenant {
	t.Helper()

	tenant, err := owner.CreateTenant(context.Background(), services.CreateTenantInput{
		ID:       id,
		Name:     "Tenant " + id,
		Email:    email,
		Password: "secret",
		Cadence:  cadence,
	})
	require.NoError(t, err)
	return tenant
}

func requireRoom(t *testing.T, owner *services.OwnerService, id string) *domain.Room {
	t.Helper()

	room, err := owner.Rooms().Find(context.Background(), id)
	require.NoError(t, err)
	return room
}

func requireTenant(t *testing.T, owner *services.OwnerService, id string) *domain.Tenant {
	t.Helper()

	tenant, err := owner.Tenants().FindByID(context.Background(), id)
	require.NoError(t, err)
	return tenant
}
