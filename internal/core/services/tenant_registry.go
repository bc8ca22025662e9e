package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"pghive/internal/adapters/persistence/repositories"
	"pghive/internal/core/domain"
	"pghive/internal/pkg/metrics"
)

// TenantRegistry manages tenant records and tenant sessions
type TenantRegistry struct {
	store *repositories.Store
	log   *zap.Logger
}

// NewTenantRegistry creates a new tenant registry
func NewTenantRegistry(store *repositories.Store, log *zap.Logger) *TenantRegistry {
	return &TenantRegistry{store: store, log: log.Named("tenants")}
}

// Create registers a tenant. An unrecognized cadence selects the default cadence.
func (s *TenantRegistry) Create(ctx context.Context, input CreateTenantInput) (*domain.Tenant, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, domainErrorf(domain.ErrInvalidInput, "tenant id is required")
	}

	// 1. Build tenant (hashes the password outside the write transaction)
	tenant, err := domain.NewTenant(id, input.Name, strings.TrimSpace(input.Email), input.Password, domain.ParseCadence(input.Cadence))
	if err != nil {
		return nil, err
	}
	tenant.Contact = input.Contact
	tenant.MoveInDate = input.MoveInDate
	tenant.MoveOutDate = input.MoveOutDate

	// 2. Store it
	if err := s.store.Update(ctx, func(tx *repositories.Tx) error {
		return tx.Tenants.Create(ctx, tenant)
	}); err != nil {
		return nil, err
	}

	metrics.RecordTenantOperation("create")
	s.log.Info("tenant created", zap.String("tenant_id", tenant.ID), zap.Stringer("cadence", tenant.Cadence))
	return tenant.Clone(), nil
}

// FindByID gets a tenant by ID
func (s *TenantRegistry) FindByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant *domain.Tenant
	err := s.store.View(ctx, func(tx *repositories.Tx) error {
		var err error
		tenant, err = tx.Tenants.GetByID(ctx, id)
		return err
	})
	return tenant, err
}

// FindByEmail gets a tenant by email
func (s *TenantRegistry) FindByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	var tenant *domain.Tenant
	err := s.store.View(ctx, func(tx *repositories.Tx) error {
		var err error
		tenant, err = tx.Tenants.GetByEmail(ctx, email)
		return err
	})
	return tenant, err
}

// List returns all tenants in registration order
func (s *TenantRegistry) List(ctx context.Context) ([]*domain.Tenant, error) {
	var tenants []*domain.Tenant
	err := s.store.View(ctx, func(tx *repositories.Tx) error {
		var err error
		tenants, err = tx.Tenants.List(ctx)
		return err
	})
	return tenants, err
}

// Count returns the number of registered tenants
func (s *TenantRegistry) Count(ctx context.Context) (int, error) {
	var n int
	err := s.store.View(ctx, func(tx *repositories.Tx) error {
		var err error
		n, err = tx.Tenants.Count(ctx)
		return err
	})
	return n, err
}

// Edit replaces the name, contact and move dates of a tenant
func (s *TenantRegistry) Edit(ctx context.Context, id string, input EditTenantInput) error {
	err := s.modify(ctx, id, func(t *domain.Tenant) error {
		t.Name = input.Name
		t.Contact = input.Contact
		t.MoveInDate = input.MoveInDate
		t.MoveOutDate = input.MoveOutDate
		return nil
	})
	if err != nil {
		return err
	}

	metrics.RecordTenantOperation("edit")
	s.log.Info("tenant updated", zap.String("tenant_id", id))
	return nil
}

// Remove deletes a tenant and vacates their room
func (s *TenantRegistry) Remove(ctx context.Context, id string) error {
	var roomID string

	err := s.store.Update(ctx, func(tx *repositories.Tx) error {
		tenant, err := tx.Tenants.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if tenant.HasRoom() {
			roomID = tenant.RoomID
			if err := releaseRoom(ctx, tx, tenant.RoomID); err != nil {
				return err
			}
		}
		return tx.Tenants.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	metrics.RecordTenantOperation("remove")
	s.log.Info("tenant removed", zap.String("tenant_id", id), zap.String("released_room_id", roomID))
	return nil
}

// UploadDocument records a document name for a tenant.
// added is false when the name was already on file.
func (s *TenantRegistry) UploadDocument(ctx context.Context, id, name string) (added bool, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, domainErrorf(domain.ErrInvalidInput, "document name is required")
	}

	err = s.modify(ctx, id, func(t *domain.Tenant) error {
		added = t.UploadDocument(name)
		return nil
	})
	if err != nil {
		return false, err
	}

	if added {
		s.log.Info("document uploaded", zap.String("tenant_id", id), zap.String("document", name))
	}
	return added, nil
}

// Documents returns a tenant's uploaded document names
func (s *TenantRegistry) Documents(ctx context.Context, id string) ([]string, error) {
	tenant, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return tenant.Documents(), nil
}

// ============================================================
// Sessions
// ============================================================

// Authenticate opens a session for the tenant with that email.
// Failed attempts are recorded even though an error is returned.
func (s *TenantRegistry) Authenticate(ctx context.Context, email, plain string) (*domain.Tenant, error) {
	var (
		tenant  *domain.Tenant
		authErr error
	)

	err := s.store.Update(ctx, func(tx *repositories.Tx) error {
		var err error
		tenant, err = tx.Tenants.GetByEmail(ctx, email)
		if err != nil {
			return err
		}

		// The bcrypt check runs inside the write txn so the failure counter
		// cannot race; other writers wait for one comparison.
		authErr = tenant.Authenticate(email, plain)
		if errors.Is(authErr, domain.ErrAuthLocked) {
			return nil
		}
		return tx.Tenants.Update(ctx, tenant)
	})
	if err != nil {
		return nil, err
	}
	if authErr != nil {
		s.log.Warn("tenant login failed",
			zap.String("tenant_id", tenant.ID),
			zap.Int("remaining_attempts", tenant.RemainingAttempts()),
			zap.Error(authErr),
		)
		return tenant, authErr
	}

	s.log.Info("tenant logged in", zap.String("tenant_id", tenant.ID))
	return tenant, nil
}

// EndSession logs a tenant out
func (s *TenantRegistry) EndSession(ctx context.Context, id string) error {
	return s.modify(ctx, id, func(t *domain.Tenant) error {
		t.EndSession()
		return nil
	})
}

// ChangePassword replaces a tenant's password
func (s *TenantRegistry) ChangePassword(ctx context.Context, id, current, next string) error {
	return s.modify(ctx, id, func(t *domain.Tenant) error {
		return t.ChangePassword(current, next)
	})
}

// modify applies fn to a tenant inside one write transaction
func (s *TenantRegistry) modify(ctx context.Context, id string, fn func(t *domain.Tenant) error) error {
	return s.store.Update(ctx, func(tx *repositories.Tx) error {
		tenant, err := tx.Tenants.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(tenant); err != nil {
			return err
		}
		return tx.Tenants.Update(ctx, tenant)
	})
}
