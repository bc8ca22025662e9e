package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/hashicorp/go-memdb"

	"pghive/internal/adapters/persistence/models"
	"pghive/internal/core/domain"
)

const tableTenants = models.TableTenants

// tenantRepository implements TenantRepository interface
type tenantRepository struct {
	txn *memdb.Txn
	seq *atomic.Uint64
}

// NewTenantRepository creates a new tenant repository bound to txn.
// seq hands out registration order numbers.
func NewTenantRepository(txn *memdb.Txn, seq *atomic.Uint64) TenantRepository {
	return &tenantRepository{txn: txn, seq: seq}
}

// Create creates a new tenant. IDs and emails must be unused.
func (r *tenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	if existing, err := r.txn.First(tableTenants, indexID, tenant.ID); err != nil {
		return fmt.Errorf("lookup tenant %s: %w", tenant.ID, err)
	} else if existing != nil {
		return fmt.Errorf("%w: tenant id %s", domain.ErrDuplicateEntry, tenant.ID)
	}

	if tenant.Email != "" {
		if existing, err := r.txn.First(tableTenants, models.IndexEmail, tenant.Email); err != nil {
			return fmt.Errorf("lookup tenant email: %w", err)
		} else if existing != nil {
			return fmt.Errorf("%w: email %s", domain.ErrDuplicateEntry, tenant.Email)
		}
	}

	stored := tenant.Clone()
	stored.Seq = r.seq.Add(1)
	if err := r.txn.Insert(tableTenants, stored); err != nil {
		return fmt.Errorf("insert tenant %s: %w", tenant.ID, err)
	}

	tenant.Seq = stored.Seq
	return nil
}

// Update replaces a stored tenant
func (r *tenantRepository) Update(ctx context.Context, tenant *domain.Tenant) error {
	current, err := r.GetByID(ctx, tenant.ID)
	if err != nil {
		return err
	}

	stored := tenant.Clone()
	stored.Seq = current.Seq
	if err := r.txn.Insert(tableTenants, stored); err != nil {
		return fmt.Errorf("update tenant %s: %w", tenant.ID, err)
	}
	return nil
}

// GetByID gets a tenant by ID
func (r *tenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	return r.first(indexID, id)
}

// GetByEmail gets a tenant by email
func (r *tenantRepository) GetByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	return r.first(models.IndexEmail, email)
}

// GetByRoomID gets the tenant occupying a room
func (r *tenantRepository) GetByRoomID(ctx context.Context, roomID string) (*domain.Tenant, error) {
	return r.first(models.IndexRoom, roomID)
}

// Delete deletes a tenant by ID
func (r *tenantRepository) Delete(ctx context.Context, id string) error {
	tenant, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.txn.Delete(tableTenants, tenant); err != nil {
		return fmt.Errorf("delete tenant %s: %w", id, err)
	}
	return nil
}

// List returns all tenants in registration order
func (r *tenantRepository) List(ctx context.Context) ([]*domain.Tenant, error) {
	iter, err := r.txn.Get(tableTenants, indexID)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}

	tenants := []*domain.Tenant{}
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		tenants = append(tenants, raw.(*domain.Tenant).Clone())
	}

	sort.Slice(tenants, func(i, j int) bool {
		return tenants[i].Seq < tenants[j].Seq
	})
	return tenants, nil
}

// Count returns the number of tenants
func (r *tenantRepository) Count(ctx context.Context) (int, error) {
	iter, err := r.txn.Get(tableTenants, indexID)
	if err != nil {
		return 0, fmt.Errorf("count tenants: %w", err)
	}

	n := 0
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		n++
	}
	return n, nil
}

func (r *tenantRepository) first(index, value string) (*domain.Tenant, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: empty %s", domain.ErrTenantNotFound, index)
	}

	raw, err := r.txn.First(tableTenants, index, value)
	if err != nil {
		return nil, fmt.Errorf("lookup tenant by %s: %w", index, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrTenantNotFound, value)
	}
	return raw.(*domain.Tenant).Clone(), nil
}
