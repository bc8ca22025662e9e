package repositories

import (
	"context"

	"pghive/internal/core/domain"
)

// RoomRepository defines room repository interface
type RoomRepository interface {
	Upsert(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
	ListBySharing(ctx context.Context, sharing domain.SharingType) ([]*domain.Room, error)
}

// TenantRepository defines tenant repository interface
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	Update(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetByEmail(ctx context.Context, email string) (*domain.Tenant, error)
	GetByRoomID(ctx context.Context, roomID string) (*domain.Tenant, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Tenant, error)
	Count(ctx context.Context) (int, error)
}
