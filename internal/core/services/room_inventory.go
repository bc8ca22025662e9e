package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pghive/internal/adapters/persistence/repositories"
	"pghive/internal/core/domain"
	"pghive/internal/pkg/metrics"
)

// RoomInventory manages the room catalog and the room/tenant links
type RoomInventory struct {
	store *repositories.Store
	log   *zap.Logger
}

// NewRoomInventory creates a new room inventory
func NewRoomInventory(store *repositories.Store, log *zap.Logger) *RoomInventory {
	return &RoomInventory{store: store, log: log.Named("rooms")}
}

// Add inserts the room or replaces the one with the same ID.
// A replaced room keeps its current occupant.
func (s *RoomInventory) Add(ctx context.Context, room *domain.Room) error {
	if err := room.Validate(); err != nil {
		return err
	}

	err := s.store.Update(ctx, func(tx *repositories.Tx) error {
		stored := room.Clone()
		stored.SetTenant("")

		existing, err := tx.Rooms.GetByID(ctx, room.ID)
		switch {
		case err == nil:
			stored.SetTenant(existing.TenantID)
		case !errors.Is(err, domain.ErrRoomNotFound):
			return err
		}

		return tx.Rooms.Upsert(ctx, stored)
	})
	if err != nil {
		return err
	}

	metrics.RecordRoomOperation("add")
	s.log.Info("room saved", zap.String("room_id", room.ID), zap.String("sharing", string(room.SharingType)))
	return nil
}

// Create builds a room from input and adds it
func (s *RoomInventory) Create(ctx context.Context, input CreateRoomInput) (*domain.Room, error) {
	sharing, err := domain.ParseSharingType(input.SharingType)
	if err != nil {
		return nil, err
	}

	room, err := domain.NewRoom(input.ID, input.BaseRent, input.SizeSqft, input.AmenityScore, sharing)
	if err != nil {
		return nil, err
	}

	if err := s.Add(ctx, room); err != nil {
		return nil, err
	}
	return s.Find(ctx, room.ID)
}

// AddBasic adds a Single room with no size or amenity information
func (s *RoomInventory) AddBasic(ctx context.Context, id string, baseRent decimal.Decimal) (*domain.Room, error) {
	room, err := domain.NewBasicRoom(id, baseRent)
	if err != nil {
		return nil, err
	}

	if err := s.Add(ctx, room); err != nil {
		return nil, err
	}
	return s.Find(ctx, id)
}

// Find gets a room by ID
func (s *RoomInventory) Find(ctx context.Context, id string) (*domain.Room, error) {
	var room *domain.Room
	err := s.store.View(ctx, func(tx *repositories.Tx) error {
		var err error
		room, err = tx.Rooms.GetByID(ctx, id)
		return err
	})
	return room, err
}

// List returns all rooms ordered by ID
func (s *RoomInventory) List(ctx context.Context) ([]*domain.Room, error) {
	var rooms []*domain.Room
	err := s.store.View(ctx, func(tx *repositories.Tx) error {
		var err error
		rooms, err = tx.Rooms.List(ctx)
		return err
	})
	return rooms, err
}

// Assign links a vacant room and a tenant. A tenant who already has a
// room moves out of it as part of the same transaction.
func (s *RoomInventory) Assign(ctx context.Context, roomID, tenantID string) error {
	var previous string

	err := s.store.Update(ctx, func(tx *repositories.Tx) error {
		room, err := tx.Rooms.GetByID(ctx, roomID)
		if err != nil {
			return err
		}

		if room.Occupied {
			return domainErrorf(domain.ErrAlreadyOccupied, "room %s is occupied by %s", room.ID, room.TenantID)
		}

		tenant, err := tx.Tenants.GetByID(ctx, tenantID)
		if err != nil {
			return err
		}

		if tenant.HasRoom() {
			previous = tenant.RoomID
			if err := releaseRoom(ctx, tx, tenant.RoomID); err != nil {
				return err
			}
		}

		room.SetTenant(tenant.ID)
		tenant.RoomID = room.ID

		if err := tx.Rooms.Upsert(ctx, room); err != nil {
			return err
		}
		return tx.Tenants.Update(ctx, tenant)
	})
	if err != nil {
		return err
	}

	metrics.RecordRoomOperation("assign")
	s.log.Info("room assigned",
		zap.String("room_id", roomID),
		zap.String("tenant_id", tenantID),
		zap.String("previous_room_id", previous),
	)
	return nil
}

// Release clears the link between a room and its tenant.
// Releasing a vacant room is a no-op.
func (s *RoomInventory) Release(ctx context.Context, roomID string) error {
	err := s.store.Update(ctx, func(tx *repositories.Tx) error {
		if _, err := tx.Rooms.GetByID(ctx, roomID); err != nil {
			return err
		}

		tenant, err := tx.Tenants.GetByRoomID(ctx, roomID)
		switch {
		case err == nil:
			tenant.RoomID = ""
			if err := tx.Tenants.Update(ctx, tenant); err != nil {
				return err
			}
		case !errors.Is(err, domain.ErrTenantNotFound):
			return err
		}

		return releaseRoom(ctx, tx, roomID)
	})
	if err != nil {
		return err
	}

	metrics.RecordRoomOperation("release")
	s.log.Info("room released", zap.String("room_id", roomID))
	return nil
}

// OccupancyRate returns occupied/total, 0 for an empty inventory
func (s *RoomInventory) OccupancyRate(ctx context.Context) (float64, error) {
	rooms, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	rate := occupancyRate(rooms)
	metrics.SetOccupancyRate(rate)
	return rate, nil
}

// releaseRoom marks a room vacant inside tx. Unknown rooms are ignored.
func releaseRoom(ctx context.Context, tx *repositories.Tx, roomID string) error {
	room, err := tx.Rooms.GetByID(ctx, roomID)
	if errors.Is(err, domain.ErrRoomNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	room.SetTenant("")
	return tx.Rooms.Upsert(ctx, room)
}

func occupancyRate(rooms []*domain.Room) float64 {
	if len(rooms) == 0 {
		return 0
	}
	return float64(countOccupied(rooms)) / float64(len(rooms))
}

func countOccupied(rooms []*domain.Room) int {
	n := 0
	for _, r := range rooms {
		if r.Occupied {
			n++
		}
	}
	return n
}
