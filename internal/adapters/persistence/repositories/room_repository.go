package repositories

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"

	"pghive/internal/adapters/persistence/models"
	"pghive/internal/core/domain"
)

const (
	tableRooms = models.TableRooms
	indexID    = models.IndexID
)

// roomRepository implements RoomRepository interface
type roomRepository struct {
	txn *memdb.Txn
}

// NewRoomRepository creates a new room repository bound to txn
func NewRoomRepository(txn *memdb.Txn) RoomRepository {
	return &roomRepository{txn: txn}
}

// Upsert inserts the room or replaces the one with the same ID
func (r *roomRepository) Upsert(ctx context.Context, room *domain.Room) error {
	if err := r.txn.Insert(tableRooms, room.Clone()); err != nil {
		return fmt.Errorf("insert room %s: %w", room.ID, err)
	}
	return nil
}

// GetByID gets a room by ID
func (r *roomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", domain.ErrRoomNotFound)
	}

	raw, err := r.txn.First(tableRooms, indexID, id)
	if err != nil {
		return nil, fmt.Errorf("lookup room %s: %w", id, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRoomNotFound, id)
	}
	return raw.(*domain.Room).Clone(), nil
}

// List returns all rooms ordered by ID
func (r *roomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	iter, err := r.txn.Get(tableRooms, indexID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return collectRooms(iter), nil
}

// ListBySharing returns the rooms of one sharing type ordered by ID
func (r *roomRepository) ListBySharing(ctx context.Context, sharing domain.SharingType) ([]*domain.Room, error) {
	iter, err := r.txn.Get(tableRooms, models.IndexSharing, string(sharing))
	if err != nil {
		return nil, fmt.Errorf("list rooms by sharing: %w", err)
	}
	return collectRooms(iter), nil
}

func collectRooms(iter memdb.ResultIterator) []*domain.Room {
	rooms := []*domain.Room{}
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		rooms = append(rooms, raw.(*domain.Room).Clone())
	}
	return rooms
}
