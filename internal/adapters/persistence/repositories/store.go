package repositories

import (
	"context"
	"sync/atomic"

	"github.com/hashicorp/go-memdb"
)

// Store is the process-lifetime arena holding every room and tenant.
// memdb admits one write transaction at a time, so all mutations are
// serialized and each Update callback is a single critical section.
type Store struct {
	db  *memdb.MemDB
	seq *atomic.Uint64
}

// Tx exposes the repositories bound to one transaction
type Tx struct {
	Rooms   RoomRepository
	Tenants TenantRepository
}

// NewStore wraps a memdb database
func NewStore(db *memdb.MemDB) *Store {
	return &Store{db: db, seq: new(atomic.Uint64)}
}

// View runs fn in a read-only snapshot
func (s *Store) View(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	return fn(s.bind(txn))
}

// Update runs fn in a write transaction, committing only if fn returns nil
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	if err := fn(s.bind(txn)); err != nil {
		return err
	}

	txn.Commit()
	return nil
}

// Ping checks that the store answers reads
func (s *Store) Ping() error {
	txn := s.db.Txn(false)
	defer txn.Abort()

	_, err := txn.First(tableRooms, indexID)
	return err
}

func (s *Store) bind(txn *memdb.Txn) *Tx {
	return &Tx{
		Rooms:   NewRoomRepository(txn),
		Tenants: NewTenantRepository(txn, s.seq),
	}
}
