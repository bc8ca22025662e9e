package models

import (
	"github.com/hashicorp/go-memdb"
)

// ============================================================
// Arena tables: rooms and tenants, cross-referenced by ID
// ============================================================

// Table names
const (
	TableRooms   = "rooms"
	TableTenants = "tenants"
)

// Index names. memdb requires every table to carry a unique "id" index.
const (
	IndexID      = "id"
	IndexEmail   = "email"
	IndexSharing = "sharing"
	IndexRoom    = "room"
)

// Schema returns the memdb schema for all tables
func Schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			TableRooms:   roomTable(),
			TableTenants: tenantTable(),
		},
	}
}

func roomTable() *memdb.TableSchema {
	return &memdb.TableSchema{
		Name: TableRooms,
		Indexes: map[string]*memdb.IndexSchema{
			IndexID: {
				Name:    IndexID,
				Unique:  true,
				Indexer: &memdb.StringFieldIndex{Field: "ID"},
			},
			IndexSharing: {
				Name:    IndexSharing,
				Indexer: &memdb.StringFieldIndex{Field: "SharingType"},
			},
		},
	}
}

func tenantTable() *memdb.TableSchema {
	return &memdb.TableSchema{
		Name: TableTenants,
		Indexes: map[string]*memdb.IndexSchema{
			IndexID: {
				Name:    IndexID,
				Unique:  true,
				Indexer: &memdb.StringFieldIndex{Field: "ID"},
			},
			IndexEmail: {
				Name:         IndexEmail,
				AllowMissing: true,
				Indexer:      &memdb.StringFieldIndex{Field: "Email"},
			},
			IndexRoom: {
				Name:         IndexRoom,
				AllowMissing: true,
				Indexer:      &memdb.StringFieldIndex{Field: "RoomID"},
			},
		},
	}
}

// NewDB creates an empty in-memory database with the arena schema
func NewDB() (*memdb.MemDB, error) {
	return memdb.NewMemDB(Schema())
}
