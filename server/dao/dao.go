// Package dao provides data access objects for use in the srparse server.
package dao

import (
	"context"
	"time"

	"github.com/dekarrin/srparse/lr"
	"github.com/google/uuid"
)

// Store holds all the repositories.
type Store interface {
	Tables() TableRepository
	Close() error
}

// TableRepository persists action tables uploaded to the server.
type TableRepository interface {
	// Create creates a new StoredTable. All attributes except for
	// auto-generated fields are taken from the provided StoredTable. Names
	// must be unique; ErrConstraintViolation is returned if one is taken.
	Create(ctx context.Context, t StoredTable) (StoredTable, error)

	// GetAll returns every stored table ordered by name.
	GetAll(ctx context.Context) ([]StoredTable, error)

	GetByID(ctx context.Context, id uuid.UUID) (StoredTable, error)
	GetByName(ctx context.Context, name string) (StoredTable, error)
	Delete(ctx context.Context, id uuid.UUID) (StoredTable, error)
	Close() error
}

// StoredTable is an action table along with the metadata the server keeps
// for it.
type StoredTable struct {
	ID      uuid.UUID
	Name    string
	Table   lr.Table
	Created time.Time
}
