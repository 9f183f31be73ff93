// Package inmem provides a dao.Store that keeps everything in memory and
// loses it at shutdown.
package inmem

import (
	"github.com/dekarrin/srparse/server/dao"
)

type store struct {
	tables *TablesRepository
}

// NewDatastore creates an empty in-memory store.
func NewDatastore() dao.Store {
	return &store{
		tables: NewTablesRepository(),
	}
}

func (s *store) Tables() dao.TableRepository {
	return s.tables
}

func (s *store) Close() error {
	return s.tables.Close()
}
