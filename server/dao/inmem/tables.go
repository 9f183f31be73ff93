package inmem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dekarrin/srparse/internal/util"
	"github.com/dekarrin/srparse/server/dao"
	"github.com/google/uuid"
)

func NewTablesRepository() *TablesRepository {
	return &TablesRepository{
		tables:      make(map[uuid.UUID]dao.StoredTable),
		byNameIndex: make(map[string]uuid.UUID),
	}
}

// TablesRepository is a dao.TableRepository that is safe for concurrent use.
// Tables are copied on the way in and out so callers cannot modify stored
// ones.
type TablesRepository struct {
	mtx         sync.RWMutex
	tables      map[uuid.UUID]dao.StoredTable
	byNameIndex map[string]uuid.UUID
}

func (repo *TablesRepository) Close() error {
	return nil
}

func (repo *TablesRepository) Create(ctx context.Context, t dao.StoredTable) (dao.StoredTable, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.StoredTable{}, fmt.Errorf("could not generate ID: %w", err)
	}

	repo.mtx.Lock()
	defer repo.mtx.Unlock()

	// make sure it's not already in the DB
	if _, ok := repo.byNameIndex[t.Name]; ok {
		return dao.StoredTable{}, dao.ErrConstraintViolation
	}

	t.ID = newUUID
	t.Created = time.Now()
	t.Table = t.Table.Copy()

	repo.tables[t.ID] = t
	repo.byNameIndex[t.Name] = t.ID

	return copyStored(t), nil
}

func (repo *TablesRepository) GetAll(ctx context.Context) ([]dao.StoredTable, error) {
	repo.mtx.RLock()
	defer repo.mtx.RUnlock()

	all := make([]dao.StoredTable, 0, len(repo.tables))
	for k := range repo.tables {
		all = append(all, copyStored(repo.tables[k]))
	}

	all = util.SortBy(all, func(l, r dao.StoredTable) bool {
		return l.Name < r.Name
	})

	return all, nil
}

func (repo *TablesRepository) GetByID(ctx context.Context, id uuid.UUID) (dao.StoredTable, error) {
	repo.mtx.RLock()
	defer repo.mtx.RUnlock()

	t, ok := repo.tables[id]
	if !ok {
		return dao.StoredTable{}, dao.ErrNotFound
	}

	return copyStored(t), nil
}

func (repo *TablesRepository) GetByName(ctx context.Context, name string) (dao.StoredTable, error) {
	repo.mtx.RLock()
	defer repo.mtx.RUnlock()

	id, ok := repo.byNameIndex[name]
	if !ok {
		return dao.StoredTable{}, dao.ErrNotFound
	}

	return copyStored(repo.tables[id]), nil
}

func (repo *TablesRepository) Delete(ctx context.Context, id uuid.UUID) (dao.StoredTable, error) {
	repo.mtx.Lock()
	defer repo.mtx.Unlock()

	t, ok := repo.tables[id]
	if !ok {
		return dao.StoredTable{}, dao.ErrNotFound
	}

	delete(repo.byNameIndex, t.Name)
	delete(repo.tables, t.ID)

	return t, nil
}

func copyStored(t dao.StoredTable) dao.StoredTable {
	t.Table = t.Table.Copy()
	return t
}
