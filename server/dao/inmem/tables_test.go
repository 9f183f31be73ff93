package inmem

import (
	"context"
	"testing"

	"github.com/dekarrin/srparse/internal/calc"
	"github.com/dekarrin/srparse/lr"
	"github.com/dekarrin/srparse/server/dao"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_TablesRepository_CreateAndGet(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewTablesRepository()

	created, err := repo.Create(ctx, dao.StoredTable{Name: "arith", Table: calc.Table()})
	if !assert.NoError(err) {
		return
	}
	assert.NotEqual(uuid.Nil, created.ID)
	assert.False(created.Created.IsZero())

	byID, err := repo.GetByID(ctx, created.ID)
	assert.NoError(err)
	assert.Equal("arith", byID.Name)
	assert.True(byID.Table.Equal(calc.Table()))

	byName, err := repo.GetByName(ctx, "arith")
	assert.NoError(err)
	assert.Equal(created.ID, byName.ID)
}

func Test_TablesRepository_Create_DuplicateName(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewTablesRepository()

	_, err := repo.Create(ctx, dao.StoredTable{Name: "arith", Table: calc.Table()})
	assert.NoError(err)

	_, err = repo.Create(ctx, dao.StoredTable{Name: "arith", Table: calc.Table()})
	assert.ErrorIs(err, dao.ErrConstraintViolation)
}

func Test_TablesRepository_GetAll_SortedByName(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewTablesRepository()

	for _, name := range []string{"zeta", "alpha", "mu"} {
		_, err := repo.Create(ctx, dao.StoredTable{Name: name, Table: calc.Table()})
		assert.NoError(err)
	}

	all, err := repo.GetAll(ctx)
	assert.NoError(err)

	var names []string
	for _, st := range all {
		names = append(names, st.Name)
	}
	assert.Equal([]string{"alpha", "mu", "zeta"}, names)
}

func Test_TablesRepository_Delete(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewTablesRepository()

	created, err := repo.Create(ctx, dao.StoredTable{Name: "arith", Table: calc.Table()})
	assert.NoError(err)

	deleted, err := repo.Delete(ctx, created.ID)
	assert.NoError(err)
	assert.Equal(created.ID, deleted.ID)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(err, dao.ErrNotFound)
	_, err = repo.GetByName(ctx, "arith")
	assert.ErrorIs(err, dao.ErrNotFound)

	_, err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(err, dao.ErrNotFound)

	// name is free again
	_, err = repo.Create(ctx, dao.StoredTable{Name: "arith", Table: calc.Table()})
	assert.NoError(err)
}

func Test_TablesRepository_ReturnsCopies(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewTablesRepository()

	created, err := repo.Create(ctx, dao.StoredTable{Name: "arith", Table: calc.Table()})
	assert.NoError(err)

	created.Table.States[0].Actions["int"] = lr.AcceptAction()

	got, err := repo.GetByID(ctx, created.ID)
	assert.NoError(err)
	assert.True(got.Table.Equal(calc.Table()))
}
