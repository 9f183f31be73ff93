package sqlite

import (
	"context"
	"testing"

	"github.com/dekarrin/srparse/internal/calc"
	"github.com/dekarrin/srparse/lr"
	"github.com/dekarrin/srparse/server/dao"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) dao.Store {
	store, err := NewDatastore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func Test_TablesDB_CreateAndGet(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := newTestStore(t).Tables()

	created, err := repo.Create(ctx, dao.StoredTable{Name: "arith", Table: calc.Table()})
	if !assert.NoError(err) {
		return
	}
	assert.NotEqual(uuid.Nil, created.ID)
	assert.Equal("arith", created.Name)
	assert.True(created.Table.Equal(calc.Table()))

	byName, err := repo.GetByName(ctx, "arith")
	assert.NoError(err)
	assert.Equal(created.ID, byName.ID)
	assert.True(byName.Table.Equal(calc.Table()))
}

func Test_TablesDB_Create_DuplicateName(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := newTestStore(t).Tables()

	_, err := repo.Create(ctx, dao.StoredTable{Name: "arith", Table: calc.Table()})
	assert.NoError(err)

	_, err = repo.Create(ctx, dao.StoredTable{Name: "arith", Table: calc.Table()})
	assert.ErrorIs(err, dao.ErrConstraintViolation)
}

func Test_TablesDB_GetAll(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := newTestStore(t).Tables()

	small := lr.Table{States: []lr.State{
		{Actions: map[string]lr.Action{"x": lr.ShiftTo(1), "A": lr.ShiftTo(2)}},
		{Actions: map[string]lr.Action{lr.EndSymbol: lr.ReduceBy(lr.NewDerivation("A", "x"))}},
		{Actions: map[string]lr.Action{lr.EndSymbol: lr.AcceptAction()}},
	}}

	_, err := repo.Create(ctx, dao.StoredTable{Name: "small", Table: small})
	assert.NoError(err)
	_, err = repo.Create(ctx, dao.StoredTable{Name: "arith", Table: calc.Table()})
	assert.NoError(err)

	all, err := repo.GetAll(ctx)
	assert.NoError(err)
	if !assert.Len(all, 2) {
		return
	}
	assert.Equal("arith", all[0].Name)
	assert.Equal("small", all[1].Name)
	assert.True(all[1].Table.Equal(small))
}

func Test_TablesDB_Delete(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := newTestStore(t).Tables()

	created, err := repo.Create(ctx, dao.StoredTable{Name: "arith", Table: calc.Table()})
	assert.NoError(err)

	deleted, err := repo.Delete(ctx, created.ID)
	assert.NoError(err)
	assert.Equal(created.ID, deleted.ID)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(err, dao.ErrNotFound)

	_, err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(err, dao.ErrNotFound)
}

func Test_NewDatastore_Reopen(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewDatastore(dir)
	require.NoError(t, err)
	created, err := store.Tables().Create(ctx, dao.StoredTable{Name: "arith", Table: calc.Table()})
	assert.NoError(err)
	assert.NoError(store.Close())

	store, err = NewDatastore(dir)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Tables().GetByID(ctx, created.ID)
	assert.NoError(err)
	assert.True(got.Table.Equal(calc.Table()))
}
