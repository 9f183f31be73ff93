package srs

import (
	"context"
	"errors"
	"strings"

	"github.com/dekarrin/srparse/lr"
	"github.com/dekarrin/srparse/server/dao"
	"github.com/dekarrin/srparse/server/serr"
	"github.com/google/uuid"
)

// GetAllTables returns all tables currently in persistence.
func (svc *Service) GetAllTables(ctx context.Context) ([]dao.StoredTable, error) {
	tables, err := svc.DB.Tables().GetAll(ctx)
	if err != nil {
		return nil, serr.WrapDB("", err)
	}

	return tables, nil
}

// GetTable returns the table with the given ID.
//
// The returned error, if non-nil, will return true for various calls to
// errors.Is depending on what caused the error. If no table with that ID
// exists, it will match serr.ErrNotFound. If the error occured due to an
// unexpected problem with the DB, it will match serr.ErrDB. Finally, if the ID
// is not valid, it will match serr.ErrBadArgument.
func (svc *Service) GetTable(ctx context.Context, id string) (dao.StoredTable, error) {
	uuidID, err := uuid.Parse(id)
	if err != nil {
		return dao.StoredTable{}, serr.New("ID is not valid", serr.ErrBadArgument)
	}

	t, err := svc.DB.Tables().GetByID(ctx, uuidID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.StoredTable{}, serr.ErrNotFound
		}
		return dao.StoredTable{}, serr.WrapDB("could not get table", err)
	}

	return t, nil
}

// CreateTable stores t under the given name and returns it as it exists after
// creation. t is checked with Validate first.
//
// The returned error, if non-nil, will return true for various calls to
// errors.Is depending on what caused the error. If a table with that name is
// already present, it will match serr.ErrAlreadyExists. If t is not
// well-formed, it will match serr.ErrInvalidTable and serr.ErrBadArgument. If
// the error occured due to an unexpected problem with the DB, it will match
// serr.ErrDB.
func (svc *Service) CreateTable(ctx context.Context, name string, t lr.Table) (dao.StoredTable, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dao.StoredTable{}, serr.New("name cannot be blank", serr.ErrBadArgument)
	}
	if err := t.Validate(); err != nil {
		return dao.StoredTable{}, serr.New("", err, serr.ErrInvalidTable, serr.ErrBadArgument)
	}

	_, err := svc.DB.Tables().GetByName(ctx, name)
	if err == nil {
		return dao.StoredTable{}, serr.New("a table with that name already exists", serr.ErrAlreadyExists)
	} else if !errors.Is(err, dao.ErrNotFound) {
		return dao.StoredTable{}, serr.WrapDB("", err)
	}

	stored, err := svc.DB.Tables().Create(ctx, dao.StoredTable{Name: name, Table: t})
	if err != nil {
		if errors.Is(err, dao.ErrConstraintViolation) {
			return dao.StoredTable{}, serr.New("a table with that name already exists", serr.ErrAlreadyExists)
		}
		return dao.StoredTable{}, serr.WrapDB("could not create table", err)
	}

	return stored, nil
}

// DeleteTable deletes the table with the given ID. It returns the deleted
// table just after it was deleted.
//
// The returned error, if non-nil, will return true for various calls to
// errors.Is depending on what caused the error. If no table with that ID
// exists, it will match serr.ErrNotFound. If the error occured due to an
// unexpected problem with the DB, it will match serr.ErrDB. Finally, if the ID
// is not valid, it will match serr.ErrBadArgument.
func (svc *Service) DeleteTable(ctx context.Context, id string) (dao.StoredTable, error) {
	uuidID, err := uuid.Parse(id)
	if err != nil {
		return dao.StoredTable{}, serr.New("ID is not valid", serr.ErrBadArgument)
	}

	t, err := svc.DB.Tables().Delete(ctx, uuidID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.StoredTable{}, serr.ErrNotFound
		}
		return dao.StoredTable{}, serr.WrapDB("could not delete table", err)
	}

	svc.evictParser(uuidID)

	return t, nil
}
