package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dekarrin/srparse/server/dao"
	"github.com/google/uuid"
)

// TablesDB is a dao.TableRepository stored in a SQLite table.
type TablesDB struct {
	db *sql.DB
}

func (repo *TablesDB) init() error {
	_, err := repo.db.Exec(`CREATE TABLE IF NOT EXISTS action_tables (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		data TEXT NOT NULL,
		created INTEGER NOT NULL
	);`)
	if err != nil {
		return wrapDBError(err)
	}

	return nil
}

func (repo *TablesDB) Create(ctx context.Context, t dao.StoredTable) (dao.StoredTable, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.StoredTable{}, fmt.Errorf("could not generate ID: %w", err)
	}

	stmt, err := repo.db.PrepareContext(ctx, `INSERT INTO action_tables (id, name, data, created) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return dao.StoredTable{}, wrapDBError(err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(
		ctx,
		convertToDB_UUID(newUUID),
		t.Name,
		convertToDB_Table(t.Table),
		convertToDB_Time(time.Now()),
	)
	if err != nil {
		return dao.StoredTable{}, wrapDBError(err)
	}

	return repo.GetByID(ctx, newUUID)
}

func (repo *TablesDB) GetAll(ctx context.Context) ([]dao.StoredTable, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT id, name, data, created FROM action_tables ORDER BY name;`)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var all []dao.StoredTable

	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, t)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err)
	}

	return all, nil
}

func (repo *TablesDB) GetByID(ctx context.Context, id uuid.UUID) (dao.StoredTable, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT id, name, data, created FROM action_tables WHERE id = ?;`,
		convertToDB_UUID(id),
	)
	return scanTable(row)
}

func (repo *TablesDB) GetByName(ctx context.Context, name string) (dao.StoredTable, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT id, name, data, created FROM action_tables WHERE name = ?;`,
		name,
	)
	return scanTable(row)
}

func (repo *TablesDB) Delete(ctx context.Context, id uuid.UUID) (dao.StoredTable, error) {
	curVal, err := repo.GetByID(ctx, id)
	if err != nil {
		return curVal, err
	}

	res, err := repo.db.ExecContext(ctx, `DELETE FROM action_tables WHERE id = ?`, convertToDB_UUID(id))
	if err != nil {
		return curVal, wrapDBError(err)
	}
	rowsAff, err := res.RowsAffected()
	if err != nil {
		return curVal, wrapDBError(err)
	}
	if rowsAff < 1 {
		return curVal, dao.ErrNotFound
	}

	return curVal, nil
}

func (repo *TablesDB) Close() error {
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTable(s scanner) (dao.StoredTable, error) {
	var t dao.StoredTable
	var id string
	var data string
	var created int64

	err := s.Scan(&id, &t.Name, &data, &created)
	if err != nil {
		return dao.StoredTable{}, wrapDBError(err)
	}

	if err := convertFromDB_UUID(id, &t.ID); err != nil {
		return dao.StoredTable{}, fmt.Errorf("stored ID %q is invalid: %w", id, err)
	}
	if err := convertFromDB_Table(data, &t.Table); err != nil {
		return dao.StoredTable{}, fmt.Errorf("stored table for %s is invalid: %w", id, err)
	}
	convertFromDB_Time(created, &t.Created)

	return t, nil
}
