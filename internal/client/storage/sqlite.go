package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/authkeeper/authkeeper/internal/dbx"
)

// SQLiteStorage keeps the key/value pairs in the client_state table.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

func (r *SQLiteStorage) Get(ctx context.Context, key Key) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM client_state WHERE key = ?`, string(key)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get state[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteStorage) Set(ctx context.Context, key Key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO client_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, string(key), value)
	if err != nil {
		return fmt.Errorf("failed to set state[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteStorage) Remove(ctx context.Context, key Key) error {
	if err := remove(ctx, r.db, key); err != nil {
		return err
	}
	return nil
}

func (r *SQLiteStorage) RemoveMany(ctx context.Context, keys ...Key) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, key := range keys {
			if err := remove(ctx, tx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

func remove(ctx context.Context, db dbx.DBTX, key Key) error {
	_, err := db.ExecContext(ctx, `DELETE FROM client_state WHERE key = ?`, string(key))
	if err != nil {
		return fmt.Errorf("failed to remove state[%s]: %w", key, err)
	}
	return nil
}
