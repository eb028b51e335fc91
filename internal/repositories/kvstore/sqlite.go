package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophdash/internal/dbx"
)

// SQLiteStore keeps keys in the kv_store table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	return sqlTx{s.db}.Get(ctx, key)
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value string) error {
	return sqlTx{s.db}.Set(ctx, key, value)
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	return sqlTx{s.db}.Remove(ctx, key)
}

func (s *SQLiteStore) Update(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, sqlTx{tx})
	})
}

// sqlTx runs the queries against either the pool or an open transaction.
type sqlTx struct {
	db dbx.DBTX
}

func (t sqlTx) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := t.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

func (t sqlTx) Set(ctx context.Context, key string, value string) error {
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (t sqlTx) Remove(ctx context.Context, key string) error {
	if _, err := t.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
