package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv_store (
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

// stores runs the same contract against every implementation.
func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"sqlite": NewSQLiteStore(setupDB(t)),
		"memory": NewMemoryStore(),
	}
}

func TestStore_SetGetRemove(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := s.Get(ctx, "user")
			require.NoError(t, err)
			assert.False(t, ok, "missing key means empty")

			require.NoError(t, s.Set(ctx, "user", `{"id":"1"}`))
			v, ok, err := s.Get(ctx, "user")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{"id":"1"}`, v)

			require.NoError(t, s.Set(ctx, "user", `{"id":"2"}`))
			v, _, err = s.Get(ctx, "user")
			require.NoError(t, err)
			assert.Equal(t, `{"id":"2"}`, v, "set overwrites")

			require.NoError(t, s.Remove(ctx, "user"))
			_, ok, err = s.Get(ctx, "user")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Remove(ctx, "user"), "remove is idempotent")
		})
	}
}

func TestStore_UpdateCommits(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "old", "x"))

			err := s.Update(ctx, func(ctx context.Context, tx Tx) error {
				if err := tx.Set(ctx, "users", "[]"); err != nil {
					return err
				}
				v, ok, err := tx.Get(ctx, "users")
				require.NoError(t, err)
				require.True(t, ok, "writes are visible inside the unit of work")
				require.Equal(t, "[]", v)
				return tx.Remove(ctx, "old")
			})
			require.NoError(t, err)

			v, ok, err := s.Get(ctx, "users")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "[]", v)

			_, ok, err = s.Get(ctx, "old")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStore_UpdateRollsBackOnError(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "user", "keep"))
			boom := errors.New("boom")

			err := s.Update(ctx, func(ctx context.Context, tx Tx) error {
				require.NoError(t, tx.Set(ctx, "users", "[1]"))
				require.NoError(t, tx.Remove(ctx, "user"))
				return boom
			})
			require.ErrorIs(t, err, boom)

			_, ok, err := s.Get(ctx, "users")
			require.NoError(t, err)
			assert.False(t, ok, "no partial writes")

			v, ok, err := s.Get(ctx, "user")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "keep", v)
		})
	}
}
