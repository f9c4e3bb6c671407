package storage

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStorage(db)
}

func TestGet_MissingKey(t *testing.T) {
	st := setupStorage(t)

	value, err := st.Get(context.Background(), KeySession)
	require.NoError(t, err)
	require.Equal(t, "", value, "a missing key must read as empty")
}

func TestSetGetRemove(t *testing.T) {
	st := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, KeySession, "raw-token"))

	value, err := st.Get(ctx, KeySession)
	require.NoError(t, err)
	require.Equal(t, "raw-token", value)

	// Upsert on the same key.
	require.NoError(t, st.Set(ctx, KeySession, "newer-token"))
	value, err = st.Get(ctx, KeySession)
	require.NoError(t, err)
	require.Equal(t, "newer-token", value)

	require.NoError(t, st.Remove(ctx, KeySession))
	value, err = st.Get(ctx, KeySession)
	require.NoError(t, err)
	require.Equal(t, "", value)
}

func TestKeysAreIndependent(t *testing.T) {
	st := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, KeySession, "session-raw"))
	require.NoError(t, st.Set(ctx, KeySudo, "sudo-raw"))
	require.NoError(t, st.Remove(ctx, KeySudo))

	value, err := st.Get(ctx, KeySession)
	require.NoError(t, err)
	require.Equal(t, "session-raw", value)
}

func TestRemoveMany(t *testing.T) {
	st := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, KeySession, "session-raw"))
	require.NoError(t, st.Set(ctx, KeySudo, "sudo-raw"))

	require.NoError(t, st.RemoveMany(ctx, KeySession, KeySudo))

	for _, key := range []Key{KeySession, KeySudo} {
		value, err := st.Get(ctx, key)
		require.NoError(t, err)
		require.Equal(t, "", value)
	}
}

func TestOpen_MigratesSchema(t *testing.T) {
	dsn := "file:open_migrates?mode=memory&cache=shared"
	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'client_state'`).Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "client_state", name)

	// Re-opening the same database must be a no-op, not a failure.
	db2, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, db2.Close())
}
