package sqlite

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
	"github.com/SscSPs/cekel_duit/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, RunMigrations(path, logger))

	db, err := database.NewSQLiteDB(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { database.CloseSQLiteDB(db) })
	return db
}

func TestMedium_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMedium(newTestDB(t), 0)

	_, found, err := m.Get(ctx, "transactions")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, m.Set(ctx, "transactions", []byte(`[]`)))
	require.NoError(t, m.Set(ctx, "transactions", []byte(`[{"id":"a"}]`)))

	value, found, err := m.Get(ctx, "transactions")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"a"}]`, string(value))

	require.NoError(t, m.Delete(ctx, "transactions"))
	_, found, err = m.Get(ctx, "transactions")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key is not an error.
	assert.NoError(t, m.Delete(ctx, "transactions"))
}

func TestMedium_DeleteManyKeys(t *testing.T) {
	ctx := context.Background()
	m := NewMedium(newTestDB(t), 0)

	for _, key := range []string{"transactions", "savingsTargets", "profile"} {
		require.NoError(t, m.Set(ctx, key, []byte(`[]`)))
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.Error(t, m.Delete(cancelled, "transactions", "savingsTargets", "profile"))
	for _, key := range []string{"transactions", "savingsTargets", "profile"} {
		_, found, err := m.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, found, "a failed delete keeps %s", key)
	}

	require.NoError(t, m.Delete(ctx, "transactions", "savingsTargets", "profile", "absent"))
	for _, key := range []string{"transactions", "savingsTargets", "profile"} {
		_, found, err := m.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found, key)
	}
}

func TestMedium_Quota(t *testing.T) {
	ctx := context.Background()
	m := NewMedium(newTestDB(t), 32)

	require.NoError(t, m.Set(ctx, "profile", []byte(`{"name":"Arek"}`)))

	err := m.Set(ctx, "transactions", []byte(`[{"id":"a","amount":"1000"}]`))
	require.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrQuotaExceeded)

	_, found, err := m.Get(ctx, "transactions")
	require.NoError(t, err)
	assert.False(t, found, "rejected write must not be stored")

	// Replacing an existing key only counts its new size.
	require.NoError(t, m.Set(ctx, "profile", []byte(`{"name":"Cak Di"}`)))
}

func TestRunMigrations_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, RunMigrations(path, logger))
	assert.NoError(t, RunMigrations(path, logger))
}
