package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// createTestStorage returns a migrated in-memory storage and its cleanup.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)

	require.NoError(t, store.Migrate(context.Background()))

	return store, func() {
		_ = store.Close()
	}
}

func TestMigrate(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Migrations are idempotent.
	require.NoError(t, store.Migrate(context.Background()))

	var version int
	err := store.db.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&version)
	require.NoError(t, err)
	require.Equal(t, ExpectedSchemaVersion, version)
}

func TestNewSQLiteStorageValidation(t *testing.T) {
	_, err := NewSQLiteStorage("")
	require.Error(t, err)
}
