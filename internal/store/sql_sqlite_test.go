package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
)

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.db")

	require.NoError(t, createLocalDBFileIfNotExists(path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	// second call keeps the existing file
	require.NoError(t, createLocalDBFileIfNotExists(path))
	require.NoError(t, createLocalDBFileIfNotExists(":memory:"))
}

func TestLocalSessionCache_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := NewConnectSQLite(ctx, config.Local{DSN: filepath.Join(t.TempDir(), "journal.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cache := NewLocalSessionCache(db, logger.Nop())

	_, err = cache.Load(ctx)
	require.ErrorIs(t, err, ErrLocalSessionNotFound)

	require.NoError(t, cache.Save(ctx, "first"))
	require.NoError(t, cache.Save(ctx, "second"))

	secret, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", secret)

	require.NoError(t, cache.Clear(ctx))
	_, err = cache.Load(ctx)
	require.ErrorIs(t, err, ErrLocalSessionNotFound)
}
