package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
)

func newTestSessionCache(t *testing.T) (LocalSessionCache, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewLocalSessionCache(&DB{DB: db}, logger.Nop()), mock
}

func TestSessionCache_Load(t *testing.T) {
	t.Run("cached", func(t *testing.T) {
		cache, mock := newTestSessionCache(t)
		mock.ExpectQuery(`SELECT secret FROM local_session WHERE id = \?`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"secret"}).AddRow("s3cr3t"))

		secret, err := cache.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "s3cr3t", secret)
	})

	t.Run("empty", func(t *testing.T) {
		cache, mock := newTestSessionCache(t)
		mock.ExpectQuery("SELECT secret FROM local_session").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"secret"}))

		_, err := cache.Load(context.Background())
		require.ErrorIs(t, err, ErrLocalSessionNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		cache, mock := newTestSessionCache(t)
		mock.ExpectQuery("SELECT secret FROM local_session").
			WithArgs(1).
			WillReturnError(errors.New("disk I/O error"))

		_, err := cache.Load(context.Background())
		require.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestSessionCache_Save(t *testing.T) {
	cache, mock := newTestSessionCache(t)
	mock.ExpectExec(`INSERT INTO local_session \(id,secret,saved_at\) VALUES \(\?,\?,CURRENT_TIMESTAMP\) ON CONFLICT\(id\) DO UPDATE`).
		WithArgs(1, "s3cr3t").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, cache.Save(context.Background(), "s3cr3t"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionCache_SaveEmptyClears(t *testing.T) {
	cache, mock := newTestSessionCache(t)
	mock.ExpectExec(`DELETE FROM local_session WHERE id = \?`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, cache.Save(context.Background(), ""))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionCache_Clear(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		cache, mock := newTestSessionCache(t)
		mock.ExpectExec("DELETE FROM local_session").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, cache.Clear(context.Background()))
	})

	t.Run("error", func(t *testing.T) {
		cache, mock := newTestSessionCache(t)
		mock.ExpectExec("DELETE FROM local_session").
			WithArgs(1).
			WillReturnError(errors.New("locked"))

		require.ErrorIs(t, cache.Clear(context.Background()), ErrExecutingQuery)
	})
}
