package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal-keeper/internal/adapter"
	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/service"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
	"github.com/MKhiriev/go-journal-keeper/models"
)

func memoryConfig(t *testing.T) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		App: config.App{PictureMaxEdge: 256},
		Adapter: config.Adapter{
			Kind:                 config.KindMemory,
			ProfilesCollectionID: "profiles",
			JournalsCollectionID: "journals",
			PicturesBucketID:     "profile-pictures",
		},
		Storage: config.Storage{Local: config.Local{DSN: filepath.Join(t.TempDir(), "journal.db")}},
	}
}

func TestNewBackend_UnknownKind(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Adapter.Kind = "ftp"

	_, err := NewBackend(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestNewBackend_SelfHostedFailsFast(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Adapter.Kind = config.KindSelfHosted
	cfg.Storage.Mongo = config.Mongo{URI: "not-a-uri", Database: "journal"}

	_, err := NewBackend(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}

// TestNewApp_MemoryRoundTrip drives the assembled holder end to end against
// the in-memory backend and a real SQLite session cache.
func TestNewApp_MemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig(t)

	a, err := NewApp(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer a.Close(ctx)

	res := a.Holder.Hydrate(ctx)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, session.StateAnonymous, res.Data.State)

	creds := models.Credentials{Email: "ann@example.com", Password: "correct-horse", Name: "Ann"}
	res = a.Holder.SignUp(ctx, creds)
	require.True(t, res.Success, res.Error)
	require.NotNil(t, res.Data.Profile)
	assert.Equal(t, "Ann", res.Data.Profile.Name)
	assert.Equal(t, models.DefaultPreferences(), res.Data.Profile.Preferences)

	entry := a.Holder.CreateEntry(ctx, models.JournalEntryDraft{Title: "First", Content: "hello", Tags: "a, b ,,c "})
	require.True(t, entry.Success, entry.Error)
	assert.Equal(t, []string{"a", "b", "c"}, entry.Data.Tags)

	list := a.Holder.ListEntries(ctx)
	require.True(t, list.Success, list.Error)
	assert.Len(t, list.Data, 1)

	out := a.Holder.SignOut(ctx)
	assert.True(t, out.Success, out.Error)
	assert.Equal(t, session.StateAnonymous, a.Holder.Snapshot().State)
}

func TestMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("%w: %w", session.ErrRemoteSignOut, adapter.ErrRemote), MsgSignedOutLocally},
		{session.ErrNotAuthenticated, MsgNotSignedIn},
		{fmt.Errorf("%w: %w", session.ErrNotOwner, adapter.ErrForbidden), MsgAccessDenied},
		{fmt.Errorf("%w: title is empty", service.ErrValidation), MsgInvalidDataProvided},
		{fmt.Errorf("%w: %w", service.ErrEntryNotFound, adapter.ErrNotFound), MsgDataNotFound},
		{fmt.Errorf("%w: invalid credentials", adapter.ErrUnauthorized), MsgInvalidLoginPassword},
		{adapter.ErrConflict, MsgEmailAlreadyExists},
		{fmt.Errorf("%w: dial tcp", adapter.ErrRemote), MsgBackendUnavailable},
		{errors.New("boom"), MsgInternalError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Message(tt.err))
	}
}
