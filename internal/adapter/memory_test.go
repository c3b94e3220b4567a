package adapter

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Documents ───────────────────────────────────────────────────────────────

func TestMemoryDocuments_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocumentStore()

	created, err := store.Create(ctx, "profiles", "user-1", models.Fields{"name": "Ada", "theme": "light"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", created.ID)

	_, err = store.Create(ctx, "profiles", "user-1", models.Fields{})
	assert.ErrorIs(t, err, ErrConflict)

	updated, err := store.Update(ctx, "profiles", "user-1", models.Fields{"theme": "dark"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Ada", "theme": "dark"}, updated.Data)

	got, err := store.Get(ctx, "profiles", "user-1")
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, store.Delete(ctx, "profiles", "user-1"))

	_, err = store.Get(ctx, "profiles", "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Update(ctx, "profiles", "user-1", models.Fields{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "profiles", "user-1"), ErrNotFound)
}

func TestMemoryDocuments_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocumentStore()

	tags := []string{"a"}
	_, err := store.Create(ctx, "journals", "e1", models.Fields{"tags": tags})
	require.NoError(t, err)
	tags[0] = "mutated"

	got, err := store.Get(ctx, "journals", "e1")
	require.NoError(t, err)
	got.Data["tags"].([]string)[0] = "also-mutated"

	again, err := store.Get(ctx, "journals", "e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, again.Strings("tags"))
}

func TestMemoryDocuments_List(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocumentStore()

	seed := []struct {
		id     string
		fields models.Fields
	}{
		{"a", models.Fields{"userId": "u1", "title": "Morning walk", "mood": "calm", "createdAt": "2026-01-01T10:00:00.000Z"}},
		{"b", models.Fields{"userId": "u1", "title": "Rainy EVENING", "mood": "sad", "createdAt": "2026-01-02T10:00:00.000Z"}},
		{"c", models.Fields{"userId": "u1", "title": "Evening run", "mood": "calm", "createdAt": "2026-01-03T10:00:00.000Z"}},
		{"x", models.Fields{"userId": "u2", "title": "Evening of someone else", "mood": "calm", "createdAt": "2026-01-04T10:00:00.000Z"}},
	}
	for _, s := range seed {
		_, err := store.Create(ctx, "journals", s.id, s.fields)
		require.NoError(t, err)
	}

	ids := func(docs []models.Document) []string {
		out := make([]string, 0, len(docs))
		for _, d := range docs {
			out = append(out, d.ID)
		}
		return out
	}

	t.Run("by user newest first", func(t *testing.T) {
		docs, err := store.List(ctx, "journals", QueryEqual("userId", "u1"), QueryOrderDesc("createdAt"))
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "b", "a"}, ids(docs))
	})

	t.Run("search ignores case", func(t *testing.T) {
		docs, err := store.List(ctx, "journals",
			QueryEqual("userId", "u1"), QuerySearch("title", "evening"), QueryOrderDesc("createdAt"))
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "b"}, ids(docs))
	})

	t.Run("by mood", func(t *testing.T) {
		docs, err := store.List(ctx, "journals",
			QueryEqual("userId", "u1"), QueryEqual("mood", "calm"), QueryOrderDesc("createdAt"))
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a"}, ids(docs))
	})

	t.Run("unknown collection", func(t *testing.T) {
		docs, err := store.List(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestMemoryDocuments_List_TiesNewestInsertFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocumentStore()

	for _, id := range []string{"first", "second", "third"} {
		_, err := store.Create(ctx, "journals", id, models.Fields{"createdAt": "2026-01-01T10:00:00.000Z"})
		require.NoError(t, err)
	}

	docs, err := store.List(ctx, "journals", QueryOrderDesc("createdAt"))
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "third", docs[0].ID)
	assert.Equal(t, "first", docs[2].ID)
}

// ── Objects ─────────────────────────────────────────────────────────────────

func TestMemoryObjects(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryObjectStore("memory://files/")

	stored, err := store.Create(ctx, "pics", "img_1", models.File{Name: "a.png", MimeType: "image/png", Content: []byte{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, models.StoredFile{ID: "img_1", Bucket: "pics", Name: "a.png", MimeType: "image/png", Size: 3}, stored)

	_, err = store.Create(ctx, "pics", "img_1", models.File{})
	assert.ErrorIs(t, err, ErrConflict)

	assert.Equal(t, "memory://files/pics/img_1", store.ViewURL("pics", "img_1"))

	require.NoError(t, store.Delete(ctx, "pics", "img_1"))
	assert.ErrorIs(t, store.Delete(ctx, "pics", "img_1"), ErrNotFound)
}

// ── Identity ────────────────────────────────────────────────────────────────

func TestMemoryIdentity_Lifecycle(t *testing.T) {
	ctx := context.Background()
	id := NewMemoryIdentity()

	_, err := id.Current(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	acc, err := id.CreateAccount(ctx, "ada@example.com", "password1", "Ada")
	require.NoError(t, err)
	assert.NotEmpty(t, acc.ID)

	_, err = id.CreateAccount(ctx, "ADA@example.com", "password2", "Other")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = id.CreateSession(ctx, "ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrUnauthorized)

	session, err := id.CreateSession(ctx, "ada@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, session.UserID)
	assert.Equal(t, session.Secret, id.Secret())

	current, err := id.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, acc, current)

	require.NoError(t, id.DeleteAllSessions(ctx))
	assert.Empty(t, id.Secret())

	id.SetSecret(session.Secret)
	_, err = id.Current(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized, "deleted sessions cannot be restored")
}

// ── Backend ─────────────────────────────────────────────────────────────────

func TestBackend_CloseRunsClosersInReverse(t *testing.T) {
	var order []string
	b := NewMemoryBackend()
	b.OnClose(func(context.Context) error { order = append(order, "first"); return nil })
	b.OnClose(func(context.Context) error { order = append(order, "second"); return assert.AnError })

	err := b.Close(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, []string{"second", "first"}, order)
	assert.NoError(t, b.Close(context.Background()))
}
