// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testProject  = "journal-project"
	testDatabase = "journal-db"
)

// newTestBackend creates an Appwrite backend pointed at the test server.
func newTestBackend(t *testing.T, serverURL string) *Backend {
	t.Helper()
	b, err := NewAppwriteBackend(config.Adapter{
		Endpoint:       serverURL,
		ProjectID:      testProject,
		DatabaseID:     testDatabase,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return b
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNewAppwriteBackend_InvalidEndpoint(t *testing.T) {
	_, err := NewAppwriteBackend(config.Adapter{ProjectID: testProject}, logger.Nop())
	assert.Error(t, err)
}

func TestNewAppwriteBackend_MissingProject(t *testing.T) {
	_, err := NewAppwriteBackend(config.Adapter{Endpoint: "http://localhost/v1"}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" cloud.appwrite.io/v1/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://cloud.appwrite.io/v1", got)

	_, err = normalizeBaseURL("")
	assert.Error(t, err)
}

// ── Documents ───────────────────────────────────────────────────────────────

func TestDocuments_Get_StripsMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/databases/journal-db/collections/profiles/documents/user-1", r.URL.Path)
		assert.Equal(t, testProject, r.Header.Get(headerProject))
		assert.Equal(t, "secret-1", r.Header.Get(headerSession))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"$id":           "user-1",
			"$collectionId": "profiles",
			"$createdAt":    "2026-03-14T09:26:53.589+00:00",
			"name":          "Ada",
			"notifications": false,
		})
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	b.Identity.SetSecret("secret-1")

	doc, err := b.Documents.Get(context.Background(), "profiles", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", doc.ID)
	assert.Equal(t, map[string]any{"name": "Ada", "notifications": false}, doc.Data)
}

func TestDocuments_Get_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]any{
			"message": "Document with the requested ID could not be found.",
			"code":    404,
			"type":    "document_not_found",
		})
	}))
	defer srv.Close()

	_, err := newTestBackend(t, srv.URL).Documents.Get(context.Background(), "profiles", "nobody")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "could not be found")
}

func TestDocuments_Create_SendsIDAndData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/databases/journal-db/collections/journals/documents", r.URL.Path)

		var body struct {
			DocumentID string         `json:"documentId"`
			Data       map[string]any `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "entry-1", body.DocumentID)
		assert.Equal(t, "Day one", body.Data["title"])

		writeJSON(t, w, http.StatusCreated, map[string]any{"$id": "entry-1", "title": "Day one"})
	}))
	defer srv.Close()

	doc, err := newTestBackend(t, srv.URL).Documents.Create(context.Background(), "journals", "entry-1",
		models.Fields{"title": "Day one"})

	require.NoError(t, err)
	assert.Equal(t, "entry-1", doc.ID)
	assert.Equal(t, "Day one", doc.String("title"))
}

func TestDocuments_Create_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, map[string]any{"message": "Document already exists", "code": 409})
	}))
	defer srv.Close()

	_, err := newTestBackend(t, srv.URL).Documents.Create(context.Background(), "journals", "entry-1", models.Fields{})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestDocuments_Update_UsesPatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/databases/journal-db/collections/profiles/documents/user-1", r.URL.Path)

		var body map[string]map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "dark", body["data"]["theme"])

		writeJSON(t, w, http.StatusOK, map[string]any{"$id": "user-1", "theme": "dark"})
	}))
	defer srv.Close()

	doc, err := newTestBackend(t, srv.URL).Documents.Update(context.Background(), "profiles", "user-1",
		models.Fields{"theme": "dark"})

	require.NoError(t, err)
	assert.Equal(t, "dark", doc.String("theme"))
}

func TestDocuments_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/databases/journal-db/collections/journals/documents/entry-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestBackend(t, srv.URL).Documents.Delete(context.Background(), "journals", "entry-1")
	assert.NoError(t, err)
}

func TestDocuments_List_SendsQueries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/databases/journal-db/collections/journals/documents", r.URL.Path)
		assert.Equal(t, []string{
			`{"method":"equal","attribute":"userId","values":["user-1"]}`,
			`{"method":"orderDesc","attribute":"createdAt"}`,
		}, r.URL.Query()["queries[]"])

		writeJSON(t, w, http.StatusOK, map[string]any{
			"total": 2,
			"documents": []map[string]any{
				{"$id": "b", "title": "B", "tags": []string{"x"}},
				{"$id": "a", "title": "A", "tags": []string{}},
			},
		})
	}))
	defer srv.Close()

	docs, err := newTestBackend(t, srv.URL).Documents.List(context.Background(), "journals",
		QueryEqual("userId", "user-1"), QueryOrderDesc("createdAt"))

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0].ID)
	assert.Equal(t, []string{"x"}, docs[0].Strings("tags"))
	assert.Equal(t, "a", docs[1].ID)
}

func TestDocuments_List_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestBackend(t, srv.URL).Documents.List(context.Background(), "journals")
	assert.ErrorIs(t, err, ErrBadGateway)
}

// ── Storage ─────────────────────────────────────────────────────────────────

func TestStorage_Create_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/storage/buckets/pics/files", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "img_1", r.FormValue("fileId"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		content, _ := io.ReadAll(f)
		assert.Equal(t, "avatar.jpg", hdr.Filename)
		assert.Equal(t, "image/jpeg", hdr.Header.Get("Content-Type"))
		assert.Equal(t, []byte("jpeg-bytes"), content)

		writeJSON(t, w, http.StatusCreated, map[string]any{
			"$id": "img_1", "bucketId": "pics", "name": "avatar.jpg", "mimeType": "image/jpeg", "sizeOriginal": 10,
		})
	}))
	defer srv.Close()

	stored, err := newTestBackend(t, srv.URL).Objects.Create(context.Background(), "pics", "img_1", models.File{
		URI: "file:///tmp/avatar.jpg", Name: "avatar.jpg", MimeType: "image/jpeg", Content: []byte("jpeg-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, models.StoredFile{ID: "img_1", Bucket: "pics", Name: "avatar.jpg", MimeType: "image/jpeg", Size: 10}, stored)
}

func TestStorage_Delete_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage/buckets/pics/files/img_1", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, map[string]any{"message": "File not found"})
	}))
	defer srv.Close()

	err := newTestBackend(t, srv.URL).Objects.Delete(context.Background(), "pics", "img_1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_ViewURL(t *testing.T) {
	b := newTestBackend(t, "https://cloud.appwrite.io/v1")

	assert.Equal(t,
		"https://cloud.appwrite.io/v1/storage/buckets/pics/files/img_1/view?project=journal-project",
		b.Objects.ViewURL("pics", "img_1"))
}

// ── Account ─────────────────────────────────────────────────────────────────

func TestAccount_Current_WithoutSecretIsUnauthorized(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := newTestBackend(t, srv.URL).Identity.Current(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, called)
}

func TestAccount_Current(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account", r.URL.Path)
		assert.Equal(t, "secret-1", r.Header.Get(headerSession))
		writeJSON(t, w, http.StatusOK, map[string]any{"$id": "user-1", "name": "Ada", "email": "ada@example.com"})
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	b.Identity.SetSecret("secret-1")

	id, err := b.Identity.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Identity{ID: "user-1", Name: "Ada", Email: "ada@example.com"}, id)
}

func TestAccount_Current_Expired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{"message": "User (role: guests) missing scope (account)"})
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	b.Identity.SetSecret("stale")

	_, err := b.Identity.Current(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAccount_CreateAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/account", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "unique()", body["userId"])
		assert.Equal(t, "ada@example.com", body["email"])
		assert.Equal(t, "Ada", body["name"])

		writeJSON(t, w, http.StatusCreated, map[string]any{"$id": "user-1", "name": "Ada", "email": "ada@example.com"})
	}))
	defer srv.Close()

	id, err := newTestBackend(t, srv.URL).Identity.CreateAccount(context.Background(), "ada@example.com", "password1", "Ada")

	require.NoError(t, err)
	assert.Equal(t, "user-1", id.ID)
}

func TestAccount_CreateSession_SecretFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account/sessions/email", r.URL.Path)
		writeJSON(t, w, http.StatusCreated, map[string]any{
			"$id": "sess-1", "userId": "user-1", "expire": "2027-03-14T09:26:53.589+00:00", "secret": "body-secret",
		})
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	s, err := b.Identity.CreateSession(context.Background(), "ada@example.com", "password1")

	require.NoError(t, err)
	assert.Equal(t, "sess-1", s.ID)
	assert.Equal(t, "user-1", s.UserID)
	assert.Equal(t, "body-secret", s.Secret)
	assert.Equal(t, 2027, s.Expire.Year())
	assert.Equal(t, "body-secret", b.Identity.Secret())
}

func TestAccount_CreateSession_SecretFromCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "a_session_" + testProject, Value: "cookie-secret"})
		writeJSON(t, w, http.StatusCreated, map[string]any{"$id": "sess-1", "userId": "user-1", "secret": ""})
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	s, err := b.Identity.CreateSession(context.Background(), "ada@example.com", "password1")

	require.NoError(t, err)
	assert.Equal(t, "cookie-secret", s.Secret)
	assert.Equal(t, "cookie-secret", b.Identity.Secret())
}

func TestAccount_CreateSession_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{"message": "Invalid credentials."})
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	_, err := b.Identity.CreateSession(context.Background(), "ada@example.com", "wrong-pass")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, b.Identity.Secret())
}

func TestAccount_DeleteAllSessions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/account/sessions", r.URL.Path)
		assert.Equal(t, "secret-1", r.Header.Get(headerSession))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	b.Identity.SetSecret("secret-1")

	require.NoError(t, b.Identity.DeleteAllSessions(context.Background()))
	assert.Empty(t, b.Identity.Secret())
}

func TestAccount_DeleteAllSessions_RemoteFailureKeepsSecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	b.Identity.SetSecret("secret-1")

	err := b.Identity.DeleteAllSessions(context.Background())
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, "secret-1", b.Identity.Secret())
}

// ── Error mapping ───────────────────────────────────────────────────────────

func TestMapHTTPError_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestBackend(t, srv.URL).Documents.Delete(context.Background(), "c", "id")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)
	assert.Contains(t, err.Error(), "418")
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", errorMessage([]byte(`{"message":"boom","code":500}`)))
	assert.Equal(t, "plain text", errorMessage([]byte("  plain text \n")))
	assert.Equal(t, "", errorMessage(nil))
}
