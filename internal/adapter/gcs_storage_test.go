package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestGCS_ViewURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{"default base", "", "https://storage.googleapis.com/pics/img_1"},
		{"custom base", "https://cdn.example.com/", "https://cdn.example.com/pics/img_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewGCSObjectStore(nil, tt.base, logger.Nop())
			assert.Equal(t, tt.want, store.ViewURL("pics", "img_1"))
		})
	}
}

func TestGCSError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"object missing", storage.ErrObjectNotExist, ErrNotFound},
		{"wrapped object missing", fmt.Errorf("x: %w", storage.ErrObjectNotExist), ErrNotFound},
		{"api 404", &googleapi.Error{Code: http.StatusNotFound}, ErrNotFound},
		{"api 403", &googleapi.Error{Code: http.StatusForbidden, Message: "denied"}, ErrForbidden},
		{"api 401", &googleapi.Error{Code: http.StatusUnauthorized}, ErrUnauthorized},
		{"api 412", &googleapi.Error{Code: http.StatusPreconditionFailed}, ErrConflict},
		{"api 500", &googleapi.Error{Code: http.StatusInternalServerError}, ErrRemote},
		{"other", errors.New("dial tcp"), ErrRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, gcsError(tt.err, "delete %s", "pics/img_1"), tt.want)
		})
	}
}
