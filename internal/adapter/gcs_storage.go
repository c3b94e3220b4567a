package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/models"
	"google.golang.org/api/googleapi"
)

const gcsDefaultPublicBaseURL = "https://storage.googleapis.com"

type gcsObjectStore struct {
	client        *storage.Client
	publicBaseURL string
	logger        *logger.Logger
}

// NewGCSObjectStore returns an [ObjectStore] backed by Google Cloud Storage.
// Buckets are GCS buckets; view URLs are built from publicBaseURL, which
// defaults to https://storage.googleapis.com.
func NewGCSObjectStore(client *storage.Client, publicBaseURL string, logger *logger.Logger) ObjectStore {
	publicBaseURL = strings.TrimRight(strings.TrimSpace(publicBaseURL), "/")
	if publicBaseURL == "" {
		publicBaseURL = gcsDefaultPublicBaseURL
	}
	return &gcsObjectStore{client: client, publicBaseURL: publicBaseURL, logger: logger}
}

func (g *gcsObjectStore) Create(ctx context.Context, bucket, fileID string, file models.File) (models.StoredFile, error) {
	w := g.client.Bucket(bucket).Object(fileID).NewWriter(ctx)
	if file.MimeType != "" {
		w.ContentType = file.MimeType
	}
	if file.Name != "" {
		w.Metadata = map[string]string{"name": file.Name}
	}

	if _, err := io.Copy(w, bytes.NewReader(file.Content)); err != nil {
		_ = w.Close()
		return models.StoredFile{}, gcsError(err, "write %s/%s", bucket, fileID)
	}
	if err := w.Close(); err != nil {
		return models.StoredFile{}, gcsError(err, "close writer %s/%s", bucket, fileID)
	}

	stored := models.StoredFile{ID: fileID, Bucket: bucket, Name: file.Name, MimeType: file.MimeType, Size: int64(file.Size())}
	if attrs := w.Attrs(); attrs != nil {
		stored.Size = attrs.Size
		stored.MimeType = attrs.ContentType
	}
	return stored, nil
}

func (g *gcsObjectStore) Delete(ctx context.Context, bucket, fileID string) error {
	if err := g.client.Bucket(bucket).Object(fileID).Delete(ctx); err != nil {
		return gcsError(err, "delete %s/%s", bucket, fileID)
	}
	return nil
}

func (g *gcsObjectStore) ViewURL(bucket, fileID string) string {
	return g.publicBaseURL + "/" + url.PathEscape(bucket) + "/" + url.PathEscape(fileID)
}

func gcsError(err error, format string, args ...any) error {
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrNotFound, what)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %s: %s", ErrUnauthorized, what, apiErr.Message)
		case http.StatusForbidden:
			return fmt.Errorf("%w: %s: %s", ErrForbidden, what, apiErr.Message)
		case http.StatusConflict, http.StatusPreconditionFailed:
			return fmt.Errorf("%w: %s: %s", ErrConflict, what, apiErr.Message)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrRemote, what, err)
}
