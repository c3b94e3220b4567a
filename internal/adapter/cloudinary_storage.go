package adapter

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const cloudinaryResourceType = "image"

// cloudinaryUploader is the part of the Cloudinary upload API the object
// store uses.
type cloudinaryUploader interface {
	Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

type cloudinaryObjectStore struct {
	cld      *cloudinary.Cloudinary
	uploader cloudinaryUploader
	logger   *logger.Logger
}

// NewCloudinaryObjectStore returns an [ObjectStore] backed by Cloudinary.
// Buckets map to folders: a file is stored under the public id
// "<bucket>/<fileID>".
func NewCloudinaryObjectStore(cfg config.Cloudinary, logger *logger.Logger) (ObjectStore, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	return &cloudinaryObjectStore{cld: cld, uploader: &cld.Upload, logger: logger}, nil
}

func cloudinaryPublicID(bucket, fileID string) string {
	return path.Join(bucket, fileID)
}

func (c *cloudinaryObjectStore) Create(ctx context.Context, bucket, fileID string, file models.File) (models.StoredFile, error) {
	res, err := c.uploader.Upload(ctx, bytes.NewReader(file.Content), uploader.UploadParams{
		PublicID:     cloudinaryPublicID(bucket, fileID),
		ResourceType: cloudinaryResourceType,
	})
	if err != nil {
		return models.StoredFile{}, fmt.Errorf("%w: upload to Cloudinary: %v", ErrRemote, err)
	}
	if res.Error.Message != "" {
		return models.StoredFile{}, fmt.Errorf("%w: upload to Cloudinary: %s", ErrRemote, res.Error.Message)
	}

	c.logger.Debug().Str("func", "*cloudinaryObjectStore.Create").Str("public_id", res.PublicID).Msg("uploaded")

	return models.StoredFile{
		ID:       fileID,
		Bucket:   bucket,
		Name:     file.Name,
		MimeType: file.MimeType,
		Size:     int64(res.Bytes),
	}, nil
}

func (c *cloudinaryObjectStore) Delete(ctx context.Context, bucket, fileID string) error {
	res, err := c.uploader.Destroy(ctx, uploader.DestroyParams{
		PublicID:     cloudinaryPublicID(bucket, fileID),
		ResourceType: cloudinaryResourceType,
	})
	if err != nil {
		return fmt.Errorf("%w: destroy on Cloudinary: %v", ErrRemote, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("%w: destroy on Cloudinary: %s", ErrRemote, res.Error.Message)
	}

	switch res.Result {
	case "ok":
		return nil
	case "not found":
		return fmt.Errorf("%w: file %s/%s", ErrNotFound, bucket, fileID)
	default:
		return fmt.Errorf("%w: destroy on Cloudinary: result %q", ErrRemote, res.Result)
	}
}

// ViewURL returns the delivery URL of the image, or "" when the SDK cannot
// build one.
func (c *cloudinaryObjectStore) ViewURL(bucket, fileID string) string {
	img, err := c.cld.Image(cloudinaryPublicID(bucket, fileID))
	if err != nil {
		c.logger.Err(err).Str("func", "*cloudinaryObjectStore.ViewURL").Msg("error building image asset")
		return ""
	}

	u, err := img.String()
	if err != nil {
		c.logger.Err(err).Str("func", "*cloudinaryObjectStore.ViewURL").Msg("error building image url")
		return ""
	}
	return u
}
