package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-journal-keeper/models"
)

const (
	filesPath = "/storage/buckets/{bucketId}/files"
	filePath  = filesPath + "/{fileId}"
)

type appwriteStorage struct {
	*appwriteClient
}

type fileResponse struct {
	ID           string `json:"$id"`
	BucketID     string `json:"bucketId"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	SizeOriginal int64  `json:"sizeOriginal"`
}

// Create implements [ObjectStore] with a multipart POST .../files.
func (a *appwriteStorage) Create(ctx context.Context, bucket, fileID string, file models.File) (models.StoredFile, error) {
	name := file.Name
	if name == "" {
		name = fileID
	}

	resp, err := a.request(ctx).
		SetPathParam("bucketId", bucket).
		SetMultipartFormData(map[string]string{"fileId": fileID}).
		SetMultipartField("file", name, file.MimeType, bytes.NewReader(file.Content)).
		Post(filesPath)
	if err != nil {
		return models.StoredFile{}, fmt.Errorf("%w: upload file request: %v", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StoredFile{}, err
	}

	var stored fileResponse
	if err = decodeJSON(resp, &stored, "upload file"); err != nil {
		return models.StoredFile{}, err
	}

	return models.StoredFile{
		ID:       stored.ID,
		Bucket:   stored.BucketID,
		Name:     stored.Name,
		MimeType: stored.MimeType,
		Size:     stored.SizeOriginal,
	}, nil
}

// Delete implements [ObjectStore] with DELETE .../files/{fileId}.
func (a *appwriteStorage) Delete(ctx context.Context, bucket, fileID string) error {
	resp, err := a.request(ctx).
		SetPathParams(map[string]string{"bucketId": bucket, "fileId": fileID}).
		Delete(filePath)
	if err != nil {
		return fmt.Errorf("%w: delete file request: %v", ErrRemote, err)
	}

	return mapHTTPError(resp)
}

// ViewURL implements [ObjectStore].
func (a *appwriteStorage) ViewURL(bucket, fileID string) string {
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/view?project=%s",
		a.endpoint, url.PathEscape(bucket), url.PathEscape(fileID), url.QueryEscape(a.projectID))
}
