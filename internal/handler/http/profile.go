package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-journal-keeper/models"
)

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	update := req.toUpdate(h.holder.Snapshot().Profile)
	writeResult(w, r, h.holder.UpdateProfile(r.Context(), update), http.StatusOK)
}

// updatePicture takes the new picture from the "picture" field of a
// multipart form.
func (h *Handler) updatePicture(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPictureSize)

	file, err := readPicture(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResult(w, r, h.holder.UpdatePicture(r.Context(), file), http.StatusOK)
}

func (h *Handler) removePicture(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, h.holder.RemovePicture(r.Context()), http.StatusOK)
}

func readPicture(r *http.Request) (models.File, error) {
	part, header, err := r.FormFile("picture")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return models.File{}, ErrMissingPicture
		}
		return models.File{}, fmt.Errorf("%w: %w", ErrMissingPicture, err)
	}
	defer part.Close()

	content, err := io.ReadAll(part)
	if err != nil {
		return models.File{}, fmt.Errorf("%w: %w", ErrMissingPicture, err)
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(content)
	}

	return models.File{
		URI:      header.Filename,
		Name:     header.Filename,
		MimeType: mimeType,
		Content:  content,
	}, nil
}
