// Package media prepares profile pictures before they are uploaded.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/models"
)

// ErrInvalidImage is returned when a file claims an image type but cannot be
// decoded as one.
var ErrInvalidImage = errors.New("invalid image")

const defaultJPEGQuality = 85

var formatsByMime = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/jpg":  imaging.JPEG,
	"image/png":  imaging.PNG,
	"image/gif":  imaging.GIF,
}

// PictureNormalizer scales pictures down so that their longest edge does not
// exceed MaxEdge, applying the EXIF orientation on the way.
type PictureNormalizer struct {
	maxEdge int
	quality int
	logger  *logger.Logger
}

// NewPictureNormalizer returns a normalizer for maxEdge pixels. A maxEdge of
// zero or less turns it into a pass-through.
func NewPictureNormalizer(maxEdge int, log *logger.Logger) *PictureNormalizer {
	return &PictureNormalizer{maxEdge: maxEdge, quality: defaultJPEGQuality, logger: log}
}

// Normalize returns file resized to fit the configured edge. Files of types
// it does not handle, and images already small enough, are returned as is.
func (n *PictureNormalizer) Normalize(file models.File) (models.File, error) {
	if n == nil || n.maxEdge <= 0 {
		return file, nil
	}

	format, ok := formatsByMime[strings.ToLower(file.MimeType)]
	if !ok {
		return file, nil
	}

	img, err := imaging.Decode(bytes.NewReader(file.Content), imaging.AutoOrientation(true))
	if err != nil {
		n.logger.Err(err).Str("func", "*PictureNormalizer.Normalize").Str("name", file.Name).Msg("error decoding picture")
		return models.File{}, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= n.maxEdge && bounds.Dy() <= n.maxEdge {
		return file, nil
	}

	resized := imaging.Fit(img, n.maxEdge, n.maxEdge, imaging.Lanczos)

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, resized, format, imaging.JPEGQuality(n.quality)); err != nil {
		n.logger.Err(err).Str("func", "*PictureNormalizer.Normalize").Msg("error encoding picture")
		return models.File{}, fmt.Errorf("error encoding picture: %w", err)
	}

	n.logger.Debug().
		Str("func", "*PictureNormalizer.Normalize").
		Int("from_w", bounds.Dx()).Int("from_h", bounds.Dy()).
		Int("to_w", resized.Bounds().Dx()).Int("to_h", resized.Bounds().Dy()).
		Msg("picture resized")

	file.Content = buf.Bytes()
	return file, nil
}
