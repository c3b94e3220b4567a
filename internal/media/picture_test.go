package media

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/models"
)

func encodedImage(t *testing.T, w, h int, format imaging.Format) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	require.NoError(t, imaging.Encode(&buf, img, format))
	return buf.Bytes()
}

func TestPictureNormalizer_ResizesLargeImages(t *testing.T) {
	tests := []struct {
		name   string
		mime   string
		format imaging.Format
		w, h   int
		wantW  int
		wantH  int
	}{
		{name: "landscape png", mime: "image/png", format: imaging.PNG, w: 800, h: 400, wantW: 200, wantH: 100},
		{name: "portrait jpeg", mime: "image/jpeg", format: imaging.JPEG, w: 300, h: 600, wantW: 100, wantH: 200},
	}

	n := NewPictureNormalizer(200, logger.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := models.File{Name: "p", MimeType: tt.mime, Content: encodedImage(t, tt.w, tt.h, tt.format)}

			out, err := n.Normalize(in)
			require.NoError(t, err)
			assert.Equal(t, tt.mime, out.MimeType)

			img, err := imaging.Decode(bytes.NewReader(out.Content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, img.Bounds().Dx())
			assert.Equal(t, tt.wantH, img.Bounds().Dy())
		})
	}
}

func TestPictureNormalizer_PassThrough(t *testing.T) {
	small := models.File{Name: "s.png", MimeType: "image/png", Content: encodedImage(t, 50, 40, imaging.PNG)}
	text := models.File{Name: "notes.txt", MimeType: "text/plain", Content: []byte("hello")}

	n := NewPictureNormalizer(200, logger.Nop())

	out, err := n.Normalize(small)
	require.NoError(t, err)
	assert.Equal(t, small.Content, out.Content)

	out, err = n.Normalize(text)
	require.NoError(t, err)
	assert.Equal(t, text, out)

	disabled := NewPictureNormalizer(0, logger.Nop())
	big := models.File{MimeType: "image/png", Content: encodedImage(t, 500, 500, imaging.PNG)}
	out, err = disabled.Normalize(big)
	require.NoError(t, err)
	assert.Equal(t, big.Content, out.Content)
}

func TestPictureNormalizer_InvalidImage(t *testing.T) {
	n := NewPictureNormalizer(200, logger.Nop())

	_, err := n.Normalize(models.File{MimeType: "image/jpeg", Content: []byte("definitely not a jpeg")})
	require.ErrorIs(t, err, ErrInvalidImage)
}
