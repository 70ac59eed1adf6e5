package storage

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestEncodeDataURIPNG(t *testing.T) {
	encoder := NewImageEncoder()
	raw := pngBytes(t)

	uri, err := encoder.EncodeDataURI(bytes.NewReader(raw))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	payload := strings.TrimPrefix(uri, "data:image/png;base64,")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)

	// Bytes are stored verbatim, no recompression.
	assert.Equal(t, raw, decoded)
}

func TestEncodeDataURIRejectsNonImage(t *testing.T) {
	encoder := NewImageEncoder()

	_, err := encoder.EncodeDataURI(strings.NewReader("definitely not an image"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestEncodeDataURIRejectsEmptyUpload(t *testing.T) {
	encoder := NewImageEncoder()

	_, err := encoder.EncodeDataURI(bytes.NewReader(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestEncodeDataURIRejectsTruncatedImage(t *testing.T) {
	encoder := NewImageEncoder()
	raw := pngBytes(t)

	// Cut the stream before the header completes.
	_, err := encoder.EncodeDataURI(bytes.NewReader(raw[:8]))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncoding)
}
