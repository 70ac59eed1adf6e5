package storage

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ErrEncoding wraps any failure while reading or decoding an uploaded
// image. Callers must not write a record after seeing it.
var ErrEncoding = errors.New("image encoding failed")

// Encoder converts an uploaded image into a self-contained inline
// representation stored directly on the record.
type Encoder interface {
	EncodeDataURI(r io.Reader) (string, error)
}

// ImageEncoder produces data-URI strings from raw image uploads.
// Records carry their own image bytes; there is no object store.
type ImageEncoder struct{}

func NewImageEncoder() *ImageEncoder {
	return &ImageEncoder{}
}

// EncodeDataURI reads the whole upload, verifies it decodes as a known
// image format (jpeg/png/gif) and returns "data:<mime>;base64,<payload>".
// The bytes are stored verbatim: no resizing and no size cap. Document
// growth is the accepted trade-off for running without a blob store.
func (e *ImageEncoder) EncodeDataURI(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: read upload: %w", ErrEncoding, err)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: not a decodable image: %w", ErrEncoding, err)
	}

	payload := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("data:image/%s;base64,%s", format, payload), nil
}
