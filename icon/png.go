package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// Encode writes img as PNG. A fully opaque image is written as 8-bit RGB.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// EncodeBytes returns the PNG encoding of img.
func EncodeBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save encodes img and writes it to path in one call. The parent directory
// must already exist.
func Save(path string, img image.Image) ([]byte, error) {
	data, err := EncodeBytes(img)
	if err != nil {
		return nil, err
	}
	if err := WriteFile(path, data); err != nil {
		return nil, err
	}
	return data, nil
}

// WriteFile writes already encoded PNG or ICO bytes to path.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write icon %s: %w", path, err)
	}
	return nil
}
