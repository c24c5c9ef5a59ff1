package icon

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image/png"
	"os"
)

// Info summarizes an encoded PNG.
type Info struct {
	Width      int
	Height     int
	ColorModel string
	SHA256     string
	Corner     Color
	Center     Color
}

var pngColorTypes = map[byte]string{
	0: "Gray",
	2: "RGB",
	3: "Paletted",
	4: "GrayAlpha",
	6: "RGBA",
}

// Checksum is the hex SHA-256 of data.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Inspect decodes data and reports its size, PNG color type, checksum and
// the top-left and center pixels.
func Inspect(data []byte) (Info, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("decode png: %w", err)
	}

	// signature (8) + IHDR length and type (8) + width, height (8) + bit depth
	model := "unknown"
	if len(data) > 25 {
		if name, ok := pngColorTypes[data[25]]; ok {
			model = name
		}
	}

	b := img.Bounds()
	at := func(x, y int) Color {
		r, g, bl, _ := img.At(x, y).RGBA()
		return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}
	}

	return Info{
		Width:      b.Dx(),
		Height:     b.Dy(),
		ColorModel: model,
		SHA256:     Checksum(data),
		Corner:     at(b.Min.X, b.Min.Y),
		Center:     at(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2),
	}, nil
}

// InspectFile reads path and inspects it. The raw bytes are returned too.
func InspectFile(path string) (Info, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, nil, fmt.Errorf("read icon %s: %w", path, err)
	}
	info, err := Inspect(data)
	if err != nil {
		return Info{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	return info, data, nil
}
