package icon

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an opaque 8-bit RGB color. It marshals as "#RRGGBB" in both
// YAML and JSON config files.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA returns the fully opaque image/color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Hex formats the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// ParseHex accepts "#RRGGBB" or "RRGGBB", case-insensitive.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Palette holds the four colors the icon is drawn with.
type Palette struct {
	Background Color `json:"background" yaml:"background"`
	Accent     Color `json:"accent" yaml:"accent"`
	Bullish    Color `json:"bullish" yaml:"bullish"`
	Bearish    Color `json:"bearish" yaml:"bearish"`
}

// Role names the palette slot a candle takes its color from.
type Role string

const (
	RoleBullish Role = "bullish"
	RoleBearish Role = "bearish"
)

// Resolve returns the palette color for a role.
func (p Palette) Resolve(r Role) (Color, error) {
	switch r {
	case RoleBullish:
		return p.Bullish, nil
	case RoleBearish:
		return p.Bearish, nil
	default:
		return Color{}, fmt.Errorf("unknown color role %q", r)
	}
}
