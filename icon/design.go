package icon

import (
	"errors"
	"fmt"
)

// ErrInvalidDesign wraps every design validation failure.
var ErrInvalidDesign = errors.New("invalid design")

// CandleSpec is a candle expressed as fractions of the canvas size.
type CandleSpec struct {
	X     float64 `json:"x" yaml:"x"`
	High  float64 `json:"high" yaml:"high"`
	Open  float64 `json:"open" yaml:"open"`
	Close float64 `json:"close" yaml:"close"`
	Low   float64 `json:"low" yaml:"low"`
	Role  Role    `json:"role" yaml:"role"`
}

// Design describes the icon independently of its pixel size.
type Design struct {
	Size        int          `json:"size" yaml:"size"`
	Palette     Palette      `json:"palette" yaml:"palette"`
	BadgeRadius float64      `json:"badge_radius" yaml:"badge_radius"`
	CandleWidth float64      `json:"candle_width" yaml:"candle_width"`
	WickWidth   float64      `json:"wick_width" yaml:"wick_width"`
	Candles     []CandleSpec `json:"candles" yaml:"candles"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
}

const (
	// DefaultSize is the side length of the shipped icon.
	DefaultSize = 1024
	// MaxSize bounds the canvas allocation (MaxSize² RGBA pixels).
	MaxSize = 8192
)

// DefaultDesign is the shipped icon: a gold badge on navy with a
// green-red-green-green uptrend.
func DefaultDesign() Design {
	return Design{
		Size: DefaultSize,
		Palette: Palette{
			Background: RGB(10, 14, 39),
			Accent:     RGB(255, 215, 0),
			Bullish:    RGB(0, 200, 83),
			Bearish:    RGB(255, 23, 68),
		},
		BadgeRadius: 0.35,
		CandleWidth: 0.055,
		WickWidth:   0.015,
		Candles: []CandleSpec{
			{X: 0.32, High: 0.52, Open: 0.68, Close: 0.58, Low: 0.72, Role: RoleBullish},
			{X: 0.45, High: 0.50, Open: 0.56, Close: 0.60, Low: 0.64, Role: RoleBearish},
			{X: 0.58, High: 0.32, Open: 0.58, Close: 0.40, Low: 0.62, Role: RoleBullish},
			{X: 0.71, High: 0.28, Open: 0.42, Close: 0.32, Low: 0.46, Role: RoleBullish},
		},
		Description: "Candlestick chart with Green-Red-Green pattern (uptrend)",
	}
}

// WithSize returns a copy of d rendered at another side length.
func (d Design) WithSize(size int) Design {
	out := d
	out.Size = size
	out.Candles = append([]CandleSpec(nil), d.Candles...)
	return out
}

// scale truncates like the integer constants the icon was first drawn with.
func (d Design) scale(p float64) int {
	return int(float64(d.Size) * p)
}

// Radius is the badge radius in pixels.
func (d Design) Radius() int { return d.scale(d.BadgeRadius) }

// BodyWidth is the candle body width in pixels.
func (d Design) BodyWidth() int { return d.scale(d.CandleWidth) }

// WickPixels is the wick stroke width in pixels.
func (d Design) WickPixels() int { return d.scale(d.WickWidth) }

// PixelCandles resolves every CandleSpec to pixel coordinates and a color.
func (d Design) PixelCandles() ([]Candle, error) {
	out := make([]Candle, 0, len(d.Candles))
	for i, cs := range d.Candles {
		c, err := d.Palette.Resolve(cs.Role)
		if err != nil {
			return nil, fmt.Errorf("candles[%d]: %w", i, err)
		}
		out = append(out, Candle{
			X:     d.scale(cs.X),
			High:  d.scale(cs.High),
			Open:  d.scale(cs.Open),
			Close: d.scale(cs.Close),
			Low:   d.scale(cs.Low),
			Color: c,
		})
	}
	return out, nil
}

// Validate checks the design is drawable. Errors wrap ErrInvalidDesign.
func (d Design) Validate() error {
	if d.Size <= 0 {
		return fmt.Errorf("%w: design.size must be positive", ErrInvalidDesign)
	}
	if d.Size > MaxSize {
		return fmt.Errorf("%w: design.size must be at most %d (got %d)", ErrInvalidDesign, MaxSize, d.Size)
	}
	ratios := []struct {
		name string
		v    float64
	}{
		{"design.badge_radius", d.BadgeRadius},
		{"design.candle_width", d.CandleWidth},
		{"design.wick_width", d.WickWidth},
	}
	for _, r := range ratios {
		if r.v <= 0 || r.v >= 1 {
			return fmt.Errorf("%w: %s must be between 0 and 1", ErrInvalidDesign, r.name)
		}
	}
	if len(d.Candles) == 0 {
		return fmt.Errorf("%w: design.candles must not be empty", ErrInvalidDesign)
	}
	for i, cs := range d.Candles {
		for _, v := range []float64{cs.X, cs.High, cs.Open, cs.Close, cs.Low} {
			if v <= 0 || v >= 1 {
				return fmt.Errorf("%w: candles[%d] coordinates must be between 0 and 1", ErrInvalidDesign, i)
			}
		}
		if _, err := d.Palette.Resolve(cs.Role); err != nil {
			return fmt.Errorf("%w: candles[%d]: %v", ErrInvalidDesign, i, err)
		}
	}

	candles, err := d.PixelCandles()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDesign, err)
	}
	for i, c := range candles {
		switch d.Candles[i].Role {
		case RoleBullish:
			if c.Bearish() {
				return fmt.Errorf("%w: candles[%d] is bullish but closes below its open", ErrInvalidDesign, i)
			}
		case RoleBearish:
			if c.Bullish() {
				return fmt.Errorf("%w: candles[%d] is bearish but closes above its open", ErrInvalidDesign, i)
			}
		}
	}
	return nil
}
