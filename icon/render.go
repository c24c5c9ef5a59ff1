package icon

// Render draws d onto a fresh canvas: background, gold badge, then the
// candles left to right.
func Render(d Design) (*Canvas, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	candles, err := d.PixelCandles()
	if err != nil {
		return nil, err
	}

	cv := NewCanvas(d.Size, d.Palette.Background)

	center := d.Size / 2
	r := d.Radius()
	cv.Ellipse(center-r, center-r, center+r, center+r, d.Palette.Accent)

	bw, ww := d.BodyWidth(), d.WickPixels()
	for _, c := range candles {
		c.draw(cv, bw, ww)
	}
	return cv, nil
}
