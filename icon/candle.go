package icon

// Candle is a candlestick glyph in pixel space. Y grows downward, so a
// rising candle has Close above Open on screen (Close < Open).
type Candle struct {
	X     int
	High  int
	Open  int
	Close int
	Low   int
	Color Color
}

// BodyTop is the upper edge of the body.
func (c Candle) BodyTop() int {
	return min(c.Open, c.Close)
}

// BodyBottom is the lower edge of the body.
func (c Candle) BodyBottom() int {
	return max(c.Open, c.Close)
}

// Bullish reports whether price rose over the candle.
func (c Candle) Bullish() bool {
	return c.Close < c.Open
}

// Bearish reports whether price fell over the candle.
func (c Candle) Bearish() bool {
	return c.Close > c.Open
}

// draw paints both wicks and then the body.
func (c Candle) draw(cv *Canvas, bodyWidth, wickWidth int) {
	top, bottom := c.BodyTop(), c.BodyBottom()

	cv.Line(c.X, c.High, c.X, top, wickWidth, c.Color)
	cv.Line(c.X, bottom, c.X, c.Low, wickWidth, c.Color)

	half := bodyWidth / 2
	cv.Rectangle(c.X-half, top, c.X+half, bottom, c.Color, c.Color)
}
