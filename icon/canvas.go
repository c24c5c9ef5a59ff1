package icon

import (
	"image"
	"image/draw"
	"math"
)

// Canvas is a square opaque raster with the handful of primitives the icon
// needs. Coordinates outside the canvas are clipped.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a size×size canvas filled with bg.
func NewCanvas(size int, bg Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg.RGBA()}, image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Image exposes the underlying raster.
func (cv *Canvas) Image() *image.RGBA { return cv.img }

// Size is the side length in pixels.
func (cv *Canvas) Size() int { return cv.img.Bounds().Dx() }

// At returns the color at (x, y).
func (cv *Canvas) At(x, y int) Color {
	c := cv.img.RGBAAt(x, y)
	return Color{R: c.R, G: c.G, B: c.B}
}

func (cv *Canvas) set(x, y int, c Color) {
	cv.img.SetRGBA(x, y, c.RGBA())
}

// fill paints the inclusive rectangle (x0,y0)-(x1,y1).
func (cv *Canvas) fill(x0, y0, x1, y1 int, c Color) {
	r := image.Rect(min(x0, x1), min(y0, y1), max(x0, x1)+1, max(y0, y1)+1)
	draw.Draw(cv.img, r.Intersect(cv.img.Bounds()), &image.Uniform{C: c.RGBA()}, image.Point{}, draw.Src)
}

// Rectangle fills the inclusive box (x0,y0)-(x1,y1) and strokes a
// one-pixel border in outline.
func (cv *Canvas) Rectangle(x0, y0, x1, y1 int, fill, outline Color) {
	cv.fill(x0, y0, x1, y1, fill)
	if outline == fill {
		return
	}
	cv.fill(x0, y0, x1, y0, outline)
	cv.fill(x0, y1, x1, y1, outline)
	cv.fill(x0, y0, x0, y1, outline)
	cv.fill(x1, y0, x1, y1, outline)
}

// Ellipse fills the ellipse inscribed in the inclusive box (x0,y0)-(x1,y1).
func (cv *Canvas) Ellipse(x0, y0, x1, y1 int, c Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	cx, cy := float64(x0+x1)/2, float64(y0+y1)/2
	rx, ry := float64(x1-x0)/2, float64(y1-y0)/2
	if rx == 0 || ry == 0 {
		cv.fill(x0, y0, x1, y1, c)
		return
	}

	b := image.Rect(x0, y0, x1+1, y1+1).Intersect(cv.img.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		dy := (float64(y) - cy) / ry
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := (float64(x) - cx) / rx
			if dx*dx+dy*dy <= 1 {
				cv.set(x, y, c)
			}
		}
	}
}

// Line strokes (x0,y0)-(x1,y1) with the given width.
func (cv *Canvas) Line(x0, y0, x1, y1, width int, c Color) {
	switch {
	case width <= 1:
		cv.thinLine(x0, y0, x1, y1, c)
	case x0 == x1:
		lo, hi := (width-1)/2, width/2
		cv.fill(x0-lo, y0, x0+hi, y1, c)
	case y0 == y1:
		lo, hi := (width-1)/2, width/2
		cv.fill(x0, y0-lo, x1, y0+hi, c)
	default:
		cv.wideLine(x0, y0, x1, y1, width, c)
	}
}

// thinLine is Bresenham's algorithm.
func (cv *Canvas) thinLine(x0, y0, x1, y1 int, c Color) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		cv.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// wideLine fills every pixel whose projection lands on the segment and
// whose distance from it is at most width/2.
func (cv *Canvas) wideLine(x0, y0, x1, y1, width int, c Color) {
	half := float64(width) / 2
	ax, ay := float64(x0), float64(y0)
	vx, vy := float64(x1-x0), float64(y1-y0)
	length := math.Hypot(vx, vy)
	ux, uy := vx/length, vy/length

	pad := int(math.Ceil(half))
	b := image.Rect(min(x0, x1)-pad, min(y0, y1)-pad, max(x0, x1)+pad+1, max(y0, y1)+pad+1).
		Intersect(cv.img.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px, py := float64(x)-ax, float64(y)-ay
			along := px*ux + py*uy
			if along < 0 || along > length {
				continue
			}
			if math.Abs(px*uy-py*ux) <= half {
				cv.set(x, y, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
