// Package term renders raffle celebrations into a terminal with tcell.
//
// Each terminal cell shows two vertically stacked pixels using the upper
// half block glyph: the top pixel is the foreground color, the bottom pixel
// the background color.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/raffle"
)

// upperHalf is the glyph used for every painted cell.
const upperHalf = '▀'

// DefaultScale is the number of logical units per terminal pixel. Particle
// sizes are in screen pixels, so a terminal pixel stands in for a block of
// them.
const DefaultScale = 8

// Canvas is a raffle.Canvas backed by a premultiplied RGBA pixel buffer
// that is two pixels tall per terminal row.
type Canvas struct {
	cols, rows int
	scale      float64
	pix        []raffle.Color // premultiplied, row-major, cols x rows*2
}

// NewCanvas creates a canvas covering cols x rows terminal cells at
// DefaultScale.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{scale: DefaultScale}
	c.Resize(cols, rows)
	return c
}

// SetScale sets the logical units per terminal pixel. Values below 1 are
// raised to 1. The buffer is cleared.
func (c *Canvas) SetScale(scale float64) {
	c.scale = max(scale, 1)
	c.Clear()
}

// Resize sets the canvas size in terminal cells and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	n := c.cols * c.rows * 2
	if cap(c.pix) >= n {
		c.pix = c.pix[:n]
	} else {
		c.pix = make([]raffle.Color, n)
	}
	c.Clear()
}

// Size implements raffle.Canvas. It reports the logical size in units.
func (c *Canvas) Size() (float64, float64) {
	return float64(c.cols) * c.scale, float64(c.rows*2) * c.scale
}

// Clear implements raffle.Canvas.
func (c *Canvas) Clear() {
	clear(c.pix)
}

// At returns the premultiplied color of the terminal pixel at (x, y).
// Out-of-range coordinates return transparent.
func (c *Canvas) At(x, y int) raffle.Color {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows*2 {
		return raffle.Color{}
	}
	return c.pix[y*c.cols+x]
}

// FillPolygon implements raffle.Canvas with an even-odd test at every pixel
// center inside the polygon's bounds.
func (c *Canvas) FillPolygon(points []raffle.Vec2, col raffle.Color) {
	if len(points) < 3 || col.A <= 0 {
		return
	}
	x0, y0, x1, y1 := c.pixelBounds(points, 0)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if contains(points, c.center(x), c.center(y)) {
				c.blend(x, y, col)
			}
		}
	}
}

// StrokePolyline implements raffle.Canvas. A pixel is covered when its
// center lies within half the line width of a segment. Lines thinner than
// one pixel are widened to one so they stay visible.
func (c *Canvas) StrokePolyline(points []raffle.Vec2, closed bool, width float64, col raffle.Color) {
	if len(points) < 2 || width <= 0 || col.A <= 0 {
		return
	}
	half := max(width, c.scale) / 2
	x0, y0, x1, y1 := c.pixelBounds(points, half)
	n := len(points)
	segs := n - 1
	if closed {
		segs = n
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px, py := c.center(x), c.center(y)
			for i := 0; i < segs; i++ {
				a, b := points[i], points[(i+1)%n]
				if segmentDistance(px, py, a, b) <= half {
					c.blend(x, y, col)
					break
				}
			}
		}
	}
}

// Flush paints the canvas onto screen with its top-left cell at (0, 0).
// Cells where both pixels are transparent are left untouched.
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pix[(row*2)*c.cols+col]
			bottom := c.pix[(row*2+1)*c.cols+col]
			if top.A <= 0 && bottom.A <= 0 {
				continue
			}
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
}

func (c *Canvas) center(i int) float64 {
	return (float64(i) + 0.5) * c.scale
}

// pixelBounds returns the inclusive pixel range covering points grown by pad
// units, clipped to the canvas.
func (c *Canvas) pixelBounds(points []raffle.Vec2, pad float64) (x0, y0, x1, y1 int) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	x0 = max(int(math.Floor((minX-pad)/c.scale)), 0)
	y0 = max(int(math.Floor((minY-pad)/c.scale)), 0)
	x1 = min(int(math.Floor((maxX+pad)/c.scale)), c.cols-1)
	y1 = min(int(math.Floor((maxY+pad)/c.scale)), c.rows*2-1)
	return x0, y0, x1, y1
}

// blend composites a straight-alpha color over the pixel at (x, y).
func (c *Canvas) blend(x, y int, col raffle.Color) {
	a := math.Min(col.A, 1)
	dst := &c.pix[y*c.cols+x]
	inv := 1 - a
	dst.R = col.R*a + dst.R*inv
	dst.G = col.G*a + dst.G*inv
	dst.B = col.B*a + dst.B*inv
	dst.A = a + dst.A*inv
}

// contains reports whether (x, y) is inside the polygon by the even-odd rule.
func contains(points []raffle.Vec2, x, y float64) bool {
	inside := false
	j := len(points) - 1
	for i := range points {
		pi, pj := points[i], points[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// segmentDistance returns the distance from (x, y) to segment ab.
func segmentDistance(x, y float64, a, b raffle.Vec2) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	t := 0.0
	if l2 > 0 {
		t = math.Max(0, math.Min(1, ((x-a.X)*dx+(y-a.Y)*dy)/l2))
	}
	return math.Hypot(x-(a.X+t*dx), y-(a.Y+t*dy))
}

// toTcell converts a premultiplied color, composited over black, to a
// true-color tcell color.
func toTcell(c raffle.Color) tcell.Color {
	if c.A <= 0 {
		return tcell.ColorBlack
	}
	return tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int32 {
	return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
