package raffle

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white source image for untextured triangles. It is
// created on first use so that importing the package never touches the GPU.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(ColorWhite.toRGBA())
		// Vertices sample (1.5, 1.5), the center of the middle texel.
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// ImageCanvas is a Canvas backed by an *ebiten.Image. Polygons are fan
// triangulated around their centroid and strokes become one quad per
// segment; both are submitted with DrawTriangles.
type ImageCanvas struct {
	img   *ebiten.Image
	owned bool // img was allocated by the canvas and may be deallocated
	verts []ebiten.Vertex
	inds  []uint16
}

// NewImageCanvas allocates a transparent canvas of the given size. A zero or
// negative dimension yields an empty canvas that draws nothing until Resize.
func NewImageCanvas(width, height int) *ImageCanvas {
	c := &ImageCanvas{}
	c.Resize(width, height)
	return c
}

// WrapImage returns a canvas that draws directly onto img. The canvas never
// resizes or deallocates img.
func WrapImage(img *ebiten.Image) *ImageCanvas {
	return &ImageCanvas{img: img}
}

// Image returns the backing image, or nil for an empty canvas.
func (c *ImageCanvas) Image() *ebiten.Image {
	return c.img
}

// Resize replaces the backing image with a new transparent one of the given
// size. Wrapped images are left untouched.
func (c *ImageCanvas) Resize(width, height int) {
	if c.img != nil && !c.owned {
		return
	}
	if c.img != nil {
		b := c.img.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
		c.img.Deallocate()
		c.img = nil
	}
	if width <= 0 || height <= 0 {
		return
	}
	c.img = ebiten.NewImage(width, height)
	c.owned = true
}

// Size implements Canvas.
func (c *ImageCanvas) Size() (float64, float64) {
	if c.img == nil {
		return 0, 0
	}
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear implements Canvas.
func (c *ImageCanvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

// FillPolygon implements Canvas.
func (c *ImageCanvas) FillPolygon(points []Vec2, col Color) {
	if c.img == nil || len(points) < 3 || col.A <= 0 {
		return
	}
	c.verts, c.inds = buildPolygonFan(c.verts[:0], c.inds[:0], points, col)
	c.submit()
}

// StrokePolyline implements Canvas.
func (c *ImageCanvas) StrokePolyline(points []Vec2, closed bool, width float64, col Color) {
	if c.img == nil || len(points) < 2 || width <= 0 || col.A <= 0 {
		return
	}
	c.verts, c.inds = buildStroke(c.verts[:0], c.inds[:0], points, closed, width, col)
	c.submit()
}

func (c *ImageCanvas) submit() {
	if len(c.inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	c.img.DrawTriangles(c.verts, c.inds, ensureWhitePixel(), &op)
}

// vertex builds an untextured vertex with a premultiplied color.
func vertex(x, y float64, col Color) ebiten.Vertex {
	a := float32(clamp01(col.A))
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1.5,
		SrcY:   1.5,
		ColorR: float32(clamp01(col.R)) * a,
		ColorG: float32(clamp01(col.G)) * a,
		ColorB: float32(clamp01(col.B)) * a,
		ColorA: a,
	}
}

// buildPolygonFan appends a fan triangulation of points around their
// centroid: N+1 vertices, 3N indices. The hub makes star outlines fill
// correctly where a fan from the first vertex would not.
func buildPolygonFan(verts []ebiten.Vertex, inds []uint16, points []Vec2, col Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	base := uint16(len(verts))
	hub := centroid(points)
	verts = append(verts, vertex(hub.X, hub.Y, col))
	for _, p := range points {
		verts = append(verts, vertex(p.X, p.Y, col))
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		inds = append(inds, base, base+1+uint16(i), base+1+uint16(next))
	}
	return verts, inds
}

// buildStroke appends one quad per segment, offset by half the width on each
// side of the segment.
func buildStroke(verts []ebiten.Vertex, inds []uint16, points []Vec2, closed bool, width float64, col Color) ([]ebiten.Vertex, []uint16) {
	halfW := width / 2
	n := len(points)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		a := points[i]
		b := points[(i+1)%n]
		if math.Abs(a.X-b.X) < 1e-10 && math.Abs(a.Y-b.Y) < 1e-10 {
			continue
		}
		nx, ny := perpendicular(a, b)
		v := uint16(len(verts))
		verts = append(verts,
			vertex(a.X+nx*halfW, a.Y+ny*halfW, col),
			vertex(a.X-nx*halfW, a.Y-ny*halfW, col),
			vertex(b.X+nx*halfW, b.Y+ny*halfW, col),
			vertex(b.X-nx*halfW, b.Y-ny*halfW, col),
		)
		inds = append(inds, v, v+1, v+2, v+1, v+3, v+2)
	}
	return verts, inds
}
