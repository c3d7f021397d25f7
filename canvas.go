package raffle

// Canvas is the surface a celebration is painted on. Points arrive in canvas
// pixel space with any transform already applied, and colors arrive with the
// particle's alpha already folded into A.
//
// ImageCanvas draws to an *ebiten.Image; the term package draws to a
// terminal. A Widget with no Canvas still rolls and reveals numbers but
// plays no celebration.
type Canvas interface {
	// Size returns the drawable area in pixels. A zero or negative
	// dimension means nothing can be drawn.
	Size() (width, height float64)
	// Clear erases every pixel to transparent.
	Clear()
	// FillPolygon fills a closed polygon that is star-shaped with respect to
	// the mean of its points.
	FillPolygon(points []Vec2, c Color)
	// StrokePolyline draws a line of the given width through points,
	// joining the last point back to the first when closed is true.
	StrokePolyline(points []Vec2, closed bool, width float64, c Color)
}

// resizer is implemented by canvases whose backing store follows the
// widget's layout size.
type resizer interface {
	Resize(width, height int)
}
