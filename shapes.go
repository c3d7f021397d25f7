package raffle

import "math"

// Shape builders append outline points in local space to dst and return the
// extended slice. Closed shapes do not repeat their first point.

// curveSegments picks how many segments approximate an arc of the given
// radius so that edges stay under roughly two pixels long.
func curveSegments(radius float64) int {
	n := int(math.Ceil(radius * 1.5))
	if n < 12 {
		return 12
	}
	if n > 72 {
		return 72
	}
	return n
}

// appendEllipse appends an ellipse centered on (cx, cy) with radii rx and ry,
// rotated by rotation radians.
func appendEllipse(dst []Vec2, cx, cy, rx, ry, rotation float64) []Vec2 {
	segs := curveSegments(math.Max(rx, ry))
	sinR, cosR := math.Sincos(rotation)
	for i := 0; i < segs; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(segs))
		x := cos * rx
		y := sin * ry
		dst = append(dst, Vec2{
			X: cx + x*cosR - y*sinR,
			Y: cy + x*sinR + y*cosR,
		})
	}
	return dst
}

// appendCircle appends a circle centered on (cx, cy).
func appendCircle(dst []Vec2, cx, cy, r float64) []Vec2 {
	return appendEllipse(dst, cx, cy, r, r, 0)
}

// appendRect appends the four corners of an axis-aligned rectangle.
func appendRect(dst []Vec2, x, y, w, h float64) []Vec2 {
	return append(dst,
		Vec2{x, y},
		Vec2{x + w, y},
		Vec2{x + w, y + h},
		Vec2{x, y + h},
	)
}

// appendStar appends a star with the given number of points, alternating
// outer and inner vertices at equal angular steps. The first vertex points
// straight up.
func appendStar(dst []Vec2, cx, cy float64, points int, outer, inner float64) []Vec2 {
	if points < 2 {
		return dst
	}
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := math.Pi*float64(i)/float64(points) - math.Pi/2
		sin, cos := math.Sincos(angle)
		dst = append(dst, Vec2{cx + cos*r, cy + sin*r})
	}
	return dst
}

// appendQuadCurve appends a quadratic Bézier from a through control point c
// to b, including both endpoints.
func appendQuadCurve(dst []Vec2, a, c, b Vec2, segs int) []Vec2 {
	if segs < 1 {
		segs = 1
	}
	for i := 0; i <= segs; i++ {
		t := float64(i) / float64(segs)
		u := 1 - t
		dst = append(dst, Vec2{
			X: u*u*a.X + 2*u*t*c.X + t*t*b.X,
			Y: u*u*a.Y + 2*u*t*c.Y + t*t*b.Y,
		})
	}
	return dst
}

// centroid returns the arithmetic mean of points.
func centroid(points []Vec2) Vec2 {
	var c Vec2
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(points))
	return Vec2{c.X / n, c.Y / n}
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
