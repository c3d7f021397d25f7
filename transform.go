package raffle

import "math"

// Affine matrices use the layout [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = p * c.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// lineScale returns the factor a stroke width grows by under m: the square
// root of the absolute determinant, exact for uniform scales.
func lineScale(m [6]float64) float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[2]*m[1]))
}

// drawState is the part of the drawing context that save and restore cover.
type drawState struct {
	transform [6]float64
	alpha     float64
}

// drawContext tracks a current transform and global alpha with a save/restore
// stack, the way a 2D canvas context does. Paths handed to fill and stroke
// are in local space and mapped through the current transform.
type drawContext struct {
	drawState
	stack []drawState
	buf   []Vec2
}

// reset drops any saved states and returns to identity with full alpha.
func (ctx *drawContext) reset() {
	ctx.stack = ctx.stack[:0]
	ctx.transform = identityTransform
	ctx.alpha = 1
}

func (ctx *drawContext) save() {
	ctx.stack = append(ctx.stack, ctx.drawState)
}

// restore pops the most recently saved state. Unbalanced calls are no-ops.
func (ctx *drawContext) restore() {
	n := len(ctx.stack)
	if n == 0 {
		return
	}
	ctx.drawState = ctx.stack[n-1]
	ctx.stack = ctx.stack[:n-1]
}

func (ctx *drawContext) translate(x, y float64) {
	ctx.transform = multiplyAffine(ctx.transform, [6]float64{1, 0, 0, 1, x, y})
}

// rotate rotates by r radians, clockwise on screen.
func (ctx *drawContext) rotate(r float64) {
	sin, cos := math.Sincos(r)
	ctx.transform = multiplyAffine(ctx.transform, [6]float64{cos, sin, -sin, cos, 0, 0})
}

func (ctx *drawContext) scale(sx, sy float64) {
	ctx.transform = multiplyAffine(ctx.transform, [6]float64{sx, 0, 0, sy, 0, 0})
}

// project maps local-space points through the current transform into the
// context's scratch buffer. The result is valid until the next project call.
func (ctx *drawContext) project(points []Vec2) []Vec2 {
	ctx.buf = ctx.buf[:0]
	for _, p := range points {
		x, y := transformPoint(ctx.transform, p.X, p.Y)
		ctx.buf = append(ctx.buf, Vec2{x, y})
	}
	return ctx.buf
}

func (ctx *drawContext) fill(c Canvas, points []Vec2, col Color) {
	c.FillPolygon(ctx.project(points), col.WithAlpha(ctx.alpha))
}

func (ctx *drawContext) stroke(c Canvas, points []Vec2, closed bool, width float64, col Color) {
	c.StrokePolyline(ctx.project(points), closed, width*lineScale(ctx.transform), col.WithAlpha(ctx.alpha))
}
