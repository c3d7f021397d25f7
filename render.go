package raffle

import "math"

// Geometry constants for particle drawing.
const (
	starLineWidth    = 2.0
	balloonLineWidth = 2.0
	balloonWidth     = 0.6 // body x-radius as a fraction of Size
	stringLength     = 20.0
	stringSway       = 5.0
	stringSegments   = 12
)

var highlightColor = Color{1, 1, 1, 0.3}

// Renderer paints a particle set onto a Canvas. Each particle is drawn inside
// its own saved context state with alpha equal to its life, in slice order,
// so later particles land on top.
type Renderer struct {
	ctx  drawContext
	path []Vec2
}

// Draw clears c and paints every particle. A canvas with no area is cleared
// and left empty.
func (r *Renderer) Draw(c Canvas, particles []Particle) {
	c.Clear()
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return
	}
	r.ctx.reset()
	for _, p := range particles {
		r.ctx.save()
		r.ctx.alpha = clamp01(p.Remaining())
		r.drawParticle(c, p)
		r.ctx.restore()
	}
}

func (r *Renderer) drawParticle(c Canvas, p Particle) {
	switch p := p.(type) {
	case *Firework:
		r.path = appendCircle(r.path[:0], p.X, p.Y, p.Size)
		r.ctx.fill(c, r.path, p.Color)

	case *Confetti:
		r.ctx.translate(p.X, p.Y)
		r.ctx.rotate(p.Rotation * math.Pi / 180)
		if p.Shape == ShapeSquare {
			r.path = appendRect(r.path[:0], -p.Size/2, -p.Size/2, p.Size, p.Size)
		} else {
			r.path = appendRect(r.path[:0], -p.Size/2, -p.Size/4, p.Size, p.Size/2)
		}
		r.ctx.fill(c, r.path, p.Color)

	case *Star:
		if p.Scale <= 0 {
			return
		}
		r.ctx.translate(p.X, p.Y)
		r.ctx.scale(p.Scale, p.Scale)
		r.path = appendStar(r.path[:0], 0, 0, p.Points, p.Size, p.Size/2)
		r.ctx.fill(c, r.path, p.Color)
		r.ctx.stroke(c, r.path, true, starLineWidth, p.Color)

	case *Balloon:
		r.drawBalloon(c, p)
	}
}

// drawBalloon paints the body, the string hanging below it, and a
// translucent highlight toward the upper left.
func (r *Renderer) drawBalloon(c Canvas, p *Balloon) {
	r.path = appendEllipse(r.path[:0], p.X, p.Y, p.Size*balloonWidth, p.Size, 0)
	r.ctx.fill(c, r.path, p.Color)

	knot := Vec2{p.X, p.Y + p.Size}
	control := Vec2{p.X + stringSway, p.Y + p.Size + stringLength/2}
	end := Vec2{p.X, p.Y + p.Size + stringLength}
	r.path = appendQuadCurve(r.path[:0], knot, control, end, stringSegments)
	r.ctx.stroke(c, r.path, false, balloonLineWidth, p.Color)

	r.path = appendEllipse(r.path[:0], p.X-p.Size*0.2, p.Y-p.Size*0.3, p.Size*0.15, p.Size*0.25, -0.3)
	r.ctx.fill(c, r.path, highlightColor)
}
