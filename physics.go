package raffle

import "math"

// Per-tick simulation constants. One tick is one frame.
const (
	gravity          = 0.1
	fireworkDecay    = 0.01
	starGrowth       = 0.05
	starDecay        = 0.02
	balloonSway      = 0.5
	balloonPhaseStep = 0.1
	balloonCeiling   = -50.0
)

// Step advances every particle by one tick and removes the ones that expired.
// Survivors keep their relative order. The result reuses the backing array of
// particles; vacated slots are cleared so dropped particles can be collected.
func Step(particles []Particle, height float64) []Particle {
	live := particles[:0]
	for _, p := range particles {
		if advance(p, height) {
			live = append(live, p)
		}
	}
	clear(particles[len(live):])
	return live
}

// advance applies one tick of p's motion rule and reports whether p is
// still alive afterwards.
func advance(p Particle, height float64) bool {
	switch p := p.(type) {
	case *Firework:
		p.X += p.VX
		p.Y += p.VY
		p.VY += gravity
		p.Life -= fireworkDecay
	case *Confetti:
		p.X += p.VX
		p.Y += p.VY
		p.Rotation += p.RotationSpeed
		p.VY += gravity
		if p.Y > height {
			p.Life = 0
		}
	case *Star:
		if p.Scale < 1 {
			p.Scale = math.Min(1, p.Scale+starGrowth)
		} else {
			p.Life -= starDecay
		}
	case *Balloon:
		p.X += p.VX + math.Sin(p.Phase)*balloonSway
		p.Y += p.VY
		p.Phase += balloonPhaseStep
		if p.Y < balloonCeiling {
			p.Life = 0
		}
	default:
		return false
	}
	return p.Remaining() > 0
}
