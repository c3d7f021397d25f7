package raffle

// Particle is one simulated element of a celebration. The set of
// implementations is closed: *Firework, *Confetti, *Star and *Balloon.
// Spawning, stepping and drawing switch over these four types.
type Particle interface {
	// Kind reports which celebration the particle belongs to.
	Kind() Kind
	// Remaining returns the particle's life, which is 1 at spawn and also
	// serves as its draw alpha. The particle is dropped once it reaches 0.
	Remaining() float64
	// Position returns the particle's anchor point in canvas pixels.
	Position() Vec2

	sealed()
}

// Firework is one spark of a radial burst.
type Firework struct {
	X, Y   float64
	VX, VY float64
	Color  Color
	Life   float64
	Size   float64 // circle radius in pixels
}

// ConfettiShape selects the rectangle drawn for a confetti piece.
type ConfettiShape uint8

const (
	ShapeSquare    ConfettiShape = iota // Size x Size
	ShapeRectangle                      // Size x Size/2
)

// Confetti is a tumbling paper piece.
type Confetti struct {
	X, Y          float64
	VX, VY        float64
	Rotation      float64 // degrees
	RotationSpeed float64 // degrees per tick
	Color         Color
	Life          float64
	Size          float64
	Shape         ConfettiShape
}

// Star grows from zero scale to full size, then fades out in place.
type Star struct {
	X, Y   float64
	Scale  float64
	Color  Color
	Life   float64
	Size   float64 // outer radius at full scale
	Points int
}

// Balloon rises from below the canvas while swaying sideways.
type Balloon struct {
	X, Y   float64
	VX, VY float64
	Phase  float64 // sway oscillation phase in radians
	Color  Color
	Life   float64
	Size   float64 // body half-height
}

func (*Firework) Kind() Kind { return KindFirework }
func (*Confetti) Kind() Kind { return KindConfetti }
func (*Star) Kind() Kind     { return KindStar }
func (*Balloon) Kind() Kind  { return KindBalloon }

func (p *Firework) Remaining() float64 { return p.Life }
func (p *Confetti) Remaining() float64 { return p.Life }
func (p *Star) Remaining() float64     { return p.Life }
func (p *Balloon) Remaining() float64  { return p.Life }

func (p *Firework) Position() Vec2 { return Vec2{p.X, p.Y} }
func (p *Confetti) Position() Vec2 { return Vec2{p.X, p.Y} }
func (p *Star) Position() Vec2     { return Vec2{p.X, p.Y} }
func (p *Balloon) Position() Vec2  { return Vec2{p.X, p.Y} }

func (*Firework) sealed() {}
func (*Confetti) sealed() {}
func (*Star) sealed()     {}
func (*Balloon) sealed()  {}

// CountByKind tallies live particles per Kind. Used by the debug overlay.
func CountByKind(particles []Particle) [numKinds]int {
	var counts [numKinds]int
	for _, p := range particles {
		if k := p.Kind(); int(k) < len(counts) {
			counts[k]++
		}
	}
	return counts
}
