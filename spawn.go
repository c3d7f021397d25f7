package raffle

import (
	"math"
	"math/rand/v2"
)

// Per-frame spawn chances for each celebration kind.
const (
	fireworkChance = 0.10
	confettiChance = 0.30
	starChance     = 0.20
	balloonChance  = 0.15
)

// FireworkBurstSize is the number of sparks in one firework burst.
const FireworkBurstSize = 50

// Spawn-time ranges. Velocities are in pixels per tick, rotations in degrees.
var (
	fireworkSpeed     = Range{2, 5}
	fireworkSize      = Range{2, 5}
	confettiVX        = Range{-1, 1}
	confettiVY        = Range{1, 3}
	confettiRotation  = Range{0, 360}
	confettiSpin      = Range{-5, 5}
	confettiSize      = Range{5, 10}
	starSize          = Range{20, 40}
	balloonVX         = Range{-0.25, 0.25}
	balloonRise       = Range{1, 2}
	balloonPhase      = Range{0, 2 * math.Pi}
	balloonSize       = Range{20, 35}
	confettiSpawnY    = -20.0
	balloonSpawnBelow = 50.0
	starPoints        = 5
)

// Spawner decides each frame whether new particles enter the celebration.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner returns a Spawner drawing from rng. A nil rng uses a generator
// seeded from the runtime.
func NewSpawner(rng *rand.Rand) *Spawner {
	if rng == nil {
		rng = newRand()
	}
	return &Spawner{rng: rng}
}

// Spawn rolls the spawn chance for kind once and, on success, appends the new
// particles to dst. Nothing spawns on a canvas with no area.
func (s *Spawner) Spawn(dst []Particle, kind Kind, width, height float64) []Particle {
	if width <= 0 || height <= 0 {
		return dst
	}
	switch kind {
	case KindConfetti:
		if s.rng.Float64() < confettiChance {
			dst = append(dst, s.confetti(width))
		}
	case KindStar:
		if s.rng.Float64() < starChance {
			dst = append(dst, s.star(width, height))
		}
	case KindBalloon:
		if s.rng.Float64() < balloonChance {
			dst = append(dst, s.balloon(width, height))
		}
	default:
		if s.rng.Float64() < fireworkChance {
			x := s.rng.Float64() * width
			y := s.rng.Float64() * height * 0.5
			dst = s.Burst(dst, x, y)
		}
	}
	return dst
}

// Burst appends one firework burst centered on (x, y): FireworkBurstSize
// sparks at equal angular spacing sharing one random hue.
func (s *Spawner) Burst(dst []Particle, x, y float64) []Particle {
	c := HSL(s.rng.Float64()*360, 1, 0.6)
	for i := 0; i < FireworkBurstSize; i++ {
		angle := 2 * math.Pi * float64(i) / FireworkBurstSize
		speed := fireworkSpeed.Random(s.rng)
		sin, cos := math.Sincos(angle)
		dst = append(dst, &Firework{
			X:     x,
			Y:     y,
			VX:    cos * speed,
			VY:    sin * speed,
			Color: c,
			Life:  1,
			Size:  fireworkSize.Random(s.rng),
		})
	}
	return dst
}

func (s *Spawner) confetti(width float64) *Confetti {
	shape := ShapeRectangle
	if s.rng.Float64() > 0.5 {
		shape = ShapeSquare
	}
	return &Confetti{
		X:             s.rng.Float64() * width,
		Y:             confettiSpawnY,
		VX:            confettiVX.Random(s.rng),
		VY:            confettiVY.Random(s.rng),
		Rotation:      confettiRotation.Random(s.rng),
		RotationSpeed: confettiSpin.Random(s.rng),
		Color:         s.paletteColor(),
		Life:          1,
		Size:          confettiSize.Random(s.rng),
		Shape:         shape,
	}
}

func (s *Spawner) star(width, height float64) *Star {
	return &Star{
		X:      s.rng.Float64() * width,
		Y:      s.rng.Float64() * height,
		Color:  StarGold,
		Life:   1,
		Size:   starSize.Random(s.rng),
		Points: starPoints,
	}
}

func (s *Spawner) balloon(width, height float64) *Balloon {
	return &Balloon{
		X:     s.rng.Float64() * width,
		Y:     height + balloonSpawnBelow,
		VX:    balloonVX.Random(s.rng),
		VY:    -balloonRise.Random(s.rng),
		Phase: balloonPhase.Random(s.rng),
		Color: s.paletteColor(),
		Life:  1,
		Size:  balloonSize.Random(s.rng),
	}
}

func (s *Spawner) paletteColor() Color {
	return Palette[s.rng.IntN(len(Palette))]
}

// IntInclusive returns a uniform integer in [lo, hi]. hi must not be less
// than lo.
func (s *Spawner) IntInclusive(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}
