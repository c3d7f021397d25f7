package raffle

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a Canvas submits vertices.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= clamp01(a)
	return c
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// HexColor parses a "#rrggbb" string into an opaque Color.
func HexColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{c.R, c.G, c.B, 1}, nil
}

func mustHex(s string) Color {
	c, err := HexColor(s)
	if err != nil {
		panic("raffle: " + err.Error())
	}
	return c
}

// HSL returns the opaque color for hue h in degrees and saturation s and
// lightness l in [0, 1].
func HSL(h, s, l float64) Color {
	c := colorful.Hsl(h, s, l).Clamped()
	return Color{c.R, c.G, c.B, 1}
}

// Palette is the fixed color set confetti and balloons pick from.
var Palette = [...]Color{
	mustHex("#ff6b6b"),
	mustHex("#4ecdc4"),
	mustHex("#ffe66d"),
	mustHex("#a8dadc"),
	mustHex("#f1faee"),
}

// StarGold is the fill and stroke color of every star.
var StarGold = mustHex("#ffd700")

// Vec2 is a 2D point or vector in canvas pixel space.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a half-open [Min, Max) interval used for spawn-time randomization.
type Range struct {
	Min, Max float64
}

// Random returns a uniform value in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Kind selects the celebration played after a reveal.
type Kind uint8

const (
	KindFirework Kind = iota // radial bursts with gravity
	KindConfetti             // tumbling pieces falling from the top edge
	KindStar                 // gold stars growing in place, then fading
	KindBalloon              // swaying balloons rising from the bottom edge

	numKinds = 4
)

var kindNames = [numKinds]string{
	KindFirework: "fireworks",
	KindConfetti: "confetti",
	KindStar:     "stars",
	KindBalloon:  "balloons",
}

// String returns the attribute value that selects k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// LookupKind returns the Kind named by s and whether s was recognized.
func LookupKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return KindFirework, false
}

// ParseKind returns the Kind named by s, falling back to KindFirework for
// anything unrecognized.
func ParseKind(s string) Kind {
	k, _ := LookupKind(s)
	return k
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// newRand returns a generator seeded from the runtime's global source.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
