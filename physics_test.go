package raffle

import (
	"math"
	"testing"
)

func TestStepFirework(t *testing.T) {
	f := &Firework{X: 10, Y: 20, VX: 1, VY: -2, Life: 1}
	ps := Step([]Particle{f}, 600)
	if len(ps) != 1 {
		t.Fatal("firework removed after one tick")
	}
	assertNear(t, "X", f.X, 11)
	assertNear(t, "Y", f.Y, 18)
	assertNear(t, "VY", f.VY, -1.9)
	assertNear(t, "Life", f.Life, 0.99)
}

func TestStepFireworkExpires(t *testing.T) {
	f := &Firework{Life: 1}
	ps := []Particle{f}
	ticks := 0
	for len(ps) > 0 {
		ps = Step(ps, 600)
		ticks++
		if ticks > 200 {
			t.Fatal("firework never expired")
		}
	}
	// 1 - 100*0.01 reaches zero within float rounding of tick 100.
	if ticks < 100 || ticks > 101 {
		t.Errorf("expired after %d ticks, want about 100", ticks)
	}
}

func TestStepConfetti(t *testing.T) {
	c := &Confetti{X: 0, Y: 0, VX: 1, VY: 2, Rotation: 10, RotationSpeed: -3, Life: 1}
	Step([]Particle{c}, 600)
	assertNear(t, "X", c.X, 1)
	assertNear(t, "Y", c.Y, 2)
	assertNear(t, "VY", c.VY, 2.1)
	assertNear(t, "Rotation", c.Rotation, 7)
	assertNear(t, "Life", c.Life, 1)
}

func TestStepConfettiRemovedBelowCanvas(t *testing.T) {
	c := &Confetti{Y: 599, VY: 2, Life: 1}
	ps := Step([]Particle{c}, 600)
	if len(ps) != 0 {
		t.Error("confetti below the canvas survived")
	}
	assertNear(t, "Life", c.Life, 0)
}

func TestStepStarGrowsThenFades(t *testing.T) {
	s := &Star{Life: 1}
	ps := []Particle{s}
	for i := 0; i < 20; i++ {
		ps = Step(ps, 600)
		assertNear(t, "Life while growing", s.Life, 1)
	}
	assertNear(t, "Scale", s.Scale, 1)

	ps = Step(ps, 600)
	assertNear(t, "Life after first fade", s.Life, 0.98)
	assertNear(t, "Scale", s.Scale, 1)
	if len(ps) != 1 {
		t.Fatal("star removed early")
	}
}

func TestStepStarScaleCapped(t *testing.T) {
	s := &Star{Scale: 0.99, Life: 1}
	Step([]Particle{s}, 600)
	assertNear(t, "Scale", s.Scale, 1)
}

func TestStepBalloon(t *testing.T) {
	b := &Balloon{X: 100, Y: 500, VX: 0.1, VY: -1.5, Phase: math.Pi / 2, Life: 1}
	Step([]Particle{b}, 600)
	assertNear(t, "X", b.X, 100.6)
	assertNear(t, "Y", b.Y, 498.5)
	assertNear(t, "Phase", b.Phase, math.Pi/2+0.1)
	assertNear(t, "Life", b.Life, 1)
}

func TestStepBalloonRemovedAboveCeiling(t *testing.T) {
	b := &Balloon{Y: -49, VY: -2, Life: 1}
	if ps := Step([]Particle{b}, 600); len(ps) != 0 {
		t.Error("balloon above the ceiling survived")
	}
}

func TestStepPreservesOrderAndClearsTail(t *testing.T) {
	a := &Firework{Life: 1}
	dead := &Firework{Life: 0.005}
	b := &Star{Life: 1}
	ps := []Particle{a, dead, b}
	backing := ps

	got := Step(ps, 600)
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("Step = %v", got)
	}
	if backing[2] != nil {
		t.Error("vacated slot not cleared")
	}
}

func TestStepEmpty(t *testing.T) {
	if got := Step(nil, 600); len(got) != 0 {
		t.Errorf("Step(nil) = %v", got)
	}
}

func TestLifeNeverIncreases(t *testing.T) {
	s := NewSpawner(seededRand(7))
	for k := Kind(0); k < numKinds; k++ {
		var ps []Particle
		last := map[Particle]float64{}
		for tick := 0; tick < 300; tick++ {
			ps = s.Spawn(ps, k, 800, 600)
			ps = Step(ps, 600)
			for _, p := range ps {
				if prev, ok := last[p]; ok && p.Remaining() > prev {
					t.Fatalf("%s: life rose from %v to %v", k, prev, p.Remaining())
				}
				if p.Remaining() <= 0 {
					t.Fatalf("%s: dead particle survived Step", k)
				}
				last[p] = p.Remaining()
			}
		}
	}
}
