package raffle

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > 1e-6 || math.Abs(got.Y-want.Y) > 1e-6 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0.5, -1, 3, 10, 20}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineTranslateThenScale(t *testing.T) {
	translate := [6]float64{1, 0, 0, 1, 10, 20}
	scale := [6]float64{2, 0, 0, 3, 0, 0}
	got := multiplyAffine(translate, scale)
	assertMatrix(t, "T*S", got, [6]float64{2, 0, 0, 3, 10, 20})

	x, y := transformPoint(got, 1, 1)
	assertNear(t, "x", x, 12)
	assertNear(t, "y", y, 23)
}

func TestLineScale(t *testing.T) {
	tests := []struct {
		name string
		m    [6]float64
		want float64
	}{
		{"identity", identityTransform, 1},
		{"uniform", [6]float64{3, 0, 0, 3, 5, 5}, 3},
		{"rotation", [6]float64{0, 1, -1, 0, 0, 0}, 1},
		{"collapsed", [6]float64{0, 0, 0, 0, 0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "lineScale", lineScale(tt.m), tt.want)
		})
	}
}

// --- drawContext ---

func TestDrawContextSaveRestore(t *testing.T) {
	var ctx drawContext
	ctx.reset()

	ctx.save()
	ctx.translate(5, 6)
	ctx.alpha = 0.25
	ctx.save()
	ctx.scale(2, 2)
	ctx.restore()
	assertMatrix(t, "after inner restore", ctx.transform, [6]float64{1, 0, 0, 1, 5, 6})
	assertNear(t, "alpha", ctx.alpha, 0.25)

	ctx.restore()
	assertMatrix(t, "after outer restore", ctx.transform, identityTransform)
	assertNear(t, "alpha", ctx.alpha, 1)

	// Unbalanced restore is a no-op.
	ctx.restore()
	assertMatrix(t, "unbalanced", ctx.transform, identityTransform)
}

func TestDrawContextRotateIsClockwiseOnScreen(t *testing.T) {
	var ctx drawContext
	ctx.reset()
	ctx.rotate(math.Pi / 2)
	got := ctx.project([]Vec2{{1, 0}})
	// +X rotates onto +Y, which points down on screen.
	assertVec(t, "rotated", got[0], Vec2{0, 1})
}

func TestDrawContextTranslateRotate(t *testing.T) {
	var ctx drawContext
	ctx.reset()
	ctx.translate(100, 50)
	ctx.rotate(math.Pi)
	got := ctx.project([]Vec2{{10, 0}, {0, 10}})
	assertVec(t, "p0", got[0], Vec2{90, 50})
	assertVec(t, "p1", got[1], Vec2{100, 40})
}

func TestDrawContextResetClearsStack(t *testing.T) {
	var ctx drawContext
	ctx.reset()
	ctx.save()
	ctx.save()
	ctx.translate(1, 1)
	ctx.reset()
	if len(ctx.stack) != 0 {
		t.Errorf("stack len = %d after reset, want 0", len(ctx.stack))
	}
	assertMatrix(t, "transform", ctx.transform, identityTransform)
}

func TestDrawContextFillAppliesAlpha(t *testing.T) {
	var ctx drawContext
	ctx.reset()
	ctx.alpha = 0.5
	rc := &recordingCanvas{w: 10, h: 10}
	ctx.fill(rc, []Vec2{{0, 0}, {1, 0}, {0, 1}}, Color{1, 0, 0, 0.8})
	if len(rc.ops) != 1 {
		t.Fatalf("ops = %d, want 1", len(rc.ops))
	}
	assertNear(t, "alpha", rc.ops[0].color.A, 0.4)
}

func TestDrawContextStrokeScalesWidth(t *testing.T) {
	var ctx drawContext
	ctx.reset()
	ctx.scale(0.5, 0.5)
	rc := &recordingCanvas{w: 10, h: 10}
	ctx.stroke(rc, []Vec2{{0, 0}, {10, 0}}, false, 4, ColorWhite)
	assertNear(t, "width", rc.ops[0].width, 2)
	assertVec(t, "end", rc.ops[0].points[1], Vec2{5, 0})
}
