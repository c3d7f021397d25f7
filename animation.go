package raffle

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Reveal pop parameters for the final number.
const (
	revealPopFrom     = 0.6
	revealPopDuration = 0.35 // seconds
)

// TweenGroup animates up to 4 float64 fields simultaneously. Call Update(dt)
// each frame; values are written to the fields as they change.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g == nil || g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// NumberPop is the scale and opacity of the number display.
type NumberPop struct {
	Scale float64
	Alpha float64
}

// revealPop pairs the animated values with the tween driving them.
type revealPop struct {
	NumberPop
	group *TweenGroup
}

// newRevealPop starts the pop-in played when the result is shown.
func newRevealPop() *revealPop {
	p := &revealPop{NumberPop: NumberPop{Scale: revealPopFrom, Alpha: 0}}
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(revealPopFrom, 1, revealPopDuration, ease.OutBack)
	g.tweens[1] = gween.New(0, 1, revealPopDuration, ease.OutQuad)
	g.fields[0] = &p.Scale
	g.fields[1] = &p.Alpha
	p.group = g
	return p
}

// Update advances the pop by dt seconds.
func (p *revealPop) Update(dt float32) {
	if p == nil {
		return
	}
	p.group.Update(dt)
}

// NumberPop returns the current scale and opacity of the number display.
// Outside a reveal both are 1.
func (w *Widget) NumberPop() NumberPop {
	if w.pop == nil || w.pop.group.Done {
		return NumberPop{Scale: 1, Alpha: 1}
	}
	return w.pop.NumberPop
}
