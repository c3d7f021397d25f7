package raffle

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugLogEvery is how many celebration frames pass between stats lines.
const debugLogEvery = 60

// frameStats holds per-frame timing and particle counts.
// Only populated while debug mode is on.
type frameStats struct {
	frame      int
	spawned    int
	live       int
	stepTime   time.Duration
	renderTime time.Duration
}

// log prints the stats to stderr on every debugLogEvery-th frame.
func (s frameStats) log() {
	if s.frame%debugLogEvery != 0 {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[raffle] frame %d | live: %d | spawned: %d | step: %v | render: %v\n",
		s.frame, s.live, s.spawned, s.stepTime, s.renderTime)
}

// SetDebugMode enables or disables debug mode. When enabled, state
// transitions and periodic celebration frame stats are logged to stderr and
// Draw adds a text overlay with the widget state.
func (w *Widget) SetDebugMode(enabled bool) {
	w.debug = enabled
	w.session.debug = enabled
}

// debugf writes one prefixed line to stderr when debug mode is on.
func (w *Widget) debugf(format string, args ...any) {
	if !w.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[raffle] "+format+"\n", args...)
}

// drawDebugOverlay prints the widget state, particle counts and loop rates
// in the top-left corner.
func (w *Widget) drawDebugOverlay(screen *ebiten.Image) {
	counts := CountByKind(w.session.particles)
	intervals, frames := w.sched.Pending()
	msg := fmt.Sprintf("state: %s\nkind: %s\nparticles: %d (fw %d, cf %d, st %d, bl %d)\ntimers: %d frames: %d\nFPS: %.1f TPS: %.1f",
		w.state, w.config.Kind, len(w.session.particles),
		counts[KindFirework], counts[KindConfetti], counts[KindStar], counts[KindBalloon],
		intervals, frames, ebiten.ActualFPS(), ebiten.ActualTPS())
	ebitenutil.DebugPrint(screen, msg)
}
