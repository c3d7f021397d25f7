package raffle

import (
	"testing"
	"time"
)

func TestDebugModeCollectsFrameStats(t *testing.T) {
	w, _, _ := newTestWidget(Config{RangeStart: 1, RangeEnd: 5, Duration: 1, Kind: KindStar})
	w.SetDebugMode(true)
	rollThrough(t, w)
	for i := 0; i < 4; i++ {
		w.Advance(16 * time.Millisecond)
	}
	s := w.session.stats
	if s.frame != 5 {
		t.Errorf("stats frame = %d, want 5", s.frame)
	}
	if s.live != len(w.Particles()) {
		t.Errorf("stats live = %d, particles = %d", s.live, len(w.Particles()))
	}
}

func TestDebugModeOffSkipsStats(t *testing.T) {
	w, _, _ := newTestWidget(Config{RangeStart: 1, RangeEnd: 5, Duration: 1})
	rollThrough(t, w)
	w.Advance(16 * time.Millisecond)
	if w.session.stats != (frameStats{}) {
		t.Errorf("stats recorded without debug mode: %+v", w.session.stats)
	}
}
