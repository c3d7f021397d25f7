package raffle

import (
	"testing"
	"time"
)

func TestSchedulerIntervalFiresEachPeriod(t *testing.T) {
	var s Scheduler
	n := 0
	s.SetInterval(100*time.Millisecond, func() { n++ })

	s.Advance(99 * time.Millisecond)
	if n != 0 {
		t.Fatalf("fired early: %d", n)
	}
	s.Advance(1 * time.Millisecond)
	if n != 1 {
		t.Fatalf("n = %d after one period, want 1", n)
	}
	s.Advance(350 * time.Millisecond)
	if n != 4 {
		t.Errorf("n = %d after 450ms, want 4", n)
	}
}

func TestSchedulerClearIntervalFromCallback(t *testing.T) {
	var s Scheduler
	n := 0
	var id TimerID
	id = s.SetInterval(10*time.Millisecond, func() {
		n++
		if n == 3 {
			s.ClearInterval(id)
		}
	})
	s.Advance(time.Second)
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}
	if iv, _ := s.Pending(); iv != 0 {
		t.Errorf("intervals pending = %d", iv)
	}
}

func TestSchedulerClearIntervalIdempotent(t *testing.T) {
	var s Scheduler
	id := s.SetInterval(time.Millisecond, func() {})
	s.ClearInterval(id)
	s.ClearInterval(id)
	s.ClearInterval(0)
	s.ClearInterval(12345)
	if iv, _ := s.Pending(); iv != 0 {
		t.Errorf("intervals pending = %d", iv)
	}
}

func TestSchedulerIntervalOrder(t *testing.T) {
	var s Scheduler
	var order []string
	s.SetInterval(30*time.Millisecond, func() { order = append(order, "slow") })
	s.SetInterval(20*time.Millisecond, func() { order = append(order, "fast") })
	s.Advance(60 * time.Millisecond)
	// Ties go to the interval registered first.
	want := []string{"fast", "slow", "fast", "slow", "fast"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestSchedulerFrameRunsOnce(t *testing.T) {
	var s Scheduler
	n := 0
	s.RequestFrame(func() { n++ })
	s.Advance(0)
	s.Advance(0)
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
}

func TestSchedulerFrameRequestedDuringFrameRunsNextAdvance(t *testing.T) {
	var s Scheduler
	n := 0
	var loop func()
	loop = func() {
		n++
		s.RequestFrame(loop)
	}
	s.RequestFrame(loop)
	for i := 0; i < 5; i++ {
		s.Advance(16 * time.Millisecond)
	}
	if n != 5 {
		t.Errorf("n = %d after 5 advances, want 5", n)
	}
	if _, fr := s.Pending(); fr != 1 {
		t.Errorf("frames pending = %d, want 1", fr)
	}
}

func TestSchedulerFrameRequestedByIntervalRunsNextAdvance(t *testing.T) {
	var s Scheduler
	ran := false
	s.SetInterval(10*time.Millisecond, func() {
		s.RequestFrame(func() { ran = true })
	})
	s.Advance(10 * time.Millisecond)
	if ran {
		t.Fatal("frame ran in the Advance that requested it")
	}
	s.Advance(0)
	if !ran {
		t.Error("frame did not run on the next Advance")
	}
}

func TestSchedulerCancelFrame(t *testing.T) {
	var s Scheduler
	ran := false
	id := s.RequestFrame(func() { ran = true })
	s.CancelFrame(id)
	s.CancelFrame(id)
	s.CancelFrame(0)
	s.Advance(0)
	if ran {
		t.Error("cancelled frame ran")
	}
}

func TestSchedulerCancelFrameDuringDispatch(t *testing.T) {
	var s Scheduler
	var second FrameID
	ran := false
	s.RequestFrame(func() { s.CancelFrame(second) })
	second = s.RequestFrame(func() { ran = true })
	s.Advance(0)
	if ran {
		t.Error("frame cancelled by an earlier frame still ran")
	}
}

func TestSchedulerReset(t *testing.T) {
	var s Scheduler
	n := 0
	s.SetInterval(time.Millisecond, func() { n++ })
	s.RequestFrame(func() { n++ })
	s.Reset()
	s.Advance(time.Second)
	if n != 0 {
		t.Errorf("n = %d after Reset, want 0", n)
	}
	if iv, fr := s.Pending(); iv != 0 || fr != 0 {
		t.Errorf("pending = %d, %d", iv, fr)
	}
}

func TestSchedulerIDsNonZeroAndUnique(t *testing.T) {
	var s Scheduler
	a := s.SetInterval(time.Second, func() {})
	b := s.RequestFrame(func() {})
	c := s.SetInterval(time.Second, func() {})
	if a == 0 || b == 0 || c == 0 {
		t.Fatal("zero ID issued")
	}
	if uint32(a) == uint32(b) || a == c || uint32(b) == uint32(c) {
		t.Error("IDs not unique")
	}
}

func TestSchedulerNow(t *testing.T) {
	var s Scheduler
	s.Advance(5 * time.Millisecond)
	s.Advance(-time.Second)
	if s.Now() != 5*time.Millisecond {
		t.Errorf("Now = %v", s.Now())
	}
}
