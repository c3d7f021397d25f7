package raffle

import "time"

// TimerID identifies an interval registered with SetInterval. Zero is never
// a valid ID.
type TimerID uint32

// FrameID identifies a frame callback registered with RequestFrame. Zero is
// never a valid ID.
type FrameID uint32

type interval struct {
	id     TimerID
	period time.Duration
	next   time.Duration
	fn     func()
}

type frameRequest struct {
	id FrameID
	fn func()
}

// Scheduler is a cooperative, single-threaded timer queue driven by the game
// loop. Nothing runs except inside Advance, so callbacks never overlap and
// never race with the code that registers or cancels them.
//
// It offers the two primitives a browser gives a widget: repeating intervals
// and one-shot next-frame callbacks.
type Scheduler struct {
	now       time.Duration
	lastID    uint32
	intervals []interval
	frames    []frameRequest
	running   []frameRequest // frames being dispatched by the current Advance
}

func (s *Scheduler) nextID() uint32 {
	s.lastID++
	if s.lastID == 0 {
		s.lastID++
	}
	return s.lastID
}

// Now returns the total time advanced so far.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// SetInterval calls fn every period, first one period from now. A period
// below one nanosecond is raised to one.
func (s *Scheduler) SetInterval(period time.Duration, fn func()) TimerID {
	if period < 1 {
		period = 1
	}
	id := TimerID(s.nextID())
	s.intervals = append(s.intervals, interval{id: id, period: period, next: s.now + period, fn: fn})
	return id
}

// ClearInterval cancels an interval. Unknown or already cleared IDs are
// ignored.
func (s *Scheduler) ClearInterval(id TimerID) {
	for i := range s.intervals {
		if s.intervals[i].id == id {
			s.intervals = append(s.intervals[:i], s.intervals[i+1:]...)
			return
		}
	}
}

// RequestFrame schedules fn to run once during the next Advance. A callback
// requested while frames are being dispatched runs on the following Advance.
func (s *Scheduler) RequestFrame(fn func()) FrameID {
	id := FrameID(s.nextID())
	s.frames = append(s.frames, frameRequest{id: id, fn: fn})
	return id
}

// CancelFrame cancels a pending frame callback. Unknown, already run, or
// already cancelled IDs are ignored.
func (s *Scheduler) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	for i := range s.frames {
		if s.frames[i].id == id {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			return
		}
	}
	for i := range s.running {
		if s.running[i].id == id {
			s.running[i].fn = nil
			return
		}
	}
}

// Pending reports how many intervals and frame callbacks are outstanding.
func (s *Scheduler) Pending() (intervals, frames int) {
	return len(s.intervals), len(s.frames)
}

// Advance moves time forward by dt, fires every interval that came due (once
// per elapsed period), then runs the frame callbacks that were pending when
// Advance was called. Frames requested by those intervals run on the next
// Advance.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}
	s.running, s.frames = s.frames, s.running[:0]
	s.fireIntervals()

	for i := range s.running {
		if fn := s.running[i].fn; fn != nil {
			s.running[i].fn = nil
			fn()
		}
	}
	s.running = s.running[:0]
}

func (s *Scheduler) fireIntervals() {
	for {
		idx := -1
		for i := range s.intervals {
			if s.intervals[i].next <= s.now && (idx < 0 || s.intervals[i].next < s.intervals[idx].next) {
				idx = i
			}
		}
		if idx < 0 {
			return
		}
		it := &s.intervals[idx]
		it.next += it.period
		// fn may clear or add intervals, so it runs after the bookkeeping.
		it.fn()
	}
}

// Reset cancels every interval and frame callback.
func (s *Scheduler) Reset() {
	s.intervals = s.intervals[:0]
	s.frames = s.frames[:0]
	for i := range s.running {
		s.running[i].fn = nil
	}
}
