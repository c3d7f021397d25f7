package raffle

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep is one entry of a JSON test script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Key    string  `json:"key,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`

	key ebiten.Key // parsed Key for "key" steps
}

// TestRunner plays a scripted sequence of draws, clicks, key presses, waits,
// resizes and screenshots against a Widget, one step per frame, so a draw
// can be recorded without a person at the keyboard.
//
// A script is JSON of the form {"steps": [...]} where each step has an
// "action":
//
//	draw        click the draw button
//	click       click at "x", "y"
//	key         press "key" (an ebiten.Key name such as "Space")
//	wait        idle for "frames" frames
//	resize      lay out at "width" x "height"
//	screenshot  capture the next frame as "label"
type TestRunner struct {
	steps []scriptStep
	next  int
	idle  int // frames left in the current wait
	done  bool
}

var errNoSteps = errors.New("no steps")

// LoadTestScript parses and validates a JSON test script. Unknown actions
// and unknown key names are errors.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", errNoSteps)
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "draw", "click", "wait", "resize", "screenshot":
		case "key":
			if err := st.key.UnmarshalText([]byte(st.Key)); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner that Update steps before handling input.
// Nil detaches it.
func (w *Widget) SetTestRunner(r *TestRunner) { w.testRunner = r }

// Done reports whether every step has run and the last wait has elapsed.
func (r *TestRunner) Done() bool { return r.done }

// step runs at most one script step. It holds while injected input from an
// earlier step is still queued.
func (r *TestRunner) step(w *Widget) {
	if r.done || len(w.injectQueue) > 0 {
		return
	}
	if r.idle > 0 {
		r.idle--
		return
	}
	if r.next == len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.next]
	r.next++
	switch st.Action {
	case "draw":
		w.InjectButtonClick()
	case "click":
		w.InjectClick(st.X, st.Y)
	case "key":
		w.InjectKey(st.key)
	case "resize":
		w.Resize(st.Width, st.Height)
	case "screenshot":
		w.Screenshot(st.Label)
	case "wait":
		r.idle = max(st.Frames-1, 0) // the current frame is the first
	}

	if r.next == len(r.steps) && r.idle == 0 && len(w.injectQueue) == 0 {
		r.done = true
	}
}
