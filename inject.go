package raffle

import "github.com/hajimehoshi/ebiten/v2"

// syntheticKind distinguishes queued synthetic events.
type syntheticKind uint8

const (
	syntheticKey syntheticKind = iota
	syntheticClick
)

// syntheticEvent is one injected input event, consumed one per frame.
type syntheticEvent struct {
	kind syntheticKind
	key  ebiten.Key
	x, y float64
}

// InjectKey queues a key press. The event is consumed on the next frame's
// processInput call, after real keyboard input.
func (w *Widget) InjectKey(k ebiten.Key) {
	w.injectQueue = append(w.injectQueue, syntheticEvent{kind: syntheticKey, key: k})
}

// InjectClick queues a pointer click at the given layout coordinates.
func (w *Widget) InjectClick(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticEvent{kind: syntheticClick, x: x, y: y})
}

// InjectButtonClick queues a click at the center of the draw button.
func (w *Widget) InjectButtonClick() {
	r := w.ButtonRect()
	w.InjectClick(r.X+r.Width/2, r.Y+r.Height/2)
}

// processInjectedInput pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed.
func (w *Widget) processInjectedInput() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	switch evt.kind {
	case syntheticKey:
		w.HandleKey(evt.key)
	case syntheticClick:
		w.Click(evt.x, evt.y)
	}
	return true
}
