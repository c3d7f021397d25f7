package raffle

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// processInput is called from Update to dispatch keyboard, mouse and touch
// input. A queued synthetic event replaces real pointer input for the frame.
func (w *Widget) processInput() {
	w.keyBuf = inpututil.AppendJustPressedKeys(w.keyBuf[:0])
	for _, k := range w.keyBuf {
		w.HandleKey(k)
	}

	if w.processInjectedInput() {
		return
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		w.Click(float64(mx), float64(my))
	}

	w.touchBuf = inpututil.AppendJustReleasedTouchIDs(w.touchBuf[:0])
	for _, id := range w.touchBuf {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		w.Click(float64(tx), float64(ty))
	}
}

// Click delivers a pointer release at (x, y) in layout coordinates. A
// release over the enabled draw button starts a draw. It reports whether
// the click started one.
func (w *Widget) Click(x, y float64) bool {
	if w.closed || w.button.Disabled() {
		return false
	}
	r := w.ButtonRect()
	if r.Width <= 0 || !r.Contains(x, y) {
		return false
	}
	return w.StartDraw() == nil
}
