package raffle

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Widget layout and colors.
const (
	buttonWidth  = 180
	buttonHeight = 56
	buttonStroke = 2
)

var (
	backgroundColor     = mustHex("#1b1f3b")
	buttonColor         = mustHex("#e63946")
	buttonDisabledColor = mustHex("#6c6f85")
	textColor           = ColorWhite
	messageColor        = ColorWhite.WithAlpha(0.75)
	dimColor            = Color{0, 0, 0, 0.35}
)

// RunConfig holds optional parameters for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the window size. Defaults to 800x600 if zero.
	Width, Height int
	// ShowFPS enables the debug overlay and debug logging.
	ShowFPS bool
}

// Run opens a window and runs the widget until the window is closed or
// Close is called. A widget without a Canvas gets an ImageCanvas sized to
// the window, and fullscreen requests toggle the window's fullscreen mode.
func Run(w *Widget, cfg RunConfig) error {
	if w == nil {
		return errors.New("raffle: nil widget")
	}
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if cfg.ShowFPS {
		w.SetDebugMode(true)
	}
	if w.setFullscreen == nil {
		w.SetFullscreenFunc(ebiten.SetFullscreen)
	}
	if w.session.canvas == nil {
		w.SetCanvas(NewImageCanvas(cfg.Width, cfg.Height))
	}

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game. It runs the test runner, dispatches input
// and advances the widget by one tick.
func (w *Widget) Update() error {
	if w.closed {
		return ebiten.Termination
	}
	w.update(tickDuration(), true)
	return nil
}

// update runs one tick. With realInput false only injected events are
// processed, so the tick can run without a window.
func (w *Widget) update(dt time.Duration, realInput bool) {
	if w.testRunner != nil {
		w.testRunner.step(w)
	}
	if realInput {
		w.processInput()
	} else {
		w.processInjectedInput()
	}
	w.Advance(dt)
}

// tickDuration is the simulated time covered by one Update call.
func tickDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// Draw implements ebiten.Game. It paints the background, the celebration
// canvas, the number, the caption and the draw button.
func (w *Widget) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor.toRGBA())

	b := screen.Bounds()
	width, height := float64(b.Dx()), float64(b.Dy())

	if c, ok := w.session.canvas.(*ImageCanvas); ok && c.img != nil && w.canvasEl.HasClass(ClassActive) {
		screen.DrawImage(c.img, nil)
	}

	w.ui.img = screen
	fonts := w.ensureFonts()
	if fonts != nil {
		pop := w.NumberPop()
		drawTextCentered(screen, w.number.Text(), fonts.Number, width/2, height*0.42, pop.Scale, textColor.WithAlpha(pop.Alpha))
		drawTextCentered(screen, w.Message(), fonts.Message, width/2, height*0.18, 1, messageColor)
	}
	w.drawButton(fonts)

	if w.debug {
		w.drawDebugOverlay(screen)
	}
	w.flushScreenshots(screen)
}

// drawButton paints the draw trigger with a drop shadow.
func (w *Widget) drawButton(fonts *Fonts) {
	r := w.ButtonRect()
	if r.Width <= 0 {
		return
	}
	col := buttonColor
	if w.button.Disabled() {
		col = buttonDisabledColor
	}
	w.uiPath = appendRect(w.uiPath[:0], r.X+3, r.Y+4, r.Width, r.Height)
	w.ui.FillPolygon(w.uiPath, dimColor)
	w.uiPath = appendRect(w.uiPath[:0], r.X, r.Y, r.Width, r.Height)
	w.ui.FillPolygon(w.uiPath, col)
	w.ui.StrokePolyline(w.uiPath, true, buttonStroke, ColorWhite.WithAlpha(0.5))
	if fonts != nil {
		drawTextCentered(w.ui.img, w.button.Text(), fonts.Button, r.X+r.Width/2, r.Y+r.Height/2, 1, textColor)
	}
}

// ButtonRect returns the draw button's bounds in layout coordinates.
func (w *Widget) ButtonRect() Rect {
	if w.width <= 0 || w.height <= 0 {
		return Rect{}
	}
	return Rect{
		X:      (float64(w.width) - buttonWidth) / 2,
		Y:      float64(w.height)*0.72 - buttonHeight/2,
		Width:  buttonWidth,
		Height: buttonHeight,
	}
}

// Layout implements ebiten.Game. The layout matches the window size and
// the celebration canvas follows it.
func (w *Widget) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
