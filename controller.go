package raffle

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RollInterval is the time between two displayed numbers while rolling.
const RollInterval = 100 * time.Millisecond

// ErrClosed is returned by operations on a widget after Close.
var ErrClosed = errors.New("raffle: widget closed")

// State is the draw controller's position in its lifecycle:
// Idle -> Rolling -> Revealing -> Celebrating -> Idle.
type State uint8

const (
	StateIdle        State = iota // trigger enabled, no particles, no frame scheduled
	StateRolling                  // trigger disabled, a new number every 100ms
	StateRevealing                // final number being computed and shown
	StateCelebrating              // particle loop running until stopped
)

var stateNames = [...]string{
	StateIdle:        "idle",
	StateRolling:     "rolling",
	StateRevealing:   "revealing",
	StateCelebrating: "celebrating",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// KeyEvent is a key press delivered to the widget's key listeners.
type KeyEvent struct {
	Key              ebiten.Key
	defaultPrevented bool
}

// PreventDefault marks the key press as consumed.
func (e *KeyEvent) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a listener consumed the key press.
func (e *KeyEvent) DefaultPrevented() bool { return e.defaultPrevented }

// Widget is one raffle instance: it rolls numbers, reveals a winner and
// plays a celebration on its Canvas until dismissed. Widgets share no state
// with each other. A Widget is not safe for concurrent use; drive it from
// the goroutine running the game loop.
type Widget struct {
	config  Config
	rng     *rand.Rand
	sched   Scheduler
	session celebration
	state   State

	roll     TimerID
	rollTick int
	result   int
	revealed bool

	container Element
	canvasEl  Element
	button    Element
	number    Element

	// dismiss is the one-shot key listener armed on reveal.
	dismiss func(*KeyEvent)

	fullscreen    bool
	setFullscreen func(bool)
	sink          EventSink
	pop           *revealPop
	format        func(int) string
	debug         bool
	closed        bool

	width, height int // last layout size

	keyBuf      []ebiten.Key
	touchBuf    []ebiten.TouchID
	injectQueue []syntheticEvent

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string
	testRunner      *TestRunner

	fonts  *Fonts
	ui     ImageCanvas // wraps the screen while drawing the button
	uiPath []Vec2
}

// NewWidget creates an idle widget for cfg. The config is normalized first.
// The widget has no Canvas until SetCanvas or Run provides one.
func NewWidget(cfg Config) *Widget {
	cfg = cfg.Normalize()
	w := &Widget{
		config:        cfg,
		rng:           newRand(),
		container:     newElement("container"),
		canvasEl:      newElement("canvas"),
		button:        newElement("button"),
		number:        newElement("number"),
		format:        numberFormatter(cfg.Locale),
		ScreenshotDir: "screenshots",
	}
	w.session.sched = &w.sched
	w.session.spawner = NewSpawner(w.rng)
	w.button.setText("Draw")
	return w
}

// numberFormatter returns strconv.Itoa, or a locale-aware formatter with digit
// grouping when locale names a valid language tag.
func numberFormatter(locale string) func(int) string {
	if locale == "" {
		return strconv.Itoa
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return strconv.Itoa
	}
	p := message.NewPrinter(tag)
	return func(n int) string { return p.Sprintf("%d", n) }
}

// SetRand replaces the random source used for numbers and particles.
func (w *Widget) SetRand(rng *rand.Rand) {
	if rng == nil {
		rng = newRand()
	}
	w.rng = rng
	w.session.spawner = NewSpawner(rng)
}

// SetCanvas sets the surface celebrations are painted on. Any running
// celebration is stopped first. A nil canvas disables celebrations.
func (w *Widget) SetCanvas(c Canvas) {
	w.StopCelebration()
	w.session.canvas = c
	if r, ok := c.(resizer); ok && w.width > 0 && w.height > 0 {
		r.Resize(w.width, w.height)
	}
}

// Canvas returns the celebration surface, or nil.
func (w *Widget) Canvas() Canvas { return w.session.canvas }

// SetEventSink sets the receiver of lifecycle events. Nil disables events.
func (w *Widget) SetEventSink(sink EventSink) { w.sink = sink }

// SetFullscreenFunc sets the hook called to enter (true) or leave (false)
// fullscreen. Run installs ebiten.SetFullscreen.
func (w *Widget) SetFullscreenFunc(fn func(bool)) { w.setFullscreen = fn }

// Config returns the normalized configuration.
func (w *Widget) Config() Config { return w.config }

// State returns the current lifecycle state.
func (w *Widget) State() State { return w.state }

// Container returns the outer element; it carries ClassFullscreenActive.
func (w *Widget) Container() *Element { return &w.container }

// CanvasElement returns the overlay element; it carries ClassActive.
func (w *Widget) CanvasElement() *Element { return &w.canvasEl }

// Button returns the draw trigger.
func (w *Widget) Button() *Element { return &w.button }

// Number returns the element showing the rolling or final number.
func (w *Widget) Number() *Element { return &w.number }

// Message returns the caption describing the configured range.
func (w *Widget) Message() string {
	return "Raffling between " + w.format(w.config.RangeStart) + " and " + w.format(w.config.RangeEnd)
}

// Result returns the most recent winning number and whether one has been
// revealed since the last draw started.
func (w *Widget) Result() (int, bool) { return w.result, w.revealed }

// Particles returns the live particle set. The slice must not be modified
// and is only valid until the next Advance.
func (w *Widget) Particles() []Particle { return w.session.particles }

// Celebrating reports whether a celebration session is active.
func (w *Widget) Celebrating() bool { return w.session.active }

// DismissalArmed reports whether the one-shot dismissal listener is attached.
func (w *Widget) DismissalArmed() bool { return w.dismiss != nil }

// Closed reports whether Close has been called.
func (w *Widget) Closed() bool { return w.closed }

func (w *Widget) setState(s State) {
	if w.state == s {
		return
	}
	w.debugf("state %s -> %s", w.state, s)
	w.state = s
}

// StartDraw begins a draw: any celebration is stopped, the trigger is
// disabled, and a new random number is shown every 100ms for the configured
// duration before the result is revealed. Calling it while a draw is already
// rolling does nothing.
func (w *Widget) StartDraw() error {
	if w.closed {
		return ErrClosed
	}
	if w.state == StateRolling {
		return nil
	}
	w.StopCelebration()

	if w.config.Fullscreen {
		w.container.addClass(ClassFullscreenActive)
		w.enterFullscreen()
	}

	w.button.setDisabled(true)
	w.button.addClass(ClassDrawing)
	w.number.removeClass(ClassRevealed)
	w.number.addClass(ClassRolling)
	w.pop = nil
	w.revealed = false
	w.rollTick = 0

	w.setState(StateRolling)
	w.emit(Event{Type: EventDrawStarted})

	w.sched.ClearInterval(w.roll)
	w.roll = w.sched.SetInterval(RollInterval, w.rollStep)
	return nil
}

// rollStep displays one rolling number and reveals the result after the
// final tick.
func (w *Widget) rollStep() {
	n := w.drawNumber()
	w.number.setText(w.format(n))
	w.rollTick++
	w.emit(Event{Type: EventNumberRolled, Number: n, Tick: w.rollTick})

	if w.rollTick >= w.config.RollTicks() {
		w.sched.ClearInterval(w.roll)
		w.roll = 0
		w.revealResult()
	}
}

// drawNumber returns a uniform integer in [RangeStart, RangeEnd]. Successive
// draws are independent and may repeat.
func (w *Widget) drawNumber() int {
	return w.session.spawner.IntInclusive(w.config.RangeStart, w.config.RangeEnd)
}

// revealResult shows the final number, re-enables the trigger, starts the
// celebration and arms the dismissal listener.
func (w *Widget) revealResult() {
	w.setState(StateRevealing)

	w.result = w.drawNumber()
	w.revealed = true
	w.number.setText(w.format(w.result))
	w.number.removeClass(ClassRolling)
	w.number.addClass(ClassRevealed)
	w.button.setDisabled(false)
	w.button.removeClass(ClassDrawing)
	w.pop = newRevealPop()
	w.debugf("revealed %d in [%d, %d]", w.result, w.config.RangeStart, w.config.RangeEnd)
	w.emit(Event{Type: EventResultRevealed, Number: w.result})

	w.canvasEl.addClass(ClassActive)
	if w.session.start(w.config.Kind) {
		w.setState(StateCelebrating)
		w.emit(Event{Type: EventCelebrationStarted})
	} else {
		w.canvasEl.removeClass(ClassActive)
		w.setState(StateIdle)
	}
	w.attachDismissal()
}

// StopCelebration cancels the frame loop, drops every particle, clears the
// canvas and deactivates the session. It is safe to call at any time and
// any number of times.
func (w *Widget) StopCelebration() {
	wasActive := w.session.active
	w.session.stop()
	w.canvasEl.removeClass(ClassActive)
	if w.state == StateCelebrating {
		w.setState(StateIdle)
	}
	if wasActive {
		w.emit(Event{Type: EventCelebrationStopped})
	}
}

// attachDismissal arms a fresh one-shot dismissal listener, replacing any
// previous one.
func (w *Widget) attachDismissal() {
	w.detachDismissal()
	w.dismiss = func(e *KeyEvent) {
		if !w.session.active {
			return
		}
		e.PreventDefault()
		w.StopCelebration()
		if w.config.Fullscreen && w.container.HasClass(ClassFullscreenActive) {
			w.container.removeClass(ClassFullscreenActive)
			w.exitFullscreen()
		}
		w.detachDismissal()
		w.emit(Event{Type: EventDismissed})
	}
}

func (w *Widget) detachDismissal() {
	w.dismiss = nil
}

// HandleKey delivers a key press. The dismissal listener sees it first; if
// it did not consume the press, Space or Enter start a draw while the
// trigger is enabled. It reports whether the press was consumed.
func (w *Widget) HandleKey(k ebiten.Key) bool {
	if w.closed {
		return false
	}
	e := KeyEvent{Key: k}
	if w.dismiss != nil {
		w.dismiss(&e)
	}
	if e.DefaultPrevented() {
		return true
	}
	if isTriggerKey(k) && !w.button.Disabled() {
		_ = w.StartDraw()
		return true
	}
	return false
}

func isTriggerKey(k ebiten.Key) bool {
	switch k {
	case ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return true
	}
	return false
}

func (w *Widget) enterFullscreen() {
	if w.fullscreen {
		return
	}
	w.fullscreen = true
	if w.setFullscreen != nil {
		w.setFullscreen(true)
	}
}

func (w *Widget) exitFullscreen() {
	if !w.fullscreen {
		return
	}
	w.fullscreen = false
	if w.setFullscreen != nil {
		w.setFullscreen(false)
	}
}

// Resize records a new layout size and resizes the canvas to match when it
// supports resizing. Only later frames see the new size.
func (w *Widget) Resize(width, height int) {
	if width == w.width && height == w.height {
		return
	}
	w.width, w.height = width, height
	if r, ok := w.session.canvas.(resizer); ok {
		r.Resize(width, height)
	}
}

// Advance moves the widget's clock forward by dt: due rolling ticks and the
// pending celebration frame run, and the reveal tween progresses.
func (w *Widget) Advance(dt time.Duration) {
	if w.closed {
		return
	}
	w.sched.Advance(dt)
	if w.pop != nil {
		w.pop.Update(float32(dt.Seconds()))
	}
}

// Close stops the widget for good: timers and the celebration are
// cancelled, the dismissal listener is detached, and fullscreen is left.
// Later StartDraw calls return ErrClosed.
func (w *Widget) Close() {
	if w.closed {
		return
	}
	w.StopCelebration()
	w.sched.Reset()
	w.roll = 0
	w.detachDismissal()
	w.container.removeClass(ClassFullscreenActive)
	w.exitFullscreen()
	w.setState(StateIdle)
	w.closed = true
}
