package raffle

// EventSink receives widget lifecycle events. Set one with
// Widget.SetEventSink; the ecs package provides a donburi-backed sink.
type EventSink interface {
	EmitEvent(event Event)
}

// EventType identifies a widget lifecycle event.
type EventType uint8

const (
	EventDrawStarted         EventType = iota // a draw began rolling
	EventNumberRolled                         // one rolling tick displayed a number
	EventResultRevealed                       // the final number was displayed
	EventCelebrationStarted                   // a celebration session began
	EventCelebrationStopped                   // an active celebration session ended
	EventDismissed                            // a key press dismissed the celebration
)

var eventTypeNames = [...]string{
	EventDrawStarted:        "draw-started",
	EventNumberRolled:       "number-rolled",
	EventResultRevealed:     "result-revealed",
	EventCelebrationStarted: "celebration-started",
	EventCelebrationStopped: "celebration-stopped",
	EventDismissed:          "dismissed",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event carries lifecycle data to an EventSink.
type Event struct {
	Type EventType
	// Number is the displayed number for EventNumberRolled and
	// EventResultRevealed.
	Number int
	// Tick is the 1-based rolling tick for EventNumberRolled.
	Tick int
	// Kind is the configured celebration kind.
	Kind Kind
}

func (w *Widget) emit(e Event) {
	if w.sink == nil {
		return
	}
	e.Kind = w.config.Kind
	w.sink.EmitEvent(e)
}
