package ecs

import (
	"slices"

	"github.com/phanxgames/raffle"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// EventType is the Donburi event type for raffle lifecycle events.
var EventType = events.NewEventType[raffle.Event]()

// DrawRecord is one revealed raffle result.
type DrawRecord struct {
	Seq    int // 1-based reveal order within the world
	Number int
	Kind   raffle.Kind
}

// DrawResult is the component attached to every result entity.
var DrawResult = donburi.NewComponentType[DrawRecord]()

var resultQuery = donburi.NewQuery(filter.Contains(DrawResult))

type donburiSink struct {
	world donburi.World
	seq   int
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to EventType and can be consumed with events.Subscribe and
// ProcessEvents. Each EventResultRevealed also creates a DrawResult entity.
func NewDonburiSink(world donburi.World) raffle.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event raffle.Event) {
	if event.Type == raffle.EventResultRevealed {
		s.seq++
		entry := s.world.Entry(s.world.Create(DrawResult))
		DrawResult.SetValue(entry, DrawRecord{Seq: s.seq, Number: event.Number, Kind: event.Kind})
	}
	EventType.Publish(s.world, event)
}

// Results returns every recorded result in reveal order.
func Results(world donburi.World) []DrawRecord {
	var out []DrawRecord
	resultQuery.Each(world, func(entry *donburi.Entry) {
		out = append(out, *DrawResult.Get(entry))
	})
	slices.SortFunc(out, func(a, b DrawRecord) int { return a.Seq - b.Seq })
	return out
}
