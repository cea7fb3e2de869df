package ecs

import (
	"github.com/Raymond-exe/porkbelly"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GameEventType is the Donburi event type for porkbelly gameplay events:
// guest invitations, zone entries and tulip pickups.
var GameEventType = events.NewEventType[porkbelly.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on GameEventType and delivered by events.ProcessAllEvents or
// GameEventType.ProcessEvents.
func NewDonburiSink(world donburi.World) porkbelly.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event porkbelly.Event) {
	GameEventType.Publish(s.world, event)
}

// Tally counts delivered events per kind. Subscribe its Handle method to
// GameEventType.
type Tally struct {
	counts map[porkbelly.EventKind]int
	last   porkbelly.Event
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[porkbelly.EventKind]int)}
}

// Handle records one event.
func (t *Tally) Handle(_ donburi.World, e porkbelly.Event) {
	t.counts[e.Kind]++
	t.last = e
}

// Count returns how many events of kind k were delivered.
func (t *Tally) Count(k porkbelly.EventKind) int {
	return t.counts[k]
}

// Last returns the most recently delivered event.
func (t *Tally) Last() porkbelly.Event {
	return t.last
}
