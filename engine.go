package porkbelly

// Body is a physics body owned by the physics adapter. Position is the body
// center. The adapter integrates velocity into position after World.Update.
type Body interface {
	Position() Vec2
	SetPosition(p Vec2)
	Velocity() Vec2
	SetVelocityX(vx float64)
	SetVelocityY(vy float64)
	// OnFloor reports whether the body touched solid ground on its last step.
	OnFloor() bool
	// AllowGravity is fixed when the body is created.
	AllowGravity() bool
	Bounds() Rect
}

// Physics creates bodies. It is implemented by the arcade package.
type Physics interface {
	NewBody(pos Vec2, width, height float64, gravity bool) Body
}

// Key identifies a logical input key. Hosts map physical keys onto these.
type Key uint8

const (
	KeyLeft  Key = iota // A or left arrow
	KeyRight            // D or right arrow
	KeyJump             // W, space or up arrow
	KeyDebug            // down arrow; logs the player position
	keyCount
)

var keyNames = [keyCount]string{"left", "right", "jump", "debug"}

// String returns the lower-case key name used in scripts.
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey maps a script key name to a Key.
func ParseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if n == name {
			return Key(i), true
		}
	}
	return 0, false
}

// Keys reports held-key state for the current frame.
type Keys interface {
	Held(k Key) bool
}

// Sound is a playable audio handle.
type Sound interface {
	Play()
	Stop()
	SetVolume(v float64)
	Volume() float64
	Playing() bool
}

// SoundBank looks sounds up by asset name ("fox1", "forest", "step3").
// It returns nil for unknown names.
type SoundBank interface {
	Sound(name string) Sound
}

// EventKind identifies a gameplay event.
type EventKind uint8

const (
	EventGuestInvited EventKind = iota // an actor consumed its last dialogue line
	EventZoneEntered                   // a trigger zone fired
	EventPickup                        // a tulip was collected
)

// String returns a short event name for logs.
func (k EventKind) String() string {
	switch k {
	case EventGuestInvited:
		return "guest_invited"
	case EventZoneEntered:
		return "zone_entered"
	case EventPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Event is published to the World's EventSink.
type Event struct {
	Kind  EventKind
	Actor string
	Zone  string
	Count int
	Max   int
}

// EventSink receives gameplay events. The ecs package bridges them into a
// donburi world.
type EventSink interface {
	Emit(event Event)
}

// discardSink drops every event.
type discardSink struct{}

func (discardSink) Emit(Event) {}
