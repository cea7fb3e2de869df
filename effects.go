package porkbelly

import "time"

// Firework animation: six frames at ten frames per second.
const (
	FireworkFrames   = 6
	fireworkFrameDur = 100 * time.Millisecond
	fireworkLifetime = FireworkFrames * fireworkFrameDur
)

// Effect is a short-lived visual spawned into the world.
type Effect struct {
	Pos  Vec2
	Born time.Duration
}

// Frame returns the animation frame to show at now.
func (e Effect) Frame(now time.Duration) int {
	f := int((now - e.Born) / fireworkFrameDur)
	if f >= FireworkFrames {
		f = FireworkFrames - 1
	}
	if f < 0 {
		f = 0
	}
	return f
}

// Effects owns the live fireworks and drops them once their animation ends.
type Effects struct {
	live []Effect
}

// Active returns the live effects. The slice MUST NOT be mutated.
func (e *Effects) Active() []Effect {
	return e.live
}

func (e *Effects) spawn(pos Vec2, now time.Duration) {
	e.live = append(e.live, Effect{Pos: pos, Born: now})
}

// expire removes effects whose animation completed by now.
func (e *Effects) expire(now time.Duration) {
	kept := e.live[:0]
	for _, fx := range e.live {
		if now-fx.Born < fireworkLifetime {
			kept = append(kept, fx)
		}
	}
	e.live = kept
}
