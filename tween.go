package porkbelly

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates one float64 value toward a target over a duration. The value
// is written through a setter every Update, so it can drive a struct field or
// a method such as Sound.SetVolume.
type Tween struct {
	tween      *gween.Tween
	set        func(float64)
	onComplete func()
	Done       bool
}

// Update advances the tween by dt seconds and writes the current value.
// OnComplete runs once, on the update that finishes the tween.
func (tw *Tween) Update(dt float32) {
	if tw.Done {
		return
	}
	val, finished := tw.tween.Update(dt)
	tw.set(float64(val))
	if finished {
		tw.Done = true
		if tw.onComplete != nil {
			tw.onComplete()
		}
	}
}

// Stop marks the tween finished without running its completion callback.
func (tw *Tween) Stop() {
	tw.Done = true
}

// Tweens owns the running tweens of a World and advances them once per frame.
type Tweens struct {
	active []*Tween
}

// Fade animates *field from its current value to `to`.
func (t *Tweens) Fade(field *float64, to float64, d time.Duration, fn ease.TweenFunc, onComplete func()) *Tween {
	return t.FadeFunc(*field, to, d, fn, func(v float64) { *field = v }, onComplete)
}

// FadeFunc animates from `from` to `to`, passing each value to set.
func (t *Tweens) FadeFunc(from, to float64, d time.Duration, fn ease.TweenFunc, set func(float64), onComplete func()) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	tw := &Tween{
		tween:      gween.New(float32(from), float32(to), float32(d.Seconds()), fn),
		set:        set,
		onComplete: onComplete,
	}
	t.active = append(t.active, tw)
	return tw
}

// Update advances every tween by dt. Tweens added by completion callbacks
// start advancing on the next Update.
func (t *Tweens) Update(dt time.Duration) {
	step := float32(dt.Seconds())
	n := len(t.active)
	for i := 0; i < n; i++ {
		t.active[i].Update(step)
	}
	kept := t.active[:0]
	for _, tw := range t.active {
		if !tw.Done {
			kept = append(kept, tw)
		}
	}
	for i := len(kept); i < len(t.active); i++ {
		t.active[i] = nil
	}
	t.active = kept
}

// Len returns the number of running tweens.
func (t *Tweens) Len() int {
	return len(t.active)
}
