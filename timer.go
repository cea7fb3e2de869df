package porkbelly

import (
	"container/heap"
	"time"
)

// Timers is a frame-clock driven queue of one-shot delayed callbacks.
// Entries fire in time order; entries due at the same instant fire in the
// order they were scheduled. Callbacks run inside Advance, on the update pass.
type Timers struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

type timerEntry struct {
	at        time.Duration
	seq       uint64
	fn        func()
	cancelled bool
}

// TimerHandle refers to a scheduled callback.
type TimerHandle struct {
	e *timerEntry
}

// Cancel prevents the callback from running. No-op once it has fired.
func (h TimerHandle) Cancel() {
	if h.e != nil {
		h.e.cancelled = true
	}
}

// Now returns the time of the last Advance.
func (t *Timers) Now() time.Duration {
	return t.now
}

// After schedules fn to run once, d after the current clock time.
// Panics if fn is nil.
func (t *Timers) After(d time.Duration, fn func()) TimerHandle {
	if fn == nil {
		panic("porkbelly: nil timer callback")
	}
	if d < 0 {
		d = 0
	}
	t.seq++
	e := &timerEntry{at: t.now + d, seq: t.seq, fn: fn}
	heap.Push(&t.queue, e)
	return TimerHandle{e: e}
}

// Advance moves the clock to now and runs every due callback. Callbacks that
// schedule further entries already due at now run in the same pass. Returns
// the number of callbacks run.
func (t *Timers) Advance(now time.Duration) int {
	if now > t.now {
		t.now = now
	}
	fired := 0
	for len(t.queue) > 0 && t.queue[0].at <= t.now {
		e := heap.Pop(&t.queue).(*timerEntry)
		if e.cancelled {
			continue
		}
		e.fn()
		fired++
	}
	return fired
}

// Pending returns the number of queued entries, including cancelled ones not
// yet reached.
func (t *Timers) Pending() int {
	return len(t.queue)
}

// timerQueue implements heap.Interface ordered by (at, seq).
type timerQueue []*timerEntry

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x any) { *q = append(*q, x.(*timerEntry)) }

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}
