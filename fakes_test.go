package porkbelly

import (
	"io"
	"math/rand/v2"
	"testing"
	"time"
)

// fakeBody is a Body whose floor contact is set by the test.
type fakeBody struct {
	pos     Vec2
	vel     Vec2
	size    Vec2
	gravity bool
	floor   bool
}

func (b *fakeBody) Position() Vec2          { return b.pos }
func (b *fakeBody) SetPosition(p Vec2)      { b.pos = p }
func (b *fakeBody) Velocity() Vec2          { return b.vel }
func (b *fakeBody) SetVelocityX(vx float64) { b.vel.X = vx }
func (b *fakeBody) SetVelocityY(vy float64) { b.vel.Y = vy }
func (b *fakeBody) OnFloor() bool           { return b.floor }
func (b *fakeBody) AllowGravity() bool      { return b.gravity }
func (b *fakeBody) Bounds() Rect            { return RectAround(b.pos, b.size.X, b.size.Y) }

// fakePhysics records every body it creates. Gravity bodies start on the floor.
type fakePhysics struct {
	bodies []*fakeBody
}

func (p *fakePhysics) NewBody(pos Vec2, w, h float64, gravity bool) Body {
	b := &fakeBody{pos: pos, size: Vec2{w, h}, gravity: gravity, floor: gravity}
	p.bodies = append(p.bodies, b)
	return b
}

// fakeKeys holds a fixed key set.
type fakeKeys map[Key]bool

func (k fakeKeys) Held(key Key) bool { return k[key] }

// fakeSound counts plays and stops.
type fakeSound struct {
	name    string
	volume  float64
	playing bool
	plays   int
	stops   int
}

func (s *fakeSound) Play()               { s.playing = true; s.plays++ }
func (s *fakeSound) Stop()               { s.playing = false; s.stops++ }
func (s *fakeSound) SetVolume(v float64) { s.volume = v }
func (s *fakeSound) Volume() float64     { return s.volume }
func (s *fakeSound) Playing() bool       { return s.playing }

// fakeBank creates fake sounds on first lookup, except for names in missing.
type fakeBank struct {
	sounds  map[string]*fakeSound
	missing map[string]bool
}

func newFakeBank() *fakeBank {
	return &fakeBank{sounds: make(map[string]*fakeSound), missing: make(map[string]bool)}
}

func (b *fakeBank) Sound(name string) Sound {
	if b.missing[name] {
		return nil
	}
	s, ok := b.sounds[name]
	if !ok {
		s = &fakeSound{name: name, volume: 1}
		b.sounds[name] = s
	}
	return s
}

// plays returns how many times the named sound played.
func (b *fakeBank) plays(name string) int {
	if s, ok := b.sounds[name]; ok {
		return s.plays
	}
	return 0
}

// playsOf sums plays over every sound in names.
func (b *fakeBank) playsOf(names []string) int {
	n := 0
	for _, name := range names {
		n += b.plays(name)
	}
	return n
}

// recordingSink keeps every emitted event.
type recordingSink struct {
	events []Event
}

func (s *recordingSink) Emit(e Event) { s.events = append(s.events, e) }

func (s *recordingSink) count(k EventKind) int {
	n := 0
	for _, e := range s.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

const testFrame = time.Second / 60

// testWorld bundles a World with its fakes.
type testWorld struct {
	*World
	physics *fakePhysics
	bank    *fakeBank
	sink    *recordingSink
}

func newTestWorld(t *testing.T, content *Content) *testWorld {
	t.Helper()
	return newTestWorldOpts(t, Options{Content: content})
}

// newTestWorldOpts installs the fake physics, sounds and sink. Logger and
// Rand default to a discard logger and a fixed seed.
func newTestWorldOpts(t *testing.T, opts Options) *testWorld {
	t.Helper()
	tw := &testWorld{physics: &fakePhysics{}, bank: newFakeBank(), sink: &recordingSink{}}
	opts.Physics = tw.physics
	opts.Sounds = tw.bank
	opts.Sink = tw.sink
	if opts.Logger == nil {
		opts.Logger = NewLogger(io.Discard, "debug", "text")
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(1, 2))
	}
	tw.World = NewWorld(opts)
	return tw
}

// teleport moves the player and runs one frame.
func (tw *testWorld) teleport(p Vec2) {
	tw.Player().Body.SetPosition(p)
	tw.step(1, nil)
}

// step runs n frames with keys held.
func (tw *testWorld) step(n int, keys Keys) {
	if keys == nil {
		keys = fakeKeys{}
	}
	for i := 0; i < n; i++ {
		tw.Update(testFrame, keys)
	}
}

// runFor advances the world by d in frame steps.
func (tw *testWorld) runFor(d time.Duration) {
	tw.step(int(d/testFrame)+1, nil)
}

// moveNear puts the player next to the named actor.
func (tw *testWorld) moveNear(name string, dx float64) {
	a := tw.Actors().Actor(name)
	tw.Player().Body.SetPosition(a.Position().Add(Vec2{X: dx}))
}

// smallContent has three NPCs and no zones, for focused tests.
func smallContent() *Content {
	return &Content{
		Actors: []ActorSpec{
			{Name: "Foxy", Pos: Vec2{1000, 500}, Size: Vec2{28, 28}, Voices: []string{"fox1", "fox2"},
				Dialogue: []string{"one", "two", "three"}, PartyPos: Vec2{5000, 250}},
			{Name: "Hammy", Pos: Vec2{2000, 500}, Size: Vec2{16, 16}, Gravity: true, Voices: []string{"pig1"},
				Dialogue: []string{"oink"}, PartyPos: Vec2{5040, 290}},
			{Name: "Rock", Pos: Vec2{3000, 500}, Size: Vec2{16, 16}},
			{Name: "Porkbelly", Pos: Vec2{100, 500}, Size: Vec2{14, 16}, Gravity: true, Player: true, Anim: AnimIdle},
		},
		Credits:       "credits",
		PartyGreeting: "Happy Birthday!",
	}
}
