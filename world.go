package porkbelly

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"
)

// Options configures NewWorld. Physics is required; every other field has a
// usable zero value.
type Options struct {
	Config  *Config
	Content *Content
	Physics Physics
	Sounds  SoundBank
	Sink    EventSink
	Logger  *slog.Logger
	Rand    *rand.Rand
	// Coins is the pickup tile layer; nil disables pickups.
	Coins *TileGrid
}

// World is the simulation state of one session. It owns every registry and
// queue and is advanced by Update once per frame. World is not safe for
// concurrent use.
type World struct {
	cfg     *Config
	content *Content
	log     *slog.Logger
	rng     *rand.Rand
	sink    EventSink

	actors  *Registry
	zones   Zones
	timers  Timers
	tweens  Tweens
	hud     *HUD
	music   *Music
	sounds  *soundTable
	pickups *Pickups
	effects Effects
	signs   []*Label

	player  *PlayerController
	jumpers []*Actor

	now   time.Duration
	frame uint64
	stats frameStats
}

// NewWorld builds a world from opts, registering every content actor and zone.
// Panics if opts.Physics is nil or the content tables are malformed.
func NewWorld(opts Options) *World {
	if opts.Physics == nil {
		panic("porkbelly: NewWorld requires a Physics")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	content := opts.Content
	if content == nil {
		content = DefaultContent()
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	sink := opts.Sink
	if sink == nil {
		sink = discardSink{}
	}

	w := &World{
		cfg:     cfg,
		content: content,
		log:     log,
		rng:     rng,
		sink:    sink,
		actors:  NewRegistry(),
		pickups: NewPickups(opts.Coins, PickupTile),
	}
	w.sounds = newSoundTable(opts.Sounds, log)
	w.hud = newHUD(&w.timers, &w.tweens, content.Credits)
	w.music = &Music{sounds: w.sounds, tweens: &w.tweens, volume: cfg.MusicVolume, log: log}

	for _, spec := range content.Actors {
		body := opts.Physics.NewBody(spec.Pos, spec.Size.X, spec.Size.Y, spec.Gravity)
		w.actors.Register(spec, body)
	}
	if w.actors.Player() == nil {
		panic("porkbelly: content has no player actor")
	}
	w.player = NewPlayerController(cfg, content.Spawn().Y)

	for _, spec := range content.Zones {
		w.zones.Add(spec.Name, spec.Center, spec.Radius, w.zoneAction(spec))
	}
	for _, s := range content.Signs {
		w.signs = append(w.signs, NewLabel(s.Text, s.Pos))
	}
	w.log.Info("world ready",
		"actors", len(w.actors.Actors()),
		"zones", len(w.zones.All()),
		"max_guests", w.actors.MaxGuests())
	return w
}

// Update advances the world by one frame of length dt. Order: clock, timers
// and tweens; player controller; pickups; zone triggers; actor visuals and
// party jumpers; effect expiry. Physics integration happens afterwards, in
// the host.
func (w *World) Update(dt time.Duration, keys Keys) {
	w.frame++
	w.now += dt
	w.stats = frameStats{frame: w.frame}

	w.stats.timersFired = w.timers.Advance(w.now)
	w.tweens.Update(dt)

	player := w.actors.Player()
	out := w.player.Update(w.now, keys, player)
	player.Anim = out.Anim
	if out.Footstep {
		w.sounds.pick(w.rng, footstepSounds).Play()
	}
	if out.Recovered {
		w.log.Debug("player fell out of the world", "x", player.Position().X)
	}
	if keys.Held(KeyDebug) {
		p := player.Position()
		w.log.Debug("player position",
			"x", math.Round(p.X*10)/10,
			"y", math.Round(p.Y*10)/10)
	}

	w.collectPickups(player)
	w.stats.zonesTested, w.stats.zonesFired = w.zones.check(w, player)
	w.actors.updateVisuals()
	w.updateJumpers()
	w.effects.expire(w.now)

	w.stats.tweens = w.tweens.Len()
	w.stats.timersPending = w.timers.Pending()
	w.stats.effects = len(w.effects.live)
	if w.cfg.Debug {
		w.debugLog()
	}
}

// InteractResult reports what an interaction did.
type InteractResult uint8

const (
	InteractIgnored  InteractResult = iota // unknown actor, no dialogue, or already invited
	InteractTooFar                         // out of range; nothing changed
	InteractAdvanced                       // one line shown, more remain
	InteractInvited                        // last line shown; actor joined the guests
)

// String returns the result name.
func (r InteractResult) String() string {
	switch r {
	case InteractIgnored:
		return "ignored"
	case InteractTooFar:
		return "too far"
	case InteractAdvanced:
		return "advanced"
	case InteractInvited:
		return "invited"
	default:
		return "unknown"
	}
}

// Interact advances the named actor's dialogue by one line. The player must
// be within InteractDistance; otherwise a "move closer" status is shown and
// nothing changes.
func (w *World) Interact(name string) InteractResult {
	a := w.actors.Actor(name)
	if a == nil || !a.Interactable() {
		return InteractIgnored
	}
	if Distance(a.Position(), w.actors.Player().Position()) > w.cfg.InteractDistance {
		w.hud.SetStage(fmt.Sprintf("Move closer to talk to %s", a.Name))
		return InteractTooFar
	}
	line, ok := a.Dialogue.Advance()
	if !ok {
		return InteractIgnored
	}
	a.Bubble.Visible = true
	a.Bubble.Text = line
	w.sounds.pick(w.rng, a.Voices).Play()

	if !a.Dialogue.Invited() {
		return InteractAdvanced
	}
	w.actors.invite(a)
	count, maxGuests := w.actors.GuestCount(), w.actors.MaxGuests()
	w.hud.SetStage(fmt.Sprintf("%d/%d guests invited!", count, maxGuests))
	w.sink.Emit(Event{Kind: EventGuestInvited, Actor: a.Name, Count: count, Max: maxGuests})
	w.log.Info("guest invited", "actor", a.Name, "guests", count, "max_guests", maxGuests)
	return InteractInvited
}

// AddZone registers a trigger zone after the content zones. Panics if
// onEnter is nil.
func (w *World) AddZone(name string, center Vec2, radius float64, onEnter ZoneFunc) *Zone {
	return w.zones.Add(name, center, radius, onEnter)
}

// ActorAt returns the topmost interactable actor whose body contains the
// world point p, or nil. Hosts use it to route clicks to Interact.
func (w *World) ActorAt(p Vec2) *Actor {
	actors := w.actors.Actors()
	for i := len(actors) - 1; i >= 0; i-- {
		a := actors[i]
		if a.Interactable() && a.Body.Bounds().Contains(p.X, p.Y) {
			return a
		}
	}
	return nil
}

func (w *World) collectPickups(player *Actor) {
	n := w.pickups.Collect(player.Body.Bounds())
	if n == 0 {
		return
	}
	score := w.pickups.Score()
	w.hud.SetScore(score)
	tulip := w.sounds.get("tulip")
	tulip.SetVolume(w.cfg.TulipVolume)
	tulip.Play()
	w.sink.Emit(Event{Kind: EventPickup, Actor: player.Name, Count: score})
}

// spawnFirework starts a firework effect at pos. The shared firework sound
// gets a random volume on every spawn and plays only when withSound is set.
func (w *World) spawnFirework(pos Vec2, withSound bool) {
	w.effects.spawn(pos, w.now)
	s := w.sounds.get("firework")
	s.SetVolume(w.rng.Float64())
	if withSound {
		s.Play()
	}
}

// Accessors for hosts and tests.

func (w *World) Config() *Config { return w.cfg }
func (w *World) Actors() *Registry { return w.actors }
func (w *World) Zones() []*Zone { return w.zones.All() }
func (w *World) HUD() *HUD { return w.hud }
func (w *World) Music() *Music { return w.music }
func (w *World) Pickups() *Pickups { return w.pickups }
func (w *World) Effects() []Effect { return w.effects.Active() }
func (w *World) Signs() []*Label { return w.signs }
func (w *World) Timers() *Timers { return &w.timers }
func (w *World) Now() time.Duration { return w.now }
func (w *World) Frame() uint64 { return w.frame }
func (w *World) Logger() *slog.Logger { return w.log }
func (w *World) Player() *Actor { return w.actors.Player() }
func (w *World) PlayerAnim() string { return w.player.Anim() }
func (w *World) Jumpers() []*Actor { return w.jumpers }
