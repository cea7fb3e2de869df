package porkbelly

import "fmt"

// Label offsets above an actor's position.
const (
	nameTagOffset = 30
	bubbleOffset  = 50
)

// ActorSpec is a content-table entry describing one actor.
type ActorSpec struct {
	Name string
	// Sheet and Anim name the atlas and animation key used by the host.
	Sheet string
	Anim  string
	Pos   Vec2
	// Size is the physics body size in world pixels.
	Size    Vec2
	Scale   float64
	Gravity bool
	Player  bool
	// Dialogue lines, earliest first. Empty means the actor cannot be talked to.
	Dialogue []string
	// Voices are sound names; one is picked per dialogue line.
	Voices   []string
	PartyPos Vec2
}

type actorKind uint8

const (
	kindPlayer  actorKind = iota // faces by input, name tag only
	kindLabeled                  // NPC with a name tag
	kindTalker                   // NPC with a name tag and dialogue bubble
)

// Actor is a positioned, labeled entity: the player or an NPC.
type Actor struct {
	Name  string
	Sheet string
	Anim  string
	Scale float64
	Body  Body
	// FacingLeft is recomputed every frame: NPCs face the player, the player
	// faces its last horizontal input.
	FacingLeft bool
	NameTag    *Label
	// Bubble and Dialogue are nil for actors without dialogue.
	Bubble   *Label
	Dialogue *Dialogue
	Voices   []string
	PartyPos Vec2

	kind actorKind
}

// Interactable reports whether the actor has dialogue to advance.
func (a *Actor) Interactable() bool {
	return a.kind == kindTalker
}

// IsPlayer reports whether the actor is the player.
func (a *Actor) IsPlayer() bool {
	return a.kind == kindPlayer
}

// Position is shorthand for a.Body.Position().
func (a *Actor) Position() Vec2 {
	return a.Body.Position()
}

// Registry creates and tracks every actor and the guest list.
type Registry struct {
	actors    []*Actor
	byName    map[string]*Actor
	player    *Actor
	guests    []*Actor
	maxGuests int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Actor)}
}

// Register adds an actor backed by body and positions it at spec.Pos.
// Every non-player actor raises MaxGuests by one, with or without dialogue.
// Panics on a duplicate name, a second player, or dialogue with no voices.
func (r *Registry) Register(spec ActorSpec, body Body) *Actor {
	if body == nil {
		panic(fmt.Sprintf("porkbelly: actor %q has no body", spec.Name))
	}
	if _, dup := r.byName[spec.Name]; dup {
		panic(fmt.Sprintf("porkbelly: duplicate actor %q", spec.Name))
	}
	if spec.Player && r.player != nil {
		panic(fmt.Sprintf("porkbelly: second player %q", spec.Name))
	}
	if len(spec.Dialogue) > 0 && len(spec.Voices) == 0 {
		panic(fmt.Sprintf("porkbelly: actor %q has dialogue but no voice clips", spec.Name))
	}

	body.SetPosition(spec.Pos)
	scale := spec.Scale
	if scale == 0 {
		scale = 1
	}
	a := &Actor{
		Name:     spec.Name,
		Sheet:    spec.Sheet,
		Anim:     spec.Anim,
		Scale:    scale,
		Body:     body,
		NameTag:  NewLabel(spec.Name, Vec2{spec.Pos.X, spec.Pos.Y - nameTagOffset}),
		Voices:   append([]string(nil), spec.Voices...),
		PartyPos: spec.PartyPos,
		kind:     kindLabeled,
	}
	switch {
	case spec.Player:
		a.kind = kindPlayer
		r.player = a
	case len(spec.Dialogue) > 0:
		a.kind = kindTalker
		a.Dialogue = NewDialogue(spec.Dialogue)
		a.Bubble = NewLabel("", Vec2{spec.Pos.X, spec.Pos.Y - bubbleOffset})
		a.Bubble.Visible = false
	}
	if !spec.Player {
		r.maxGuests++
	}
	r.actors = append(r.actors, a)
	r.byName[a.Name] = a
	return a
}

// Actor returns the actor with the given name, or nil.
func (r *Registry) Actor(name string) *Actor {
	return r.byName[name]
}

// Player returns the player actor, or nil before it is registered.
func (r *Registry) Player() *Actor {
	return r.player
}

// Actors returns actors in registration order. The slice MUST NOT be mutated.
func (r *Registry) Actors() []*Actor {
	return r.actors
}

// Guests returns invited actors in invitation order. The slice MUST NOT be mutated.
func (r *Registry) Guests() []*Actor {
	return r.guests
}

// GuestCount returns the number of invited actors.
func (r *Registry) GuestCount() int {
	return len(r.guests)
}

// MaxGuests returns the number of non-player actors registered.
func (r *Registry) MaxGuests() int {
	return r.maxGuests
}

// invite appends a to the guest list. The dialogue state machine calls it
// exactly once per actor, on the transition to Invited.
func (r *Registry) invite(a *Actor) {
	r.guests = append(r.guests, a)
}

// updateVisuals flips NPCs to face the player and moves labels to track
// their actors.
func (r *Registry) updateVisuals() {
	if r.player == nil {
		return
	}
	px := r.player.Position().X
	for _, a := range r.actors {
		pos := a.Position()
		switch a.kind {
		case kindPlayer:
		case kindLabeled:
			a.FacingLeft = pos.X > px
		case kindTalker:
			a.FacingLeft = pos.X > px
			a.Bubble.Pos = Vec2{pos.X, pos.Y - bubbleOffset}
		}
		a.NameTag.Pos = Vec2{pos.X, pos.Y - nameTagOffset}
	}
}
