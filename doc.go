// Package porkbelly is the gameplay core of a side-scrolling birthday
// platformer: a pig walks from the forest to a hilltop party, invites the
// animals it meets along the way and collects tulips.
//
// The core has no rendering, audio or physics code of its own. A host drives
// a [World] once per frame and supplies three collaborators:
//
//   - a [Physics] that creates [Body] values (see the arcade package)
//   - a [SoundBank] of named sounds (see the audio package)
//   - an optional [EventSink] for gameplay events (see the ecs package)
//
// # Frame loop
//
//	w := porkbelly.NewWorld(porkbelly.Options{
//		Config:  cfg,
//		Physics: space,
//		Sounds:  bank,
//		Coins:   coins,
//	})
//	for {
//		w.Update(dt, keys)
//		space.Step(dt)
//	}
//
// [World.Update] runs timers and tweens, the player controller, tulip
// pickups, trigger zones and actor visuals, in that order. The physics step
// runs afterwards in the host, so velocities set by the controller move the
// body on the same frame.
//
// # Dialogue and guests
//
// [World.Interact] advances an actor's dialogue one line at a time while the
// player is within [Config.InteractDistance]. The line that exhausts the
// dialogue invites the actor: it joins the guest list, the status banner
// shows the guest count and an [EventGuestInvited] is emitted. An actor is
// invited at most once.
//
// # Zones
//
// Zones are circles that fire their callback exactly once, the first frame
// the player's center is inside. Stage zones swap the soundtrack, clear zones
// launch fireworks, the party gate gathers the invited guests and the party
// zone runs the finale.
//
// # Scripts
//
// [LoadScript] reads a JSON list of steps (hold, release, interact, wait,
// teleport, log) that replace keyboard input, for demos and automated runs:
//
//	{"steps": [
//		{"action": "hold", "keys": ["right"], "frames": 120},
//		{"action": "wait", "frames": 120},
//		{"action": "log", "label": "after-walk"}
//	]}
//
// # Concurrency
//
// A World is single-threaded. Call every method from the game loop
// goroutine.
package porkbelly
