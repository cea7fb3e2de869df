package porkbelly

import (
	"fmt"
	"time"
)

// Firework bursts.
const (
	clearBurstCount    = 20
	clearBurstInterval = 250 * time.Millisecond
	partyBurstCount    = 4000
	partyBurstInterval = 100 * time.Millisecond
	// partyGreetingMax is the upper bound of each guest's random greeting delay.
	partyGreetingMax = time.Second
)

// zoneAction returns the callback for a content zone.
func (w *World) zoneAction(spec ZoneSpec) ZoneFunc {
	switch spec.Kind {
	case ZoneStage:
		return func(w *World, _ *Actor) {
			w.hud.SetStage(spec.Text)
			w.music.Crossfade(spec.Track)
		}
	case ZoneStageClear:
		return func(w *World, player *Actor) {
			w.hud.SetMain(spec.Text)
			w.scheduleBurst(player, clearBurstCount, clearBurstInterval, Vec2{150, 100}, true)
			w.sounds.get("stage_complete").Play()
		}
	case ZonePartyGate:
		return func(w *World, _ *Actor) {
			w.gatherGuests()
		}
	case ZoneParty:
		return func(w *World, player *Actor) {
			w.startParty(player, spec)
		}
	default:
		panic(fmt.Sprintf("porkbelly: zone %q has unknown kind %d", spec.Name, spec.Kind))
	}
}

// scheduleBurst queues count firework spawns, interval apart. Each spawn is
// placed around the player's position at the moment it fires: spread.X wide
// centered on the player, up to spread.Y above.
func (w *World) scheduleBurst(player *Actor, count int, interval time.Duration, spread Vec2, withSound bool) {
	for i := 0; i < count; i++ {
		w.timers.After(time.Duration(i)*interval, func() {
			p := player.Position()
			pos := Vec2{
				X: p.X + w.rng.Float64()*spread.X - spread.X/2,
				Y: p.Y - w.rng.Float64()*spread.Y,
			}
			w.spawnFirework(pos, withSound)
		})
	}
}

// gatherGuests moves every invited actor to its party position and clears
// its bubble. Actors that were not invited stay where they are.
func (w *World) gatherGuests() {
	for _, a := range w.actors.Guests() {
		a.Body.SetPosition(a.PartyPos)
		a.Bubble.Text = ""
	}
	w.log.Info("guests gathered", "guests", w.actors.GuestCount())
}

// startParty runs the finale: music swap, greetings, jumping guests,
// fireworks and credits.
func (w *World) startParty(player *Actor, spec ZoneSpec) {
	w.music.Stop()
	w.sounds.get(spec.Track).Play()
	w.hud.SetMain(spec.Text)

	for _, a := range w.actors.Guests() {
		delay := time.Duration(w.rng.Float64() * float64(partyGreetingMax))
		w.timers.After(delay, func() {
			a.Bubble.Text = w.content.PartyGreeting
			if a.Body.AllowGravity() {
				w.jumpers = append(w.jumpers, a)
			}
		})
	}
	w.scheduleBurst(player, partyBurstCount, partyBurstInterval, Vec2{500, 300}, false)
	w.hud.ShowCredits()
}

// updateJumpers hops every grounded party guest with a slightly random impulse.
func (w *World) updateJumpers() {
	for _, a := range w.jumpers {
		if a.Body.OnFloor() {
			a.Body.SetVelocityY(-w.cfg.JumpImpulse / (1.25 + w.rng.Float64()/2))
		}
	}
}
