package porkbelly

import (
	"testing"
	"time"
)

func newPlayerRig() (*PlayerController, *Actor, *fakeBody) {
	cfg := DefaultConfig()
	body := &fakeBody{pos: Vec2{100, 500}, size: Vec2{14, 16}, gravity: true, floor: true}
	player := &Actor{Name: "Porkbelly", Body: body, kind: kindPlayer}
	return NewPlayerController(cfg, 940), player, body
}

func TestPlayerWalk(t *testing.T) {
	tests := []struct {
		name       string
		keys       fakeKeys
		wantVX     float64
		wantLeft   bool
		wantAnim   string
		startsLeft bool
	}{
		{"idle", fakeKeys{}, 0, false, AnimIdle, false},
		{"idle keeps facing", fakeKeys{}, 0, true, AnimIdle, true},
		{"left", fakeKeys{KeyLeft: true}, -150, true, AnimWalk, false},
		{"right", fakeKeys{KeyRight: true}, 150, false, AnimWalk, true},
		{"left wins over right", fakeKeys{KeyLeft: true, KeyRight: true}, -150, true, AnimWalk, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, player, body := newPlayerRig()
			body.vel.X = 42
			player.FacingLeft = tt.startsLeft
			out := c.Update(0, tt.keys, player)
			if body.vel.X != tt.wantVX {
				t.Errorf("vx = %v, want %v", body.vel.X, tt.wantVX)
			}
			if player.FacingLeft != tt.wantLeft {
				t.Errorf("FacingLeft = %v, want %v", player.FacingLeft, tt.wantLeft)
			}
			if out.Anim != tt.wantAnim || c.Anim() != tt.wantAnim {
				t.Errorf("anim = %q, want %q", out.Anim, tt.wantAnim)
			}
		})
	}
}

func TestPlayerJumpOnlyFromFloor(t *testing.T) {
	c, player, body := newPlayerRig()
	jump := fakeKeys{KeyJump: true}

	c.Update(0, jump, player)
	if body.vel.Y != -280 {
		t.Errorf("vy = %v, want -280", body.vel.Y)
	}

	body.floor = false
	body.vel.Y = -100
	c.Update(testFrame, jump, player)
	if body.vel.Y != -100 {
		t.Errorf("airborne jump changed vy to %v", body.vel.Y)
	}
}

func TestPlayerJumpAnimation(t *testing.T) {
	c, player, body := newPlayerRig()
	c.Update(0, fakeKeys{}, player)

	body.floor = false
	if out := c.Update(100*time.Millisecond, fakeKeys{KeyRight: true}, player); out.Anim != AnimWalk {
		t.Errorf("short hop anim = %q, want walk", out.Anim)
	}
	if out := c.Update(250*time.Millisecond, fakeKeys{KeyRight: true}, player); out.Anim != AnimJump {
		t.Errorf("airborne anim = %q, want jump", out.Anim)
	}

	body.floor = true
	if out := c.Update(300*time.Millisecond, fakeKeys{}, player); out.Anim != AnimIdle {
		t.Errorf("landed anim = %q, want idle", out.Anim)
	}
}

func TestPlayerFootsteps(t *testing.T) {
	c, player, _ := newPlayerRig()
	right := fakeKeys{KeyRight: true}

	steps := []struct {
		at   time.Duration
		keys fakeKeys
		want bool
	}{
		{0, right, false},
		{100 * time.Millisecond, right, false},
		{250 * time.Millisecond, right, true},
		{300 * time.Millisecond, right, false},
		{500 * time.Millisecond, right, true},
		{900 * time.Millisecond, fakeKeys{}, false},
		{950 * time.Millisecond, right, true},
	}
	for _, s := range steps {
		if got := c.Update(s.at, s.keys, player).Footstep; got != s.want {
			t.Errorf("at %v footstep = %v, want %v", s.at, got, s.want)
		}
	}
}

func TestPlayerFallRecovery(t *testing.T) {
	c, player, body := newPlayerRig()
	body.pos = Vec2{3000, 1200}
	if out := c.Update(0, fakeKeys{}, player); out.Recovered {
		t.Error("recovered at the limit")
	}

	body.pos = Vec2{3000, 1300}
	out := c.Update(testFrame, fakeKeys{}, player)
	if !out.Recovered {
		t.Fatal("not recovered below the limit")
	}
	if body.pos != (Vec2{3000, 940}) {
		t.Errorf("pos = %v, want (3000, 940)", body.pos)
	}
}

func TestWorldPlaysFootsteps(t *testing.T) {
	tw := newTestWorld(t, smallContent())
	tw.step(61, fakeKeys{KeyRight: true})
	// One second of walking yields a step every 250ms.
	n := tw.bank.playsOf(footstepSounds)
	if n < 3 || n > 4 {
		t.Errorf("footsteps = %d, want 3 or 4", n)
	}
	if tw.PlayerAnim() != AnimWalk || tw.Player().Anim != AnimWalk {
		t.Errorf("anim = %q, want walk", tw.PlayerAnim())
	}
}
