package porkbelly

import "time"

// Player animation keys.
const (
	AnimIdle = "idle"
	AnimWalk = "walk"
	AnimJump = "jump"
)

// footstepSounds are the clips picked from while walking.
var footstepSounds = []string{"step1", "step2", "step3", "step4"}

// PlayerController turns held keys into body velocity and a display
// animation. Its timestamps only drive presentation; they never gate physics.
type PlayerController struct {
	walkSpeed     float64
	jumpImpulse   float64
	jumpThreshold time.Duration
	stepThreshold time.Duration
	fallLimit     float64
	spawnY        float64

	lastGrounded time.Duration
	lastFootstep time.Duration
	started      bool
	anim         string
}

// PlayerFrame is the controller output for one frame.
type PlayerFrame struct {
	Anim     string
	Footstep bool
	// Recovered is set when the body fell out of the world and was snapped
	// back to spawn height.
	Recovered bool
}

// NewPlayerController builds a controller from cfg. spawnY is the height the
// player is returned to after falling out of the world.
func NewPlayerController(cfg *Config, spawnY float64) *PlayerController {
	return &PlayerController{
		walkSpeed:     cfg.WalkSpeed,
		jumpImpulse:   cfg.JumpImpulse,
		jumpThreshold: cfg.JumpAnimThreshold,
		stepThreshold: cfg.FootstepThreshold,
		fallLimit:     cfg.FallLimit,
		spawnY:        spawnY,
		anim:          AnimIdle,
	}
}

// Anim returns the animation chosen on the last update.
func (c *PlayerController) Anim() string {
	return c.anim
}

// Update reads keys at time now and drives the player's body.
func (c *PlayerController) Update(now time.Duration, keys Keys, player *Actor) PlayerFrame {
	body := player.Body
	anim := AnimIdle
	switch {
	case keys.Held(KeyLeft):
		body.SetVelocityX(-c.walkSpeed)
		player.FacingLeft = true
		anim = AnimWalk
	case keys.Held(KeyRight):
		body.SetVelocityX(c.walkSpeed)
		player.FacingLeft = false
		anim = AnimWalk
	default:
		body.SetVelocityX(0)
	}

	grounded := body.OnFloor()
	if keys.Held(KeyJump) && grounded {
		body.SetVelocityY(-c.jumpImpulse)
	}
	if grounded {
		c.lastGrounded = now
	}
	if now-c.lastGrounded >= c.jumpThreshold {
		anim = AnimJump
	}
	c.anim = anim

	var out PlayerFrame
	out.Anim = anim
	if !c.started {
		c.started = true
		c.lastFootstep = now
	}
	if anim == AnimWalk && now-c.lastFootstep >= c.stepThreshold {
		c.lastFootstep = now
		out.Footstep = true
	}

	if pos := body.Position(); pos.Y > c.fallLimit {
		body.SetPosition(Vec2{pos.X, c.spawnY})
		out.Recovered = true
	}
	return out
}
