package host

import (
	"fmt"
	"time"

	"github.com/Raymond-exe/porkbelly"
)

// Animation is a named sequence of atlas frames.
type Animation struct {
	Sheet  string
	Frames []string
	FPS    float64
}

// Frame returns the frame name to show elapsed time after the animation
// started. Animations loop.
func (a Animation) Frame(elapsed time.Duration) string {
	if len(a.Frames) == 1 || a.FPS <= 0 {
		return a.Frames[0]
	}
	i := int(elapsed.Seconds()*a.FPS) % len(a.Frames)
	if i < 0 {
		i = 0
	}
	return a.Frames[i]
}

// frameNames builds prefix+NN frame names for start..end inclusive.
func frameNames(prefix string, start, end, pad int) []string {
	names := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		names = append(names, fmt.Sprintf("%s%0*d", prefix, pad, i))
	}
	return names
}

// Animations maps the animation keys used by actors to atlas frames. An
// actor whose key is missing here draws the atlas frame of the same name.
var Animations = map[string]Animation{
	porkbelly.AnimWalk: {Sheet: "player", Frames: frameNames("frame_", 1, 9, 2), FPS: 20},
	porkbelly.AnimIdle: {Sheet: "player", Frames: []string{"p1_stand"}},
	porkbelly.AnimJump: {Sheet: "player", Frames: []string{"frame_04"}},
	"panda_idle":       {Sheet: "animals", Frames: frameNames("panda_", 0, 15, 2), FPS: 5},
	"ghast_idle":       {Sheet: "animals", Frames: frameNames("ghast_", 0, 9, 2), FPS: 10},
	"pika":             {Sheet: "animals_2", Frames: []string{"pika"}},
	"hammy":            {Sheet: "animals_2", Frames: []string{"hammy"}},
	"porkchop":         {Sheet: "animals_2", Frames: []string{"porkchop"}},
	"bacon":            {Sheet: "animals_2", Frames: []string{"bacon"}},
}

// FireworkSheet is the atlas holding firework_0 .. firework_5.
const FireworkSheet = "firework"

// fireworkFrames lists the firework animation frames; Effect.Frame indexes it.
var fireworkFrames = frameNames("firework_", 0, porkbelly.FireworkFrames-1, 1)

// actorFrame returns the sheet and frame an actor shows at now.
func actorFrame(a *porkbelly.Actor, now time.Duration) (sheet, frame string) {
	if anim, ok := Animations[a.Anim]; ok {
		return anim.Sheet, anim.Frame(now)
	}
	return a.Sheet, a.Anim
}
