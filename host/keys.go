package host

import (
	"github.com/Raymond-exe/porkbelly"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyBindings maps each logical key to the physical keys that press it.
var KeyBindings = map[porkbelly.Key][]ebiten.Key{
	porkbelly.KeyLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	porkbelly.KeyRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	porkbelly.KeyJump:  {ebiten.KeyW, ebiten.KeySpace, ebiten.KeyArrowUp},
	porkbelly.KeyDebug: {ebiten.KeyArrowDown},
}

// Keyboard reads porkbelly keys from the ebiten keyboard state.
type Keyboard struct{}

// Held reports whether any physical key bound to k is pressed.
func (Keyboard) Held(k porkbelly.Key) bool {
	for _, key := range KeyBindings[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
