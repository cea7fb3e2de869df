package host

import (
	"testing"

	"github.com/Raymond-exe/porkbelly"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyBindings(t *testing.T) {
	tests := []struct {
		key  porkbelly.Key
		want []ebiten.Key
	}{
		{porkbelly.KeyLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
		{porkbelly.KeyRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
		{porkbelly.KeyJump, []ebiten.Key{ebiten.KeyW, ebiten.KeySpace, ebiten.KeyArrowUp}},
		{porkbelly.KeyDebug, []ebiten.Key{ebiten.KeyArrowDown}},
	}
	for _, tt := range tests {
		got := KeyBindings[tt.key]
		if len(got) != len(tt.want) {
			t.Errorf("%s: %d bindings, want %d", tt.key, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s[%d] = %v, want %v", tt.key, i, got[i], tt.want[i])
			}
		}
	}
}

func TestKeyboardImplementsKeys(t *testing.T) {
	var keys porkbelly.Keys = Keyboard{}
	_ = keys // compile-time interface check
}
