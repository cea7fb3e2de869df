package porkbelly

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectFrame(t *testing.T) {
	e := Effect{Born: time.Second}
	tests := []struct {
		at   time.Duration
		want int
	}{
		{time.Second, 0},
		{time.Second + 99*time.Millisecond, 0},
		{time.Second + 100*time.Millisecond, 1},
		{time.Second + 250*time.Millisecond, 2},
		{time.Second + 599*time.Millisecond, 5},
		{3 * time.Second, FireworkFrames - 1},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Frame(tt.at), "at %v", tt.at)
	}
}

func TestEffectsExpire(t *testing.T) {
	var fx Effects
	fx.spawn(Vec2{1, 2}, 0)
	fx.spawn(Vec2{3, 4}, 300*time.Millisecond)

	fx.expire(599 * time.Millisecond)
	assert.Len(t, fx.Active(), 2)
	fx.expire(600 * time.Millisecond)
	assert.Equal(t, []Effect{{Pos: Vec2{3, 4}, Born: 300 * time.Millisecond}}, fx.Active())
	fx.expire(900 * time.Millisecond)
	assert.Empty(t, fx.Active())
}

func TestSpawnFirework(t *testing.T) {
	tw := newTestWorld(t, smallContent())
	tw.spawnFirework(Vec2{10, 20}, true)
	tw.spawnFirework(Vec2{30, 40}, false)

	assert.Len(t, tw.Effects(), 2)
	fw := tw.bank.sounds["firework"]
	if assert.NotNil(t, fw) {
		assert.Equal(t, 1, fw.plays, "silent spawns do not play")
		assert.GreaterOrEqual(t, fw.Volume(), 0.0)
		assert.Less(t, fw.Volume(), 1.0)
	}

	tw.runFor(fireworkLifetime)
	assert.Empty(t, tw.Effects())
}
