package porkbelly

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stageContent adds one zone of each kind, spaced along the floor.
func stageContent() *Content {
	c := smallContent()
	c.Zones = []ZoneSpec{
		{Name: "forest", Kind: ZoneStage, Center: Vec2{6000, 500}, Radius: 50, Text: "Stage 1", Track: "forest"},
		{Name: "clear", Kind: ZoneStageClear, Center: Vec2{7000, 500}, Radius: 50, Text: "Clear!"},
		{Name: "gate", Kind: ZonePartyGate, Center: Vec2{8000, 500}, Radius: 50},
		{Name: "party", Kind: ZoneParty, Center: Vec2{9000, 500}, Radius: 50, Text: "Party!", Track: "party"},
	}
	return c
}

func TestStageZone(t *testing.T) {
	tw := newTestWorld(t, stageContent())
	tw.teleport(Vec2{6000, 500})

	assert.Equal(t, "forest", tw.Music().Current())
	assert.True(t, tw.bank.sounds["forest"].Playing())
	tw.runFor(700 * time.Millisecond)
	assert.Equal(t, "Stage 1", tw.HUD().Stage.Text)
	assert.Equal(t, "forest", tw.sink.events[0].Zone)
}

func TestStageClearZone(t *testing.T) {
	tw := newTestWorld(t, stageContent())
	tw.teleport(Vec2{7000, 500})

	assert.Equal(t, 1, tw.bank.plays("stage_complete"))
	tw.runFor(700 * time.Millisecond)
	assert.Equal(t, "Clear!", tw.HUD().Main.Text)
	tw.runFor(clearBurstCount * clearBurstInterval)
	assert.Equal(t, clearBurstCount, tw.bank.plays("firework"))
	assert.Equal(t, 1, tw.bank.plays("stage_complete"))
}

func TestStageClearBurstFollowsPlayer(t *testing.T) {
	tw := newTestWorld(t, stageContent())
	tw.teleport(Vec2{7000, 500})
	tw.step(1, nil)
	require.NotEmpty(t, tw.Effects())
	first := tw.Effects()[0].Pos
	assert.InDelta(t, 7000, first.X, 75)
	assert.LessOrEqual(t, first.Y, 500.0)
	assert.GreaterOrEqual(t, first.Y, 400.0)

	// Later bursts are placed around wherever the player is when they fire.
	tw.Player().Body.SetPosition(Vec2{7040, 500})
	tw.runFor(clearBurstInterval)
	fx := tw.Effects()
	last := fx[len(fx)-1].Pos
	assert.InDelta(t, 7040, last.X, 75)
}

func TestPartyGateMovesOnlyGuests(t *testing.T) {
	tw := newTestWorld(t, stageContent())
	hammy, fox := tw.Actors().Actor("Hammy"), tw.Actors().Actor("Foxy")

	tw.moveNear("Hammy", 10)
	require.Equal(t, InteractInvited, tw.Interact("Hammy"))
	require.Equal(t, "oink", hammy.Bubble.Text)
	tw.moveNear("Foxy", 10)
	require.Equal(t, InteractAdvanced, tw.Interact("Foxy"))

	tw.teleport(Vec2{8000, 500})

	assert.Equal(t, Vec2{5040, 290}, hammy.Position())
	assert.Empty(t, hammy.Bubble.Text)
	assert.Equal(t, Vec2{1000, 500}, fox.Position(), "uninvited actors stay put")
	assert.Equal(t, "one", fox.Bubble.Text)
}

func TestParty(t *testing.T) {
	tw := newTestWorld(t, stageContent())
	hammy, fox := tw.Actors().Actor("Hammy"), tw.Actors().Actor("Foxy")

	tw.moveNear("Hammy", 10)
	tw.Interact("Hammy")
	tw.moveNear("Foxy", 10)
	for i := 0; i < 3; i++ {
		tw.Interact("Foxy")
	}
	require.Equal(t, 2, tw.Actors().GuestCount())

	tw.Music().Crossfade("plains")
	tw.teleport(Vec2{9000, 500})

	assert.Empty(t, tw.Music().Current())
	assert.False(t, tw.bank.sounds["plains"].Playing())
	assert.Equal(t, 1, tw.bank.plays("party"))
	assert.Zero(t, tw.bank.plays("firework"), "party fireworks are silent")

	tw.runFor(partyGreetingMax + 100*time.Millisecond)
	assert.Equal(t, "Happy Birthday!", hammy.Bubble.Text)
	assert.Equal(t, "Happy Birthday!", fox.Bubble.Text)
	assert.Equal(t, []*Actor{hammy}, tw.Jumpers(), "only gravity guests jump")
	assert.NotEmpty(t, tw.Effects())
	assert.Equal(t, "Party!", tw.HUD().Main.Text)

	// Hammy's body never leaves the fake floor, so it is pushed up every frame.
	vy := hammy.Body.Velocity().Y
	jump := tw.Config().JumpImpulse
	assert.GreaterOrEqual(t, vy, -jump/1.25)
	assert.LessOrEqual(t, vy, -jump/1.75)

	tw.runFor(creditsDelay + creditsFadeTime)
	assert.Equal(t, 1.0, tw.HUD().Credits.Alpha)
}
