package porkbelly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	c := DefaultContent()
	assert.Equal(t, Vec2{510, 940}, c.Spawn())

	players, talkers := 0, 0
	names := map[string]bool{}
	for _, a := range c.Actors {
		assert.False(t, names[a.Name], "duplicate actor %s", a.Name)
		names[a.Name] = true
		if a.Player {
			players++
			continue
		}
		if len(a.Dialogue) > 0 {
			talkers++
			assert.NotEmpty(t, a.Voices, "%s has no voices", a.Name)
		}
		assert.NotZero(t, a.PartyPos, "%s has no party position", a.Name)
	}
	assert.Equal(t, 1, players)
	assert.Equal(t, 7, talkers)
	assert.Equal(t, "Porkbelly", c.Actors[len(c.Actors)-1].Name, "player is registered last")

	kinds := map[ZoneKind]int{}
	for _, z := range c.Zones {
		kinds[z.Kind]++
		if z.Kind == ZoneStage {
			assert.True(t, IsMusic(z.Track), "stage %s track %q is not music", z.Name, z.Track)
		}
	}
	assert.Len(t, c.Zones, 9)
	assert.Equal(t, map[ZoneKind]int{ZoneStage: 4, ZoneStageClear: 3, ZonePartyGate: 1, ZoneParty: 1}, kinds)
	assert.Len(t, c.Signs, 2)
	assert.Contains(t, c.Credits, "Ebitengine")
}

func TestDefaultWorld(t *testing.T) {
	tw := newTestWorld(t, nil)
	require.NotNil(t, tw.Player())
	assert.Equal(t, Vec2{510, 940}, tw.Player().Position())
	assert.Equal(t, 7, tw.Actors().MaxGuests())
	assert.Len(t, tw.Zones(), 9)
	assert.Len(t, tw.Signs(), 2)

	// Nothing fires at spawn.
	tw.step(1, nil)
	assert.Empty(t, tw.sink.events)
}

func TestContentSpawnWithoutPlayer(t *testing.T) {
	c := &Content{Actors: []ActorSpec{{Name: "Rock", Pos: Vec2{1, 2}}}}
	assert.Equal(t, Vec2{}, c.Spawn())
}
