package host

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugPanel is redrawn about every half second from the frame counter.
var debugPanel *ebiten.Image

const debugRefreshFrames = 30

// drawDebug shows FPS, TPS, the player position and guest count in the top
// left corner.
func (g *Game) drawDebug(dst *ebiten.Image) {
	if debugPanel == nil {
		debugPanel = ebiten.NewImage(220, 64)
	}
	if g.world.Frame()%debugRefreshFrames == 1 || g.world.Frame() <= 1 {
		debugPanel.Clear()
		// Semi-transparent background for readability
		debugPanel.Fill(color.RGBA{0, 0, 0, 128})
		p := g.world.Player().Position()
		reg := g.world.Actors()
		ebitenutil.DebugPrint(debugPanel, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nPOS: %.1f, %.1f\nGUESTS: %d/%d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), p.X, p.Y, reg.GuestCount(), reg.MaxGuests()))
	}
	dst.DrawImage(debugPanel, nil)
}
