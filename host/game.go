// Package host runs a porkbelly World inside Ebitengine: it polls the
// keyboard and mouse, steps the arcade physics after each world update,
// follows the player with a camera and draws tiles, actors, labels, effects
// and the HUD.
package host

import (
	"errors"
	"image/color"
	"log/slog"
	"time"

	"github.com/Raymond-exe/porkbelly"
	"github.com/Raymond-exe/porkbelly/arcade"
	"github.com/Raymond-exe/porkbelly/tiled"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Camera follow tuning.
const (
	followLerp    = 0.05
	followOffsetY = -20
)

// SkyColor fills the screen behind every layer.
var SkyColor = color.RGBA{R: 0x78, G: 0xA7, B: 0xFF, A: 0xFF}

// Layer is a static tile layer drawn behind the actors.
type Layer struct {
	Name string
	Grid *porkbelly.TileGrid
	// Tint multiplies the tile colors. Zero means untinted.
	Tint color.RGBA
}

// Assets are the images a Game draws with. Every field is optional; missing
// art falls back to flat colored shapes.
type Assets struct {
	// Atlases by sheet name: "player", "animals", "animals_2", FireworkSheet.
	Atlases map[string]*Atlas
	Tiles   *ebiten.Image
	Tileset *tiled.Tileset
	// Layers are drawn in order, before the pickup layer and the actors.
	Layers []Layer
}

// Options configures New. World and Space are required.
type Options struct {
	World  *porkbelly.World
	Space  *arcade.World
	Assets Assets
	// Script replaces the keyboard when set.
	Script *porkbelly.ScriptRunner
	// ExitOnScriptEnd ends the game once Script is done.
	ExitOnScriptEnd bool
	// OnFrame runs after every update, e.g. to drain an event queue.
	OnFrame func()
	Logger  *slog.Logger
}

// Game implements ebiten.Game.
type Game struct {
	world   *porkbelly.World
	space   *arcade.World
	assets  Assets
	script  *porkbelly.ScriptRunner
	exit    bool
	onFrame func()
	log     *slog.Logger

	cam    *Camera
	width  int
	height int
	fonts  *fonts
	tiles  map[int]*ebiten.Image
}

// New builds a game around opts.World. Panics if World or Space is nil.
func New(opts Options) *Game {
	if opts.World == nil || opts.Space == nil {
		panic("host: New requires a World and a Space")
	}
	log := opts.Logger
	if log == nil {
		log = opts.World.Logger()
	}
	cfg := opts.World.Config()
	g := &Game{
		world:   opts.World,
		space:   opts.Space,
		assets:  opts.Assets,
		script:  opts.Script,
		exit:    opts.ExitOnScriptEnd,
		onFrame: opts.OnFrame,
		log:     log,
		width:   cfg.Width,
		height:  cfg.Height,
		tiles:   make(map[int]*ebiten.Image),
	}
	g.cam = NewCamera(porkbelly.Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}, cfg.Zoom)
	player := opts.World.Player()
	g.cam.Follow(func() porkbelly.Vec2 {
		return player.Position().Add(porkbelly.Vec2{Y: followOffsetY})
	}, followLerp)
	if solid := opts.Space.Solid(); solid != nil {
		g.cam.SetBounds(porkbelly.Rect{Width: solid.Width(), Height: solid.Height()})
	}
	g.cam.CenterOn(player.Position())
	g.fonts = newFonts(cfg.Zoom, float64(cfg.Width)/referenceWidth)
	return g
}

// Camera returns the game camera.
func (g *Game) Camera() *Camera {
	return g.cam
}

// Update runs one frame: clicks, script or keyboard, world update, physics
// step, camera.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	dt := time.Second / time.Duration(ebiten.TPS())

	var keys porkbelly.Keys = Keyboard{}
	if g.script != nil {
		g.script.Step(g.world)
		keys = g.script.Keys()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.click(float64(x), float64(y))
	}

	g.world.Update(dt, keys)
	g.space.Step(dt)
	if g.script != nil {
		g.script.EndFrame()
	}
	g.cam.Update()

	if g.onFrame != nil {
		g.onFrame()
	}
	if g.script != nil && g.exit && g.script.Done() {
		g.log.Info("script finished", "frame", g.world.Frame())
		return ebiten.Termination
	}
	return nil
}

// click routes a screen-space click to the actor under it.
func (g *Game) click(x, y float64) porkbelly.InteractResult {
	p := g.cam.ScreenToWorld(x, y)
	a := g.world.ActorAt(p)
	if a == nil {
		return porkbelly.InteractIgnored
	}
	res := g.world.Interact(a.Name)
	g.log.Debug("clicked actor", "actor", a.Name, "result", res.String())
	return res
}

// Layout returns the configured logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the game ends.
func (g *Game) Run(title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width/2, g.height/2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
