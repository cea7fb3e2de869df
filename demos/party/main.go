// party is the playable game: walk Porkbelly from the forest to the hilltop,
// invite every animal on the way and collect tulips.
//
// Configuration comes from PORKBELLY_* environment variables and an optional
// .env file. Missing assets are logged and replaced with flat shapes, so the
// game also runs from a bare checkout.
package main

import (
	"fmt"
	"image/color"
	_ "image/png"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/Raymond-exe/porkbelly"
	"github.com/Raymond-exe/porkbelly/arcade"
	"github.com/Raymond-exe/porkbelly/audio"
	"github.com/Raymond-exe/porkbelly/ecs"
	"github.com/Raymond-exe/porkbelly/host"
	"github.com/Raymond-exe/porkbelly/tiled"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

const (
	title = "Porkbelly's Party"
	// mapScale is applied to every tile layer.
	mapScale = 1.5
	// playerBounce is the fraction of landing speed the player keeps.
	playerBounce = 0.25
)

// atlasFiles maps sheet names to their image and TexturePacker JSON files.
var atlasFiles = map[string][2]string{
	"player":           {"player.png", "player.json"},
	"animals":          {"animals_sprites.png", "animals_sprites.json"},
	"animals_2":        {"animals_sprites_2.png", "animals_sprites_2.json"},
	host.FireworkSheet: {"firework_spritesheet.png", "firework_sprites.json"},
}

// backgroundTint dims the far background layer.
var backgroundTint = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}

func main() {
	cfg, err := porkbelly.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "porkbelly: %v\n", err)
		os.Exit(1)
	}
	log := porkbelly.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("game exited", "err", err)
		os.Exit(1)
	}
}

func run(cfg *porkbelly.Config, log *slog.Logger) error {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9E3779B97F4A7C15))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	m, err := tiled.Load(filepath.Join(cfg.AssetDir, "map.json"))
	if err != nil {
		log.Warn("map unavailable, using flat ground", "err", err)
	}
	ground, coins, layers := mapLayers(m, log)

	space := arcade.New(cfg.Gravity, ground)

	bank, err := audio.LoadDir(filepath.Join(cfg.AssetDir, "sounds"), cfg, log)
	if err != nil {
		log.Warn("some sounds failed to load", "err", err)
	}
	if !cfg.Mute {
		if err := bank.Start(); err != nil {
			log.Warn("audio disabled", "err", err)
			bank.SetMuted(true)
		}
	}
	defer bank.Close()

	ecsWorld := donburi.NewWorld()
	tally := ecs.NewTally()
	ecs.GameEventType.Subscribe(ecsWorld, tally.Handle)
	ecs.GameEventType.Subscribe(ecsWorld, func(_ donburi.World, e porkbelly.Event) {
		log.Debug("game event", "kind", e.Kind.String(), "actor", e.Actor, "zone", e.Zone, "count", e.Count)
	})

	world := porkbelly.NewWorld(porkbelly.Options{
		Config:  cfg,
		Physics: space,
		Sounds:  bank,
		Sink:    ecs.NewDonburiSink(ecsWorld),
		Logger:  log,
		Rand:    rng,
		Coins:   coins,
	})
	if b, ok := world.Player().Body.(*arcade.Body); ok {
		b.Bounce = playerBounce
	}

	var script *porkbelly.ScriptRunner
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		if script, err = porkbelly.LoadScript(data); err != nil {
			return err
		}
		log.Info("playing script", "path", cfg.Script)
	}

	game := host.New(host.Options{
		World:           world,
		Space:           space,
		Assets:          loadAssets(cfg.AssetDir, m, layers, log),
		Script:          script,
		ExitOnScriptEnd: script != nil,
		OnFrame:         func() { events.ProcessAllEvents(ecsWorld) },
		Logger:          log,
	})
	err = game.Run(title)
	log.Info("session over",
		"guests", world.Actors().GuestCount(),
		"max_guests", world.Actors().MaxGuests(),
		"score", world.Pickups().Score(),
		"zones", tally.Count(porkbelly.EventZoneEntered))
	return err
}

// mapLayers extracts the collision, pickup and decoration layers. A nil map
// or a missing World layer falls back to flat ground.
func mapLayers(m *tiled.Map, log *slog.Logger) (ground, coins *porkbelly.TileGrid, layers []host.Layer) {
	if m != nil {
		var err error
		ground, err = m.Grid("World", mapScale)
		if err != nil {
			log.Warn("no collision layer, using flat ground", "err", err)
		}
		if coins, err = m.Grid("Coins", mapScale); err != nil {
			log.Warn("no pickup layer", "err", err)
		}
		for _, name := range []string{"Background", "BackgroundProps"} {
			g, err := m.Grid(name, mapScale)
			if err != nil {
				log.Warn("decoration layer skipped", "layer", name, "err", err)
				continue
			}
			l := host.Layer{Name: name, Grid: g}
			if name == "Background" {
				l.Tint = backgroundTint
			}
			layers = append(layers, l)
		}
	}
	if ground == nil {
		ground = flatGround()
	}
	return ground, coins, append(layers, host.Layer{Name: "World", Grid: ground})
}

// flatGround is a level-wide floor just under the spawn point.
func flatGround() *porkbelly.TileGrid {
	const (
		tile     = 16 * mapScale
		cols     = 1000
		rows     = 50
		floorRow = 40
	)
	g := porkbelly.NewTileGrid(cols, rows, tile, tile)
	for row := floorRow; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.Set(col, row, 1)
		}
	}
	return g
}

func loadAssets(dir string, m *tiled.Map, layers []host.Layer, log *slog.Logger) host.Assets {
	assets := host.Assets{Atlases: make(map[string]*host.Atlas), Layers: layers}
	for sheet, files := range atlasFiles {
		atlas, err := loadAtlas(filepath.Join(dir, files[0]), filepath.Join(dir, files[1]), log)
		if err != nil {
			log.Warn("atlas unavailable, drawing boxes", "sheet", sheet, "err", err)
			continue
		}
		assets.Atlases[sheet] = atlas
	}
	if m != nil {
		if ts, ok := m.Tileset("spritesheet"); ok {
			img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, filepath.Base(ts.Image)))
			if err != nil {
				log.Warn("tileset image unavailable", "err", err)
			} else {
				assets.Tiles, assets.Tileset = img, ts
			}
		}
	}
	return assets
}

func loadAtlas(imagePath, jsonPath string, log *slog.Logger) (*host.Atlas, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read atlas: %w", err)
	}
	img, _, err := ebitenutil.NewImageFromFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("load atlas image: %w", err)
	}
	return host.LoadAtlas(data, []*ebiten.Image{img}, log)
}
