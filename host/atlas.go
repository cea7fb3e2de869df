package host

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// Region describes a named sub-rectangle of an atlas page.
type Region struct {
	Page          int
	X, Y          int
	Width, Height int
	// OriginalW and OriginalH are the untrimmed sprite size.
	OriginalW, OriginalH int
	// OffsetX and OffsetY place the trimmed rect inside the original size.
	OffsetX, OffsetY int
	Rotated          bool
}

// Atlas holds atlas page images and a map of named regions.
type Atlas struct {
	// Pages contains the page images indexed by page number. Pages may be
	// nil in tests that only inspect regions.
	Pages   []*ebiten.Image
	regions map[string]Region
	cache   map[string]*ebiten.Image
	warned  map[string]bool
	log     *slog.Logger
}

// Has reports whether the atlas contains a region named name.
func (a *Atlas) Has(name string) bool {
	_, ok := a.regions[name]
	return ok
}

// Region returns the named region and whether it exists.
func (a *Atlas) Region(name string) (Region, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Len returns the number of regions.
func (a *Atlas) Len() int {
	return len(a.regions)
}

// Image returns the sub-image for name. A missing region, or one on a page
// that was not loaded, logs a warning once and returns a 1x1 magenta
// placeholder.
func (a *Atlas) Image(name string) *ebiten.Image {
	if img, ok := a.cache[name]; ok {
		return img
	}
	r, ok := a.regions[name]
	if !ok || r.Page >= len(a.Pages) || a.Pages[r.Page] == nil {
		if !a.warned[name] {
			a.warned[name] = true
			a.log.Warn("atlas region not found, using magenta placeholder", "region", name)
		}
		return ensureMagentaImage()
	}
	img := a.Pages[r.Page].SubImage(image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)).(*ebiten.Image)
	a.cache[name] = img
	return img
}

// magenta placeholder singleton (no sync.Once, drawing is single-threaded)
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}

// LoadAtlas parses TexturePacker JSON data and associates the given page
// images. It accepts the hash format ("frames" object), the Phaser array
// format ("frames" array of named frames) and the multi-page format
// ("textures" array with per-page frame lists). log may be nil.
func LoadAtlas(jsonData []byte, pages []*ebiten.Image, log *slog.Logger) (*Atlas, error) {
	if log == nil {
		log = slog.Default()
	}
	var head struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &head); err != nil {
		return nil, fmt.Errorf("host: parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		Pages:   pages,
		regions: make(map[string]Region),
		cache:   make(map[string]*ebiten.Image),
		warned:  make(map[string]bool),
		log:     log,
	}

	switch {
	case head.Textures != nil:
		if err := parsePages(head.Textures, atlas); err != nil {
			return nil, err
		}
	case len(head.Frames) > 0 && head.Frames[0] == '[':
		if err := parseFrameList(head.Frames, 0, atlas); err != nil {
			return nil, err
		}
	case head.Frames != nil:
		if err := parseHashFrames(head.Frames, 0, atlas); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("host: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Filename         string   `json:"filename"`
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonTexturePage struct {
	Image  string          `json:"image"`
	Frames json.RawMessage `json:"frames"`
}

// parseHashFrames parses {"name": {frame...}, ...}.
func parseHashFrames(raw json.RawMessage, page int, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("host: parse atlas frames: %w", err)
	}
	for name, f := range frames {
		atlas.regions[name] = frameToRegion(f, page)
	}
	return nil
}

// parseFrameList parses [{"filename": "name", "frame": {...}}, ...].
func parseFrameList(raw json.RawMessage, page int, atlas *Atlas) error {
	var frames []jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("host: parse atlas frames: %w", err)
	}
	for i, f := range frames {
		if f.Filename == "" {
			return fmt.Errorf("host: atlas frame %d has no filename", i)
		}
		atlas.regions[f.Filename] = frameToRegion(f, page)
	}
	return nil
}

// parsePages parses [{"image": "...", "frames": ...}, ...]. Each page's
// frames may be a hash or a list.
func parsePages(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("host: parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		var err error
		if len(tex.Frames) > 0 && tex.Frames[0] == '[' {
			err = parseFrameList(tex.Frames, i, atlas)
		} else {
			err = parseHashFrames(tex.Frames, i, atlas)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func frameToRegion(f jsonFrame, page int) Region {
	ow, oh := f.SourceSize.W, f.SourceSize.H
	if ow == 0 && oh == 0 {
		ow, oh = f.Frame.W, f.Frame.H
	}
	return Region{
		Page:      page,
		X:         f.Frame.X,
		Y:         f.Frame.Y,
		Width:     f.Frame.W,
		Height:    f.Frame.H,
		OriginalW: ow,
		OriginalH: oh,
		OffsetX:   f.SpriteSourceSize.X,
		OffsetY:   f.SpriteSourceSize.Y,
		Rotated:   f.Rotated,
	}
}
