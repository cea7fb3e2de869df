package host

import (
	"bytes"
	"image"
	"image/color"

	"github.com/Raymond-exe/porkbelly"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// referenceWidth is the screen width the HUD layout was authored for.
const referenceWidth = 1920

// World text is authored at 32px and shown at a quarter scale.
const worldTextSize = 32 * 0.25

var (
	labelBackground = color.RGBA{A: 0x80}
	shadowColor     = color.RGBA{A: 0xFF}
	groundColor     = color.RGBA{R: 0x5A, G: 0x8C, B: 0x3C, A: 0xFF}
	tulipColor      = color.RGBA{R: 0xFF, G: 0x6E, B: 0xB4, A: 0xFF}
	actorColor      = color.RGBA{R: 0xF4, G: 0xA6, B: 0xB8, A: 0xFF}
	npcColor        = color.RGBA{R: 0xC8, G: 0x96, B: 0x5A, A: 0xFF}
	fireworkColor   = color.RGBA{R: 0xFF, G: 0xE0, B: 0x40, A: 0xFF}
)

type fonts struct {
	world   *text.GoTextFace
	credits *text.GoTextFace
	hud     *text.GoTextFace
	main    *text.GoTextFace
}

func newFonts(zoom, hudScale float64) *fonts {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		// The embedded font always parses.
		panic("host: parse embedded font: " + err.Error())
	}
	return &fonts{
		world:   &text.GoTextFace{Source: src, Size: worldTextSize * zoom},
		credits: &text.GoTextFace{Source: src, Size: 32 * hudScale},
		hud:     &text.GoTextFace{Source: src, Size: 64 * hudScale},
		main:    &text.GoTextFace{Source: src, Size: 128 * hudScale},
	}
}

// Draw renders one frame: sky, tile layers, pickups, actors, signs and
// labels, effects, then the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(SkyColor)
	view := g.cam.VisibleBounds()

	for _, l := range g.assets.Layers {
		g.drawLayer(screen, l.Grid, l.Tint, view, groundColor)
	}
	if coins := g.world.Pickups().Grid(); coins != nil {
		g.drawLayer(screen, coins, color.RGBA{}, view, tulipColor)
	}

	actors := g.world.Actors().Actors()
	for _, a := range actors {
		g.drawActor(screen, a)
	}
	for _, s := range g.world.Signs() {
		g.drawWorldText(screen, s, false)
	}
	for _, a := range actors {
		g.drawWorldText(screen, a.NameTag, true)
		if a.Bubble != nil && a.Bubble.Text != "" {
			g.drawWorldText(screen, a.Bubble, true)
		}
	}
	g.drawEffects(screen)
	g.drawHUD(screen)
	if g.world.Config().Debug {
		g.drawDebug(screen)
	}
}

// drawLayer draws the tiles of grid inside view. Without a tileset every
// tile is a flat rectangle of fallback.
func (g *Game) drawLayer(dst *ebiten.Image, grid *porkbelly.TileGrid, tint color.RGBA, view porkbelly.Rect, fallback color.RGBA) {
	if grid == nil {
		return
	}
	cam := g.cam.GeoM()
	c0, r0, c1, r1 := grid.CellRange(view)
	for row := max(r0, 0); row <= min(r1, grid.Rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, grid.Cols-1); col++ {
			gid := grid.At(col, row)
			if gid == porkbelly.TileEmpty {
				continue
			}
			x, y := float64(col)*grid.TileW, float64(row)*grid.TileH
			img := g.tileImage(gid)
			if img == nil {
				p := g.cam.WorldToScreen(porkbelly.Vec2{X: x, Y: y})
				z := g.cam.Zoom
				vector.DrawFilledRect(dst, float32(p.X), float32(p.Y),
					float32(grid.TileW*z), float32(grid.TileH*z), fallback, false)
				continue
			}
			op := &ebiten.DrawImageOptions{}
			b := img.Bounds()
			op.GeoM.Scale(grid.TileW/float64(b.Dx()), grid.TileH/float64(b.Dy()))
			op.GeoM.Translate(x, y)
			op.GeoM.Concat(cam)
			if tint != (color.RGBA{}) {
				op.ColorScale.Scale(float32(tint.R)/255, float32(tint.G)/255, float32(tint.B)/255, 1)
			}
			dst.DrawImage(img, op)
		}
	}
}

// tileImage returns the tileset sub-image for gid, or nil without a tileset.
func (g *Game) tileImage(gid int) *ebiten.Image {
	if g.assets.Tiles == nil || g.assets.Tileset == nil {
		return nil
	}
	if img, ok := g.tiles[gid]; ok {
		return img
	}
	x, y, w, h, ok := g.assets.Tileset.Source(gid)
	var img *ebiten.Image
	if ok {
		img = g.assets.Tiles.SubImage(image.Rect(x, y, x+w, y+h)).(*ebiten.Image)
	}
	g.tiles[gid] = img
	return img
}

func (g *Game) drawActor(dst *ebiten.Image, a *porkbelly.Actor) {
	sheet, frame := actorFrame(a, g.world.Now())
	atlas := g.assets.Atlases[sheet]
	if atlas == nil {
		clr := npcColor
		if a.IsPlayer() {
			clr = actorColor
		}
		g.drawBox(dst, a.Body.Bounds(), clr)
		return
	}
	img := atlas.Image(frame)
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	if a.FacingLeft {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Scale(a.Scale, a.Scale)
	p := a.Position()
	op.GeoM.Translate(p.X, p.Y)
	op.GeoM.Concat(g.cam.GeoM())
	dst.DrawImage(img, op)
}

func (g *Game) drawBox(dst *ebiten.Image, r porkbelly.Rect, clr color.RGBA) {
	p := g.cam.WorldToScreen(porkbelly.Vec2{X: r.X, Y: r.Y})
	z := g.cam.Zoom
	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(r.Width*z), float32(r.Height*z), clr, false)
}

func (g *Game) drawEffects(dst *ebiten.Image) {
	now := g.world.Now()
	atlas := g.assets.Atlases[FireworkSheet]
	for _, fx := range g.world.Effects() {
		frame := fx.Frame(now)
		if atlas == nil {
			radius := float32(2+frame*2) * float32(g.cam.Zoom)
			p := g.cam.WorldToScreen(fx.Pos)
			vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), radius, fireworkColor, true)
			continue
		}
		img := atlas.Image(fireworkFrames[frame])
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(fx.Pos.X-float64(b.Dx())/2, fx.Pos.Y-float64(b.Dy())/2)
		op.GeoM.Concat(g.cam.GeoM())
		dst.DrawImage(img, op)
	}
}

// drawWorldText draws a world-anchored label centered on its position, with
// a translucent backing box when boxed is set.
func (g *Game) drawWorldText(dst *ebiten.Image, l *porkbelly.Label, boxed bool) {
	if l == nil || !l.Visible || l.Text == "" || l.Alpha <= 0 {
		return
	}
	face := g.fonts.world
	p := g.cam.WorldToScreen(l.Pos)
	lineSpacing := face.Size * 1.2
	if boxed {
		w, h := text.Measure(l.Text, face, lineSpacing)
		pad := face.Size / 4
		vector.DrawFilledRect(dst, float32(p.X-w/2-pad), float32(p.Y-h/2-pad),
			float32(w+2*pad), float32(h+2*pad), labelBackground, false)
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(p.X, p.Y)
	op.LineSpacing = lineSpacing
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleAlpha(float32(l.Alpha))
	text.Draw(dst, l.Text, face, op)
}

// drawHUD draws the screen-fixed text, laid out relative to the screen size.
func (g *Game) drawHUD(dst *ebiten.Image) {
	hud := g.world.HUD()
	w, h := float64(g.width), float64(g.height)
	s := w / referenceWidth

	drawShadowed(dst, hud.Score.Text, g.fonts.hud, 1480*s, 60*s, text.AlignStart, hud.Score.Alpha, 8*s)
	drawShadowed(dst, hud.Stage.Text, g.fonts.hud, 100*s, 60*s, text.AlignStart, hud.Stage.Alpha, 8*s)

	if hud.Main.Text != "" && hud.Main.Alpha > 0 {
		face := g.fonts.main
		_, th := text.Measure(hud.Main.Text, face, face.Size*1.2)
		band := th + 50*s
		bg := labelBackground
		bg.A = uint8(float64(bg.A) * hud.Main.Alpha)
		vector.DrawFilledRect(dst, 0, float32(h*0.75-band/2), float32(w), float32(band), bg, false)
		op := &text.DrawOptions{}
		op.GeoM.Translate(w*0.5, h*0.75)
		op.LineSpacing = face.Size * 1.2
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleAlpha(float32(hud.Main.Alpha))
		text.Draw(dst, hud.Main.Text, face, op)
	}

	if hud.Credits.Alpha > 0 {
		face := g.fonts.credits
		op := &text.DrawOptions{}
		op.GeoM.Translate(w-250*s, h*0.5+100*s)
		op.LineSpacing = face.Size * 1.2
		op.PrimaryAlign = text.AlignEnd
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleAlpha(float32(hud.Credits.Alpha))
		text.Draw(dst, hud.Credits.Text, face, op)
	}
}

func drawShadowed(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, align text.Align, alpha, offset float64) {
	if s == "" || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.LineSpacing = face.Size * 1.2
	op.PrimaryAlign = align
	op.GeoM.Translate(x+offset, y+offset)
	op.ColorScale.ScaleWithColor(shadowColor)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, s, face, op)

	op = &text.DrawOptions{}
	op.LineSpacing = face.Size * 1.2
	op.PrimaryAlign = align
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, s, face, op)
}
