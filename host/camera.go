package host

import (
	"math"

	"github.com/Raymond-exe/porkbelly"
	"github.com/hajimehoshi/ebiten/v2"
)

// Camera controls the view into the world: the world point it centers on,
// zoom and the screen viewport.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in).
	Zoom float64
	// Viewport is the screen-space rectangle the camera renders into.
	Viewport porkbelly.Rect

	follow     func() porkbelly.Vec2
	followLerp float64

	// BoundsEnabled clamps the camera so the visible area stays within Bounds.
	BoundsEnabled bool
	Bounds        porkbelly.Rect
}

// NewCamera creates a camera with the given viewport and zoom.
func NewCamera(viewport porkbelly.Rect, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &Camera{Zoom: zoom, Viewport: viewport}
}

// Follow makes the camera track target. A lerp of 1.0 snaps immediately;
// lower values trail behind.
func (c *Camera) Follow(target func() porkbelly.Vec2, lerp float64) {
	c.follow = target
	c.followLerp = lerp
}

// CenterOn jumps to p without easing.
func (c *Camera) CenterOn(p porkbelly.Vec2) {
	c.X, c.Y = p.X, p.Y
	c.ClampToBounds()
}

// SetBounds enables bounds clamping.
func (c *Camera) SetBounds(bounds porkbelly.Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClampToBounds clamps the position immediately. No-op without bounds.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// Update moves toward the follow target and applies bounds clamping. The
// follow lerp is applied once per call, so it is tuned per tick.
func (c *Camera) Update() {
	if c.follow != nil {
		t := c.follow()
		c.X += (t.X - c.X) * c.followLerp
		c.Y += (t.Y - c.Y) * c.followLerp
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.Right() - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Bottom() - halfH

	// Bounds smaller than the visible area center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// GeoM returns the world-to-screen transform.
//
// view = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
// where cx, cy is the viewport center.
func (c *Camera) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-c.X, -c.Y)
	g.Scale(c.Zoom, c.Zoom)
	g.Translate(c.Viewport.X+c.Viewport.Width/2, c.Viewport.Y+c.Viewport.Height/2)
	return g
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(p porkbelly.Vec2) porkbelly.Vec2 {
	g := c.GeoM()
	x, y := g.Apply(p.X, p.Y)
	return porkbelly.Vec2{X: x, Y: y}
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(x, y float64) porkbelly.Vec2 {
	inv := c.GeoM()
	inv.Invert()
	wx, wy := inv.Apply(x, y)
	return porkbelly.Vec2{X: wx, Y: wy}
}

// VisibleBounds returns the world-space rectangle the camera shows.
func (c *Camera) VisibleBounds() porkbelly.Rect {
	w := c.Viewport.Width / c.Zoom
	h := c.Viewport.Height / c.Zoom
	return porkbelly.Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}
