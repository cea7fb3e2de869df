package arcade

import (
	"github.com/Raymond-exe/porkbelly"
	"github.com/solarlune/resolv"
)

// Body is an axis-aligned box moved by a World. Position is the box center;
// the backing resolv object holds the same box by its top-left corner.
type Body struct {
	pos     porkbelly.Vec2
	vel     porkbelly.Vec2
	obj     *resolv.Object
	gravity bool
	onFloor bool

	// Bounce is the fraction of vertical speed kept when landing. Zero stops
	// the body dead on the floor.
	Bounce float64
	// Static bodies are never moved by Step.
	Static bool
}

var _ porkbelly.Body = (*Body)(nil)

func newBody(pos porkbelly.Vec2, w, h float64, gravity bool) *Body {
	b := &Body{pos: pos, gravity: gravity}
	b.obj = resolv.NewObject(pos.X-w/2, pos.Y-h/2, w, h, tagBody)
	return b
}

func (b *Body) Position() porkbelly.Vec2 { return b.pos }
func (b *Body) Velocity() porkbelly.Vec2 { return b.vel }
func (b *Body) SetVelocityX(vx float64)  { b.vel.X = vx }
func (b *Body) SetVelocityY(vy float64)  { b.vel.Y = vy }
func (b *Body) OnFloor() bool            { return b.onFloor }
func (b *Body) AllowGravity() bool       { return b.gravity }

// SetPosition moves the body's center to p and re-registers it with the
// collision space.
func (b *Body) SetPosition(p porkbelly.Vec2) {
	b.pos = p
	b.sync()
}

// Bounds returns the body's box in world space.
func (b *Body) Bounds() porkbelly.Rect {
	return porkbelly.RectAround(b.pos, b.obj.W, b.obj.H)
}

// Size returns the body's width and height.
func (b *Body) Size() (w, h float64) {
	return b.obj.W, b.obj.H
}

// Object returns the resolv object backing the body.
func (b *Body) Object() *resolv.Object {
	return b.obj
}

// sync copies the center position onto the resolv object.
func (b *Body) sync() {
	b.obj.X = b.pos.X - b.obj.W/2
	b.obj.Y = b.pos.Y - b.obj.H/2
	if b.obj.Space != nil {
		b.obj.Update()
	}
}
