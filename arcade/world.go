// Package arcade is a minimal arcade-style physics world: gravity, velocity
// integration and collision of axis-aligned bodies against a solid tile
// layer. Collision queries run through a resolv space holding one static
// object per solid tile. It implements porkbelly.Physics.
package arcade

import (
	"math"
	"time"

	"github.com/Raymond-exe/porkbelly"
	"github.com/solarlune/resolv"
)

// Object tags in the collision space.
const (
	tagSolid = "solid"
	tagBody  = "body"
)

// maxStepFraction caps how far a body moves per substep, as a fraction of
// the tile size, so fast bodies cannot tunnel through one-tile floors.
const maxStepFraction = 0.5

// contactEpsilon absorbs float drift when a body rests flush against a tile.
const contactEpsilon = 1e-6

// World owns the bodies and the collision space.
type World struct {
	// Gravity is the downward acceleration in pixels per second squared.
	Gravity float64
	// MaxFallSpeed caps downward velocity. Zero means uncapped.
	MaxFallSpeed float64

	solid  *porkbelly.TileGrid
	space  *resolv.Space
	bodies []*Body
}

// New creates a world. solid may be nil, in which case bodies fall freely.
func New(gravity float64, solid *porkbelly.TileGrid) *World {
	w := &World{Gravity: gravity, solid: solid}
	if solid != nil {
		w.space = newSpace(solid)
	}
	return w
}

// newSpace builds a resolv space with cells the size of the tiles and adds a
// static object for every solid tile.
func newSpace(g *porkbelly.TileGrid) *resolv.Space {
	cellW := max(1, int(math.Ceil(g.TileW)))
	cellH := max(1, int(math.Ceil(g.TileH)))
	space := resolv.NewSpace(int(math.Ceil(g.Width())), int(math.Ceil(g.Height())), cellW, cellH)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if !g.Solid(col, row) {
				continue
			}
			space.Add(resolv.NewObject(float64(col)*g.TileW, float64(row)*g.TileH, g.TileW, g.TileH, tagSolid))
		}
	}
	return space
}

var _ porkbelly.Physics = (*World)(nil)

// NewBody creates a body of the given size centered on pos.
func (w *World) NewBody(pos porkbelly.Vec2, width, height float64, gravity bool) porkbelly.Body {
	b := newBody(pos, width, height, gravity)
	if w.space != nil {
		w.space.Add(b.obj)
	}
	w.bodies = append(w.bodies, b)
	return b
}

// Bodies returns every body in creation order. The slice MUST NOT be mutated.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Solid returns the collision layer, or nil.
func (w *World) Solid() *porkbelly.TileGrid {
	return w.solid
}

// Space returns the collision space, or nil without a collision layer.
func (w *World) Space() *resolv.Space {
	return w.space
}

// Step integrates every non-static body over dt and resolves tile
// collisions. OnFloor is recomputed for every moving body.
func (w *World) Step(dt time.Duration) {
	secs := dt.Seconds()
	if secs <= 0 {
		return
	}
	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		w.stepBody(b, secs)
	}
}

func (w *World) stepBody(b *Body, secs float64) {
	if b.gravity {
		b.vel.Y += w.Gravity * secs
		if w.MaxFallSpeed > 0 && b.vel.Y > w.MaxFallSpeed {
			b.vel.Y = w.MaxFallSpeed
		}
	}

	dx, dy := b.vel.X*secs, b.vel.Y*secs
	b.onFloor = false
	if w.space == nil {
		b.pos.X += dx
		b.pos.Y += dy
		b.sync()
		return
	}

	n := 1
	limit := math.Min(w.solid.TileW, w.solid.TileH) * maxStepFraction
	if travel := math.Max(math.Abs(dx), math.Abs(dy)); travel > limit {
		n = int(math.Ceil(travel / limit))
	}
	sx, sy := dx/float64(n), dy/float64(n)
	for i := 0; i < n; i++ {
		if sx != 0 && w.moveX(b, sx) {
			b.vel.X = 0
			sx = 0
		}
		if sy != 0 && w.moveY(b, sy) {
			if sy > 0 {
				b.onFloor = true
				b.vel.Y = -b.vel.Y * b.Bounce
			} else {
				b.vel.Y = 0
			}
			sy = 0
		}
	}
	if !b.onFloor && b.vel.Y >= 0 && w.touchingFloor(b) {
		b.onFloor = true
	}
}

// moveX moves b horizontally by dx, stopping flush against the nearest solid
// tile in the way. It reports whether a tile stopped the body.
func (w *World) moveX(b *Body, dx float64) bool {
	step, hit := w.sweep(b, dx, 0)
	b.pos.X += step
	b.sync()
	return hit
}

// moveY is moveX for the vertical axis.
func (w *World) moveY(b *Body, dy float64) bool {
	step, hit := w.sweep(b, 0, dy)
	b.pos.Y += step
	b.sync()
	return hit
}

// sweep asks the space for solid tiles near b's box displaced by (dx, dy)
// along one axis and returns the distance b can actually travel. The query
// reaches one pixel past the move so cell rounding never misses a tile the
// box would enter; candidates that the moved box does not overlap are
// ignored.
func (w *World) sweep(b *Body, dx, dy float64) (float64, bool) {
	move := dx + dy
	reach := move + math.Copysign(1, move)
	var c *resolv.Collision
	if dx != 0 {
		c = b.obj.Check(reach, 0, tagSolid)
	} else {
		c = b.obj.Check(0, reach, tagSolid)
	}
	if c == nil {
		return move, false
	}

	moved := b.Bounds()
	moved.X += dx
	moved.Y += dy
	best, hit := move, false
	for _, o := range c.Objects {
		if !overlaps(moved, o) {
			continue
		}
		contact := c.ContactWithObject(o)
		d := contact.Y()
		if dx != 0 {
			d = contact.X()
		}
		// The nearest tile is the one that allows the shortest travel.
		if !hit || (move > 0 && d < best) || (move < 0 && d > best) {
			best, hit = d, true
		}
	}
	return best, hit
}

// touchingFloor reports whether a solid tile top lies flush under b.
func (w *World) touchingFloor(b *Body) bool {
	c := b.obj.Check(0, 1, tagSolid)
	if c == nil {
		return false
	}
	r := b.Bounds()
	for _, o := range c.Objects {
		if math.Abs(o.Y-r.Bottom()) < contactEpsilon && o.X < r.Right()-contactEpsilon && r.X < o.X+o.W-contactEpsilon {
			return true
		}
	}
	return false
}

// overlaps reports whether r and o share interior area deeper than
// contactEpsilon. Touching edges do not count, so a body resting on a floor
// can slide along it.
func overlaps(r porkbelly.Rect, o *resolv.Object) bool {
	return r.X < o.X+o.W-contactEpsilon && o.X < r.Right()-contactEpsilon &&
		r.Y < o.Y+o.H-contactEpsilon && o.Y < r.Bottom()-contactEpsilon
}
