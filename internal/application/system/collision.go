package system

import (
	"math"
	"strings"

	"github.com/younwookim/planetonomy/internal/domain/entity"
)

// ContactMask is the set of sides of a body that touched level geometry
type ContactMask uint16

const (
	ContactLeft   ContactMask = 0x01
	ContactRight  ContactMask = 0x02
	ContactTop    ContactMask = 0x04
	ContactBottom ContactMask = 0x08

	// ContactHazard is set when any probe touched a hazardous tile
	ContactHazard ContactMask = 0x100

	ContactNone ContactMask = 0
)

// Has reports whether all bits of m are set
func (c ContactMask) Has(m ContactMask) bool {
	return c&m == m
}

// String lists the set bits, e.g. "Left|Bottom"
func (c ContactMask) String() string {
	if c == ContactNone {
		return "None"
	}
	var parts []string
	for _, f := range []struct {
		bit  ContactMask
		name string
	}{
		{ContactLeft, "Left"},
		{ContactRight, "Right"},
		{ContactTop, "Top"},
		{ContactBottom, "Bottom"},
		{ContactHazard, "Hazard"},
	} {
		if c&f.bit != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// CollisionSystem moves bodies through the static tile grid in sub-pixel
// sub-steps, probing one pixel outside each collision rectangle.
// It keeps scratch buffers and must not be shared between goroutines.
type CollisionSystem struct {
	grid     *entity.TileGrid
	autoStep int

	rects  []entity.Rect
	shapes []entity.Rect
}

// NewCollisionSystem creates a resolver over grid.
// autoStep is the tallest ledge, in pixels, a grounded body walks up.
func NewCollisionSystem(grid *entity.TileGrid, autoStep int) *CollisionSystem {
	return &CollisionSystem{
		grid:     grid,
		autoStep: autoStep,
	}
}

// Resolve integrates body over dt seconds, stopping it against solid
// shapes. It returns the contacts accumulated over all sub-steps and zeroes
// the velocity components pointing into a blocked side.
func (s *CollisionSystem) Resolve(body *entity.Body, dt float64) ContactMask {
	// each sub-step moves less than one pixel on either axis
	numSteps := 1 + int(math.Max(math.Abs(body.VX), math.Abs(body.VY))*dt)

	var total ContactMask
	for step := 0; step < numSteps; step++ {
		if step > 0 && body.Stopped() {
			break
		}

		res := s.Probe(body, 0)

		blockedX := res&ContactLeft != 0 && body.VX < 0 || res&ContactRight != 0 && body.VX > 0
		if blockedX && res&ContactBottom != 0 {
			res = s.tryAutoStep(body, res)
		}

		if res&ContactLeft != 0 && body.VX < 0 || res&ContactRight != 0 && body.VX > 0 {
			body.VX = 0
		}
		if res&ContactTop != 0 && body.VY < 0 || res&ContactBottom != 0 && body.VY > 0 {
			body.VY = 0
		}

		body.X += body.VX * dt / float64(numSteps)
		body.Y += body.VY * dt / float64(numSteps)

		total |= res
	}

	return total
}

// tryAutoStep raises the body by the lowest height in 1..autoStep that
// leaves it touching nothing. Returns the contacts at the final position.
func (s *CollisionSystem) tryAutoStep(body *entity.Body, res ContactMask) ContactMask {
	for h := 1; h <= s.autoStep; h++ {
		if clean := s.Probe(body, -h); clean == ContactNone {
			body.Y -= float64(h)
			return clean
		}
	}
	return res
}

// Probe reports which sides of the body, shifted vertically by dy pixels,
// are touching level geometry. The body is not modified.
func (s *CollisionSystem) Probe(body *entity.Body, dy int) ContactMask {
	s.rects = body.CollisionRects(s.rects[:0])

	var bounds entity.Rect
	for i := range s.rects {
		s.rects[i].Y += dy
		bounds = bounds.Union(s.rects[i])
	}
	if bounds.Empty() {
		return ContactNone
	}

	area := bounds.Grow(1)

	// cells left of or above the origin cannot be iterated by index
	var res ContactMask
	if area.X < 0 {
		res |= ContactLeft
	}
	if area.Y < 0 {
		res |= ContactTop
	}

	tw, th := s.grid.TileWidth(), s.grid.TileHeight()
	x0, x1 := max(floorDiv(area.X, tw), 0), floorDiv(area.X2(), tw)
	y0, y1 := max(floorDiv(area.Y, th), 0), floorDiv(area.Y2(), th)

	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			tile := s.grid.GetTile(tx, ty)
			if !tile.IsSolid() {
				continue
			}

			hit := ContactNone
			s.shapes = tile.AppendCollisionShapes(s.shapes[:0])
			for _, shape := range s.shapes {
				shape = shape.Translate(tx*tw, ty*th)
				for _, r := range s.rects {
					hit |= probeRect(r, shape)
				}
			}

			res |= hit
			if hit != ContactNone && tile.Hazardous {
				res |= ContactHazard
			}
		}
	}

	return res
}

// probeRect tests the four one-pixel edge strips around r against shape
func probeRect(r, shape entity.Rect) ContactMask {
	var res ContactMask
	if (entity.Rect{X: r.X - 1, Y: r.Y, W: 1, H: r.H}).Intersects(shape) {
		res |= ContactLeft
	}
	if (entity.Rect{X: r.X + r.W, Y: r.Y, W: 1, H: r.H}).Intersects(shape) {
		res |= ContactRight
	}
	if (entity.Rect{X: r.X, Y: r.Y - 1, W: r.W, H: 1}).Intersects(shape) {
		res |= ContactTop
	}
	if (entity.Rect{X: r.X, Y: r.Y + r.H, W: r.W, H: 1}).Intersects(shape) {
		res |= ContactBottom
	}
	return res
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
