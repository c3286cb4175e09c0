package entity

import "image"

// Rect is an integer axis-aligned rectangle in pixel units.
// X, Y is the top-left corner; W, H are the extents.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// X2 returns the last column covered by the rectangle
func (r Rect) X2() int {
	return r.X + r.W - 1
}

// Y2 returns the last row covered by the rectangle
func (r Rect) Y2() int {
	return r.Y + r.H - 1
}

// Translate returns the rectangle moved by (dx, dy)
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Grow returns the rectangle dilated by n pixels on every side
func (r Rect) Grow(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// Intersects reports whether two rectangles share at least one pixel.
// Empty rectangles never intersect anything.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Union returns the smallest rectangle containing both r and o.
// An empty operand is ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x1 := min(r.X, o.X)
	y1 := min(r.Y, o.Y)
	x2 := max(r.X+r.W, o.X+o.W)
	y2 := max(r.Y+r.H, o.Y+o.H)
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Image converts the rectangle to an image.Rectangle (used for atlas sub-images)
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}
