package entity

// Body is a dynamic object moving over the tile grid.
// X, Y is the float anchor point; collision queries use its truncated
// integer value with every Shape rectangle translated by it.
type Body struct {
	X, Y   float64 // anchor, pixels
	VX, VY float64 // pixels per second

	View   Rect   // drawing rectangle relative to the anchor
	Source Rect   // atlas region drawn into View
	Shape  []Rect // collision rectangles relative to the anchor
}

// NewBody creates a body with an explicit view and collision shape
func NewBody(x, y float64, view Rect, shape ...Rect) *Body {
	return &Body{
		X:     x,
		Y:     y,
		View:  view,
		Shape: shape,
	}
}

// NewMetaTileBody creates a body that looks and collides like a metatile.
// The anchor is the metatile's top-left corner.
func NewMetaTileBody(x, y float64, mt MetaTileInfo) *Body {
	shape := make([]Rect, len(mt.CollisionShapes))
	copy(shape, mt.CollisionShapes)
	return &Body{
		X:      x,
		Y:      y,
		View:   Rect{W: mt.SourceRegion.W, H: mt.SourceRegion.H},
		Source: mt.SourceRegion,
		Shape:  shape,
	}
}

// PixelX returns the truncated X anchor
func (b *Body) PixelX() int {
	return int(b.X)
}

// PixelY returns the truncated Y anchor
func (b *Body) PixelY() int {
	return int(b.Y)
}

// SetPixelPos places the anchor at integer pixel coordinates
func (b *Body) SetPixelPos(x, y int) {
	b.X = float64(x)
	b.Y = float64(y)
}

// ViewRect returns the drawing rectangle in world coordinates
func (b *Body) ViewRect() Rect {
	return b.View.Translate(b.PixelX(), b.PixelY())
}

// CollisionRects appends the world-space collision rectangles to dst
func (b *Body) CollisionRects(dst []Rect) []Rect {
	px, py := b.PixelX(), b.PixelY()
	for _, r := range b.Shape {
		dst = append(dst, r.Translate(px, py))
	}
	return dst
}

// Bounds returns the world-space union of all collision rectangles
func (b *Body) Bounds() Rect {
	var u Rect
	px, py := b.PixelX(), b.PixelY()
	for _, r := range b.Shape {
		u = u.Union(r.Translate(px, py))
	}
	return u
}

// Stopped reports whether the body has no velocity at all
func (b *Body) Stopped() bool {
	return b.VX == 0 && b.VY == 0
}

// Player is the controllable body
type Player struct {
	Body

	OnGround    bool
	FacingRight bool
}

// NewPlayer creates a player whose collision rectangle is its view
// rectangle shrunk by inset pixels from the top.
func NewPlayer(x, y float64, view, source Rect, inset int) *Player {
	shape := Rect{X: view.X, Y: view.Y + inset, W: view.W, H: view.H - inset}
	p := &Player{
		Body:        *NewBody(x, y, view, shape),
		FacingRight: true,
	}
	p.Source = source
	return p
}
