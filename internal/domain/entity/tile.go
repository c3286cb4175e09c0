package entity

// TileInfo is the metadata shared by every cell of one tile type
type TileInfo struct {
	SourceRegion    Rect   // region of the tile atlas
	CollisionShapes []Rect // tile-local obstacle rectangles
	Hazardous       bool
}

// MetaTileInfo is a named composite of width x height tiles used as
// the visual and collision template of a dynamic body.
type MetaTileInfo struct {
	Name            string
	Width, Height   int // in tiles
	SourceRegion    Rect
	CollisionShapes []Rect
}

// RenderTransform describes how to draw a tile so that it matches its
// orientation flags: rotate by Angle degrees, then mirror.
type RenderTransform struct {
	Angle float64
	FlipH bool
	FlipV bool
}

// TileInstance is a value view of one grid cell: its type metadata plus
// the orientation it was placed with. It holds no reference to the grid.
type TileInstance struct {
	TypeID       TileTypeID
	Hazardous    bool
	SourceRegion Rect
	Flags        Cell

	shapes        []Rect // untransformed, shared with the catalogue
	width, height int    // tile size in pixels
}

// IsEmpty reports whether the instance is the reserved empty tile
func (t TileInstance) IsEmpty() bool {
	return t.TypeID == EmptyTileID
}

// IsSolid reports whether the instance has at least one collision shape
func (t TileInstance) IsSolid() bool {
	return len(t.shapes) > 0
}

// GetCollisionShapes returns the tile-local collision rectangles with the
// instance orientation applied. The result is a fresh slice.
func (t TileInstance) GetCollisionShapes() []Rect {
	return t.AppendCollisionShapes(make([]Rect, 0, len(t.shapes)))
}

// AppendCollisionShapes appends the oriented collision rectangles to dst
// and returns the extended slice. Lets hot loops reuse a buffer.
func (t TileInstance) AppendCollisionShapes(dst []Rect) []Rect {
	if t.Flags == 0 {
		return append(dst, t.shapes...)
	}
	for _, r := range t.shapes {
		dst = append(dst, FlipRect(r, t.Flags, t.width, t.height))
	}
	return dst
}

// RenderTransform returns the rotation and mirroring matching the flags.
// A diagonal flip is drawn as a 90 degree rotation with the mirror axes swapped.
func (t TileInstance) RenderTransform() RenderTransform {
	if t.Flags.DFlipped() {
		return RenderTransform{
			Angle: 90,
			FlipH: t.Flags.VFlipped(),
			FlipV: !t.Flags.HFlipped(),
		}
	}
	return RenderTransform{
		FlipH: t.Flags.HFlipped(),
		FlipV: t.Flags.VFlipped(),
	}
}

// FlipRect applies orientation flags to a tile-local rectangle.
// Order is fixed: diagonal swap first, then horizontal, then vertical mirror.
func FlipRect(r Rect, flags Cell, tileW, tileH int) Rect {
	if flags.DFlipped() {
		r = Rect{X: r.Y, Y: r.X, W: r.H, H: r.W}
	}
	if flags.HFlipped() {
		r.X = tileW - r.X - r.W
	}
	if flags.VFlipped() {
		r.Y = tileH - r.Y - r.H
	}
	return r
}
