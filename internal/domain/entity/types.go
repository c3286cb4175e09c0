package entity

// TileTypeID identifies an entry of the tile catalogue.
// Zero is the reserved empty tile.
type TileTypeID uint32

const (
	// EmptyTileID never collides, is never deadly and renders nothing
	EmptyTileID TileTypeID = 0

	// MaxTileTypeID is the largest id a Cell can carry
	MaxTileTypeID = TileTypeID(cellIDMask)

	// SolidTileID is reported for cells outside the grid
	SolidTileID = MaxTileTypeID
)

// Cell is a grid cell as stored by Tiled: a TileTypeID in the low 28 bits
// and the orientation flags in the top bits.
type Cell uint32

// Orientation flags of a Cell
const (
	FlipHorizontal Cell = 0x80000000
	FlipVertical   Cell = 0x40000000
	FlipDiagonal   Cell = 0x20000000

	flipMask   = FlipHorizontal | FlipVertical | FlipDiagonal
	cellIDMask = Cell(0x0fffffff)
)

// NewCell packs a tile type and orientation flags into a Cell
func NewCell(id TileTypeID, flags Cell) Cell {
	return Cell(id)&cellIDMask | flags&flipMask
}

// TypeID returns the tile type stored in the cell
func (c Cell) TypeID() TileTypeID {
	return TileTypeID(c & cellIDMask)
}

// Flags returns only the orientation bits of the cell
func (c Cell) Flags() Cell {
	return c & flipMask
}

// HFlipped reports whether the horizontal flip bit is set
func (c Cell) HFlipped() bool { return c&FlipHorizontal != 0 }

// VFlipped reports whether the vertical flip bit is set
func (c Cell) VFlipped() bool { return c&FlipVertical != 0 }

// DFlipped reports whether the diagonal flip bit is set
func (c Cell) DFlipped() bool { return c&FlipDiagonal != 0 }
