package entity

import "fmt"

// TileGrid is the immutable decoded tile layer of a level together with
// its tile and metatile catalogues.
type TileGrid struct {
	width, height         int
	tileWidth, tileHeight int
	cells                 []Cell
	tiles                 []TileInfo // indexed by TileTypeID
	metaTiles             map[string]MetaTileInfo
	solid                 []Rect // shape of the synthetic out-of-bounds tile
}

// NewTileGrid validates and wraps decoded level data.
// tiles is indexed by TileTypeID; entry 0 is always replaced by the empty tile.
func NewTileGrid(width, height, tileWidth, tileHeight int, cells []Cell, tiles []TileInfo, metaTiles map[string]MetaTileInfo) (*TileGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, &MapFormatError{Reason: fmt.Sprintf("invalid map dimensions %dx%d", width, height)}
	}
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, &MapFormatError{Reason: fmt.Sprintf("invalid tile size %dx%d", tileWidth, tileHeight)}
	}
	if len(cells) != width*height {
		return nil, &MapFormatError{Reason: fmt.Sprintf("expected %d tiles, got %d", width*height, len(cells))}
	}

	catalogue := make([]TileInfo, max(len(tiles), 1))
	copy(catalogue, tiles)
	catalogue[EmptyTileID] = TileInfo{}

	if metaTiles == nil {
		metaTiles = map[string]MetaTileInfo{}
	}

	return &TileGrid{
		width:      width,
		height:     height,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		cells:      cells,
		tiles:      catalogue,
		metaTiles:  metaTiles,
		solid:      []Rect{{X: 0, Y: 0, W: tileWidth, H: tileHeight}},
	}, nil
}

// Width returns the grid width in tiles
func (g *TileGrid) Width() int { return g.width }

// Height returns the grid height in tiles
func (g *TileGrid) Height() int { return g.height }

// TileWidth returns the tile width in pixels
func (g *TileGrid) TileWidth() int { return g.tileWidth }

// TileHeight returns the tile height in pixels
func (g *TileGrid) TileHeight() int { return g.tileHeight }

// PixelWidth returns the grid width in pixels
func (g *TileGrid) PixelWidth() int { return g.width * g.tileWidth }

// PixelHeight returns the grid height in pixels
func (g *TileGrid) PixelHeight() int { return g.height * g.tileHeight }

// InBounds reports whether (x, y) addresses a stored cell
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Cell returns the raw cell at (x, y), or 0 when out of bounds
func (g *TileGrid) Cell(x, y int) Cell {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.cells[y*g.width+x]
}

// TileInfo returns the catalogue entry for id.
// Unknown ids fall back to the empty tile.
func (g *TileGrid) TileInfo(id TileTypeID) TileInfo {
	if int(id) >= len(g.tiles) {
		return g.tiles[EmptyTileID]
	}
	return g.tiles[id]
}

// GetTile returns the tile instance at tile coordinates (x, y).
// Cells outside the grid read as a fully solid, non-hazardous tile so
// bodies can never leave the playable area.
func (g *TileGrid) GetTile(x, y int) TileInstance {
	if !g.InBounds(x, y) {
		return TileInstance{
			TypeID: SolidTileID,
			shapes: g.solid,
			width:  g.tileWidth,
			height: g.tileHeight,
		}
	}

	cell := g.cells[y*g.width+x]
	info := g.TileInfo(cell.TypeID())
	return TileInstance{
		TypeID:       cell.TypeID(),
		Hazardous:    info.Hazardous,
		SourceRegion: info.SourceRegion,
		Flags:        cell.Flags(),
		shapes:       info.CollisionShapes,
		width:        g.tileWidth,
		height:       g.tileHeight,
	}
}

// GetMetaTile returns the named metatile
func (g *TileGrid) GetMetaTile(name string) (MetaTileInfo, error) {
	mt, ok := g.metaTiles[name]
	if !ok {
		return MetaTileInfo{}, &UnknownMetaTileError{Name: name}
	}
	return mt, nil
}

// MetaTileCount returns the number of defined metatiles
func (g *TileGrid) MetaTileCount() int {
	return len(g.metaTiles)
}
