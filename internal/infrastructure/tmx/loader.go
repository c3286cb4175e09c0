// Package tmx decodes Tiled maps into levels.
package tmx

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/lafriks/go-tiled"
	"go.uber.org/zap"

	"github.com/younwookim/planetonomy/internal/domain/entity"
)

// DefaultObjectLayer is the object group holding level markers
const DefaultObjectLayer = "Objects"

// Tile and metatile property names
const (
	propDeadly = "deadly"
	propName   = "name"
	propWidth  = "width"
	propHeight = "height"
)

// Loader reads .tmx files from a filesystem
type Loader struct {
	fsys        fs.FS
	logger      *zap.Logger
	objectLayer string
	tileLayer   string
}

// Option configures a Loader
type Option func(*Loader)

// WithLogger sets the logger used for load warnings
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithObjectLayer overrides the name of the marker object group
func WithObjectLayer(name string) Option {
	return func(l *Loader) {
		if name != "" {
			l.objectLayer = name
		}
	}
}

// WithTileLayer selects a tile layer by name instead of the first one
func WithTileLayer(name string) Option {
	return func(l *Loader) {
		l.tileLayer = name
	}
}

// NewLoader creates a map loader reading from the directory dir
func NewLoader(dir string, opts ...Option) *Loader {
	return NewFSLoader(os.DirFS(dir), opts...)
}

// NewFSLoader creates a map loader over fs.FS
func NewFSLoader(fsys fs.FS, opts ...Option) *Loader {
	l := &Loader{
		fsys:        fsys,
		logger:      zap.NewNop(),
		objectLayer: DefaultObjectLayer,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load parses the map at path into a level.
// Any structural problem is reported as *entity.MapFormatError; a map
// without exactly one player start fails as well.
func (l *Loader) Load(path string) (*entity.Level, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, &entity.MapFormatError{Reason: "load " + path, Err: err}
	}

	tiles, metaTiles, err := l.parseTilesets(m)
	if err != nil {
		return nil, err
	}

	cells, err := l.parseCells(m)
	if err != nil {
		return nil, err
	}

	grid, err := entity.NewTileGrid(m.Width, m.Height, m.TileWidth, m.TileHeight, cells, tiles, metaTiles)
	if err != nil {
		return nil, err
	}

	level := &entity.Level{Grid: grid}
	if err := l.parseObjects(m, level); err != nil {
		return nil, err
	}

	l.logger.Debug("map loaded",
		zap.String("path", path),
		zap.Int("width", m.Width),
		zap.Int("height", m.Height),
		zap.Int("tileTypes", len(tiles)),
		zap.Int("metaTiles", len(metaTiles)),
		zap.Int("objects", len(level.Objects)),
	)

	return level, nil
}

// Load parses a map with default options
func Load(fsys fs.FS, path string) (*entity.Level, error) {
	return NewFSLoader(fsys).Load(path)
}

func (l *Loader) parseTilesets(m *tiled.Map) ([]entity.TileInfo, map[string]entity.MetaTileInfo, error) {
	if len(m.Tilesets) == 0 {
		return nil, nil, &entity.MapFormatError{Reason: "no tileset"}
	}

	var tiles []entity.TileInfo
	grow := func(gid uint32) {
		if int(gid) >= len(tiles) {
			tiles = append(tiles, make([]entity.TileInfo, int(gid)+1-len(tiles))...)
		}
	}

	metaTiles := make(map[string]entity.MetaTileInfo)

	for _, ts := range m.Tilesets {
		if ts.TileWidth <= 0 || ts.TileHeight <= 0 || ts.Image == nil || ts.Image.Width <= 0 || ts.Image.Height <= 0 {
			return nil, nil, &entity.MapFormatError{Reason: fmt.Sprintf("unexpected dimensions of tileset %q", ts.Name)}
		}

		// every atlas cell gets a source region, row-major
		perRow := ts.Image.Width / ts.TileWidth
		perCol := ts.Image.Height / ts.TileHeight
		for id := 0; id < perRow*perCol; id++ {
			gid := uint32(id) + ts.FirstGID
			grow(gid)
			tiles[gid].SourceRegion = entity.Rect{
				X: (id % perRow) * ts.TileWidth,
				Y: (id / perRow) * ts.TileHeight,
				W: ts.TileWidth,
				H: ts.TileHeight,
			}
		}

		for _, tt := range ts.Tiles {
			if int(tt.ID) >= perRow*perCol {
				return nil, nil, &entity.MapFormatError{Reason: fmt.Sprintf("unexpected tile id %d in tileset %q of %d tiles", tt.ID, ts.Name, perRow*perCol)}
			}
			gid := tt.ID + ts.FirstGID
			if gid < 1 || gid > uint32(entity.MaxTileTypeID) {
				return nil, nil, &entity.MapFormatError{Reason: fmt.Sprintf("unexpected tile id %d", tt.ID)}
			}
			grow(gid)

			info := &tiles[gid]
			info.CollisionShapes = collisionShapes(tt)

			props := tt.Properties
			if props == nil {
				continue
			}
			info.Hazardous = isSet(props.GetString(propDeadly))

			name := props.GetString(propName)
			if name == "" {
				continue
			}
			mt, err := buildMetaTile(name, props.GetInt(propWidth), props.GetInt(propHeight), *info, ts.TileWidth, ts.TileHeight)
			if err != nil {
				return nil, nil, err
			}
			metaTiles[name] = mt
		}
	}

	return tiles, metaTiles, nil
}

// collisionShapes collects the rectangles drawn in a tile's collision editor
func collisionShapes(tt *tiled.TilesetTile) []entity.Rect {
	var shapes []entity.Rect
	for _, og := range tt.ObjectGroups {
		for _, o := range og.Objects {
			r := entity.Rect{X: int(o.X), Y: int(o.Y), W: int(o.Width), H: int(o.Height)}
			if r.Empty() {
				continue
			}
			shapes = append(shapes, r)
		}
	}
	return shapes
}

// buildMetaTile spans width x height tiles starting at the anchor tile and
// repeats the anchor's collision shapes in every covered cell.
// Missing dimensions default to 1.
func buildMetaTile(name string, width, height int, anchor entity.TileInfo, tileW, tileH int) (entity.MetaTileInfo, error) {
	if width == 0 {
		width = 1
	}
	if height == 0 {
		height = 1
	}
	if width < 1 || height < 1 {
		return entity.MetaTileInfo{}, &entity.MapFormatError{Reason: fmt.Sprintf("invalid size %dx%d of metatile %q", width, height, name)}
	}

	src := anchor.SourceRegion
	src.W = width * tileW
	src.H = height * tileH

	shapes := make([]entity.Rect, 0, width*height*len(anchor.CollisionShapes))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for _, r := range anchor.CollisionShapes {
				shapes = append(shapes, r.Translate(x*tileW, y*tileH))
			}
		}
	}

	return entity.MetaTileInfo{
		Name:            name,
		Width:           width,
		Height:          height,
		SourceRegion:    src,
		CollisionShapes: shapes,
	}, nil
}

func (l *Loader) parseCells(m *tiled.Map) ([]entity.Cell, error) {
	layer, err := l.findTileLayer(m)
	if err != nil {
		return nil, err
	}

	if m.Width <= 0 || m.Height <= 0 {
		return nil, &entity.MapFormatError{Reason: fmt.Sprintf("invalid map dimensions %dx%d", m.Width, m.Height)}
	}
	if len(layer.Tiles) != m.Width*m.Height {
		return nil, &entity.MapFormatError{Reason: fmt.Sprintf("expected %d tiles, got %d", m.Width*m.Height, len(layer.Tiles))}
	}

	cells := make([]entity.Cell, len(layer.Tiles))
	for i, t := range layer.Tiles {
		if t == nil || t.IsNil() || t.Tileset == nil {
			continue
		}

		var flags entity.Cell
		if t.HorizontalFlip {
			flags |= entity.FlipHorizontal
		}
		if t.VerticalFlip {
			flags |= entity.FlipVertical
		}
		if t.DiagonalFlip {
			flags |= entity.FlipDiagonal
		}
		cells[i] = entity.NewCell(entity.TileTypeID(t.ID+t.Tileset.FirstGID), flags)
	}

	return cells, nil
}

func (l *Loader) findTileLayer(m *tiled.Map) (*tiled.Layer, error) {
	if len(m.Layers) == 0 {
		return nil, &entity.MapFormatError{Reason: "no tile layer"}
	}
	if l.tileLayer == "" {
		return m.Layers[0], nil
	}
	for _, layer := range m.Layers {
		if layer.Name == l.tileLayer {
			return layer, nil
		}
	}
	return nil, &entity.MapFormatError{Reason: fmt.Sprintf("tile layer %q not found", l.tileLayer)}
}

func (l *Loader) parseObjects(m *tiled.Map, level *entity.Level) error {
	var group *tiled.ObjectGroup
	for _, og := range m.ObjectGroups {
		if og.Name != l.objectLayer {
			continue
		}
		if group != nil {
			return &entity.MapFormatError{Reason: fmt.Sprintf("duplicate object layer %q", l.objectLayer)}
		}
		group = og
	}
	if group == nil {
		return &entity.MapFormatError{Reason: fmt.Sprintf("object layer %q not found", l.objectLayer)}
	}

	spawns := 0
	for _, o := range group.Objects {
		typeName := o.Class
		if typeName == "" {
			typeName = o.Type //nolint:staticcheck // TMX uses type= attribute
		}

		kind, ok := entity.ParseObjectKind(typeName)
		if !ok {
			warning := &entity.UnknownObjectTypeWarning{Type: typeName, ID: o.ID}
			level.Warnings = append(level.Warnings, warning)
			l.logger.Warn("skipping object", zap.Error(warning))
			continue
		}
		if kind == entity.PlayerSpawn {
			spawns++
		}

		level.Objects = append(level.Objects, entity.PlacedObject{
			ID:   o.ID,
			Kind: kind,
			Rect: entity.Rect{X: int(o.X), Y: int(o.Y), W: int(o.Width), H: int(o.Height)},
		})
	}

	switch {
	case spawns == 0:
		return &entity.RequiredObjectNotFoundError{Kind: entity.PlayerSpawn}
	case spawns > 1:
		return &entity.MapFormatError{Reason: fmt.Sprintf("%d player starts, expected one", spawns)}
	}
	return nil
}

// isSet interprets a property value as a flag
func isSet(v string) bool {
	return v != "" && v != "false" && v != "0"
}
