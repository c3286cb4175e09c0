// Package render draws the fixed low-resolution screen onto the window.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/planetonomy/internal/domain/entity"
)

// Fit computes the largest integer scale at which a screenW x screenH picture
// fits into the target, and the offset that centers it. Scale is at least 1.
func Fit(targetW, targetH, screenW, screenH int) (scale, offsetX, offsetY int) {
	if screenW <= 0 || screenH <= 0 {
		return 1, 0, 0
	}
	scale = max(1, min(targetW/screenW, targetH/screenH))
	offsetX = (targetW - screenW*scale) / 2
	offsetY = (targetH - screenH*scale) / 2
	return scale, offsetX, offsetY
}

// Painter draws atlas regions and rectangles in low-resolution coordinates
type Painter struct {
	atlas            *ebiten.Image
	screenW, screenH int

	scale            int
	offsetX, offsetY int

	target *ebiten.Image
}

// NewPainter creates a painter for a screenW x screenH picture.
// atlas may be nil; Copy is then a no-op and callers fall back to FillRect.
func NewPainter(atlas *ebiten.Image, screenW, screenH int) *Painter {
	p := &Painter{
		atlas:   atlas,
		screenW: screenW,
		screenH: screenH,
	}
	p.UpdateSize(screenW, screenH)
	return p
}

// UpdateSize recomputes scale and offset for a target of the given size
func (p *Painter) UpdateSize(targetW, targetH int) {
	p.scale, p.offsetX, p.offsetY = Fit(targetW, targetH, p.screenW, p.screenH)
}

// Scale returns the current integer scale factor
func (p *Painter) Scale() int { return p.scale }

// Offset returns the current top-left corner of the picture in the target
func (p *Painter) Offset() (int, int) { return p.offsetX, p.offsetY }

// ScreenSize returns the low-resolution picture size
func (p *Painter) ScreenSize() (int, int) { return p.screenW, p.screenH }

// HasAtlas reports whether sprites can be drawn
func (p *Painter) HasAtlas() bool { return p.atlas != nil }

// ToTarget converts a low-resolution point to target coordinates
func (p *Painter) ToTarget(x, y int) (float64, float64) {
	return float64(p.offsetX + x*p.scale), float64(p.offsetY + y*p.scale)
}

// Begin starts a frame on target, fitting the picture to the target size.
// The border is filled with border color and the picture area with background.
func (p *Painter) Begin(target *ebiten.Image, border, background color.Color) {
	b := target.Bounds()
	p.UpdateSize(b.Dx(), b.Dy())
	p.target = target
	target.Fill(border)
	p.FillRect(entity.Rect{W: p.screenW, H: p.screenH}, background)
}

// FillRect fills a low-resolution rectangle
func (p *Painter) FillRect(r entity.Rect, c color.Color) {
	if p.target == nil || r.Empty() {
		return
	}
	x, y := p.ToTarget(r.X, r.Y)
	s := float64(p.scale)
	ebitenutil.DrawRect(p.target, x, y, float64(r.W)*s, float64(r.H)*s, c)
}

// Copy draws the atlas region src with its top-left corner at (dstX, dstY)
func (p *Painter) Copy(src entity.Rect, dstX, dstY int) {
	p.CopyTransformed(src, dstX, dstY, entity.RenderTransform{})
}

// CopyTransformed draws the atlas region src rotated and mirrored around its
// center, then placed at (dstX, dstY).
func (p *Painter) CopyTransformed(src entity.Rect, dstX, dstY int, tr entity.RenderTransform) {
	if p.target == nil || p.atlas == nil || src.Empty() {
		return
	}
	sub := p.atlas.SubImage(src.Image()).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM = transformGeoM(src.W, src.H, tr)
	op.GeoM.Scale(float64(p.scale), float64(p.scale))
	x, y := p.ToTarget(dstX, dstY)
	op.GeoM.Translate(x, y)
	p.target.DrawImage(sub, op)
}

// transformGeoM mirrors and rotates a w x h image around its center
// keeping it within [0,w)x[0,h)
func transformGeoM(w, h int, tr entity.RenderTransform) ebiten.GeoM {
	var m ebiten.GeoM
	cx, cy := float64(w)/2, float64(h)/2
	m.Translate(-cx, -cy)

	sx, sy := 1.0, 1.0
	if tr.FlipH {
		sx = -1
	}
	if tr.FlipV {
		sy = -1
	}
	m.Scale(sx, sy)

	if tr.Angle != 0 {
		m.Rotate(tr.Angle * math.Pi / 180)
	}
	m.Translate(cx, cy)
	return m
}

// LoadAtlas decodes a PNG atlas from fsys
func LoadAtlas(fsys fs.FS, path string) (*ebiten.Image, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode atlas %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}
