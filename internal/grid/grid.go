// Package grid composes a batch of tiles into a single frame.
package grid

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/artgrid/internal/palette"
	"github.com/vovakirdan/artgrid/internal/pattern"
	"github.com/vovakirdan/artgrid/internal/tiles"
)

// DefaultTileSize is the edge length of a tile in pixels.
const DefaultTileSize = 320

// Layout positions tiles row-major on a canvas.
type Layout struct {
	Cols     int // tiles per row; values below 1 mean 1
	TileSize int // tile edge in pixels
	Gap      int // pixels between tiles
	Padding  int // pixels around the whole grid
}

// DefaultLayout returns a layout with cols columns of full-size tiles.
func DefaultLayout(cols int) Layout {
	return Layout{Cols: cols, TileSize: DefaultTileSize, Gap: 8, Padding: 16}
}

func (l Layout) cols() int {
	if l.Cols < 1 {
		return 1
	}
	return l.Cols
}

// Rows returns the number of rows needed for count tiles.
func (l Layout) Rows(count int) int {
	if count <= 0 {
		return 0
	}
	c := l.cols()
	return (count + c - 1) / c
}

// Size returns the canvas size for count tiles.
func (l Layout) Size(count int) (w, h int) {
	cols := min(l.cols(), max(count, 1))
	rows := max(l.Rows(count), 1)
	w = 2*l.Padding + cols*l.TileSize + (cols-1)*l.Gap
	h = 2*l.Padding + rows*l.TileSize + (rows-1)*l.Gap
	return w, h
}

// TileRect returns the bounds of tile i.
func (l Layout) TileRect(i int) image.Rectangle {
	c := l.cols()
	col, row := i%c, i/c
	x := l.Padding + col*(l.TileSize+l.Gap)
	y := l.Padding + row*(l.TileSize+l.Gap)
	return image.Rect(x, y, x+l.TileSize, y+l.TileSize)
}

// Renderer draws tile batches. It reuses one drawing surface across tiles
// and is not safe for concurrent use.
type Renderer struct {
	layout  Layout
	surface *gg.Context
}

// NewRenderer returns a renderer for layout.
func NewRenderer(layout Layout) *Renderer {
	if layout.TileSize <= 0 {
		layout.TileSize = DefaultTileSize
	}
	return &Renderer{layout: layout}
}

// Layout returns the renderer's layout.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// SetLayout replaces the layout, dropping the cached surface if the tile
// size changed.
func (r *Renderer) SetLayout(layout Layout) {
	if layout.TileSize <= 0 {
		layout.TileSize = DefaultTileSize
	}
	if layout.TileSize != r.layout.TileSize {
		r.surface = nil
	}
	r.layout = layout
}

func (r *Renderer) tileSurface() *gg.Context {
	if r.surface == nil {
		r.surface = gg.NewContext(r.layout.TileSize, r.layout.TileSize)
	}
	return r.surface
}

// Frame renders specs at time t into a new image.
func (r *Renderer) Frame(specs []tiles.Spec, t float64) *image.RGBA {
	w, h := r.layout.Size(len(specs))
	frame := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(Backdrop(specs)), image.Point{}, draw.Src)

	dc := r.tileSurface()
	size := float64(r.layout.TileSize)
	for i, spec := range specs {
		pattern.Draw(dc, size, size, spec.Type, spec.RenderOptions(t))
		draw.Draw(frame, r.layout.TileRect(i), dc.Image(), image.Point{}, draw.Src)
	}
	return frame
}

// Backdrop returns the colour behind the tiles: the darkened background of
// the batch palette.
func Backdrop(specs []tiles.Spec) color.NRGBA {
	name := palette.Default
	if len(specs) > 0 {
		name = specs[0].Palette
	}
	bg := palette.Lookup(name).Background()
	return color.NRGBA{R: bg.R / 2, G: bg.G / 2, B: bg.B / 2, A: 255}
}

// Tile renders a single spec at time t with the given edge length.
func Tile(spec tiles.Spec, t float64, size int) *image.RGBA {
	return pattern.Render(spec.Type, size, size, spec.RenderOptions(t))
}

// Fit resamples src to exactly w x h pixels.
func Fit(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
