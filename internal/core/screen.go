package core

import (
	"image"
)

// Cell is one terminal character showing two vertically stacked pixels:
// Top as the foreground of an upper half block, Bottom as its background.
type Cell struct {
	Top    Color
	Bottom Color
}

// Screen is a 2D buffer of half-block cells. It decouples the pixel frame
// from the terminal so the platform layer only has to style runs of cells.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a screen of width x height cells, covering
// width x 2*height pixels.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// PixelSize returns the pixel area the screen covers.
func (s *Screen) PixelSize() (w, h int) {
	return s.width, s.height * 2
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	old := s.cells
	oldW, oldH := s.width, s.height
	s.width, s.height = width, height
	s.allocate()

	for y := range min(oldH, height) {
		copy(s.cells[y], old[y][:min(oldW, width)])
	}
}

// Clear fills every cell with c.
func (s *Screen) Clear(c Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Top: c, Bottom: c}
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the cell at the given position, or the zero cell when out of
// bounds.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{}
	}
	return s.cells[y][x]
}

// Paint copies img onto the screen, two pixel rows per cell row. img should
// already be sized to PixelSize; pixels outside it leave cells untouched.
func (s *Screen) Paint(img image.Image) {
	b := img.Bounds()
	for y := range s.height {
		py := b.Min.Y + 2*y
		if py >= b.Max.Y {
			return
		}
		for x := range s.width {
			px := b.Min.X + x
			if px >= b.Max.X {
				break
			}
			top := FromColor(img.At(px, py))
			bottom := top
			if py+1 < b.Max.Y {
				bottom = FromColor(img.At(px, py+1))
			}
			s.cells[y][x] = Cell{Top: top, Bottom: bottom}
		}
	}
}
