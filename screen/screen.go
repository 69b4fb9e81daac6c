// Package screen implements the character-grid framebuffer that every
// rendered frame is assembled into before an IO backend draws it.
package screen

import (
	"github.com/garaekz/tuigfx/glyph"
	"github.com/garaekz/tuigfx/xy"
)

// Screen owns a contiguous, row-major buffer of cells sized width*height.
// Rendering into a Screen first and drawing the whole thing at once (rather
// than writing straight to the terminal) avoids flicker and lets a frame be
// assembled from many independent writers before anything hits the wire.
type Screen struct {
	cells []glyph.Cell
	size  xy.XY
}

// New allocates a Screen of the given size, filled with blank cells.
func New(size xy.XY) *Screen {
	s := &Screen{}
	s.Resize(size)
	return s
}

// Size reports the screen's current width and height, in cells.
func (s *Screen) Size() xy.XY { return s.size }

// Cells returns the full row-major cell buffer. The slice aliases the
// screen's own storage; callers that need to keep it past the next mutating
// call should copy it.
func (s *Screen) Cells() []glyph.Cell { return s.cells }

// Clear resets every cell to blank without changing the screen's size.
func (s *Screen) Clear() { s.Resize(s.size) }

// Resize changes the screen's dimensions and clears its contents. The
// backing slice is only reallocated when growing; shrinking truncates it in
// place so a later grow can reuse the capacity.
func (s *Screen) Resize(size xy.XY) {
	n := int(size.X * size.Y)
	if cap(s.cells) < n {
		s.cells = make([]glyph.Cell, n)
	} else {
		s.cells = s.cells[:n]
	}
	for i := range s.cells {
		s.cells[i] = glyph.Blank
	}
	s.size = size
}

// Row returns the width-long slice of cells making up row i. It panics if i
// is out of range, matching the index-operator style used elsewhere in this
// package.
func (s *Screen) Row(i int) []glyph.Cell {
	start := i * int(s.size.X)
	end := start + int(s.size.X)
	return s.cells[start:end]
}

// Rows returns every row in order, top to bottom.
func (s *Screen) Rows() [][]glyph.Cell {
	rows := make([][]glyph.Cell, s.size.Y)
	for i := range rows {
		rows[i] = s.Row(i)
	}
	return rows
}

// Write paints a sequence of text runs onto the screen starting at pos,
// advancing one cell per rune. It does not wrap or otherwise interpret
// newlines -- that's the Textbox widget's job.
func (s *Screen) Write(pos xy.XY, runs []glyph.Text) {
	x, y := pos.X, pos.Y
	if int(y) >= len(s.Rows()) {
		return
	}
	row := s.Row(int(y))
	for _, run := range runs {
		for _, r := range run.Str {
			if int(x) >= len(row) {
				return
			}
			row[x] = glyph.Cell{Ch: r, Fmt: run.Fmt}
			x++
		}
	}
}
