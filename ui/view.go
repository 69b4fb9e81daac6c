package ui

import (
	"github.com/garaekz/tuigfx/glyph"
	"github.com/garaekz/tuigfx/screen"
	"github.com/garaekz/tuigfx/xy"
)

// ScreenView is a bounded mutable window onto a Screen's cell grid. Rather
// than a raw pointer into the screen's buffer, it holds the Screen itself
// plus a Bounds and computes offsets through the screen's own row-major
// indexing on every access, at the cost of an extra bounds check per
// access. Disjointness between sibling views is still guaranteed
// structurally: every split produces Bounds that are pairwise non-
// overlapping subsets of the parent's.
type ScreenView struct {
	scr    *screen.Screen
	bounds Bounds
}

// EmptyView covers no space on any screen. As many of these can exist at
// once as you like, since nothing can be read or written through one.
func EmptyView() ScreenView { return ScreenView{} }

func newView(scr *screen.Screen, bounds Bounds) ScreenView {
	return ScreenView{scr: scr, bounds: bounds}
}

// Size reports this view's width and height.
func (v ScreenView) Size() xy.XY { return v.bounds.Size }

// Row returns the width-wide slice of cells making up row idx of this view,
// aliasing the underlying Screen's storage. The second return value is
// false if idx is out of range or the view is empty.
func (v ScreenView) Row(idx uint) ([]glyph.Cell, bool) {
	if v.scr == nil || idx >= v.bounds.Size.Y {
		return nil, false
	}
	row := v.scr.Row(int(v.bounds.Pos.Y + idx))
	lo := v.bounds.Pos.X
	hi := lo + v.bounds.Size.X
	return row[lo:hi], true
}

// Cell returns a pointer to the cell at pos within this view, or false if
// pos is out of range.
func (v ScreenView) Cell(pos xy.XY) (*glyph.Cell, bool) {
	row, ok := v.Row(pos.Y)
	if !ok || pos.X >= v.bounds.Size.X {
		return nil, false
	}
	return &row[pos.X], true
}

// Fill paints every cell in this view with c.
func (v ScreenView) Fill(c glyph.Cell) {
	for y := uint(0); y < v.bounds.Size.Y; y++ {
		row, _ := v.Row(y)
		for i := range row {
			row[i] = c
		}
	}
}
