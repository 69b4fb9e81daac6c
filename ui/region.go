package ui

import (
	"github.com/garaekz/tuigfx/glyph"
	"github.com/garaekz/tuigfx/screen"
	"github.com/garaekz/tuigfx/xy"
)

// Region is something you can attach a widget to. You start with a Region
// covering the whole screen and carrying one input event, split it with a
// Splitter to get child Regions, and keep splitting until you've got your
// whole layout. Splitting never lets two live Regions touch the same cell.
type Region struct {
	view   ScreenView
	input  Action
	bounds Bounds
}

// NewRegion creates a Region covering the entire screen, carrying input.
// This is normally the root of a frame's layout.
func NewRegion(scr *screen.Screen, input Action) Region {
	b := Bounds{Size: scr.Size()}
	return Region{view: newView(scr, b), input: input, bounds: b}
}

// EmptyRegion carries input but covers no screen space. It's useful as the
// placeholder a Splitter returns for a zero-width/zero-height segment.
func EmptyRegion(input Action) Region {
	return Region{view: EmptyView(), input: input, bounds: EmptyBounds()}
}

// Size reports this region's width and height.
func (r Region) Size() xy.XY { return r.bounds.Size }

// Bounds reports this region's position and size within its screen.
func (r Region) Bounds() Bounds { return r.bounds }

// Input returns the event this region (or its slice of it) was given.
func (r Region) Input() Action { return r.input }

// View exposes this region's underlying ScreenView, for attachments that
// need a custom-configured Textbox/TextInput rather than Region.Text's
// default layout.
func (r Region) View() ScreenView { return r.view }

func (r Region) splitOff(chunkB, restB Bounds) (chunk, rest Region) {
	chunk = Region{view: newView(r.view.scr, chunkB), input: chunkB.Filter(r.input), bounds: chunkB}
	rest = Region{view: newView(r.view.scr, restB), input: restB.Filter(r.input), bounds: restB}
	return
}

// SplitLeft consumes this region and returns (left chunk, remainder).
func (r Region) SplitLeft(amt uint) (Region, Region) {
	chunkB, restB := r.bounds.SplitLeft(amt)
	return r.splitOff(chunkB, restB)
}

// SplitLeftMut peels the left chunk off in place, leaving the receiver as
// the remainder, and returns the peeled-off chunk.
func (r *Region) SplitLeftMut(amt uint) Region {
	chunk, rest := r.SplitLeft(amt)
	*r = rest
	return chunk
}

// SplitRight consumes this region and returns (right chunk, remainder).
func (r Region) SplitRight(amt uint) (Region, Region) {
	chunkB, restB := r.bounds.SplitRight(amt)
	return r.splitOff(chunkB, restB)
}

func (r *Region) SplitRightMut(amt uint) Region {
	chunk, rest := r.SplitRight(amt)
	*r = rest
	return chunk
}

// SplitTop consumes this region and returns (top chunk, remainder).
func (r Region) SplitTop(amt uint) (Region, Region) {
	chunkB, restB := r.bounds.SplitTop(amt)
	return r.splitOff(chunkB, restB)
}

func (r *Region) SplitTopMut(amt uint) Region {
	chunk, rest := r.SplitTop(amt)
	*r = rest
	return chunk
}

// SplitBottom consumes this region and returns (bottom chunk, remainder).
func (r Region) SplitBottom(amt uint) (Region, Region) {
	chunkB, restB := r.bounds.SplitBottom(amt)
	return r.splitOff(chunkB, restB)
}

func (r *Region) SplitBottomMut(amt uint) Region {
	chunk, rest := r.SplitBottom(amt)
	*r = rest
	return chunk
}

// Split hands this region to a Splitter, returning whatever arrangement of
// child regions it produces.
func (r Region) Split(s Splitter) ([]Region, error) {
	return s.Split(r)
}

// Fill paints every cell of this region with c.
func (r Region) Fill(c glyph.Cell) { r.view.Fill(c) }

// Text draws a sequence of runs into this region using default Textbox
// settings (no scroll, no indent) and reports back how the text laid out.
func (r Region) Text(runs []glyph.Text) TextboxData {
	return NewTextbox(runs).Render(r.view)
}
