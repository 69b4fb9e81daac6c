package ui

import "github.com/garaekz/tuigfx/glyph"

// Segment describes one slot in a Cols/Rows split: either a fixed size, or
// the (at most one) wildcard slot that soaks up whatever space is left.
type Segment struct {
	Size uint
	Star bool
}

// Fixed is a segment of the given size.
func Fixed(n uint) Segment { return Segment{Size: n} }

// Star is the wildcard segment: it expands to use whatever space remains
// after every Fixed segment and every separator has been accounted for.
var Star = Segment{Star: true}

// Splitter carves a Region into child Regions. The built-in Cols and Rows
// below split along one axis; callers needing other arrangements (e.g. a
// grid) can compose them or implement Splitter directly.
type Splitter interface {
	// Split divides r into child regions. If there isn't enough space to
	// satisfy every fixed segment and separator, it returns the original
	// region unchanged alongside an error, so the caller can recover (e.g.
	// fall back to a simpler layout) instead of panicking.
	Split(r Region) ([]Region, error)
}

// Cols splits a Region into vertical columns, left to right.
type Cols struct {
	Pre  string
	Segs []Segment
	Seps []string
}

// NewCols builds a Cols splitter. seps, if non-nil, must have one entry per
// segment (the separator drawn immediately after that segment); a nil seps
// means no separators at all.
func NewCols(pre string, segs []Segment, seps []string) Cols {
	return Cols{Pre: pre, Segs: segs, Seps: seps}
}

func (c Cols) Split(r Region) ([]Region, error) { return splitAlong(r, c.Pre, c.Segs, c.Seps, true) }

// Rows splits a Region into horizontal rows, top to bottom.
type Rows struct {
	Pre  string
	Segs []Segment
	Seps []string
}

func NewRows(pre string, segs []Segment, seps []string) Rows {
	return Rows{Pre: pre, Segs: segs, Seps: seps}
}

func (rw Rows) Split(r Region) ([]Region, error) { return splitAlong(r, rw.Pre, rw.Segs, rw.Seps, false) }

func splitAlong(parent Region, pre string, segs []Segment, seps []string, cols bool) ([]Region, error) {
	total := uint(len([]rune(pre)))
	for _, s := range segs {
		if !s.Star {
			total += s.Size
		}
	}
	for _, s := range seps {
		total += uint(len([]rune(s)))
	}

	avail := parent.Size().X
	if !cols {
		avail = parent.Size().Y
	}
	if total > avail {
		return nil, &SplitError{Original: parent}
	}
	starWidth := avail - total

	cur := parent
	fillSep := func(sep string) {
		if sep == "" {
			return
		}
		n := uint(len([]rune(sep)))
		var band Region
		if cols {
			band = cur.SplitLeftMut(n)
		} else {
			band = cur.SplitTopMut(n)
		}
		cells := []rune(sep)
		rows := band.Size().Y
		for y := uint(0); y < rows; y++ {
			row, ok := band.view.Row(y)
			if !ok {
				continue
			}
			for x := range row {
				row[x] = glyph.Cell{Ch: cells[x%len(cells)], Fmt: glyph.None}
			}
		}
	}

	fillSep(pre)

	out := make([]Region, len(segs))
	for i, seg := range segs {
		width := seg.Size
		if seg.Star {
			width = starWidth
		}
		var piece Region
		if width == 0 {
			piece = EmptyRegion(parent.input)
		} else if cols {
			piece = cur.SplitLeftMut(width)
		} else {
			piece = cur.SplitTopMut(width)
		}
		out[i] = piece
		if i < len(seps) {
			fillSep(seps[i])
		}
	}
	return out, nil
}

// SplitError is returned by a Splitter when there isn't enough room for
// every fixed segment and separator. Original holds the region exactly as
// it was passed in, unmodified, so the caller can fall back to a simpler
// layout instead of losing the region entirely.
type SplitError struct{ Original Region }

func (e *SplitError) Error() string {
	return "ui: not enough space for the requested split"
}
