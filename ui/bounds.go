package ui

import "github.com/garaekz/tuigfx/xy"

// Bounds is a rectangular region of a Screen, in absolute screen
// coordinates. Every ScreenView and Region carries one.
type Bounds struct {
	Pos  xy.XY
	Size xy.XY
}

// NewBounds builds a Bounds from raw coordinates.
func NewBounds(x, y, w, h uint) Bounds {
	return Bounds{Pos: xy.New(x, y), Size: xy.New(w, h)}
}

// EmptyBounds covers no space at all.
func EmptyBounds() Bounds { return Bounds{} }

// Contains reports whether p falls within these bounds.
func (b Bounds) Contains(p xy.XY) bool {
	return p.X >= b.Pos.X && p.Y >= b.Pos.Y &&
		p.X < b.Pos.X+b.Size.X && p.Y < b.Pos.Y+b.Size.Y
}

// SplitLeft peels off a column of width amt (clamped to the available
// width) from the left edge, returning (peeled, remainder). Both keep this
// Bounds' full height.
func (b Bounds) SplitLeft(amt uint) (Bounds, Bounds) {
	if amt > b.Size.X {
		amt = b.Size.X
	}
	left := Bounds{Pos: b.Pos, Size: xy.New(amt, b.Size.Y)}
	rest := Bounds{Pos: b.Pos.AddPair(amt, 0), Size: xy.New(b.Size.X-amt, b.Size.Y)}
	return left, rest
}

// SplitRight peels off a column of width amt from the right edge.
func (b Bounds) SplitRight(amt uint) (Bounds, Bounds) {
	if amt > b.Size.X {
		amt = b.Size.X
	}
	right := Bounds{Pos: b.Pos.AddPair(b.Size.X-amt, 0), Size: xy.New(amt, b.Size.Y)}
	rest := Bounds{Pos: b.Pos, Size: xy.New(b.Size.X-amt, b.Size.Y)}
	return right, rest
}

// SplitTop peels off a row of height amt from the top edge.
func (b Bounds) SplitTop(amt uint) (Bounds, Bounds) {
	if amt > b.Size.Y {
		amt = b.Size.Y
	}
	top := Bounds{Pos: b.Pos, Size: xy.New(b.Size.X, amt)}
	rest := Bounds{Pos: b.Pos.AddPair(0, amt), Size: xy.New(b.Size.X, b.Size.Y-amt)}
	return top, rest
}

// SplitBottom peels off a row of height amt from the bottom edge.
func (b Bounds) SplitBottom(amt uint) (Bounds, Bounds) {
	if amt > b.Size.Y {
		amt = b.Size.Y
	}
	bottom := Bounds{Pos: b.Pos.AddPair(0, b.Size.Y-amt), Size: xy.New(b.Size.X, amt)}
	rest := Bounds{Pos: b.Pos, Size: xy.New(b.Size.X, b.Size.Y-amt)}
	return bottom, rest
}

// Filter adapts an Action for a child Bounds carved out of a parent region:
// non-positional actions (key events, redraw, lifecycle) pass through
// untouched, since every split child should still see them. A positional
// (mouse) action is only delivered to the child whose bounds contain it;
// elsewhere it's replaced with a neutral Redraw so the child isn't fed a
// coordinate meant for a sibling.
func (b Bounds) Filter(a Action) Action {
	pos, ok := a.Position()
	if !ok {
		return a
	}
	if !b.Contains(pos) {
		return Redraw()
	}
	return a
}
