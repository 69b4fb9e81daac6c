// Package xy provides the unsigned 2-D coordinate/size type used throughout
// the screen, layout, and input packages.
package xy

import "fmt"

// XY is an unsigned 2-D coordinate or size. Both fields are measured in
// character cells.
type XY struct {
	X, Y uint
}

// New is a small convenience constructor, mostly so call sites read
// `xy.New(w, h)` instead of a bare struct literal.
func New(x, y uint) XY { return XY{X: x, Y: y} }

func (a XY) String() string {
	return fmt.Sprintf("(%d, %d)", a.X, a.Y)
}

// Add returns the componentwise sum of a and b.
func (a XY) Add(b XY) XY { return XY{a.X + b.X, a.Y + b.Y} }

// Sub returns the componentwise difference a-b. X and Y are unsigned, so a
// component that underflows wraps around; use SubClamp to saturate at zero
// instead.
func (a XY) Sub(b XY) XY { return XY{a.X - b.X, a.Y - b.Y} }

// SubClamp is Sub but saturates each component at 0 instead of underflowing.
func (a XY) SubClamp(b XY) XY {
	return XY{satSub(a.X, b.X), satSub(a.Y, b.Y)}
}

func satSub(a, b uint) uint {
	if b > a {
		return 0
	}
	return a - b
}

// Mul returns the componentwise product of a and b.
func (a XY) Mul(b XY) XY { return XY{a.X * b.X, a.Y * b.Y} }

// Div returns the componentwise quotient a/b.
func (a XY) Div(b XY) XY { return XY{a.X / b.X, a.Y / b.Y} }

// Rem returns the componentwise remainder a%b.
func (a XY) Rem(b XY) XY { return XY{a.X % b.X, a.Y % b.Y} }

// AddScalar, SubScalar, MulScalar, DivScalar apply the same scalar to both
// components.
func (a XY) AddScalar(s uint) XY { return XY{a.X + s, a.Y + s} }
func (a XY) SubScalar(s uint) XY { return XY{a.X - s, a.Y - s} }
func (a XY) MulScalar(s uint) XY { return XY{a.X * s, a.Y * s} }
func (a XY) DivScalar(s uint) XY { return XY{a.X / s, a.Y / s} }

// Pair is the (x, y) scalar-pair overload of the componentwise operators.
func (a XY) AddPair(x, y uint) XY { return XY{a.X + x, a.Y + y} }
func (a XY) SubPair(x, y uint) XY { return XY{a.X - x, a.Y - y} }

// LessEq reports whether a is componentwise <= b. The second return value
// is false when a and b are incomparable (neither dominates the other),
// since XY only has a partial order -- Go has no operator for this, so the
// two-result form carries the "comparable at all" check alongside the
// ordering result.
func (a XY) LessEq(b XY) (le bool, comparable bool) {
	if a.X <= b.X && a.Y <= b.Y {
		return true, true
	}
	if a.X >= b.X && a.Y >= b.Y {
		return false, true
	}
	return false, false
}

// Equal reports exact componentwise equality.
func (a XY) Equal(b XY) bool { return a.X == b.X && a.Y == b.Y }

// Clamp clamps a componentwise into the [tl, br] box.
func (a XY) Clamp(tl, br XY) XY {
	return XY{
		clampOne(a.X, tl.X, br.X),
		clampOne(a.Y, tl.Y, br.Y),
	}
}

func clampOne(v, lo, hi uint) uint {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
