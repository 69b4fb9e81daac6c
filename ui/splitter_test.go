package ui

import (
	"testing"

	"github.com/garaekz/tuigfx/screen"
	"github.com/garaekz/tuigfx/xy"
)

func newRootRegion(w, h uint) Region {
	sc := screen.New(xy.New(w, h))
	return NewRegion(sc, Redraw())
}

func TestColsPlainStarReturnsOriginal(t *testing.T) {
	r := newRootRegion(50, 50)
	out, err := r.Split(NewCols("", []Segment{Star}, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Bounds() != NewBounds(0, 0, 50, 50) {
		t.Fatalf("unexpected bounds: %+v", out)
	}
}

func TestColsSliceOffLeft(t *testing.T) {
	r := newRootRegion(50, 50)
	out, err := r.Split(NewCols("", []Segment{Fixed(5), Star}, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].Bounds() != NewBounds(0, 0, 5, 50) {
		t.Fatalf("left bounds: %+v", out[0].Bounds())
	}
	if out[1].Bounds() != NewBounds(5, 0, 45, 50) {
		t.Fatalf("rest bounds: %+v", out[1].Bounds())
	}
}

func TestColsSliceOffLeftWithPreseparator(t *testing.T) {
	r := newRootRegion(50, 50)
	out, err := r.Split(NewCols("~", []Segment{Fixed(5), Star}, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].Bounds() != NewBounds(1, 0, 5, 50) {
		t.Fatalf("left bounds: %+v", out[0].Bounds())
	}
	if out[1].Bounds() != NewBounds(6, 0, 44, 50) {
		t.Fatalf("rest bounds: %+v", out[1].Bounds())
	}
}

func TestRowsSliceOffTop(t *testing.T) {
	r := newRootRegion(20, 20)
	out, err := r.Split(NewRows("", []Segment{Fixed(3), Star}, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].Bounds() != NewBounds(0, 0, 20, 3) {
		t.Fatalf("top bounds: %+v", out[0].Bounds())
	}
	if out[1].Bounds() != NewBounds(0, 3, 20, 17) {
		t.Fatalf("rest bounds: %+v", out[1].Bounds())
	}
}

func TestSplitTooSmallReturnsOriginal(t *testing.T) {
	r := newRootRegion(5, 5)
	_, err := r.Split(NewCols("", []Segment{Fixed(10)}, nil))
	if err == nil {
		t.Fatalf("expected an error")
	}
	se, ok := err.(*SplitError)
	if !ok {
		t.Fatalf("expected *SplitError, got %T", err)
	}
	if se.Original.Bounds() != NewBounds(0, 0, 5, 5) {
		t.Fatalf("original region was modified: %+v", se.Original.Bounds())
	}
}

func TestSplitDisjointCoverage(t *testing.T) {
	r := newRootRegion(10, 4)
	out, err := r.Split(NewCols("", []Segment{Fixed(3), Star, Fixed(2)}, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := map[[2]uint]bool{}
	total := uint(0)
	for _, region := range out {
		b := region.Bounds()
		total += b.Size.X * b.Size.Y
		for x := b.Pos.X; x < b.Pos.X+b.Size.X; x++ {
			for y := b.Pos.Y; y < b.Pos.Y+b.Size.Y; y++ {
				key := [2]uint{x, y}
				if seen[key] {
					t.Fatalf("cell %v covered twice", key)
				}
				seen[key] = true
			}
		}
	}
	if total != 10*4 {
		t.Fatalf("expected full coverage of 40 cells, got %d", total)
	}
}
