package ui

import (
	"testing"

	"github.com/garaekz/tuigfx/glyph"
	"github.com/garaekz/tuigfx/screen"
	"github.com/garaekz/tuigfx/xy"
)

func TestScreenViewCellInBounds(t *testing.T) {
	sc := screen.New(xy.New(5, 5))
	sc.Row(0)[0] = glyph.CellOf('~')
	v := newView(sc, NewBounds(0, 0, 5, 5))
	c, ok := v.Cell(xy.New(0, 0))
	if !ok || c.Ch != '~' {
		t.Fatalf("expected '~', got %+v ok=%v", c, ok)
	}
}

func TestScreenViewOffsetIntoParent(t *testing.T) {
	sc := screen.New(xy.New(10, 10))
	v := newView(sc, NewBounds(5, 5, 3, 3))
	v.Fill(glyph.CellOf('x'))
	if sc.Row(5)[5].Ch != 'x' {
		t.Fatalf("expected fill to land at the view's offset into the parent screen")
	}
	if sc.Row(0)[0].Ch != ' ' {
		t.Fatalf("expected cells outside the view to stay untouched")
	}
}

func TestEmptyViewToleratesAnyIndex(t *testing.T) {
	v := EmptyView()
	if v.Size() != (xy.XY{}) {
		t.Fatalf("expected zero size, got %v", v.Size())
	}
	if _, ok := v.Cell(xy.New(0, 0)); ok {
		t.Fatalf("expected empty view to report no cell")
	}
	if _, ok := v.Row(0); ok {
		t.Fatalf("expected empty view to report no row")
	}
	v.Fill(glyph.CellOf('!')) // must not panic
}
