package screen

import (
	"testing"

	"github.com/garaekz/tuigfx/glyph"
	"github.com/garaekz/tuigfx/xy"
)

func TestNewIsBlank(t *testing.T) {
	s := New(xy.New(3, 2))
	if s.Size() != xy.New(3, 2) {
		t.Fatalf("size: got %v", s.Size())
	}
	if len(s.Cells()) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(s.Cells()))
	}
	for _, c := range s.Cells() {
		if c != glyph.Blank {
			t.Fatalf("expected blank cell, got %+v", c)
		}
	}
}

func TestResizeGrowShrink(t *testing.T) {
	s := New(xy.New(2, 2))
	s.Row(0)[0] = glyph.CellOf('x')

	s.Resize(xy.New(4, 4))
	if len(s.Cells()) != 16 {
		t.Fatalf("expected 16 cells after grow, got %d", len(s.Cells()))
	}
	for _, c := range s.Cells() {
		if c != glyph.Blank {
			t.Fatalf("resize must clear, got %+v", c)
		}
	}

	s.Resize(xy.New(1, 1))
	if len(s.Cells()) != 1 {
		t.Fatalf("expected 1 cell after shrink, got %d", len(s.Cells()))
	}
}

func TestRowsInvariant(t *testing.T) {
	s := New(xy.New(5, 3))
	if len(s.Cells()) != 15 {
		t.Fatalf("cells.len() must equal size.x*size.y, got %d", len(s.Cells()))
	}
	rows := s.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if len(row) != 5 {
			t.Fatalf("expected row width 5, got %d", len(row))
		}
	}
}

func TestWriteAdvancesPerRune(t *testing.T) {
	s := New(xy.New(10, 1))
	s.Write(xy.New(2, 0), glyph.Build(glyph.FgRed, "hi"))
	row := s.Row(0)
	if row[2].Ch != 'h' || row[3].Ch != 'i' {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row[2].Fmt.Fg != glyph.Red {
		t.Fatalf("format not carried: %+v", row[2].Fmt)
	}
	if row[0].Ch != ' ' {
		t.Fatalf("expected untouched cells to stay blank")
	}
}

func TestClearResetsContents(t *testing.T) {
	s := New(xy.New(3, 1))
	s.Write(xy.New(0, 0), glyph.Build("abc"))
	s.Clear()
	for _, c := range s.Cells() {
		if c != glyph.Blank {
			t.Fatalf("Clear must blank all cells, got %+v", c)
		}
	}
}
