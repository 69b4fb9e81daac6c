package ui

import (
	"testing"

	"github.com/garaekz/tuigfx/xy"
)

func TestBoundsContains(t *testing.T) {
	b := NewBounds(2, 2, 4, 4)
	if !b.Contains(xy.New(2, 2)) || !b.Contains(xy.New(5, 5)) {
		t.Fatalf("expected corners to be contained")
	}
	if b.Contains(xy.New(6, 2)) || b.Contains(xy.New(1, 2)) {
		t.Fatalf("expected out-of-range points to be excluded")
	}
}

func TestBoundsSplitLeftRight(t *testing.T) {
	b := NewBounds(0, 0, 10, 5)
	left, rest := b.SplitLeft(3)
	if left != NewBounds(0, 0, 3, 5) || rest != NewBounds(3, 0, 7, 5) {
		t.Fatalf("SplitLeft: got %+v / %+v", left, rest)
	}
	right, rest2 := b.SplitRight(3)
	if right != NewBounds(7, 0, 3, 5) || rest2 != NewBounds(0, 0, 7, 5) {
		t.Fatalf("SplitRight: got %+v / %+v", right, rest2)
	}
}

func TestBoundsFilterDropsOutOfBoundsMouse(t *testing.T) {
	b := NewBounds(0, 0, 5, 5)
	inside := b.Filter(MouseMove(xy.New(2, 2)))
	if inside.Kind != ActionMouseMove {
		t.Fatalf("expected mouse move to pass through, got %+v", inside)
	}
	outside := b.Filter(MouseMove(xy.New(9, 9)))
	if outside.Kind != ActionRedraw {
		t.Fatalf("expected out-of-bounds mouse to become Redraw, got %+v", outside)
	}
	key := b.Filter(KeyPress(Char('a')))
	if key.Kind != ActionKeyPress {
		t.Fatalf("expected key events to pass through unconditionally, got %+v", key)
	}
}
