package ui

import (
	"testing"
	"time"

	"github.com/garaekz/tuigfx/glyph"
	"github.com/garaekz/tuigfx/screen"
	"github.com/garaekz/tuigfx/xy"
)

func rowText(t *testing.T, sc *screen.Screen, y int, xStart, n int) string {
	t.Helper()
	row := sc.Row(y)
	out := make([]rune, n)
	for i := 0; i < n; i++ {
		out[i] = row[xStart+i].Ch
	}
	return string(out)
}

func TestTextboxBasicSingleLine(t *testing.T) {
	sc := screen.New(xy.New(50, 30))
	view := newView(sc, Bounds{Size: sc.Size()})
	res := NewTextbox(glyph.Build("bleh ", glyph.FgRed, "blah ", glyph.FgGreen, glyph.Underline, "bluh ", glyph.FgBlue, glyph.BgMagenta, "bloh ")).Render(view)
	if res.Height != 1 || res.Lines != 1 || res.Scroll != 0 {
		t.Fatalf("unexpected data: %+v", res)
	}
	if got := rowText(t, sc, 0, 0, 20); got != "bleh blah bluh bloh " {
		t.Fatalf("row mismatch: %q", got)
	}
	if sc.Row(0)[5].Fmt.Fg != glyph.Red {
		t.Fatalf("expected red at col 5")
	}
	if sc.Row(1)[0].Ch != ' ' {
		t.Fatalf("expected row 1 untouched")
	}
}

func TestTextboxWrapsWordsAndHyphenates(t *testing.T) {
	sc := screen.New(xy.New(50, 30))
	view := newView(sc, Bounds{Size: sc.Size()})
	res := NewTextbox(glyph.Build("these are some words which will eveeeentually be wrapped!")).
		Pos(xy.New(40, 0)).Width(10).Render(view)

	want := []string{
		"these are ",
		"some words",
		"which will",
		"eveeeentu-",
		"ally be   ",
		"wrapped!",
	}
	for i, w := range want {
		got := rowText(t, sc, i, 40, len(w))
		if got != w {
			t.Fatalf("row %d: got %q want %q", i, got, w)
		}
	}
	if res.Height != 6 || res.Lines != 6 || res.Scroll != 0 {
		t.Fatalf("unexpected data: %+v", res)
	}
}

func TestTextboxWrapCarriesFormatting(t *testing.T) {
	sc := screen.New(xy.New(50, 30))
	view := newView(sc, Bounds{Size: sc.Size()})
	NewTextbox(glyph.Build(
		"these are some words which will ", glyph.FgGreen, "eveeeentually", " be wrapped!",
	)).Pos(xy.New(40, 0)).Width(10).Render(view)

	// "eveeeentu-" on row 3 must be green, including the hyphen.
	row3 := sc.Row(3)
	for i := 40; i < 50; i++ {
		if row3[i].Fmt.Fg != glyph.Green {
			t.Fatalf("row 3 col %d: expected green, got %+v", i, row3[i].Fmt)
		}
	}
	// row 4 starts "ally" in green, then " be   " in default.
	row4 := sc.Row(4)
	for i := 40; i < 44; i++ {
		if row4[i].Fmt.Fg != glyph.Green {
			t.Fatalf("row 4 col %d: expected green, got %+v", i, row4[i].Fmt)
		}
	}
	for i := 44; i < 50; i++ {
		if row4[i].Fmt.Fg != glyph.Default {
			t.Fatalf("row 4 col %d: expected default fg, got %+v", i, row4[i].Fmt)
		}
	}
	if got := rowText(t, sc, 4, 40, 10); got != "ally be   " {
		t.Fatalf("row 4 text: got %q", got)
	}
}

// TestTextboxForcedBreakTwiceInOneChunk guards against a regression where a
// chunk starting mid-line (no leading space) that needs more than one
// consecutive forced (non-breakable) wrap within the same chunk would spin
// forever: a stale "was this a fresh line" flag, cached once per chunk
// instead of re-read every wrap iteration, made the second forced break
// believe it was still mid-line and fail to shrink the remaining text.
func TestTextboxForcedBreakTwiceInOneChunk(t *testing.T) {
	sc := screen.New(xy.New(50, 30))
	view := newView(sc, Bounds{Size: sc.Size()})
	done := make(chan TextboxData, 1)
	go func() {
		done <- NewTextbox(glyph.Build("ab", "cdefghij")).Width(5).Render(view)
	}()
	select {
	case res := <-done:
		want := []string{"ab", "cdef-", "ghij"}
		for i, w := range want {
			got := rowText(t, sc, i, 0, len(w))
			if got != w {
				t.Fatalf("row %d: got %q want %q", i, got, w)
			}
		}
		if res.Lines != 3 {
			t.Fatalf("unexpected line count: %+v", res)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Render did not terminate: forced-break wrap loop regressed")
	}
}

func TestTextboxSizeTruncates(t *testing.T) {
	sc := screen.New(xy.New(50, 30))
	view := newView(sc, Bounds{Size: sc.Size()})
	res := NewTextbox(glyph.Build("these are some words which will eveeeentually be wrapped!")).
		Pos(xy.New(40, 0)).Width(10).Height(3).Render(view)
	if res.Height != 3 || res.Lines != 6 || res.Scroll != 0 {
		t.Fatalf("unexpected data: %+v", res)
	}
	if sc.Row(3)[40].Ch != ' ' {
		t.Fatalf("expected row 3 untouched by a 3-high box")
	}
}

func TestTextboxScrollFromBottom(t *testing.T) {
	sc := screen.New(xy.New(50, 30))
	view := newView(sc, Bounds{Size: sc.Size()})
	res := NewTextbox(glyph.Build("these are some words which will eveeeentually be wrapped!")).
		Pos(xy.New(40, 0)).Width(10).Height(4).Scroll(1).ScrollFromBottom(true).Render(view)

	want := []string{
		"some words",
		"which will",
		"eveeeentu-",
		"ally be   ",
	}
	for i, w := range want {
		if got := rowText(t, sc, i, 40, len(w)); got != w {
			t.Fatalf("row %d: got %q want %q", i, got, w)
		}
	}
	if res.Height != 4 || res.Lines != 6 || res.Scroll != 1 {
		t.Fatalf("unexpected data: %+v", res)
	}
}

func TestTextboxParagraphBreakOnNewline(t *testing.T) {
	sc := screen.New(xy.New(20, 5))
	view := newView(sc, Bounds{Size: sc.Size()})
	res := NewTextbox(glyph.Build("first\nsecond")).Render(view)
	if res.Lines != 2 {
		t.Fatalf("expected 2 paragraphs/lines, got %d", res.Lines)
	}
	if got := rowText(t, sc, 0, 0, 5); got != "first" {
		t.Fatalf("row 0: got %q", got)
	}
	if got := rowText(t, sc, 1, 0, 6); got != "second" {
		t.Fatalf("row 1: got %q", got)
	}
}
