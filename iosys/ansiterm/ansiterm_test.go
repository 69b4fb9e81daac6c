package ansiterm

import (
	"strings"
	"testing"

	"github.com/garaekz/tuigfx/glyph"
	"github.com/garaekz/tuigfx/ui"
)

func TestSGRDefaultFormatIsBareReset(t *testing.T) {
	if got := sgr(glyph.None); got != "\033[0m" {
		t.Fatalf("sgr(None) = %q, want bare reset", got)
	}
}

func TestSGRCombinesAttributesAndColors(t *testing.T) {
	f := glyph.Format{Fg: glyph.Red, Bg: glyph.Blue, Bold: true}
	got := sgr(f)
	for _, want := range []string{"0", "1", "31", "44"} {
		if !strings.Contains(got, want) {
			t.Fatalf("sgr(%+v) = %q, missing code %q", f, got, want)
		}
	}
}

func TestDecodeRegularKeys(t *testing.T) {
	cases := map[byte]ui.Action{
		'\r': ui.KeyPress(ui.Enter),
		'\t': ui.KeyPress(ui.Tab),
		127:  ui.KeyPress(ui.Backspace),
	}
	for b, want := range cases {
		if got := decodeRegular(b); got != want {
			t.Fatalf("decodeRegular(%d) = %+v, want %+v", b, got, want)
		}
	}
}

func TestDecodeRegularPrintableChar(t *testing.T) {
	got := decodeRegular('x')
	want := ui.KeyPress(ui.Char('x'))
	if got != want {
		t.Fatalf("decodeRegular('x') = %+v, want %+v", got, want)
	}
}

func TestDecodeCSIArrowsAndNavigation(t *testing.T) {
	cases := map[string]ui.Action{
		"A": ui.KeyPress(ui.Up),
		"B": ui.KeyPress(ui.Down),
		"C": ui.KeyPress(ui.Right),
		"D": ui.KeyPress(ui.Left),
		"H": ui.KeyPress(ui.Home),
		"F": ui.KeyPress(ui.End),
		"3~": ui.KeyPress(ui.Delete),
	}
	for seq, want := range cases {
		if got := decodeCSISeq(seq); got != want {
			t.Fatalf("decodeCSISeq(%q) = %+v, want %+v", seq, got, want)
		}
	}
}

func TestDecodeCSIUnknownSequenceBecomesUnknownAction(t *testing.T) {
	got := decodeCSISeq("99z")
	if got.Kind != ui.ActionUnknown || got.Text != "99z" {
		t.Fatalf("decodeCSISeq(unknown) = %+v, want Unknown action", got)
	}
}

func TestMouseButtonMapping(t *testing.T) {
	if mouseButton(0) != ui.MouseLeft {
		t.Fatal("button code 0 should map to MouseLeft")
	}
	if mouseButton(1) != ui.MouseMiddle {
		t.Fatal("button code 1 should map to MouseMiddle")
	}
	if mouseButton(2) != ui.MouseRight {
		t.Fatal("button code 2 should map to MouseRight")
	}
}
