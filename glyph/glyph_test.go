package glyph

import "testing"

func TestFormatFluentSetters(t *testing.T) {
	txt := WithBold(WithFg(Of("hi"), Red))
	if txt.Fmt.Fg != Red || !txt.Fmt.Bold {
		t.Fatalf("unexpected format: %+v", txt.Fmt)
	}

	c := WithUnderline(WithBg(CellOf('x'), Blue))
	if c.Fmt.Bg != Blue || !c.Fmt.Underline {
		t.Fatalf("unexpected cell format: %+v", c.Fmt)
	}
}

func TestBlankCell(t *testing.T) {
	if Blank.Ch != ' ' || Blank.Fmt != None {
		t.Fatalf("Blank is not a plain space: %+v", Blank)
	}
}

func TestBuildPlainRun(t *testing.T) {
	got := Build("hello there")
	if len(got) != 1 || got[0].Str != "hello there" || got[0].Fmt != None {
		t.Fatalf("unexpected: %+v", got)
	}
}

func TestBuildAttributesAndArgs(t *testing.T) {
	name := "bloop"
	got := Build(
		FgRed, "hello",
		" there ",
		Bold, FgGreen, BgBlue, "Liege %s!", name,
		" You're a very %s", name,
	)
	if len(got) != 4 {
		t.Fatalf("expected 4 runs, got %d: %+v", len(got), got)
	}
	if got[0].Str != "hello" || got[0].Fmt.Fg != Red {
		t.Fatalf("run 0: %+v", got[0])
	}
	if got[1].Str != " there " || got[1].Fmt != None {
		t.Fatalf("run 1: %+v", got[1])
	}
	if got[2].Str != "Liege bloop!" {
		t.Fatalf("run 2 text: %+v", got[2])
	}
	if !got[2].Fmt.Bold || got[2].Fmt.Fg != Green || got[2].Fmt.Bg != Blue {
		t.Fatalf("run 2 format: %+v", got[2].Fmt)
	}
	if got[3].Str != " You're a very bloop" || got[3].Fmt != None {
		t.Fatalf("run 3: %+v", got[3])
	}
}

func TestColorsExcludesDefault(t *testing.T) {
	for _, c := range Colors() {
		if c == Default {
			t.Fatalf("Colors() must not include Default")
		}
	}
	if len(Colors()) != 16 {
		t.Fatalf("expected 16 colors, got %d", len(Colors()))
	}
}
