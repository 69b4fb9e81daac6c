package glyph

// Text is a run of text sharing one Format. Widgets deal in []Text rather
// than plain strings so that color and attributes travel with the words
// they belong to through wrapping, scrolling, and splitting.
type Text struct {
	Str string
	Fmt Format
}

// Of builds a plain, unformatted Text.
func Of(s string) Text { return Text{Str: s, Fmt: None} }

func (t Text) Format() Format          { return t.Fmt }
func (t Text) WithFormat(f Format) Text { t.Fmt = f; return t }

// Cell is a single formatted character, the unit the Screen buffer is made
// of. The blank cell, a space with the None Format, is available as Blank.
type Cell struct {
	Ch  rune
	Fmt Format
}

// Blank is the cell every Screen starts and clears to.
var Blank = Cell{Ch: ' ', Fmt: None}

func (c Cell) Format() Format          { return c.Fmt }
func (c Cell) WithFormat(f Format) Cell { c.Fmt = f; return c }

// CellOf builds an unformatted Cell from a single rune.
func CellOf(r rune) Cell { return Cell{Ch: r, Fmt: None} }
