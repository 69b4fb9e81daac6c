package glyph

// Format bundles the formatting attributes that apply to a run of text or a
// single cell: a foreground and background color, plus the three boolean
// attributes every IO backend in this package knows how to render.
type Format struct {
	Fg, Bg              Color
	Bold, Underline, Invert bool
}

// None is the Format with no color change and no attributes: both colors
// are Default, which backends render as whatever is already active (for a
// freshly cleared screen, the terminal's own defaults). It is not the zero
// Format, whose colors are Black.
var None = Format{Fg: Default, Bg: Default}

// Formatted is satisfied by any value type that carries a Format and can
// produce a copy of itself with a new one. Text and Cell both implement it,
// which lets the WithFg/WithBg/WithBold/... helpers below work identically on either
// one instead of duplicating a setter per type.
type Formatted[T any] interface {
	Format() Format
	WithFormat(Format) T
}

// WithFg returns a copy of t with its foreground color replaced.
func WithFg[T Formatted[T]](t T, c Color) T {
	f := t.Format()
	f.Fg = c
	return t.WithFormat(f)
}

// WithBg returns a copy of t with its background color replaced.
func WithBg[T Formatted[T]](t T, c Color) T {
	f := t.Format()
	f.Bg = c
	return t.WithFormat(f)
}

// WithBold, WithUnderline and WithInvert set the corresponding attribute.
func WithBold[T Formatted[T]](t T) T {
	f := t.Format()
	f.Bold = true
	return t.WithFormat(f)
}

func WithUnderline[T Formatted[T]](t T) T {
	f := t.Format()
	f.Underline = true
	return t.WithFormat(f)
}

func WithInvert[T Formatted[T]](t T) T {
	f := t.Format()
	f.Invert = true
	return t.WithFormat(f)
}

// FgColor and BgColor are aliases of WithFg and WithBg. There are no
// per-color setters: the color is passed as a Color, and Default clears back
// to the terminal's own color.
func FgColor[T Formatted[T]](t T, c Color) T { return WithFg(t, c) }
func BgColor[T Formatted[T]](t T, c Color) T { return WithBg(t, c) }
