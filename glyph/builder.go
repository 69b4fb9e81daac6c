package glyph

import (
	"fmt"
	"strings"
)

// Attr mutates a Format in place. It's the building block of the Build DSL
// below: a handful of package-level Attr values stand in for the
// attribute-name tokens a macro system would otherwise parse out of source
// text.
type Attr func(*Format)

func attrFg(c Color) Attr { return func(f *Format) { f.Fg = c } }
func attrBg(c Color) Attr { return func(f *Format) { f.Bg = c } }

var (
	FgBlack   = attrFg(Black)
	FgRed     = attrFg(Red)
	FgGreen   = attrFg(Green)
	FgYellow  = attrFg(Yellow)
	FgBlue    = attrFg(Blue)
	FgMagenta = attrFg(Magenta)
	FgCyan    = attrFg(Cyan)
	FgWhite   = attrFg(White)
	FgDefault = attrFg(Default)

	BgBlack   = attrBg(Black)
	BgRed     = attrBg(Red)
	BgGreen   = attrBg(Green)
	BgYellow  = attrBg(Yellow)
	BgBlue    = attrBg(Blue)
	BgMagenta = attrBg(Magenta)
	BgCyan    = attrBg(Cyan)
	BgWhite   = attrBg(White)
	BgDefault = attrBg(Default)

	Bold      Attr = func(f *Format) { f.Bold = true }
	Underline Attr = func(f *Format) { f.Underline = true }
	Invert    Attr = func(f *Format) { f.Invert = true }
)

// Build constructs an ordered sequence of Text runs from a flat list of
// attribute tokens, format-string literals, and Sprintf arguments -- the
// same shape as `[attribute...] "format-literal" (args...)` repeated any
// number of times. Each string literal starts a new run, except that a
// string directly following a literal whose % verbs are not all filled yet
// is taken as that literal's argument. Attributes encountered before a
// literal apply only to its run and do not carry over to the next one; a
// run with no attributes has the None Format.
//
//	Build(FgRed, "hello",
//	    Bold, FgGreen, BgBlue, "Liege %s!", name,
//	    "You're a very %s", adjective,
//	)
func Build(parts ...any) []Text {
	var out []Text
	cur := None
	i := 0
	for i < len(parts) {
		switch v := parts[i].(type) {
		case Attr:
			v(&cur)
			i++
		case string:
			j := i + 1
			var args []any
			verbs := strings.Count(v, "%") - 2*strings.Count(v, "%%")
			for j < len(parts) {
				_, isStr := parts[j].(string)
				if !isBuildArg(parts[j]) && !(isStr && len(args) < verbs) {
					break
				}
				args = append(args, parts[j])
				j++
			}
			text := v
			if len(args) > 0 {
				text = fmt.Sprintf(v, args...)
			}
			out = append(out, Text{Str: text, Fmt: cur})
			cur = None
			i = j
		default:
			panic(fmt.Sprintf("glyph.Build: unexpected argument of type %T at position %d", v, i))
		}
	}
	return out
}

func isBuildArg(v any) bool {
	switch v.(type) {
	case Attr, string:
		return false
	default:
		return true
	}
}
