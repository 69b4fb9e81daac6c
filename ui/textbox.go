package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/garaekz/tuigfx/glyph"
	"github.com/garaekz/tuigfx/xy"
)

// TextboxData reports how a Textbox render laid its text out: useful for
// scrollbar math, "jump to bottom" logic, and tests.
type TextboxData struct {
	// Lines is the total number of wrapped lines, after word-wrap.
	Lines uint
	// Height is how many of those lines actually got drawn to the screen.
	Height uint
	// Scroll is the index of the first drawn line within the wrapped text.
	Scroll uint
}

func breakable(r rune) bool { return unicode.IsSpace(r) }

type textChunk struct {
	text string
	fmt  glyph.Format
}

// Textbox lays out a sequence of formatted text runs with paragraph
// breaks, word-wrap, hyphenation, indentation, and scrolling, then writes
// the visible slice into a ScreenView.
type Textbox struct {
	chunks       []glyph.Text
	pos          xy.XY
	width        *uint
	height       *uint
	scroll       uint
	scrollBottom bool
	indent       uint
	firstIndent  *uint
}

// NewTextbox starts a Textbox over the given runs, with all layout options
// at their defaults (full available space, no scroll, no indent).
func NewTextbox(runs []glyph.Text) *Textbox {
	return &Textbox{chunks: runs}
}

func (t *Textbox) Pos(p xy.XY) *Textbox      { t.pos = p; return t }
func (t *Textbox) Width(w uint) *Textbox     { t.width = &w; return t }
func (t *Textbox) Height(h uint) *Textbox    { t.height = &h; return t }
func (t *Textbox) Scroll(amt uint) *Textbox  { t.scroll = amt; return t }
func (t *Textbox) ScrollFromBottom(v bool) *Textbox { t.scrollBottom = v; return t }
func (t *Textbox) Indent(amt uint) *Textbox  { t.indent = amt; return t }
func (t *Textbox) FirstIndent(amt uint) *Textbox { t.firstIndent = &amt; return t }

// Render performs the layout and writes the visible lines into view,
// returning the resulting TextboxData.
func (t *Textbox) Render(view ScreenView) TextboxData {
	firstIndent := t.indent
	if t.firstIndent != nil {
		firstIndent = *t.firstIndent
	}

	viewSize := view.Size()
	if t.pos.X >= viewSize.X || t.pos.Y >= viewSize.Y {
		return TextboxData{}
	}
	width := viewSize.X - t.pos.X
	if t.width != nil && *t.width < width {
		width = *t.width
	}
	height := viewSize.Y - t.pos.Y
	if t.height != nil && *t.height < height {
		height = *t.height
	}
	if width == 0 || height == 0 {
		return TextboxData{}
	}
	if width <= t.indent || width <= firstIndent {
		panic(fmt.Sprintf("ui.Textbox: indent (%d) or first indent (%d) is too large for width (%d)", t.indent, firstIndent, width))
	}

	// split into paragraphs on newlines
	var paragraphs [][]textChunk
	var curPara []textChunk
	for _, run := range t.chunks {
		text := run.Str
		for {
			idx := strings.IndexByte(text, '\n')
			if idx < 0 {
				break
			}
			curPara = append(curPara, textChunk{text: text[:idx], fmt: run.Fmt})
			paragraphs = append(paragraphs, curPara)
			curPara = nil
			text = text[idx+1:]
		}
		if text != "" {
			curPara = append(curPara, textChunk{text: text, fmt: run.Fmt})
		}
	}
	paragraphs = append(paragraphs, curPara)

	// word-wrap each paragraph into lines
	var lines [][]textChunk
	for _, para := range paragraphs {
		line := []textChunk{{text: strings.Repeat(" ", int(firstIndent)), fmt: glyph.None}}
		pos := firstIndent
		lineStart := true
		for _, chunk := range para {
			text := chunk.text
			for pos+uint(len(text)) > width {
				wasLineStart := lineStart
				lineStart = false
				spaceLeft := width - pos
				var lineEnd, rest string
				limit := int(spaceLeft) + 1
				if limit > len(text) {
					limit = len(text)
				}
				if idx := strings.LastIndexFunc(text[:limit], breakable); idx >= 0 {
					lineEnd = text[:idx]
					rest = text[idx+1:]
				} else if !wasLineStart {
					lineEnd = ""
					rest = text
				} else if spaceLeft > 1 {
					pre, post := text[:spaceLeft-1], text[spaceLeft-1:]
					lineEnd = pre + "-"
					rest = post
				} else if spaceLeft == 1 {
					lineEnd, rest = text[:1], text[1:]
				} else {
					panic("ui.Textbox: indent or first indent is larger than width")
				}
				text = rest
				if lineEnd != "" {
					remSpace := width - (pos + uint(len(lineEnd)))
					line = append(line, textChunk{text: lineEnd, fmt: chunk.fmt})
					if remSpace > 0 {
						line = append(line, textChunk{text: strings.Repeat(" ", int(remSpace)), fmt: glyph.Format{Fg: glyph.Default, Bg: chunk.fmt.Bg}})
					}
				}
				lines = append(lines, line)
				line = []textChunk{{text: strings.Repeat(" ", int(t.indent)), fmt: glyph.None}}
				pos = t.indent
				lineStart = true
			}
			pos += uint(len(text))
			line = append(line, textChunk{text: text, fmt: chunk.fmt})
			if text != "" {
				lineStart = false
			}
		}
		lines = append(lines, line)
	}

	var start uint
	if t.scrollBottom {
		end := uint(len(lines))
		if t.scroll < end {
			end -= t.scroll
		} else {
			end = 0
		}
		if end > height {
			start = end - height
		} else {
			start = 0
		}
		realHeight := end - start
		t.pos.Y += height - realHeight
		height = realHeight
	} else {
		start = t.scroll
	}

	data := TextboxData{Lines: uint(len(lines)), Scroll: start}
	y := t.pos.Y
	end := start + height
	if end > uint(len(lines)) {
		end = uint(len(lines))
	}
	for _, line := range linesSlice(lines, start, end) {
		writeRow(view, y, t.pos.X, line)
		y++
		data.Height++
	}
	return data
}

func linesSlice(lines [][]textChunk, start, end uint) [][]textChunk {
	if start >= uint(len(lines)) {
		return nil
	}
	if end > uint(len(lines)) {
		end = uint(len(lines))
	}
	return lines[start:end]
}

// writeRow paints one laid-out line into view, advancing by each rune's
// terminal cell width rather than assuming one cell per rune: a wide
// (e.g. CJK) rune occupies its own cell plus a blank trailing cell, so
// column math downstream of this (cursor placement, scrollbars) stays
// aligned with what actually got drawn.
func writeRow(view ScreenView, y, xStart uint, line []textChunk) {
	row, ok := view.Row(y)
	if !ok {
		return
	}
	x := xStart
	for _, chunk := range line {
		for _, r := range chunk.text {
			if x >= uint(len(row)) {
				return
			}
			w := runewidth.RuneWidth(r)
			if w <= 0 {
				continue
			}
			row[x] = glyph.Cell{Ch: r, Fmt: chunk.fmt}
			x++
			if w == 2 && x < uint(len(row)) {
				row[x] = glyph.Cell{Ch: ' ', Fmt: chunk.fmt}
				x++
			}
		}
	}
}
