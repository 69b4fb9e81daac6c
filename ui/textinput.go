package ui

import "github.com/garaekz/tuigfx/glyph"

// TextInputResultKind tags the outcome of feeding one Action into a
// TextInput.
type TextInputResultKind int

const (
	TIResultNothing TextInputResultKind = iota
	// TIResultAutocomplete means the user pressed Tab. PreCursor is
	// everything typed so far up to the cursor; call SetAutocomplete on
	// the same TextInput with whatever completion you want shown.
	TIResultAutocomplete
	// TIResultSubmit means the user pressed Enter. Submitted is the line
	// that was entered; the TextInput has already been cleared.
	TIResultSubmit
)

type TextInputResult struct {
	Kind      TextInputResultKind
	PreCursor string
	Submitted string
}

// TextInput is a single-line text-entry widget with history and
// autocomplete hooks. When the typed line is wider than the space it's
// drawn in, it scrolls to keep the cursor visible, biased toward the end,
// eliding the cut side with "…".
type TextInput struct {
	// Prompt is fixed, uneditable text shown before the editable line.
	Prompt string

	line         []rune
	cursor       int
	autocomplete string

	// history holds past submitted lines, oldest first.
	history []string
	// histpos is the index into history currently shown, or len(history)
	// when viewing the live line.
	histpos int
	histcap int
}

// NewTextInput creates a TextInput with the given prompt and history
// capacity. A capacity of 0 disables history entirely.
func NewTextInput(prompt string, historyCap int) *TextInput {
	return &TextInput{Prompt: prompt, histcap: historyCap}
}

// Store records line in history, most recent last, evicting the oldest
// entry once histcap is reached.
func (t *TextInput) Store(line string) {
	if t.histcap == 0 {
		return
	}
	if len(t.history) == t.histcap {
		t.history = append(t.history[1:], line)
		if t.histpos < len(t.history) {
			t.histpos--
		}
	} else {
		if t.histpos == len(t.history) {
			t.histpos++
		}
		t.history = append(t.history, line)
	}
}

func (t *TextInput) curLine() []rune {
	if t.histpos == len(t.history) {
		return t.line
	}
	return []rune(t.history[t.histpos])
}

// selLine copies the currently-viewed history entry into the live line, so
// further edits apply to it rather than the read-only history slot.
func (t *TextInput) selLine() {
	if t.histpos < len(t.history) {
		t.line = []rune(t.history[t.histpos])
		t.histpos = len(t.history)
	}
}

// SetAutocomplete supplies the text to show (dimly) after the cursor, in
// response to a TIResultAutocomplete result.
func (t *TextInput) SetAutocomplete(s string) { t.autocomplete = s }

// Input feeds one Action to the TextInput, updating its state and
// reporting what happened.
func (t *TextInput) Input(a Action) TextInputResult {
	if a.Kind != ActionKeyPress {
		return TextInputResult{Kind: TIResultNothing}
	}
	k := a.Key
	switch k.Code {
	case KeyChar:
		t.selLine()
		t.line = insertRune(t.line, t.cursor, k.Ch)
		t.cursor++
		t.autocomplete = ""
	case KeyHome:
		t.cursor = 0
		t.autocomplete = ""
	case KeyEnd:
		t.cursor = len(t.curLine())
		t.autocomplete = ""
	case KeyLeft:
		if t.cursor > 0 {
			t.cursor--
		}
		t.autocomplete = ""
	case KeyRight:
		if t.cursor < len(t.curLine()) {
			t.cursor++
		}
		t.autocomplete = ""
	case KeyUp:
		if t.histpos > 0 {
			t.histpos--
			t.cursor = len(t.curLine())
		}
		t.autocomplete = ""
	case KeyDown:
		if t.histpos < len(t.history) {
			t.histpos++
			t.cursor = len(t.curLine())
		}
		t.autocomplete = ""
	case KeyBackspace:
		t.selLine()
		if t.cursor > 0 {
			t.cursor--
			t.line = removeRune(t.line, t.cursor)
		}
		t.autocomplete = ""
	case KeyDelete:
		t.selLine()
		if t.cursor < len(t.line) {
			t.line = removeRune(t.line, t.cursor)
		}
		t.autocomplete = ""
	case KeyTab:
		t.selLine()
		t.autocomplete = ""
		return TextInputResult{Kind: TIResultAutocomplete, PreCursor: string(t.line[:t.cursor])}
	case KeyEnter:
		t.selLine()
		submitted := string(t.line)
		t.line = nil
		t.cursor = 0
		t.autocomplete = ""
		return TextInputResult{Kind: TIResultSubmit, Submitted: submitted}
	}
	return TextInputResult{Kind: TIResultNothing}
}

func insertRune(s []rune, at int, r rune) []rune {
	s = append(s, 0)
	copy(s[at+1:], s[at:])
	s[at] = r
	return s
}

func removeRune(s []rune, at int) []rune {
	return append(s[:at], s[at+1:]...)
}

type tiChunk struct {
	runes []rune
	fmt   glyph.Format
}

// Render lays out the current state into the first row of view: prompt,
// pre-cursor text, the cursor cell (underlined), dimmed autocomplete, then
// post-cursor text, eliding whichever side overflows.
func (t *TextInput) Render(view ScreenView) {
	row, ok := view.Row(0)
	if !ok {
		return
	}
	promptRunes := []rune(t.Prompt)
	width := int(view.Size().X) - len(promptRunes)
	if width < 0 {
		width = 0
	}
	curLine := t.curLine()
	cursor := t.cursor
	if cursor > len(curLine) {
		cursor = len(curLine)
	}

	minSpaceLeft := min(1+width/8, cursor)
	maxSpaceRight := width - minSpaceLeft

	autocompleteRunes := []rune(t.autocomplete)
	allRight := (len(curLine) - cursor) + len(autocompleteRunes)
	var lenRight int
	var cutRight bool
	switch {
	case allRight == 0:
		lenRight, cutRight = 1, false
	case allRight <= maxSpaceRight:
		lenRight, cutRight = allRight, false
	default:
		lenRight, cutRight = maxSpaceRight-1, true
	}

	cutRightN := 0
	if cutRight {
		cutRightN = 1
	}
	maxSpaceLeft := width - (lenRight + cutRightN)
	allLeft := cursor
	var lenLeft int
	var cutLeft bool
	if allLeft <= maxSpaceLeft {
		lenLeft, cutLeft = allLeft, false
	} else {
		lenLeft, cutLeft = maxSpaceLeft-1, true
	}
	if lenLeft < 0 {
		lenLeft = 0
	}
	if lenRight < 0 {
		lenRight = 0
	}

	chunks := []tiChunk{
		{runes: promptRunes, fmt: glyph.None},
		{runes: append([]rune{}, curLine[:cursor]...), fmt: glyph.None},
		{runes: nil, fmt: glyph.None}, // cursor cell, filled below
	}
	if len(autocompleteRunes) > 0 {
		dim := glyph.None
		dim.Fg = glyph.BrightBlack
		chunks = append(chunks, tiChunk{runes: append([]rune{}, autocompleteRunes...), fmt: dim})
	}
	if cursor < len(curLine) {
		chunks = append(chunks, tiChunk{runes: append([]rune{}, curLine[cursor:]...), fmt: glyph.None})
	}

	cursorCh := ' '
	cursorFmt := glyph.None
	if len(chunks) > 3 {
		c := &chunks[3]
		if len(c.runes) > 0 {
			cursorCh = c.runes[0]
			c.runes = c.runes[1:]
		}
		cursorFmt = c.fmt
	}
	cursorFmt.Underline = true
	chunks[2] = tiChunk{runes: []rune{cursorCh}, fmt: cursorFmt}

	// trim the left side down to its visible window
	left := &chunks[1]
	trimLeft := len(left.runes) - lenLeft
	if trimLeft < 0 {
		trimLeft = 0
	}
	tail := append([]rune{}, left.runes[trimLeft:]...)
	if cutLeft {
		left.runes = append([]rune{'…'}, tail...)
	} else {
		left.runes = tail
	}

	// trim the right side, spread across the chunks following the cursor
	trim := lenRight - 1
	if trim < 0 {
		trim = 0
	}
	trimmed := false
	for i := 3; i < len(chunks); i++ {
		c := &chunks[i]
		if trim >= len(c.runes) {
			trim -= len(c.runes)
			continue
		}
		if !trimmed {
			if cutRight {
				c.runes = append(append([]rune{}, c.runes[:trim]...), '…')
			} else {
				c.runes = c.runes[:trim]
			}
			trimmed = true
		} else {
			c.runes = nil
		}
	}

	pos := 0
	for _, c := range chunks {
		for _, r := range c.runes {
			if pos >= len(row) {
				goto done
			}
			row[pos] = glyph.Cell{Ch: r, Fmt: c.fmt}
			pos++
		}
	}
done:
	for ; pos < len(row); pos++ {
		row[pos] = glyph.Blank
	}
}
