// Package ansiterm is the one concrete iosys backend this module ships: an
// ANSI-escape terminal IoSystem/IoRunner pair grounded on
// writer.TerminalWriter, terminal.Detector, and runfx.KeyReader's
// escape-sequence parser, extended to cover the full ui.Action set
// (including SGR mouse reporting, which runfx's reader never had to parse).
package ansiterm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/garaekz/tuigfx/glyph"
	"github.com/garaekz/tuigfx/logx"
	"github.com/garaekz/tuigfx/screen"
	"github.com/garaekz/tuigfx/terminal"
	"github.com/garaekz/tuigfx/ui"
	"github.com/garaekz/tuigfx/writer"
	"github.com/garaekz/tuigfx/xy"
)

// ansiColor maps the closed glyph.Color set onto SGR color codes.
var ansiColor = map[glyph.Color]int{
	glyph.Black: 30, glyph.Red: 31, glyph.Green: 32, glyph.Yellow: 33,
	glyph.Blue: 34, glyph.Magenta: 35, glyph.Cyan: 36, glyph.White: 37,
	glyph.BrightBlack: 90, glyph.BrightRed: 91, glyph.BrightGreen: 92,
	glyph.BrightYellow: 93, glyph.BrightBlue: 94, glyph.BrightMagenta: 95,
	glyph.BrightCyan: 96, glyph.BrightWhite: 97,
}

// Terminal is the ANSI-escape IoSystem. It owns a raw-mode terminal, a
// double-buffered writer, and a bounded channel of decoded ui.Action
// values, which its Runner fills as the caller drives Step or Run.
type Terminal struct {
	sessionID uuid.UUID
	out       *writer.TerminalWriter
	in        *bufio.Reader
	raw       *term.State
	rawFd     uintptr
	log       *logx.Logger
	mouseOn   bool

	sig       *terminal.SignalHandler
	sigCancel context.CancelFunc

	actions chan ui.Action
	stopped chan struct{}
	once    sync.Once

	lastFmt glyph.Format
	wroteFmt bool
}

// Options configures New. A zero Options is a reasonable default: stdin,
// stdout, mouse reporting off, the package's own logger.
type Options struct {
	In        io.Reader
	Out       io.Writer
	Mouse     bool
	Log       *logx.Logger
	QueueSize int
}

// New opens an ANSI terminal backend, enabling raw mode and (if requested)
// SGR mouse reporting. The returned Terminal must eventually have Stop
// called to restore the terminal.
func New(opts Options) (*Terminal, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Log == nil {
		opts.Log = logx.GetLogger()
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 64
	}

	tw := writer.NewTerminalWriter(opts.Out, writer.TerminalOptions{DoubleBuffer: true})

	t := &Terminal{
		sessionID: uuid.New(),
		out:       tw,
		in:        bufio.NewReader(opts.In),
		log:       opts.Log,
		mouseOn:   opts.Mouse,
		actions:   make(chan ui.Action, opts.QueueSize),
		stopped:   make(chan struct{}),
	}
	t.log.Debug("ansiterm: session %s starting", t.sessionID)

	if f, ok := opts.In.(*os.File); ok && terminal.IsTerminal(opts.Out) {
		state, err := terminal.MakeRaw(f.Fd())
		if err != nil {
			return nil, fmt.Errorf("ansiterm: enable raw mode: %w", err)
		}
		t.raw = state
		t.rawFd = f.Fd()

		ctx, cancel := context.WithCancel(context.Background())
		t.sigCancel = cancel
		t.sig = terminal.NewSignalHandler()
		t.sig.OnResize(func() {
			select {
			case t.actions <- ui.Redraw():
			default:
			}
		})
		t.sig.OnStop(func() {
			select {
			case t.actions <- ui.Closed():
			default:
			}
		})
		go t.sig.Listen(ctx)
	}

	tw.HideCursor()
	if t.mouseOn {
		tw.Write([]byte("\033[?1000h\033[?1006h"))
	}

	return t, nil
}

// Size reports the terminal's current drawable size.
func (t *Terminal) Size() xy.XY {
	cols, rows, err := t.out.GetSize()
	if err != nil || cols <= 0 || rows <= 0 {
		return xy.New(80, 24)
	}
	return xy.New(uint(cols), uint(rows))
}

// Draw renders scr as one ANSI frame: reposition to the top-left, then
// emit each row's cells with minimal SGR transitions between runs that
// share a Format. TerminalWriter's own double-buffering skips the write
// entirely if the frame is byte-identical to the last one drawn.
func (t *Terminal) Draw(scr *screen.Screen) error {
	var b strings.Builder
	b.WriteString("\033[H")
	t.lastFmt = glyph.None
	t.wroteFmt = false

	size := scr.Size()
	for y := uint(0); y < size.Y; y++ {
		row := scr.Row(int(y))
		for _, cell := range row {
			t.writeCell(&b, cell)
		}
		if y+1 < size.Y {
			b.WriteString("\r\n")
		}
	}
	b.WriteString("\033[0m")

	_, err := t.out.Write([]byte(b.String()))
	return err
}

func (t *Terminal) writeCell(b *strings.Builder, c glyph.Cell) {
	if !t.wroteFmt || c.Fmt != t.lastFmt {
		b.WriteString(sgr(c.Fmt))
		t.lastFmt = c.Fmt
		t.wroteFmt = true
	}
	b.WriteRune(c.Ch)
}

// sgr renders a Format as a complete SGR reset-then-set escape sequence.
// Resetting first keeps runs independent of whatever attributes the
// previous cell left active.
func sgr(f glyph.Format) string {
	codes := []string{"0"}
	if f.Bold {
		codes = append(codes, "1")
	}
	if f.Underline {
		codes = append(codes, "4")
	}
	if f.Invert {
		codes = append(codes, "7")
	}
	if f.Fg != glyph.Default {
		codes = append(codes, strconv.Itoa(ansiColor[f.Fg]))
	}
	if f.Bg != glyph.Default {
		codes = append(codes, strconv.Itoa(ansiColor[f.Bg]+10))
	}
	return "\033[" + strings.Join(codes, ";") + "m"
}

// Input blocks until the next Action is available, or the terminal is
// stopped.
func (t *Terminal) Input() (ui.Action, error) {
	select {
	case a, ok := <-t.actions:
		if !ok {
			return ui.Closed(), io.EOF
		}
		return a, nil
	case <-t.stopped:
		return ui.Closed(), io.EOF
	}
}

// PollInput returns the next queued Action without blocking.
func (t *Terminal) PollInput() (ui.Action, bool, error) {
	select {
	case a, ok := <-t.actions:
		if !ok {
			return ui.Closed(), true, io.EOF
		}
		return a, true, nil
	default:
		return ui.Action{}, false, nil
	}
}

// Stop restores the terminal to its original mode and stops feeding input.
func (t *Terminal) Stop() error {
	var err error
	t.once.Do(func() {
		t.log.Debug("ansiterm: session %s stopping", t.sessionID)
		close(t.stopped)
		if t.mouseOn {
			t.out.Write([]byte("\033[?1000l\033[?1006l"))
		}
		t.out.ShowCursor()
		if t.sig != nil {
			t.sig.Stop()
			t.sigCancel()
		}
		if t.raw != nil {
			err = terminal.RestoreTerminal(t.rawFd, t.raw)
		}
	})
	return err
}

// Runner drives the platform read loop from whatever thread calls Run or
// Step, decoding bytes into ui.Action values and pushing them onto the
// Terminal's channel.
type Runner struct {
	term *Terminal
}

// NewRunner builds an IoRunner for term.
func NewRunner(term *Terminal) *Runner { return &Runner{term: term} }

// Step blocks until one input action is decoded and queues it, returning
// true once the terminal has been stopped or its input reaches EOF.
func (r *Runner) Step() (bool, error) {
	select {
	case <-r.term.stopped:
		return true, nil
	default:
	}

	a, err := r.decodeOne()
	if err != nil {
		if err == io.EOF {
			return true, nil
		}
		return false, err
	}

	select {
	case r.term.actions <- a:
	case <-r.term.stopped:
		return true, nil
	}
	return false, nil
}

// Run loops Step until it reports a stop or an error.
func (r *Runner) Run() error {
	for {
		stop, err := r.Step()
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
}

func (r *Runner) decodeOne() (ui.Action, error) {
	b, err := r.term.in.ReadByte()
	if err != nil {
		return ui.Action{}, err
	}

	if b == 27 {
		next, peekErr := r.term.in.Peek(1)
		if peekErr != nil || len(next) == 0 {
			return ui.KeyPress(ui.Esc), nil
		}
		if next[0] == '[' {
			r.term.in.ReadByte()
			return r.decodeCSI()
		}
		return ui.KeyPress(ui.Esc), nil
	}

	return decodeRegular(b), nil
}

func (r *Runner) decodeCSI() (ui.Action, error) {
	first, err := r.term.in.Peek(1)
	if err == nil && len(first) == 1 && first[0] == '<' {
		r.term.in.ReadByte()
		return r.decodeSGRMouse()
	}

	seq := []byte{}
	for {
		b, err := r.term.in.ReadByte()
		if err != nil {
			return ui.Action{}, err
		}
		seq = append(seq, b)
		if (b >= 'A' && b <= 'Z') || b == '~' {
			break
		}
	}
	return decodeCSISeq(string(seq)), nil
}

// decodeSGRMouse parses an SGR mouse-reporting sequence of the form
// "<Cb;Cx;Cy(M|m)" (the leading "\033[<" has already been consumed).
func (r *Runner) decodeSGRMouse() (ui.Action, error) {
	raw := []byte{}
	for {
		b, err := r.term.in.ReadByte()
		if err != nil {
			return ui.Action{}, err
		}
		if b == 'M' || b == 'm' {
			parts := strings.SplitN(string(raw), ";", 3)
			if len(parts) != 3 {
				return ui.Redraw(), nil
			}
			cb, _ := strconv.Atoi(parts[0])
			cx, _ := strconv.Atoi(parts[1])
			cy, _ := strconv.Atoi(parts[2])
			pos := xy.New(uint(maxInt(cx-1, 0)), uint(maxInt(cy-1, 0)))

			if cb&32 != 0 {
				return ui.MouseMove(pos), nil
			}
			if cb&64 != 0 {
				if cb&1 != 0 {
					return ui.MouseMove(pos), nil
				}
				return ui.MousePress(ui.MouseWheelUp, pos), nil
			}
			btn := mouseButton(cb & 3)
			if b == 'm' {
				return ui.MouseRelease(btn, pos), nil
			}
			return ui.MousePress(btn, pos), nil
		}
		raw = append(raw, b)
	}
}

func mouseButton(n int) ui.MouseButton {
	switch n {
	case 1:
		return ui.MouseMiddle
	case 2:
		return ui.MouseRight
	default:
		return ui.MouseLeft
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func decodeCSISeq(s string) ui.Action {
	switch s {
	case "A":
		return ui.KeyPress(ui.Up)
	case "B":
		return ui.KeyPress(ui.Down)
	case "C":
		return ui.KeyPress(ui.Right)
	case "D":
		return ui.KeyPress(ui.Left)
	case "H":
		return ui.KeyPress(ui.Home)
	case "F":
		return ui.KeyPress(ui.End)
	case "3~":
		return ui.KeyPress(ui.Delete)
	case "1~":
		return ui.KeyPress(ui.Home)
	case "4~":
		return ui.KeyPress(ui.End)
	}
	return ui.Unknown(s)
}

func decodeRegular(b byte) ui.Action {
	switch b {
	case '\r', '\n':
		return ui.KeyPress(ui.Enter)
	case '\t':
		return ui.KeyPress(ui.Tab)
	case 127, 8:
		return ui.KeyPress(ui.Backspace)
	case 3: // Ctrl+C
		return ui.Closed()
	}
	return ui.KeyPress(ui.Char(rune(b)))
}
