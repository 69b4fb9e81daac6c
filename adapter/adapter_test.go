package adapter

import (
	"errors"
	"testing"
	"time"

	"github.com/garaekz/tuigfx/screen"
	"github.com/garaekz/tuigfx/ui"
	"github.com/garaekz/tuigfx/xy"
)

type fakeIO struct {
	size     xy.XY
	queued   []ui.Action
	draws    int
	stopped  bool
	drawErr  error
}

func (f *fakeIO) Size() xy.XY { return f.size }
func (f *fakeIO) Draw(scr *screen.Screen) error {
	f.draws++
	return f.drawErr
}
func (f *fakeIO) Input() (ui.Action, error) { return ui.Action{}, errors.New("not used") }
func (f *fakeIO) PollInput() (ui.Action, bool, error) {
	if len(f.queued) == 0 {
		return ui.Action{}, false, nil
	}
	a := f.queued[0]
	f.queued = f.queued[1:]
	return a, true, nil
}
func (f *fakeIO) Stop() error { f.stopped = true; return nil }

func TestNewRejectsNilIoSystem(t *testing.T) {
	if _, err := New(nil, time.Millisecond, nil); err != ErrNoIoSystem {
		t.Fatalf("New(nil) error = %v, want ErrNoIoSystem", err)
	}
}

func TestPollInputNoneQueued(t *testing.T) {
	f := &fakeIO{size: xy.New(10, 5)}
	a, err := New(f, time.Millisecond, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, hadInput, err := a.PollInput(func(ui.Region) bool { return false })
	if err != nil || hadInput {
		t.Fatalf("PollInput with empty queue: hadInput=%v err=%v", hadInput, err)
	}
}

func TestPollInputDispatchesToAttachAndTaints(t *testing.T) {
	f := &fakeIO{size: xy.New(10, 5), queued: []ui.Action{ui.KeyPress(ui.Enter)}}
	a, _ := New(f, time.Hour, nil)
	a.tainted = false

	var seen ui.Action
	stop, hadInput, err := a.PollInput(func(r ui.Region) bool {
		seen = r.Input()
		return true
	})
	if err != nil || !hadInput || !stop {
		t.Fatalf("PollInput = stop=%v hadInput=%v err=%v", stop, hadInput, err)
	}
	if seen.Kind != ui.ActionKeyPress {
		t.Fatalf("region input = %+v, want key press", seen)
	}
	if !a.tainted {
		t.Fatal("a successful attach must taint the screen")
	}
}

func TestDrawSkipsWhenNotTainted(t *testing.T) {
	f := &fakeIO{size: xy.New(10, 5)}
	a, _ := New(f, time.Microsecond, nil)
	a.tainted = false
	if err := a.Draw(); err != nil {
		t.Fatal(err)
	}
	if f.draws != 0 {
		t.Fatalf("draws = %d, want 0", f.draws)
	}
}

func TestDrawRespectsRenderCadence(t *testing.T) {
	f := &fakeIO{size: xy.New(10, 5)}
	a, _ := New(f, time.Hour, nil)
	// New leaves the timer "ready" once; consume that first.
	if err := a.Draw(); err != nil {
		t.Fatal(err)
	}
	if f.draws != 1 {
		t.Fatalf("draws after first Draw = %d, want 1", f.draws)
	}
	a.tainted = true
	if err := a.Draw(); err != nil {
		t.Fatal(err)
	}
	if f.draws != 1 {
		t.Fatalf("draws after throttled Draw = %d, want still 1", f.draws)
	}
}

func TestResizeForcesUnconditionalRedraw(t *testing.T) {
	f := &fakeIO{size: xy.New(10, 5)}
	a, _ := New(f, time.Hour, nil)
	a.Draw() // consume the initial free render

	f.size = xy.New(20, 10)
	a.checkResize()
	if err := a.Draw(); err != nil {
		t.Fatal(err)
	}
	if f.draws != 2 {
		t.Fatalf("draws after resize = %d, want 2", f.draws)
	}
	if a.scr.Size() != xy.New(20, 10) {
		t.Fatalf("screen size = %v, want resized to match backend", a.scr.Size())
	}
}

func TestCloseCombinesErrors(t *testing.T) {
	f := &fakeIO{size: xy.New(1, 1)}
	a, _ := New(f, time.Millisecond, nil)
	closer := closerFunc(func() error { return errors.New("extra teardown failed") })
	err := a.Close(closer)
	if err == nil {
		t.Fatal("expected combined error from extra closer")
	}
	if !f.stopped {
		t.Fatal("Close must stop the IoSystem")
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
