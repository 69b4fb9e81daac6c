package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/garaekz/tuigfx/agent"
	"github.com/garaekz/tuigfx/screen"
	"github.com/garaekz/tuigfx/ui"
	"github.com/garaekz/tuigfx/xy"
)

type testMsg struct{ text string }

func (testMsg) Tick() testMsg { return testMsg{text: "tick"} }

// countGame stops after a fixed number of Attach calls, counting how many
// messages it has observed in total.
type countGame struct {
	attaches   int32
	stopAfter  int32
	gotMessage int32
}

func (g *countGame) Attach(region ui.Region, replies *agent.Replies[testMsg]) bool {
	n := atomic.AddInt32(&g.attaches, 1)
	return n >= g.stopAfter
}

func (g *countGame) Message(m testMsg) {
	atomic.AddInt32(&g.gotMessage, 1)
}

type fakeSys struct {
	size xy.XY
}

func (f *fakeSys) Size() xy.XY                          { return f.size }
func (f *fakeSys) Draw(scr *screen.Screen) error         { return nil }
func (f *fakeSys) Input() (ui.Action, error)             { return ui.Redraw(), nil }
func (f *fakeSys) PollInput() (ui.Action, bool, error)   { return ui.Redraw(), true, nil }
func (f *fakeSys) Stop() error                           { return nil }

type fakeRunner struct{}

func (fakeRunner) Step() (bool, error) { return false, nil }
func (fakeRunner) Run() error          { return nil }

func TestRunRequiresGame(t *testing.T) {
	var r Runner[testMsg]
	r.inputTick = time.Millisecond
	r.render = time.Millisecond
	if err := r.Run(&fakeSys{size: xy.New(10, 5)}, fakeRunner{}); err != ErrNoGame {
		t.Fatalf("Run with nil game: err = %v, want ErrNoGame", err)
	}
}

func TestRunOrigStopsWhenGameRequestsStop(t *testing.T) {
	game := &countGame{stopAfter: 3}
	r := New[testMsg](game).InputTick(time.Millisecond).RenderInterval(time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- r.Run(&fakeSys{size: xy.New(10, 5)}, fakeRunner{}) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after the game requested it")
	}

	if atomic.LoadInt32(&game.attaches) < 3 {
		t.Fatalf("attaches = %d, want at least 3", game.attaches)
	}
}

func TestRunSingleStopsWhenGameRequestsStop(t *testing.T) {
	game := &countGame{stopAfter: 3}
	r := New[testMsg](game).
		InputTick(time.Millisecond).
		RenderInterval(time.Millisecond).
		WithStrategy(RunSingle)

	done := make(chan error, 1)
	go func() { done <- r.Run(&fakeSys{size: xy.New(10, 5)}, fakeRunner{}) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after the game requested it")
	}
}

func TestRunParallelStopsWhenGameRequestsStop(t *testing.T) {
	game := &countGame{stopAfter: 3}
	r := New[testMsg](game).
		InputTick(time.Millisecond).
		RenderInterval(time.Millisecond).
		WithStrategy(RunParallel)

	done := make(chan error, 1)
	go func() { done <- r.Run(&fakeSys{size: xy.New(10, 5)}, fakeRunner{}) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after the game requested it")
	}
}

func TestStrategyString(t *testing.T) {
	cases := map[Strategy]string{RunOrig: "orig", RunSingle: "single", RunParallel: "parallel"}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Fatalf("Strategy(%d).String() = %q, want %q", s, got, want)
		}
	}
}
