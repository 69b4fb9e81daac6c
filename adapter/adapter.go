// Package adapter is the glue between an iosys.IoSystem backend and the
// UI/region layer. An Adapter owns the Screen buffer and a
// render-cadence timer, routes each polled input Action into a fresh
// ui.Region, and throttles re-rendering to the timer's cadence unless the
// backend's reported size changed, in which case it redraws unconditionally.
package adapter

import (
	"io"
	"time"

	"go.uber.org/multierr"

	"github.com/garaekz/tuigfx/iosys"
	"github.com/garaekz/tuigfx/logx"
	"github.com/garaekz/tuigfx/screen"
	"github.com/garaekz/tuigfx/ui"
)

// Attach is the callback an Adapter hands a freshly built Region to. It
// returns true to request a stop, the same "attach returns bool" contract
// engine.Game.Attach uses -- Adapter is deliberately generic over the
// message type a Game carries, so it takes a plain closure rather than
// depending on the engine package.
type Attach func(ui.Region) bool

// Adapter bundles an IoSystem, the Screen it draws into, a render-cadence
// FrameTimer, and the "screen is stale" taint flag.
type Adapter struct {
	sys       iosys.IoSystem
	scr       *screen.Screen
	timer     *FrameTimer
	tainted   bool
	forceNext bool
	log       *logx.Logger
}

// New builds an Adapter around sys, rendering at most once per
// renderInterval. If log is nil, logx's package-global logger is used.
func New(sys iosys.IoSystem, renderInterval time.Duration, log *logx.Logger) (*Adapter, error) {
	if sys == nil {
		return nil, ErrNoIoSystem
	}
	if log == nil {
		log = logx.GetLogger()
	}
	return &Adapter{
		sys:     sys,
		scr:     screen.New(sys.Size()),
		timer:   NewFrameTimer(renderInterval),
		tainted: true,
		log:     log,
	}, nil
}

// Screen returns the Adapter's backing Screen, mainly so a Runner can hand
// it to agent/engine code that needs to know the current drawable size.
func (a *Adapter) Screen() *screen.Screen { return a.scr }

// PollInput pulls one nonblocking Action from the backend. If one was
// pending, it builds a Region over the whole Screen carrying that Action
// and calls attach, marking the Screen tainted on any successful attach.
// hadInput is false when there was nothing to poll this call.
func (a *Adapter) PollInput(attach Attach) (stop bool, hadInput bool, err error) {
	a.checkResize()

	action, ok, err := a.sys.PollInput()
	if err != nil {
		return false, false, err
	}
	if !ok {
		return false, false, nil
	}

	region := ui.NewRegion(a.scr, action)
	stop = attach(region)
	a.tainted = true
	return stop, true, nil
}

// Refresh drives attach with a synthetic Redraw Action, forcing a
// re-layout without waiting for real input -- used when a round produces
// no input so idle Games still get to re-render (e.g. animating a spinner).
func (a *Adapter) Refresh(attach Attach) bool {
	a.checkResize()
	region := ui.NewRegion(a.scr, ui.Redraw())
	stop := attach(region)
	a.tainted = true
	return stop
}

// checkResize resizes the Screen to match the backend's currently reported
// size, if it changed, and forces the next Draw to run regardless of the
// render timer. size() is documented as advisory/racy; a report equal to
// the Screen's current size returns early, so it neither clears the Screen
// nor forces a redraw.
func (a *Adapter) checkResize() {
	cur := a.sys.Size()
	if cur == a.scr.Size() {
		return
	}
	a.scr.Resize(cur)
	a.tainted = true
	a.forceNext = true
}

// Draw re-renders the Screen to the backend if it's tainted and the render
// timer's cadence allows it, or unconditionally if a resize was observed
// since the last Draw.
func (a *Adapter) Draw() error {
	if !a.tainted {
		return nil
	}
	if !a.forceNext && !a.timer.Ready() {
		return nil
	}
	a.forceNext = false
	a.tainted = false
	return a.sys.Draw(a.scr)
}

// RenderDue reports how long until Draw would next actually render,
// assuming the Screen stays tainted. Callers pace their poll loop against
// this instead of busy-spinning.
func (a *Adapter) RenderDue() time.Duration {
	return a.timer.Remaining()
}

// Close stops the IoSystem and, if any extra resources were handed in
// (e.g. a log file writer the caller also wants torn down alongside the
// backend), closes each and combines every failure with multierr so a
// caller sees all of them rather than just the first.
func (a *Adapter) Close(extra ...io.Closer) error {
	var errs error
	if err := a.sys.Stop(); err != nil {
		errs = multierr.Append(errs, err)
	}
	for _, c := range extra {
		if err := c.Close(); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
