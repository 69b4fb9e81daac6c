// Package iosys defines the backend-agnostic IO contract the engine drives:
// something that can report its size, draw a Screen, and surface input
// actions, plus a runner that owns the platform event loop.
package iosys

import (
	"github.com/garaekz/tuigfx/screen"
	"github.com/garaekz/tuigfx/ui"
	"github.com/garaekz/tuigfx/xy"
)

// IoSystem is a pluggable draw/input backend. Implementations negotiate
// their own threading story; the core only ever calls these methods from
// the thread the IoRunner drives them from.
type IoSystem interface {
	// Size reports the current drawable size.
	Size() xy.XY

	// Draw renders scr to the backend's surface.
	Draw(scr *screen.Screen) error

	// Input blocks until the next action is available.
	Input() (ui.Action, error)

	// PollInput returns the next action without blocking. ok is false
	// when nothing was pending.
	PollInput() (action ui.Action, ok bool, err error)

	// Stop releases any backend resources (restoring terminal mode, etc).
	Stop() error
}

// IoRunner owns the platform event loop driving an IoSystem. It typically
// must run on the main/UI thread; the IoSystem it drives is not expected to
// be safe to call from anywhere else.
type IoRunner interface {
	// Step processes whatever events are immediately available and
	// reports whether a stop was requested.
	Step() (stop bool, err error)

	// Run loops Step until a stop is requested or an error occurs.
	Run() error
}
