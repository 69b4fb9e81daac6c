// Package engine is the top-level Runner tying input, UI regions, agent
// messages, and rendering into one loop, plus three selectable runner
// strategies (Orig/Single/Parallel).
package engine

import (
	"github.com/garaekz/tuigfx/agent"
	"github.com/garaekz/tuigfx/ui"
)

// Game is the top-level consumer of a frame's input and owner of that
// frame's rendering. Attach is called at most once per input event, or
// once per tick when idle, and has full authority over that frame's
// ScreenView; returning true requests the Runner stop. Message delivers
// the round's messages (zero or more times) before the next Attach.
type Game[M agent.Message[M]] interface {
	Attach(region ui.Region, replies *agent.Replies[M]) bool
	Message(msg M)
}
