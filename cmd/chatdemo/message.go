package main

import "github.com/garaekz/tuigfx/glyph"

// chatMsg is the message type flowing through the agent scheduler: either a
// chat line spoken by some NPC, or the distinguished tick filler.
type chatMsg struct {
	speaker string
	body    string
	fmt     glyph.Format
	isTick  bool
}

// Tick satisfies agent.Message[chatMsg]. Its receiver is intentionally
// ignored -- Tick must not depend on any state of the message it's called
// on, since the agent runner calls it on a zero value.
func (chatMsg) Tick() chatMsg { return chatMsg{isTick: true} }
