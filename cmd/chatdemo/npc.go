package main

import (
	"math/rand"
	"time"

	"github.com/garaekz/tuigfx/agent"
	"github.com/garaekz/tuigfx/glyph"
)

// npcAgent speaks one line from its script every few seconds, then falls
// silent forever (Kill) once the script runs out. A flat script rather
// than a branching conversation tree.
type npcAgent struct {
	name   string
	color  glyph.Color
	lines  []string
	next   int
	period time.Duration
}

func newNPC(name string, color glyph.Color, period time.Duration, lines ...string) *npcAgent {
	return &npcAgent{name: name, color: color, lines: lines, period: period}
}

func (a *npcAgent) Start(replies *agent.Replies[chatMsg]) agent.ControlFlow {
	jitter := time.Duration(rand.Intn(500)) * time.Millisecond
	return agent.SleepFor(a.period + jitter)
}

func (a *npcAgent) React(msg chatMsg, replies *agent.Replies[chatMsg]) agent.ControlFlow {
	if a.next >= len(a.lines) {
		return agent.Kill()
	}
	replies.Emit(chatMsg{
		speaker: a.name,
		body:    a.lines[a.next],
		fmt:     glyph.Format{Fg: a.color},
	})
	a.next++
	if a.next >= len(a.lines) {
		return agent.Kill()
	}
	return agent.SleepFor(a.period)
}

// idleWatcher announces once that the channel has gone quiet, but only
// once some other code calls Wake on its handle -- demonstrating the
// Handle variant of ControlFlow alongside npcAgent's Time variant. The
// chat Game wakes it the first time a player submits a line.
type idleWatcher struct {
	startCF agent.ControlFlow
}

// newIdleWatcher returns the agent to spawn and the WaitHandle the caller
// keeps in order to wake it later.
func newIdleWatcher() (*idleWatcher, *agent.WaitHandle) {
	cf, handle := agent.Wait()
	return &idleWatcher{startCF: cf}, handle
}

func (a *idleWatcher) Start(replies *agent.Replies[chatMsg]) agent.ControlFlow {
	return a.startCF
}

func (a *idleWatcher) React(msg chatMsg, replies *agent.Replies[chatMsg]) agent.ControlFlow {
	replies.Emit(chatMsg{
		speaker: "system",
		body:    "the room quiets down as you speak up.",
		fmt:     glyph.Format{Fg: glyph.BrightBlack},
	})
	return agent.Kill()
}
