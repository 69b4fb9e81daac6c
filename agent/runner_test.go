package agent

import (
	"reflect"
	"runtime"
	"testing"
)

type testMsg struct {
	Val string
}

func (m testMsg) Tick() testMsg { return testMsg{Val: "tick"} }

// echoAgent emits its own tag once on Start, then echoes every non-tick
// message it reacts to back into the outbox.
type echoAgent struct {
	tag string
}

func (a *echoAgent) Start(r *Replies[testMsg]) ControlFlow {
	r.Emit(testMsg{Val: a.tag})
	return Continue()
}

func (a *echoAgent) React(msg testMsg, r *Replies[testMsg]) ControlFlow {
	if msg.Val != "tick" {
		r.Emit(msg)
	}
	return Continue()
}

func vals(msgs []testMsg) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Val
	}
	return out
}

// TestAgentRunnerEmptyTickRound covers scenario S1: each agent emits its tag
// from Start, the tick filler of the first (empty) round produces nothing,
// and in the second round both agents echo both of the first round's
// messages.
func TestAgentRunnerEmptyTickRound(t *testing.T) {
	r := NewRunner[testMsg](nil)
	agents := []Agent[testMsg]{&echoAgent{tag: "A"}, &echoAgent{tag: "B"}}
	var messages []testMsg

	r.Step(&messages, &agents)
	if got := vals(messages); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("after first step: got %v, want [A B]", got)
	}

	r.Step(&messages, &agents)
	if got := vals(messages); !reflect.DeepEqual(got, []string{"A", "B", "A", "B"}) {
		t.Fatalf("after second step: got %v, want [A B A B]", got)
	}
}

type killAfterOneAgent struct {
	reacted bool
}

func (a *killAfterOneAgent) Start(r *Replies[testMsg]) ControlFlow { return Continue() }

func (a *killAfterOneAgent) React(msg testMsg, r *Replies[testMsg]) ControlFlow {
	a.reacted = true
	return Kill()
}

func TestAgentRunnerReapsKilledAgent(t *testing.T) {
	r := NewRunner[testMsg](nil)
	agent := &killAfterOneAgent{}
	agents := []Agent[testMsg]{agent}
	var messages []testMsg

	r.Step(&messages, &agents)
	if !agent.reacted {
		t.Fatal("expected the agent to have reacted once")
	}
	if len(r.entries) != 0 {
		t.Fatalf("expected the killed agent to be reaped, got %d entries", len(r.entries))
	}
}

// TestAgentRunnerWakeHandleReap covers scenario S6: once the last outside
// reference to an agent's WaitHandle is dropped and collected, the runner
// reaps the agent still waiting on it.
func TestAgentRunnerWakeHandleReap(t *testing.T) {
	r := NewRunner[testMsg](nil)
	agent := &waitingAgent{}
	agents := []Agent[testMsg]{agent}
	var messages []testMsg

	r.Step(&messages, &agents)
	if len(messages) != 0 {
		t.Fatalf("expected no emitted messages, got %v", messages)
	}
	if len(r.entries) != 1 {
		t.Fatalf("expected the waiting agent to remain, got %d entries", len(r.entries))
	}

	agent.Handle = nil
	runtime.GC()
	runtime.GC()

	r.Step(&messages, &agents)
	if len(r.entries) != 0 {
		t.Fatalf("expected the orphaned waiting agent to be reaped, got %d entries", len(r.entries))
	}
}

type waitingAgent struct {
	Handle *WaitHandle
}

func (a *waitingAgent) Start(r *Replies[testMsg]) ControlFlow {
	cf, h := Wait()
	a.Handle = h
	return cf
}

func (a *waitingAgent) React(msg testMsg, r *Replies[testMsg]) ControlFlow {
	return Continue()
}

func TestAgentRunnerPreservesSpawnedAgentsAcrossRounds(t *testing.T) {
	r := NewRunner[testMsg](nil)
	spawner := &spawnOnceAgent{}
	agents := []Agent[testMsg]{spawner}
	var messages []testMsg

	r.Step(&messages, &agents)
	if len(agents) != 1 {
		t.Fatalf("expected the spawned agent to come out as next round's input, got %d", len(agents))
	}

	r.Step(&messages, &agents)
	if len(agents) != 0 {
		t.Fatalf("expected no further spawns, got %d", len(agents))
	}
	if len(r.entries) != 2 {
		t.Fatalf("expected both the original and the spawned agent to be running, got %d", len(r.entries))
	}
}

type spawnOnceAgent struct {
	spawned bool
}

func (a *spawnOnceAgent) Start(r *Replies[testMsg]) ControlFlow {
	if !a.spawned {
		a.spawned = true
		r.Spawn(&echoAgent{tag: "spawned"})
	}
	return Continue()
}

func (a *spawnOnceAgent) React(msg testMsg, r *Replies[testMsg]) ControlFlow {
	return Continue()
}
