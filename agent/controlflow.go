package agent

import "time"

type cfKind int

const (
	cfContinue cfKind = iota
	cfKill
	cfHandle
	cfTime
)

// ControlFlow is what an Agent returns from Start/React, indicating when it
// should be called again. It's a closed sum of four variants; unexported
// fields keep callers going through the constructors below rather than
// building one by hand.
type ControlFlow struct {
	kind   cfKind
	handle *WaitHandle
	when   time.Time
}

// Continue means the agent is ready again next round.
func Continue() ControlFlow { return ControlFlow{kind: cfContinue} }

// Kill is terminal: the agent is reaped at the end of the current round and
// never reacts again.
func Kill() ControlFlow { return ControlFlow{kind: cfKill} }

// Wait builds a ControlFlow that's ready only once the returned WaitHandle
// is woken, along with the handle itself so the caller can wake it (or hand
// it to someone else who will). Both the ControlFlow and the returned
// handle count as holders for WaitHandle.References.
func Wait() (ControlFlow, *WaitHandle) {
	core := newWaitCore()
	internal := attachWaitHandle(core)
	external := attachWaitHandle(core)
	return ControlFlow{kind: cfHandle, handle: internal}, external
}

// SleepUntil is ready once wall-clock time passes t.
func SleepUntil(t time.Time) ControlFlow {
	return ControlFlow{kind: cfTime, when: t}
}

// SleepFor is ready once d has elapsed from now.
func SleepFor(d time.Duration) ControlFlow {
	return SleepUntil(time.Now().Add(d))
}

// IsReady reports whether an agent that returned cf may react again.
func (cf ControlFlow) IsReady() bool {
	switch cf.kind {
	case cfContinue:
		return true
	case cfKill:
		return false
	case cfHandle:
		return cf.handle.isWoken()
	case cfTime:
		return time.Now().After(cf.when)
	default:
		return false
	}
}

// IsKill reports whether cf is the terminal Kill variant.
func (cf ControlFlow) IsKill() bool {
	return cf.kind == cfKill
}

// Handle returns the wait handle backing cf, if cf is the Handle variant.
func (cf ControlFlow) Handle() (*WaitHandle, bool) {
	if cf.kind != cfHandle {
		return nil, false
	}
	return cf.handle, true
}
