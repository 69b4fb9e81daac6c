package engine

// Strategy selects one of three observationally-equivalent ways to run the
// agent/game loop against an IoRunner. Rather than a build-flag-selected
// swap, the choice is exposed as a plain Runner option, defaulting to
// RunOrig.
type Strategy int

const (
	// RunOrig runs the agent/game loop on its own goroutine while an
	// IoRunner goroutine owns the platform event loop -- the default,
	// a two-goroutine split.
	RunOrig Strategy = iota

	// RunSingle ticks the IoRunner cooperatively from inside the engine
	// loop itself, via Step, once per pass. No second goroutine is
	// started.
	RunSingle

	// RunParallel fans each round's agent reactions across a bounded
	// worker pool (agent.Runner.StepParallel) instead of reacting them in
	// spawn order on one goroutine. IoRunner still runs on its own
	// goroutine, as in RunOrig.
	RunParallel
)

func (s Strategy) String() string {
	switch s {
	case RunOrig:
		return "orig"
	case RunSingle:
		return "single"
	case RunParallel:
		return "parallel"
	default:
		return "unknown"
	}
}
