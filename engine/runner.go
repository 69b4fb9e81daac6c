package engine

import (
	"context"
	"time"

	"github.com/garaekz/tuigfx/adapter"
	"github.com/garaekz/tuigfx/agent"
	"github.com/garaekz/tuigfx/iosys"
	"github.com/garaekz/tuigfx/logx"
	"github.com/garaekz/tuigfx/ui"
)

// pollYield is the maximum sleep between nonblocking input polls within a
// round.
const pollYield = 2 * time.Millisecond

// defaultInputTick is the default seconds-per-round.
const defaultInputTick = 100 * time.Millisecond

// defaultRenderInterval targets a ~60Hz render cap.
const defaultRenderInterval = time.Second / 60

// stepFunc is the one difference between the serial and parallel runner
// strategies: how one round of agent dispatch is carried out.
type stepFunc[M agent.Message[M]] func(messages *[]M, agents *[]agent.Agent[M]) error

// Runner is the top-level loop builder: bundle starting agents, starting
// messages, an input-tick target, and a runner Strategy, then Run it
// against a concrete IoSystem/IoRunner pair.
type Runner[M agent.Message[M]] struct {
	game      Game[M]
	agents    []agent.Agent[M]
	messages  []M
	inputTick time.Duration
	render    time.Duration
	strategy  Strategy
	log       *logx.Logger
}

// New builds a Runner around game, defaulting to a 100ms input tick and
// the Orig strategy.
func New[M agent.Message[M]](game Game[M]) *Runner[M] {
	return &Runner[M]{
		game:      game,
		inputTick: defaultInputTick,
		render:    defaultRenderInterval,
		strategy:  RunOrig,
		log:       logx.GetLogger(),
	}
}

// Spawn queues agent to start in the first round.
func (r *Runner[M]) Spawn(a agent.Agent[M]) *Runner[M] {
	r.agents = append(r.agents, a)
	return r
}

// Queue seeds the first round's message inbox with msg.
func (r *Runner[M]) Queue(msg M) *Runner[M] {
	r.messages = append(r.messages, msg)
	return r
}

// InputTick overrides the default 100ms seconds-per-round.
func (r *Runner[M]) InputTick(d time.Duration) *Runner[M] {
	r.inputTick = d
	return r
}

// RenderInterval overrides the default ~60Hz render cadence cap.
func (r *Runner[M]) RenderInterval(d time.Duration) *Runner[M] {
	r.render = d
	return r
}

// WithStrategy selects one of the three runner strategies. RunOrig is the
// default if this is never called.
func (r *Runner[M]) WithStrategy(s Strategy) *Runner[M] {
	r.strategy = s
	return r
}

// WithLogger overrides the package-global logger handed to the adapter and
// to agent.Runner (reap diagnostics), and used for IO runner and
// adapter-close warnings.
func (r *Runner[M]) WithLogger(log *logx.Logger) *Runner[M] {
	r.log = log
	return r
}

// Run starts the main loop against sys/iorun and blocks until the Game
// requests a stop, the IoSystem reports Closed, or an unrecoverable IO
// error occurs.
func (r *Runner[M]) Run(sys iosys.IoSystem, iorun iosys.IoRunner) error {
	if r.game == nil {
		return ErrNoGame
	}

	ad, err := adapter.New(sys, r.render, r.log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := ad.Close(); cerr != nil {
			r.log.Warn("adapter close: %v", cerr)
		}
	}()

	agentRunner := agent.NewRunner[M](r.log)
	serialStep := func(messages *[]M, agents *[]agent.Agent[M]) error {
		agentRunner.Step(messages, agents)
		return nil
	}
	parallelStep := func(messages *[]M, agents *[]agent.Agent[M]) error {
		return agentRunner.StepParallel(context.Background(), messages, agents)
	}

	switch r.strategy {
	case RunSingle:
		return r.runCooperative(ad, iorun, serialStep)
	case RunParallel:
		go r.driveIoRunner(iorun)
		return r.runLoop(ad, parallelStep)
	default:
		go r.driveIoRunner(iorun)
		return r.runLoop(ad, serialStep)
	}
}

// driveIoRunner runs iorun.Run() to completion, logging (rather than
// propagating) any error -- the engine loop's own Draw/PollInput calls are
// what surface a dead backend to the Run caller.
func (r *Runner[M]) driveIoRunner(iorun iosys.IoRunner) {
	if err := iorun.Run(); err != nil {
		r.log.Warn("io runner stopped: %v", err)
	}
}

// runCooperative is the Single strategy: no background goroutine drives
// the IoRunner. Instead, iorun.Step is ticked once per engine-loop pass,
// cooperatively sharing this goroutine with the game/agent loop.
func (r *Runner[M]) runCooperative(ad *adapter.Adapter, iorun iosys.IoRunner, step stepFunc[M]) error {
	messages := append([]M(nil), r.messages...)
	agents := append([]agent.Agent[M](nil), r.agents...)

	for {
		stop, err := iorun.Step()
		if err != nil {
			return err
		}
		if stop {
			return nil
		}

		stop, err = r.roundOnce(ad, &messages, &agents, step)
		if err != nil || stop {
			return err
		}
	}
}

// runLoop is the shared Orig/Parallel loop body: the IoRunner runs on its
// own goroutine (started by the caller before entering this function), and
// every pass here just drives rounds of input/message/agent-step/render.
func (r *Runner[M]) runLoop(ad *adapter.Adapter, step stepFunc[M]) error {
	messages := append([]M(nil), r.messages...)
	agents := append([]agent.Agent[M](nil), r.agents...)

	for {
		stop, err := r.roundOnce(ad, &messages, &agents, step)
		if err != nil || stop {
			return err
		}
	}
}

// roundOnce runs exactly one pass of the per-iteration algorithm: render,
// drain input for one input-tick window (dispatching each event to the
// Game), refresh on an idle round, deliver the round's messages to the
// Game, then advance the agent scheduler by one round.
func (r *Runner[M]) roundOnce(ad *adapter.Adapter, messages *[]M, agents *[]agent.Agent[M], step stepFunc[M]) (bool, error) {
	if err := ad.Draw(); err != nil {
		return false, err
	}

	var frame agent.Replies[M]
	hadInput := false
	deadline := time.Now().Add(r.inputTick)

	for {
		stop, got, err := ad.PollInput(func(region ui.Region) bool {
			stop := r.game.Attach(region, &frame)
			return stop || region.Input().Kind == ui.ActionClosed
		})
		if err != nil {
			return false, err
		}
		if stop {
			return true, nil
		}
		if got {
			hadInput = true
		}
		if time.Now().After(deadline) {
			break
		}
		time.Sleep(pollYield)
	}

	if !hadInput {
		if ad.Refresh(func(region ui.Region) bool { return r.game.Attach(region, &frame) }) {
			return true, nil
		}
	}

	*messages = append(*messages, frame.Messages...)
	*agents = append(*agents, frame.Agents...)

	for _, m := range *messages {
		r.game.Message(m)
	}

	if err := step(messages, agents); err != nil {
		return false, err
	}
	return false, nil
}
