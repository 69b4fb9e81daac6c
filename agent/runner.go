package agent

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/garaekz/tuigfx/logx"
)

type entry[M Message[M]] struct {
	cf    ControlFlow
	agent Agent[M]
}

// Runner owns the live agent set and fans each round's messages out to
// whichever agents are ready, reaping killed or orphaned ones as it goes.
type Runner[M Message[M]] struct {
	entries []entry[M]
	replies Replies[M]
	log     *logx.Logger
}

// NewRunner creates an empty Runner. If log is nil, logx's package-global
// logger is used.
func NewRunner[M Message[M]](log *logx.Logger) *Runner[M] {
	if log == nil {
		log = logx.GetLogger()
	}
	return &Runner[M]{log: log}
}

// Step runs one round: starts newly spawned agents, fills in a tick message
// if the round would otherwise be empty, reacts every ready agent to every
// message in spawn order, reaps dead/orphaned agents, then swaps messages
// and agents to the replies collected this round so the caller sees exactly
// what the next round should start with.
func (r *Runner[M]) Step(messages *[]M, agents *[]Agent[M]) {
	for _, a := range *agents {
		cf := a.Start(&r.replies)
		r.entries = append(r.entries, entry[M]{cf: cf, agent: a})
	}
	*agents = nil

	if len(*messages) == 0 {
		var zero M
		*messages = append(*messages, zero.Tick())
	}

	for i := range r.entries {
		e := &r.entries[i]
		if !e.cf.IsReady() {
			continue
		}
		for _, msg := range *messages {
			e.cf = e.agent.React(msg, &r.replies)
			if !e.cf.IsReady() {
				break
			}
		}
	}

	r.reap()

	*messages, r.replies.Messages = r.replies.Messages, (*messages)[:0]
	*agents, r.replies.Agents = r.replies.Agents, (*agents)[:0]
}

func (r *Runner[M]) reap() {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.cf.IsKill() {
			r.log.Debug("agent reaped: killed")
			continue
		}
		if h, ok := e.cf.Handle(); ok && h.References() <= 1 {
			r.log.Debug("agent reaped: wait handle orphaned")
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
}

// StepParallel is Step's concurrent variant: each ready agent's reaction
// chain runs on its own goroutine, bounded to GOMAXPROCS(0) concurrent
// workers by a weighted semaphore. Replies from every agent are merged by
// concatenation once all workers finish; cross-agent ordering within the
// merged Messages/Agents slices is unspecified.
//
// Safe only when agents do not share mutable state outside their Replies.
func (r *Runner[M]) StepParallel(ctx context.Context, messages *[]M, agents *[]Agent[M]) error {
	for _, a := range *agents {
		cf := a.Start(&r.replies)
		r.entries = append(r.entries, entry[M]{cf: cf, agent: a})
	}
	*agents = nil

	if len(*messages) == 0 {
		var zero M
		*messages = append(*messages, zero.Tick())
	}

	sem := semaphore.NewWeighted(int64(max(1, runtime.GOMAXPROCS(0))))
	group, gctx := errgroup.WithContext(ctx)
	perAgent := make([]Replies[M], len(r.entries))

	for i := range r.entries {
		i := i
		e := &r.entries[i]
		if !e.cf.IsReady() {
			continue
		}
		if err := sem.Acquire(gctx, 1); err != nil {
			return err
		}
		group.Go(func() error {
			defer sem.Release(1)
			cf := e.cf
			for _, msg := range *messages {
				cf = e.agent.React(msg, &perAgent[i])
				if !cf.IsReady() {
					break
				}
			}
			e.cf = cf
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for i := range perAgent {
		r.replies.Agents = append(r.replies.Agents, perAgent[i].Agents...)
		r.replies.Messages = append(r.replies.Messages, perAgent[i].Messages...)
	}

	r.reap()

	*messages, r.replies.Messages = r.replies.Messages, (*messages)[:0]
	*agents, r.replies.Agents = r.replies.Agents, (*agents)[:0]
	return nil
}
