package command

import (
	"context"
	"time"
)

// CommandEvent describes one invocation. Finish fields are zero on start.
type CommandEvent struct {
	Name      string
	Args      []string
	Duration  time.Duration
	Result    any
	Err       error
	Aborted   bool // a before action returned false
	Recovered bool // a rescue handler produced the result
}

// LifecycleHooks defines callbacks for invocation observability.
type LifecycleHooks struct {
	OnCommandStart  func(context.Context, *CommandEvent)
	OnCommandFinish func(context.Context, *CommandEvent)
}

// ChainHooks calls every set callback of each hooks value, in order.
func ChainHooks(hooks ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnCommandStart: func(ctx context.Context, e *CommandEvent) {
			for _, h := range hooks {
				if h.OnCommandStart != nil {
					h.OnCommandStart(ctx, e)
				}
			}
		},
		OnCommandFinish: func(ctx context.Context, e *CommandEvent) {
			for _, h := range hooks {
				if h.OnCommandFinish != nil {
					h.OnCommandFinish(ctx, e)
				}
			}
		},
	}
}
