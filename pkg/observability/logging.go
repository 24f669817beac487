package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/smol/pkg/command"
)

// LoggingHooks logs invocation start at debug level and finish at info
// level, or at error level when the invocation failed.
func LoggingHooks(logger *slog.Logger) command.LifecycleHooks {
	return command.LifecycleHooks{
		OnCommandStart: func(ctx context.Context, e *command.CommandEvent) {
			logger.DebugContext(ctx, "command_start", "command", e.Name, "args", e.Args)
		},
		OnCommandFinish: func(ctx context.Context, e *command.CommandEvent) {
			if e.Err != nil {
				logger.ErrorContext(ctx, "command_finish",
					"command", e.Name,
					"duration", e.Duration,
					"error", e.Err,
				)
				return
			}
			logger.InfoContext(ctx, "command_finish",
				"command", e.Name,
				"duration", e.Duration,
				"outcome", Outcome(e),
			)
		},
	}
}
