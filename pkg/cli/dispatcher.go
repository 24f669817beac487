package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/aretw0/smol/internal/logging"
	"github.com/aretw0/smol/internal/presentation/tui"
	"github.com/aretw0/smol/pkg/app"
	"github.com/aretw0/smol/pkg/command"
	"github.com/aretw0/smol/pkg/domain"
	"github.com/aretw0/smol/pkg/input"
	"github.com/aretw0/smol/pkg/output"
	"github.com/aretw0/smol/pkg/repl"
)

// Dispatcher runs one command from an argument vector.
type Dispatcher struct {
	app     *app.Application
	prompt  string
	out     *output.Printer
	in      input.LineReader
	invoker *command.Invoker
	shell   func(ctx context.Context) error
	logger  *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPrompt sets the program name used in usage text and by the shell.
func WithPrompt(prompt string) Option {
	return func(d *Dispatcher) {
		d.prompt = prompt
	}
}

// WithOutput sets the printer for command and error output.
func WithOutput(p *output.Printer) Option {
	return func(d *Dispatcher) {
		d.out = p
	}
}

// WithInput sets the reader handed to commands for prompts.
func WithInput(r input.LineReader) Option {
	return func(d *Dispatcher) {
		d.in = r
	}
}

// WithInvoker sets the invoker that runs resolved commands.
func WithInvoker(iv *command.Invoker) Option {
	return func(d *Dispatcher) {
		d.invoker = iv
	}
}

// WithShell sets what runs for an empty argument vector. Defaults to a
// repl.Session sharing the dispatcher's prompt, output and invoker.
func WithShell(shell func(ctx context.Context) error) Option {
	return func(d *Dispatcher) {
		d.shell = shell
	}
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// New creates a Dispatcher for a.
func New(a *app.Application, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		app:    a,
		prompt: a.Name(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.out == nil {
		d.out = output.NewPrinter(nil)
	}
	if d.in == nil {
		d.in = input.NewReader(os.Stdin, d.out.Writer())
	}
	if d.invoker == nil {
		d.invoker = command.NewInvoker(command.WithOutput(d.out), command.WithLogger(d.logger))
	}
	if d.shell == nil {
		d.shell = func(ctx context.Context) error {
			return repl.New(a,
				repl.WithPrompt(d.prompt),
				repl.WithOutput(d.out),
				repl.WithReader(d.in),
				repl.WithInvoker(d.invoker),
				repl.WithLogger(d.logger),
			).Run(ctx)
		}
	}
	return d
}

// Run dispatches args and returns the process exit status. A non-nil error
// is an unhandled command or shell error; the status is then 1.
//
// Requesting help exits 1: it is not a successful invocation.
func (d *Dispatcher) Run(ctx context.Context, args []string) (int, error) {
	if len(args) == 0 {
		if !d.app.REPLEnabled() {
			d.Usage()
			return 1, nil
		}
		if err := d.shell(ctx); err != nil {
			return 1, err
		}
		return 0, nil
	}

	if !d.app.CLIEnabled() {
		d.out.Failure("CLI mode is disabled")
		if d.app.REPLEnabled() {
			d.out.Hint("run without arguments for interactive mode")
		}
		return 1, nil
	}

	name, rest := args[0], args[1:]
	switch name {
	case "help", "-h", "--help":
		d.Usage()
		return 1, nil
	case "config":
		tui.ShowConfig(d.out, d.app.Config())
		return 0, nil
	case "config:set":
		if tui.SetConfig(d.out, d.app.Config(), rest) {
			d.logger.Info("config updated", "key", rest[0])
		}
		return 0, nil
	}

	spec, owner := d.app.Locate(name)
	if spec == nil {
		d.logger.Debug("command unresolved", "error", domain.ErrUnresolvedCommand, "token", name)
		d.Usage()
		return 1, nil
	}

	positional, opts := spec.ParseArguments(rest)
	env := command.Env{
		Config: owner.Config(),
		Out:    d.out,
		In:     d.in,
		Logger: d.logger,
	}
	result, err := d.invoker.Invoke(ctx, spec, env, positional, opts)
	if err != nil {
		return 1, err
	}
	if ok, isBool := result.(bool); isBool && !ok {
		return 1, nil
	}
	return 0, nil
}
