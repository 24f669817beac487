package smol

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/aretw0/smol/internal/logging"
	"github.com/aretw0/smol/internal/presentation/tui"
	"github.com/aretw0/smol/pkg/app"
	"github.com/aretw0/smol/pkg/cli"
	"github.com/aretw0/smol/pkg/command"
	"github.com/aretw0/smol/pkg/history"
	"github.com/aretw0/smol/pkg/input"
	"github.com/aretw0/smol/pkg/observability"
	"github.com/aretw0/smol/pkg/output"
	"github.com/aretw0/smol/pkg/repl"
	"github.com/prometheus/client_golang/prometheus"
)

// Version is the framework release.
const Version = "0.4.0"

const renderWidth = 80

// Program wires an Application to the terminal: output, input, logging,
// metrics, history and the one-shot dispatcher.
type Program struct {
	app      *app.Application
	prompt   string
	stdin    *os.File
	stdout   io.Writer
	reader   input.LineReader
	logger   *slog.Logger
	registry prometheus.Registerer
	metrics  *observability.Metrics
	hooks    command.LifecycleHooks
	history  history.Store
	style    *output.Style
	render   func(string) (string, error)
}

// Option configures a Program.
type Option func(*Program)

// WithPrompt overrides the program name shown in prompts and usage text.
func WithPrompt(prompt string) Option {
	return func(p *Program) {
		p.prompt = prompt
	}
}

// WithStdin sets the terminal input. An interactive terminal gets the line
// editor with completion, anything else is read line by line.
func WithStdin(f *os.File) Option {
	return func(p *Program) {
		p.stdin = f
	}
}

// WithStdout sets where command output is written. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(p *Program) {
		p.stdout = w
	}
}

// WithReader bypasses stdin detection.
func WithReader(r input.LineReader) Option {
	return func(p *Program) {
		p.reader = r
	}
}

// WithLogger sets the structured logger. Defaults to a stderr logger whose
// level comes from VERBOSE, QUIET and DEBUG.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Program) {
		p.logger = logger
	}
}

// WithMetricsRegistry registers invocation metrics with reg. The collectors
// are registered once, when the Program is created.
func WithMetricsRegistry(reg prometheus.Registerer) Option {
	return func(p *Program) {
		p.registry = reg
	}
}

// WithLifecycleHooks adds hooks run after the built-in logging and metrics hooks.
func WithLifecycleHooks(hooks command.LifecycleHooks) Option {
	return func(p *Program) {
		p.hooks = hooks
	}
}

// WithHistory replaces the default history file.
func WithHistory(store history.Store) Option {
	return func(p *Program) {
		p.history = store
	}
}

// WithStyle forces an output style instead of detecting one from stdout.
func WithStyle(s output.Style) Option {
	return func(p *Program) {
		p.style = &s
	}
}

// WithRenderer sets the markdown renderer for command explanations.
func WithRenderer(render func(string) (string, error)) Option {
	return func(p *Program) {
		p.render = render
	}
}

// New creates a Program for a.
func New(a *app.Application, opts ...Option) *Program {
	p := &Program{
		app:    a,
		prompt: a.Name(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.metrics = observability.NewMetrics(p.registry)
	return p
}

// Run dispatches args and returns the exit status.
func (p *Program) Run(ctx context.Context, args []string) (int, error) {
	flags := logging.FromEnv(os.LookupEnv)
	logger := p.logger
	if logger == nil {
		logger = logging.New(flags.Level())
	}

	printerOpts := []output.PrinterOption{
		output.WithVerbose(flags.Verbose || flags.Debug),
		output.WithDebug(flags.Debug),
	}
	if p.style != nil {
		printerOpts = append(printerOpts, output.WithStyle(*p.style))
	}
	out := output.NewPrinter(p.stdout, printerOpts...)

	if err := p.app.Validate(); err != nil {
		logger.Warn("application has conflicting names", "error", err)
	}

	invokerOpts := []command.InvokerOption{
		command.WithOutput(out),
		command.WithLogger(logger),
		command.WithLifecycleHooks(command.ChainHooks(
			observability.LoggingHooks(logger),
			p.metrics.Hooks(),
			p.hooks,
		)),
	}
	if render := p.renderer(logger); render != nil {
		invokerOpts = append(invokerOpts, command.WithRenderer(render))
	}
	invoker := command.NewInvoker(invokerOpts...)

	reader := p.lineReader()
	sessionOpts := []repl.Option{
		repl.WithPrompt(p.prompt),
		repl.WithOutput(out),
		repl.WithReader(reader),
		repl.WithInvoker(invoker),
		repl.WithLogger(logger),
	}
	if p.history != nil {
		sessionOpts = append(sessionOpts, repl.WithHistory(p.history))
	}

	d := cli.New(p.app,
		cli.WithPrompt(p.prompt),
		cli.WithOutput(out),
		cli.WithInput(reader),
		cli.WithInvoker(invoker),
		cli.WithLogger(logger),
		cli.WithShell(func(ctx context.Context) error {
			return repl.New(p.app, sessionOpts...).Run(ctx)
		}),
	)
	return d.Run(ctx, args)
}

// Exec runs args and folds the outcome into a single error, nil on status 0.
// The error implements ExitCode() int.
func (p *Program) Exec(ctx context.Context, args []string) error {
	return cli.Exit(p.Run(ctx, args))
}

// Main runs the program with the process arguments and exits. An interrupt
// cancels the running command or session.
func (p *Program) Main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := p.Exec(ctx, os.Args[1:])
	stop()
	os.Exit(ExitStatus(os.Stderr, err))
}

// ExitStatus reports err on w as a single line and returns the status it
// carries: 0 for nil, ExitCode() when available, 1 otherwise.
func ExitStatus(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err == nil {
			return exitErr.Code
		}
		err = exitErr.Err
	}
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	_, _ = io.WriteString(w, msg+"\n")
	if exitErr != nil && exitErr.Code != 0 {
		return exitErr.Code
	}
	return 1
}

func (p *Program) lineReader() input.LineReader {
	if p.reader != nil {
		return p.reader
	}
	if p.stdin == nil {
		return input.NewReader(os.Stdin, p.stdout)
	}
	if input.IsTerminal(p.stdin) {
		return input.NewEditor(p.stdin, p.stdout)
	}
	return input.NewReader(p.stdin, p.stdout)
}

func (p *Program) renderer(logger *slog.Logger) func(string) (string, error) {
	if p.render != nil {
		return p.render
	}
	f, ok := p.stdout.(*os.File)
	if !ok || !input.IsTerminal(f) {
		return nil
	}
	render, err := tui.NewRenderer(renderWidth)
	if err != nil {
		logger.Debug("markdown renderer unavailable", "error", err)
		return nil
	}
	return render
}
