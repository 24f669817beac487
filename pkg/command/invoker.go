package command

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/smol/internal/logging"
	"github.com/aretw0/smol/pkg/check"
	"github.com/aretw0/smol/pkg/config"
	"github.com/aretw0/smol/pkg/domain"
	"github.com/aretw0/smol/pkg/input"
	"github.com/aretw0/smol/pkg/output"
)

// Env is the application context a command runs in.
type Env struct {
	Config *config.Store
	Out    *output.Printer
	In     input.LineReader
	Logger *slog.Logger
}

// Invocation is passed to bodies, hooks and handlers.
type Invocation struct {
	Ctx     context.Context
	Spec    *Spec
	Args    []string
	Options Values
	Env     Env

	// Result is the body's result; set before after actions run.
	Result any
	// Err is the error being handled; set for rescue handlers only.
	Err error
}

// Arg returns the i-th positional argument or "".
func (inv *Invocation) Arg(i int) string {
	if i < len(inv.Args) {
		return inv.Args[i]
	}
	return ""
}

// Prompter returns a Prompter over the invocation's input and output.
func (inv *Invocation) Prompter() *input.Prompter {
	return input.NewPrompter(inv.Env.In, inv.Env.Out)
}

// RunChecks runs specs in order, printing each result, and reports whether
// all of them passed. The invocation's positional args are passed through.
func (inv *Invocation) RunChecks(specs ...*check.Spec) bool {
	env := check.Env{Config: inv.Env.Config, Args: inv.Args}
	outcomes := check.RunAll(inv.Ctx, env, specs...)
	for _, o := range outcomes {
		inv.Env.Out.CheckResult(o.Name, o.Result.Passed(), o.Result.Message())
		inv.Env.Out.Blank()
	}
	return check.AllPassed(outcomes)
}

// Invoker runs commands through the before/body/after pipeline.
type Invoker struct {
	out    *output.Printer
	render func(string) (string, error)
	hooks  LifecycleHooks
	logger *slog.Logger
}

// InvokerOption configures an Invoker.
type InvokerOption func(*Invoker)

// WithOutput sets the printer used when Env.Out is nil.
func WithOutput(p *output.Printer) InvokerOption {
	return func(iv *Invoker) {
		iv.out = p
	}
}

// WithRenderer sets the markdown renderer applied to Spec.Explain.
func WithRenderer(render func(string) (string, error)) InvokerOption {
	return func(iv *Invoker) {
		iv.render = render
	}
}

// WithLifecycleHooks sets the callbacks fired around every invocation.
func WithLifecycleHooks(hooks LifecycleHooks) InvokerOption {
	return func(iv *Invoker) {
		iv.hooks = hooks
	}
}

// WithLogger sets the logger handed to commands when Env.Logger is nil.
func WithLogger(logger *slog.Logger) InvokerOption {
	return func(iv *Invoker) {
		iv.logger = logger
	}
}

// NewInvoker creates an Invoker.
func NewInvoker(opts ...InvokerOption) *Invoker {
	iv := &Invoker{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(iv)
	}
	if iv.out == nil {
		iv.out = output.NewPrinter(nil)
	}
	return iv
}

// Invoke runs spec with already parsed arguments.
//
// The title header is printed first. Before actions then run in order; a
// before action returning the literal false aborts and false is the result.
// The body runs next, then after actions with Invocation.Result set. The
// body's result is returned.
//
// An error from any stage is offered to spec.Rescue in declaration order.
// The first matching handler's return value becomes the result. Without a
// match the error is returned unchanged.
func (iv *Invoker) Invoke(ctx context.Context, spec *Spec, env Env, args []string, opts Values) (any, error) {
	if env.Out == nil {
		env.Out = iv.out
	}
	if env.Logger == nil {
		env.Logger = iv.logger
	}
	if opts == nil {
		opts = Values{}
	}

	inv := &Invocation{
		Ctx:     ctx,
		Spec:    spec,
		Args:    args,
		Options: opts,
		Env:     env,
	}
	var target any
	if spec.New != nil {
		target = spec.New()
	}

	event := &CommandEvent{Name: spec.Name, Args: args}
	if iv.hooks.OnCommandStart != nil {
		iv.hooks.OnCommandStart(ctx, event)
	}
	start := time.Now()

	iv.header(spec, env.Out)
	result, aborted, err := iv.pipeline(inv, target)
	if err != nil {
		if handle, ok := spec.rescueFor(err); ok {
			iv.logger.Debug("recovering command error", "command", spec.Name, "error", err)
			inv.Err = err
			event.Recovered = true
			result, err = iv.call(handle, inv, target)
		}
	}

	event.Duration = time.Since(start)
	event.Result = result
	event.Err = err
	event.Aborted = aborted
	if iv.hooks.OnCommandFinish != nil {
		iv.hooks.OnCommandFinish(ctx, event)
	}

	return result, err
}

func (iv *Invoker) header(spec *Spec, out *output.Printer) {
	if spec.Title == "" {
		return
	}
	out.Header(spec.Title)
	if spec.Explain != "" {
		out.Desc(iv.explain(spec))
	}
	out.Blank()
}

func (iv *Invoker) explain(spec *Spec) string {
	if iv.render == nil {
		return spec.Explain
	}
	rendered, err := iv.render(spec.Explain)
	if err != nil {
		iv.logger.Debug("explain render failed", "command", spec.Name, "error", err)
		return spec.Explain
	}
	return strings.Trim(rendered, "\n")
}

func (iv *Invoker) pipeline(inv *Invocation, target any) (result any, aborted bool, err error) {
	for _, a := range inv.Spec.Before {
		r, err := iv.call(a, inv, target)
		if err != nil {
			return nil, false, err
		}
		if b, ok := r.(bool); ok && !b {
			iv.logger.Debug("before action aborted command", "command", inv.Spec.Name, "action", a.String())
			return false, true, nil
		}
	}

	result, err = iv.body(inv, target)
	if err != nil {
		return nil, false, err
	}

	inv.Result = result
	for _, a := range inv.Spec.After {
		if _, err := iv.call(a, inv, target); err != nil {
			return nil, false, err
		}
	}
	return result, false, nil
}

func (iv *Invoker) body(inv *Invocation, target any) (any, error) {
	if inv.Spec.Run != nil {
		return inv.Spec.Run(inv)
	}
	if cmd, ok := target.(Command); ok {
		return cmd.Run(inv)
	}
	return nil, fmt.Errorf("%w: %s has no body", domain.ErrUnknownMethod, inv.Spec.Name)
}

func (iv *Invoker) call(a Action, inv *Invocation, target any) (any, error) {
	fn, err := a.resolve(target)
	if err != nil {
		return nil, err
	}
	return fn(inv)
}
