package repl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/smol/internal/logging"
	"github.com/aretw0/smol/internal/presentation/tui"
	"github.com/aretw0/smol/pkg/app"
	"github.com/aretw0/smol/pkg/command"
	"github.com/aretw0/smol/pkg/domain"
	"github.com/aretw0/smol/pkg/history"
	"github.com/aretw0/smol/pkg/input"
	"github.com/aretw0/smol/pkg/output"
)

// State is the position of a session in its read-eval loop.
type State string

const (
	StateBooting      State = "booting"
	StateReading      State = "reading"
	StateDispatching  State = "dispatching"
	StateHelp         State = "help"
	StateConfigView   State = "config-view"
	StateConfigSet    State = "config-set"
	StateEnterSubmode State = "enter-submode"
	StateExiting      State = "exiting"
)

var builtins = []string{"help", "h", "?", "config", "c", "config:set", "exit", "quit", "q"}

// Session is one interactive shell bound to an application. Sessions for
// mounted sub-applications are nested inside their parent's loop.
type Session struct {
	app     *app.Application
	prompt  string
	reader  input.LineReader
	out     *output.Printer
	invoker *command.Invoker
	logger  *slog.Logger

	store    history.Store
	persist  bool
	buffer   *history.Buffer
	parent   *Session
	state    State
	lastLine string
}

// Option configures a Session.
type Option func(*Session)

// WithPrompt sets the prompt name. Defaults to the application name.
func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// WithReader sets the line source. Defaults to a Reader over os.Stdin.
func WithReader(r input.LineReader) Option {
	return func(s *Session) {
		s.reader = r
	}
}

// WithOutput sets the printer for prompts and command output.
func WithOutput(p *output.Printer) Option {
	return func(s *Session) {
		s.out = p
	}
}

// WithInvoker sets the invoker that runs dispatched commands.
func WithInvoker(iv *command.Invoker) Option {
	return func(s *Session) {
		s.invoker = iv
	}
}

// WithHistory sets where history is loaded from and saved to.
func WithHistory(store history.Store) Option {
	return func(s *Session) {
		s.store = store
		s.persist = store != nil
	}
}

// WithoutHistory disables history persistence.
func WithoutHistory() Option {
	return func(s *Session) {
		s.store = nil
		s.persist = false
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a Session for a. Unless configured otherwise, history is kept
// in the application's history file or history.DefaultPath(prompt).
func New(a *app.Application, opts ...Option) *Session {
	s := &Session{
		app:     a,
		prompt:  a.Name(),
		persist: true,
		logger:  logging.NewNop(),
		buffer:  history.NewBuffer(history.DefaultLimit),
		state:   StateBooting,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.out == nil {
		s.out = output.NewPrinter(nil)
	}
	if s.reader == nil {
		s.reader = input.NewReader(os.Stdin, s.out.Writer())
	}
	if s.invoker == nil {
		s.invoker = command.NewInvoker(command.WithOutput(s.out), command.WithLogger(s.logger))
	}
	if s.persist && s.store == nil {
		s.store = history.NewFileStore(a.HistoryFile(), s.prompt)
	}
	return s
}

// State returns the current loop state.
func (s *Session) State() State { return s.state }

// LastLine returns the last non-blank line evaluated.
func (s *Session) LastLine() string { return s.lastLine }

// Prompt returns the prompt name, including parent prefixes when nested.
func (s *Session) Prompt() string { return s.prompt }

// Run drives the loop until exit, back (when nested) or end of input.
// An unhandled command error ends the session and is returned.
func (s *Session) Run(ctx context.Context) error {
	s.state = StateBooting
	if s.persist {
		s.loadHistory(ctx)
	}
	s.installCompleter()
	s.bindHistory()
	s.boot()

	var readErr error
	for {
		s.state = StateReading
		line, err := s.reader.ReadLine(ctx, s.out.Style().Caution(s.prompt+"> "))
		if err != nil {
			if !errors.Is(err, io.EOF) {
				readErr = err
			}
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s.lastLine = line
		s.buffer.Add(line)

		done, err := s.eval(ctx, strings.Fields(line))
		if err != nil {
			return err
		}
		if done {
			break
		}
		s.out.Blank()
	}

	s.state = StateExiting
	if s.persist {
		s.saveHistory(context.WithoutCancel(ctx))
	}
	s.out.Hint("goodbye")
	return readErr
}

func (s *Session) eval(ctx context.Context, fields []string) (done bool, err error) {
	switch fields[0] {
	case "exit", "quit", "q":
		s.state = StateExiting
		return true, nil
	case "back":
		if s.parent != nil {
			s.state = StateExiting
			return true, nil
		}
		s.out.Warning("not in a sub-app")
	case "help", "h", "?":
		s.state = StateHelp
		s.help()
	case "config", "c":
		s.state = StateConfigView
		tui.ShowConfig(s.out, s.app.Config())
	case "config:set":
		s.state = StateConfigSet
		if tui.SetConfig(s.out, s.app.Config(), fields[1:]) {
			s.logger.Info("config updated", "key", fields[1])
		}
	default:
		if child := s.app.FindMount(fields[0]); child != nil && len(fields) == 1 {
			s.state = StateEnterSubmode
			return false, s.enter(ctx, child, fields[0])
		}
		s.state = StateDispatching
		return false, s.dispatch(ctx, fields)
	}
	return false, nil
}

func (s *Session) dispatch(ctx context.Context, fields []string) error {
	spec, owner := s.app.Locate(fields[0])
	if spec == nil {
		s.logger.Debug("command unresolved", "error", domain.ErrUnresolvedCommand, "token", fields[0])
		s.out.Warning("unknown command: " + fields[0])
		s.out.Hint("type 'help' for available commands")
		return nil
	}

	args, opts := spec.ParseArguments(fields[1:])
	if len(args) < len(spec.Args) {
		s.logger.Debug("command not invoked", "error", domain.ErrInsufficientArguments, "command", spec.Name)
		s.out.Warning("usage: " + spec.Usage())
		return nil
	}

	env := command.Env{
		Config: owner.Config(),
		Out:    s.out,
		In:     s.reader,
		Logger: s.logger,
	}
	// interactive mode has no exit status, so the result is dropped
	_, err := s.invoker.Invoke(ctx, spec, env, args, opts)
	return err
}

func (s *Session) enter(ctx context.Context, child *app.Application, name string) error {
	nested := &Session{
		app:     child,
		prompt:  s.prompt + ":" + name,
		reader:  s.reader,
		out:     s.out,
		invoker: s.invoker,
		logger:  s.logger,
		buffer:  history.NewBuffer(history.DefaultLimit),
		parent:  s,
		state:   StateBooting,
	}
	err := nested.Run(ctx)
	s.installCompleter()
	s.bindHistory()
	return err
}

func (s *Session) installCompleter() {
	if c, ok := s.reader.(input.Completer); ok {
		c.SetCompleter(s.Complete)
	}
}

// bindHistory points arrow-key recall at this level's buffer, which already
// holds any persisted lines.
func (s *Session) bindHistory() {
	if b, ok := s.reader.(input.HistoryBinder); ok {
		b.BindHistory(s.buffer)
	}
}

// Candidates lists every word completion can offer at this level.
func (s *Session) Candidates() []string {
	var words []string
	for _, c := range s.app.Commands() {
		words = append(words, c.Name)
		words = append(words, c.Aliases...)
	}
	for _, m := range s.app.Mounts() {
		words = append(words, m.Name)
	}
	words = append(words, builtins...)
	if s.parent != nil {
		words = append(words, "back")
	}
	return words
}

// Complete returns the candidates starting with prefix, sorted.
func (s *Session) Complete(prefix string) []string {
	return input.Complete(prefix, s.Candidates())
}

func (s *Session) loadHistory(ctx context.Context) {
	lines, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Debug("history load failed", "error", err)
		return
	}
	s.buffer.Replace(lines)
}

func (s *Session) saveHistory(ctx context.Context) {
	if err := s.store.Save(ctx, s.buffer.Lines()); err != nil {
		s.logger.Debug("history save failed", "error", err)
	}
}
