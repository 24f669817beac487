package app

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/aretw0/smol/internal/logging"
	"github.com/aretw0/smol/pkg/check"
	"github.com/aretw0/smol/pkg/command"
	"github.com/aretw0/smol/pkg/config"
	"github.com/aretw0/smol/pkg/domain"
)

// BootMode selects what an interactive session prints on start.
type BootMode string

const (
	BootHelp    BootMode = "help"
	BootMinimal BootMode = "minimal"
	BootNone    BootMode = "none"
)

// Mount is a named child application.
type Mount struct {
	Name string
	App  *Application
}

// Application owns commands, checks, mounts and configuration.
// Registration is append-only and not safe for concurrent use.
type Application struct {
	name        string
	banner      string
	cli         bool
	repl        bool
	boot        BootMode
	historyFile string
	config      *config.Store
	logger      *slog.Logger

	commands   []*command.Spec
	checks     []*check.Spec
	mounts     map[string]*Application
	mountOrder []string
	explicit   bool
}

// Option configures an Application.
type Option func(*Application)

// WithBanner sets the text printed at the top of help and boot output.
func WithBanner(text string) Option {
	return func(a *Application) {
		a.banner = text
	}
}

// WithCLI enables or disables one-shot dispatch. Enabled by default.
func WithCLI(enabled bool) Option {
	return func(a *Application) {
		a.cli = enabled
	}
}

// WithREPL enables or disables interactive mode. Enabled by default.
func WithREPL(enabled bool) Option {
	return func(a *Application) {
		a.repl = enabled
	}
}

// WithBoot sets the boot message mode. Defaults to BootHelp.
func WithBoot(mode BootMode) Option {
	return func(a *Application) {
		a.boot = mode
	}
}

// WithHistoryFile overrides the interactive history location.
func WithHistoryFile(path string) Option {
	return func(a *Application) {
		a.historyFile = path
	}
}

// WithConfig replaces the application's configuration store.
func WithConfig(store *config.Store) Option {
	return func(a *Application) {
		a.config = store
	}
}

// WithLogger sets the logger that traces registration and mounting.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Application) {
		a.logger = logger
	}
}

// New creates an Application named name.
func New(name string, opts ...Option) *Application {
	a := &Application{
		name:   name,
		cli:    true,
		repl:   true,
		boot:   BootHelp,
		mounts: make(map[string]*Application),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.config == nil {
		a.config = config.New()
	}
	return a
}

// Name returns the application name, used as the default prompt.
func (a *Application) Name() string { return a.name }

// Banner returns the text shown above help and boot output.
func (a *Application) Banner() string { return a.banner }

// CLIEnabled reports whether one-shot dispatch is allowed.
func (a *Application) CLIEnabled() bool { return a.cli }

// REPLEnabled reports whether interactive mode is allowed.
func (a *Application) REPLEnabled() bool { return a.repl }

// Boot returns what a session prints when it starts.
func (a *Application) Boot() BootMode { return a.boot }

// HistoryFile returns the history path override, empty for the default.
func (a *Application) HistoryFile() string { return a.historyFile }

// Config returns the application's settings store.
func (a *Application) Config() *config.Store { return a.config }

// ExplicitRegistration reports whether Register has been used. Once set,
// namespaces no longer attach commands or checks to this application.
func (a *Application) ExplicitRegistration() bool { return a.explicit }

// Register appends specs and switches the application to explicit
// registration mode. Duplicates are appended as given.
func (a *Application) Register(specs ...*command.Spec) {
	a.explicit = true
	for _, s := range specs {
		a.attach(s)
	}
}

// RegisterCheck appends check specs.
func (a *Application) RegisterCheck(specs ...*check.Spec) {
	for _, s := range specs {
		a.attachCheck(s)
	}
}

func (a *Application) attach(spec *command.Spec) {
	a.logger.Debug("command registered", "app", a.name, "command", spec.Name)
	a.commands = append(a.commands, spec)
}

func (a *Application) attachCheck(spec *check.Spec) {
	a.logger.Debug("check registered", "app", a.name, "check", spec.Name)
	a.checks = append(a.checks, spec)
}

// Mount attaches child under prefix. Mounting an existing prefix replaces
// the child but keeps the prefix's position.
func (a *Application) Mount(child *Application, prefix string) {
	if _, exists := a.mounts[prefix]; !exists {
		a.mountOrder = append(a.mountOrder, prefix)
	}
	a.mounts[prefix] = child
	a.logger.Debug("application mounted", "app", a.name, "prefix", prefix, "child", child.name)
}

// Resolve returns the command matching token, or nil. A "prefix:rest" token
// whose prefix is a mount is resolved in the child as "rest".
func (a *Application) Resolve(token string) *command.Spec {
	spec, _ := a.Locate(token)
	return spec
}

// Locate is Resolve that also returns the application owning the command.
func (a *Application) Locate(token string) (*command.Spec, *Application) {
	if prefix, rest, found := strings.Cut(token, ":"); found {
		if child, ok := a.mounts[prefix]; ok {
			return child.Locate(rest)
		}
	}
	for _, c := range a.commands {
		if c.Matches(token) {
			return c, a
		}
	}
	return nil, nil
}

// FindMount returns the child mounted at name, or nil.
func (a *Application) FindMount(name string) *Application {
	return a.mounts[name]
}

// FindCheck returns the first check named name, or nil.
func (a *Application) FindCheck(name string) *check.Spec {
	for _, c := range a.checks {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Commands returns the registered commands in registration order.
func (a *Application) Commands() []*command.Spec {
	return append([]*command.Spec(nil), a.commands...)
}

func (a *Application) Checks() []*check.Spec {
	return append([]*check.Spec(nil), a.checks...)
}

// Mounts returns the mounts in the order their prefixes were first mounted.
func (a *Application) Mounts() []Mount {
	out := make([]Mount, 0, len(a.mountOrder))
	for _, name := range a.mountOrder {
		out = append(out, Mount{Name: name, App: a.mounts[name]})
	}
	return out
}

// Validate reports names and aliases used by more than one command, and
// check names used more than once. Registration itself never rejects.
func (a *Application) Validate() error {
	var errs []error

	owners := make(map[string]string)
	for _, c := range a.commands {
		for _, token := range append([]string{c.Name}, c.Aliases...) {
			if prev, taken := owners[token]; taken {
				errs = append(errs, fmt.Errorf("%w: %q used by %s and %s", domain.ErrDuplicateName, token, prev, c.Name))
				continue
			}
			owners[token] = c.Name
		}
	}

	seen := make(map[string]bool)
	for _, c := range a.checks {
		if seen[c.Name] {
			errs = append(errs, fmt.Errorf("%w: check %q", domain.ErrDuplicateName, c.Name))
		}
		seen[c.Name] = true
	}

	return errors.Join(errs...)
}

// CommandGroup is a named section of the help listing.
type CommandGroup struct {
	Name     string
	Commands []*command.Spec
}

// GroupedCommands splits the commands for help output: ungrouped commands
// in registration order, then groups sorted by name.
func (a *Application) GroupedCommands() (ungrouped []*command.Spec, groups []CommandGroup) {
	index := make(map[string]int)
	for _, c := range a.commands {
		if c.Group == "" {
			ungrouped = append(ungrouped, c)
			continue
		}
		i, ok := index[c.Group]
		if !ok {
			i = len(groups)
			index[c.Group] = i
			groups = append(groups, CommandGroup{Name: c.Group})
		}
		groups[i].Commands = append(groups[i].Commands, c)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return ungrouped, groups
}
