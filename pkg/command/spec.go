package command

import (
	"strings"

	"github.com/aretw0/smol/internal/naming"
	"github.com/aretw0/smol/pkg/coerce"
)

// Option declares a named option. Name is the lookup key in Values and uses
// underscores; the flag spelling may use hyphens ("--dry-run" -> "dry_run").
type Option struct {
	Name        string
	Short       string
	Kind        coerce.Kind
	Default     any
	Description string
}

// Spec is the declarative metadata of one command.
// A Spec must not be modified once it is registered.
type Spec struct {
	Name        string
	Title       string
	Explain     string // markdown shown under Title
	Description string
	Aliases     []string
	Args        []string
	Options     []Option
	Group       string

	Before []Action
	After  []Action
	Rescue []Rescue

	// Run is the command body. When nil, New is called once per invocation
	// and the returned Command's Run is used instead.
	Run Func
	New func() Command

	// UnknownFlagsTakeNoValue stops an unrecognised "--flag" (without "=")
	// from consuming the following token.
	UnknownFlagsTakeNoValue bool
}

// NameFromIdentifier derives a command name from a Go identifier:
// "RunTests" -> "run_tests".
func NameFromIdentifier(ident string) string {
	if ident == "" {
		return "anonymous"
	}
	return naming.Snake(ident)
}

// Matches reports whether token is the canonical name or one of the aliases.
func (s *Spec) Matches(token string) bool {
	if token == s.Name {
		return true
	}
	for _, a := range s.Aliases {
		if token == a {
			return true
		}
	}
	return false
}

// Usage renders "name <arg>... [-s/--opt] [--opt]".
func (s *Spec) Usage() string {
	parts := []string{s.Name}
	for _, a := range s.Args {
		parts = append(parts, "<"+a+">")
	}
	for _, o := range s.Options {
		flag := "--" + o.Name
		if o.Short != "" {
			flag = "-" + o.Short + "/" + flag
		}
		parts = append(parts, "["+flag+"]")
	}
	return strings.Join(parts, " ")
}

// Option returns the option declared under name.
func (s *Spec) Option(name string) (Option, bool) {
	for _, o := range s.Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

func (s *Spec) shortOption(short string) (Option, bool) {
	for _, o := range s.Options {
		if o.Short != "" && o.Short == short {
			return o, true
		}
	}
	return Option{}, false
}

// ParseArguments splits argv into positional arguments and option values.
//
// Options start at their declared defaults, which are not coerced. Supplied
// values are coerced with the option's kind. A flag with no following token
// coerces the empty string. Positional order is preserved.
func (s *Spec) ParseArguments(argv []string) ([]string, Values) {
	positional := []string{}
	opts := make(Values, len(s.Options))
	for _, o := range s.Options {
		opts[o.Name] = o.Default
	}

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case strings.HasPrefix(arg, "--"):
			key, value, attached := strings.Cut(arg[2:], "=")
			key = strings.ReplaceAll(key, "-", "_")

			opt, known := s.Option(key)
			if !attached && (known || !s.UnknownFlagsTakeNoValue) {
				i++
				value = tokenAt(argv, i)
			}
			if known {
				opts[opt.Name] = coerce.Coerce(value, opt.Kind)
			}

		case len(arg) == 2 && arg[0] == '-':
			opt, known := s.shortOption(arg[1:])
			if !known {
				continue
			}
			i++
			opts[opt.Name] = coerce.Coerce(tokenAt(argv, i), opt.Kind)

		default:
			positional = append(positional, arg)
		}
	}

	return positional, opts
}

func tokenAt(argv []string, i int) string {
	if i < len(argv) {
		return argv[i]
	}
	return ""
}
