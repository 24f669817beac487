/*
Package smol is a small framework for building command-line tools that work
both as one-shot commands and as an interactive shell.

An application is a registry of commands, health checks, settings and mounted
sub-applications. The same registry drives two front ends:

  - one-shot mode: the process arguments name a command, its positional
    arguments and --flags; the exit status reflects the result;
  - interactive mode: started with no arguments, a prompt reads commands line
    by line with completion, grouped help, in-session config editing and
    nested prompts for sub-applications.

# Concepts

  - Commands (package command) declare a name, aliases, positional arguments,
    typed options, before/after actions and rescue handlers.
  - Settings (package config) are declared with a default and a kind and
    resolve once from the environment (KEY uppercased) or a YAML file.
  - Checks (package check) return a pass/fail result with a message and can
    be run in batches from any command.
  - Sub-applications are mounted under a prefix; "admin:users" reaches the
    users command of the application mounted as admin.

# Usage

	package main

	import (
		"github.com/aretw0/smol"
		"github.com/aretw0/smol/pkg/app"
		"github.com/aretw0/smol/pkg/coerce"
		"github.com/aretw0/smol/pkg/command"
	)

	func main() {
		a := app.New("ops", app.WithBanner("ops tools"))
		a.Config().Declare("region", "eu", coerce.String, "target region")
		a.Register(&command.Spec{
			Name:        "deploy",
			Args:        []string{"env"},
			Description: "deploy the app",
			Run: func(inv *command.Invocation) (any, error) {
				region, _ := inv.Env.Config.String("region")
				inv.Env.Out.Success("deployed " + inv.Arg(0) + " to " + region)
				return true, nil
			},
		})
		smol.New(a).Main()
	}

Running "ops deploy prod" invokes the command once; running "ops" alone
opens the ops> prompt.

# Observability

Program logs with log/slog. VERBOSE, QUIET and DEBUG (set to 1 or true)
pick the level. Every invocation is counted in prometheus collectors;
pass WithMetricsRegistry to expose them.
*/
package smol
