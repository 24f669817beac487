/*
Package command declares commands and runs them.

A Spec is plain data: names, positional argument names, options, hooks and
error handlers. ParseArguments turns an argv tail into positional arguments
and typed option Values. An Invoker runs a Spec through a fixed pipeline:
header, before actions, body, after actions, with first-match recovery
through Spec.Rescue.

# Usage

	deploy := &command.Spec{
		Name:    "deploy",
		Aliases: []string{"d"},
		Args:    []string{"env"},
		Options: []command.Option{
			{Name: "verbose", Short: "v", Kind: coerce.Boolean, Default: false},
		},
		Before: []command.Action{command.Call(requireLogin)},
		Rescue: []command.Rescue{
			command.RescueIs(ErrTimeout, command.Call(retryLater)),
		},
		Run: func(inv *command.Invocation) (any, error) {
			inv.Env.Out.Info("deploying " + inv.Arg(0))
			return true, nil
		},
	}

	args, opts := deploy.ParseArguments([]string{"prod", "-v", "true"})
	result, err := command.NewInvoker().Invoke(ctx, deploy, env, args, opts)

Hooks and handlers are Actions: Call wraps a closure and Method names a
handler that the command instance (from Spec.New) exposes through the
Methods interface.
*/
package command
