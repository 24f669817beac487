package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/aretw0/smol/pkg/app"
	"github.com/aretw0/smol/pkg/check"
	"github.com/aretw0/smol/pkg/coerce"
	"github.com/aretw0/smol/pkg/command"
	"github.com/aretw0/smol/pkg/config"
)

var errRegionDown = errors.New("region unavailable")

type settings struct {
	Region   string `mapstructure:"region"`
	Replicas int    `mapstructure:"replicas"`
	DryRun   bool   `mapstructure:"dry_run"`
}

func newApplication(configPath string) (*app.Application, error) {
	src := config.EnvSource()
	if configPath != "" {
		file, err := config.LoadYAMLSource(configPath)
		if err != nil {
			return nil, err
		}
		src = config.ChainSource(src, file)
	}

	a := app.New("smol-demo",
		app.WithBanner("smol demo: deploys, checks and admin tools"),
		app.WithBoot(app.BootMinimal),
		app.WithConfig(config.New(config.WithSource(src))),
	)
	cfg := a.Config()
	cfg.Declare("region", "eu-west", coerce.String, "target region")
	cfg.Declare("replicas", 2, coerce.Integer, "replicas per deploy")
	cfg.Declare("dry_run", false, coerce.Boolean, "print instead of deploying")

	a.RegisterCheck(
		&check.Spec{
			Name:        check.NameFromIdentifier("RegionSet"),
			Description: "a region is configured",
			Run: func(ctx context.Context, env check.Env) check.Result {
				region, _ := env.Config.String("region")
				if region == "" {
					return check.Fail("no region configured")
				}
				return check.Pass("region is " + region)
			},
		},
		&check.Spec{
			Name:        check.NameFromIdentifier("ReplicaBudget"),
			Description: "replica count is within budget",
			Run: func(ctx context.Context, env check.Env) check.Result {
				n, _ := env.Config.Int("replicas")
				if n < 1 || n > 10 {
					return check.Fail(fmt.Sprintf("%d replicas is outside 1..10", n))
				}
				return check.Pass(fmt.Sprintf("%d replicas", n))
			},
		},
	)

	a.Register(deployCommand(), statusCommand(), doctorCommand(a))
	a.Mount(newAdmin(), "admin")
	return a, nil
}

func deployCommand() *command.Spec {
	return &command.Spec{
		Name:        "deploy",
		Title:       "deploy",
		Explain:     "Rolls the current build out to **one environment**. Production asks first.",
		Aliases:     []string{"d", "dep"},
		Args:        []string{"env"},
		Description: "deploy the app",
		Options: []command.Option{
			{Name: "verbose", Short: "v", Kind: coerce.Boolean, Default: false, Description: "print each step"},
			{Name: "replicas", Short: "r", Kind: coerce.Integer, Description: "override replicas"},
		},
		Before: []command.Action{
			command.Call(func(inv *command.Invocation) (any, error) {
				if inv.Arg(0) != "prod" {
					return nil, nil
				}
				return inv.Prompter().Confirm(inv.Ctx, "deploy to production?", false)
			}),
		},
		Run: func(inv *command.Invocation) (any, error) {
			var s settings
			if err := inv.Env.Config.Decode(&s); err != nil {
				return nil, err
			}
			if s.Region == "offline" {
				return nil, fmt.Errorf("%w: %s", errRegionDown, s.Region)
			}
			if n := inv.Options.Int("replicas"); n > 0 {
				s.Replicas = n
			}

			out := inv.Env.Out
			out.Debug(fmt.Sprintf("settings: %+v", s))
			if inv.Options.Bool("verbose") {
				out.Label("region: " + s.Region)
				out.Label("replicas: " + strconv.Itoa(s.Replicas))
			}
			if s.DryRun {
				out.Warning("dry run: nothing deployed")
				return true, nil
			}
			out.Success(fmt.Sprintf("deployed %s to %s (%d replicas)", inv.Arg(0), s.Region, s.Replicas))
			return true, nil
		},
		After: []command.Action{
			command.Call(func(inv *command.Invocation) (any, error) {
				inv.Env.Out.Done("run 'status' to inspect the rollout")
				return nil, nil
			}),
		},
		Rescue: []command.Rescue{
			command.RescueIs(errRegionDown, command.Call(func(inv *command.Invocation) (any, error) {
				inv.Env.Out.Failure(inv.Err.Error())
				inv.Env.Out.Hint("set REGION or use config:set region <name>")
				return false, nil
			})),
		},
	}
}

func statusCommand() *command.Spec {
	return &command.Spec{
		Name:        "status",
		Group:       "info",
		Description: "show the resolved settings",
		Run: func(inv *command.Invocation) (any, error) {
			values := inv.Env.Config.Map()
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			rows := make([][]string, 0, len(keys))
			for _, k := range keys {
				rows = append(rows, []string{k, coerce.Stringify(values[k])})
			}
			inv.Env.Out.Table(rows, []string{"setting", "value"}, 2)
			return nil, nil
		},
	}
}

func doctorCommand(a *app.Application) *command.Spec {
	return &command.Spec{
		Name:        "doctor",
		Group:       "info",
		Description: "run every health check",
		Run: func(inv *command.Invocation) (any, error) {
			passed := inv.RunChecks(a.Checks()...)
			return inv.Env.Out.ChecksPassed(passed, "", "fix the failures above and rerun doctor"), nil
		},
	}
}
