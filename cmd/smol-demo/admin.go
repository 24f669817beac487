package main

import (
	"context"

	"github.com/aretw0/smol/pkg/app"
	"github.com/aretw0/smol/pkg/check"
	"github.com/aretw0/smol/pkg/coerce"
	"github.com/aretw0/smol/pkg/command"
)

var demoUsers = [][]string{
	{"ana", "admin"},
	{"bruno", "operator"},
	{"carla", "viewer"},
}

func newAdmin() *app.Application {
	admin := app.New("admin", app.WithBanner("admin tools"))
	admin.Config().Declare("scope", "all", coerce.String, "which users to list")

	ns := admin.Namespace().Namespace("users")
	ns.Command(&command.Spec{
		Name:        command.NameFromIdentifier("ListUsers"),
		Description: "list users",
		Run: func(inv *command.Invocation) (any, error) {
			scope, _ := inv.Env.Config.String("scope")
			rows := demoUsers
			if scope != "all" {
				rows = nil
				for _, u := range demoUsers {
					if u[1] == scope {
						rows = append(rows, u)
					}
				}
			}
			if len(rows) == 0 {
				inv.Env.Out.Warning("no users with role " + scope)
				return false, nil
			}
			inv.Env.Out.Table(rows, []string{"user", "role"}, 2)
			return true, nil
		},
	})
	ns.Command(&command.Spec{
		Name:        "drop_user",
		Args:        []string{"name"},
		Description: "remove a user",
		New:         func() command.Command { return &dropUser{} },
		Before:      []command.Action{command.Method("confirm")},
		After:       []command.Action{command.Method("report")},
	})
	ns.Check(&check.Spec{
		Name: check.NameFromIdentifier("UserStore"),
		Run: func(ctx context.Context, env check.Env) check.Result {
			return check.Pass("in-memory store ready")
		},
	})
	return admin
}

// dropUser keeps its before and after handlers on the instance.
type dropUser struct {
	dropped string
}

func (d *dropUser) Run(inv *command.Invocation) (any, error) {
	inv.Env.Out.Dropping(inv.Arg(0))
	d.dropped = inv.Arg(0)
	return true, nil
}

func (d *dropUser) Method(name string) (command.Func, bool) {
	switch name {
	case "confirm":
		return func(inv *command.Invocation) (any, error) {
			return inv.Prompter().Confirm(inv.Ctx, "drop "+inv.Arg(0)+"?", true)
		}, true
	case "report":
		return func(inv *command.Invocation) (any, error) {
			inv.Env.Out.Done("dropped " + d.dropped)
			return nil, nil
		}, true
	}
	return nil, false
}
