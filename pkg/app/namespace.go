package app

import (
	"strings"

	"github.com/aretw0/smol/pkg/check"
	"github.com/aretw0/smol/pkg/command"
)

// Namespace groups declarations and attaches them to the nearest bound
// application, found by walking outward through parent namespaces.
//
// An application in explicit registration mode refuses attachment; the
// declaration is still recorded in the namespace so it can be registered
// by hand.
type Namespace struct {
	name     string
	parent   *Namespace
	app      *Application
	commands []*command.Spec
	checks   []*check.Spec
}

// Namespace returns a root namespace bound to a.
func (a *Application) Namespace() *Namespace {
	return &Namespace{name: a.name, app: a}
}

// Namespace opens a nested namespace.
func (n *Namespace) Namespace(name string) *Namespace {
	return &Namespace{name: name, parent: n}
}

// Bind makes a the target for declarations in n and its children.
func (n *Namespace) Bind(a *Application) *Namespace {
	n.app = a
	return n
}

// Path joins the namespace names from the root, separated by "::".
func (n *Namespace) Path() string {
	var parts []string
	for cur := n; cur != nil; cur = cur.parent {
		parts = append([]string{cur.name}, parts...)
	}
	return strings.Join(parts, "::")
}

// Application returns the nearest bound application, or nil.
func (n *Namespace) Application() *Application {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.app != nil {
			return cur.app
		}
	}
	return nil
}

// Command declares spec and reports whether it was attached.
func (n *Namespace) Command(spec *command.Spec) bool {
	n.commands = append(n.commands, spec)
	target := n.Application()
	if target == nil || target.explicit {
		return false
	}
	target.attach(spec)
	return true
}

// Check declares spec and reports whether it was attached.
func (n *Namespace) Check(spec *check.Spec) bool {
	n.checks = append(n.checks, spec)
	target := n.Application()
	if target == nil || target.explicit {
		return false
	}
	target.attachCheck(spec)
	return true
}

// Commands returns every command declared directly in n.
func (n *Namespace) Commands() []*command.Spec {
	return append([]*command.Spec(nil), n.commands...)
}

func (n *Namespace) Checks() []*check.Spec {
	return append([]*check.Spec(nil), n.checks...)
}
