package cli

import (
	"strings"

	"github.com/aretw0/smol/internal/presentation/tui"
)

// Usage prints the full one-shot help: commands, sub-apps, config and the
// environment variables that seed it.
func (d *Dispatcher) Usage() {
	p := d.out
	st := p.Style()

	p.Banner(d.app.Banner())
	p.Info(st.Emphasis(d.prompt) + " - CLI app")
	p.Blank()
	p.Header("usage:")
	single := d.prompt + " <command>"
	width := len(single) + 4
	p.Line(tui.CommandLine("  ", d.prompt, width, "start interactive mode"))
	p.Line(tui.CommandLine("  ", single, width, "run a single command"))
	p.Blank()
	p.Header("commands:")

	ungrouped, groups := d.app.GroupedCommands()
	for _, c := range ungrouped {
		p.Line(tui.CommandLine("  ", c.Usage(), 34, c.Description))
	}
	for _, g := range groups {
		p.Blank()
		p.Header("  " + g.Name + ":")
		for _, c := range g.Commands {
			p.Line(tui.CommandLine("    ", c.Usage(), 32, c.Description))
		}
	}

	if mounts := d.app.Mounts(); len(mounts) > 0 {
		p.Blank()
		p.Line("  " + st.Emphasis("sub-apps:"))
		for _, m := range mounts {
			label := m.App.Banner()
			if label == "" {
				label = m.Name
			}
			p.Line(tui.CommandLine("    ", m.Name+":*", 32, label))
		}
	}

	p.Line(tui.CommandLine("  ", "config", 34, "show current config"))
	p.Line(tui.CommandLine("  ", "config:set <key> <value>", 34, "set a config value"))

	p.Blank()
	tui.ShowConfig(p, d.app.Config())
	p.Blank()

	p.Header("environment:")
	for _, s := range d.app.Config().Settings() {
		line := "  " + strings.ToUpper(s.Key)
		if s.Description != "" {
			line += " - " + s.Description
		}
		p.Line(line)
	}
}
