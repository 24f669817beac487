package repl

import (
	"strings"

	"github.com/aretw0/smol/internal/presentation/tui"
	"github.com/aretw0/smol/pkg/app"
	"github.com/aretw0/smol/pkg/command"
)

func (s *Session) boot() {
	switch s.app.Boot() {
	case app.BootNone:
	case app.BootMinimal:
		s.intro()
		s.out.Hint("type 'help' for commands, 'exit' to quit")
		s.out.Blank()
		tui.ShowConfig(s.out, s.app.Config())
		s.out.Blank()
	default:
		s.intro()
		s.out.Blank()
		s.help()
		s.out.Blank()
		tui.ShowConfig(s.out, s.app.Config())
		s.out.Blank()
	}
}

func (s *Session) intro() {
	s.out.Banner(s.app.Banner())
	s.out.Blank()
	s.out.Info(s.out.Style().Emphasis(s.prompt) + " - interactive mode")
}

func (s *Session) help() {
	p := s.out
	p.Header("commands:")

	ungrouped, groups := s.app.GroupedCommands()
	for _, c := range ungrouped {
		s.printCommand(c, 0)
	}
	for _, g := range groups {
		p.Blank()
		p.Header("  " + g.Name + ":")
		for _, c := range g.Commands {
			s.printCommand(c, 1)
		}
	}

	if mounts := s.app.Mounts(); len(mounts) > 0 {
		p.Blank()
		p.Header("  sub-apps:")
		for _, m := range mounts {
			label := m.App.Banner()
			if label == "" {
				label = m.Name
			}
			p.Line(tui.CommandLine("    ", m.Name, 28, "enter "+label))
		}
	}

	p.Blank()
	p.Line(tui.CommandLine("", "  config, c", 32, "show current config"))
	p.Line(tui.CommandLine("", "  config:set <key> <value>", 32, "set a config value"))
	p.Line(tui.CommandLine("", "  help, h, ?", 32, "show this help"))
	if s.parent != nil {
		p.Line(tui.CommandLine("", "  back", 32, "return to parent app"))
	}
	p.Line(tui.CommandLine("", "  exit, quit, q", 32, "exit"))
}

func (s *Session) printCommand(c *command.Spec, indent int) {
	prefix := strings.Repeat("  ", indent+1)
	s.out.Line(tui.CommandLine(prefix, c.Usage(), 30-indent*2, c.Description))
	if len(c.Aliases) > 0 {
		s.out.Desc(prefix + "  aliases: " + strings.Join(c.Aliases, ", "))
	}
}
