package tui

import (
	"github.com/aretw0/smol/pkg/coerce"
	"github.com/aretw0/smol/pkg/config"
	"github.com/aretw0/smol/pkg/output"
)

// ShowConfig prints every resolved setting as "key: value - description".
func ShowConfig(p *output.Printer, store *config.Store) {
	p.Header("config:")
	for e := range store.All() {
		line := "  " + e.Key + ": " + coerce.Stringify(e.Value)
		if e.Setting.Description != "" {
			line += " - " + e.Setting.Description
		}
		p.Desc(line)
	}
}

// SetConfig applies a config:set request and prints the outcome. It reports
// whether the value was stored.
func SetConfig(p *output.Printer, store *config.Store, args []string) bool {
	if len(args) < 2 {
		p.Warning("usage: config:set <key> <value>")
		return false
	}
	key, value := args[0], args[1]

	if err := store.Set(key, value); err != nil {
		p.Failure(err.Error())
		return false
	}
	v, _ := store.Get(key)
	p.Success(key + " = " + coerce.Stringify(v))
	return true
}

// CommandLine formats one help row: the usage padded to width, then desc.
func CommandLine(indent, usage string, width int, desc string) string {
	return indent + output.Pad(usage, width) + desc
}
