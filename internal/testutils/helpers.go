package testutils

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/smol/pkg/config"
	"github.com/aretw0/smol/pkg/input"
	"github.com/aretw0/smol/pkg/output"
)

// CaptureOutput returns a plain-styled printer writing into the returned buffer.
func CaptureOutput() (*output.Printer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return output.NewPrinter(buf, output.WithStyle(output.Plain())), buf
}

// ScriptedInput returns a reader that yields lines in order and then io.EOF.
// Prompts are written to promptOut (io.Discard when nil).
func ScriptedInput(promptOut io.Writer, lines ...string) *input.Reader {
	if promptOut == nil {
		promptOut = io.Discard
	}
	text := strings.Join(lines, "\n")
	if len(lines) > 0 {
		text += "\n"
	}
	return input.NewReader(strings.NewReader(text), promptOut)
}

// StaticConfig returns a store whose source is the given map (keys are
// looked up uppercased), isolating tests from the process environment.
func StaticConfig(t *testing.T, env map[string]string) *config.Store {
	t.Helper()
	return config.New(config.WithSource(config.MapSource(env)))
}
