package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, slog.LevelInfo).Error("failed", "error", errors.New("boom"))
	assert.Contains(t, buf.String(), "err=boom")
	assert.NotContains(t, buf.String(), "error=boom")
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{"VERBOSE": "TRUE", "QUIET": "0", "DEBUG": "yes"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	f := FromEnv(lookup)
	assert.Equal(t, Flags{Verbose: true}, f)
	assert.Equal(t, slog.LevelInfo, f.Level())
}

func TestFlags_Level(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, Flags{}.Level())
	assert.Equal(t, slog.LevelError, Flags{Quiet: true}.Level())
	assert.Equal(t, slog.LevelDebug, Flags{Debug: true, Quiet: true}.Level())
}
