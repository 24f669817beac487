package observability

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/smol/pkg/command"
	"github.com/aretw0/smol/pkg/output"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoke(t *testing.T, hooks command.LifecycleHooks, spec *command.Spec) {
	t.Helper()
	iv := command.NewInvoker(command.WithLifecycleHooks(hooks))
	env := command.Env{Out: output.NewPrinter(&bytes.Buffer{}, output.WithStyle(output.Plain()))}
	_, _ = iv.Invoke(context.Background(), spec, env, nil, nil)
}

func TestMetrics_CountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	ok := &command.Spec{Name: "ok", Run: func(*command.Invocation) (any, error) { return true, nil }}
	falsy := &command.Spec{Name: "ok", Run: func(*command.Invocation) (any, error) { return false, nil }}
	failing := &command.Spec{Name: "bad", Run: func(*command.Invocation) (any, error) { return nil, errors.New("x") }}

	invoke(t, m.Hooks(), ok)
	invoke(t, m.Hooks(), ok)
	invoke(t, m.Hooks(), falsy)
	invoke(t, m.Hooks(), failing)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Invocations.WithLabelValues("ok", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Invocations.WithLabelValues("ok", OutcomeFalse)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Invocations.WithLabelValues("bad", OutcomeError)))

	count, err := testutil.GatherAndCount(reg, "smol_command_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one histogram series per command")
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeAborted, Outcome(&command.CommandEvent{Aborted: true, Result: false}))
	assert.Equal(t, OutcomeRecovered, Outcome(&command.CommandEvent{Recovered: true}))
	assert.Equal(t, OutcomeError, Outcome(&command.CommandEvent{Recovered: true, Err: errors.New("x")}))
	assert.Equal(t, OutcomeOK, Outcome(&command.CommandEvent{Result: "anything"}))
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	spec := &command.Spec{Name: "deploy", Run: func(*command.Invocation) (any, error) { return nil, nil }}
	invoke(t, LoggingHooks(logger), spec)

	out := buf.String()
	assert.Contains(t, out, "msg=command_start command=deploy")
	assert.Contains(t, out, "msg=command_finish command=deploy")
	assert.Contains(t, out, "outcome=ok")
}
