package smol_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/smol"
	"github.com/aretw0/smol/internal/logging"
	"github.com/aretw0/smol/internal/testutils"
	"github.com/aretw0/smol/pkg/app"
	"github.com/aretw0/smol/pkg/check"
	"github.com/aretw0/smol/pkg/cli"
	"github.com/aretw0/smol/pkg/coerce"
	"github.com/aretw0/smol/pkg/command"
	"github.com/aretw0/smol/pkg/history"
	"github.com/aretw0/smol/pkg/output"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errQuota = errors.New("quota exceeded")

func newOpsApp(t *testing.T) *app.Application {
	a := app.New("ops",
		app.WithBanner("ops tools"),
		app.WithBoot(app.BootNone),
		app.WithConfig(testutils.StaticConfig(t, map[string]string{"REGION": "us"})),
	)
	a.Config().Declare("region", "eu", coerce.String, "target region")

	a.RegisterCheck(&check.Spec{
		Name: "disk space",
		Run: func(ctx context.Context, env check.Env) check.Result {
			return check.Pass("plenty")
		},
	})

	a.Register(
		&command.Spec{
			Name:        "deploy",
			Args:        []string{"env"},
			Description: "deploy the app",
			Run: func(inv *command.Invocation) (any, error) {
				region, _ := inv.Env.Config.String("region")
				inv.Env.Out.Success("deployed " + inv.Arg(0) + " to " + region)
				return true, nil
			},
		},
		&command.Spec{
			Name: "doctor",
			Run: func(inv *command.Invocation) (any, error) {
				return inv.RunChecks(a.Checks()...), nil
			},
		},
		&command.Spec{
			Name: "scale",
			Run: func(inv *command.Invocation) (any, error) {
				return nil, errQuota
			},
			Rescue: []command.Rescue{
				command.RescueIs(errQuota, command.Call(func(inv *command.Invocation) (any, error) {
					inv.Env.Out.Warning("scaled down: " + inv.Err.Error())
					return false, nil
				})),
			},
		},
	)
	return a
}

func newProgram(t *testing.T, a *app.Application, reg prometheus.Registerer, lines ...string) (*smol.Program, *bytes.Buffer, string) {
	buf := &bytes.Buffer{}
	path := filepath.Join(t.TempDir(), "history")
	p := smol.New(a,
		smol.WithStdout(buf),
		smol.WithStyle(output.Plain()),
		smol.WithReader(testutils.ScriptedInput(nil, lines...)),
		smol.WithLogger(logging.NewNop()),
		smol.WithMetricsRegistry(reg),
		smol.WithHistory(history.NewFileStore(path, "ops")),
	)
	return p, buf, path
}

func TestProgram_OneShot(t *testing.T) {
	reg := prometheus.NewRegistry()
	p, buf, _ := newProgram(t, newOpsApp(t), reg)

	code, err := p.Run(context.Background(), []string{"deploy", "prod"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "deployed prod to us\n", buf.String())

	count, err := testutil.GatherAndCount(reg, "smol_command_invocations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestProgram_RunTwiceSharesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	p, buf, _ := newProgram(t, newOpsApp(t), reg)

	for range 2 {
		assert.NotPanics(t, func() {
			code, err := p.Run(context.Background(), []string{"deploy", "prod"})
			require.NoError(t, err)
			assert.Equal(t, 0, code)
		})
	}
	assert.Equal(t, "deployed prod to us\ndeployed prod to us\n", buf.String())

	expected := `
# HELP smol_command_invocations_total Total number of command invocations by outcome
# TYPE smol_command_invocations_total counter
smol_command_invocations_total{command="deploy",outcome="ok"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "smol_command_invocations_total"))
}

func TestProgram_RunsChecks(t *testing.T) {
	p, buf, _ := newProgram(t, newOpsApp(t), nil)

	code, err := p.Run(context.Background(), []string{"doctor"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "pass: disk space\n      plenty\n\n", buf.String())
}

func TestProgram_RescuedErrorMapsResult(t *testing.T) {
	p, buf, _ := newProgram(t, newOpsApp(t), nil)

	code, err := p.Run(context.Background(), []string{"scale"})
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Equal(t, "scaled down: quota exceeded\n", buf.String())
}

func TestProgram_InteractiveSessionPersistsHistory(t *testing.T) {
	p, buf, path := newProgram(t, newOpsApp(t), nil, "deploy staging", "exit")

	code, err := p.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "deployed staging to us\n\ngoodbye\n", buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "deploy staging\nexit\n", string(data))
}

func TestProgram_Exec(t *testing.T) {
	p, _, _ := newProgram(t, newOpsApp(t), nil)

	assert.NoError(t, p.Exec(context.Background(), []string{"deploy", "prod"}))

	err := p.Exec(context.Background(), []string{"help"})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.NoError(t, exitErr.Unwrap())
}

func TestExitStatus(t *testing.T) {
	var w bytes.Buffer

	assert.Equal(t, 0, smol.ExitStatus(&w, nil))
	assert.Equal(t, 1, smol.ExitStatus(&w, cli.Exit(1, nil)))
	assert.Empty(t, w.String())

	assert.Equal(t, 1, smol.ExitStatus(&w, cli.Exit(1, errors.New("boom\n  again"))))
	assert.Equal(t, "boom again\n", w.String())

	w.Reset()
	assert.Equal(t, 1, smol.ExitStatus(&w, errors.New("plain")))
	assert.Equal(t, "plain\n", w.String())
}
