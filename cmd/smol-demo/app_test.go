package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/smol/internal/testutils"
	"github.com/aretw0/smol/pkg/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runDemo(t *testing.T, lines []string, args ...string) (int, string) {
	t.Helper()
	for _, key := range []string{"REGION", "REPLICAS", "DRY_RUN"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: test-1\nreplicas: 3\n"), 0644))

	a, err := newApplication(path)
	require.NoError(t, err)

	out, buf := testutils.CaptureOutput()
	d := cli.New(a, cli.WithOutput(out), cli.WithInput(testutils.ScriptedInput(nil, lines...)))
	code, err := d.Run(context.Background(), args)
	require.NoError(t, err)
	return code, buf.String()
}

func TestDemo_Deploy(t *testing.T) {
	code, out := runDemo(t, nil, "dep", "staging", "-r", "5")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "deployed staging to test-1 (5 replicas)\n")
	assert.Contains(t, out, "done\nrun 'status' to inspect the rollout\n")
}

func TestDemo_ProductionDeployNeedsConfirmation(t *testing.T) {
	code, out := runDemo(t, []string{"n"}, "deploy", "prod")

	assert.Equal(t, 1, code)
	assert.NotContains(t, out, "deployed")
}

func TestDemo_Status(t *testing.T) {
	code, out := runDemo(t, nil, "status")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "  dry_run   false")
	assert.Contains(t, out, "  region    test-1\n")
	assert.Contains(t, out, "  replicas  3")
}

func TestDemo_Doctor(t *testing.T) {
	code, out := runDemo(t, nil, "doctor")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "pass: region set\n      region is test-1\n")
	assert.Contains(t, out, "all checks passed\n")
}

func TestDemo_AdminUsers(t *testing.T) {
	code, out := runDemo(t, nil, "admin:list_users")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "  bruno  operator\n")
}

func TestDemo_AdminDropUserUsesInstanceHandlers(t *testing.T) {
	code, out := runDemo(t, []string{""}, "admin:drop_user", "carla")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "dropping: carla\n")
	assert.Contains(t, out, "done\ndropped carla\n")
}
