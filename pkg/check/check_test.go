package check

import (
	"context"
	"testing"

	"github.com/aretw0/smol/pkg/coerce"
	"github.com/aretw0/smol/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	ok := Pass("everything is fine")
	assert.True(t, ok.Passed())
	assert.False(t, ok.Failed())
	assert.Equal(t, "everything is fine", ok.Message())
	assert.Equal(t, "passed: everything is fine", ok.String())

	bad := Fail("something is wrong")
	assert.True(t, bad.Failed())
	assert.Equal(t, "failed: something is wrong", bad.String())
}

func TestNameFromIdentifier(t *testing.T) {
	assert.Equal(t, "always pass", NameFromIdentifier("AlwaysPass"))
}

func TestRunAll(t *testing.T) {
	cfg := config.New(config.WithSource(config.MapSource{}))
	cfg.Declare("database", "mydb", coerce.String, "")

	dbSet := &Spec{Name: "database set", Run: func(ctx context.Context, env Env) Result {
		v, err := env.Config.String("database")
		if err != nil || v == "" {
			return Fail("database missing")
		}
		return Pass("using " + v)
	}}
	argCount := &Spec{Name: "args", Run: func(ctx context.Context, env Env) Result {
		if len(env.Args) == 0 {
			return Fail("no args")
		}
		return Pass("ok")
	}}
	empty := &Spec{Name: "empty"}

	outcomes := RunAll(context.Background(), Env{Config: cfg}, dbSet, argCount, empty)

	assert.Len(t, outcomes, 3)
	assert.Equal(t, "using mydb", outcomes[0].Result.Message())
	assert.True(t, outcomes[1].Result.Failed())
	assert.True(t, outcomes[2].Result.Failed())
	assert.False(t, AllPassed(outcomes))
	assert.True(t, AllPassed(outcomes[:1]))
	assert.True(t, AllPassed(nil))
}
