// Package check models diagnostics: named probes that produce an immutable
// pass/fail Result.
package check

import (
	"context"

	"github.com/aretw0/smol/internal/naming"
	"github.com/aretw0/smol/pkg/config"
)

// Result is the outcome of a check. The zero value is a failure with no message.
type Result struct {
	passed  bool
	message string
}

// Pass builds a passing Result.
func Pass(message string) Result {
	return Result{passed: true, message: message}
}

// Fail builds a failing Result.
func Fail(message string) Result {
	return Result{passed: false, message: message}
}

func (r Result) Passed() bool    { return r.passed }
func (r Result) Failed() bool    { return !r.passed }
func (r Result) Message() string { return r.message }

func (r Result) String() string {
	status := "failed"
	if r.passed {
		status = "passed"
	}
	return status + ": " + r.message
}

// Env is what a check can see when it runs.
type Env struct {
	Config *config.Store
	Args   []string
}

// Func is the body of a check.
type Func func(ctx context.Context, env Env) Result

// Spec declares a check.
type Spec struct {
	Name        string
	Description string
	Run         Func
}

// NameFromIdentifier derives a display name from a Go identifier:
// "DiskSpace" -> "disk space".
func NameFromIdentifier(ident string) string {
	return naming.Words(ident)
}

// Outcome pairs a check name with its result.
type Outcome struct {
	Name   string
	Result Result
}

// RunAll executes specs in order. A spec without a body fails.
func RunAll(ctx context.Context, env Env, specs ...*Spec) []Outcome {
	out := make([]Outcome, 0, len(specs))
	for _, spec := range specs {
		if spec.Run == nil {
			out = append(out, Outcome{Name: spec.Name, Result: Fail("no check body")})
			continue
		}
		out = append(out, Outcome{Name: spec.Name, Result: spec.Run(ctx, env)})
	}
	return out
}

// AllPassed reports whether every outcome passed. An empty slice passes.
func AllPassed(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if o.Result.Failed() {
			return false
		}
	}
	return true
}
