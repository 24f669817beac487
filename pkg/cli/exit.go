package cli

import "fmt"

// ExitError carries a process exit status out of a run.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }
func (e *ExitError) ExitCode() int { return e.Code }

// Exit converts a status and error into an error value: nil for a clean
// zero status, an *ExitError otherwise.
func Exit(code int, err error) error {
	if code == 0 && err == nil {
		return nil
	}
	if code == 0 {
		code = 1
	}
	return &ExitError{Code: code, Err: err}
}
