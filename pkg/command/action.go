package command

import (
	"errors"
	"fmt"

	"github.com/aretw0/smol/pkg/domain"
)

// Func is the signature shared by command bodies, hooks and error handlers.
type Func func(inv *Invocation) (any, error)

// Command is a command instance built by Spec.New.
type Command interface {
	Run(inv *Invocation) (any, error)
}

// Methods is implemented by command instances that expose named handlers
// for Method actions.
type Methods interface {
	Method(name string) (Func, bool)
}

// Action is either a closure or a method selector resolved on the command
// instance at invocation time.
type Action struct {
	fn     Func
	method string
}

// Call wraps a closure.
func Call(fn Func) Action {
	return Action{fn: fn}
}

// Method refers to a handler exposed by the command instance through Methods.
func Method(name string) Action {
	return Action{method: name}
}

func (a Action) String() string {
	if a.fn != nil {
		return "<func>"
	}
	return a.method
}

func (a Action) resolve(target any) (Func, error) {
	if a.fn != nil {
		return a.fn, nil
	}
	if m, ok := target.(Methods); ok {
		if fn, ok := m.Method(a.method); ok && fn != nil {
			return fn, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownMethod, a.method)
}

// Rescue pairs an error matcher with the handler run when it matches.
type Rescue struct {
	Match  func(error) bool
	Handle Action
}

// RescueIs matches errors for which errors.Is(err, target) holds.
func RescueIs(target error, handle Action) Rescue {
	return Rescue{
		Match:  func(err error) bool { return errors.Is(err, target) },
		Handle: handle,
	}
}

// RescueAs matches errors whose chain contains a T.
func RescueAs[T error](handle Action) Rescue {
	return Rescue{
		Match: func(err error) bool {
			var target T
			return errors.As(err, &target)
		},
		Handle: handle,
	}
}

// RescueAll matches every error.
func RescueAll(handle Action) Rescue {
	return Rescue{
		Match:  func(error) bool { return true },
		Handle: handle,
	}
}

func (s *Spec) rescueFor(err error) (Action, bool) {
	for _, r := range s.Rescue {
		if r.Match != nil && r.Match(err) {
			return r.Handle, true
		}
	}
	return Action{}, false
}
