package domain

import "errors"

// ErrUnknownSetting is returned when a configuration key was never declared.
var ErrUnknownSetting = errors.New("unknown config key")

// ErrUnresolvedCommand is returned when a token matches no registered command.
var ErrUnresolvedCommand = errors.New("unknown command")

// ErrInsufficientArguments is returned when fewer positional arguments were
// supplied than the command declares.
var ErrInsufficientArguments = errors.New("insufficient arguments")

// ErrUnknownMethod is returned when a symbolic hook or handler name cannot be
// resolved on the command instance.
var ErrUnknownMethod = errors.New("unknown method")

// ErrHistoryUnavailable is returned when a history store cannot be reached.
var ErrHistoryUnavailable = errors.New("history unavailable")

// ErrDuplicateName is reported by validation when two commands or checks in
// one application share a name or alias.
var ErrDuplicateName = errors.New("duplicate name")
