/*
Package domain holds the error vocabulary shared by the smol packages.

The values are sentinels: callers compare with errors.Is, and producers wrap
them with the offending key or token.

  - ErrUnknownSetting: a configuration key was read or written without being declared.
  - ErrUnresolvedCommand: a command token matched nothing in the application tree.
  - ErrInsufficientArguments: an interactive invocation supplied too few positional arguments.
  - ErrUnknownMethod: a symbolic hook/handler could not be resolved on the command instance.
  - ErrHistoryUnavailable: the history backend could not be read or written.
  - ErrDuplicateName: two commands or checks of one application share a name.
*/
package domain
