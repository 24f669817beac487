/*
Package repl implements the interactive shell.

A Session reads one line at a time, trims it and dispatches on the first
word. Built-in words are exit/quit/q, back, help/h/?, config/c and
config:set. A word naming a mounted sub-application, given alone, opens a
nested Session with the prompt "<prompt>:<name>"; back returns to the
parent. Anything else is resolved as a command and invoked.

# Usage

	s := repl.New(application,
		repl.WithPrompt("ops"),
		repl.WithReader(input.NewEditor(os.Stdin, os.Stdout)),
	)
	if err := s.Run(ctx); err != nil {
		// an unhandled command error ended the session
	}

History is loaded when the session starts and saved when it ends. Nested
sessions never persist history.
*/
package repl
