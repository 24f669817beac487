/*
Package input provides line-oriented input for the shell and for commands.

Two LineReader implementations are available:

  - Reader wraps any io.Reader with bufio. Use it for pipes and tests.
  - Editor drives a terminal in raw mode through golang.org/x/term and
    offers tab completion via SetCompleter.

# Usage

	r := input.NewReader(os.Stdin, os.Stdout)
	line, err := r.ReadLine(ctx, "app> ")
	if errors.Is(err, io.EOF) {
		// input exhausted
	}

Prompter builds Confirm, Ask and Choose on top of any LineReader.
*/
package input
