package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/smol/pkg/coerce"
	"github.com/aretw0/smol/pkg/output"
)

// Prompter asks simple questions over a LineReader.
// End of input is not an error; it yields the default answer.
type Prompter struct {
	reader LineReader
	out    *output.Printer
}

// NewPrompter builds a Prompter. Prompts are styled with out's style.
func NewPrompter(r LineReader, out *output.Printer) *Prompter {
	return &Prompter{reader: r, out: out}
}

// read returns the trimmed answer. End of input reads as a blank answer.
func (p *Prompter) read(ctx context.Context, prompt string) (string, error) {
	line, err := p.reader.ReadLine(ctx, p.out.Style().Caution(prompt))
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question. A blank or unrecognised answer returns def.
func (p *Prompter) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	answer, err := p.read(ctx, question+" "+hint+" ")
	if err != nil {
		return def, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return def, nil
	}
}

// Ask reads a free-form answer, returning def when the answer is blank.
func (p *Prompter) Ask(ctx context.Context, question, def string) (string, error) {
	prompt := question
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", question, def)
	}
	answer, err := p.read(ctx, prompt+": ")
	if err != nil {
		return def, err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Choose lists numbered choices and returns the selected one. def is the
// 1-based default (0 for none). The answer's leading digits pick the choice,
// so "2)" selects the second. An out-of-range answer selects nothing and ok
// is false.
func (p *Prompter) Choose(ctx context.Context, question string, choices []string, def int) (choice string, ok bool, err error) {
	p.out.Warning(question)
	for i, c := range choices {
		marker := " "
		if i+1 == def {
			marker = "*"
		}
		p.out.Linef("%s %d) %s", marker, i+1, c)
	}

	answer, err := p.read(ctx, "choice: ")
	if err != nil {
		return "", false, err
	}

	idx := def
	if answer != "" {
		idx = coerce.ParseInt(answer)
	}
	if idx < 1 || idx > len(choices) {
		return "", false, nil
	}
	return choices[idx-1], true, nil
}
