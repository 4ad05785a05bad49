package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks yes/no questions on a command's input stream. A single
// buffered reader is shared across questions so consecutive prompts in one
// run do not swallow each other's input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm prints the question and reads one line of input. Only "yes",
// case-insensitively, counts as confirmation; anything else declines,
// including EOF on a closed stdin.
func (p *Prompter) Confirm(question string) bool {
	_, _ = fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes")
}
