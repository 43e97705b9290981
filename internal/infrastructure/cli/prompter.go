package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kneto/nlcmd/internal/ports"
)

// Prompter implements ConfirmationPrompter using stdin/stdout. The read
// blocks until the operator answers; there is deliberately no timeout.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Enabled indicates the prompter is interactive.
func (p *Prompter) Enabled() bool {
	return true
}

// Confirm asks the user whether a destructive command should run. Anything
// but an affirmative answer rejects.
func (p *Prompter) Confirm(command string, description string) (bool, error) {
	fmt.Fprintf(p.out, "\nThis is a destructive command (%s):\n  %s\n", description, command)
	fmt.Fprint(p.out, "Execute? [y/N]: ")
	line, err := p.in.ReadString('\n')
	if err != nil {
		return false, err
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes", nil
}

var _ ports.ConfirmationPrompter = (*Prompter)(nil)
