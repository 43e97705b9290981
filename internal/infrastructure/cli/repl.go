package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kneto/nlcmd/internal/app"
	"github.com/kneto/nlcmd/internal/domain"
)

// ReplOptions carries the per-session flags into interactive mode.
type ReplOptions struct {
	DryRun         bool
	AutoConfirm    bool
	NonInteractive bool
	Copy           bool
}

// Repl is the conversational loop: one phrase per line, run to completion
// before the next prompt.
type Repl struct {
	container *app.Container
	renderer  *Renderer
	opts      ReplOptions
	in        io.Reader
}

// NewRepl builds an interactive session reading from stdin.
func NewRepl(container *app.Container, renderer *Renderer, opts ReplOptions) *Repl {
	return &Repl{
		container: container,
		renderer:  renderer,
		opts:      opts,
		in:        os.Stdin,
	}
}

// Run reads phrases until exit/quit or EOF.
func (r *Repl) Run(ctx context.Context) error {
	out := r.renderer.Out()
	fmt.Fprintln(out, r.renderer.Heading("nlcmd interactive mode"))
	fmt.Fprintln(out, r.renderer.Faint("Type 'exit' or 'quit' to leave."))

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
			return nil
		}

		resp, err := r.container.TranslateService.Run(domain.TranslateRequest{
			Context:         ctx,
			Phrase:          line,
			DryRun:          r.opts.DryRun,
			AutoConfirm:     r.opts.AutoConfirm,
			NonInteractive:  r.opts.NonInteractive,
			CopyToClipboard: r.opts.Copy,
		})
		r.renderer.RenderResponse(resp)
		if err != nil {
			// Surfaced inline; the session continues.
			fmt.Fprintln(out, r.renderer.Faint(err.Error()))
		}
		fmt.Fprintln(out)
	}
}
