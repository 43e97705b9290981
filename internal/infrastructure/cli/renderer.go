package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/kneto/nlcmd/internal/domain"
)

// Renderer prints translate responses. Decorated output uses lipgloss;
// plain mode (explicit flag, config, or a non-TTY stdout) drops all
// styling so output stays pipe-friendly.
type Renderer struct {
	out   io.Writer
	plain bool

	labelStyle   lipgloss.Style
	commandStyle lipgloss.Style
	warnStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	faintStyle   lipgloss.Style
}

// NewRenderer builds a renderer. plain forces reduced decoration.
func NewRenderer(out io.Writer, plain bool) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	if !plain {
		if f, ok := out.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			plain = true
		}
	}
	return &Renderer{
		out:          out,
		plain:        plain,
		labelStyle:   lipgloss.NewStyle().Bold(true),
		commandStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		warnStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		faintStyle:   lipgloss.NewStyle().Faint(true),
	}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

// RenderResponse prints the outcome of one translate attempt.
func (r *Renderer) RenderResponse(resp domain.TranslateResponse) {
	switch resp.Outcome {
	case domain.OutcomeNoMatch:
		r.renderNoMatch(resp)
		return
	case domain.OutcomeGenerationFault:
		fmt.Fprintf(r.out, "%s %s\n",
			r.style(r.errorStyle, "Cannot build a safe command for:"), resp.Input)
		fmt.Fprintln(r.out, "The argument contains characters that cannot be quoted for the shell.")
		return
	}

	fmt.Fprintf(r.out, "%s %s\n", r.style(r.labelStyle, "Input:"), resp.Input)
	fmt.Fprintf(r.out, "%s %s (%s)\n", r.style(r.labelStyle, "Intent:"), resp.Description, resp.Category)
	fmt.Fprintf(r.out, "%s %s\n", r.style(r.labelStyle, "Command:"), r.style(r.commandStyle, resp.Command))

	switch resp.Outcome {
	case domain.OutcomeDryRun:
		fmt.Fprintln(r.out, r.style(r.faintStyle, "Dry run: command not executed."))
	case domain.OutcomeSkippedByUser:
		fmt.Fprintln(r.out, r.style(r.warnStyle, "Cancelled: command not executed."))
	case domain.OutcomeExecuted:
		r.renderExecution(resp.ExecutionResult)
	case domain.OutcomeFailed:
		r.renderExecution(resp.ExecutionResult)
		fmt.Fprintf(r.out, "%s %s\n", r.style(r.errorStyle, "Command failed:"), resp.Command)
	}
}

func (r *Renderer) renderNoMatch(resp domain.TranslateResponse) {
	fmt.Fprintf(r.out, "%s %q\n", r.style(r.warnStyle, "I don't understand:"), resp.Input)
	fmt.Fprintln(r.out, "Try one of these phrases:")
	for _, example := range noMatchExamples {
		fmt.Fprintf(r.out, "  - %s\n", example)
	}
	fmt.Fprintln(r.out, r.style(r.faintStyle, "Run `nlcmd patterns` to list everything I recognize."))
}

var noMatchExamples = []string{
	"go to downloads",
	"list files",
	"create folder my-project",
	"find files containing config",
	"show disk space",
}

func (r *Renderer) renderExecution(result *domain.ExecutionResult) {
	if result == nil {
		return
	}
	if result.Stdout != "" {
		fmt.Fprint(r.out, result.Stdout)
		if result.Stdout[len(result.Stdout)-1] != '\n' {
			fmt.Fprintln(r.out)
		}
	}
	if result.Stderr != "" {
		fmt.Fprint(r.out, r.style(r.errorStyle, result.Stderr))
		if result.Stderr[len(result.Stderr)-1] != '\n' {
			fmt.Fprintln(r.out)
		}
	}
	if result.ExitCode != 0 {
		fmt.Fprintf(r.out, "%s %d\n", r.style(r.errorStyle, "Exit status:"), result.ExitCode)
	}
}

// Heading styles a section heading for list surfaces.
func (r *Renderer) Heading(text string) string {
	return r.style(r.labelStyle, text)
}

// Faint styles secondary text.
func (r *Renderer) Faint(text string) string {
	return r.style(r.faintStyle, text)
}

// Out exposes the underlying writer for list surfaces.
func (r *Renderer) Out() io.Writer {
	return r.out
}
