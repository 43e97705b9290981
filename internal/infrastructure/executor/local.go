// Package executor runs generated commands in the host shell.
package executor

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/kneto/nlcmd/internal/domain"
	"github.com/kneto/nlcmd/internal/ports"
)

// LocalExecutor runs commands on the host shell. Generated commands target
// the CMD dialect, so the interpreter defaults to %ComSpec%; the config can
// point it elsewhere. Once a command is launched in live mode it runs to
// its own completion.
type LocalExecutor struct {
	shell string
}

// NewLocalExecutor builds a new executor. An empty shell resolves
// %ComSpec% and falls back to cmd.
func NewLocalExecutor(shell string) *LocalExecutor {
	if shell == "" {
		shell = os.Getenv("ComSpec")
	}
	if shell == "" {
		shell = "cmd"
	}
	return &LocalExecutor{shell: shell}
}

// Execute implements ports.CommandExecutor. Dry-run never touches the
// shell. A nonzero exit status is reported, never retried.
func (e *LocalExecutor) Execute(ctx context.Context, command string, mode domain.ExecMode) (domain.ExecutionResult, error) {
	if mode == domain.ExecDryRun {
		return domain.ExecutionResult{Ran: false, DryRun: true}, nil
	}

	c := exec.CommandContext(ctx, e.shell, e.shellFlag(), command)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	duration := time.Since(start).Milliseconds()

	result := domain.ExecutionResult{
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: duration,
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		// the process ran, it just exited nonzero
		result.Ran = true
		result.ExitCode = exitErr.ExitCode()
		result.Err = err
		return result, err
	}
	if err != nil {
		result.Err = err
		return result, err
	}
	result.Ran = true
	result.ExitCode = 0
	return result, nil
}

// shellFlag picks the command-string flag for the configured interpreter:
// /C for cmd, -c for everything else.
func (e *LocalExecutor) shellFlag() string {
	base := strings.ToLower(strings.TrimSuffix(strings.TrimSuffix(
		e.shell[strings.LastIndexAny(e.shell, `/\`)+1:], ".exe"), ".EXE"))
	if base == "cmd" {
		return "/C"
	}
	return "-c"
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
