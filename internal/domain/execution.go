package domain

// ExecMode selects between running a command and only reporting it.
type ExecMode string

const (
	ExecLive   ExecMode = "live"
	ExecDryRun ExecMode = "dry-run"
)

// ExecutionResult describes a shell invocation (or a dry run).
type ExecutionResult struct {
	Ran        bool
	ExitCode   int
	Stdout     string
	Stderr     string
	DurationMS int64
	DryRun     bool
	Err        error
}
