package domain

import "context"

// ParseResult is the outcome of matching one input phrase against the
// registry. Either Pattern is set and Command holds the generated command,
// or Matched is false and Input carries the original text for diagnostics.
type ParseResult struct {
	Matched  bool
	Input    string
	Command  string
	Pattern  *Pattern
	Captures []string
}

// TranslateRequest carries one phrase through the translate pipeline.
type TranslateRequest struct {
	Context context.Context

	Phrase string

	// DryRun reports the resolved command without ever invoking the shell.
	DryRun bool

	// AutoConfirm approves destructive commands without prompting. It is
	// the one explicit, logged bypass of the safety gate.
	AutoConfirm bool

	// NonInteractive rejects destructive commands instead of prompting.
	NonInteractive bool

	// CopyToClipboard copies the generated command on success.
	CopyToClipboard bool
}

// TranslateResponse reports the resolved command and what happened to it.
type TranslateResponse struct {
	Input           string
	Command         string
	Description     string
	Category        Category
	Safe            bool
	Gate            GateState
	Outcome         Outcome
	ExecutionResult *ExecutionResult
}
