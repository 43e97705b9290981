// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). Following the Ports and Adapters
// (Hexagonal) pattern, these interfaces allow the application to remain
// independent of specific implementations like databases, terminals, or CLI
// frameworks.
package ports

import (
	"context"

	"github.com/kneto/nlcmd/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.nlcmd/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Matcher resolves a free-text phrase against the pattern registry.
type Matcher interface {
	Match(input string) (domain.ParseResult, error)
}

// CommandExecutor runs generated commands in the configured shell. In
// dry-run mode the command is reported but never invoked.
type CommandExecutor interface {
	Execute(ctx context.Context, command string, mode domain.ExecMode) (domain.ExecutionResult, error)
}

// ConfirmationPrompter handles the synchronous confirmation that guards
// destructive commands. The prompt blocks until answered; there is no
// timeout, so an unanswered prompt never auto-proceeds.
type ConfirmationPrompter interface {
	Confirm(command string, description string) (bool, error)
	Enabled() bool
}

// HistoryRepository persists one HistoryRecord per parse attempt.
type HistoryRepository interface {
	Save(record domain.HistoryRecord) error
	Records(limit int, search string) ([]domain.HistoryRecord, error)
	Clear() error
	ExportJSON(dest string) error
	Path() string
}

// Clipboard copies generated commands for the user. Best effort.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
