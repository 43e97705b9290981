package domain

import "time"

// Outcome classifies what ultimately happened to a parse attempt.
type Outcome string

const (
	OutcomeExecuted        Outcome = "executed"
	OutcomeFailed          Outcome = "failed"
	OutcomeSkippedByUser   Outcome = "skipped-by-user"
	OutcomeDryRun          Outcome = "dry-run"
	OutcomeNoMatch         Outcome = "no-match"
	OutcomeGenerationFault Outcome = "generation-fault"
)

// HistoryRecord captures one parse attempt. One record is appended per
// attempt regardless of outcome so statistics stay accurate on every path.
type HistoryRecord struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	Input           string    `json:"input"`
	Command         string    `json:"command"`
	Description     string    `json:"description"`
	Category        Category  `json:"category"`
	Safe            bool      `json:"safe"`
	Outcome         Outcome   `json:"outcome"`
	ExitCode        int       `json:"exit_code"`
	ExecutionTimeMS int64     `json:"execution_time_ms"`
}
