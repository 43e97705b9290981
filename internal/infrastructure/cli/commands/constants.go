package commands

const (
	// DefaultHistoryLimit bounds `history list` output.
	DefaultHistoryLimit = 20

	// DefaultHistorySearchLimit bounds `history search` output.
	DefaultHistorySearchLimit = 50

	// TimestampFormat is used for history display.
	TimestampFormat = "2006-01-02 15:04:05"
)
