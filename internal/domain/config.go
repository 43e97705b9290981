package domain

// Config mirrors ~/.nlcmd/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Preferences         Preferences       `yaml:"preferences"`
	Execution           ExecutionSettings `yaml:"execution"`
	History             HistorySettings   `yaml:"history"`
	Aliases             AliasSettings     `yaml:"aliases"`
}

// Preferences captures user level toggles.
type Preferences struct {
	DryRun      bool `yaml:"dry_run"`
	PlainOutput bool `yaml:"plain_output"`
	Verbose     bool `yaml:"verbose"`
}

// ExecutionSettings controls how commands run.
type ExecutionSettings struct {
	// Shell is the interpreter for generated commands. Empty resolves
	// %ComSpec% and falls back to cmd.
	Shell string `yaml:"shell"`

	// ConfirmBeforeExecute gates destructive commands behind the prompt.
	// A missing key means true; an explicit false is a standing,
	// config-level auto-confirm.
	ConfirmBeforeExecute *bool `yaml:"confirm_before_execute"`
}

// ConfirmationRequired reports whether destructive commands must be
// confirmed before execution.
func (c Config) ConfirmationRequired() bool {
	return c.Execution.ConfirmBeforeExecute == nil || *c.Execution.ConfirmBeforeExecute
}

// HistorySettings selects the history backend.
type HistorySettings struct {
	// Backend is "sqlite" or "file" (JSONL).
	Backend string `yaml:"backend"`
}

// AliasSettings points at the user alias rules file.
type AliasSettings struct {
	RulesFile string `yaml:"rules_file"`
}
