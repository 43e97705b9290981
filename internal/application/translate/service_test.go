package translate

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/kneto/nlcmd/internal/domain"
)

type stubConfig struct {
	cfg domain.Config
	err error
}

func (s *stubConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }

type stubMatcher struct {
	result domain.ParseResult
	err    error
}

func (s *stubMatcher) Match(input string) (domain.ParseResult, error) {
	s.result.Input = input
	return s.result, s.err
}

type stubExecutor struct {
	calls  []domain.ExecMode
	result domain.ExecutionResult
	err    error
}

func (s *stubExecutor) Execute(_ context.Context, _ string, mode domain.ExecMode) (domain.ExecutionResult, error) {
	s.calls = append(s.calls, mode)
	if mode == domain.ExecDryRun {
		return domain.ExecutionResult{DryRun: true}, nil
	}
	return s.result, s.err
}

type stubPrompter struct {
	answer  bool
	err     error
	asked   int
	enabled bool
}

func (s *stubPrompter) Confirm(command, description string) (bool, error) {
	s.asked++
	return s.answer, s.err
}

func (s *stubPrompter) Enabled() bool { return s.enabled }

type stubHistory struct {
	saved []domain.HistoryRecord
	err   error
}

func (s *stubHistory) Save(record domain.HistoryRecord) error {
	s.saved = append(s.saved, record)
	return s.err
}

func (s *stubHistory) Records(int, string) ([]domain.HistoryRecord, error) { return s.saved, nil }
func (s *stubHistory) Clear() error                                       { return nil }
func (s *stubHistory) ExportJSON(string) error                            { return nil }
func (s *stubHistory) Path() string                                       { return "" }

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}

func matchedResult(command string, safe bool) domain.ParseResult {
	return domain.ParseResult{
		Matched: true,
		Command: command,
		Pattern: &domain.Pattern{
			Priority:    10,
			Recognizer:  regexp.MustCompile(`.*`),
			Generator:   func([]string) (string, error) { return command, nil },
			Description: "test pattern",
			Safe:        safe,
			Category:    domain.CategoryFiles,
			Example:     "test",
		},
	}
}

type fixture struct {
	service  *Service
	executor *stubExecutor
	prompter *stubPrompter
	history  *stubHistory
}

func newFixture(result domain.ParseResult, matchErr error) *fixture {
	f := &fixture{
		executor: &stubExecutor{},
		prompter: &stubPrompter{enabled: true},
		history:  &stubHistory{},
	}
	f.service = &Service{
		ConfigProvider: &stubConfig{},
		Matcher:        &stubMatcher{result: result, err: matchErr},
		Executor:       f.executor,
		Prompter:       f.prompter,
		History:        f.history,
		Logger:         nopLogger{},
	}
	return f
}

func (f *fixture) lastRecord(t *testing.T) domain.HistoryRecord {
	t.Helper()
	if len(f.history.saved) != 1 {
		t.Fatalf("expected exactly 1 history record, got %d", len(f.history.saved))
	}
	return f.history.saved[0]
}

func TestRunSafeCommandExecutes(t *testing.T) {
	f := newFixture(matchedResult("dir", true), nil)
	f.executor.result = domain.ExecutionResult{Ran: true, ExitCode: 0}

	resp, err := f.service.Run(domain.TranslateRequest{Phrase: "list files"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if resp.Outcome != domain.OutcomeExecuted {
		t.Fatalf("outcome = %s", resp.Outcome)
	}
	if resp.Gate != domain.GateApproved {
		t.Fatalf("gate = %s", resp.Gate)
	}
	if f.prompter.asked != 0 {
		t.Fatal("safe command must not prompt")
	}
	if len(f.executor.calls) != 1 || f.executor.calls[0] != domain.ExecLive {
		t.Fatalf("executor calls = %v", f.executor.calls)
	}

	rec := f.lastRecord(t)
	if rec.Outcome != domain.OutcomeExecuted || rec.Command != "dir" {
		t.Fatalf("record = %+v", rec)
	}
	if rec.ID == "" || rec.Timestamp.IsZero() {
		t.Fatalf("record missing identity: %+v", rec)
	}
}

// A declined confirmation must keep the command away from the executor.
func TestRunDeclinedDestructiveCommandNeverExecutes(t *testing.T) {
	f := newFixture(matchedResult(`del "x.txt"`, false), nil)
	f.prompter.answer = false

	resp, err := f.service.Run(domain.TranslateRequest{Phrase: "delete file x.txt"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if resp.Outcome != domain.OutcomeSkippedByUser {
		t.Fatalf("outcome = %s", resp.Outcome)
	}
	if resp.Gate != domain.GateRejected {
		t.Fatalf("gate = %s", resp.Gate)
	}
	if f.prompter.asked != 1 {
		t.Fatalf("prompter asked %d times", f.prompter.asked)
	}
	if len(f.executor.calls) != 0 {
		t.Fatal("declined command reached the executor")
	}
	if f.lastRecord(t).Outcome != domain.OutcomeSkippedByUser {
		t.Fatalf("record = %+v", f.lastRecord(t))
	}
}

func TestRunConfirmedDestructiveCommandExecutes(t *testing.T) {
	f := newFixture(matchedResult(`del "x.txt"`, false), nil)
	f.prompter.answer = true
	f.executor.result = domain.ExecutionResult{Ran: true, ExitCode: 0}

	resp, err := f.service.Run(domain.TranslateRequest{Phrase: "delete file x.txt"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if resp.Outcome != domain.OutcomeExecuted {
		t.Fatalf("outcome = %s", resp.Outcome)
	}
	if f.prompter.asked != 1 {
		t.Fatalf("prompter asked %d times", f.prompter.asked)
	}
}

func TestRunAutoConfirmSkipsPrompt(t *testing.T) {
	f := newFixture(matchedResult(`del "x.txt"`, false), nil)
	f.executor.result = domain.ExecutionResult{Ran: true, ExitCode: 0}

	resp, err := f.service.Run(domain.TranslateRequest{Phrase: "delete file x.txt", AutoConfirm: true})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if resp.Outcome != domain.OutcomeExecuted {
		t.Fatalf("outcome = %s", resp.Outcome)
	}
	if f.prompter.asked != 0 {
		t.Fatal("auto-confirm must not prompt")
	}
}

// Without a terminal to ask on, a destructive command is rejected, never
// silently run.
func TestRunNonInteractiveRejectsDestructive(t *testing.T) {
	f := newFixture(matchedResult(`del "x.txt"`, false), nil)

	resp, err := f.service.Run(domain.TranslateRequest{Phrase: "delete file x.txt", NonInteractive: true})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if resp.Gate != domain.GateRejected || resp.Outcome != domain.OutcomeSkippedByUser {
		t.Fatalf("gate = %s, outcome = %s", resp.Gate, resp.Outcome)
	}
	if len(f.executor.calls) != 0 {
		t.Fatal("non-interactive destructive command reached the executor")
	}
}

func TestRunDisabledPrompterRejectsDestructive(t *testing.T) {
	f := newFixture(matchedResult(`del "x.txt"`, false), nil)
	f.prompter.enabled = false

	resp, err := f.service.Run(domain.TranslateRequest{Phrase: "delete file x.txt"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if resp.Gate != domain.GateRejected {
		t.Fatalf("gate = %s", resp.Gate)
	}
	if f.prompter.asked != 0 {
		t.Fatal("disabled prompter must not be asked")
	}
}

// Dry-run shows the command for safe and destructive patterns alike; the
// executor only ever sees dry-run mode and the outcome is always dry-run.
func TestRunDryRunNeverExecutes(t *testing.T) {
	for _, safe := range []bool{true, false} {
		f := newFixture(matchedResult("del something", safe), nil)

		resp, err := f.service.Run(domain.TranslateRequest{Phrase: "whatever", DryRun: true})
		if err != nil {
			t.Fatalf("safe=%v: Run error: %v", safe, err)
		}
		if resp.Outcome != domain.OutcomeDryRun {
			t.Fatalf("safe=%v: outcome = %s", safe, resp.Outcome)
		}
		if f.prompter.asked != 0 {
			t.Fatalf("safe=%v: dry-run must not prompt", safe)
		}
		for _, mode := range f.executor.calls {
			if mode != domain.ExecDryRun {
				t.Fatalf("safe=%v: live execution during dry-run", safe)
			}
		}
		if f.lastRecord(t).Outcome != domain.OutcomeDryRun {
			t.Fatalf("safe=%v: record = %+v", safe, f.lastRecord(t))
		}
	}
}

// confirm_before_execute: false in the config is a standing auto-confirm:
// destructive commands run without the prompt, same as --yes.
func TestRunConfigDisabledConfirmationSkipsPrompt(t *testing.T) {
	off := false
	f := newFixture(matchedResult(`del "x.txt"`, false), nil)
	f.service.ConfigProvider = &stubConfig{cfg: domain.Config{
		Execution: domain.ExecutionSettings{ConfirmBeforeExecute: &off},
	}}
	f.executor.result = domain.ExecutionResult{Ran: true, ExitCode: 0}

	resp, err := f.service.Run(domain.TranslateRequest{Phrase: "delete file x.txt"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if resp.Outcome != domain.OutcomeExecuted || resp.Gate != domain.GateApproved {
		t.Fatalf("outcome = %s, gate = %s", resp.Outcome, resp.Gate)
	}
	if f.prompter.asked != 0 {
		t.Fatal("disabled confirmation must not prompt")
	}
}

// An unset confirm_before_execute key keeps the gate armed.
func TestRunUnsetConfirmationStillPrompts(t *testing.T) {
	f := newFixture(matchedResult(`del "x.txt"`, false), nil)
	f.prompter.answer = false

	resp, err := f.service.Run(domain.TranslateRequest{Phrase: "delete file x.txt"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if resp.Gate != domain.GateRejected {
		t.Fatalf("gate = %s", resp.Gate)
	}
	if f.prompter.asked != 1 {
		t.Fatalf("prompter asked %d times", f.prompter.asked)
	}
}

func TestRunConfigDryRunPreferenceApplies(t *testing.T) {
	f := newFixture(matchedResult("dir", true), nil)
	f.service.ConfigProvider = &stubConfig{cfg: domain.Config{
		Preferences: domain.Preferences{DryRun: true},
	}}

	resp, err := f.service.Run(domain.TranslateRequest{Phrase: "list files"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if resp.Outcome != domain.OutcomeDryRun {
		t.Fatalf("outcome = %s", resp.Outcome)
	}
}

// An unrecognized phrase is a result, not an error, and still lands in
// history with an empty command.
func TestRunNoMatchIsRecordedNotAnError(t *testing.T) {
	f := newFixture(domain.ParseResult{Matched: false}, nil)

	resp, err := f.service.Run(domain.TranslateRequest{Phrase: "asdkjasd"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if resp.Outcome != domain.OutcomeNoMatch {
		t.Fatalf("outcome = %s", resp.Outcome)
	}
	if len(f.executor.calls) != 0 {
		t.Fatal("no-match must not execute")
	}

	rec := f.lastRecord(t)
	if rec.Input != "asdkjasd" || rec.Command != "" {
		t.Fatalf("record = %+v", rec)
	}
}

func TestRunGenerationFaultIsRecorded(t *testing.T) {
	faulted := matchedResult("", false)
	faulted.Matched = true
	faulted.Command = ""
	f := newFixture(faulted, domain.ErrUnsafeFragment)

	resp, err := f.service.Run(domain.TranslateRequest{Phrase: `delete file evil"x`})
	if !errors.Is(err, domain.ErrUnsafeFragment) {
		t.Fatalf("expected ErrUnsafeFragment, got %v", err)
	}
	if resp.Outcome != domain.OutcomeGenerationFault {
		t.Fatalf("outcome = %s", resp.Outcome)
	}
	if len(f.executor.calls) != 0 {
		t.Fatal("faulted generation must not execute")
	}
	if f.lastRecord(t).Outcome != domain.OutcomeGenerationFault {
		t.Fatalf("record = %+v", f.lastRecord(t))
	}
}

func TestRunNonZeroExitIsFailed(t *testing.T) {
	f := newFixture(matchedResult("dir missing", true), nil)
	f.executor.result = domain.ExecutionResult{Ran: true, ExitCode: 1}

	resp, err := f.service.Run(domain.TranslateRequest{Phrase: "list files"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if resp.Outcome != domain.OutcomeFailed {
		t.Fatalf("outcome = %s", resp.Outcome)
	}
	rec := f.lastRecord(t)
	if rec.Outcome != domain.OutcomeFailed || rec.ExitCode != 1 {
		t.Fatalf("record = %+v", rec)
	}
}

type stubClipboard struct {
	copied []string
}

func (s *stubClipboard) Copy(text string) error { s.copied = append(s.copied, text); return nil }
func (s *stubClipboard) Enabled() bool          { return true }

func TestRunCopiesCommandToClipboard(t *testing.T) {
	f := newFixture(matchedResult("dir", true), nil)
	clip := &stubClipboard{}
	f.service.Clipboard = clip
	f.executor.result = domain.ExecutionResult{Ran: true}

	if _, err := f.service.Run(domain.TranslateRequest{Phrase: "list files", CopyToClipboard: true}); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(clip.copied) != 1 || clip.copied[0] != "dir" {
		t.Fatalf("clipboard = %v", clip.copied)
	}
}
