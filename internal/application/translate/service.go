// Package translate orchestrates the parse-match-gate-execute cycle.
package translate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kneto/nlcmd/internal/domain"
	"github.com/kneto/nlcmd/internal/ports"
)

// Service runs one phrase end-to-end: match, generate, safety gate,
// execute, history record. One cycle runs to completion before the next
// input is accepted; the only suspension point is the confirmation prompt.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Matcher        ports.Matcher
	Executor       ports.CommandExecutor
	Prompter       ports.ConfirmationPrompter
	History        ports.HistoryRepository
	Clipboard      ports.Clipboard
	Logger         ports.Logger
}

// Run processes a single natural-language phrase. Every path, including
// no-match and generation faults, appends one HistoryRecord.
func (s *Service) Run(req domain.TranslateRequest) (domain.TranslateResponse, error) {
	if s.ConfigProvider == nil || s.Matcher == nil || s.Executor == nil || s.Logger == nil {
		return domain.TranslateResponse{}, errors.New("translate.Service dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.TranslateResponse{}, fmt.Errorf("load config: %w", err)
	}
	dryRun := req.DryRun || cfg.Preferences.DryRun

	resp := domain.TranslateResponse{Input: req.Phrase, Gate: domain.GateStart}

	result, err := s.Matcher.Match(req.Phrase)
	if err != nil {
		// A matched pattern whose fragment could not be quoted. The
		// command never reaches the executor.
		resp.Outcome = domain.OutcomeGenerationFault
		if result.Pattern != nil {
			resp.Description = result.Pattern.Description
			resp.Category = result.Pattern.Category
			resp.Safe = result.Pattern.Safe
		}
		s.record(req.Phrase, resp)
		return resp, err
	}

	if !result.Matched {
		resp.Outcome = domain.OutcomeNoMatch
		s.record(req.Phrase, resp)
		return resp, nil
	}

	resp.Command = result.Command
	resp.Description = result.Pattern.Description
	resp.Category = result.Pattern.Category
	resp.Safe = result.Pattern.Safe

	if req.CopyToClipboard && s.Clipboard != nil && s.Clipboard.Enabled() {
		if err := s.Clipboard.Copy(result.Command); err != nil {
			s.Logger.Warn("clipboard copy failed", map[string]interface{}{"error": err.Error()})
		}
	}

	if dryRun {
		// Dry-run reports the command without gating or running it; the
		// outcome is dry-run regardless of what the gate would decide.
		resp.Gate = domain.GateApproved
		execResult, _ := s.Executor.Execute(ctx, result.Command, domain.ExecDryRun)
		resp.ExecutionResult = &execResult
		resp.Outcome = domain.OutcomeDryRun
		s.record(req.Phrase, resp)
		return resp, nil
	}

	gate, err := s.applyGate(req, cfg, result)
	resp.Gate = gate
	if err != nil {
		resp.Outcome = domain.OutcomeSkippedByUser
		s.record(req.Phrase, resp)
		return resp, err
	}
	if gate != domain.GateApproved {
		resp.Outcome = domain.OutcomeSkippedByUser
		s.record(req.Phrase, resp)
		return resp, nil
	}

	execResult, execErr := s.Executor.Execute(ctx, result.Command, domain.ExecLive)
	resp.ExecutionResult = &execResult
	if execErr != nil || execResult.ExitCode != 0 {
		resp.Outcome = domain.OutcomeFailed
	} else {
		resp.Outcome = domain.OutcomeExecuted
	}
	s.record(req.Phrase, resp)
	return resp, execErr
}

// applyGate runs the per-attempt safety state machine. Safe commands go
// straight to approved. Destructive commands require confirmation unless
// auto-confirm is set, either per-run (--yes) or as a standing
// confirm_before_execute=false in the config; in a non-interactive run
// they are rejected rather than allowed to proceed.
func (s *Service) applyGate(req domain.TranslateRequest, cfg domain.Config, result domain.ParseResult) (domain.GateState, error) {
	if result.Pattern.Safe {
		return domain.GateApproved, nil
	}

	if req.AutoConfirm || !cfg.ConfirmationRequired() {
		s.Logger.Info("destructive command auto-confirmed", map[string]interface{}{
			"command": result.Command,
		})
		return domain.GateApproved, nil
	}

	if req.NonInteractive || s.Prompter == nil || !s.Prompter.Enabled() {
		return domain.GateRejected, nil
	}

	// Pending confirmation: blocks until the operator answers. There is no
	// timeout; a destructive action must never auto-proceed.
	confirmed, err := s.Prompter.Confirm(result.Command, result.Pattern.Description)
	if err != nil {
		return domain.GateRejected, fmt.Errorf("confirmation prompt: %w", err)
	}
	if !confirmed {
		return domain.GateRejected, nil
	}
	return domain.GateApproved, nil
}

func (s *Service) record(input string, resp domain.TranslateResponse) {
	if s.History == nil {
		return
	}
	rec := domain.HistoryRecord{
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		Input:       input,
		Command:     resp.Command,
		Description: resp.Description,
		Category:    resp.Category,
		Safe:        resp.Safe,
		Outcome:     resp.Outcome,
	}
	if resp.ExecutionResult != nil {
		rec.ExitCode = resp.ExecutionResult.ExitCode
		rec.ExecutionTimeMS = resp.ExecutionResult.DurationMS
	}
	if err := s.History.Save(rec); err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}
