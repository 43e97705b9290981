package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kneto/nlcmd/internal/domain"
)

func TestRendererPlainModeDropsStyling(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, true)
	r.RenderResponse(domain.TranslateResponse{
		Input:       "list files",
		Command:     "dir",
		Description: "List files",
		Category:    domain.CategoryFiles,
		Outcome:     domain.OutcomeDryRun,
	})

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("plain output contains escape sequences: %q", out)
	}
	if !strings.Contains(out, "Command: dir") {
		t.Fatalf("output missing command line: %q", out)
	}
	if !strings.Contains(out, "Dry run: command not executed.") {
		t.Fatalf("output missing dry-run notice: %q", out)
	}
}

func TestRendererNoMatchSuggestsPhrases(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, true)
	r.RenderResponse(domain.TranslateResponse{
		Input:   "asdkjasd",
		Outcome: domain.OutcomeNoMatch,
	})

	out := buf.String()
	if !strings.Contains(out, "asdkjasd") {
		t.Fatalf("output missing the unrecognized input: %q", out)
	}
	if !strings.Contains(out, "nlcmd patterns") {
		t.Fatalf("output missing the discovery hint: %q", out)
	}
}
