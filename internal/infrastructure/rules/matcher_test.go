package rules

import (
	"errors"
	"testing"

	"github.com/kneto/nlcmd/internal/domain"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  go to downloads  ": "go to downloads",
		"list\t\tfiles":       "list files",
		"a  b   c":            "a b c",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func twoPatternRegistry(t *testing.T) *Registry {
	t.Helper()
	registry := NewRegistry()
	first := domain.Pattern{
		Priority:    10,
		Recognizer:  compile(`list (.+)`),
		Generator:   fixed("first wins"),
		Description: "first",
		Safe:        true,
		Category:    domain.CategoryFiles,
		Example:     "list files",
	}
	second := domain.Pattern{
		Priority:    20,
		Recognizer:  compile(`list files`),
		Generator:   fixed("second"),
		Description: "second",
		Safe:        true,
		Category:    domain.CategoryFiles,
		Example:     "list files",
	}
	if err := registry.Register(first); err != nil {
		t.Fatal(err)
	}
	if err := registry.Register(second); err != nil {
		t.Fatal(err)
	}
	registry.Seal()
	return registry
}

// Both recognizers match "list files"; the lower priority must win on
// every call.
func TestMatchIsOrderDeterministic(t *testing.T) {
	matcher := NewMatcher(twoPatternRegistry(t), nil)
	for i := 0; i < 50; i++ {
		result, err := matcher.Match("list files")
		if err != nil {
			t.Fatalf("Match error: %v", err)
		}
		if !result.Matched || result.Pattern.Description != "first" {
			t.Fatalf("call %d: expected first pattern, got %+v", i, result.Pattern)
		}
	}
}

func TestMatchIsCaseInsensitiveAndWhitespaceTolerant(t *testing.T) {
	matcher := NewMatcher(twoPatternRegistry(t), nil)
	result, err := matcher.Match("  LIST   Files ")
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if !result.Matched {
		t.Fatal("expected match")
	}
}

func TestMatchRequiresFullInput(t *testing.T) {
	registry := NewRegistry()
	registry.Register(domain.Pattern{
		Priority:    10,
		Recognizer:  compile(`ls`),
		Generator:   fixed("dir"),
		Description: "alias",
		Safe:        true,
		Category:    domain.CategoryAlias,
		Example:     "ls",
	})
	registry.Seal()
	matcher := NewMatcher(registry, nil)

	if result, _ := matcher.Match("lsblk"); result.Matched {
		t.Fatal("recognizer must not match a substring of the input")
	}
	if result, _ := matcher.Match("ls"); !result.Matched {
		t.Fatal("expected exact phrase to match")
	}
}

func TestMatchNoMatchCarriesOriginalInput(t *testing.T) {
	matcher := NewMatcher(twoPatternRegistry(t), nil)
	result, err := matcher.Match("asdkjasd random text")
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if result.Matched {
		t.Fatal("expected no match")
	}
	if result.Input != "asdkjasd random text" {
		t.Fatalf("Input = %q", result.Input)
	}
	if result.Command != "" {
		t.Fatalf("no-match result must not carry a command, got %q", result.Command)
	}
}

func TestMatchEmptyInputNeverMatches(t *testing.T) {
	matcher := NewMatcher(twoPatternRegistry(t), nil)
	if result, _ := matcher.Match("   "); result.Matched {
		t.Fatal("blank input must not match")
	}
}

func TestGenerationIsIdempotent(t *testing.T) {
	registry, err := NewBuiltinRegistry("/nonexistent/aliases.yaml")
	if err != nil {
		t.Fatalf("NewBuiltinRegistry error: %v", err)
	}
	matcher := NewMatcher(registry, nil)

	first, err := matcher.Match("delete file some file.txt")
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	second, err := matcher.Match("delete file some file.txt")
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if first.Command != second.Command {
		t.Fatalf("generation not idempotent: %q vs %q", first.Command, second.Command)
	}
}

func TestMatchSurfacesGenerationFault(t *testing.T) {
	registry, err := NewBuiltinRegistry("/nonexistent/aliases.yaml")
	if err != nil {
		t.Fatalf("NewBuiltinRegistry error: %v", err)
	}
	matcher := NewMatcher(registry, nil)

	result, err := matcher.Match(`delete file evil"name.txt`)
	if !errors.Is(err, domain.ErrUnsafeFragment) {
		t.Fatalf("expected ErrUnsafeFragment, got %v", err)
	}
	if result.Command != "" {
		t.Fatalf("faulted generation must not emit a command, got %q", result.Command)
	}
	if result.Pattern == nil {
		t.Fatal("faulted result should still reference the matched pattern")
	}
}
