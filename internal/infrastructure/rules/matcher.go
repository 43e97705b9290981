package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kneto/nlcmd/internal/domain"
	"github.com/kneto/nlcmd/internal/ports"
)

var whitespace = regexp.MustCompile(`\s+`)

// Normalize prepares input for matching: trim, collapse internal runs of
// whitespace to single spaces. Case folding is handled by the recognizers
// themselves, which compile with (?i).
func Normalize(input string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(input), " ")
}

// Matcher finds the first pattern in priority order whose recognizer
// matches the entire normalized input. No fuzzy matching, no specificity
// scoring: a recognizer either matches deterministically or it does not,
// and ties are impossible because the first match wins.
type Matcher struct {
	registry *Registry
	log      ports.Logger
}

// NewMatcher builds a matcher over an explicit registry.
func NewMatcher(registry *Registry, log ports.Logger) *Matcher {
	return &Matcher{registry: registry, log: log}
}

// Match implements ports.Matcher. A no-match is a result, not an error;
// the only error path is a generation fault on a matched pattern.
func (m *Matcher) Match(input string) (domain.ParseResult, error) {
	normalized := Normalize(input)
	if normalized == "" {
		return domain.ParseResult{Input: input}, nil
	}

	for _, pattern := range m.registry.All() {
		captures := pattern.Recognizer.FindStringSubmatch(normalized)
		if captures == nil {
			if m.log != nil {
				m.log.Debug("pattern did not match", map[string]interface{}{
					"pattern": pattern.Description,
					"input":   normalized,
				})
			}
			continue
		}

		result := domain.ParseResult{
			Matched:  true,
			Input:    input,
			Pattern:  &pattern,
			Captures: captures,
		}

		command, err := pattern.Generator(captures)
		if err != nil {
			return result, fmt.Errorf("generate %q: %w", pattern.Description, err)
		}
		result.Command = command

		if m.log != nil {
			m.log.Debug("pattern matched", map[string]interface{}{
				"pattern":  pattern.Description,
				"priority": pattern.Priority,
				"command":  command,
			})
		}
		return result, nil
	}

	return domain.ParseResult{Input: input}, nil
}

var _ ports.Matcher = (*Matcher)(nil)

// compile anchors an expression to the full input and makes it
// case-insensitive. All registry recognizers go through here so a pattern
// can only match a substring when it anchors loosely on purpose (e.g. a
// trailing capture group).
func compile(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^(?:` + expr + `)$`)
}
