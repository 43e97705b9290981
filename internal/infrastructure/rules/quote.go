package rules

import (
	"fmt"
	"strings"

	"github.com/kneto/nlcmd/internal/domain"
)

// CMD has no escape for a double quote inside a quoted token, and control
// characters terminate or mangle the line, so fragments containing either
// are refused rather than passed through.
func fragmentSafe(fragment string) error {
	if strings.ContainsRune(fragment, '"') {
		return fmt.Errorf("%w: embedded double quote in %q", domain.ErrUnsafeFragment, fragment)
	}
	for _, r := range fragment {
		if r < 0x20 {
			return fmt.Errorf("%w: control character in %q", domain.ErrUnsafeFragment, fragment)
		}
	}
	return nil
}

// Quote wraps a user-supplied fragment in CMD double quotes so embedded
// spaces stay one token. Every path-like or free-text capture injected into
// a command goes through here or QuoteIfNeeded.
func Quote(fragment string) (string, error) {
	fragment = strings.TrimSpace(fragment)
	if err := fragmentSafe(fragment); err != nil {
		return "", err
	}
	return `"` + fragment + `"`, nil
}

// QuoteIfNeeded returns the fragment bare when CMD would already treat it
// as a single token, quoting only when it would split or be reinterpreted.
func QuoteIfNeeded(fragment string) (string, error) {
	fragment = strings.TrimSpace(fragment)
	if err := fragmentSafe(fragment); err != nil {
		return "", err
	}
	if needsQuoting(fragment) {
		return `"` + fragment + `"`, nil
	}
	return fragment, nil
}

func needsQuoting(fragment string) bool {
	return fragment == "" || strings.ContainsAny(fragment, " \t&|<>^()")
}

// titleCase capitalizes the first letter of each space-separated word,
// matching how directory names are conventionally cased on Windows
// ("downloads" -> "Downloads").
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
