// Package rules implements the pattern registry and matching engine: the
// ordered set of recognized phrase patterns, first-match selection, command
// generation with CMD quoting, and the user alias rules file.
package rules

import (
	"fmt"
	"sort"

	"github.com/kneto/nlcmd/internal/domain"
)

// Registry holds the ordered pattern list. It is populated once at startup,
// sealed, and read-only thereafter; it is always passed explicitly rather
// than accessed as ambient global state so the engine can be tested with
// small injected registries.
type Registry struct {
	patterns []domain.Pattern
	sealed   bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a pattern. Matching order is governed by the explicit
// Priority field, not by registration order; equal priorities keep
// insertion order.
func (r *Registry) Register(p domain.Pattern) error {
	if r.sealed {
		return fmt.Errorf("registry sealed: cannot register %q", p.Description)
	}
	if p.Recognizer == nil {
		return fmt.Errorf("pattern %q has no recognizer", p.Description)
	}
	if p.Generator == nil {
		return fmt.Errorf("pattern %q has no generator", p.Description)
	}
	r.patterns = append(r.patterns, p)
	return nil
}

// Seal marks registration complete.
func (r *Registry) Seal() {
	r.sealed = true
	sort.SliceStable(r.patterns, func(i, j int) bool {
		return r.patterns[i].Priority < r.patterns[j].Priority
	})
}

// All returns the patterns in matching order.
func (r *Registry) All() []domain.Pattern {
	if !r.sealed {
		sorted := make([]domain.Pattern, len(r.patterns))
		copy(sorted, r.patterns)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Priority < sorted[j].Priority
		})
		return sorted
	}
	return r.patterns
}

// ByCategory groups patterns for discovery output, preserving matching
// order within each category.
func (r *Registry) ByCategory() map[domain.Category][]domain.Pattern {
	grouped := make(map[domain.Category][]domain.Pattern)
	for _, p := range r.All() {
		grouped[p.Category] = append(grouped[p.Category], p)
	}
	return grouped
}

// Len reports the number of registered patterns.
func (r *Registry) Len() int {
	return len(r.patterns)
}

// ShadowWarning reports a pattern whose example phrase is captured by an
// earlier pattern, meaning the later pattern can never match it.
type ShadowWarning struct {
	Shadowed domain.Pattern
	By       domain.Pattern
}

func (w ShadowWarning) String() string {
	return fmt.Sprintf("%q (priority %d) shadows %q (priority %d) for input %q",
		w.By.Description, w.By.Priority, w.Shadowed.Description, w.Shadowed.Priority, w.Shadowed.Example)
}

// Validate runs the shadow check: for each pattern, its example phrase must
// reach it without being consumed by an earlier pattern. Ordering is a
// load-bearing invariant, so new general patterns registered above specific
// ones are caught here instead of failing silently.
func (r *Registry) Validate() []ShadowWarning {
	var warnings []ShadowWarning
	all := r.All()
	for i, p := range all {
		if p.Example == "" {
			continue
		}
		normalized := Normalize(p.Example)
		for j := 0; j < i; j++ {
			if all[j].Recognizer.MatchString(normalized) {
				warnings = append(warnings, ShadowWarning{Shadowed: p, By: all[j]})
				break
			}
		}
	}
	return warnings
}
