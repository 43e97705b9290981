// Package domain defines core business entities and value objects for nlcmd.
//
// This file contains the Pattern type, the central rule unit of the
// translation engine. The domain layer is independent of infrastructure
// concerns and represents pure business logic and data structures.
package domain

import "regexp"

// Category groups patterns for discovery output. It has no effect on
// matching order.
type Category string

const (
	CategoryNavigation  Category = "navigation"
	CategoryFiles       Category = "files"
	CategorySystem      Category = "system"
	CategorySearch      Category = "search"
	CategoryProcess     Category = "process"
	CategoryEnvironment Category = "environment"
	CategoryNetwork     Category = "network"
	CategoryProperties  Category = "properties"
	CategoryText        Category = "text"
	CategoryAlias       Category = "alias"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		CategoryNavigation,
		CategoryFiles,
		CategorySystem,
		CategorySearch,
		CategoryProcess,
		CategoryEnvironment,
		CategoryNetwork,
		CategoryProperties,
		CategoryText,
		CategoryAlias,
	}
}

// Generator produces a literal CMD command string from the fragments a
// recognizer captured. It must be pure: no I/O, no execution, and the only
// permitted error is ErrUnsafeFragment when a fragment cannot be quoted.
type Generator func(captures []string) (string, error)

// Pattern binds a recognizer to a command generator plus metadata. Patterns
// are immutable after registration.
type Pattern struct {
	// Priority is the explicit matching order. Lower values are tried
	// first. Ordering is load-bearing: a general pattern with a lower
	// priority shadows every more specific one after it.
	Priority int

	// Recognizer is compiled case-insensitively and anchored to the full
	// normalized input.
	Recognizer *regexp.Regexp

	Generator   Generator
	Description string

	// Safe is false for destructive commands (delete, overwrite, kill);
	// those pass through the safety gate before execution.
	Safe bool

	Category Category

	// Example is a literal phrase the recognizer must match. Used by the
	// discovery surface and the registry shadow check.
	Example string
}
