package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kneto/nlcmd/internal/domain"
	"github.com/kneto/nlcmd/internal/pkg/filesystem"
)

// AliasRule describes one user-defined alias pattern. The command template
// substitutes $1..$9 with the corresponding captured fragments. Fragments
// that cannot be quoted safely (embedded double quotes, control
// characters) are refused, but they are inserted bare: quoting belongs in
// the template itself, as in `del "$1"`.
type AliasRule struct {
	Pattern     string `yaml:"pattern"`
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
	Safe        bool   `yaml:"safe"`
	Example     string `yaml:"example"`
}

// AliasFile is the YAML schema root for ~/.nlcmd/aliases.yaml.
type AliasFile struct {
	Aliases []AliasRule `yaml:"aliases"`
}

var placeholder = regexp.MustCompile(`\$([1-9])`)

// LoadAliasPatterns reads alias rules from disk (or defaults when missing)
// and converts them to registered patterns. Aliases sort after every
// built-in pattern so a user alias can never shadow a built-in phrase.
func LoadAliasPatterns(path string) ([]domain.Pattern, error) {
	rulesFile, err := loadAliasRules(path)
	if err != nil {
		return nil, err
	}

	patterns := make([]domain.Pattern, 0, len(rulesFile.Aliases))
	for i, rule := range rulesFile.Aliases {
		re, err := regexp.Compile(`(?i)^(?:` + rule.Pattern + `)$`)
		if err != nil {
			return nil, fmt.Errorf("alias rule %q: %w", rule.Pattern, err)
		}
		patterns = append(patterns, domain.Pattern{
			Priority:    aliasPriorityBase + i,
			Recognizer:  re,
			Generator:   templateGenerator(rule.Command),
			Description: rule.Description,
			Safe:        rule.Safe,
			Category:    domain.CategoryAlias,
			Example:     rule.Example,
		})
	}
	return patterns, nil
}

const aliasPriorityBase = 900

func templateGenerator(template string) domain.Generator {
	return func(captures []string) (string, error) {
		var faulted error
		command := placeholder.ReplaceAllStringFunc(template, func(ref string) string {
			idx := int(ref[1] - '0')
			if idx >= len(captures) {
				return ""
			}
			fragment := strings.TrimSpace(captures[idx])
			if err := fragmentSafe(fragment); err != nil {
				faulted = err
				return ""
			}
			return fragment
		})
		if faulted != nil {
			return "", faulted
		}
		return command, nil
	}
}

func loadAliasRules(path string) (AliasFile, error) {
	var rulesFile AliasFile
	path = expandPath(path)
	data, err := os.ReadFile(path)
	if err != nil {
		// fall back to defaults
		rulesFile.Aliases = defaultAliasRules()
		return rulesFile, nil
	}
	if err := yaml.Unmarshal(data, &rulesFile); err != nil {
		return AliasFile{}, err
	}
	if len(rulesFile.Aliases) == 0 {
		rulesFile.Aliases = defaultAliasRules()
	}
	return rulesFile, nil
}

func expandPath(path string) string {
	if path == "" {
		return filepath.Join(filesystem.UserHome(), ".nlcmd", "aliases.yaml")
	}
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(filesystem.UserHome(), path[2:])
	}
	return filepath.Join(filesystem.UserHome(), path)
}

// defaultAliasRules maps common unix spellings onto their CMD equivalents.
func defaultAliasRules() []AliasRule {
	return []AliasRule{
		{Pattern: `ls|ll`, Command: "dir", Description: "List files (alias)", Safe: true, Example: "ls"},
		{Pattern: `pwd`, Command: "cd", Description: "Show directory (alias)", Safe: true, Example: "pwd"},
		{Pattern: `mkdir (.+)`, Command: `mkdir "$1"`, Description: "Make directory (alias)", Safe: true, Example: "mkdir src"},
		{Pattern: `touch (.+)`, Command: `type nul > "$1"`, Description: "Create empty file (alias)", Safe: true, Example: "touch notes.txt"},
		{Pattern: `cat (.+)`, Command: `type "$1"`, Description: "Show file (alias)", Safe: true, Example: "cat readme.txt"},
		{Pattern: `cp (.+) (.+)`, Command: `copy "$1" "$2"`, Description: "Copy file (alias)", Safe: true, Example: "cp a.txt b.txt"},
		{Pattern: `mv (.+) (.+)`, Command: `move "$1" "$2"`, Description: "Move file (alias)", Safe: false, Example: "mv a.txt b.txt"},
		{Pattern: `rm (.+)`, Command: `del "$1"`, Description: "Remove file (alias)", Safe: false, Example: "rm old.txt"},
		{Pattern: `grep (.+) (.+)`, Command: `findstr /i "$1" "$2"`, Description: "Search in file (alias)", Safe: true, Example: "grep error app.log"},
		{Pattern: `ps`, Command: "tasklist", Description: "List processes (alias)", Safe: true, Example: "ps"},
	}
}
