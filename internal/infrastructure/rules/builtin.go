package rules

import (
	"fmt"
	"strings"

	"github.com/kneto/nlcmd/internal/domain"
)

// NewBuiltinRegistry builds the full pattern set: built-in phrase rules
// plus alias rules loaded from the given file (defaults when the file is
// missing). The registry is sealed before returning.
//
// Priorities run most-specific-first. Within a concern the narrow phrasing
// gets the lower number so it is tried before the general capture; a new
// pattern added above an existing general one must keep that discipline or
// Registry.Validate will flag it.
func NewBuiltinRegistry(aliasRulesFile string) (*Registry, error) {
	registry := NewRegistry()
	for _, p := range builtinPatterns() {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}

	aliasPatterns, err := LoadAliasPatterns(aliasRulesFile)
	if err != nil {
		return nil, err
	}
	for _, p := range aliasPatterns {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}

	registry.Seal()
	return registry, nil
}

// fixed emits a generator for phrases that map to one literal command.
func fixed(command string) domain.Generator {
	return func([]string) (string, error) {
		return command, nil
	}
}

func builtinPatterns() []domain.Pattern {
	return []domain.Pattern{
		// Navigation
		{
			Priority:    10,
			Recognizer:  compile(`go back|go up`),
			Generator:   fixed("cd .."),
			Description: "Go to parent directory",
			Safe:        true,
			Category:    domain.CategoryNavigation,
			Example:     "go back",
		},
		{
			Priority:    12,
			Recognizer:  compile(`show (?:current directory|current path)`),
			Generator:   fixed("cd"),
			Description: "Show current directory",
			Safe:        true,
			Category:    domain.CategoryNavigation,
			Example:     "show current directory",
		},
		{
			Priority:    14,
			Recognizer:  compile(`where am i`),
			Generator:   fixed("cd"),
			Description: "Show current directory",
			Safe:        true,
			Category:    domain.CategoryNavigation,
			Example:     "where am i",
		},
		{
			Priority:   18,
			Recognizer: compile(`go to (.+)`),
			Generator: func(captures []string) (string, error) {
				dir, err := QuoteIfNeeded(titleCase(captures[1]))
				if err != nil {
					return "", err
				}
				return "cd " + dir, nil
			},
			Description: "Change directory",
			Safe:        true,
			Category:    domain.CategoryNavigation,
			Example:     "go to downloads",
		},

		// Files
		{
			Priority:   50,
			Recognizer: compile(`list files (?:sorted|sort) by (size|name|date)`),
			Generator: func(captures []string) (string, error) {
				switch strings.ToLower(strings.TrimSpace(captures[1])) {
				case "size":
					return "dir /O-S", nil
				case "name":
					return "dir /O-N", nil
				case "date":
					return "dir /O-D", nil
				}
				return "dir", nil
			},
			Description: "List files sorted",
			Safe:        true,
			Category:    domain.CategoryFiles,
			Example:     "list files sorted by size",
		},
		{
			Priority:    52,
			Recognizer:  compile(`(?:list|show) hidden files`),
			Generator:   fixed("dir /a:h"),
			Description: "List hidden files",
			Safe:        true,
			Category:    domain.CategoryFiles,
			Example:     "list hidden files",
		},
		{
			Priority:    54,
			Recognizer:  compile(`list (?:all )?files`),
			Generator:   fixed("dir"),
			Description: "List files",
			Safe:        true,
			Category:    domain.CategoryFiles,
			Example:     "list files",
		},
		{
			Priority:   60,
			Recognizer: compile(`create (?:folder|directory) (.+)`),
			Generator: func(captures []string) (string, error) {
				name, err := QuoteIfNeeded(strings.TrimSpace(captures[1]))
				if err != nil {
					return "", err
				}
				return "mkdir " + name, nil
			},
			Description: "Create directory",
			Safe:        true,
			Category:    domain.CategoryFiles,
			Example:     "create folder my-project",
		},
		{
			Priority:   62,
			Recognizer: compile(`create (?:empty )?file (.+)`),
			Generator: func(captures []string) (string, error) {
				name, err := Quote(captures[1])
				if err != nil {
					return "", err
				}
				return "type nul > " + name, nil
			},
			Description: "Create empty file",
			Safe:        true,
			Category:    domain.CategoryFiles,
			Example:     "create file notes.txt",
		},
		{
			Priority:   70,
			Recognizer: compile(`delete (?:the )?file (.+)`),
			Generator: func(captures []string) (string, error) {
				name, err := Quote(captures[1])
				if err != nil {
					return "", err
				}
				return "del " + name, nil
			},
			Description: "Delete file",
			Safe:        false,
			Category:    domain.CategoryFiles,
			Example:     "delete file readme.txt",
		},
		{
			Priority:   72,
			Recognizer: compile(`delete (?:the )?(?:folder|directory) (.+)`),
			Generator: func(captures []string) (string, error) {
				name, err := Quote(captures[1])
				if err != nil {
					return "", err
				}
				return "rmdir /s /q " + name, nil
			},
			Description: "Delete directory",
			Safe:        false,
			Category:    domain.CategoryFiles,
			Example:     "delete folder build",
		},
		{
			Priority:   80,
			Recognizer: compile(`copy (.+) (?:to|into) (.+)`),
			Generator: func(captures []string) (string, error) {
				src, err := Quote(captures[1])
				if err != nil {
					return "", err
				}
				dst, err := Quote(captures[2])
				if err != nil {
					return "", err
				}
				return "copy " + src + " " + dst, nil
			},
			Description: "Copy file",
			Safe:        true,
			Category:    domain.CategoryFiles,
			Example:     "copy report.txt to backup",
		},
		{
			Priority:   82,
			Recognizer: compile(`move (.+) (?:to|into) (.+)`),
			Generator: func(captures []string) (string, error) {
				src, err := Quote(captures[1])
				if err != nil {
					return "", err
				}
				dst, err := Quote(captures[2])
				if err != nil {
					return "", err
				}
				return "move " + src + " " + dst, nil
			},
			Description: "Move file",
			Safe:        false, // can overwrite the destination
			Category:    domain.CategoryFiles,
			Example:     "move report.txt to archive",
		},
		{
			Priority:   84,
			Recognizer: compile(`rename (.+) (?:to|as) (.+)`),
			Generator: func(captures []string) (string, error) {
				src, err := Quote(captures[1])
				if err != nil {
					return "", err
				}
				dst, err := Quote(captures[2])
				if err != nil {
					return "", err
				}
				return "ren " + src + " " + dst, nil
			},
			Description: "Rename file",
			Safe:        true,
			Category:    domain.CategoryFiles,
			Example:     "rename draft.txt to final.txt",
		},

		// System
		{
			Priority:    100,
			Recognizer:  compile(`clear|clean|clear (?:the )?screen`),
			Generator:   fixed("cls"),
			Description: "Clear screen",
			Safe:        true,
			Category:    domain.CategorySystem,
			Example:     "clear",
		},
		{
			Priority:    102,
			Recognizer:  compile(`show disk space`),
			Generator:   fixed("wmic logicaldisk get size,freespace,caption"),
			Description: "Show disk space",
			Safe:        true,
			Category:    domain.CategorySystem,
			Example:     "show disk space",
		},
		{
			Priority:    104,
			Recognizer:  compile(`show system (?:info|information)`),
			Generator:   fixed("systeminfo"),
			Description: "Show system information",
			Safe:        true,
			Category:    domain.CategorySystem,
			Example:     "show system info",
		},
		{
			Priority:    106,
			Recognizer:  compile(`show (?:date|time|date and time)`),
			Generator:   fixed("echo %DATE% %TIME%"),
			Description: "Show date and time",
			Safe:        true,
			Category:    domain.CategorySystem,
			Example:     "show date and time",
		},
		{
			Priority:    108,
			Recognizer:  compile(`shut ?down(?: the)?(?: computer| pc)?`),
			Generator:   fixed("shutdown /s /t 0"),
			Description: "Shut down computer",
			Safe:        false,
			Category:    domain.CategorySystem,
			Example:     "shutdown the computer",
		},
		{
			Priority:    110,
			Recognizer:  compile(`restart(?: the)?(?: computer| pc)?`),
			Generator:   fixed("shutdown /r /t 0"),
			Description: "Restart computer",
			Safe:        false,
			Category:    domain.CategorySystem,
			Example:     "restart the computer",
		},
		{
			// Kept after every other "open"/"show" phrasing: the trailing
			// capture makes this one broad.
			Priority:   120,
			Recognizer: compile(`open (.+)`),
			Generator: func(captures []string) (string, error) {
				target := strings.TrimSpace(captures[1])
				if err := fragmentSafe(target); err != nil {
					return "", err
				}
				if needsQuoting(target) {
					// start treats the first quoted argument as a window
					// title, so an empty title slot is required.
					return `start "" "` + target + `"`, nil
				}
				return "start " + target, nil
			},
			Description: "Open program",
			Safe:        true,
			Category:    domain.CategorySystem,
			Example:     "open notepad",
		},

		// Search
		{
			Priority:   140,
			Recognizer: compile(`find files (?:named|containing|with) (.+)`),
			Generator: func(captures []string) (string, error) {
				needle, err := Quote(captures[1])
				if err != nil {
					return "", err
				}
				return "dir /s /b | findstr /i " + needle, nil
			},
			Description: "Find files by name",
			Safe:        true,
			Category:    domain.CategorySearch,
			Example:     "find files containing config",
		},
		{
			Priority:   142,
			Recognizer: compile(`find text (.+) (?:in|within) files`),
			Generator: func(captures []string) (string, error) {
				needle, err := Quote(captures[1])
				if err != nil {
					return "", err
				}
				return "findstr /s /i " + needle + " *.*", nil
			},
			Description: "Find text in files",
			Safe:        true,
			Category:    domain.CategorySearch,
			Example:     "find text TODO in files",
		},

		// Process
		{
			Priority:    160,
			Recognizer:  compile(`(?:list|show) (?:running )?processes`),
			Generator:   fixed("tasklist"),
			Description: "List processes",
			Safe:        true,
			Category:    domain.CategoryProcess,
			Example:     "list processes",
		},
		{
			Priority:   162,
			Recognizer: compile(`find process (.+)`),
			Generator: func(captures []string) (string, error) {
				name, err := Quote(captures[1])
				if err != nil {
					return "", err
				}
				return "tasklist | findstr /i " + name, nil
			},
			Description: "Find process",
			Safe:        true,
			Category:    domain.CategoryProcess,
			Example:     "find process chrome",
		},
		{
			Priority:   164,
			Recognizer: compile(`kill (?:process )?(.+)`),
			Generator: func(captures []string) (string, error) {
				name, err := Quote(captures[1])
				if err != nil {
					return "", err
				}
				return "taskkill /f /im " + name, nil
			},
			Description: "Kill process",
			Safe:        false,
			Category:    domain.CategoryProcess,
			Example:     "kill process notepad.exe",
		},

		// Environment
		{
			Priority:    180,
			Recognizer:  compile(`show (?:environment|env)(?: variables)?`),
			Generator:   fixed("set"),
			Description: "Show environment variables",
			Safe:        true,
			Category:    domain.CategoryEnvironment,
			Example:     "show environment variables",
		},
		{
			Priority:    182,
			Recognizer:  compile(`show (?:the )?path`),
			Generator:   fixed("echo %PATH%"),
			Description: "Show PATH",
			Safe:        true,
			Category:    domain.CategoryEnvironment,
			Example:     "show path",
		},
		{
			Priority:   184,
			Recognizer: compile(`show (?:the )?value of ([A-Za-z_][A-Za-z0-9_]*)`),
			Generator: func(captures []string) (string, error) {
				return fmt.Sprintf("echo %%%s%%", strings.TrimSpace(captures[1])), nil
			},
			Description: "Show environment variable value",
			Safe:        true,
			Category:    domain.CategoryEnvironment,
			Example:     "show the value of USERPROFILE",
		},

		// Network
		{
			Priority:    200,
			Recognizer:  compile(`show (?:my )?ip(?: address)?`),
			Generator:   fixed("ipconfig"),
			Description: "Show IP address",
			Safe:        true,
			Category:    domain.CategoryNetwork,
			Example:     "show my ip",
		},
		{
			Priority:    202,
			Recognizer:  compile(`show network (?:info|information|connections)`),
			Generator:   fixed("ipconfig /all"),
			Description: "Show network information",
			Safe:        true,
			Category:    domain.CategoryNetwork,
			Example:     "show network info",
		},
		{
			Priority:    204,
			Recognizer:  compile(`show (?:open )?ports`),
			Generator:   fixed("netstat -an"),
			Description: "Show open ports",
			Safe:        true,
			Category:    domain.CategoryNetwork,
			Example:     "show open ports",
		},
		{
			Priority:   206,
			Recognizer: compile(`ping (.+)`),
			Generator: func(captures []string) (string, error) {
				host, err := QuoteIfNeeded(captures[1])
				if err != nil {
					return "", err
				}
				return "ping " + host, nil
			},
			Description: "Ping host",
			Safe:        true,
			Category:    domain.CategoryNetwork,
			Example:     "ping example.com",
		},

		// Properties
		{
			Priority:   220,
			Recognizer: compile(`show (?:file )?(?:properties|attributes) of (.+)`),
			Generator: func(captures []string) (string, error) {
				name, err := Quote(captures[1])
				if err != nil {
					return "", err
				}
				return "attrib " + name, nil
			},
			Description: "Show file attributes",
			Safe:        true,
			Category:    domain.CategoryProperties,
			Example:     "show properties of report.txt",
		},
		{
			Priority:   222,
			Recognizer: compile(`show size of (.+)`),
			Generator: func(captures []string) (string, error) {
				name, err := Quote(captures[1])
				if err != nil {
					return "", err
				}
				return "dir " + name, nil
			},
			Description: "Show file size",
			Safe:        true,
			Category:    domain.CategoryProperties,
			Example:     "show size of report.txt",
		},
		{
			Priority:   224,
			Recognizer: compile(`when was (.+) (?:modified|changed)`),
			Generator: func(captures []string) (string, error) {
				name, err := Quote(captures[1])
				if err != nil {
					return "", err
				}
				return "dir /t:w " + name, nil
			},
			Description: "Show last modified time",
			Safe:        true,
			Category:    domain.CategoryProperties,
			Example:     "when was report.txt modified",
		},

		// Text
		{
			Priority:   240,
			Recognizer: compile(`show (?:the )?contents? of (.+)`),
			Generator: func(captures []string) (string, error) {
				name, err := Quote(captures[1])
				if err != nil {
					return "", err
				}
				return "type " + name, nil
			},
			Description: "Show file contents",
			Safe:        true,
			Category:    domain.CategoryText,
			Example:     "show contents of readme.txt",
		},
		{
			Priority:   242,
			Recognizer: compile(`count lines in (.+)`),
			Generator: func(captures []string) (string, error) {
				name, err := Quote(captures[1])
				if err != nil {
					return "", err
				}
				return `find /c /v "" ` + name, nil
			},
			Description: "Count lines in file",
			Safe:        true,
			Category:    domain.CategoryText,
			Example:     "count lines in main.go",
		},
		{
			Priority:   244,
			Recognizer: compile(`find (.+) in file (.+)`),
			Generator: func(captures []string) (string, error) {
				needle, err := Quote(captures[1])
				if err != nil {
					return "", err
				}
				name, err := Quote(captures[2])
				if err != nil {
					return "", err
				}
				return "findstr /i " + needle + " " + name, nil
			},
			Description: "Find text in one file",
			Safe:        true,
			Category:    domain.CategoryText,
			Example:     "find error in file app.log",
		},
	}
}
