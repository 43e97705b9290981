// Package config loads the YAML configuration file.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kneto/nlcmd/internal/domain"
	"github.com/kneto/nlcmd/internal/pkg/filesystem"
	"github.com/kneto/nlcmd/internal/ports"
)

// FileLoader loads YAML configuration from ~/.nlcmd/config.yaml
// (overridable via NLCMD_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is created with
// defaults. The NLCMD_DRY_RUN and NLCMD_DEBUG environment toggles are
// folded into the returned preferences.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return applyEnvOverrides(cfg), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return applyEnvOverrides(hydrateDefaults(cfg)), nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("NLCMD_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHome(), ".nlcmd", "config.yaml")
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func defaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Preferences: domain.Preferences{
			DryRun:      false,
			PlainOutput: false,
			Verbose:     false,
		},
		Execution: domain.ExecutionSettings{
			Shell:                "",
			ConfirmBeforeExecute: boolPtr(true),
		},
		History: domain.HistorySettings{
			Backend: "sqlite",
		},
		Aliases: domain.AliasSettings{
			RulesFile: filepath.Join(filesystem.UserHome(), ".nlcmd", "aliases.yaml"),
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.History.Backend == "" {
		cfg.History.Backend = "sqlite"
	}
	if cfg.Execution.ConfirmBeforeExecute == nil {
		cfg.Execution.ConfirmBeforeExecute = boolPtr(true)
	}
	if cfg.Aliases.RulesFile == "" {
		cfg.Aliases.RulesFile = filepath.Join(filesystem.UserHome(), ".nlcmd", "aliases.yaml")
	}
	return cfg
}

// applyEnvOverrides reads the two boolean environment toggles. They are
// equivalent to the --dry-run and --debug flags.
func applyEnvOverrides(cfg domain.Config) domain.Config {
	if envBool("NLCMD_DRY_RUN") {
		cfg.Preferences.DryRun = true
	}
	if envBool("NLCMD_DEBUG") {
		cfg.Preferences.Verbose = true
	}
	return cfg
}

func envBool(name string) bool {
	value := os.Getenv(name)
	return strings.EqualFold(value, "1") || strings.EqualFold(value, "true")
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(filesystem.UserHome(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
