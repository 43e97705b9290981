package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ConfigFormatVersion != "1" {
		t.Fatalf("ConfigFormatVersion = %q", cfg.ConfigFormatVersion)
	}
	if !cfg.ConfirmationRequired() {
		t.Fatal("confirmation must default on")
	}
	if cfg.History.Backend != "sqlite" {
		t.Fatalf("Backend = %q", cfg.History.Backend)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config file was not written: %v", err)
	}
}

func TestLoadReadsExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `config_format_version: "1"
preferences:
  dry_run: true
  plain_output: true
  verbose: true
execution:
  shell: /bin/sh
  confirm_before_execute: false
history:
  backend: file
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.Preferences.DryRun || !cfg.Preferences.Verbose {
		t.Fatalf("preferences = %+v", cfg.Preferences)
	}
	if !cfg.Preferences.PlainOutput {
		t.Fatal("plain_output not read")
	}
	if cfg.Execution.Shell != "/bin/sh" {
		t.Fatalf("Shell = %q", cfg.Execution.Shell)
	}
	if cfg.ConfirmationRequired() {
		t.Fatal("explicit confirm_before_execute: false must disable confirmation")
	}
	if cfg.History.Backend != "file" {
		t.Fatalf("Backend = %q", cfg.History.Backend)
	}
}

func TestLoadHydratesMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("config_format_version: \"1\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.History.Backend != "sqlite" {
		t.Fatalf("Backend = %q", cfg.History.Backend)
	}
	if cfg.Aliases.RulesFile == "" {
		t.Fatal("alias rules file not hydrated")
	}
	// a config file that omits the key keeps the safety gate armed
	if !cfg.ConfirmationRequired() {
		t.Fatal("missing confirm_before_execute must default to true")
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("NLCMD_DRY_RUN", "true")
	t.Setenv("NLCMD_DEBUG", "1")

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.Preferences.DryRun {
		t.Fatal("NLCMD_DRY_RUN not applied")
	}
	if !cfg.Preferences.Verbose {
		t.Fatal("NLCMD_DEBUG not applied")
	}
}

func TestEnvBoolValues(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"true":  true,
		"TRUE":  true,
		"0":     false,
		"false": false,
		"":      false,
		"yes":   false,
	}
	for value, want := range cases {
		t.Setenv("NLCMD_TEST_FLAG", value)
		if got := envBool("NLCMD_TEST_FLAG"); got != want {
			t.Fatalf("envBool(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestResolvePathHonorsEnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv("NLCMD_CONFIG", custom)

	loader := NewFileLoader("")
	if got := loader.resolvePath(); got != custom {
		t.Fatalf("resolvePath = %q, want %q", got, custom)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("preferences: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected YAML parse error")
	}
}
