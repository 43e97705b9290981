// Package doctor runs environment diagnostics.
package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kneto/nlcmd/internal/domain"
	"github.com/kneto/nlcmd/internal/infrastructure/rules"
	"github.com/kneto/nlcmd/internal/ports"
)

// Service checks that the pieces the translate pipeline depends on are in
// working order: config, pattern registry, shell, history store.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Registry       *rules.Registry
	History        ports.HistoryRepository
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded, format version %s", cfg.ConfigFormatVersion)))

	checks = append(checks, s.registryCheck())
	checks = append(checks, shellCheck(cfg.Execution.Shell))
	checks = append(checks, s.historyCheck())

	return domain.HealthReport{Checks: checks}, nil
}

// registryCheck verifies the pattern table is populated and free of
// shadowed entries.
func (s *Service) registryCheck() domain.HealthCheck {
	if s.Registry == nil || s.Registry.Len() == 0 {
		return fail("Pattern registry", "no patterns registered")
	}
	if warnings := s.Registry.Validate(); len(warnings) > 0 {
		return warn("Pattern registry", fmt.Sprintf("%d shadowed pattern(s): %s", len(warnings), warnings[0].String()))
	}
	return ok("Pattern registry", fmt.Sprintf("%d patterns, no shadowing", s.Registry.Len()))
}

func shellCheck(shell string) domain.HealthCheck {
	if shell == "" {
		shell = os.Getenv("ComSpec")
	}
	if shell == "" {
		shell = "cmd"
	}
	if _, err := exec.LookPath(shell); err != nil {
		return warn("Shell", fmt.Sprintf("%s not found: %v", shell, err))
	}
	return ok("Shell", shell)
}

func (s *Service) historyCheck() domain.HealthCheck {
	if s.History == nil {
		return warn("History store", "not initialized")
	}
	path := s.History.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fail("History store", fmt.Sprintf("directory not writable: %v", err))
	}
	return ok("History store", path)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
