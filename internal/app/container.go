// Package app wires application services with infrastructure adapters.
package app

import (
	"context"

	"github.com/kneto/nlcmd/internal/application/doctor"
	"github.com/kneto/nlcmd/internal/application/stats"
	"github.com/kneto/nlcmd/internal/application/translate"
	"github.com/kneto/nlcmd/internal/domain"
	"github.com/kneto/nlcmd/internal/infrastructure/config"
	"github.com/kneto/nlcmd/internal/infrastructure/executor"
	"github.com/kneto/nlcmd/internal/infrastructure/history"
	"github.com/kneto/nlcmd/internal/infrastructure/rules"
	"github.com/kneto/nlcmd/internal/pkg/logger"
	"github.com/kneto/nlcmd/internal/ports"
)

// Container holds the dependency graph for one run.
type Container struct {
	TranslateService *translate.Service
	StatsService     *stats.Service
	DoctorService    *doctor.Service
	ConfigProvider   ports.ConfigProvider
	Config           domain.Config
	Registry         *rules.Registry
	HistoryStore     ports.HistoryRepository
	Logger           ports.Logger
}

// EnableDebug raises the log level to debug after flag parsing, which
// happens later than container construction.
func (c *Container) EnableDebug() {
	if zl, ok := c.Logger.(*logger.ZapLogger); ok {
		zl.EnableDebug()
	}
}

// BuildContainer constructs the dependency graph. The pattern registry is
// built exactly once here and passed explicitly to everything that needs
// it.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewZap(verbose || cfg.Preferences.Verbose)

	registry, err := rules.NewBuiltinRegistry(cfg.Aliases.RulesFile)
	if err != nil {
		return nil, err
	}

	var historyStore ports.HistoryRepository
	if cfg.History.Backend == "file" {
		historyStore = history.NewFileStore()
	} else {
		historyStore = history.NewSQLiteStore()
	}

	translateService := &translate.Service{
		ConfigProvider: cfgLoader,
		Matcher:        rules.NewMatcher(registry, log),
		Executor:       executor.NewLocalExecutor(cfg.Execution.Shell),
		History:        historyStore,
		Logger:         log,
	}

	return &Container{
		TranslateService: translateService,
		Config:           cfg,
		StatsService:     &stats.Service{History: historyStore},
		DoctorService: &doctor.Service{
			ConfigProvider: cfgLoader,
			Registry:       registry,
			History:        historyStore,
		},
		ConfigProvider: cfgLoader,
		Registry:       registry,
		HistoryStore:   historyStore,
		Logger:         log,
	}, nil
}
