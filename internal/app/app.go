package app

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/jelou/internal/adapter/provider/cmudict"
	"github.com/heartmarshall/jelou/internal/config"
	"github.com/heartmarshall/jelou/internal/dictionary"
	"github.com/heartmarshall/jelou/internal/service/pronounce"
	"github.com/heartmarshall/jelou/internal/translit"
)

// App holds the wired components shared by the commands.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	Loader    *cmudict.Loader
	Pronounce *pronounce.Service
}

// New builds the rule tables, the dictionary loader and the pronounce
// service from cfg. The dictionary itself is loaded lazily on first use.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	tables, err := translit.NewRuleTableSet()
	if err != nil {
		return nil, fmt.Errorf("app: build rule tables: %w", err)
	}

	fetcher := cmudict.NewFetcher(cmudict.FetcherConfig{
		SourceURL:       cfg.Dictionary.SourceURL,
		Timeout:         cfg.Dictionary.FetchTimeout,
		RetryDelay:      cfg.Dictionary.RetryDelay,
		BreakerFailures: cfg.Dictionary.BreakerFailures,
		BreakerCooldown: cfg.Dictionary.BreakerCooldown,
	}, logger)
	loader := cmudict.NewLoader(fetcher, cfg.Dictionary.CachePath, logger)

	svc := pronounce.NewService(
		logger,
		loader,
		dictionary.NewResolver(),
		translit.NewEngine(tables),
		tables,
		cfg.Engine,
	)

	logger.Info("application wired",
		slog.String("version", BuildVersion()),
		slog.String("cache_path", loader.CachePath()),
		slog.Int("batch_workers", cfg.Engine.BatchWorkers),
	)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Loader:    loader,
		Pronounce: svc,
	}, nil
}
