package cmd

import (
	"fmt"

	"json-diff/core/config"
	"json-diff/core/database"
	"json-diff/core/logger"
	"json-diff/core/source"
	"json-diff/core/storage"

	"go.uber.org/zap"
)

// env is what every command needs once configuration is loaded.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	source source.Source
	close  func()
}

// setup loads the configuration, applies the persistent flags and opens
// the configured source.
func setup() (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if sourceKind != "" {
		cfg.Source.Kind = sourceKind
	}
	if sourceDir != "" {
		cfg.Source.Directory = sourceDir
		if sourceKind == "" {
			cfg.Source.Kind = source.KindDirectory
		}
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	src, closeFn, err := openSource(cfg, logg)
	if err != nil {
		_ = logg.Sync()
		return nil, err
	}

	return &env{
		cfg:    cfg,
		logger: logg,
		source: src,
		close: func() {
			closeFn()
			_ = logg.Sync()
		},
	}, nil
}

// openSource connects whatever backend the source kind requires.
func openSource(cfg *config.Config, logg *zap.Logger) (source.Source, func(), error) {
	deps := source.Deps{Bucket: cfg.Storage.Bucket}
	closeFn := func() {}

	switch cfg.Source.Kind {
	case source.KindBucket:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		deps.Storage = client
		logg.Debug("Using bucket source", zap.String("bucket", cfg.Storage.Bucket), zap.String("prefix", cfg.Source.Prefix))
	case source.KindTable:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		deps.DB = db
		closeFn = func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		logg.Debug("Using table source", zap.String("driver", cfg.Database.Driver), zap.String("database", cfg.Database.Name))
	}

	src, err := source.New(cfg.Source, deps)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return src, closeFn, nil
}
