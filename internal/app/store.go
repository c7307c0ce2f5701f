package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kwokm/mk-todo/internal/adapter/memory"
	"github.com/kwokm/mk-todo/internal/adapter/postgres"
	"github.com/kwokm/mk-todo/internal/adapter/sqlite"
	"github.com/kwokm/mk-todo/internal/config"
	"github.com/kwokm/mk-todo/internal/kv"
)

// OpenStore connects the backend selected by cfg.Driver. The returned
// close function releases it and is never nil.
func OpenStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*kv.Client, func(), error) {
	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory store, data is lost on exit")
		return memory.NewStore(), func() {}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if cfg.Migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, nil, fmt.Errorf("migrate database: %w", err)
			}
		}
		logger.Info("connected to postgres",
			slog.Int("max_conns", int(cfg.MaxConns)),
			slog.Bool("migrated", cfg.Migrate),
		)
		return kv.NewClient(postgres.NewStore(pool)), pool.Close, nil

	case config.DriverSQLite:
		st, err := sqlite.Open(ctx, cfg.Path, cfg.Migrate)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("opened sqlite store", slog.String("path", cfg.Path))
		return kv.NewClient(st), func() {
			if err := st.Close(); err != nil {
				logger.Error("close sqlite store", slog.String("error", err.Error()))
			}
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
