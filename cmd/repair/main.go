// Command repair sweeps the store for broken todo memberships left by
// partially applied writes: members without a content record, content
// records no source references, and todos listed in more than one source.
// It is intended to be run by hand or from cron, not in-process.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/kwokm/mk-todo/internal/app"
	"github.com/kwokm/mk-todo/internal/config"
	"github.com/kwokm/mk-todo/internal/service/repair"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report problems without writing")
	deleteOrphans := flag.Bool("delete-orphans", false, "delete content records no source references")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, closeStore, err := app.OpenStore(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	report, err := repair.NewService(logger, store).Sweep(ctx, repair.Options{
		DryRun:        *dryRun,
		DeleteOrphans: *deleteOrphans,
	})
	if err != nil {
		logger.Error("sweep failed", slog.String("error", err.Error()))
		closeStore()
		os.Exit(1)
	}

	dups := make([]string, 0, len(report.Duplicates))
	for id := range report.Duplicates {
		dups = append(dups, id)
	}
	sort.Strings(dups)
	for _, id := range dups {
		logger.Warn("todo in several sources",
			slog.String("todo_id", id),
			slog.Any("sources", report.Duplicates[id]),
		)
	}

	logger.Info("sweep completed",
		slog.Bool("dry_run", *dryRun),
		slog.Int("sources", report.Sources),
		slog.Int("todos", report.Todos),
		slog.Int("dangling", len(report.Dangling)),
		slog.Int("orphans", len(report.Orphans)),
		slog.Int("duplicates", len(report.Duplicates)),
		slog.Int("removed", report.Removed),
	)
}
