// Package repair restores the membership invariant after partial failures:
// every todo content record belongs to exactly one ordered set and every
// member has a content record.
package repair

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/kwokm/mk-todo/internal/domain"
	"github.com/kwokm/mk-todo/internal/kv"
)

// Service sweeps a store for broken memberships.
type Service struct {
	store kv.Store
	log   *slog.Logger
}

// NewService creates a new Repair service.
func NewService(log *slog.Logger, store kv.Store) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "repair"),
	}
}

// Options controls what Sweep changes.
type Options struct {
	// DryRun reports without writing.
	DryRun bool
	// DeleteOrphans removes content records that no source references.
	DeleteOrphans bool
}

// Membership is one (source, todo id) pair.
type Membership struct {
	Source string
	TodoID string
}

// Report is the outcome of a sweep.
type Report struct {
	Sources int
	Todos   int
	// Dangling are memberships without a content record; removed unless DryRun.
	Dangling []Membership
	// Orphans are todo ids with content but no membership.
	Orphans []string
	// Duplicates maps a todo id to the sources it is a member of, when more
	// than one. They are reported only; no source is preferred.
	Duplicates map[string][]string
	// Removed counts deleted memberships and content records.
	Removed int
}

// Sweep scans every source and todo record.
func (s *Service) Sweep(ctx context.Context, opts Options) (*Report, error) {
	todoKeys, err := s.store.Keys(ctx, "todo:")
	if err != nil {
		return nil, fmt.Errorf("list todo keys: %w", err)
	}
	content := make(map[string]bool, len(todoKeys))
	for _, k := range todoKeys {
		content[strings.TrimPrefix(k, "todo:")] = true
	}

	sources, err := s.sourceKeys(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Sources: len(sources), Todos: len(content), Duplicates: map[string][]string{}}
	memberOf := make(map[string][]string, len(content))

	p := s.store.Pipeline()
	for _, src := range sources {
		p.ZRange(src, 0, -1)
	}
	results, err := p.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}

	for i, res := range results {
		src := sources[i]
		for _, id := range res.MemberNames() {
			if !content[id] {
				report.Dangling = append(report.Dangling, Membership{Source: src, TodoID: id})
				continue
			}
			memberOf[id] = append(memberOf[id], src)
		}
	}

	for id := range content {
		switch n := len(memberOf[id]); {
		case n == 0:
			report.Orphans = append(report.Orphans, id)
		case n > 1:
			report.Duplicates[id] = memberOf[id]
		}
	}
	slices.Sort(report.Orphans)

	if opts.DryRun {
		s.logReport(ctx, report, opts)
		return report, nil
	}

	fix := s.store.Pipeline()
	for _, m := range report.Dangling {
		fix.ZRem(m.Source, m.TodoID)
	}
	if opts.DeleteOrphans {
		for _, id := range report.Orphans {
			fix.Del(domain.TodoKey(id))
		}
	}
	if n := fix.Len(); n > 0 {
		if _, err := fix.Exec(ctx); err != nil {
			return report, fmt.Errorf("apply repairs: %w", err)
		}
		report.Removed = n
	}

	s.logReport(ctx, report, opts)
	return report, nil
}

// sourceKeys lists the keys of all well-formed sources.
func (s *Service) sourceKeys(ctx context.Context) ([]string, error) {
	var keys []string
	for _, prefix := range []string{"day:", "list:"} {
		found, err := s.store.Keys(ctx, prefix)
		if err != nil {
			return nil, fmt.Errorf("list %s keys: %w", prefix, err)
		}
		for _, k := range found {
			if domain.IsValidSourceKey(k) {
				keys = append(keys, k)
			}
		}
	}
	return keys, nil
}

func (s *Service) logReport(ctx context.Context, r *Report, opts Options) {
	s.log.InfoContext(ctx, "repair sweep finished",
		slog.Bool("dry_run", opts.DryRun),
		slog.Int("sources", r.Sources),
		slog.Int("todos", r.Todos),
		slog.Int("dangling", len(r.Dangling)),
		slog.Int("orphans", len(r.Orphans)),
		slog.Int("duplicates", len(r.Duplicates)),
		slog.Int("removed", r.Removed),
	)
}
