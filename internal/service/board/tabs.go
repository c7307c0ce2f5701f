package board

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/kwokm/mk-todo/internal/domain"
	"github.com/kwokm/mk-todo/internal/kv"
)

// cascadeReadLimit bounds concurrent ordered-set reads during a tab cascade.
const cascadeReadLimit = 8

// ListTabs returns all tabs ordered by sortOrder. An empty store is seeded
// with the default tabs; seeding again on an empty array is idempotent.
func (s *Service) ListTabs(ctx context.Context) ([]domain.Tab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tabs, err := s.readTabs(ctx)
	if err != nil {
		return nil, err
	}

	if len(tabs) == 0 {
		tabs = domain.DefaultTabs()
		if err := kv.SetJSON(ctx, s.store, domain.TabsKey, tabs); err != nil {
			return nil, fmt.Errorf("seed tabs: %w", err)
		}
		s.log.InfoContext(ctx, "tabs seeded", slog.Int("count", len(tabs)))
	}

	sortTabs(tabs)
	return tabs, nil
}

// CreateTab appends a new tab.
func (s *Service) CreateTab(ctx context.Context, input CreateTabInput) (*domain.Tab, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate id: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tabs, err := s.readTabs(ctx)
	if err != nil {
		return nil, err
	}

	tab := domain.Tab{ID: id, Name: input.Name, SortOrder: domain.NextTabOrder(tabs)}
	tabs = append(tabs, tab)
	if err := kv.SetJSON(ctx, s.store, domain.TabsKey, tabs); err != nil {
		return nil, fmt.Errorf("create tab: %w", err)
	}

	s.log.InfoContext(ctx, "tab created",
		slog.String("tab_id", tab.ID),
		slog.String("name", tab.Name),
	)

	return &tab, nil
}

// RenameTab changes the name of an existing tab.
func (s *Service) RenameTab(ctx context.Context, input RenameTabInput) (*domain.Tab, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tabs, err := s.readTabs(ctx)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(tabs, func(t domain.Tab) bool { return t.ID == input.TabID })
	if idx == -1 {
		return nil, domain.NotFoundError("tab", input.TabID)
	}

	tabs[idx].Name = input.Name
	if err := kv.SetJSON(ctx, s.store, domain.TabsKey, tabs); err != nil {
		return nil, fmt.Errorf("rename tab: %w", err)
	}

	s.log.InfoContext(ctx, "tab renamed",
		slog.String("tab_id", input.TabID),
		slog.String("name", input.Name),
	)

	tab := tabs[idx]
	return &tab, nil
}

// DeleteTab removes a tab with all its lists and their todos. Child
// ordered sets are read concurrently; every deletion, and finally the tab
// record, goes out in one pipeline. Deleting an unknown tab succeeds.
func (s *Service) DeleteTab(ctx context.Context, input DeleteTabInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tabs, err := s.readTabs(ctx)
	if err != nil {
		return err
	}
	lists, err := s.readLists(ctx, input.TabID)
	if err != nil {
		return err
	}

	members := make([][]string, len(lists))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cascadeReadLimit)
	for i, list := range lists {
		g.Go(func() error {
			ids, err := s.store.ZRange(gctx, domain.ListSource(input.TabID, list.ID).String(), 0, -1)
			if err != nil {
				return fmt.Errorf("read list %s: %w", list.ID, err)
			}
			members[i] = ids
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	p := s.store.Pipeline()
	todoCount := 0
	for i, list := range lists {
		queueListCascade(p, domain.ListSource(input.TabID, list.ID), members[i])
		todoCount += len(members[i])
	}
	p.Del(domain.TabListsKey(input.TabID))

	remaining := slices.DeleteFunc(tabs, func(t domain.Tab) bool { return t.ID == input.TabID })
	if remaining == nil {
		remaining = []domain.Tab{}
	}
	raw, err := jsonString(remaining)
	if err != nil {
		return err
	}
	p.Set(domain.TabsKey, raw)

	if _, err := p.Exec(ctx); err != nil {
		return fmt.Errorf("delete tab: %w", err)
	}

	s.log.InfoContext(ctx, "tab deleted",
		slog.String("tab_id", input.TabID),
		slog.Int("lists", len(lists)),
		slog.Int("todos", todoCount),
	)

	return nil
}
