// Package board manages tabs and their lists. Both are stored as whole JSON
// arrays (the tabs key and one key per tab) and rewritten on every change.
package board

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/kwokm/mk-todo/internal/domain"
	"github.com/kwokm/mk-todo/internal/kv"
)

// Service provides tab and list operations over a kv.Store.
type Service struct {
	store kv.Store
	log   *slog.Logger
	newID func() (string, error)

	// mu serializes read-modify-write cycles of the arrays within this process.
	mu sync.Mutex
}

// NewService creates a new Board service.
func NewService(log *slog.Logger, store kv.Store) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "board"),
		newID: domain.NewID,
	}
}

func (s *Service) readTabs(ctx context.Context) ([]domain.Tab, error) {
	var tabs []domain.Tab
	if _, err := kv.GetJSON(ctx, s.store, domain.TabsKey, &tabs); err != nil {
		return nil, fmt.Errorf("read tabs: %w", err)
	}
	return tabs, nil
}

func (s *Service) readLists(ctx context.Context, tabID string) ([]domain.TodoList, error) {
	var lists []domain.TodoList
	if _, err := kv.GetJSON(ctx, s.store, domain.TabListsKey(tabID), &lists); err != nil {
		return nil, fmt.Errorf("read lists of %s: %w", tabID, err)
	}
	return lists, nil
}

func sortTabs(tabs []domain.Tab) {
	slices.SortStableFunc(tabs, func(a, b domain.Tab) int { return cmp.Compare(a.SortOrder, b.SortOrder) })
}

func sortLists(lists []domain.TodoList) {
	slices.SortStableFunc(lists, func(a, b domain.TodoList) int { return cmp.Compare(a.SortOrder, b.SortOrder) })
}

// queueListCascade queues the deletion of a list's ordered set and every
// todo content record in it.
func queueListCascade(p *kv.Pipeline, src domain.Source, todoIDs []string) {
	for _, id := range todoIDs {
		p.Del(domain.TodoKey(id))
	}
	p.Del(src.String())
}
