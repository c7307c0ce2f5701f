package board

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/kwokm/mk-todo/internal/domain"
	"github.com/kwokm/mk-todo/internal/kv"
)

// ListLists returns the lists of a tab ordered by sortOrder. The reserved
// tab is seeded with its default lists while it has none.
func (s *Service) ListLists(ctx context.Context, tabID string) ([]domain.TodoList, error) {
	if fe := domain.ValidateID("tabId", tabID); fe != nil {
		return nil, domain.NewValidationErrors([]domain.FieldError{*fe})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lists, err := s.readLists(ctx, tabID)
	if err != nil {
		return nil, err
	}

	if len(lists) == 0 {
		defaults := domain.DefaultLists(tabID)
		if len(defaults) == 0 {
			return []domain.TodoList{}, nil
		}
		if err := kv.SetJSON(ctx, s.store, domain.TabListsKey(tabID), defaults); err != nil {
			return nil, fmt.Errorf("seed lists: %w", err)
		}
		s.log.InfoContext(ctx, "lists seeded",
			slog.String("tab_id", tabID),
			slog.Int("count", len(defaults)),
		)
		lists = defaults
	}

	sortLists(lists)
	return lists, nil
}

// CreateList appends a new list to a tab.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*domain.TodoList, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate id: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lists, err := s.readLists(ctx, input.TabID)
	if err != nil {
		return nil, err
	}

	list := domain.TodoList{
		ID:        id,
		TabID:     input.TabID,
		Name:      input.Name,
		SortOrder: domain.NextListOrder(lists),
	}
	lists = append(lists, list)
	if err := kv.SetJSON(ctx, s.store, domain.TabListsKey(input.TabID), lists); err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}

	s.log.InfoContext(ctx, "list created",
		slog.String("tab_id", input.TabID),
		slog.String("list_id", list.ID),
		slog.String("name", list.Name),
	)

	return &list, nil
}

// RenameList changes the name of an existing list.
func (s *Service) RenameList(ctx context.Context, input RenameListInput) (*domain.TodoList, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lists, err := s.readLists(ctx, input.TabID)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(lists, func(l domain.TodoList) bool { return l.ID == input.ListID })
	if idx == -1 {
		return nil, domain.NotFoundError("list", input.ListID)
	}

	lists[idx].Name = input.Name
	if err := kv.SetJSON(ctx, s.store, domain.TabListsKey(input.TabID), lists); err != nil {
		return nil, fmt.Errorf("rename list: %w", err)
	}

	s.log.InfoContext(ctx, "list renamed",
		slog.String("tab_id", input.TabID),
		slog.String("list_id", input.ListID),
		slog.String("name", input.Name),
	)

	list := lists[idx]
	return &list, nil
}

// DeleteList removes a list and every todo in it. Deleting an unknown list
// succeeds.
func (s *Service) DeleteList(ctx context.Context, input DeleteListInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lists, err := s.readLists(ctx, input.TabID)
	if err != nil {
		return err
	}

	src := domain.ListSource(input.TabID, input.ListID)
	todoIDs, err := s.store.ZRange(ctx, src.String(), 0, -1)
	if err != nil {
		return fmt.Errorf("read list %s: %w", input.ListID, err)
	}

	p := s.store.Pipeline()
	queueListCascade(p, src, todoIDs)

	remaining := slices.DeleteFunc(lists, func(l domain.TodoList) bool { return l.ID == input.ListID })
	if remaining == nil {
		remaining = []domain.TodoList{}
	}
	raw, err := jsonString(remaining)
	if err != nil {
		return err
	}
	p.Set(domain.TabListsKey(input.TabID), raw)

	if _, err := p.Exec(ctx); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}

	s.log.InfoContext(ctx, "list deleted",
		slog.String("tab_id", input.TabID),
		slog.String("list_id", input.ListID),
		slog.Int("todos", len(todoIDs)),
	)

	return nil
}

// ReorderLists rewrites sortOrder to follow input.ListIDs. Unknown ids are
// dropped; lists not mentioned keep their relative order after the given ones.
func (s *Service) ReorderLists(ctx context.Context, input ReorderListsInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lists, err := s.readLists(ctx, input.TabID)
	if err != nil {
		return err
	}
	sortLists(lists)

	byID := make(map[string]domain.TodoList, len(lists))
	for _, l := range lists {
		byID[l.ID] = l
	}

	reordered := make([]domain.TodoList, 0, len(lists))
	placed := make(map[string]bool, len(lists))
	for _, id := range input.ListIDs {
		if l, ok := byID[id]; ok && !placed[id] {
			reordered = append(reordered, l)
			placed[id] = true
		}
	}
	for _, l := range lists {
		if !placed[l.ID] {
			reordered = append(reordered, l)
		}
	}
	for i := range reordered {
		reordered[i].SortOrder = i
	}

	if err := kv.SetJSON(ctx, s.store, domain.TabListsKey(input.TabID), reordered); err != nil {
		return fmt.Errorf("reorder lists: %w", err)
	}

	s.log.InfoContext(ctx, "lists reordered",
		slog.String("tab_id", input.TabID),
		slog.Int("count", len(reordered)),
	)

	return nil
}

func jsonString(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return string(raw), nil
}
