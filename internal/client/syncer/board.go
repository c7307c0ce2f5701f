package syncer

import (
	"context"
	"slices"

	"github.com/kwokm/mk-todo/internal/domain"
)

type tabMutation = Mutation[TabsKey, []domain.Tab, *domain.Tab]

type listMutation = Mutation[ListsKey, []domain.TodoList, *domain.TodoList]

var tabsKey = []TabsKey{{}}

// Tabs returns the tabs, fetching them when they are not cached.
func (s *Syncer) Tabs(ctx context.Context) ([]domain.Tab, error) {
	return s.tabs.Fetch(ctx, TabsKey{}, s.api.ListTabs)
}

// Lists returns the lists of a tab, fetching them when they are not cached.
func (s *Syncer) Lists(ctx context.Context, tabID string) ([]domain.TodoList, error) {
	return s.lists.Fetch(ctx, ListsKey{TabID: tabID}, func(ctx context.Context) ([]domain.TodoList, error) {
		return s.api.ListLists(ctx, tabID)
	})
}

// CreateTab appends a placeholder tab and swaps in the server's tab.
func (s *Syncer) CreateTab(ctx context.Context, name string) (*domain.Tab, error) {
	tempID := s.tempID()

	return Run(ctx, s.tabs, s.notify, s.log, tabMutation{
		Name: "create tab",
		Keys: tabsKey,
		Apply: func(_ TabsKey, cur []domain.Tab) []domain.Tab {
			return append(cur, domain.Tab{ID: tempID, Name: name, SortOrder: domain.NextTabOrder(cur)})
		},
		Commit: func(ctx context.Context) (*domain.Tab, error) {
			return s.api.CreateTab(ctx, name)
		},
		Accept: func(_ TabsKey, cur []domain.Tab, created *domain.Tab) []domain.Tab {
			return replaceTab(cur, tempID, *created)
		},
	})
}

// RenameTab renames a tab.
func (s *Syncer) RenameTab(ctx context.Context, tabID, name string) (*domain.Tab, error) {
	return Run(ctx, s.tabs, s.notify, s.log, tabMutation{
		Name: "rename tab",
		Keys: tabsKey,
		Apply: func(_ TabsKey, cur []domain.Tab) []domain.Tab {
			if i := slices.IndexFunc(cur, func(t domain.Tab) bool { return t.ID == tabID }); i >= 0 {
				cur[i].Name = name
			}
			return cur
		},
		Commit: func(ctx context.Context) (*domain.Tab, error) {
			return s.api.RenameTab(ctx, tabID, name)
		},
		Accept: func(_ TabsKey, cur []domain.Tab, renamed *domain.Tab) []domain.Tab {
			return replaceTab(cur, tabID, *renamed)
		},
	})
}

// DeleteTab removes a tab. On success the lists of the tab and the todos of
// those lists are refetched.
func (s *Syncer) DeleteTab(ctx context.Context, tabID string) error {
	_, err := Run(ctx, s.tabs, s.notify, s.log, tabMutation{
		Name: "delete tab",
		Keys: tabsKey,
		Apply: func(_ TabsKey, cur []domain.Tab) []domain.Tab {
			return slices.DeleteFunc(cur, func(t domain.Tab) bool { return t.ID == tabID })
		},
		Commit: func(ctx context.Context) (*domain.Tab, error) {
			return nil, s.api.DeleteTab(ctx, tabID)
		},
	})
	if err != nil {
		return err
	}

	s.lists.Invalidate(ListsKey{TabID: tabID})
	s.todos.InvalidateMatching(func(k domain.QueryKey) bool {
		return k.HasPrefix(domain.ListTodosTag, tabID)
	})
	return nil
}

// CreateList appends a placeholder list to a tab and swaps in the server's list.
func (s *Syncer) CreateList(ctx context.Context, tabID, name string) (*domain.TodoList, error) {
	tempID := s.tempID()

	return Run(ctx, s.lists, s.notify, s.log, listMutation{
		Name: "create list",
		Keys: []ListsKey{{TabID: tabID}},
		Apply: func(_ ListsKey, cur []domain.TodoList) []domain.TodoList {
			return append(cur, domain.TodoList{ID: tempID, TabID: tabID, Name: name, SortOrder: domain.NextListOrder(cur)})
		},
		Commit: func(ctx context.Context) (*domain.TodoList, error) {
			return s.api.CreateList(ctx, tabID, name)
		},
		Accept: func(_ ListsKey, cur []domain.TodoList, created *domain.TodoList) []domain.TodoList {
			return replaceList(cur, tempID, *created)
		},
	})
}

// RenameList renames a list.
func (s *Syncer) RenameList(ctx context.Context, tabID, listID, name string) (*domain.TodoList, error) {
	return Run(ctx, s.lists, s.notify, s.log, listMutation{
		Name: "rename list",
		Keys: []ListsKey{{TabID: tabID}},
		Apply: func(_ ListsKey, cur []domain.TodoList) []domain.TodoList {
			if i := slices.IndexFunc(cur, func(l domain.TodoList) bool { return l.ID == listID }); i >= 0 {
				cur[i].Name = name
			}
			return cur
		},
		Commit: func(ctx context.Context) (*domain.TodoList, error) {
			return s.api.RenameList(ctx, tabID, listID, name)
		},
		Accept: func(_ ListsKey, cur []domain.TodoList, renamed *domain.TodoList) []domain.TodoList {
			return replaceList(cur, listID, *renamed)
		},
	})
}

// DeleteList removes a list. On success its todo collection is refetched.
func (s *Syncer) DeleteList(ctx context.Context, tabID, listID string) error {
	_, err := Run(ctx, s.lists, s.notify, s.log, listMutation{
		Name: "delete list",
		Keys: []ListsKey{{TabID: tabID}},
		Apply: func(_ ListsKey, cur []domain.TodoList) []domain.TodoList {
			return slices.DeleteFunc(cur, func(l domain.TodoList) bool { return l.ID == listID })
		},
		Commit: func(ctx context.Context) (*domain.TodoList, error) {
			return nil, s.api.DeleteList(ctx, tabID, listID)
		},
	})
	if err != nil {
		return err
	}

	s.todos.Invalidate(domain.ListSource(tabID, listID).QueryKey())
	return nil
}

// ReorderLists puts the lists of a tab into the order of listIDs and
// rewrites sortOrder to the new index.
func (s *Syncer) ReorderLists(ctx context.Context, tabID string, listIDs []string) error {
	_, err := Run(ctx, s.lists, s.notify, s.log, listMutation{
		Name: "reorder lists",
		Keys: []ListsKey{{TabID: tabID}},
		Apply: func(_ ListsKey, cur []domain.TodoList) []domain.TodoList {
			return orderLists(cur, listIDs)
		},
		Commit: func(ctx context.Context) (*domain.TodoList, error) {
			return nil, s.api.ReorderLists(ctx, tabID, listIDs)
		},
	})
	return err
}

func replaceTab(tabs []domain.Tab, id string, tab domain.Tab) []domain.Tab {
	if i := slices.IndexFunc(tabs, func(t domain.Tab) bool { return t.ID == id }); i >= 0 {
		tabs[i] = tab
	}
	return tabs
}

func replaceList(lists []domain.TodoList, id string, list domain.TodoList) []domain.TodoList {
	if i := slices.IndexFunc(lists, func(l domain.TodoList) bool { return l.ID == id }); i >= 0 {
		lists[i] = list
	}
	return lists
}

func orderLists(lists []domain.TodoList, ids []string) []domain.TodoList {
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, dup := pos[id]; !dup {
			pos[id] = i
		}
	}

	out := slices.Clone(lists)
	slices.SortStableFunc(out, func(a, b domain.TodoList) int {
		pa, aok := pos[a.ID]
		pb, bok := pos[b.ID]
		switch {
		case aok && bok:
			return pa - pb
		case aok:
			return -1
		case bok:
			return 1
		default:
			return a.SortOrder - b.SortOrder
		}
	})
	for i := range out {
		out[i].SortOrder = i
	}
	return out
}
