package syncer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kwokm/mk-todo/internal/domain"
)

// prefetchLimit bounds concurrent source fetches in Prefetch.
const prefetchLimit = 4

type todoMutation = Mutation[domain.QueryKey, []domain.Todo, *domain.Todo]

func validSource(src domain.Source) error {
	if !src.Valid() {
		return domain.NewValidationError("source", "invalid source")
	}
	return nil
}

// Todos returns the todos of src, fetching them when they are not cached.
func (s *Syncer) Todos(ctx context.Context, src domain.Source) ([]domain.Todo, error) {
	if err := validSource(src); err != nil {
		return nil, err
	}
	return s.todos.Fetch(ctx, src.QueryKey(), func(ctx context.Context) ([]domain.Todo, error) {
		return s.api.ListTodos(ctx, src)
	})
}

// Cached returns the cached todos of src without fetching.
func (s *Syncer) Cached(src domain.Source) ([]domain.Todo, bool) {
	return s.todos.Get(src.QueryKey())
}

// Prefetch loads several sources concurrently, e.g. a calendar window.
func (s *Syncer) Prefetch(ctx context.Context, srcs ...domain.Source) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(prefetchLimit)
	for _, src := range srcs {
		g.Go(func() error {
			_, err := s.Todos(gctx, src)
			return err
		})
	}
	return g.Wait()
}

// CreateTodo appends a placeholder with a temporary id to src and swaps in
// the server's todo once created.
func (s *Syncer) CreateTodo(ctx context.Context, src domain.Source, text string) (*domain.Todo, error) {
	if err := validSource(src); err != nil {
		return nil, err
	}

	now := s.now()
	temp := domain.Todo{ID: s.tempID(), Text: text, CreatedAt: now, UpdatedAt: now}

	return Run(ctx, s.todos, s.notify, s.log, todoMutation{
		Name: "create todo",
		Keys: []domain.QueryKey{src.QueryKey()},
		Apply: func(_ domain.QueryKey, cur []domain.Todo) []domain.Todo {
			return append(cur, temp)
		},
		Commit: func(ctx context.Context) (*domain.Todo, error) {
			return s.api.CreateTodo(ctx, src, text)
		},
		Accept: func(_ domain.QueryKey, cur []domain.Todo, created *domain.Todo) []domain.Todo {
			if i := domain.IndexOfTodo(cur, temp.ID); i >= 0 {
				cur[i] = *created
			}
			return cur
		},
	})
}

// UpdateTodo applies params to the todo id cached under src.
func (s *Syncer) UpdateTodo(ctx context.Context, src domain.Source, id string, params domain.TodoUpdateParams) (*domain.Todo, error) {
	if err := validSource(src); err != nil {
		return nil, err
	}

	now := s.now()
	return Run(ctx, s.todos, s.notify, s.log, todoMutation{
		Name: "update todo",
		Keys: []domain.QueryKey{src.QueryKey()},
		Apply: func(_ domain.QueryKey, cur []domain.Todo) []domain.Todo {
			if i := domain.IndexOfTodo(cur, id); i >= 0 {
				cur[i] = params.Apply(cur[i])
				cur[i].UpdatedAt = now
			}
			return cur
		},
		Commit: func(ctx context.Context) (*domain.Todo, error) {
			return s.api.UpdateTodo(ctx, id, params)
		},
		Accept: func(_ domain.QueryKey, cur []domain.Todo, updated *domain.Todo) []domain.Todo {
			if i := domain.IndexOfTodo(cur, id); i >= 0 {
				cur[i] = *updated
			}
			return cur
		},
	})
}

// DeleteTodo removes id from src. A delete of id issued while another is in
// flight joins it and returns its result.
func (s *Syncer) DeleteTodo(ctx context.Context, src domain.Source, id string) error {
	if err := validSource(src); err != nil {
		return err
	}

	ch := s.deletes.DoChan(id, func() (any, error) {
		return nil, s.deleteTodo(ctx, src, id)
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Syncer) deleteTodo(ctx context.Context, src domain.Source, id string) error {
	cached, _ := s.todos.Get(src.QueryKey())
	wasCached := domain.IndexOfTodo(cached, id) >= 0

	_, err := Run(ctx, s.todos, s.notify, s.log, todoMutation{
		Name: "delete todo",
		Keys: []domain.QueryKey{src.QueryKey()},
		Apply: func(_ domain.QueryKey, cur []domain.Todo) []domain.Todo {
			return removeTodo(cur, id)
		},
		Commit: func(ctx context.Context) (*domain.Todo, error) {
			return nil, s.api.DeleteTodo(ctx, id, src)
		},
		Success: func(*domain.Todo) string {
			if wasCached {
				return "Todo deleted"
			}
			return ""
		},
	})
	return err
}

// ReorderTodos puts src into the order of ids. Cached todos missing from
// ids keep their relative order after the given ones.
func (s *Syncer) ReorderTodos(ctx context.Context, src domain.Source, ids []string) error {
	if err := validSource(src); err != nil {
		return err
	}

	_, err := Run(ctx, s.todos, s.notify, s.log, todoMutation{
		Name: "reorder todos",
		Keys: []domain.QueryKey{src.QueryKey()},
		Apply: func(_ domain.QueryKey, cur []domain.Todo) []domain.Todo {
			return orderTodos(cur, ids)
		},
		Commit: func(ctx context.Context) (*domain.Todo, error) {
			return nil, s.api.ReorderTodos(ctx, src, ids)
		},
	})
	return err
}

// MoveTodo takes id out of from and appends it to to. Both caches are
// snapshotted before either changes and are restored together on failure.
// Final placement inside to is left to a follow-up ReorderTodos.
func (s *Syncer) MoveTodo(ctx context.Context, id string, from, to domain.Source) error {
	if err := validSource(from); err != nil {
		return err
	}
	if err := validSource(to); err != nil {
		return err
	}

	fromKey, toKey := from.QueryKey(), to.QueryKey()
	var moved *domain.Todo

	_, err := Run(ctx, s.todos, s.notify, s.log, todoMutation{
		Name: "move todo",
		Keys: []domain.QueryKey{fromKey, toKey},
		Apply: func(k domain.QueryKey, cur []domain.Todo) []domain.Todo {
			if k == fromKey {
				if i := domain.IndexOfTodo(cur, id); i >= 0 {
					t := cur[i]
					moved = &t
					cur = removeTodo(cur, id)
				}
			}
			if k == toKey && moved != nil {
				cur = append(cur, *moved)
			}
			return cur
		},
		Commit: func(ctx context.Context) (*domain.Todo, error) {
			return nil, s.api.MoveTodo(ctx, id, from, to)
		},
		Success: func(*domain.Todo) string {
			return "Moved to " + sourceLabel(to)
		},
	})
	return err
}

func removeTodo(todos []domain.Todo, id string) []domain.Todo {
	out := make([]domain.Todo, 0, len(todos))
	for _, t := range todos {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// orderTodos arranges todos by ids. Unknown ids are skipped; todos not
// named keep their relative order at the end.
func orderTodos(todos []domain.Todo, ids []string) []domain.Todo {
	byID := make(map[string]domain.Todo, len(todos))
	for _, t := range todos {
		byID[t.ID] = t
	}

	out := make([]domain.Todo, 0, len(todos))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, t)
			delete(byID, id)
		}
	}
	for _, t := range todos {
		if _, left := byID[t.ID]; left {
			out = append(out, t)
		}
	}
	return out
}

func sourceLabel(src domain.Source) string {
	if src.IsDay() {
		if t, err := domain.ParseDateKey(src.Date); err == nil {
			return domain.DateLabel(t)
		}
	}
	if src.IsList() {
		return src.ListID
	}
	return src.String()
}
