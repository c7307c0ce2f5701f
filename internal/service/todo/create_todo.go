package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kwokm/mk-todo/internal/domain"
	"github.com/kwokm/mk-todo/internal/kv"
)

// Create stores a new todo and appends it to the end of its source.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Todo, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate id: %w", err)
	}

	key := input.Source.String()
	score, err := s.nextScore(ctx, key)
	if err != nil {
		return nil, err
	}

	now := s.now()
	todo := domain.Todo{
		ID:        id,
		Text:      input.Text,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = s.store.Pipeline().
		HSet(domain.TodoKey(id), todo.Fields()).
		ZAdd(key, kv.Z{Score: score, Member: id}).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	s.log.InfoContext(ctx, "todo created",
		slog.String("todo_id", id),
		slog.String("source", key),
	)

	return &todo, nil
}
