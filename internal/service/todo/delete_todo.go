package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kwokm/mk-todo/internal/domain"
)

// Delete removes the todo from its source and deletes its content.
// Deleting an absent todo is a no-op.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	s.contentMu.Lock()
	defer s.contentMu.Unlock()

	_, err := s.store.Pipeline().
		ZRem(input.Source.String(), input.ID).
		Del(domain.TodoKey(input.ID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	s.log.InfoContext(ctx, "todo deleted",
		slog.String("todo_id", input.ID),
		slog.String("source", input.Source.String()),
	)

	return nil
}
