package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/kwokm/mk-todo/internal/domain"
)

// Update applies a partial update and refreshes updatedAt. Membership is
// not touched.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Todo, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.contentMu.Lock()
	defer s.contentMu.Unlock()

	key := domain.TodoKey(input.ID)
	fields, err := s.store.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get todo: %w", err)
	}
	existing, ok := domain.TodoFromFields(fields)
	if !ok {
		return nil, domain.NotFoundError("todo", input.ID)
	}

	updated := input.Params().Apply(existing)
	updated.UpdatedAt = s.now()

	changes := map[string]string{"updatedAt": domain.FormatTimestamp(updated.UpdatedAt)}
	if input.Text != nil {
		changes["text"] = updated.Text
	}
	if input.Completed != nil {
		changes["completed"] = strconv.FormatBool(updated.Completed)
	}

	if err := s.store.HSet(ctx, key, changes); err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}

	s.log.InfoContext(ctx, "todo updated",
		slog.String("todo_id", input.ID),
		slog.Bool("completed", updated.Completed),
	)

	return &updated, nil
}
