package todo

import (
	"context"
	"fmt"

	"github.com/kwokm/mk-todo/internal/domain"
)

// List returns the todos of src in order. Members whose content record is
// missing are skipped.
func (s *Service) List(ctx context.Context, src domain.Source) ([]domain.Todo, error) {
	if !src.Valid() {
		return nil, domain.NewValidationError("source", "invalid source")
	}

	ids, err := s.members(ctx, src)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Todo{}, nil
	}

	p := s.store.Pipeline()
	for _, id := range ids {
		p.HGetAll(domain.TodoKey(id))
	}
	results, err := p.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("read todos of %s: %w", src, err)
	}

	todos := make([]domain.Todo, 0, len(results))
	for _, res := range results {
		if t, ok := domain.TodoFromFields(res.Fields); ok {
			todos = append(todos, t)
		}
	}
	return todos, nil
}
