package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kwokm/mk-todo/internal/domain"
)

// Reorder rewrites the scores of src so that its members follow input.IDs.
// Ids that are not members are ignored; members missing from input.IDs keep
// their relative order after the given ones. The result is dense (0..n-1).
func (s *Service) Reorder(ctx context.Context, input ReorderInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	current, err := s.members(ctx, input.Source)
	if err != nil {
		return err
	}

	order := mergeOrder(current, input.IDs)
	if len(order) == 0 {
		return nil
	}

	key := input.Source.String()
	if err := s.store.ZAdd(ctx, key, ranked(order)...); err != nil {
		return fmt.Errorf("reorder %s: %w", key, err)
	}

	if ignored := len(input.IDs) - countPresent(current, input.IDs); ignored > 0 {
		s.log.DebugContext(ctx, "reorder ignored unknown ids",
			slog.String("source", key),
			slog.Int("ignored", ignored),
		)
	}

	s.log.InfoContext(ctx, "todos reordered",
		slog.String("source", key),
		slog.Int("count", len(order)),
	)

	return nil
}

// mergeOrder returns wanted filtered to members of current, followed by the
// members of current that wanted does not mention.
func mergeOrder(current, wanted []string) []string {
	member := make(map[string]bool, len(current))
	for _, id := range current {
		member[id] = true
	}

	order := make([]string, 0, len(current))
	placed := make(map[string]bool, len(current))
	for _, id := range wanted {
		if member[id] && !placed[id] {
			order = append(order, id)
			placed[id] = true
		}
	}
	for _, id := range current {
		if !placed[id] {
			order = append(order, id)
		}
	}
	return order
}

func countPresent(current, wanted []string) int {
	member := make(map[string]bool, len(current))
	for _, id := range current {
		member[id] = true
	}
	n := 0
	for _, id := range wanted {
		if member[id] {
			n++
		}
	}
	return n
}
