package todo

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/kwokm/mk-todo/internal/domain"
	"github.com/kwokm/mk-todo/internal/kv"
)

// Move transfers a todo from one source to another in a single pipeline.
// Without a position the todo is appended; with one, the destination is
// rewritten to 0..n-1 with the todo at that index. A todo that is not a
// member of From is not found.
func (s *Service) Move(ctx context.Context, input MoveInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	current, err := s.members(ctx, input.From)
	if err != nil {
		return err
	}
	if !slices.Contains(current, input.ID) {
		return fmt.Errorf("todo %s in %s: %w", input.ID, input.From, domain.ErrNotFound)
	}

	from, to := input.From.String(), input.To.String()
	p := s.store.Pipeline().ZRem(from, input.ID)

	if input.Position == nil {
		var score float64
		if from == to {
			// The todo itself may hold the max score.
			score, err = s.nextScoreExcluding(ctx, to, input.ID)
		} else {
			score, err = s.nextScore(ctx, to)
		}
		if err != nil {
			return err
		}
		p.ZAdd(to, kv.Z{Score: score, Member: input.ID})
	} else {
		ids, err := s.members(ctx, input.To)
		if err != nil {
			return err
		}
		ids = slices.DeleteFunc(ids, func(id string) bool { return id == input.ID })
		pos := min(*input.Position, len(ids))
		ids = slices.Insert(ids, pos, input.ID)
		p.ZAdd(to, ranked(ids)...)
	}

	if _, err := p.Exec(ctx); err != nil {
		return fmt.Errorf("move todo: %w", err)
	}

	s.log.InfoContext(ctx, "todo moved",
		slog.String("todo_id", input.ID),
		slog.String("from", from),
		slog.String("to", to),
	)

	return nil
}

func (s *Service) nextScoreExcluding(ctx context.Context, key, id string) (float64, error) {
	all, err := s.store.ZRangeWithScores(ctx, key, 0, -1)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", key, err)
	}
	var score float64
	for _, z := range all {
		if z.Member != id && z.Score+1 > score {
			score = z.Score + 1
		}
	}
	return score, nil
}
