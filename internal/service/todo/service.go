// Package todo implements the ordering engine for todos: content lives in a
// hash per todo, membership and order in one ordered set per source.
package todo

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kwokm/mk-todo/internal/domain"
	"github.com/kwokm/mk-todo/internal/kv"
)

// Service provides todo operations over a kv.Store.
type Service struct {
	store kv.Store
	log   *slog.Logger

	now   func() time.Time
	newID func() (string, error)

	// contentMu orders Update against Delete within this process so an
	// update never recreates the hash of a todo deleted after its read.
	contentMu sync.Mutex
}

// NewService creates a new Todo service.
func NewService(log *slog.Logger, store kv.Store) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "todo"),
		now:   domain.Now,
		newID: domain.NewID,
	}
}

// nextScore returns a score that sorts after every current member of key.
func (s *Service) nextScore(ctx context.Context, key string) (float64, error) {
	last, err := s.store.ZRangeWithScores(ctx, key, -1, -1)
	if err != nil {
		return 0, fmt.Errorf("read max score of %s: %w", key, err)
	}
	if len(last) == 0 {
		return 0, nil
	}
	return last[0].Score + 1, nil
}

// members returns the ordered ids of src.
func (s *Service) members(ctx context.Context, src domain.Source) ([]string, error) {
	ids, err := s.store.ZRange(ctx, src.String(), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}
	return ids, nil
}

// ranked returns the ids as ordered-set members scored by position.
func ranked(ids []string) []kv.Z {
	members := make([]kv.Z, len(ids))
	for i, id := range ids {
		members[i] = kv.Z{Score: float64(i), Member: id}
	}
	return members
}
