package syncer

import (
	"context"
	"log/slog"

	"github.com/kwokm/mk-todo/internal/client/querycache"
)

// Mutation describes one optimistic change against a cache.
//
// Run cancels in-flight fetches of Keys, snapshots them together, installs
// Apply for each cached key and then calls Commit. Keys that hold nothing
// stay empty so the next read fetches the server's view. On error every
// snapshot is restored; on success Accept merges the server result and Keys
// plus Invalidate are refetched in the background.
type Mutation[K querycache.Key, V, R any] struct {
	Name string
	Keys []K

	// Apply returns the optimistic value of a cached key.
	Apply  func(key K, current V) V
	Commit func(ctx context.Context) (R, error)
	// Accept, if set, merges the confirmed result into each key.
	Accept func(key K, current V, result R) V

	Invalidate []K
	// Success, if set, returns the message to show; "" shows nothing.
	Success func(result R) string
}

// Run executes m against c.
func Run[K querycache.Key, V, R any](ctx context.Context, c *querycache.Cache[K, V], n Notifier, log *slog.Logger, m Mutation[K, V, R]) (R, error) {
	c.Cancel(m.Keys...)
	snap := c.Snapshot(m.Keys...)
	keys := snap.Keys()

	if m.Apply != nil {
		for _, k := range keys {
			c.UpdateIfPresent(k, func(cur V) V { return m.Apply(k, cur) })
		}
	}

	res, err := m.Commit(ctx)
	if err != nil {
		c.Restore(snap)
		log.WarnContext(ctx, "mutation rolled back",
			slog.String("mutation", m.Name),
			slog.Int("keys", len(keys)),
			slog.String("error", err.Error()),
		)
		n.Failure(ctx, m.Name, err)
		var zero R
		return zero, err
	}

	if m.Accept != nil {
		for _, k := range keys {
			c.UpdateIfPresent(k, func(cur V) V { return m.Accept(k, cur, res) })
		}
	}

	c.Invalidate(append(keys, m.Invalidate...)...)

	if m.Success != nil {
		if msg := m.Success(res); msg != "" {
			n.Success(ctx, msg)
		}
	}
	return res, nil
}
