// Package memory implements kv.Backend in process memory. A batch runs
// under one lock, so pipelines are atomic here.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"strings"
	"sync"

	"github.com/kwokm/mk-todo/internal/kv"
)

// Backend is an in-memory kv.Backend safe for concurrent use.
type Backend struct {
	mu      sync.Mutex
	strings map[string]string
	hashes  map[string]map[string]string
	zsets   map[string]map[string]float64

	// failOn, when set, makes Exec fail before applying any command.
	failOn func(cmd kv.Cmd) error
}

var _ kv.Backend = (*Backend)(nil)

// New returns an empty backend.
func New() *Backend {
	return &Backend{
		strings: make(map[string]string),
		hashes:  make(map[string]map[string]string),
		zsets:   make(map[string]map[string]float64),
	}
}

// NewStore returns a kv.Client over a fresh in-memory backend.
func NewStore() *kv.Client {
	return kv.NewClient(New())
}

// FailWhen installs a hook consulted for every command of a batch; a
// non-nil error aborts the whole batch. Pass nil to clear it.
func (b *Backend) FailWhen(fn func(cmd kv.Cmd) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failOn = fn
}

func (b *Backend) Exec(ctx context.Context, cmds []kv.Cmd) ([]kv.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failOn != nil {
		for _, cmd := range cmds {
			if err := b.failOn(cmd); err != nil {
				return nil, err
			}
		}
	}

	results := make([]kv.Result, len(cmds))
	for i, cmd := range cmds {
		results[i] = b.apply(cmd)
	}
	return results, nil
}

func (b *Backend) apply(cmd kv.Cmd) kv.Result {
	switch cmd.Op {
	case kv.OpGet:
		v, ok := b.strings[cmd.Key]
		return kv.Result{Value: v, Found: ok}

	case kv.OpSet:
		b.strings[cmd.Key] = cmd.Value
		return kv.Result{}

	case kv.OpDel:
		delete(b.strings, cmd.Key)
		delete(b.hashes, cmd.Key)
		delete(b.zsets, cmd.Key)
		return kv.Result{}

	case kv.OpZRange:
		set := b.zsets[cmd.Key]
		members := make([]kv.Z, 0, len(set))
		for m, s := range set {
			members = append(members, kv.Z{Score: s, Member: m})
		}
		kv.SortZ(members)
		lo, hi, ok := kv.RangeBounds(len(members), cmd.Start, cmd.Stop)
		if !ok {
			return kv.Result{Members: []kv.Z{}}
		}
		return kv.Result{Members: members[lo:hi]}

	case kv.OpZAdd:
		set := b.zsets[cmd.Key]
		if set == nil {
			set = make(map[string]float64)
			b.zsets[cmd.Key] = set
		}
		for _, z := range cmd.Members {
			set[z.Member] = z.Score
		}
		return kv.Result{}

	case kv.OpZRem:
		set := b.zsets[cmd.Key]
		for _, m := range cmd.Names {
			delete(set, m)
		}
		if len(set) == 0 {
			delete(b.zsets, cmd.Key)
		}
		return kv.Result{}

	case kv.OpHSet:
		h := b.hashes[cmd.Key]
		if h == nil {
			h = make(map[string]string)
			b.hashes[cmd.Key] = h
		}
		maps.Copy(h, cmd.Fields)
		return kv.Result{}

	case kv.OpHGetAll:
		h := b.hashes[cmd.Key]
		if len(h) == 0 {
			return kv.Result{}
		}
		return kv.Result{Fields: maps.Clone(h), Found: true}

	default:
		return kv.Result{Err: fmt.Errorf("%w: %s", kv.ErrUnknownOp, cmd.Op)}
	}
}

func (b *Backend) Keys(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	seen := make(map[string]struct{})
	for k := range b.strings {
		seen[k] = struct{}{}
	}
	for k := range b.hashes {
		seen[k] = struct{}{}
	}
	for k := range b.zsets {
		seen[k] = struct{}{}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (b *Backend) Ping(ctx context.Context) error {
	return ctx.Err()
}
