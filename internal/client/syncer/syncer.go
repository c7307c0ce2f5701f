// Package syncer is the optimistic sync core: cached todo, tab and list
// collections that change immediately on user intent and are reconciled
// with the server afterwards.
package syncer

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/kwokm/mk-todo/internal/client/querycache"
	"github.com/kwokm/mk-todo/internal/domain"
)

// Transport is the server API the sync core commits to.
type Transport interface {
	ListTodos(ctx context.Context, src domain.Source) ([]domain.Todo, error)
	CreateTodo(ctx context.Context, src domain.Source, text string) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, id string, params domain.TodoUpdateParams) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, id string, src domain.Source) error
	MoveTodo(ctx context.Context, id string, from, to domain.Source) error
	ReorderTodos(ctx context.Context, src domain.Source, ids []string) error

	ListTabs(ctx context.Context) ([]domain.Tab, error)
	CreateTab(ctx context.Context, name string) (*domain.Tab, error)
	RenameTab(ctx context.Context, tabID, name string) (*domain.Tab, error)
	DeleteTab(ctx context.Context, tabID string) error
	ListLists(ctx context.Context, tabID string) ([]domain.TodoList, error)
	CreateList(ctx context.Context, tabID, name string) (*domain.TodoList, error)
	RenameList(ctx context.Context, tabID, listID, name string) (*domain.TodoList, error)
	DeleteList(ctx context.Context, tabID, listID string) error
	ReorderLists(ctx context.Context, tabID string, listIDs []string) error
}

// TabsKey is the cache key of the tab collection.
type TabsKey struct{}

func (TabsKey) String() string { return "tabs" }

// ListsKey is the cache key of the lists of one tab.
type ListsKey struct{ TabID string }

func (k ListsKey) String() string { return "lists/" + k.TabID }

// TempIDPrefix marks ids of optimistic records not yet confirmed by the server.
const TempIDPrefix = "temp-"

// Syncer owns the client caches.
type Syncer struct {
	api    Transport
	notify Notifier
	log    *slog.Logger

	todos *querycache.Cache[domain.QueryKey, []domain.Todo]
	tabs  *querycache.Cache[TabsKey, []domain.Tab]
	lists *querycache.Cache[ListsKey, []domain.TodoList]

	now    func() time.Time
	tempID func() string

	// deletes joins concurrent deletes of one todo id.
	deletes singleflight.Group
}

// New creates a Syncer over api. notify receives user-facing outcomes.
func New(api Transport, notify Notifier, logger *slog.Logger) *Syncer {
	log := logger.With("component", "syncer")

	var seq atomic.Uint64
	return &Syncer{
		api:    api,
		notify: notify,
		log:    log,
		todos:  querycache.New[domain.QueryKey]("todos", domain.CloneTodos, log),
		tabs:   querycache.New[TabsKey]("tabs", slices.Clone[[]domain.Tab], log),
		lists:  querycache.New[ListsKey]("lists", slices.Clone[[]domain.TodoList], log),
		now:    domain.Now,
		tempID: func() string { return TempIDPrefix + strconv.FormatUint(seq.Add(1), 10) },
	}
}

// Wait blocks until background refetches triggered by mutations finish.
func (s *Syncer) Wait() {
	s.todos.Wait()
	s.tabs.Wait()
	s.lists.Wait()
}

// Close stops background refetches.
func (s *Syncer) Close() {
	s.todos.Close()
	s.tabs.Close()
	s.lists.Close()
}
