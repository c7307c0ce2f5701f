// Package dnd turns drag gestures over todo containers into sync core
// operations: a drop inside one container reorders it, a drop into another
// container moves the todo and then places it at the drop index.
package dnd

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/kwokm/mk-todo/internal/domain"
)

type syncCore interface {
	Cached(src domain.Source) ([]domain.Todo, bool)
	MoveTodo(ctx context.Context, id string, from, to domain.Source) error
	ReorderTodos(ctx context.Context, src domain.Source, ids []string) error
}

// Outcome is what a finished drag did.
type Outcome uint8

const (
	// None means no mutation was issued.
	None Outcome = iota
	Reordered
	Moved
)

func (o Outcome) String() string {
	switch o {
	case Reordered:
		return "reordered"
	case Moved:
		return "moved"
	default:
		return "none"
	}
}

// State is the transient state of the drag in progress.
type State struct {
	ActiveID string
	Active   *domain.Todo
	From     *domain.Source
	Over     *domain.Source
}

// Dragging reports whether a drag is in progress.
func (s State) Dragging() bool { return s.ActiveID != "" }

// Coordinator owns the registry of mounted containers and the drag state.
// Containers are sources whose todos are read from the sync core cache.
type Coordinator struct {
	core syncCore
	log  *slog.Logger

	mu         sync.Mutex
	containers []domain.Source
	state      State
}

// NewCoordinator creates a Coordinator driving sc.
func NewCoordinator(sc syncCore, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		core: sc,
		log:  logger.With("component", "dnd"),
	}
}

// Register makes src a drop container. Registering twice is a no-op.
func (c *Coordinator) Register(src domain.Source) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !slices.Contains(c.containers, src) {
		c.containers = append(c.containers, src)
	}
}

// Unregister removes src. A drag that started in src ends as a no-op.
func (c *Coordinator) Unregister(src domain.Source) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.containers = slices.DeleteFunc(c.containers, func(s domain.Source) bool { return s == src })
}

// Containers returns the registered sources in registration order.
func (c *Coordinator) Containers() []domain.Source {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.containers)
}

// State returns the current drag state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// DragStart begins dragging todo id. It reports false, and leaves no drag
// state, when no registered container holds id.
func (c *Coordinator) DragStart(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	src, todos, ok := c.containerOf(id)
	if !ok {
		c.state = State{}
		return false
	}

	t := todos[domain.IndexOfTodo(todos, id)]
	c.state = State{ActiveID: id, Active: &t, From: &src, Over: &src}
	return true
}

// DragOver records the container under the pointer. overID is either a
// todo id or a container's source string; "" means nothing is under it.
func (c *Coordinator) DragOver(overID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Dragging() {
		return
	}
	if overID == "" {
		c.state.Over = nil
		return
	}
	if src, ok := c.resolve(overID); ok {
		c.state.Over = &src
	}
}

// DragCancel clears the drag state without touching the sync core.
func (c *Coordinator) DragCancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = State{}
}

// DragEnd drops the dragged todo onto overID (a todo id, a container's
// source string, or "" for no target) and issues the resulting sync core
// operation. The drag state is cleared in every case.
func (c *Coordinator) DragEnd(ctx context.Context, overID string) (Outcome, error) {
	c.mu.Lock()
	state := c.state
	c.state = State{}

	if !state.Dragging() || overID == "" {
		c.mu.Unlock()
		return None, nil
	}
	from := *state.From
	to, ok := c.resolve(overID)
	if !ok || !slices.Contains(c.containers, from) {
		c.mu.Unlock()
		c.log.DebugContext(ctx, "drop without target", slog.String("todo_id", state.ActiveID))
		return None, nil
	}
	c.mu.Unlock()

	if from == to {
		return c.reorder(ctx, state.ActiveID, overID, to)
	}
	return c.move(ctx, state.ActiveID, overID, from, to)
}

func (c *Coordinator) reorder(ctx context.Context, id, overID string, src domain.Source) (Outcome, error) {
	if id == overID {
		return None, nil
	}

	todos, _ := c.core.Cached(src)
	oldIndex := domain.IndexOfTodo(todos, id)
	if oldIndex < 0 {
		return None, nil
	}
	newIndex := len(todos) - 1
	if overID != src.String() {
		newIndex = domain.IndexOfTodo(todos, overID)
	}
	if newIndex < 0 || newIndex == oldIndex {
		return None, nil
	}

	ids := ArrayMove(domain.TodoIDs(todos), oldIndex, newIndex)
	if err := c.core.ReorderTodos(ctx, src, ids); err != nil {
		return None, err
	}
	return Reordered, nil
}

func (c *Coordinator) move(ctx context.Context, id, overID string, from, to domain.Source) (Outcome, error) {
	fromTodos, _ := c.core.Cached(from)
	if domain.IndexOfTodo(fromTodos, id) < 0 {
		return None, nil
	}

	dest, _ := c.core.Cached(to)
	insert := len(dest)
	if overID != to.String() {
		if i := domain.IndexOfTodo(dest, overID); i >= 0 {
			insert = i
		}
	}

	if err := c.core.MoveTodo(ctx, id, from, to); err != nil {
		return None, err
	}

	// The move appended id; place it only when the drop was above the end.
	if insert < len(dest) {
		ids := slices.Insert(domain.TodoIDs(dest), insert, id)
		if err := c.core.ReorderTodos(ctx, to, ids); err != nil {
			return Moved, err
		}
	}

	c.log.DebugContext(ctx, "todo moved",
		slog.String("todo_id", id),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Int("index", insert),
	)
	return Moved, nil
}

// containerOf finds the registered container holding todo id. Callers hold mu.
func (c *Coordinator) containerOf(id string) (domain.Source, []domain.Todo, bool) {
	for _, src := range c.containers {
		todos, ok := c.core.Cached(src)
		if ok && domain.IndexOfTodo(todos, id) >= 0 {
			return src, todos, true
		}
	}
	return domain.Source{}, nil, false
}

// resolve maps a drop target id to its container: the container holding
// the todo, or the container whose source string it is. Callers hold mu.
func (c *Coordinator) resolve(overID string) (domain.Source, bool) {
	if src, _, ok := c.containerOf(overID); ok {
		return src, true
	}
	for _, src := range c.containers {
		if src.String() == overID {
			return src, true
		}
	}
	return domain.Source{}, false
}

// ArrayMove returns a copy of s with the element at from removed and
// reinserted at to.
func ArrayMove[T any](s []T, from, to int) []T {
	out := slices.Clone(s)
	if from == to || from < 0 || to < 0 || from >= len(s) || to >= len(s) {
		return out
	}
	v := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, v)
}
