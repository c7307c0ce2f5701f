package todo_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwokm/mk-todo/internal/adapter/memory"
	"github.com/kwokm/mk-todo/internal/adapter/sqlite"
	"github.com/kwokm/mk-todo/internal/domain"
	"github.com/kwokm/mk-todo/internal/kv"
	"github.com/kwokm/mk-todo/internal/service/todo"
)

// exerciseBackend drives every operation over store and checks the
// resulting orders, so each backend is held to the same semantics.
func exerciseBackend(t *testing.T, store kv.Store) {
	t.Helper()

	ctx := context.Background()
	svc := todo.NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), store)
	day := domain.DaySource("2025-01-15")
	list := domain.ListSource("underlying", "chores")

	ids := func(src domain.Source) []string {
		t.Helper()
		todos, err := svc.List(ctx, src)
		require.NoError(t, err)
		return domain.TodoIDs(todos)
	}

	var created []domain.Todo
	for _, text := range []string{"a", "b", "c"} {
		td, err := svc.Create(ctx, todo.CreateInput{Source: day, Text: text})
		require.NoError(t, err)
		created = append(created, *td)
	}
	a, b, c := created[0].ID, created[1].ID, created[2].ID
	assert.Equal(t, []string{a, b, c}, ids(day))

	require.NoError(t, svc.Move(ctx, todo.MoveInput{ID: b, From: day, To: list}))
	assert.Equal(t, []string{a, c}, ids(day))
	assert.Equal(t, []string{b}, ids(list))

	require.NoError(t, svc.Reorder(ctx, todo.ReorderInput{Source: day, IDs: []string{c, a}}))
	assert.Equal(t, []string{c, a}, ids(day))

	done := true
	updated, err := svc.Update(ctx, todo.UpdateInput{ID: a, Completed: &done})
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	require.NoError(t, svc.Delete(ctx, todo.DeleteInput{ID: c, Source: day}))
	require.NoError(t, svc.Delete(ctx, todo.DeleteInput{ID: c, Source: day}))

	todos, err := svc.List(ctx, day)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, a, todos[0].ID)
	assert.True(t, todos[0].Completed)

	_, err = svc.Update(ctx, todo.UpdateInput{ID: c, Completed: &done})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_Memory(t *testing.T) {
	t.Parallel()
	exerciseBackend(t, memory.NewStore())
}

func TestService_SQLite(t *testing.T) {
	t.Parallel()

	st, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "todo.db"), true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	exerciseBackend(t, kv.NewClient(st))
}
