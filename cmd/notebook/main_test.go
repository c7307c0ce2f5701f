package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwokm/mk-todo/internal/adapter/memory"
	"github.com/kwokm/mk-todo/internal/app"
	"github.com/kwokm/mk-todo/internal/client/api"
	"github.com/kwokm/mk-todo/internal/config"
	"github.com/kwokm/mk-todo/internal/domain"
)

type harness struct {
	t   *testing.T
	cfg config.ClientConfig
	api *api.Client
	log *slog.Logger
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler, limiter := app.NewHandler(&config.Config{
		Storage: config.StorageConfig{Driver: config.DriverMemory},
		CORS:    config.CORSConfig{AllowedOrigins: "*"},
	}, memory.NewStore(), log)
	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.Close()
		limiter.Stop()
	})

	return &harness{
		t: t,
		cfg: config.ClientConfig{
			BaseURL:            srv.URL,
			CalendarDays:       3,
			DeleteConfirmDwell: time.Minute,
		},
		api: api.NewClient(srv.URL, 5*time.Second, log),
		log: log,
	}
}

func (h *harness) run(stdin string, args ...string) (string, error) {
	h.t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &out, h.cfg, h.log)
	return out.String(), err
}

func (h *harness) create(src domain.Source, text string) domain.Todo {
	h.t.Helper()
	td, err := h.api.CreateTodo(context.Background(), src, text)
	require.NoError(h.t, err)
	return *td
}

func (h *harness) ids(src domain.Source) []string {
	h.t.Helper()
	todos, err := h.api.ListTodos(context.Background(), src)
	require.NoError(h.t, err)
	return domain.TodoIDs(todos)
}

var (
	wednesday = domain.DaySource("2025-01-15")
	thursday  = domain.DaySource("2025-01-16")
	chores    = domain.ListSource("underlying", "chores")
)

// ---------------------------------------------------------------------------
// Read commands
// ---------------------------------------------------------------------------

func TestNotebook_AddAndShowDay(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	out, err := h.run("", "add", "2025-01-15", "buy", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, "day:2025-01-15  WEDNESDAY, JAN 15, 2025")
	assert.Contains(t, out, "buy milk")
	assert.NotContains(t, out, "temp-")

	out, err = h.run("", "day", "day:2025-01-15")
	require.NoError(t, err)
	assert.Contains(t, out, "[ ] ")
	assert.Contains(t, out, "buy milk")
}

func TestNotebook_ShowEmptyList(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	out, err := h.run("", "list", "underlying", "chores")
	require.NoError(t, err)
	assert.Equal(t, "list:underlying:chores\n  (empty)\n", out)
}

func TestNotebook_Tabs(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	out, err := h.run("", "tabs")
	require.NoError(t, err)
	assert.Contains(t, out, "UNDERLYING (underlying)")
	assert.Contains(t, out, "CHORES & LIFE  list:underlying:chores")
	assert.Contains(t, out, "THOUGHTS (thoughts)")
}

func TestNotebook_InvalidSource(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	_, err := h.run("", "day", "15/01/2025")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNotebook_Usage(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	for _, args := range [][]string{nil, {"frobnicate"}, {"rm", "today"}, {"-nope"}} {
		_, err := h.run("", args...)
		assert.ErrorIs(t, err, errUsage, "%v", args)
	}
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

func TestNotebook_DoneAndEdit(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	td := h.create(wednesday, "write report")

	out, err := h.run("", "done", "2025-01-15", td.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "[x] "+td.ID+"  write report")

	out, err = h.run("", "edit", "2025-01-15", td.ID, "write", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "[x] "+td.ID+"  write summary")
}

func TestNotebook_EditRejected(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	td := h.create(wednesday, "keep me")

	out, err := h.run("", "edit", "2025-01-15", td.ID, strings.Repeat("x", domain.MaxTextLength+1))
	require.Error(t, err)
	assert.Contains(t, out, "Failed to update todo")

	todos, err := h.api.ListTodos(context.Background(), wednesday)
	require.NoError(t, err)
	assert.Equal(t, "keep me", todos[0].Text)
}

func TestNotebook_RemoveConfirmed(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	td := h.create(wednesday, "doomed")

	out, err := h.run("\n", "rm", "2025-01-15", td.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Press Enter again to delete "+td.ID)
	assert.Contains(t, out, "Todo deleted")
	assert.Empty(t, h.ids(wednesday))
}

func TestNotebook_RemoveNotConfirmed(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	td := h.create(wednesday, "survivor")

	_, err := h.run("", "rm", "2025-01-15", td.ID)
	assert.ErrorIs(t, err, errNotConfirmed)
	assert.Equal(t, []string{td.ID}, h.ids(wednesday))
}

func TestNotebook_RemoveWithoutPrompt(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	td := h.create(wednesday, "doomed")

	out, err := h.run("", "-y", "rm", "2025-01-15", td.ID)
	require.NoError(t, err)
	assert.NotContains(t, out, "Press Enter")
	assert.Empty(t, h.ids(wednesday))
}

func TestNotebook_MoveToOtherSource(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	a := h.create(wednesday, "a")
	x := h.create(chores, "x")
	y := h.create(chores, "y")

	out, err := h.run("", "mv", a.ID, "2025-01-15", "list:underlying:chores", y.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Moved to chores")

	assert.Empty(t, h.ids(wednesday))
	assert.Equal(t, []string{x.ID, a.ID, y.ID}, h.ids(chores))
}

func TestNotebook_MoveToEnd(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	a := h.create(wednesday, "a")
	b := h.create(thursday, "b")

	out, err := h.run("", "mv", a.ID, "2025-01-15", "2025-01-16")
	require.NoError(t, err)
	assert.Contains(t, out, "Moved to JAN 16, 2025")
	assert.Equal(t, []string{b.ID, a.ID}, h.ids(thursday))
}

func TestNotebook_MoveUnknownTodo(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	_, err := h.run("", "mv", "ghost", "2025-01-15", "2025-01-16")
	assert.ErrorContains(t, err, `todo "ghost" not found`)
}

func TestNotebook_Reorder(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	a := h.create(chores, "a")
	b := h.create(chores, "b")
	c := h.create(chores, "c")

	_, err := h.run("", "reorder", "list:underlying:chores", a.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID, c.ID, a.ID}, h.ids(chores))

	out, err := h.run("", "reorder", "list:underlying:chores", b.ID, b.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to do")
}
