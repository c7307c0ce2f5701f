package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kwokm/mk-todo/internal/domain"
	"github.com/kwokm/mk-todo/internal/service/todo"
)

type todoService interface {
	List(ctx context.Context, src domain.Source) ([]domain.Todo, error)
	Create(ctx context.Context, input todo.CreateInput) (*domain.Todo, error)
	Update(ctx context.Context, input todo.UpdateInput) (*domain.Todo, error)
	Delete(ctx context.Context, input todo.DeleteInput) error
	Move(ctx context.Context, input todo.MoveInput) error
	Reorder(ctx context.Context, input todo.ReorderInput) error
}

// TodoHandler serves the /todos routes.
type TodoHandler struct {
	svc todoService
	log *slog.Logger
}

// NewTodoHandler creates a TodoHandler.
func NewTodoHandler(svc todoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: logger.With("handler", "todo")}
}

type createTodoRequest struct {
	Text string `json:"text"`
}

type updateTodoRequest struct {
	Text      *string         `json:"text"`
	Completed json.RawMessage `json:"completed"`
}

type deleteTodoRequest struct {
	Source string `json:"source"`
}

type moveTodoRequest struct {
	TodoID     string `json:"todoId"`
	FromSource string `json:"fromSource"`
	ToSource   string `json:"toSource"`
	Position   *int   `json:"position"`
}

type reorderTodosRequest struct {
	Source  string   `json:"source"`
	Key     string   `json:"key"`
	TodoIDs []string `json:"todoIds"`
}

// ListDay handles GET /todos/day/{date}.
func (h *TodoHandler) ListDay(w http.ResponseWriter, r *http.Request) {
	src, err := daySource(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	todos, err := h.svc.List(r.Context(), src)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.DayTodos{Date: src.Date, Todos: todos})
}

// CreateDay handles POST /todos/day/{date}.
func (h *TodoHandler) CreateDay(w http.ResponseWriter, r *http.Request) {
	src, err := daySource(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.create(w, r, src)
}

// ListList handles GET /todos/list/{tabId}/{listId}.
func (h *TodoHandler) ListList(w http.ResponseWriter, r *http.Request) {
	src, err := listSource(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	todos, err := h.svc.List(r.Context(), src)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.ListTodos{TabID: src.TabID, ListID: src.ListID, Todos: todos})
}

// CreateList handles POST /todos/list/{tabId}/{listId}.
func (h *TodoHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	src, err := listSource(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.create(w, r, src)
}

func (h *TodoHandler) create(w http.ResponseWriter, r *http.Request, src domain.Source) {
	var req createTodoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.Create(r.Context(), todo.CreateInput{Source: src, Text: req.Text})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Update handles PATCH /todos/{id}.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateTodoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := todo.UpdateInput{ID: r.PathValue("id"), Text: req.Text}
	if len(req.Completed) > 0 && string(req.Completed) != "null" {
		var completed bool
		if err := json.Unmarshal(req.Completed, &completed); err != nil {
			handleError(h.log, w, r, domain.NewValidationError("completed", "must be a boolean"))
			return
		}
		input.Completed = &completed
	}

	updated, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /todos/{id} with the owning source in the body.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteTodoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	src, err := domain.ParseSource(req.Source)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), todo.DeleteInput{ID: r.PathValue("id"), Source: src}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse)
}

// Move handles POST /todos/move.
func (h *TodoHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req moveTodoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	// Unparsable sources stay zero and are reported by input validation
	// under their own field names.
	from, _ := domain.ParseSource(req.FromSource)
	to, _ := domain.ParseSource(req.ToSource)

	err := h.svc.Move(r.Context(), todo.MoveInput{
		ID:       req.TodoID,
		From:     from,
		To:       to,
		Position: req.Position,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse)
}

// Reorder handles POST /todos/reorder. The source may be given as "source"
// or as the older "key" field.
func (h *TodoHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderTodosRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	raw := req.Source
	if raw == "" {
		raw = req.Key
	}
	src, _ := domain.ParseSource(raw)

	if err := h.svc.Reorder(r.Context(), todo.ReorderInput{Source: src, IDs: req.TodoIDs}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse)
}

func daySource(r *http.Request) (domain.Source, error) {
	date := r.PathValue("date")
	if !domain.IsValidDateKey(date) {
		return domain.Source{}, domain.NewValidationError("date", "invalid date, expected YYYY-MM-DD")
	}
	return domain.DaySource(date), nil
}

func listSource(r *http.Request) (domain.Source, error) {
	if err := validatePath(r, "tabId", "listId"); err != nil {
		return domain.Source{}, err
	}
	return domain.ListSource(r.PathValue("tabId"), r.PathValue("listId")), nil
}
