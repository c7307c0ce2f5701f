package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/kwokm/mk-todo/internal/domain"
	"github.com/kwokm/mk-todo/internal/service/board"
)

type boardService interface {
	ListTabs(ctx context.Context) ([]domain.Tab, error)
	CreateTab(ctx context.Context, input board.CreateTabInput) (*domain.Tab, error)
	RenameTab(ctx context.Context, input board.RenameTabInput) (*domain.Tab, error)
	DeleteTab(ctx context.Context, input board.DeleteTabInput) error
	ListLists(ctx context.Context, tabID string) ([]domain.TodoList, error)
	CreateList(ctx context.Context, input board.CreateListInput) (*domain.TodoList, error)
	RenameList(ctx context.Context, input board.RenameListInput) (*domain.TodoList, error)
	DeleteList(ctx context.Context, input board.DeleteListInput) error
	ReorderLists(ctx context.Context, input board.ReorderListsInput) error
}

// BoardHandler serves the /tabs routes.
type BoardHandler struct {
	svc boardService
	log *slog.Logger
}

// NewBoardHandler creates a BoardHandler.
func NewBoardHandler(svc boardService, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{svc: svc, log: logger.With("handler", "board")}
}

type nameRequest struct {
	Name string `json:"name"`
}

type reorderListsRequest struct {
	ListIDs []string `json:"listIds"`
}

// ListTabs handles GET /tabs.
func (h *BoardHandler) ListTabs(w http.ResponseWriter, r *http.Request) {
	tabs, err := h.svc.ListTabs(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tabs)
}

// CreateTab handles POST /tabs.
func (h *BoardHandler) CreateTab(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tab, err := h.svc.CreateTab(r.Context(), board.CreateTabInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tab)
}

// RenameTab handles PATCH /tabs/{tabId}.
func (h *BoardHandler) RenameTab(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tab, err := h.svc.RenameTab(r.Context(), board.RenameTabInput{TabID: r.PathValue("tabId"), Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tab)
}

// DeleteTab handles DELETE /tabs/{tabId}. Lists and todos of the tab go with it.
func (h *BoardHandler) DeleteTab(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTab(r.Context(), board.DeleteTabInput{TabID: r.PathValue("tabId")}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse)
}

// ListLists handles GET /tabs/{tabId}/lists.
func (h *BoardHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListLists(r.Context(), r.PathValue("tabId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

// CreateList handles POST /tabs/{tabId}/lists.
func (h *BoardHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.CreateList(r.Context(), board.CreateListInput{TabID: r.PathValue("tabId"), Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, list)
}

// RenameList handles PATCH /tabs/{tabId}/lists/{listId}.
func (h *BoardHandler) RenameList(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.RenameList(r.Context(), board.RenameListInput{
		TabID:  r.PathValue("tabId"),
		ListID: r.PathValue("listId"),
		Name:   req.Name,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// DeleteList handles DELETE /tabs/{tabId}/lists/{listId}.
func (h *BoardHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteList(r.Context(), board.DeleteListInput{
		TabID:  r.PathValue("tabId"),
		ListID: r.PathValue("listId"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse)
}

// ReorderLists handles POST /tabs/{tabId}/lists/reorder.
func (h *BoardHandler) ReorderLists(w http.ResponseWriter, r *http.Request) {
	var req reorderListsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	err := h.svc.ReorderLists(r.Context(), board.ReorderListsInput{
		TabID:   r.PathValue("tabId"),
		ListIDs: req.ListIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse)
}
