package rest

import (
	"net/http"
)

// NewRouter registers every API route on a fresh mux.
func NewRouter(todos *TodoHandler, boards *BoardHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /tabs", boards.ListTabs)
	mux.HandleFunc("POST /tabs", boards.CreateTab)
	mux.HandleFunc("PATCH /tabs/{tabId}", boards.RenameTab)
	mux.HandleFunc("DELETE /tabs/{tabId}", boards.DeleteTab)
	mux.HandleFunc("GET /tabs/{tabId}/lists", boards.ListLists)
	mux.HandleFunc("POST /tabs/{tabId}/lists", boards.CreateList)
	mux.HandleFunc("POST /tabs/{tabId}/lists/reorder", boards.ReorderLists)
	mux.HandleFunc("PATCH /tabs/{tabId}/lists/{listId}", boards.RenameList)
	mux.HandleFunc("DELETE /tabs/{tabId}/lists/{listId}", boards.DeleteList)

	mux.HandleFunc("GET /todos/day/{date}", todos.ListDay)
	mux.HandleFunc("POST /todos/day/{date}", todos.CreateDay)
	mux.HandleFunc("GET /todos/list/{tabId}/{listId}", todos.ListList)
	mux.HandleFunc("POST /todos/list/{tabId}/{listId}", todos.CreateList)
	mux.HandleFunc("POST /todos/move", todos.Move)
	mux.HandleFunc("POST /todos/reorder", todos.Reorder)
	mux.HandleFunc("PATCH /todos/{id}", todos.Update)
	mux.HandleFunc("DELETE /todos/{id}", todos.Delete)

	return mux
}
