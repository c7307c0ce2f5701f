package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kwokm/mk-todo/internal/domain"
)

type todosResponse struct {
	Todos []domain.Todo `json:"todos"`
}

type updateTodoRequest struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

type moveTodoRequest struct {
	TodoID     string        `json:"todoId"`
	FromSource domain.Source `json:"fromSource"`
	ToSource   domain.Source `json:"toSource"`
}

type reorderTodosRequest struct {
	Source  domain.Source `json:"source"`
	TodoIDs []string      `json:"todoIds"`
}

type sourceRequest struct {
	Source domain.Source `json:"source"`
}

// ListTodos fetches the todos of src in order.
func (c *Client) ListTodos(ctx context.Context, src domain.Source) ([]domain.Todo, error) {
	path, err := sourcePath(src)
	if err != nil {
		return nil, err
	}
	var resp todosResponse
	if err := c.do(ctx, "list todos", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Todos == nil {
		resp.Todos = []domain.Todo{}
	}
	return resp.Todos, nil
}

// CreateTodo appends a todo to src.
func (c *Client) CreateTodo(ctx context.Context, src domain.Source, text string) (*domain.Todo, error) {
	path, err := sourcePath(src)
	if err != nil {
		return nil, err
	}
	var created domain.Todo
	if err := c.do(ctx, "create todo", http.MethodPost, path, map[string]string{"text": text}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTodo applies a partial update.
func (c *Client) UpdateTodo(ctx context.Context, id string, params domain.TodoUpdateParams) (*domain.Todo, error) {
	var updated domain.Todo
	req := updateTodoRequest{Text: params.Text, Completed: params.Completed}
	if err := c.do(ctx, "update todo", http.MethodPatch, "/todos/"+url.PathEscape(id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTodo removes a todo from src.
func (c *Client) DeleteTodo(ctx context.Context, id string, src domain.Source) error {
	return c.do(ctx, "delete todo", http.MethodDelete, "/todos/"+url.PathEscape(id), sourceRequest{Source: src}, nil)
}

// MoveTodo appends a todo to another source.
func (c *Client) MoveTodo(ctx context.Context, id string, from, to domain.Source) error {
	req := moveTodoRequest{TodoID: id, FromSource: from, ToSource: to}
	return c.do(ctx, "move todo", http.MethodPost, "/todos/move", req, nil)
}

// ReorderTodos replaces the order of src.
func (c *Client) ReorderTodos(ctx context.Context, src domain.Source, ids []string) error {
	req := reorderTodosRequest{Source: src, TodoIDs: ids}
	return c.do(ctx, "reorder todos", http.MethodPost, "/todos/reorder", req, nil)
}
