package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kwokm/mk-todo/internal/domain"
)

type nameRequest struct {
	Name string `json:"name"`
}

func tabPath(tabID string) string {
	return "/tabs/" + url.PathEscape(tabID)
}

func listPath(tabID, listID string) string {
	return tabPath(tabID) + "/lists/" + url.PathEscape(listID)
}

// ListTabs fetches all tabs.
func (c *Client) ListTabs(ctx context.Context) ([]domain.Tab, error) {
	var tabs []domain.Tab
	if err := c.do(ctx, "list tabs", http.MethodGet, "/tabs", nil, &tabs); err != nil {
		return nil, err
	}
	return tabs, nil
}

// CreateTab appends a tab.
func (c *Client) CreateTab(ctx context.Context, name string) (*domain.Tab, error) {
	var tab domain.Tab
	if err := c.do(ctx, "create tab", http.MethodPost, "/tabs", nameRequest{Name: name}, &tab); err != nil {
		return nil, err
	}
	return &tab, nil
}

// RenameTab renames a tab.
func (c *Client) RenameTab(ctx context.Context, tabID, name string) (*domain.Tab, error) {
	var tab domain.Tab
	if err := c.do(ctx, "rename tab", http.MethodPatch, tabPath(tabID), nameRequest{Name: name}, &tab); err != nil {
		return nil, err
	}
	return &tab, nil
}

// DeleteTab deletes a tab with its lists and todos.
func (c *Client) DeleteTab(ctx context.Context, tabID string) error {
	return c.do(ctx, "delete tab", http.MethodDelete, tabPath(tabID), nil, nil)
}

// ListLists fetches the lists of a tab.
func (c *Client) ListLists(ctx context.Context, tabID string) ([]domain.TodoList, error) {
	var lists []domain.TodoList
	if err := c.do(ctx, "list lists", http.MethodGet, tabPath(tabID)+"/lists", nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// CreateList appends a list to a tab.
func (c *Client) CreateList(ctx context.Context, tabID, name string) (*domain.TodoList, error) {
	var list domain.TodoList
	if err := c.do(ctx, "create list", http.MethodPost, tabPath(tabID)+"/lists", nameRequest{Name: name}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// RenameList renames a list.
func (c *Client) RenameList(ctx context.Context, tabID, listID, name string) (*domain.TodoList, error) {
	var list domain.TodoList
	if err := c.do(ctx, "rename list", http.MethodPatch, listPath(tabID, listID), nameRequest{Name: name}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// DeleteList deletes a list with its todos.
func (c *Client) DeleteList(ctx context.Context, tabID, listID string) error {
	return c.do(ctx, "delete list", http.MethodDelete, listPath(tabID, listID), nil, nil)
}

// ReorderLists replaces the list order of a tab.
func (c *Client) ReorderLists(ctx context.Context, tabID string, listIDs []string) error {
	req := map[string][]string{"listIds": listIDs}
	return c.do(ctx, "reorder lists", http.MethodPost, tabPath(tabID)+"/lists/reorder", req, nil)
}
