package syncer

import (
	"context"
	"sync"

	"github.com/kwokm/mk-todo/internal/domain"
)

var _ Transport = &TransportMock{}

type TransportMock struct {
	ListTodosFunc    func(ctx context.Context, src domain.Source) ([]domain.Todo, error)
	CreateTodoFunc   func(ctx context.Context, src domain.Source, text string) (*domain.Todo, error)
	UpdateTodoFunc   func(ctx context.Context, id string, params domain.TodoUpdateParams) (*domain.Todo, error)
	DeleteTodoFunc   func(ctx context.Context, id string, src domain.Source) error
	MoveTodoFunc     func(ctx context.Context, id string, from domain.Source, to domain.Source) error
	ReorderTodosFunc func(ctx context.Context, src domain.Source, ids []string) error
	ListTabsFunc     func(ctx context.Context) ([]domain.Tab, error)
	CreateTabFunc    func(ctx context.Context, name string) (*domain.Tab, error)
	RenameTabFunc    func(ctx context.Context, tabID string, name string) (*domain.Tab, error)
	DeleteTabFunc    func(ctx context.Context, tabID string) error
	ListListsFunc    func(ctx context.Context, tabID string) ([]domain.TodoList, error)
	CreateListFunc   func(ctx context.Context, tabID string, name string) (*domain.TodoList, error)
	RenameListFunc   func(ctx context.Context, tabID string, listID string, name string) (*domain.TodoList, error)
	DeleteListFunc   func(ctx context.Context, tabID string, listID string) error
	ReorderListsFunc func(ctx context.Context, tabID string, listIDs []string) error

	calls struct {
		ListTodos []struct {
			Ctx context.Context
			Src domain.Source
		}
		CreateTodo []struct {
			Ctx  context.Context
			Src  domain.Source
			Text string
		}
		UpdateTodo []struct {
			Ctx    context.Context
			Id     string
			Params domain.TodoUpdateParams
		}
		DeleteTodo []struct {
			Ctx context.Context
			Id  string
			Src domain.Source
		}
		MoveTodo []struct {
			Ctx  context.Context
			Id   string
			From domain.Source
			To   domain.Source
		}
		ReorderTodos []struct {
			Ctx context.Context
			Src domain.Source
			Ids []string
		}
		ListTabs []struct {
			Ctx context.Context
		}
		CreateTab []struct {
			Ctx  context.Context
			Name string
		}
		RenameTab []struct {
			Ctx   context.Context
			TabID string
			Name  string
		}
		DeleteTab []struct {
			Ctx   context.Context
			TabID string
		}
		ListLists []struct {
			Ctx   context.Context
			TabID string
		}
		CreateList []struct {
			Ctx   context.Context
			TabID string
			Name  string
		}
		RenameList []struct {
			Ctx    context.Context
			TabID  string
			ListID string
			Name   string
		}
		DeleteList []struct {
			Ctx    context.Context
			TabID  string
			ListID string
		}
		ReorderLists []struct {
			Ctx     context.Context
			TabID   string
			ListIDs []string
		}
	}
	lockListTodos    sync.RWMutex
	lockCreateTodo   sync.RWMutex
	lockUpdateTodo   sync.RWMutex
	lockDeleteTodo   sync.RWMutex
	lockMoveTodo     sync.RWMutex
	lockReorderTodos sync.RWMutex
	lockListTabs     sync.RWMutex
	lockCreateTab    sync.RWMutex
	lockRenameTab    sync.RWMutex
	lockDeleteTab    sync.RWMutex
	lockListLists    sync.RWMutex
	lockCreateList   sync.RWMutex
	lockRenameList   sync.RWMutex
	lockDeleteList   sync.RWMutex
	lockReorderLists sync.RWMutex
}

func (mock *TransportMock) ListTodos(ctx context.Context, src domain.Source) ([]domain.Todo, error) {
	if mock.ListTodosFunc == nil {
		panic("TransportMock.ListTodosFunc: method is nil but Transport.ListTodos was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Src domain.Source
	}{Ctx: ctx, Src: src}
	mock.lockListTodos.Lock()
	mock.calls.ListTodos = append(mock.calls.ListTodos, callInfo)
	mock.lockListTodos.Unlock()
	return mock.ListTodosFunc(ctx, src)
}

func (mock *TransportMock) ListTodosCalls() []struct {
	Ctx context.Context
	Src domain.Source
} {
	mock.lockListTodos.RLock()
	calls := mock.calls.ListTodos
	mock.lockListTodos.RUnlock()
	return calls
}

func (mock *TransportMock) CreateTodo(ctx context.Context, src domain.Source, text string) (*domain.Todo, error) {
	if mock.CreateTodoFunc == nil {
		panic("TransportMock.CreateTodoFunc: method is nil but Transport.CreateTodo was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Src  domain.Source
		Text string
	}{Ctx: ctx, Src: src, Text: text}
	mock.lockCreateTodo.Lock()
	mock.calls.CreateTodo = append(mock.calls.CreateTodo, callInfo)
	mock.lockCreateTodo.Unlock()
	return mock.CreateTodoFunc(ctx, src, text)
}

func (mock *TransportMock) CreateTodoCalls() []struct {
	Ctx  context.Context
	Src  domain.Source
	Text string
} {
	mock.lockCreateTodo.RLock()
	calls := mock.calls.CreateTodo
	mock.lockCreateTodo.RUnlock()
	return calls
}

func (mock *TransportMock) UpdateTodo(ctx context.Context, id string, params domain.TodoUpdateParams) (*domain.Todo, error) {
	if mock.UpdateTodoFunc == nil {
		panic("TransportMock.UpdateTodoFunc: method is nil but Transport.UpdateTodo was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     string
		Params domain.TodoUpdateParams
	}{Ctx: ctx, Id: id, Params: params}
	mock.lockUpdateTodo.Lock()
	mock.calls.UpdateTodo = append(mock.calls.UpdateTodo, callInfo)
	mock.lockUpdateTodo.Unlock()
	return mock.UpdateTodoFunc(ctx, id, params)
}

func (mock *TransportMock) UpdateTodoCalls() []struct {
	Ctx    context.Context
	Id     string
	Params domain.TodoUpdateParams
} {
	mock.lockUpdateTodo.RLock()
	calls := mock.calls.UpdateTodo
	mock.lockUpdateTodo.RUnlock()
	return calls
}

func (mock *TransportMock) DeleteTodo(ctx context.Context, id string, src domain.Source) error {
	if mock.DeleteTodoFunc == nil {
		panic("TransportMock.DeleteTodoFunc: method is nil but Transport.DeleteTodo was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
		Src domain.Source
	}{Ctx: ctx, Id: id, Src: src}
	mock.lockDeleteTodo.Lock()
	mock.calls.DeleteTodo = append(mock.calls.DeleteTodo, callInfo)
	mock.lockDeleteTodo.Unlock()
	return mock.DeleteTodoFunc(ctx, id, src)
}

func (mock *TransportMock) DeleteTodoCalls() []struct {
	Ctx context.Context
	Id  string
	Src domain.Source
} {
	mock.lockDeleteTodo.RLock()
	calls := mock.calls.DeleteTodo
	mock.lockDeleteTodo.RUnlock()
	return calls
}

func (mock *TransportMock) MoveTodo(ctx context.Context, id string, from domain.Source, to domain.Source) error {
	if mock.MoveTodoFunc == nil {
		panic("TransportMock.MoveTodoFunc: method is nil but Transport.MoveTodo was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   string
		From domain.Source
		To   domain.Source
	}{Ctx: ctx, Id: id, From: from, To: to}
	mock.lockMoveTodo.Lock()
	mock.calls.MoveTodo = append(mock.calls.MoveTodo, callInfo)
	mock.lockMoveTodo.Unlock()
	return mock.MoveTodoFunc(ctx, id, from, to)
}

func (mock *TransportMock) MoveTodoCalls() []struct {
	Ctx  context.Context
	Id   string
	From domain.Source
	To   domain.Source
} {
	mock.lockMoveTodo.RLock()
	calls := mock.calls.MoveTodo
	mock.lockMoveTodo.RUnlock()
	return calls
}

func (mock *TransportMock) ReorderTodos(ctx context.Context, src domain.Source, ids []string) error {
	if mock.ReorderTodosFunc == nil {
		panic("TransportMock.ReorderTodosFunc: method is nil but Transport.ReorderTodos was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Src domain.Source
		Ids []string
	}{Ctx: ctx, Src: src, Ids: ids}
	mock.lockReorderTodos.Lock()
	mock.calls.ReorderTodos = append(mock.calls.ReorderTodos, callInfo)
	mock.lockReorderTodos.Unlock()
	return mock.ReorderTodosFunc(ctx, src, ids)
}

func (mock *TransportMock) ReorderTodosCalls() []struct {
	Ctx context.Context
	Src domain.Source
	Ids []string
} {
	mock.lockReorderTodos.RLock()
	calls := mock.calls.ReorderTodos
	mock.lockReorderTodos.RUnlock()
	return calls
}

func (mock *TransportMock) ListTabs(ctx context.Context) ([]domain.Tab, error) {
	if mock.ListTabsFunc == nil {
		panic("TransportMock.ListTabsFunc: method is nil but Transport.ListTabs was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListTabs.Lock()
	mock.calls.ListTabs = append(mock.calls.ListTabs, callInfo)
	mock.lockListTabs.Unlock()
	return mock.ListTabsFunc(ctx)
}

func (mock *TransportMock) ListTabsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTabs.RLock()
	calls := mock.calls.ListTabs
	mock.lockListTabs.RUnlock()
	return calls
}

func (mock *TransportMock) CreateTab(ctx context.Context, name string) (*domain.Tab, error) {
	if mock.CreateTabFunc == nil {
		panic("TransportMock.CreateTabFunc: method is nil but Transport.CreateTab was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockCreateTab.Lock()
	mock.calls.CreateTab = append(mock.calls.CreateTab, callInfo)
	mock.lockCreateTab.Unlock()
	return mock.CreateTabFunc(ctx, name)
}

func (mock *TransportMock) CreateTabCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockCreateTab.RLock()
	calls := mock.calls.CreateTab
	mock.lockCreateTab.RUnlock()
	return calls
}

func (mock *TransportMock) RenameTab(ctx context.Context, tabID string, name string) (*domain.Tab, error) {
	if mock.RenameTabFunc == nil {
		panic("TransportMock.RenameTabFunc: method is nil but Transport.RenameTab was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		TabID string
		Name  string
	}{Ctx: ctx, TabID: tabID, Name: name}
	mock.lockRenameTab.Lock()
	mock.calls.RenameTab = append(mock.calls.RenameTab, callInfo)
	mock.lockRenameTab.Unlock()
	return mock.RenameTabFunc(ctx, tabID, name)
}

func (mock *TransportMock) RenameTabCalls() []struct {
	Ctx   context.Context
	TabID string
	Name  string
} {
	mock.lockRenameTab.RLock()
	calls := mock.calls.RenameTab
	mock.lockRenameTab.RUnlock()
	return calls
}

func (mock *TransportMock) DeleteTab(ctx context.Context, tabID string) error {
	if mock.DeleteTabFunc == nil {
		panic("TransportMock.DeleteTabFunc: method is nil but Transport.DeleteTab was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		TabID string
	}{Ctx: ctx, TabID: tabID}
	mock.lockDeleteTab.Lock()
	mock.calls.DeleteTab = append(mock.calls.DeleteTab, callInfo)
	mock.lockDeleteTab.Unlock()
	return mock.DeleteTabFunc(ctx, tabID)
}

func (mock *TransportMock) DeleteTabCalls() []struct {
	Ctx   context.Context
	TabID string
} {
	mock.lockDeleteTab.RLock()
	calls := mock.calls.DeleteTab
	mock.lockDeleteTab.RUnlock()
	return calls
}

func (mock *TransportMock) ListLists(ctx context.Context, tabID string) ([]domain.TodoList, error) {
	if mock.ListListsFunc == nil {
		panic("TransportMock.ListListsFunc: method is nil but Transport.ListLists was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		TabID string
	}{Ctx: ctx, TabID: tabID}
	mock.lockListLists.Lock()
	mock.calls.ListLists = append(mock.calls.ListLists, callInfo)
	mock.lockListLists.Unlock()
	return mock.ListListsFunc(ctx, tabID)
}

func (mock *TransportMock) ListListsCalls() []struct {
	Ctx   context.Context
	TabID string
} {
	mock.lockListLists.RLock()
	calls := mock.calls.ListLists
	mock.lockListLists.RUnlock()
	return calls
}

func (mock *TransportMock) CreateList(ctx context.Context, tabID string, name string) (*domain.TodoList, error) {
	if mock.CreateListFunc == nil {
		panic("TransportMock.CreateListFunc: method is nil but Transport.CreateList was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		TabID string
		Name  string
	}{Ctx: ctx, TabID: tabID, Name: name}
	mock.lockCreateList.Lock()
	mock.calls.CreateList = append(mock.calls.CreateList, callInfo)
	mock.lockCreateList.Unlock()
	return mock.CreateListFunc(ctx, tabID, name)
}

func (mock *TransportMock) CreateListCalls() []struct {
	Ctx   context.Context
	TabID string
	Name  string
} {
	mock.lockCreateList.RLock()
	calls := mock.calls.CreateList
	mock.lockCreateList.RUnlock()
	return calls
}

func (mock *TransportMock) RenameList(ctx context.Context, tabID string, listID string, name string) (*domain.TodoList, error) {
	if mock.RenameListFunc == nil {
		panic("TransportMock.RenameListFunc: method is nil but Transport.RenameList was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TabID  string
		ListID string
		Name   string
	}{Ctx: ctx, TabID: tabID, ListID: listID, Name: name}
	mock.lockRenameList.Lock()
	mock.calls.RenameList = append(mock.calls.RenameList, callInfo)
	mock.lockRenameList.Unlock()
	return mock.RenameListFunc(ctx, tabID, listID, name)
}

func (mock *TransportMock) RenameListCalls() []struct {
	Ctx    context.Context
	TabID  string
	ListID string
	Name   string
} {
	mock.lockRenameList.RLock()
	calls := mock.calls.RenameList
	mock.lockRenameList.RUnlock()
	return calls
}

func (mock *TransportMock) DeleteList(ctx context.Context, tabID string, listID string) error {
	if mock.DeleteListFunc == nil {
		panic("TransportMock.DeleteListFunc: method is nil but Transport.DeleteList was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TabID  string
		ListID string
	}{Ctx: ctx, TabID: tabID, ListID: listID}
	mock.lockDeleteList.Lock()
	mock.calls.DeleteList = append(mock.calls.DeleteList, callInfo)
	mock.lockDeleteList.Unlock()
	return mock.DeleteListFunc(ctx, tabID, listID)
}

func (mock *TransportMock) DeleteListCalls() []struct {
	Ctx    context.Context
	TabID  string
	ListID string
} {
	mock.lockDeleteList.RLock()
	calls := mock.calls.DeleteList
	mock.lockDeleteList.RUnlock()
	return calls
}

func (mock *TransportMock) ReorderLists(ctx context.Context, tabID string, listIDs []string) error {
	if mock.ReorderListsFunc == nil {
		panic("TransportMock.ReorderListsFunc: method is nil but Transport.ReorderLists was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TabID   string
		ListIDs []string
	}{Ctx: ctx, TabID: tabID, ListIDs: listIDs}
	mock.lockReorderLists.Lock()
	mock.calls.ReorderLists = append(mock.calls.ReorderLists, callInfo)
	mock.lockReorderLists.Unlock()
	return mock.ReorderListsFunc(ctx, tabID, listIDs)
}

func (mock *TransportMock) ReorderListsCalls() []struct {
	Ctx     context.Context
	TabID   string
	ListIDs []string
} {
	mock.lockReorderLists.RLock()
	calls := mock.calls.ReorderLists
	mock.lockReorderLists.RUnlock()
	return calls
}
