package dnd

import (
	"context"
	"sync"

	"github.com/kwokm/mk-todo/internal/domain"
)

var _ syncCore = &syncCoreMock{}

type syncCoreMock struct {
	CachedFunc       func(src domain.Source) ([]domain.Todo, bool)
	MoveTodoFunc     func(ctx context.Context, id string, from domain.Source, to domain.Source) error
	ReorderTodosFunc func(ctx context.Context, src domain.Source, ids []string) error

	calls struct {
		Cached []struct {
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
	}
	lockCached       sync.RWMutex
	lockMoveTodo     sync.RWMutex
	lockReorderTodos sync.RWMutex
}

func (mock *syncCoreMock) Cached(src domain.Source) ([]domain.Todo, bool) {
	if mock.CachedFunc == nil {
		panic("syncCoreMock.CachedFunc: method is nil but syncCore.Cached was just called")
	}
	callInfo := struct {
		Src domain.Source
	}{Src: src}
	mock.lockCached.Lock()
	mock.calls.Cached = append(mock.calls.Cached, callInfo)
	mock.lockCached.Unlock()
	return mock.CachedFunc(src)
}

func (mock *syncCoreMock) CachedCalls() []struct {
	Src domain.Source
} {
	mock.lockCached.RLock()
	calls := mock.calls.Cached
	mock.lockCached.RUnlock()
	return calls
}

func (mock *syncCoreMock) MoveTodo(ctx context.Context, id string, from domain.Source, to domain.Source) error {
	if mock.MoveTodoFunc == nil {
		panic("syncCoreMock.MoveTodoFunc: method is nil but syncCore.MoveTodo was just called")
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

func (mock *syncCoreMock) MoveTodoCalls() []struct {
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

func (mock *syncCoreMock) ReorderTodos(ctx context.Context, src domain.Source, ids []string) error {
	if mock.ReorderTodosFunc == nil {
		panic("syncCoreMock.ReorderTodosFunc: method is nil but syncCore.ReorderTodos was just called")
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

func (mock *syncCoreMock) ReorderTodosCalls() []struct {
	Ctx context.Context
	Src domain.Source
	Ids []string
} {
	mock.lockReorderTodos.RLock()
	calls := mock.calls.ReorderTodos
	mock.lockReorderTodos.RUnlock()
	return calls
}
