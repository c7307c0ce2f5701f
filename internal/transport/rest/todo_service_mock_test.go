package rest

import (
	"context"
	"sync"

	"github.com/kwokm/mk-todo/internal/domain"
	"github.com/kwokm/mk-todo/internal/service/todo"
)

var _ todoService = &todoServiceMock{}

type todoServiceMock struct {
	ListFunc    func(ctx context.Context, src domain.Source) ([]domain.Todo, error)
	CreateFunc  func(ctx context.Context, input todo.CreateInput) (*domain.Todo, error)
	UpdateFunc  func(ctx context.Context, input todo.UpdateInput) (*domain.Todo, error)
	DeleteFunc  func(ctx context.Context, input todo.DeleteInput) error
	MoveFunc    func(ctx context.Context, input todo.MoveInput) error
	ReorderFunc func(ctx context.Context, input todo.ReorderInput) error

	calls struct {
		List []struct {
			Ctx context.Context
			Src domain.Source
		}
		Create []struct {
			Ctx   context.Context
			Input todo.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			Input todo.UpdateInput
		}
		Delete []struct {
			Ctx   context.Context
			Input todo.DeleteInput
		}
		Move []struct {
			Ctx   context.Context
			Input todo.MoveInput
		}
		Reorder []struct {
			Ctx   context.Context
			Input todo.ReorderInput
		}
	}
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockMove    sync.RWMutex
	lockReorder sync.RWMutex
}

func (mock *todoServiceMock) List(ctx context.Context, src domain.Source) ([]domain.Todo, error) {
	if mock.ListFunc == nil {
		panic("todoServiceMock.ListFunc: method is nil but todoService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Src domain.Source
	}{Ctx: ctx, Src: src}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, src)
}

func (mock *todoServiceMock) ListCalls() []struct {
	Ctx context.Context
	Src domain.Source
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *todoServiceMock) Create(ctx context.Context, input todo.CreateInput) (*domain.Todo, error) {
	if mock.CreateFunc == nil {
		panic("todoServiceMock.CreateFunc: method is nil but todoService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input todo.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *todoServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input todo.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *todoServiceMock) Update(ctx context.Context, input todo.UpdateInput) (*domain.Todo, error) {
	if mock.UpdateFunc == nil {
		panic("todoServiceMock.UpdateFunc: method is nil but todoService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input todo.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *todoServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input todo.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *todoServiceMock) Delete(ctx context.Context, input todo.DeleteInput) error {
	if mock.DeleteFunc == nil {
		panic("todoServiceMock.DeleteFunc: method is nil but todoService.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input todo.DeleteInput
	}{Ctx: ctx, Input: input}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, input)
}

func (mock *todoServiceMock) DeleteCalls() []struct {
	Ctx   context.Context
	Input todo.DeleteInput
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *todoServiceMock) Move(ctx context.Context, input todo.MoveInput) error {
	if mock.MoveFunc == nil {
		panic("todoServiceMock.MoveFunc: method is nil but todoService.Move was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input todo.MoveInput
	}{Ctx: ctx, Input: input}
	mock.lockMove.Lock()
	mock.calls.Move = append(mock.calls.Move, callInfo)
	mock.lockMove.Unlock()
	return mock.MoveFunc(ctx, input)
}

func (mock *todoServiceMock) MoveCalls() []struct {
	Ctx   context.Context
	Input todo.MoveInput
} {
	mock.lockMove.RLock()
	calls := mock.calls.Move
	mock.lockMove.RUnlock()
	return calls
}

func (mock *todoServiceMock) Reorder(ctx context.Context, input todo.ReorderInput) error {
	if mock.ReorderFunc == nil {
		panic("todoServiceMock.ReorderFunc: method is nil but todoService.Reorder was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input todo.ReorderInput
	}{Ctx: ctx, Input: input}
	mock.lockReorder.Lock()
	mock.calls.Reorder = append(mock.calls.Reorder, callInfo)
	mock.lockReorder.Unlock()
	return mock.ReorderFunc(ctx, input)
}

func (mock *todoServiceMock) ReorderCalls() []struct {
	Ctx   context.Context
	Input todo.ReorderInput
} {
	mock.lockReorder.RLock()
	calls := mock.calls.Reorder
	mock.lockReorder.RUnlock()
	return calls
}
