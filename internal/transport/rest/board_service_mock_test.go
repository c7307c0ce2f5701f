package rest

import (
	"context"
	"sync"

	"github.com/kwokm/mk-todo/internal/domain"
	"github.com/kwokm/mk-todo/internal/service/board"
)

var _ boardService = &boardServiceMock{}

type boardServiceMock struct {
	ListTabsFunc     func(ctx context.Context) ([]domain.Tab, error)
	CreateTabFunc    func(ctx context.Context, input board.CreateTabInput) (*domain.Tab, error)
	RenameTabFunc    func(ctx context.Context, input board.RenameTabInput) (*domain.Tab, error)
	DeleteTabFunc    func(ctx context.Context, input board.DeleteTabInput) error
	ListListsFunc    func(ctx context.Context, tabID string) ([]domain.TodoList, error)
	CreateListFunc   func(ctx context.Context, input board.CreateListInput) (*domain.TodoList, error)
	RenameListFunc   func(ctx context.Context, input board.RenameListInput) (*domain.TodoList, error)
	DeleteListFunc   func(ctx context.Context, input board.DeleteListInput) error
	ReorderListsFunc func(ctx context.Context, input board.ReorderListsInput) error

	calls struct {
		ListTabs []struct {
			Ctx context.Context
		}
		CreateTab []struct {
			Ctx   context.Context
			Input board.CreateTabInput
		}
		RenameTab []struct {
			Ctx   context.Context
			Input board.RenameTabInput
		}
		DeleteTab []struct {
			Ctx   context.Context
			Input board.DeleteTabInput
		}
		ListLists []struct {
			Ctx   context.Context
			TabID string
		}
		CreateList []struct {
			Ctx   context.Context
			Input board.CreateListInput
		}
		RenameList []struct {
			Ctx   context.Context
			Input board.RenameListInput
		}
		DeleteList []struct {
			Ctx   context.Context
			Input board.DeleteListInput
		}
		ReorderLists []struct {
			Ctx   context.Context
			Input board.ReorderListsInput
		}
	}
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

func (mock *boardServiceMock) ListTabs(ctx context.Context) ([]domain.Tab, error) {
	if mock.ListTabsFunc == nil {
		panic("boardServiceMock.ListTabsFunc: method is nil but boardService.ListTabs was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListTabs.Lock()
	mock.calls.ListTabs = append(mock.calls.ListTabs, callInfo)
	mock.lockListTabs.Unlock()
	return mock.ListTabsFunc(ctx)
}

func (mock *boardServiceMock) ListTabsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTabs.RLock()
	calls := mock.calls.ListTabs
	mock.lockListTabs.RUnlock()
	return calls
}

func (mock *boardServiceMock) CreateTab(ctx context.Context, input board.CreateTabInput) (*domain.Tab, error) {
	if mock.CreateTabFunc == nil {
		panic("boardServiceMock.CreateTabFunc: method is nil but boardService.CreateTab was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input board.CreateTabInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateTab.Lock()
	mock.calls.CreateTab = append(mock.calls.CreateTab, callInfo)
	mock.lockCreateTab.Unlock()
	return mock.CreateTabFunc(ctx, input)
}

func (mock *boardServiceMock) CreateTabCalls() []struct {
	Ctx   context.Context
	Input board.CreateTabInput
} {
	mock.lockCreateTab.RLock()
	calls := mock.calls.CreateTab
	mock.lockCreateTab.RUnlock()
	return calls
}

func (mock *boardServiceMock) RenameTab(ctx context.Context, input board.RenameTabInput) (*domain.Tab, error) {
	if mock.RenameTabFunc == nil {
		panic("boardServiceMock.RenameTabFunc: method is nil but boardService.RenameTab was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input board.RenameTabInput
	}{Ctx: ctx, Input: input}
	mock.lockRenameTab.Lock()
	mock.calls.RenameTab = append(mock.calls.RenameTab, callInfo)
	mock.lockRenameTab.Unlock()
	return mock.RenameTabFunc(ctx, input)
}

func (mock *boardServiceMock) RenameTabCalls() []struct {
	Ctx   context.Context
	Input board.RenameTabInput
} {
	mock.lockRenameTab.RLock()
	calls := mock.calls.RenameTab
	mock.lockRenameTab.RUnlock()
	return calls
}

func (mock *boardServiceMock) DeleteTab(ctx context.Context, input board.DeleteTabInput) error {
	if mock.DeleteTabFunc == nil {
		panic("boardServiceMock.DeleteTabFunc: method is nil but boardService.DeleteTab was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input board.DeleteTabInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteTab.Lock()
	mock.calls.DeleteTab = append(mock.calls.DeleteTab, callInfo)
	mock.lockDeleteTab.Unlock()
	return mock.DeleteTabFunc(ctx, input)
}

func (mock *boardServiceMock) DeleteTabCalls() []struct {
	Ctx   context.Context
	Input board.DeleteTabInput
} {
	mock.lockDeleteTab.RLock()
	calls := mock.calls.DeleteTab
	mock.lockDeleteTab.RUnlock()
	return calls
}

func (mock *boardServiceMock) ListLists(ctx context.Context, tabID string) ([]domain.TodoList, error) {
	if mock.ListListsFunc == nil {
		panic("boardServiceMock.ListListsFunc: method is nil but boardService.ListLists was just called")
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

func (mock *boardServiceMock) ListListsCalls() []struct {
	Ctx   context.Context
	TabID string
} {
	mock.lockListLists.RLock()
	calls := mock.calls.ListLists
	mock.lockListLists.RUnlock()
	return calls
}

func (mock *boardServiceMock) CreateList(ctx context.Context, input board.CreateListInput) (*domain.TodoList, error) {
	if mock.CreateListFunc == nil {
		panic("boardServiceMock.CreateListFunc: method is nil but boardService.CreateList was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input board.CreateListInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateList.Lock()
	mock.calls.CreateList = append(mock.calls.CreateList, callInfo)
	mock.lockCreateList.Unlock()
	return mock.CreateListFunc(ctx, input)
}

func (mock *boardServiceMock) CreateListCalls() []struct {
	Ctx   context.Context
	Input board.CreateListInput
} {
	mock.lockCreateList.RLock()
	calls := mock.calls.CreateList
	mock.lockCreateList.RUnlock()
	return calls
}

func (mock *boardServiceMock) RenameList(ctx context.Context, input board.RenameListInput) (*domain.TodoList, error) {
	if mock.RenameListFunc == nil {
		panic("boardServiceMock.RenameListFunc: method is nil but boardService.RenameList was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input board.RenameListInput
	}{Ctx: ctx, Input: input}
	mock.lockRenameList.Lock()
	mock.calls.RenameList = append(mock.calls.RenameList, callInfo)
	mock.lockRenameList.Unlock()
	return mock.RenameListFunc(ctx, input)
}

func (mock *boardServiceMock) RenameListCalls() []struct {
	Ctx   context.Context
	Input board.RenameListInput
} {
	mock.lockRenameList.RLock()
	calls := mock.calls.RenameList
	mock.lockRenameList.RUnlock()
	return calls
}

func (mock *boardServiceMock) DeleteList(ctx context.Context, input board.DeleteListInput) error {
	if mock.DeleteListFunc == nil {
		panic("boardServiceMock.DeleteListFunc: method is nil but boardService.DeleteList was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input board.DeleteListInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteList.Lock()
	mock.calls.DeleteList = append(mock.calls.DeleteList, callInfo)
	mock.lockDeleteList.Unlock()
	return mock.DeleteListFunc(ctx, input)
}

func (mock *boardServiceMock) DeleteListCalls() []struct {
	Ctx   context.Context
	Input board.DeleteListInput
} {
	mock.lockDeleteList.RLock()
	calls := mock.calls.DeleteList
	mock.lockDeleteList.RUnlock()
	return calls
}

func (mock *boardServiceMock) ReorderLists(ctx context.Context, input board.ReorderListsInput) error {
	if mock.ReorderListsFunc == nil {
		panic("boardServiceMock.ReorderListsFunc: method is nil but boardService.ReorderLists was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input board.ReorderListsInput
	}{Ctx: ctx, Input: input}
	mock.lockReorderLists.Lock()
	mock.calls.ReorderLists = append(mock.calls.ReorderLists, callInfo)
	mock.lockReorderLists.Unlock()
	return mock.ReorderListsFunc(ctx, input)
}

func (mock *boardServiceMock) ReorderListsCalls() []struct {
	Ctx   context.Context
	Input board.ReorderListsInput
} {
	mock.lockReorderLists.RLock()
	calls := mock.calls.ReorderLists
	mock.lockReorderLists.RUnlock()
	return calls
}
