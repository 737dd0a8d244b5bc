package teaui

import (
	"context"
	"strings"
	"testing"

	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/route"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/todo"
)

type fakePersistence struct {
	list []todo.Todo
}

func (f *fakePersistence) Load(context.Context) ([]todo.Todo, error) {
	return append([]todo.Todo(nil), f.list...), nil
}

func (f *fakePersistence) Save(list []todo.Todo) error {
	f.list = append([]todo.Todo(nil), list...)
	return nil
}

func (f *fakePersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func newTestModel(t *testing.T, r route.Route, list ...todo.Todo) Model {
	t.Helper()
	ctl, err := controller.New(context.Background(), &fakePersistence{list: list}, r)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return New(context.Background(), ctl, nil)
}

func TestModelShowsVisibleTodos(t *testing.T) {
	m := newTestModel(t, route.All,
		todo.Todo{ID: 1, Title: "write code", Completed: false},
		todo.Todo{ID: 2, Title: "ship it", Completed: true},
	)
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("expected 2 list items, got %d", got)
	}
}

func TestSwitchRouteFiltersItems(t *testing.T) {
	m := newTestModel(t, route.All,
		todo.Todo{ID: 1, Title: "write code", Completed: false},
		todo.Todo{ID: 2, Title: "ship it", Completed: true},
	)

	m.switchRoute(1) // all -> pending
	if m.ctl.Route() != route.Pending {
		t.Fatalf("expected pending route, got %q", m.ctl.Route())
	}
	if got := len(m.list.Items()); got != 1 {
		t.Fatalf("expected 1 pending item, got %d", got)
	}

	m.switchRoute(1) // pending -> completed
	if m.ctl.Route() != route.Completed {
		t.Fatalf("expected completed route, got %q", m.ctl.Route())
	}

	m.switchRoute(1) // completed wraps to all
	if m.ctl.Route() != route.All {
		t.Fatalf("expected wrap to all, got %q", m.ctl.Route())
	}
}

func TestSyncItemsClampsSelection(t *testing.T) {
	m := newTestModel(t, route.All,
		todo.Todo{ID: 1, Title: "a"},
		todo.Todo{ID: 2, Title: "b"},
	)
	m.list.Select(1)

	if err := m.ctl.Delete(2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	m.syncItems()

	if got := m.list.Index(); got != 0 {
		t.Fatalf("expected selection clamped to 0, got %d", got)
	}
}

func TestSelected(t *testing.T) {
	m := newTestModel(t, route.All, todo.Todo{ID: 7, Title: "only"})
	got, ok := m.selected()
	if !ok || got.ID != 7 {
		t.Fatalf("expected selected id 7, got %+v ok=%v", got, ok)
	}

	empty := newTestModel(t, route.All)
	if _, ok := empty.selected(); ok {
		t.Fatal("expected no selection on empty list")
	}
}

func TestViewShowsPendingCount(t *testing.T) {
	m := newTestModel(t, route.All,
		todo.Todo{ID: 1, Title: "a", Completed: false},
		todo.Todo{ID: 2, Title: "b", Completed: true},
	)
	view := m.View()
	if !strings.Contains(view, "1 item left") {
		t.Fatalf("expected pending count in view:\n%s", view)
	}
}
