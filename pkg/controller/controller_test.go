package controller

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tableflip.dev/todo/pkg/route"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/todo"
)

type memoryPersistence struct {
	mu      sync.Mutex
	saved   []todo.Todo
	saves   int
	loadErr error
}

func newMemoryPersistence(list ...todo.Todo) *memoryPersistence {
	return &memoryPersistence{saved: append([]todo.Todo(nil), list...)}
}

func (m *memoryPersistence) Load(_ context.Context) ([]todo.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]todo.Todo(nil), m.saved...), nil
}

func (m *memoryPersistence) Save(list []todo.Todo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append([]todo.Todo(nil), list...)
	m.saves++
	return nil
}

func (m *memoryPersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func (m *memoryPersistence) savedCopy() []todo.Todo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]todo.Todo(nil), m.saved...)
}

func (m *memoryPersistence) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func mustNew(t *testing.T, p store.Persistence, r route.Route) *Controller {
	t.Helper()
	c, err := New(context.Background(), p, r)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return c
}

func TestAddWithEnterGrowsViewByOne(t *testing.T) {
	mp := newMemoryPersistence()
	c := mustNew(t, mp, route.All)

	titles := []string{"one", "two", "three"}
	for i, title := range titles {
		if err := c.Add(title, KeyEnter); err != nil {
			t.Fatalf("add: %v", err)
		}
		v := c.Visible()
		if len(v) != i+1 {
			t.Fatalf("after %d adds expected %d visible, got %d", i+1, i+1, len(v))
		}
		if v[0].Title != title {
			t.Fatalf("newest todo must be at index 0, got %q", v[0].Title)
		}
	}
}

func TestAddScenarioBuyMilk(t *testing.T) {
	mp := newMemoryPersistence()
	c := mustNew(t, mp, route.All)

	if err := c.Add("buy milk", KeyEnter); err != nil {
		t.Fatalf("add: %v", err)
	}
	v := c.Visible()
	if len(v) != 1 {
		t.Fatalf("expected one visible todo, got %d", len(v))
	}
	if v[0].Title != "buy milk" || v[0].Completed {
		t.Fatalf("unexpected todo: %+v", v[0])
	}
}

func TestAddWithOtherKeyDoesNotInsertButFlushes(t *testing.T) {
	mp := newMemoryPersistence()
	c := mustNew(t, mp, route.All)
	before := mp.saveCount()

	if err := c.Add("ignored", "a"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(c.Visible()) != 0 {
		t.Fatal("non-Enter key must not insert")
	}
	if mp.saveCount() != before+1 {
		t.Fatal("every Add call must flush to persistence")
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	mp := newMemoryPersistence(
		todo.Todo{ID: 1, Title: "a", Completed: false},
		todo.Todo{ID: 2, Title: "b", Completed: true},
	)
	c := mustNew(t, mp, route.All)
	orig := c.All()

	if err := c.Toggle(1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got, _ := c.Find(1); !got.Completed {
		t.Fatal("expected todo 1 completed after toggle")
	}
	if got, _ := c.Find(2); got != orig[1] {
		t.Fatalf("todo 2 must be unchanged, got %+v", got)
	}

	if err := c.Toggle(1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	after := c.All()
	for i := range orig {
		if after[i] != orig[i] {
			t.Fatalf("entry %d changed after double toggle: %+v != %+v", i, after[i], orig[i])
		}
	}
}

func TestToggleMissingIDIsNoOp(t *testing.T) {
	mp := newMemoryPersistence(todo.Todo{ID: 1, Title: "a"})
	c := mustNew(t, mp, route.All)
	if err := c.Toggle(99); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got, _ := c.Find(1); got.Completed {
		t.Fatal("unrelated entry changed")
	}
}

func TestDelete(t *testing.T) {
	mp := newMemoryPersistence(
		todo.Todo{ID: 1, Title: "a"},
		todo.Todo{ID: 2, Title: "b"},
	)
	c := mustNew(t, mp, route.All)

	if err := c.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := c.Find(1); ok {
		t.Fatal("todo 1 should be gone")
	}
	if len(c.All()) != 1 {
		t.Fatalf("expected one todo left, got %d", len(c.All()))
	}

	// Deleting an unknown id is silent.
	if err := c.Delete(42); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if len(c.All()) != 1 {
		t.Fatal("delete of missing id changed the list")
	}
}

func TestDeleteOnFilteredRouteKeepsHiddenEntries(t *testing.T) {
	mp := newMemoryPersistence(
		todo.Todo{ID: 1, Title: "a", Completed: false},
		todo.Todo{ID: 2, Title: "b", Completed: true},
	)
	c := mustNew(t, mp, route.Pending)

	if err := c.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// The completed entry stays in the canonical list even though the
	// pending view never showed it.
	saved := mp.savedCopy()
	if len(saved) != 1 || saved[0].ID != 2 {
		t.Fatalf("expected hidden entry to survive, saved %+v", saved)
	}
}

func TestCountPendingIgnoresFilter(t *testing.T) {
	list := []todo.Todo{
		{ID: 1, Title: "a", Completed: false},
		{ID: 2, Title: "b", Completed: true},
		{ID: 3, Title: "c", Completed: false},
	}
	for _, r := range route.AllRoutes() {
		c := mustNew(t, newMemoryPersistence(list...), r)
		if got := c.CountPending(); got != 2 {
			t.Errorf("route %q: CountPending = %d, want 2", r, got)
		}
	}
}

func TestFilterScenarioPending(t *testing.T) {
	mp := newMemoryPersistence(
		todo.Todo{ID: 1, Title: "a", Completed: false},
		todo.Todo{ID: 2, Title: "b", Completed: true},
	)
	c := mustNew(t, mp, route.Pending)

	v := c.Visible()
	if len(v) != 1 || v[0] != (todo.Todo{ID: 1, Title: "a", Completed: false}) {
		t.Fatalf("unexpected pending view: %+v", v)
	}
}

func TestClearCompletedScenario(t *testing.T) {
	mp := newMemoryPersistence(
		todo.Todo{ID: 1, Title: "a", Completed: true},
		todo.Todo{ID: 2, Title: "b", Completed: false},
	)
	c := mustNew(t, mp, route.All)

	if err := c.ClearCompleted(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	want := todo.Todo{ID: 2, Title: "b", Completed: false}
	all, v := c.All(), c.Visible()
	if len(all) != 1 || all[0] != want {
		t.Fatalf("unexpected canonical list: %+v", all)
	}
	if len(v) != 1 || v[0] != want {
		t.Fatalf("unexpected view: %+v", v)
	}
	saved := mp.savedCopy()
	if len(saved) != 1 || saved[0] != want {
		t.Fatalf("unexpected persisted list: %+v", saved)
	}
}

func TestClearCompletedOnCompletedRouteEmptiesView(t *testing.T) {
	mp := newMemoryPersistence(
		todo.Todo{ID: 1, Title: "a", Completed: true},
		todo.Todo{ID: 2, Title: "b", Completed: false},
	)
	c := mustNew(t, mp, route.Completed)

	if err := c.ClearCompleted(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(c.Visible()) != 0 {
		t.Fatalf("completed view should be empty, got %+v", c.Visible())
	}
	if len(c.All()) != 1 {
		t.Fatalf("pending entry must survive, got %+v", c.All())
	}
}

func TestEditEscapeKeepsTitleWithoutFlush(t *testing.T) {
	mp := newMemoryPersistence(todo.Todo{ID: 1, Title: "a", Completed: false})
	c := mustNew(t, mp, route.All)
	before := mp.saveCount()

	if !c.SelectForEdit(1) {
		t.Fatal("select for edit failed")
	}
	if err := c.CommitEdit("z", KeyEscape); err != nil {
		t.Fatalf("commit edit: %v", err)
	}

	if _, editing := c.Editing(); editing {
		t.Fatal("escape must leave edit mode")
	}
	// The title change is retained in memory even on Escape.
	if got, _ := c.Find(1); got.Title != "z" {
		t.Fatalf("expected in-memory title %q, got %q", "z", got.Title)
	}
	// ...but nothing was flushed.
	if mp.saveCount() != before {
		t.Fatal("escape must not flush")
	}
	if saved := mp.savedCopy(); saved[0].Title != "a" {
		t.Fatalf("persisted title changed on escape: %q", saved[0].Title)
	}
}

func TestEditEnterFlushes(t *testing.T) {
	mp := newMemoryPersistence(todo.Todo{ID: 1, Title: "a", Completed: false})
	c := mustNew(t, mp, route.All)

	c.SelectForEdit(1)
	if err := c.CommitEdit("  new title  ", KeyEnter); err != nil {
		t.Fatalf("commit edit: %v", err)
	}
	if _, editing := c.Editing(); editing {
		t.Fatal("enter must leave edit mode")
	}
	if saved := mp.savedCopy(); saved[0].Title != "new title" {
		t.Fatalf("expected trimmed persisted title, got %q", saved[0].Title)
	}
}

func TestEditOtherKeyStaysInEditMode(t *testing.T) {
	mp := newMemoryPersistence(todo.Todo{ID: 1, Title: "a", Completed: false})
	c := mustNew(t, mp, route.All)
	before := mp.saveCount()

	c.SelectForEdit(1)
	if err := c.CommitEdit("b", "x"); err != nil {
		t.Fatalf("commit edit: %v", err)
	}
	if id, editing := c.Editing(); !editing || id != 1 {
		t.Fatal("other keys must keep edit mode active")
	}
	if mp.saveCount() != before+1 {
		t.Fatal("other keys must flush")
	}
}

func TestSelectForEditMissingID(t *testing.T) {
	c := mustNew(t, newMemoryPersistence(), route.All)
	if c.SelectForEdit(7) {
		t.Fatal("edit of a missing id must not enter edit mode")
	}
	if err := c.CommitEdit("z", KeyEnter); err != nil {
		t.Fatalf("commit without edit: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	mp := newMemoryPersistence()
	c := mustNew(t, mp, route.Pending)

	for _, title := range []string{"a", "b", "c"} {
		if err := c.Add(title, KeyEnter); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := c.Toggle(c.Visible()[1].ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	again := mustNew(t, mp, route.Pending)
	want, got := c.Visible(), again.Visible()
	if len(want) != len(got) {
		t.Fatalf("round trip length mismatch: %d != %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("round trip entry %d mismatch: %+v != %+v", i, want[i], got[i])
		}
	}
}

func TestSetRouteRederives(t *testing.T) {
	mp := newMemoryPersistence(
		todo.Todo{ID: 1, Title: "a", Completed: false},
		todo.Todo{ID: 2, Title: "b", Completed: true},
	)
	c := mustNew(t, mp, route.All)
	if len(c.Visible()) != 2 {
		t.Fatalf("expected full view, got %+v", c.Visible())
	}

	c.SetRoute(route.Completed)
	v := c.Visible()
	if len(v) != 1 || v[0].ID != 2 {
		t.Fatalf("expected completed view, got %+v", v)
	}
}

func TestNewPropagatesLoadError(t *testing.T) {
	mp := newMemoryPersistence()
	mp.loadErr = errors.New("boom")
	if _, err := New(context.Background(), mp, route.All); err == nil {
		t.Fatal("expected load error")
	}
}

func TestNewRequiresPersistence(t *testing.T) {
	if _, err := New(context.Background(), nil, route.All); err == nil {
		t.Fatal("expected error for nil persistence")
	}
}
