// Package controller owns the todo list state: the canonical list, the view
// derived from the current route, and edit mode. Every mutation writes the
// canonical list back to persistence.
package controller

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/route"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/todo"
)

// Key names carried by UI events. Only Enter and Escape are recognized for
// control purposes; any other key is ignored, though mutations may still
// flush to persistence.
const (
	KeyEnter  = "Enter"
	KeyEscape = "Escape"
)

// Controller holds the canonical todo list and a derived visible view. The
// visible view is recomputed from the canonical list and the current route
// after every mutation; it is never a second source of truth.
type Controller struct {
	persistence store.Persistence
	route       route.Route

	todos   []todo.Todo // canonical, newest first
	visible []todo.Todo // route.Apply(todos)

	editing bool
	editID  int64
}

// New loads the stored list and derives the initial view for the route. An
// absent store entry yields an empty list, not an error.
func New(ctx context.Context, p store.Persistence, r route.Route) (*Controller, error) {
	if p == nil {
		return nil, errors.New("controller: no persistence configured")
	}
	c := &Controller{persistence: p, route: r}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload replaces the canonical list with the stored one and re-derives the
// view. Edit mode is left alone so an external change does not kick the user
// out of an open edit.
func (c *Controller) Reload(ctx context.Context) error {
	list, err := c.persistence.Load(ctx)
	if err != nil {
		return err
	}
	c.todos = list
	c.derive()
	return nil
}

// Route returns the active route.
func (c *Controller) Route() route.Route {
	return c.route
}

// SetRoute switches the active route and re-derives the view.
func (c *Controller) SetRoute(r route.Route) {
	c.route = r
	c.derive()
}

// Visible returns a copy of the todos on the current route, newest first.
func (c *Controller) Visible() []todo.Todo {
	return append([]todo.Todo(nil), c.visible...)
}

// All returns a copy of the full canonical list, newest first.
func (c *Controller) All() []todo.Todo {
	return append([]todo.Todo(nil), c.todos...)
}

// Find returns the todo with the given id.
func (c *Controller) Find(id int64) (todo.Todo, bool) {
	if idx := c.indexOf(id); idx >= 0 {
		return c.todos[idx], true
	}
	return todo.Todo{}, false
}

// Add constructs a candidate todo from the trimmed text and inserts it at the
// front of the list when the triggering key is Enter. For any other key the
// candidate is discarded. Persistence is flushed on every call, insertion or
// not.
func (c *Controller) Add(rawText, key string) error {
	candidate := todo.New(rawText)
	if key == KeyEnter {
		c.todos = append([]todo.Todo{candidate}, c.todos...)
		c.derive()
	}
	return c.persist()
}

// Toggle replaces the entry with the given id by a copy whose completion
// flag is flipped. All other entries are untouched. A missing id mutates
// nothing but still flushes.
func (c *Controller) Toggle(id int64) error {
	if idx := c.indexOf(id); idx >= 0 {
		c.todos[idx] = c.todos[idx].Toggled()
		c.derive()
	}
	return c.persist()
}

// Delete removes every entry with the given id (at most one is expected). A
// missing id is a silent no-op apart from the flush.
func (c *Controller) Delete(id int64) error {
	kept := make([]todo.Todo, 0, len(c.todos))
	for _, t := range c.todos {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	c.todos = kept
	c.derive()
	return c.persist()
}

// SelectForEdit enters edit mode targeting the entry with the given id. It
// reports whether the entry exists; edit mode is not entered for a missing
// id.
func (c *Controller) SelectForEdit(id int64) bool {
	if c.indexOf(id) < 0 {
		return false
	}
	c.editing = true
	c.editID = id
	return true
}

// Editing returns the id under edit and whether edit mode is active.
func (c *Controller) Editing() (int64, bool) {
	return c.editID, c.editing
}

// CommitEdit applies the trimmed text to the entry under edit, then acts on
// the key: Escape leaves edit mode without flushing — the title change stays
// in memory until the next flush; Enter leaves edit mode and flushes; any
// other key flushes and stays in edit mode. Without an active edit this is a
// no-op.
func (c *Controller) CommitEdit(rawText, key string) error {
	if !c.editing {
		return nil
	}
	if idx := c.indexOf(c.editID); idx >= 0 {
		c.todos[idx] = c.todos[idx].Retitled(rawText)
	}
	c.derive()
	switch key {
	case KeyEscape:
		c.editing = false
		return nil
	case KeyEnter:
		c.editing = false
	}
	return c.persist()
}

// CountPending returns the number of incomplete entries in the canonical
// list, independent of the current route.
func (c *Controller) CountPending() int {
	n := 0
	for _, t := range c.todos {
		if !t.Completed {
			n++
		}
	}
	return n
}

// ClearCompleted drops every completed entry from the canonical list.
func (c *Controller) ClearCompleted() error {
	kept := make([]todo.Todo, 0, len(c.todos))
	for _, t := range c.todos {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	c.todos = kept
	c.derive()
	return c.persist()
}

func (c *Controller) indexOf(id int64) int {
	for i, t := range c.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (c *Controller) derive() {
	c.visible = c.route.Apply(c.todos)
}

func (c *Controller) persist() error {
	return c.persistence.Save(c.todos)
}
