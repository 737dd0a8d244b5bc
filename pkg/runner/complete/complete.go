// Package complete provides the runner logic for toggling completion.
package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/route"
	"tableflip.dev/todo/pkg/store"
)

// Complete flips the completion flag of a todo.
type Complete struct {
	ID          int64
	Persistence store.Persistence
}

// Do executes the toggle for the configured todo ID.
func (n *Complete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}

	c, err := controller.New(ctx, n.Persistence, route.All)
	if err != nil {
		return err
	}
	if _, ok := c.Find(n.ID); !ok {
		return fmt.Errorf("no todo with id %d", n.ID)
	}
	if err := c.Toggle(n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("todos")
	pp.List(c.Visible()...)
	pp.Pending(c.CountPending())

	return nil
}
