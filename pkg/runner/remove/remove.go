package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/route"
	"tableflip.dev/todo/pkg/store"
)

// Remove deletes a todo permanently.
type Remove struct {
	ID          int64
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	c, err := controller.New(ctx, n.Persistence, route.All)
	if err != nil {
		return err
	}
	if err := c.Delete(n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("todos")
	pp.List(c.Visible()...)
	pp.Pending(c.CountPending())

	return nil
}
