package clear

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/route"
	"tableflip.dev/todo/pkg/store"
)

// Clear drops every completed todo from the list.
type Clear struct {
	Route       route.Route
	Persistence store.Persistence
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not clear, no persistence")
	}

	c, err := controller.New(ctx, n.Persistence, n.Route)
	if err != nil {
		return err
	}
	if err := c.ClearCompleted(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(n.Route.Name())
	pp.List(c.Visible()...)
	pp.Pending(c.CountPending())

	return nil
}
