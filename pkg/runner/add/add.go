package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/route"
	"tableflip.dev/todo/pkg/store"
)

type Add struct {
	Text        string
	ShowID      bool
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	c, err := controller.New(ctx, n.Persistence, route.All)
	if err != nil {
		return err
	}
	if err := c.Add(n.Text, controller.KeyEnter); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title("todos")
	pp.List(c.Visible()...)
	pp.Pending(c.CountPending())

	return nil
}
