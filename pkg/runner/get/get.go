package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/route"
	"tableflip.dev/todo/pkg/store"
)

type Get struct {
	ShowID      bool
	Route       route.Route
	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	c, err := controller.New(ctx, n.Persistence, n.Route)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title(n.Route.Name())
	pp.List(c.Visible()...)
	pp.Pending(c.CountPending())

	return nil
}
