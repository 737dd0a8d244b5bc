package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/route"
	"tableflip.dev/todo/pkg/store"
)

// Edit replaces the title of a todo. The CLI always commits; cancel
// semantics only exist in the interactive UI.
type Edit struct {
	ID          int64
	Text        string
	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	c, err := controller.New(ctx, n.Persistence, route.All)
	if err != nil {
		return err
	}
	if !c.SelectForEdit(n.ID) {
		return fmt.Errorf("no todo with id %d", n.ID)
	}
	if err := c.CommitEdit(n.Text, controller.KeyEnter); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("todos")
	pp.List(c.Visible()...)

	return nil
}
