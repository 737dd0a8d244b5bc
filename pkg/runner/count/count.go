package count

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/route"
	"tableflip.dev/todo/pkg/store"
)

// Count prints the number of pending todos. The output is a bare number so
// it can feed shell prompts and scripts.
type Count struct {
	Persistence store.Persistence
}

func (n *Count) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not count, no persistence")
	}

	c, err := controller.New(ctx, n.Persistence, route.All)
	if err != nil {
		return err
	}
	fmt.Println(c.CountPending())
	return nil
}
