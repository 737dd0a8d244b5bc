package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/get"
	"tableflip.dev/todo/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	ro := &options.RouteOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "List todos for a view",
		Example: `
todo get
todo get --pending
todo get --completed --show-id
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Route:       ro.Route(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddRouteArgs(cmd, ro)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
