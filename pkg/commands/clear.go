package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/clear"
	"tableflip.dev/todo/pkg/store"
)

func addClear(topLevel *cobra.Command) {
	ro := &options.RouteOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all completed todos",
		Example: `
todo clear
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := clear.Clear{
				Route:       ro.Route(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddRouteArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
