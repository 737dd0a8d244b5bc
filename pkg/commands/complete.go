package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/complete"
	"tableflip.dev/todo/pkg/store"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "complete <id>",
		Aliases: []string{"done", "toggle"},
		Short:   "Toggle a todo's completion",
		Example: `
todo complete 1756629000000
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a todo id")
			}
			var err error
			io.ID, err = options.ParseID(args[0])
			return err
		},

		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := complete.Complete{
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
