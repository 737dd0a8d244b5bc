package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/add"
	"tableflip.dev/todo/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	text := ""

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a todo",
		Example: `
todo add buy milk
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the todo text")
			}
			text = strings.Join(args, " ")
			return nil
		},

		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Text:        text,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
