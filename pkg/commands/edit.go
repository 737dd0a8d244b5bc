package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/edit"
	"tableflip.dev/todo/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	text := ""

	cmd := &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Replace a todo's title",
		Example: `
todo edit 1756629000000 buy oat milk
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a todo id and the new text")
			}
			var err error
			io.ID, err = options.ParseID(args[0])
			text = strings.Join(args[1:], " ")
			return err
		},

		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:          io.ID,
				Text:        text,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
