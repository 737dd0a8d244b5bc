package commands

import (
	"context"

	"github.com/spf13/cobra"

	teaui "tableflip.dev/todo/pkg/runner/tea"
	"tableflip.dev/todo/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Interactive terminal UI",
		Example: `
todo ui
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			err = teaui.Run(context.Background(), p)
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
