package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/runner/count"
	"tableflip.dev/todo/pkg/store"
)

func addCount(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the pending todo count",
		Example: `
todo count
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := count.Count{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
