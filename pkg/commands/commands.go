package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/todo/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "todo",
		Short: base.Wrap80("Todo lists on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addClear(topLevel)
	addCount(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}
