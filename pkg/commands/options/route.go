// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/route"
)

// RouteOptions captures the view selection flags shared by list-style
// commands.
type RouteOptions struct {
	Completed bool
	Pending   bool
}

// AddRouteArgs wires the view selection flags on the provided command.
func AddRouteArgs(cmd *cobra.Command, o *RouteOptions) {
	cmd.Flags().BoolVar(&o.Completed, "completed", false,
		"Show completed todos only.")
	cmd.Flags().BoolVar(&o.Pending, "pending", false,
		"Show pending todos only.")
}

// Route resolves the flags to a route. Both flags unset (or both set) means
// the default view.
func (o *RouteOptions) Route() route.Route {
	switch {
	case o.Completed && o.Pending:
		return route.All
	case o.Completed:
		return route.Completed
	case o.Pending:
		return route.Pending
	default:
		return route.All
	}
}
