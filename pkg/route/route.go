// Package route defines the view filter selector for todo lists.
package route

import (
	"strings"

	"tableflip.dev/todo/pkg/todo"
)

// Route identifies which subset of the list a view shows.
type Route string

const (
	// All shows every todo.
	All Route = "/"
	// Completed shows completed todos only.
	Completed Route = "/completed"
	// Pending shows incomplete todos only.
	Pending Route = "/pending"
)

// AllRoutes returns the supported routes in display order.
func AllRoutes() []Route {
	return []Route{All, Pending, Completed}
}

// Parse maps a raw path to a Route. Unrecognized values behave as All.
func Parse(raw string) Route {
	switch Route(strings.TrimSpace(raw)) {
	case Completed:
		return Completed
	case Pending:
		return Pending
	default:
		return All
	}
}

// Matches reports whether the todo belongs on this route.
func (r Route) Matches(t todo.Todo) bool {
	switch r {
	case Completed:
		return t.Completed
	case Pending:
		return !t.Completed
	default:
		return true
	}
}

// Apply filters the list down to the todos visible on this route. The result
// is always a fresh slice; order is preserved.
func (r Route) Apply(list []todo.Todo) []todo.Todo {
	out := make([]todo.Todo, 0, len(list))
	for _, t := range list {
		if r.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Name returns a short human label for the route.
func (r Route) Name() string {
	switch r {
	case Completed:
		return "completed"
	case Pending:
		return "pending"
	default:
		return "all"
	}
}
