// Package printers renders todo lists for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/todo/pkg/todo"
)

const (
	pendingGlyph = "●"
	doneGlyph    = "✘"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("1756600000000  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Pending prints the incomplete-item footer.
func (pp *PrettyPrint) Pending(count int) {
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = c.Print(spacing)
	}
	switch count {
	case 1:
		_, _ = c.Println("1 item left")
	default:
		_, _ = c.Printf("%d items left\n", count)
	}
}

// List prints one row per todo: id (optional), completion glyph, title.
// Completed rows render faint.
func (pp *PrettyPrint) List(todos ...todo.Todo) {
	if len(todos) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	done := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, t := range todos {
		mark, title := pendingGlyph, t.Title
		if t.Completed {
			mark = doneGlyph
			title = done.Sprint(title)
		}
		if pp.ShowID {
			tbl.AddRow(y.Sprintf("%d", t.ID), mark, title)
		} else {
			tbl.AddRow(mark, title)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
