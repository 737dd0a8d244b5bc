package teaui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/route"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/todo"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeEdit
)

// todoItem adapts a todo for the bubbles list.
type todoItem struct{ t todo.Todo }

func (it todoItem) Title() string {
	if it.t.Completed {
		return doneStyle.Render("✘ " + it.t.Title)
	}
	return "● " + it.t.Title
}
func (it todoItem) Description() string { return "" }
func (it todoItem) FilterValue() string { return it.t.Title }

var (
	doneStyle      = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	activeTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// messages
type errMsg struct{ err error }
type storeChangedMsg struct{}

// Model contains UI state.
type Model struct {
	ctl    *controller.Controller
	ctx    context.Context
	events <-chan store.Event

	mode   mode
	routes []route.Route

	list  list.Model
	input textinput.Model

	status string

	termWidth  int
	termHeight int
}

// New creates a UI model backed by the controller.
func New(ctx context.Context, ctl *controller.Controller, events <-chan store.Event) Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New([]list.Item{}, d, 60, 20)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)

	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := Model{
		ctl:    ctl,
		ctx:    ctx,
		events: events,
		mode:   modeNormal,
		routes: route.AllRoutes(),
		list:   l,
		input:  ti,
		status: "tab switch view, o add, i edit, x toggle, d delete, C clear done, q quit",
	}
	m.syncItems()
	return m
}

// Init subscribes to store changes.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		if _, ok := <-events; ok {
			return storeChangedMsg{}
		}
		return nil
	}
}

// syncItems rebuilds the visible list from the controller.
func (m *Model) syncItems() {
	visible := m.ctl.Visible()
	items := make([]list.Item, 0, len(visible))
	for _, t := range visible {
		items = append(items, todoItem{t: t})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

func (m *Model) selected() (todo.Todo, bool) {
	sel := m.list.SelectedItem()
	if sel == nil {
		return todo.Todo{}, false
	}
	it, ok := sel.(todoItem)
	return it.t, ok
}

func (m *Model) switchRoute(step int) {
	cur := 0
	for i, r := range m.routes {
		if r == m.ctl.Route() {
			cur = i
			break
		}
	}
	next := (cur + step + len(m.routes)) % len(m.routes)
	m.ctl.SetRoute(m.routes[next])
	m.syncItems()
}

func (m *Model) fail(cmds *[]tea.Cmd, err error) {
	*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case storeChangedMsg:
		if _, editing := m.ctl.Editing(); !editing {
			if err := m.ctl.Reload(m.ctx); err != nil {
				m.status = "ERR: " + err.Error()
			} else {
				m.syncItems()
				m.status = "Reloaded"
			}
		}
		cmds = append(cmds, m.waitForChange())
	case tea.KeyPressMsg:
		switch m.mode {
		case modeInsert:
			switch msg.String() {
			case "enter":
				if err := m.ctl.Add(m.input.Value(), controller.KeyEnter); err != nil {
					m.fail(&cmds, err)
				} else {
					m.status = "Added"
				}
				m.leaveInput()
				m.syncItems()
				skipListRouting = true
			case "esc":
				// The candidate is constructed and dropped; the list still
				// flushes.
				if err := m.ctl.Add(m.input.Value(), controller.KeyEscape); err != nil {
					m.fail(&cmds, err)
				} else {
					m.status = "Add cancelled"
				}
				m.leaveInput()
				skipListRouting = true
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeEdit:
			switch msg.String() {
			case "enter":
				if err := m.ctl.CommitEdit(m.input.Value(), controller.KeyEnter); err != nil {
					m.fail(&cmds, err)
				} else {
					m.status = "Edited"
				}
				m.leaveInput()
				m.syncItems()
				skipListRouting = true
			case "esc":
				// Edit mode ends without a flush; the retitle stays in
				// memory until the next one.
				if err := m.ctl.CommitEdit(m.input.Value(), controller.KeyEscape); err != nil {
					m.fail(&cmds, err)
				} else {
					m.status = "Edit cancelled"
				}
				m.leaveInput()
				m.syncItems()
				skipListRouting = true
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			switch msg.String() {
			case "tab":
				m.switchRoute(1)
				skipListRouting = true
			case "shift+tab":
				m.switchRoute(-1)
				skipListRouting = true

			// add
			case "o", "a":
				m.mode = modeInsert
				m.input.Placeholder = "What needs to be done?"
				m.input.SetValue("")
				if cmd := m.input.Focus(); cmd != nil {
					cmds = append(cmds, cmd)
				}
				cmds = append(cmds, textinput.Blink)

			// edit
			case "i", "e":
				if t, ok := m.selected(); ok {
					if m.ctl.SelectForEdit(t.ID) {
						m.mode = modeEdit
						m.input.Placeholder = "Edit title"
						m.input.SetValue(t.Title)
						m.input.CursorEnd()
						if cmd := m.input.Focus(); cmd != nil {
							cmds = append(cmds, cmd)
						}
						cmds = append(cmds, textinput.Blink)
					}
				}

			// toggle
			case "x", "space", " ":
				if t, ok := m.selected(); ok {
					if err := m.ctl.Toggle(t.ID); err != nil {
						m.fail(&cmds, err)
					} else {
						m.status = "Toggled"
						m.syncItems()
					}
				}

			// delete
			case "d":
				if t, ok := m.selected(); ok {
					if err := m.ctl.Delete(t.ID); err != nil {
						m.fail(&cmds, err)
					} else {
						m.status = "Deleted"
						m.syncItems()
					}
				}

			case "C":
				if err := m.ctl.ClearCompleted(); err != nil {
					m.fail(&cmds, err)
				} else {
					m.status = "Cleared completed"
					m.syncItems()
				}

			case "r":
				if err := m.ctl.Reload(m.ctx); err != nil {
					m.fail(&cmds, err)
				} else {
					m.status = "Reloaded"
					m.syncItems()
				}

			case "q", "ctrl+c":
				cmds = append(cmds, tea.Quit)
				skipListRouting = true
			}
		}
	}

	if m.mode == modeNormal && !skipListRouting {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) leaveInput() {
	m.mode = modeNormal
	m.input.Reset()
	m.input.Blur()
}

// View renders the tabs, the list, and an optional input line.
func (m Model) View() string {
	tabs := make([]string, 0, len(m.routes))
	for _, r := range m.routes {
		label := r.Name()
		if r == m.ctl.Route() {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	header := strings.Join(tabs, tabStyle.Render(" · "))

	body := header + "\n\n" + m.list.View()

	switch m.mode {
	case modeInsert:
		body += "\n\nAdd: " + m.input.View()
	case modeEdit:
		body += "\n\nEdit: " + m.input.View()
	}

	left := m.ctl.CountPending()
	items := "items"
	if left == 1 {
		items = "item"
	}
	footer := statusStyle.Render(fmt.Sprintf("%d %s left · %s", left, items, m.status))

	return body + "\n\n" + footer
}

// applySizes recalculates the list size from the terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	width := m.termWidth - 2
	if width < 20 {
		width = 20
	}
	// Leave room for the tab header, input line, and footer.
	height := m.termHeight - 6
	if height < 5 {
		height = 5
	}
	m.list.SetSize(width, height)
}

// Run launches the Bubble Tea UI over the given persistence.
func Run(ctx context.Context, p store.Persistence) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctl, err := controller.New(ctx, p, route.All)
	if err != nil {
		return err
	}

	events, err := p.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch store: %w", err)
	}

	prog := tea.NewProgram(New(ctx, ctl, events), tea.WithAltScreen())
	_, err = prog.Run()
	return err
}
