package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zobe03/se-todo-app/internal/category"
	"github.com/zobe03/se-todo-app/internal/model"
	"github.com/zobe03/se-todo-app/internal/todo"
)

type appState int

const (
	stateList appState = iota
	stateAdd
)

// filterView is a named task-list view the user can cycle through.
type filterView struct {
	name string
	list func(*todo.Controller) []model.Task
}

var filterViews = []filterView{
	{"all", func(c *todo.Controller) []model.Task { return c.Todos() }},
	{"open", func(c *todo.Controller) []model.Task { return c.OpenTodos() }},
	{"completed", func(c *todo.Controller) []model.Task { return c.CompletedTodos() }},
	{"overdue", func(c *todo.Controller) []model.Task { return c.Overdue() }},
	{"today", func(c *todo.Controller) []model.Task { return c.DueToday() }},
	{"this week", func(c *todo.Controller) []model.Task { return c.DueThisWeek() }},
}

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true)
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Filter key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:    key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a/n", "add")),
		Toggle: key.NewBinding(key.WithKeys("enter", "x"), key.WithHelp("enter/x", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Filter: key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f/tab", "filter")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the top-level bubbletea model. It is a thin shell: every action
// is a single controller call, and the view renders what the controllers
// return.
type Model struct {
	todos      *todo.Controller
	categories *category.Controller

	state   appState
	keys    keyMap
	input   textinput.Model
	visible []model.Task
	cursor  int
	filter  int
	errMsg  string
	width   int
	height  int
}

func NewModel(todos *todo.Controller, categories *category.Controller) Model {
	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.CharLimit = model.MaxTitleLength

	m := Model{
		todos:      todos,
		categories: categories,
		keys:       newKeyMap(),
		input:      ti,
	}
	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) reload() {
	m.visible = filterViews[m.filter].list(m.todos)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.state {
		case stateAdd:
			return m.updateAdd(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Filter):
		m.filter = (m.filter + 1) % len(filterViews)
		m.cursor = 0
		m.reload()
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(m.visible) {
			m.todos.ToggleCompletion(m.visible[m.cursor].ID)
			m.todos.HandleRecurring()
			m.reload()
		}
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(m.visible) {
			m.todos.Delete(m.visible[m.cursor].ID)
			m.reload()
		}
	case key.Matches(msg, m.keys.Add):
		m.state = stateAdd
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.state = stateList
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		_, err := m.todos.Create(todo.CreateParams{Title: m.input.Value()})
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.state = stateList
		m.input.Blur()
		m.reload()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("todos"))
	b.WriteString(statusStyle.Render(fmt.Sprintf("  [%s]", filterViews[m.filter].name)))
	b.WriteString("\n\n")

	if m.state == stateAdd {
		b.WriteString("New task: " + m.input.View() + "\n")
		if m.errMsg != "" {
			b.WriteString(errorStyle.Render(m.errMsg) + "\n")
		}
		b.WriteString(statusStyle.Render("enter: save · esc: cancel"))
		return appStyle.Render(b.String())
	}

	if len(m.visible) == 0 {
		b.WriteString(statusStyle.Render("nothing here") + "\n")
	}
	for i, t := range m.visible {
		b.WriteString(m.renderTask(i, t))
		b.WriteString("\n")
	}

	stats := m.todos.Stats()
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"%d total · %d open · %d done · %d overdue",
		stats.Total, stats.Open, stats.Completed, stats.Overdue)))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render("a: add · enter: toggle · d: delete · f: filter · q: quit"))
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	return appStyle.Render(b.String())
}

func (m Model) renderTask(i int, t model.Task) string {
	cursor := "  "
	if i == m.cursor {
		cursor = cursorStyle.Render("> ")
	}

	check := "[ ]"
	if t.Status == model.StatusCompleted {
		check = "[x]"
	}

	line := fmt.Sprintf("%s %s", check, t.Title)
	switch {
	case t.Status == model.StatusCompleted:
		line = doneStyle.Render(line)
	case t.IsOverdue():
		line = overdueStyle.Render(line)
	}

	if t.DueDate != nil {
		line += statusStyle.Render("  " + t.DueDate.String())
	}
	for _, name := range t.Categories {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
		if cat, ok := m.categories.GetByName(name); ok {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color))
		}
		line += " " + style.Render("#"+name)
	}

	return cursor + line
}
