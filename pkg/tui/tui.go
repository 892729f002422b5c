// Package tui is the full-screen checklist detail view. It drives the
// same optimistic mutator the one-shot commands use and refreshes itself
// when another process writes to the override store.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/checklist/pkg/checklist"
	"tableflip.dev/checklist/pkg/mutate"
	"tableflip.dev/checklist/pkg/palette"
	"tableflip.dev/checklist/pkg/store"
	"tableflip.dev/checklist/pkg/view"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeRename
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle = lipgloss.NewStyle().Bold(true)
	doneStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
)

// Model is the bubbletea model for one checklist.
type Model struct {
	checklistID string
	mutator     *mutate.Mutator
	events      <-chan store.Event

	list    checklist.Checklist
	cursor  int
	mode    mode
	input   textinput.Model
	loading bool
	err     string
}

// NewModel builds the detail view model around a checklist-scoped
// mutator.
func NewModel(checklistID string, m *mutate.Mutator, events <-chan store.Event) Model {
	ti := textinput.New()
	ti.Placeholder = "Add item..."
	ti.CharLimit = 200
	return Model{
		checklistID: checklistID,
		mutator:     m,
		events:      events,
		input:       ti,
		loading:     true,
	}
}

type loadedMsg struct{}

type failedMsg struct{ err error }

type storeChangedMsg struct{ ok bool }

func (m Model) reload() tea.Cmd {
	return func() tea.Msg {
		if err := m.mutator.Reload(context.Background()); err != nil {
			return failedMsg{err: err}
		}
		return loadedMsg{}
	}
}

func (m Model) waitForStore() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		_, ok := <-m.events
		return storeChangedMsg{ok: ok}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.reload(), m.waitForStore())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case loadedMsg:
		m.loading = false
		m.syncFromModel()
		return m, nil

	case failedMsg:
		m.loading = false
		m.err = msg.err.Error()
		return m, nil

	case storeChangedMsg:
		if !msg.ok {
			// Watcher closed; stop resubscribing.
			m.events = nil
			return m, nil
		}
		return m, tea.Batch(m.reload(), m.waitForStore())

	case tea.KeyMsg:
		if m.mode != modeList {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m *Model) syncFromModel() {
	if c, ok := m.mutator.Model.Find(m.checklistID); ok {
		m.list = c
	}
	m.err = m.mutator.Model.Error()
	if m.cursor >= len(m.list.Items) {
		m.cursor = len(m.list.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.list.Items)-1 {
			m.cursor++
		}

	case " ", "x":
		if it, ok := m.current(); ok {
			return m, m.mutation(func(ctx context.Context) error {
				return m.mutator.ToggleItem(ctx, m.checklistID, it.ID, !it.Completed)
			})
		}

	case "a":
		m.mode = modeAdd
		m.input.Placeholder = "Add item..."
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "r":
		if it, ok := m.current(); ok {
			m.mode = modeRename
			m.input.Placeholder = it.Name
			m.input.SetValue(it.Name)
			m.input.Focus()
			return m, textinput.Blink
		}

	case "d":
		if it, ok := m.current(); ok {
			return m, m.mutation(func(ctx context.Context) error {
				return m.mutator.DeleteItem(ctx, m.checklistID, it.ID)
			})
		}

	case "R":
		m.loading = true
		return m, m.reload()
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.Blur()
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = modeList
		m.input.Blur()
		if name == "" {
			return m, nil
		}
		if mode == modeAdd {
			return m, m.mutation(func(ctx context.Context) error {
				return m.mutator.CreateItem(ctx, m.checklistID, name)
			})
		}
		if it, ok := m.current(); ok {
			return m, m.mutation(func(ctx context.Context) error {
				return m.mutator.RenameItem(ctx, m.checklistID, it.ID, name)
			})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// mutation runs one mutator operation off the UI loop. The mutator
// already handles rollback-by-reload; the UI just resyncs afterwards.
func (m Model) mutation(op func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		// Errors surface through the model's banner; the optimistic
		// state or the rolled-back state is what we render either way.
		_ = op(context.Background())
		return loadedMsg{}
	}
}

func (m Model) current() (checklist.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.list.Items) {
		return checklist.Item{}, false
	}
	return m.list.Items[m.cursor], true
}

func (m Model) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(faintStyle.Render("Loading checklist..."))
		b.WriteString("\n")
		return b.String()
	}

	title := palette.Style(m.list.Color).Inherit(titleStyle).Render(m.list.Name)
	b.WriteString(title)
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(errStyle.Render("! " + m.err))
		b.WriteString("\n\n")
	}

	if len(m.list.Items) == 0 {
		b.WriteString(faintStyle.Render("No items in this checklist yet"))
		b.WriteString("\n")
	}

	for i, it := range m.list.Items {
		cursor := "  "
		if i == m.cursor && m.mode == modeList {
			cursor = cursorStyle.Render("> ")
		}
		line := "● " + it.Name
		if it.Completed {
			line = doneStyle.Render("✘ " + it.Name)
		}
		b.WriteString(cursor + line + "\n")
	}

	completed, total := m.list.Counts()
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("%d of %d completed · %d%% done",
		completed, total, view.Percent(completed, total))))
	b.WriteString("\n\n")

	if m.mode != modeList {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else {
		b.WriteString(faintStyle.Render("space toggle · a add · r rename · d delete · R refresh · q quit"))
		b.WriteString("\n")
	}

	return b.String()
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, checklistID string, m *mutate.Mutator, overrides store.Overrides) error {
	events, err := overrides.Watch(ctx)
	if err != nil {
		// The view still works without live refresh.
		events = nil
	}
	p := tea.NewProgram(NewModel(checklistID, m, events), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
