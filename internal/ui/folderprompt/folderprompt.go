// Package folderprompt asks for the folder to scan.
package folderprompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/simplicity/internal/ui/action"
	"github.com/llehouerou/simplicity/internal/ui/styles"
)

// Height is the rendered height of an open prompt, borders included.
const Height = 6

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// Model is a single-line folder path input.
type Model struct {
	input  textinput.Model
	active bool
}

// New creates a closed prompt.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "~/Music"
	ti.Prompt = "> "
	ti.CharLimit = 4096
	return Model{input: ti}
}

// Open shows the prompt pre-filled with initial.
func (m *Model) Open(initial string) tea.Cmd {
	m.active = true
	m.input.SetValue(initial)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Close hides the prompt.
func (m *Model) Close() {
	m.active = false
	m.input.Blur()
	m.input.Reset()
}

// Active reports whether the prompt is open.
func (m Model) Active() bool { return m.active }

// Value returns the text entered so far.
func (m Model) Value() string { return m.input.Value() }

// Update handles input while the prompt is open. Enter submits the trimmed
// path, Esc or an empty submission cancels.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			m.Close()
			return m, action.Cmd(source, Cancel{})
		case tea.KeyEnter:
			path := strings.TrimSpace(m.input.Value())
			m.Close()
			if path == "" {
				return m, action.Cmd(source, Cancel{})
			}
			return m, action.Cmd(source, Submit{Path: path})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt for the given outer width, or "" when closed.
func (m Model) View(width int) string {
	if !m.active {
		return ""
	}
	inner := max(width-4, 0)

	input := m.input
	input.Width = max(inner-lipgloss.Width(input.Prompt)-1, 1)

	content := titleStyle().Render("Open folder") + "\n" +
		input.View() + "\n\n" +
		hintStyle().Render("Enter: scan, Esc: cancel")

	return styles.PanelStyle(true).
		Padding(0, 1).
		Width(max(width-2, 0)).
		Render(content)
}
