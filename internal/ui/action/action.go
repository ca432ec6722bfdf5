// Package action defines how UI components report user intent to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a component asks the app to do.
// ActionType is a stable identifier used in logs.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that raised it.
type Msg struct {
	Source string // "library", "queue", "folderprompt"
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd returns a command delivering a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
