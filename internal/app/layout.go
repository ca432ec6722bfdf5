package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/simplicity/internal/ui/folderprompt"
	"github.com/llehouerou/simplicity/internal/ui/playerbar"
)

// NarrowThreshold is the width below which panels stack vertically.
const NarrowThreshold = 80

const statusHeight = 1

// IsNarrow reports whether panels are stacked.
func (m Model) IsNarrow() bool {
	return m.width < NarrowThreshold
}

// PanelsHeight returns the height left for the library and queue panels.
func (m Model) PanelsHeight() int {
	h := m.height - playerbar.Height - m.scanBar.Height() - statusHeight
	if m.prompt.Active() {
		h -= folderprompt.Height
	}
	if m.showHelp {
		h -= lipgloss.Height(m.fullHelpView())
	}
	return max(h, 0)
}

// layout sizes and focuses the panels for the current screen state.
func (m *Model) layout() {
	h := m.PanelsHeight()
	if m.IsNarrow() {
		top := h / 2
		m.library.SetSize(m.width, top)
		m.queue.SetSize(m.width, h-top)
	} else {
		left := m.width * 55 / 100
		m.library.SetSize(left, h)
		m.queue.SetSize(m.width-left, h)
	}

	m.library.SetFocused(m.focus == FocusLibrary)
	m.queue.SetFocused(m.focus == FocusQueue)
	m.help.Width = m.width
}
