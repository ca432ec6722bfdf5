package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/simplicity/internal/ui/playerbar"
	"github.com/llehouerou/simplicity/internal/ui/render"
)

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var panels string
	if m.IsNarrow() {
		panels = lipgloss.JoinVertical(lipgloss.Left, m.library.View(), m.queue.View())
	} else {
		panels = lipgloss.JoinHorizontal(lipgloss.Top, m.library.View(), m.queue.View())
	}

	parts := []string{panels}
	if m.prompt.Active() {
		parts = append(parts, m.prompt.View(m.width))
	}
	if m.scanBar.Active() {
		parts = append(parts, m.scanBar.View(m.width))
	}
	parts = append(parts, playerbar.Render(playerbar.NewState(m.svc), m.width))
	if m.showHelp {
		parts = append(parts, m.fullHelpView())
	}
	parts = append(parts, m.renderStatus())

	return enforceHeight(strings.Join(parts, "\n"), m.height)
}

func (m Model) fullHelpView() string {
	return m.help.FullHelpView(m.helpKeys.FullHelp())
}

// renderStatus renders the status message with the short help on the right.
func (m Model) renderStatus() string {
	h := m.help
	h.Width = max(m.width/2, 0)
	right := h.ShortHelpView(m.helpKeys.ShortHelp())

	left := render.Truncate(m.status.text, max(m.width-lipgloss.Width(right)-1, 0))
	return render.Row(m.status.style().Render(left), right, m.width)
}

// enforceHeight pads or truncates view to exactly height lines.
func enforceHeight(view string, height int) string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
