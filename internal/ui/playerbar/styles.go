package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/simplicity/internal/playback"
	"github.com/llehouerou/simplicity/internal/ui/styles"
)

func barStyle() lipgloss.Style { return styles.PanelStyle(false) }

func titleStyle() lipgloss.Style { return styles.T().S().Title }

func mutedStyle() lipgloss.Style { return styles.T().S().Muted }

func progressTimeStyle() lipgloss.Style { return styles.T().S().Muted }

func statusStyle(st playback.State) lipgloss.Style {
	if st == playback.StatePlaying {
		return styles.T().S().Playing
	}
	return styles.T().S().Muted
}
