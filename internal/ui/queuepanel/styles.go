package queuepanel

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/simplicity/internal/ui/styles"
)

const (
	playingSymbol = "▶"
	queuedSymbol  = "+"
)

func headerStyle() lipgloss.Style { return styles.T().S().Title }

func queuedHeaderStyle() lipgloss.Style { return styles.T().S().Queued }

func trackStyle() lipgloss.Style { return styles.T().S().Base }

func playingStyle() lipgloss.Style { return styles.T().S().Playing }

func queuedStyle() lipgloss.Style { return styles.T().S().Queued }

func playedStyle() lipgloss.Style { return styles.T().S().Subtle }

func cursorStyle() lipgloss.Style { return styles.T().S().Cursor }
