package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/simplicity/internal/ui/styles"
)

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarning
	statusError
)

// status is the one-line message shown at the bottom of the screen.
type status struct {
	text  string
	level statusLevel
}

func (s *status) setInfo(text string) { *s = status{text: text, level: statusInfo} }

func (s *status) setWarning(text string) { *s = status{text: text, level: statusWarning} }

// setError keeps the previous message when text is empty.
func (s *status) setError(text string) {
	if text == "" {
		return
	}
	*s = status{text: text, level: statusError}
}

func (s status) style() lipgloss.Style {
	switch s.level {
	case statusError:
		return styles.T().S().Error
	case statusWarning:
		return styles.T().S().Warning
	case statusInfo:
	}
	return styles.T().S().Muted
}
