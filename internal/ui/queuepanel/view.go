package queuepanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/simplicity/internal/playlist"
	"github.com/llehouerou/simplicity/internal/ui/render"
	"github.com/llehouerou/simplicity/internal/ui/styles"
)

// rowKind classifies a row relative to the current position.
type rowKind int

const (
	rowPlayed rowKind = iota
	rowCurrent
	rowQueued
	rowUpcoming
)

func classify(idx, current, queued int) rowKind {
	switch {
	case current < 0:
		return rowUpcoming
	case idx < current:
		return rowPlayed
	case idx == current:
		return rowCurrent
	case idx <= current+queued:
		return rowQueued
	default:
		return rowUpcoming
	}
}

// View renders the queue panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.InnerWidth()
	tracks := m.source.Tracks()
	current := m.source.CurrentIndex()
	queued := m.source.QueuedCount()

	header := m.renderHeader(len(tracks), current, queued, innerWidth)
	list := m.renderTrackList(tracks, current, queued, innerWidth)

	content := header + "\n" + render.Separator(innerWidth) + "\n" + list

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// renderHeader renders "Queue (2/14)" with the queued count on the right.
func (m Model) renderHeader(n, current, queued, width int) string {
	left := fmt.Sprintf("Queue (%d/%d)", max(current+1, 0), n)
	if queued == 0 {
		return headerStyle().Render(render.Fit(left, width))
	}

	right := fmt.Sprintf("%d queued", queued)
	leftWidth := max(width-lipgloss.Width(right), 0)
	return headerStyle().Render(render.Fit(left, leftWidth)) + queuedHeaderStyle().Render(right)
}

func (m Model) renderTrackList(tracks []*playlist.Track, current, queued, width int) string {
	height := m.ListHeight()
	lines := make([]string, 0, height)
	for i := range height {
		idx := m.cursor.Offset() + i
		if idx >= len(tracks) {
			lines = append(lines, render.EmptyLine(width))
			continue
		}
		lines = append(lines, m.renderTrackLine(tracks[idx], idx, classify(idx, current, queued), width))
	}
	return strings.Join(lines, "\n")
}

// renderTrackLine renders "▶ Title            Artist     3:04".
func (m Model) renderTrackLine(t *playlist.Track, idx int, kind rowKind, width int) string {
	prefix := "  "
	switch kind {
	case rowCurrent:
		prefix = playingSymbol + " "
	case rowQueued:
		prefix = queuedSymbol + " "
	case rowPlayed, rowUpcoming:
	}

	duration := ""
	if t.Duration > 0 {
		duration = render.Duration(t.Duration)
	}
	durationWidth := 8

	contentWidth := max(width-2-durationWidth, 0)
	titleWidth := contentWidth * 3 / 5
	artistWidth := contentWidth - titleWidth

	line := prefix +
		render.Fit(t.Title, titleWidth) +
		render.Fit(render.OrDefault(t.Artist, "Unknown Artist"), artistWidth) +
		fmt.Sprintf("%*s", durationWidth, duration)

	return m.rowStyle(idx, kind).Render(render.Fit(line, width))
}

func (m Model) rowStyle(idx int, kind rowKind) lipgloss.Style {
	var style lipgloss.Style
	switch kind {
	case rowCurrent:
		style = playingStyle()
	case rowQueued:
		style = queuedStyle()
	case rowPlayed:
		style = playedStyle()
	case rowUpcoming:
		style = trackStyle()
	}
	if m.IsFocused() && idx == m.cursor.Pos() {
		return cursorStyle().Inherit(style)
	}
	return style
}
