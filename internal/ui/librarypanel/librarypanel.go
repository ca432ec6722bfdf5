// Package librarypanel lists the tracks of the scanned folder in scan order.
package librarypanel

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/simplicity/internal/keymap"
	"github.com/llehouerou/simplicity/internal/playlist"
	"github.com/llehouerou/simplicity/internal/ui"
	"github.com/llehouerou/simplicity/internal/ui/action"
	"github.com/llehouerou/simplicity/internal/ui/cursor"
	"github.com/llehouerou/simplicity/internal/ui/render"
	"github.com/llehouerou/simplicity/internal/ui/styles"
)

const source = "library"

// PlayFrom requests playback to start at Track.
type PlayFrom struct {
	Track *playlist.Track
}

// ActionType implements action.Action.
func (a PlayFrom) ActionType() string { return "library.play_from" }

// Enqueue requests Track to be queued, right after the current track when
// Next is set.
type Enqueue struct {
	Track *playlist.Track
	Next  bool
}

// ActionType implements action.Action.
func (a Enqueue) ActionType() string { return "library.enqueue" }

// Playing reports the track currently loaded in the player.
type Playing interface {
	CurrentTrack() *playlist.Track
}

// Model represents the library panel state.
type Model struct {
	ui.Base
	folder  string
	tracks  []*playlist.Track
	playing Playing
	cursor  cursor.Cursor
}

// New creates an empty library panel.
func New(playing Playing) Model {
	return Model{
		playing: playing,
		cursor:  cursor.New(ui.ScrollMargin),
	}
}

// SetTracks replaces the listed tracks after a scan of folder.
func (m *Model) SetTracks(folder string, tracks []*playlist.Track) {
	m.folder = folder
	m.tracks = tracks
	m.cursor.Reset()
}

// Len returns the number of listed tracks.
func (m Model) Len() int { return len(m.tracks) }

// Selected returns the track under the cursor, or nil.
func (m Model) Selected() *playlist.Track {
	if m.cursor.Pos() >= len(m.tracks) {
		return nil
	}
	return m.tracks[m.cursor.Pos()]
}

// HandleAction applies a key action. handled is false when the action is
// not meant for this panel.
func (m *Model) HandleAction(a keymap.Action) (cmd tea.Cmd, handled bool) {
	if m.cursor.HandleAction(a, len(m.tracks), m.ListHeight()) {
		return nil, true
	}

	var act action.Action
	track := m.Selected()
	switch a {
	case keymap.ActionSelect:
		act = PlayFrom{Track: track}
	case keymap.ActionEnqueue:
		act = Enqueue{Track: track}
	case keymap.ActionEnqueueNext:
		act = Enqueue{Track: track, Next: true}
	default:
		return nil, false
	}
	if track == nil {
		return nil, true
	}
	return action.Cmd(source, act), true
}

// View renders the library panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	width := m.InnerWidth()
	header := m.renderHeader(width)

	var current *playlist.Track
	if m.playing != nil {
		current = m.playing.CurrentTrack()
	}

	height := m.ListHeight()
	lines := make([]string, 0, height)
	for i := range height {
		idx := m.cursor.Offset() + i
		if idx >= len(m.tracks) {
			lines = append(lines, render.EmptyLine(width))
			continue
		}
		lines = append(lines, m.renderLine(idx, m.tracks[idx] == current, width))
	}

	content := header + "\n" + render.Separator(width) + "\n" + strings.Join(lines, "\n")
	return styles.PanelStyle(m.IsFocused()).Width(width).Render(content)
}

func (m Model) renderHeader(width int) string {
	if m.folder == "" {
		return styles.T().S().Muted.Render(render.Fit("No folder: press o to open one", width))
	}

	count := humanize.Comma(int64(len(m.tracks))) + " tracks"
	folderWidth := max(width-lipgloss.Width(count)-1, 0)
	return styles.T().S().Title.Render(render.Fit(m.folder, folderWidth)) + " " +
		styles.T().S().Muted.Render(count)
}

// renderLine renders "▶ Title        Artist      Album      3:04".
func (m Model) renderLine(idx int, playing bool, width int) string {
	t := m.tracks[idx]

	prefix := "  "
	if playing {
		prefix = "▶ "
	}

	duration := ""
	if t.Duration > 0 {
		duration = render.Duration(t.Duration)
	}
	const durationWidth = 8

	contentWidth := max(width-2-durationWidth, 0)
	titleWidth := contentWidth * 2 / 5
	artistWidth := contentWidth * 3 / 10
	albumWidth := contentWidth - titleWidth - artistWidth

	line := prefix +
		render.Fit(t.Title, titleWidth) +
		render.Fit(render.OrDefault(t.Artist, "Unknown Artist"), artistWidth) +
		render.Fit(render.OrDefault(t.Album, "Unknown Album"), albumWidth) +
		fmt.Sprintf("%*s", durationWidth, duration)
	line = render.Fit(line, width)

	style := styles.T().S().Base
	if playing {
		style = styles.T().S().Playing
	}
	if m.IsFocused() && idx == m.cursor.Pos() {
		style = styles.T().S().Cursor.Inherit(style)
	}
	return style.Render(line)
}
