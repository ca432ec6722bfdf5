// Package queuepanel renders the playback sequence: already played tracks,
// the current track, the queued tracks and the natural remainder.
package queuepanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/simplicity/internal/keymap"
	"github.com/llehouerou/simplicity/internal/playlist"
	"github.com/llehouerou/simplicity/internal/ui"
	"github.com/llehouerou/simplicity/internal/ui/cursor"
)

// Source is the read side of the playback sequence.
type Source interface {
	Tracks() []*playlist.Track
	CurrentIndex() int
	QueuedCount() int
}

// Model represents the queue panel state.
type Model struct {
	ui.Base
	source Source
	cursor cursor.Cursor
}

// New creates a queue panel over source.
func New(source Source) Model {
	return Model{
		source: source,
		cursor: cursor.New(ui.ScrollMargin),
	}
}

// Cursor returns the cursor row.
func (m Model) Cursor() int {
	return m.cursor.Pos()
}

// HandleAction applies a key action. The returned command carries the
// requested sequence change; the panel never mutates the sequence itself.
// handled is false when the action is not meant for this panel.
func (m *Model) HandleAction(a keymap.Action) (c tea.Cmd, handled bool) {
	tracks := m.source.Tracks()
	n := len(tracks)
	height := m.ListHeight()

	if m.cursor.HandleAction(a, n, height) {
		return nil, true
	}

	if a == keymap.ActionJumpCurrent {
		m.SyncCursor()
		return nil, true
	}

	pos := m.cursor.Pos()
	if pos >= n {
		return nil, isTrackAction(a)
	}
	track := tracks[pos]

	switch a {
	case keymap.ActionSelect:
		return cmd(PlayFrom{Track: track}), true
	case keymap.ActionEnqueue:
		return cmd(Enqueue{Track: track}), true
	case keymap.ActionEnqueueNext:
		return cmd(Enqueue{Track: track, Next: true}), true
	case keymap.ActionDelete:
		return cmd(Remove{Track: track}), true
	case keymap.ActionMoveItemDown:
		if pos+1 >= n {
			return nil, true
		}
		m.cursor.Move(1, n, height)
		return cmd(Move{Track: track, To: pos + 1}), true
	case keymap.ActionMoveItemUp:
		if pos == 0 {
			return nil, true
		}
		m.cursor.Move(-1, n, height)
		return cmd(Move{Track: track, To: pos - 1}), true
	}
	return nil, false
}

func isTrackAction(a keymap.Action) bool {
	switch a {
	case keymap.ActionSelect, keymap.ActionEnqueue, keymap.ActionEnqueueNext,
		keymap.ActionDelete, keymap.ActionMoveItemDown, keymap.ActionMoveItemUp:
		return true
	}
	return false
}

// SyncCursor moves the cursor to the current track and centers it.
func (m *Model) SyncCursor() {
	n := len(m.source.Tracks())
	idx := m.source.CurrentIndex()
	if idx < 0 || idx >= n {
		return
	}
	m.cursor.Jump(idx, n, m.ListHeight())
	m.cursor.Center(n, m.ListHeight())
}

// Refresh keeps the cursor valid after the sequence changed size.
func (m *Model) Refresh() {
	n := len(m.source.Tracks())
	m.cursor.ClampToBounds(n)
	m.cursor.EnsureVisible(n, m.ListHeight())
}
