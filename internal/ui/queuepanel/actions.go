package queuepanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/simplicity/internal/playlist"
	"github.com/llehouerou/simplicity/internal/ui/action"
)

const source = "queue"

// PlayFrom requests playback to jump to Track.
type PlayFrom struct {
	Track *playlist.Track
}

// ActionType implements action.Action.
func (a PlayFrom) ActionType() string { return "queue.play_from" }

// Enqueue requests Track to be queued, at the front of the queued tracks
// when Next is set.
type Enqueue struct {
	Track *playlist.Track
	Next  bool
}

// ActionType implements action.Action.
func (a Enqueue) ActionType() string { return "queue.enqueue" }

// Remove requests Track to be taken out of the sequence.
type Remove struct {
	Track *playlist.Track
}

// ActionType implements action.Action.
func (a Remove) ActionType() string { return "queue.remove" }

// Move requests Track to be moved to index To.
type Move struct {
	Track *playlist.Track
	To    int
}

// ActionType implements action.Action.
func (a Move) ActionType() string { return "queue.move" }

func cmd(a action.Action) tea.Cmd {
	return action.Cmd(source, a)
}
