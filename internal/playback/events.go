package playback

import "github.com/llehouerou/simplicity/internal/playlist"

// StateChange is emitted when the transport state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted whenever the sequence asks for a track to start,
// including a restart of the same track through PlayCurrent.
//
// Not emitted when removing the current track: playback of the removed
// file continues until the next navigation.
type TrackChange struct {
	Previous      *playlist.Track
	Current       *playlist.Track
	PreviousIndex int
	Index         int
}

// QueueChange is emitted after any change to the sequence order, the
// current index or the queued count.
type QueueChange struct {
	playlist.State
}

// ErrorEvent is emitted when an error occurs during playback.
type ErrorEvent struct {
	Operation string // e.g., "play", "seek"
	Path      string // track path if applicable
	Err       error
}
