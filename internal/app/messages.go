package app

import (
	"time"

	"github.com/llehouerou/simplicity/internal/playback"
	"github.com/llehouerou/simplicity/internal/scanner"
)

// TickMsg is sent every second while playing to refresh the position.
type TickMsg time.Time

// TrackFinishedMsg is sent when the player reached the end of a track.
type TrackFinishedMsg struct{}

// ScanProgressMsg wraps a progress report of scan ID.
type ScanProgressMsg struct {
	ID       int
	Progress scanner.Progress
}

// ScanDoneMsg is sent when scan ID returned.
type ScanDoneMsg struct {
	ID     int
	Folder string
	Result scanner.Result
	Err    error
}

// ServiceStateMsg wraps a transport state change.
type ServiceStateMsg playback.StateChange

// ServiceTrackMsg wraps a track change.
type ServiceTrackMsg playback.TrackChange

// ServiceQueueMsg wraps a sequence change.
type ServiceQueueMsg playback.QueueChange

// ServiceErrorMsg wraps a playback error.
type ServiceErrorMsg playback.ErrorEvent

// ServiceClosedMsg is sent once the playback service is closed.
type ServiceClosedMsg struct{}

// NotifyErrorMsg reports a failed desktop notification.
type NotifyErrorMsg struct {
	Err error
}

// StderrMsg carries a line written to stderr by a C library.
type StderrMsg struct {
	Line string
}
