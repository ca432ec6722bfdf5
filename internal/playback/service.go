package playback

import (
	"errors"
	"time"

	"github.com/llehouerou/simplicity/internal/playlist"
)

// ErrEmptySequence is returned by Play when there is nothing to play.
var ErrEmptySequence = errors.New("playback sequence is empty")

// DefaultBackWindow is the double-press interval for Previous.
const DefaultBackWindow = 500 * time.Millisecond

// Options configures a Service.
type Options struct {
	// BackWindow is the maximum interval between two Previous calls for the
	// second one to go to the previous track instead of restarting.
	BackWindow time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Service defines the playback service contract.
//
// Track arguments are compared by identity: they must be the same
// *playlist.Track values that were passed to SetTracks.
type Service interface {
	// Sequence
	SetTracks(tracks []*playlist.Track) error
	Enqueue(t *playlist.Track) bool
	EnqueueNext(t *playlist.Track) bool
	PlayFrom(t *playlist.Track) error
	Remove(t *playlist.Track) bool
	Move(t *playlist.Track, newIndex int) bool
	Next() error
	Back() error
	PlayCurrent() error

	// Transport
	Play() error
	Pause() error
	Toggle() error
	Stop() error
	Restart() error
	Previous() error
	Seek(delta time.Duration) error
	SeekTo(position time.Duration) error
	HandleFinished() error
	SetVolume(level float64)

	// State queries
	State() State
	IsPlaying() bool
	IsPaused() bool
	IsStopped() bool
	Position() time.Duration
	Duration() time.Duration
	Volume() float64
	FinishedChan() <-chan struct{}

	// Sequence queries
	CurrentTrack() *playlist.Track
	Tracks() []*playlist.Track
	CurrentIndex() int
	QueuedCount() int
	Len() int
	HasNext() bool
	HasPrevious() bool

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
