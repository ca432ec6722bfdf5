package player

import "time"

// Transport starts and stops audio files.
type Transport interface {
	Play(path string) error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State
	// FinishedChan receives once per track that reaches its end on its own.
	FinishedChan() <-chan struct{}
}

// Clock exposes and moves the position within the loaded track.
type Clock interface {
	Position() time.Duration
	Duration() time.Duration
	Seek(delta time.Duration)
	SeekTo(pos time.Duration)
}

// Mixer controls output level, in the range [0, 1].
type Mixer interface {
	SetVolume(level float64)
	Volume() float64
}

// Interface is everything the playback service needs from an audio backend.
// Player and Mock both satisfy it.
type Interface interface {
	Transport
	Clock
	Mixer
}

var (
	_ Interface = (*Player)(nil)
	_ Interface = (*Mock)(nil)
)
