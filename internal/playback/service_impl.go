package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/llehouerou/simplicity/internal/player"
	"github.com/llehouerou/simplicity/internal/playlist"
)

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	mu sync.RWMutex

	player player.Interface
	seq    *playlist.Sequence
	opts   Options

	lastTrack    *playlist.Track
	lastIndex    int
	successor    *playlist.Track // took the slot of a removed playing track
	playErr      error // set by startTrack during the current call
	lastPrevious time.Time
	cancels      []func()

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// New creates a playback service driving p from seq.
// seq must not be mutated other than through the service afterwards.
func New(p player.Interface, seq *playlist.Sequence, opts Options) Service {
	if opts.BackWindow <= 0 {
		opts.BackWindow = DefaultBackWindow
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &serviceImpl{
		player:    p,
		seq:       seq,
		opts:      opts,
		lastIndex: -1,
	}
	s.cancels = append(s.cancels,
		seq.OnTrackChanged(s.startTrack),
		seq.OnStateChanged(func(st playlist.State) {
			s.emitQueue(QueueChange{State: st})
		}),
	)
	return s
}

// startTrack runs inside a sequence call, with s.mu held.
func (s *serviceImpl) startTrack(t *playlist.Track) {
	s.successor = nil
	err := s.player.Play(t.Path)

	index := s.seq.CurrentIndex()
	s.emitTrack(TrackChange{
		Previous:      s.lastTrack,
		Current:       t,
		PreviousIndex: s.lastIndex,
		Index:         index,
	})
	s.lastTrack, s.lastIndex = t, index

	if err != nil {
		s.playErr = fmt.Errorf("play %s: %w", t.Path, err)
		s.emitError(ErrorEvent{Operation: "play", Path: t.Path, Err: err})
	}
}

// mutate runs fn under the write lock, emits a StateChange if the transport
// state moved, and returns the error of any track start fn triggered.
func (s *serviceImpl) mutate(fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := fromPlayerState(s.player.State())
	s.playErr = nil
	fn()
	if cur := fromPlayerState(s.player.State()); cur != prev {
		s.emitState(StateChange{Previous: prev, Current: cur})
	}
	err := s.playErr
	s.playErr = nil
	return err
}

func (s *serviceImpl) mutateBool(fn func() bool) bool {
	var ok bool
	_ = s.mutate(func() { ok = fn() })
	return ok
}

// SetTracks replaces the sequence and starts its first track.
func (s *serviceImpl) SetTracks(tracks []*playlist.Track) error {
	return s.mutate(func() {
		if !s.seq.SetPlaybackList(tracks) {
			s.player.Stop()
		}
	})
}

func (s *serviceImpl) Enqueue(t *playlist.Track) bool {
	return s.mutateBool(func() bool { return s.seq.Enqueue(t) })
}

func (s *serviceImpl) EnqueueNext(t *playlist.Track) bool {
	return s.mutateBool(func() bool { return s.seq.EnqueueNext(t) })
}

func (s *serviceImpl) PlayFrom(t *playlist.Track) error {
	return s.mutate(func() { s.seq.PlayFrom(t) })
}

// Remove drops t from the sequence. Removing the current track does not
// interrupt its playback; when it finishes, the track that moved into its
// slot is played instead of being skipped.
func (s *serviceImpl) Remove(t *playlist.Track) bool {
	return s.mutateBool(func() bool {
		index := s.seq.IndexOf(t)
		wasCurrent := index >= 0 && index == s.seq.CurrentIndex()
		if !s.seq.Remove(t) {
			return false
		}
		if wasCurrent && index < s.seq.Len() {
			s.successor = s.seq.Current()
		}
		return true
	})
}

func (s *serviceImpl) Move(t *playlist.Track, newIndex int) bool {
	return s.mutateBool(func() bool { return s.seq.MoveAndAdjustQueue(t, newIndex) })
}

func (s *serviceImpl) Next() error {
	return s.mutate(func() { s.seq.Next() })
}

func (s *serviceImpl) Back() error {
	return s.mutate(func() { s.seq.Back() })
}

func (s *serviceImpl) PlayCurrent() error {
	return s.mutate(func() { s.seq.PlayCurrent() })
}

// Play resumes a paused track, or starts the current one when stopped.
func (s *serviceImpl) Play() error {
	return s.mutate(s.playLocked)
}

func (s *serviceImpl) playLocked() {
	switch s.player.State() {
	case player.Paused:
		s.player.Resume()
	case player.Playing:
	case player.Stopped:
		switch {
		case s.seq.Len() == 0:
			s.playErr = ErrEmptySequence
		case s.seq.Current() == nil:
			s.seq.Next()
		default:
			s.seq.PlayCurrent()
		}
	}
}

func (s *serviceImpl) Pause() error {
	return s.mutate(s.player.Pause)
}

// Toggle pauses or resumes, and starts playback when stopped.
func (s *serviceImpl) Toggle() error {
	return s.mutate(func() {
		if s.player.State() == player.Stopped {
			s.playLocked()
			return
		}
		s.player.Toggle()
	})
}

func (s *serviceImpl) Stop() error {
	return s.mutate(s.player.Stop)
}

// Restart plays the current track from the beginning.
func (s *serviceImpl) Restart() error {
	return s.mutate(s.restartLocked)
}

func (s *serviceImpl) restartLocked() {
	if s.player.State().IsActive() {
		s.player.SeekTo(0)
		return
	}
	s.seq.PlayCurrent()
}

// Previous restarts the current track, or goes back one track when called
// again within the back window.
func (s *serviceImpl) Previous() error {
	return s.mutate(func() {
		now := s.opts.Now()
		if !s.lastPrevious.IsZero() && now.Sub(s.lastPrevious) <= s.opts.BackWindow {
			s.lastPrevious = time.Time{}
			if !s.seq.Back() {
				s.restartLocked()
			}
			return
		}
		s.lastPrevious = now
		s.restartLocked()
	})
}

func (s *serviceImpl) Seek(delta time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player.State().IsActive() {
		s.player.Seek(delta)
	}
	return nil
}

func (s *serviceImpl) SeekTo(position time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player.State().IsActive() {
		s.player.SeekTo(max(position, 0))
	}
	return nil
}

// HandleFinished advances after the player reported the end of a track.
// At the end of the sequence playback stops.
func (s *serviceImpl) HandleFinished() error {
	return s.mutate(func() {
		if s.successor != nil && s.successor == s.seq.Current() {
			s.seq.PlayCurrent()
			return
		}
		if !s.seq.Next() {
			s.player.Stop()
		}
	})
}

func (s *serviceImpl) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player.SetVolume(level)
}

// State returns the current playback state.
func (s *serviceImpl) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fromPlayerState(s.player.State())
}

func (s *serviceImpl) IsPlaying() bool { return s.State() == StatePlaying }

func (s *serviceImpl) IsPaused() bool { return s.State() == StatePaused }

func (s *serviceImpl) IsStopped() bool { return s.State() == StateStopped }

func (s *serviceImpl) Position() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Position()
}

// Duration returns the player's duration, or the scanned duration when the
// player has none.
func (s *serviceImpl) Duration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d := s.player.Duration(); d > 0 {
		return d
	}
	if t := s.seq.Current(); t != nil {
		return t.Duration
	}
	return 0
}

func (s *serviceImpl) Volume() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Volume()
}

func (s *serviceImpl) FinishedChan() <-chan struct{} {
	return s.player.FinishedChan()
}

func (s *serviceImpl) CurrentTrack() *playlist.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.Current()
}

func (s *serviceImpl) Tracks() []*playlist.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.Tracks()
}

func (s *serviceImpl) CurrentIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.CurrentIndex()
}

func (s *serviceImpl) QueuedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.QueuedCount()
}

func (s *serviceImpl) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.Len()
}

func (s *serviceImpl) HasNext() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.HasNext()
}

func (s *serviceImpl) HasPrevious() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.HasPrevious()
}

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	if s.closed {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// Close detaches from the sequence and signals all subscribers.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
	s.mu.Unlock()

	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	return nil
}

func (s *serviceImpl) emitState(e StateChange) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendState(e)
	}
}

func (s *serviceImpl) emitTrack(e TrackChange) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendTrack(e)
	}
}

func (s *serviceImpl) emitQueue(e QueueChange) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendQueue(e)
	}
}

func (s *serviceImpl) emitError(e ErrorEvent) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendError(e)
	}
}
