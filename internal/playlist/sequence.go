package playlist

// State is a snapshot of the sequence position, passed to state listeners.
type State struct {
	CurrentIndex int // -1 if nothing selected
	QueuedCount  int
	Len          int
}

// QueueStart returns the index of the first queued track.
func (s State) QueueStart() int {
	return s.CurrentIndex + 1
}

// QueueEnd returns the index one past the last queued track.
func (s State) QueueEnd() int {
	return s.CurrentIndex + 1 + s.QueuedCount
}

type trackListener struct {
	id int
	fn func(*Track)
}

type stateListener struct {
	id int
	fn func(State)
}

// Sequence is the ordered list of tracks being played, the current position
// within it, and the size of the queued segment that directly follows the
// current track.
//
// The queued segment is not a separate list: it is the run of
// QueuedCount() tracks at indices (CurrentIndex, CurrentIndex+QueuedCount].
// Everything after it is the natural remainder in scan order.
//
// Sequence is not safe for concurrent use. Listeners are called
// synchronously before the mutating call returns and must not call back
// into the Sequence.
type Sequence struct {
	playlist     *Playlist
	currentIndex int // -1 if nothing selected
	queuedCount  int

	nextID         int
	trackListeners []trackListener
	stateListeners []stateListener
}

// NewSequence creates an empty sequence with no current track.
func NewSequence() *Sequence {
	return &Sequence{
		playlist:     NewPlaylist(),
		currentIndex: -1,
	}
}

// OnTrackChanged registers fn to be called with the track that should start
// playing whenever that track changes. The returned func unregisters it.
func (s *Sequence) OnTrackChanged(fn func(*Track)) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.trackListeners = append(s.trackListeners, trackListener{id: id, fn: fn})
	return func() {
		for i, l := range s.trackListeners {
			if l.id == id {
				s.trackListeners = append(s.trackListeners[:i:i], s.trackListeners[i+1:]...)
				return
			}
		}
	}
}

// OnStateChanged registers fn to be called after any mutation of the
// sequence, the current index or the queued count.
func (s *Sequence) OnStateChanged(fn func(State)) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.stateListeners = append(s.stateListeners, stateListener{id: id, fn: fn})
	return func() {
		for i, l := range s.stateListeners {
			if l.id == id {
				s.stateListeners = append(s.stateListeners[:i:i], s.stateListeners[i+1:]...)
				return
			}
		}
	}
}

// SetPlaybackList replaces the whole sequence with tracks and starts playing
// the first one. An empty list leaves no current track.
// Returns true if a track started.
func (s *Sequence) SetPlaybackList(tracks []*Track) bool {
	s.playlist.Set(tracks)
	s.queuedCount = 0
	if s.playlist.Len() == 0 {
		s.currentIndex = -1
	} else {
		s.currentIndex = 0
	}
	s.emitState()
	return s.PlayCurrent()
}

// EnqueueNext moves track directly after the current one, ahead of every
// other queued track. The track must already be in the sequence.
func (s *Sequence) EnqueueNext(track *Track) bool {
	index := s.playlist.IndexOf(track)
	if index < 0 || index == s.currentIndex {
		return false
	}

	s.extract(index)
	s.playlist.Insert(s.currentIndex+1, track)
	if s.currentIndex >= 0 {
		s.queuedCount++
	}

	s.normalize()
	s.emitState()
	return true
}

// Enqueue moves track to the end of the queued segment, before the natural
// remainder. The track must already be in the sequence.
func (s *Sequence) Enqueue(track *Track) bool {
	index := s.playlist.IndexOf(track)
	if index < 0 || index == s.currentIndex {
		return false
	}

	s.extract(index)
	s.playlist.Insert(s.currentIndex+s.queuedCount+1, track)
	if s.currentIndex >= 0 {
		s.queuedCount++
	}

	s.normalize()
	s.emitState()
	return true
}

// PlayFrom jumps playback to track. Jumping into the queued segment consumes
// the queued tracks that were skipped; jumping anywhere else drops the
// segment.
func (s *Sequence) PlayFrom(track *Track) bool {
	index := s.playlist.IndexOf(track)
	if index < 0 {
		return false
	}

	relative := index - s.currentIndex
	if s.currentIndex >= 0 && relative > 0 && relative <= s.queuedCount {
		s.queuedCount -= relative
	} else {
		s.queuedCount = 0
	}
	s.currentIndex = index

	s.normalize()
	s.emitState()
	s.PlayCurrent()
	return true
}

// Remove removes track from the sequence.
//
// Removing the current track does not advance playback: the current index
// stays on the same slot, now holding the track that followed, and is only
// pulled back when the last track was removed. The queued count is kept,
// within the usual bounds.
func (s *Sequence) Remove(track *Track) bool {
	index := s.playlist.IndexOf(track)
	if index < 0 {
		return false
	}

	s.extract(index)
	s.normalize()
	s.emitState()
	return true
}

// MoveAndAdjustQueue moves track to newIndex and keeps the queued segment
// consistent with the tracks physically inside it.
//
// A queued track moved out of the segment shrinks it; a track moved into the
// segment, or right after its last entry, grows it. The current index keeps
// following the current track. Moving the current track itself drops the
// queued segment.
func (s *Sequence) MoveAndAdjustQueue(track *Track, newIndex int) bool {
	oldIndex := s.playlist.IndexOf(track)
	if oldIndex < 0 || newIndex < 0 || newIndex >= s.playlist.Len() || oldIndex == newIndex {
		return false
	}

	wasQueued := s.IsQueued(oldIndex)
	s.playlist.Move(oldIndex, newIndex)

	if oldIndex == s.currentIndex {
		s.currentIndex = newIndex
		s.queuedCount = 0
	} else {
		switch {
		case oldIndex < s.currentIndex && newIndex >= s.currentIndex:
			s.currentIndex--
		case oldIndex > s.currentIndex && newIndex <= s.currentIndex:
			s.currentIndex++
		}

		relative := newIndex - s.currentIndex
		if wasQueued {
			if relative <= 0 || relative > s.queuedCount {
				s.queuedCount--
			}
		} else if s.currentIndex >= 0 && relative > 0 && relative <= s.queuedCount+1 {
			s.queuedCount++
		}
	}

	s.normalize()
	s.emitState()
	return true
}

// Next advances to the following track, consuming one queued slot if any.
// Does nothing at the end of the sequence.
func (s *Sequence) Next() bool {
	if !s.HasNext() {
		return false
	}
	s.currentIndex++
	if s.queuedCount > 0 {
		s.queuedCount--
	}

	s.normalize()
	s.emitState()
	s.PlayCurrent()
	return true
}

// Back steps to the previous track. The queued count is left as is.
// Does nothing at the start of the sequence.
func (s *Sequence) Back() bool {
	if !s.HasPrevious() {
		return false
	}
	s.currentIndex--

	s.emitState()
	s.PlayCurrent()
	return true
}

// PlayCurrent notifies track listeners with the current track, if any.
func (s *Sequence) PlayCurrent() bool {
	t := s.Current()
	if t == nil {
		return false
	}
	for _, l := range append([]trackListener(nil), s.trackListeners...) {
		l.fn(t)
	}
	return true
}

// Current returns the current track, or nil if none.
func (s *Sequence) Current() *Track {
	return s.playlist.Track(s.currentIndex)
}

// CurrentIndex returns the index of the current track (-1 if none).
func (s *Sequence) CurrentIndex() int {
	return s.currentIndex
}

// QueuedCount returns the number of queued tracks following the current one.
func (s *Sequence) QueuedCount() int {
	return s.queuedCount
}

// QueueRange returns the half-open index range [start, end) of the queued
// segment. start == end when nothing is queued.
func (s *Sequence) QueueRange() (start, end int) {
	st := s.State()
	return st.QueueStart(), st.QueueEnd()
}

// IsQueued reports whether index lies inside the queued segment.
func (s *Sequence) IsQueued(index int) bool {
	if s.currentIndex < 0 {
		return false
	}
	relative := index - s.currentIndex
	return relative > 0 && relative <= s.queuedCount
}

// HasNext returns true if there's a track after the current one.
func (s *Sequence) HasNext() bool {
	return s.currentIndex+1 < s.playlist.Len()
}

// HasPrevious returns true if there's a track before the current one.
func (s *Sequence) HasPrevious() bool {
	return s.currentIndex > 0
}

// IndexOf returns the position of track, or -1 if it is not in the sequence.
func (s *Sequence) IndexOf(track *Track) int {
	return s.playlist.IndexOf(track)
}

// Track returns the track at index, or nil if out of range.
func (s *Sequence) Track(index int) *Track {
	return s.playlist.Track(index)
}

// Tracks returns the sequence in play order.
func (s *Sequence) Tracks() []*Track {
	return s.playlist.Tracks()
}

// Len returns the number of tracks in the sequence.
func (s *Sequence) Len() int {
	return s.playlist.Len()
}

// State returns a snapshot of the current position.
func (s *Sequence) State() State {
	return State{
		CurrentIndex: s.currentIndex,
		QueuedCount:  s.queuedCount,
		Len:          s.playlist.Len(),
	}
}

// extract removes the track at index and shifts the current index and
// queued count so both keep describing the same tracks. Removing the
// current track leaves both untouched; normalize clamps them afterwards.
func (s *Sequence) extract(index int) {
	queued := s.IsQueued(index)
	s.playlist.Remove(index)
	if index < s.currentIndex {
		s.currentIndex--
	}
	if queued {
		s.queuedCount--
	}
}

// normalize clamps the current index and queued count back into range.
func (s *Sequence) normalize() {
	n := s.playlist.Len()
	if s.currentIndex >= n {
		s.currentIndex = n - 1
	}
	if s.currentIndex < 0 {
		s.currentIndex = -1
		s.queuedCount = 0
		return
	}
	s.queuedCount = min(max(s.queuedCount, 0), n-s.currentIndex-1)
}

func (s *Sequence) emitState() {
	st := s.State()
	for _, l := range append([]stateListener(nil), s.stateListeners...) {
		l.fn(st)
	}
}
