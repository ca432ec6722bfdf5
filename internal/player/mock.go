package player

import (
	"slices"
	"sync"
	"time"
)

// Mock is an in-memory Interface for tests. It never touches the speaker:
// Play succeeds immediately unless an error was injected with SetPlayError,
// and the position only moves through Seek, SeekTo or SetPosition.
//
// Mock is safe for concurrent use so it can sit behind a service driven
// from D-Bus handlers.
type Mock struct {
	mu sync.Mutex

	state    State
	pos      time.Duration
	length   time.Duration
	level    float64
	failWith error

	played []string
	seeks  []time.Duration

	finished chan struct{}
}

// NewMock returns a stopped Mock at full volume.
func NewMock() *Mock {
	return &Mock{
		state:    Stopped,
		level:    1,
		finished: make(chan struct{}, 1),
	}
}

func (m *Mock) Play(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.played = append(m.played, path)
	m.pos = 0
	if m.failWith != nil {
		m.state = Stopped
		return m.failWith
	}
	m.state = Playing
	return nil
}

func (m *Mock) Stop() {
	m.mu.Lock()
	m.state, m.pos = Stopped, 0
	m.mu.Unlock()
}

func (m *Mock) Pause() { m.transition(Paused) }

func (m *Mock) Resume() { m.transition(Playing) }

func (m *Mock) Toggle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.state {
	case Playing:
		m.state = Paused
	case Paused:
		m.state = Playing
	case Stopped:
	}
}

// transition applies the same guards as Player: only a playing track can
// pause and only a paused one can resume.
func (m *Mock) transition(to State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if (to == Paused && m.state.CanPause()) || (to == Playing && m.state.CanResume()) {
		m.state = to
	}
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pos
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.length
}

func (m *Mock) Seek(delta time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seek(delta)
}

func (m *Mock) SeekTo(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seek(pos - m.pos)
}

func (m *Mock) seek(delta time.Duration) {
	m.seeks = append(m.seeks, delta)
	m.pos = max(m.pos+delta, 0)
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	m.level = clampLevel(level)
	m.mu.Unlock()
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.level
}

func (m *Mock) FinishedChan() <-chan struct{} { return m.finished }

// SetState forces the playback state.
func (m *Mock) SetState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// SetPlayError makes every following Play fail with err. Pass nil to clear.
func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	m.failWith = err
	m.mu.Unlock()
}

// PlayCalls returns the paths passed to Play, oldest first.
func (m *Mock) PlayCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.played)
}

// SeekCalls returns the relative offsets applied by Seek and SeekTo.
func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.seeks)
}

func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	m.length = d
	m.mu.Unlock()
}

func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	m.pos = d
	m.mu.Unlock()
}

// SimulateFinished signals the end of the track. The state is left as is,
// matching Player, until Stop or Play is called.
func (m *Mock) SimulateFinished() {
	select {
	case m.finished <- struct{}{}:
	default:
	}
}
