package player

import "testing"

func TestState_Predicates(t *testing.T) {
	tests := []struct {
		state     State
		name      string
		active    bool
		canPause  bool
		canResume bool
	}{
		{Stopped, "Stopped", false, false, false},
		{Playing, "Playing", true, true, false},
		{Paused, "Paused", true, false, true},
		{State(99), "Unknown", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.state.IsActive(); got != tt.active {
				t.Errorf("IsActive() = %v, want %v", got, tt.active)
			}
			if got := tt.state.CanPause(); got != tt.canPause {
				t.Errorf("CanPause() = %v, want %v", got, tt.canPause)
			}
			if got := tt.state.CanResume(); got != tt.canResume {
				t.Errorf("CanResume() = %v, want %v", got, tt.canResume)
			}
		})
	}
}

func TestMock_Transitions(t *testing.T) {
	tests := []struct {
		name  string
		steps func(m *Mock)
		want  State
	}{
		{"initial", func(*Mock) {}, Stopped},
		{"play", func(m *Mock) { _ = m.Play("/a.mp3") }, Playing},
		{"pause", func(m *Mock) { _ = m.Play("/a.mp3"); m.Pause() }, Paused},
		{"resume", func(m *Mock) { _ = m.Play("/a.mp3"); m.Pause(); m.Resume() }, Playing},
		{"stop while playing", func(m *Mock) { _ = m.Play("/a.mp3"); m.Stop() }, Stopped},
		{"stop while paused", func(m *Mock) { _ = m.Play("/a.mp3"); m.Pause(); m.Stop() }, Stopped},
		{"toggle pauses", func(m *Mock) { _ = m.Play("/a.mp3"); m.Toggle() }, Paused},
		{"toggle resumes", func(m *Mock) { _ = m.Play("/a.mp3"); m.Toggle(); m.Toggle() }, Playing},
		{"toggle when stopped", func(m *Mock) { m.Toggle() }, Stopped},
		{"pause when stopped", func(m *Mock) { m.Pause() }, Stopped},
		{"resume when playing", func(m *Mock) { _ = m.Play("/a.mp3"); m.Resume() }, Playing},
		{"finished keeps state", func(m *Mock) { _ = m.Play("/a.mp3"); m.SimulateFinished() }, Playing},
		{"failed play", func(m *Mock) { m.SetPlayError(ErrUnsupportedFormat); _ = m.Play("/a.ogg") }, Stopped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMock()
			tt.steps(m)
			if got := m.State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
		})
	}
}
