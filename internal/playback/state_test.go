package playback

import (
	"testing"

	"github.com/llehouerou/simplicity/internal/player"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateStopped, "Stopped"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestState_IsActive(t *testing.T) {
	if StateStopped.IsActive() {
		t.Error("Stopped should not be active")
	}
	if !StatePlaying.IsActive() || !StatePaused.IsActive() {
		t.Error("Playing and Paused should be active")
	}
}

func TestFromPlayerState(t *testing.T) {
	tests := []struct {
		in   player.State
		want State
	}{
		{player.Stopped, StateStopped},
		{player.Playing, StatePlaying},
		{player.Paused, StatePaused},
		{player.State(42), StateStopped},
	}

	for _, tt := range tests {
		if got := fromPlayerState(tt.in); got != tt.want {
			t.Errorf("fromPlayerState(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
