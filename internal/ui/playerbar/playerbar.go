// Package playerbar renders the now-playing bar.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/simplicity/internal/playback"
	"github.com/llehouerou/simplicity/internal/player"
	"github.com/llehouerou/simplicity/internal/ui/render"
)

// Height is the total height of the player bar, borders included.
const Height = 5

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "■"
)

// State holds everything needed to render the player bar.
type State struct {
	Status   playback.State
	HasTrack bool
	Title    string
	Artist   string
	Album    string
	Format   string // "MP3", "FLAC", "WAV"
	Position time.Duration
	Duration time.Duration
	Volume   float64
	Index    int // 0-based, -1 if none
	Len      int
	Queued   int
}

// NewState snapshots the playback service.
func NewState(svc playback.Service) State {
	s := State{
		Status: svc.State(),
		Volume: svc.Volume(),
		Index:  svc.CurrentIndex(),
		Len:    svc.Len(),
		Queued: svc.QueuedCount(),
	}
	if t := svc.CurrentTrack(); t != nil {
		s.HasTrack = true
		s.Title = t.Title
		s.Artist = t.Artist
		s.Album = t.Album
		s.Format = player.FormatName(t.Path)
		s.Duration = svc.Duration()
		if s.Status.IsActive() {
			s.Position = svc.Position()
		}
	}
	return s
}

// Render returns the player bar for the given outer width.
func Render(s State, width int) string {
	inner := max(width-2-4, 0) // border and horizontal padding

	var lines [3]string
	if !s.HasTrack {
		lines[0] = mutedStyle().Render(render.Fit(emptyMessage(s), inner))
		lines[1] = render.EmptyLine(inner)
		lines[2] = renderProgress(0, 0, inner)
	} else {
		lines[0] = render.Row(
			statusStyle(s.Status).Render(statusSymbol(s.Status))+" "+titleStyle().Render(truncateTo(s.Title, inner-lipgloss.Width(position(s))-4)),
			mutedStyle().Render(position(s)),
			inner,
		)
		right := details(s)
		lines[1] = render.Row(
			"  "+mutedStyle().Render(truncateTo(subtitle(s), inner-lipgloss.Width(right)-4)),
			mutedStyle().Render(right),
			inner,
		)
		lines[2] = renderProgress(s.Position, s.Duration, inner)
	}

	return barStyle().Padding(0, 2).Width(max(width-2, 0)).Render(strings.Join(lines[:], "\n"))
}

func emptyMessage(s State) string {
	if s.Len == 0 {
		return "Nothing to play. Press o to open a folder."
	}
	return fmt.Sprintf("%s Stopped · %d tracks", stopSymbol, s.Len)
}

func statusSymbol(st playback.State) string {
	switch st {
	case playback.StatePlaying:
		return playSymbol
	case playback.StatePaused:
		return pauseSymbol
	case playback.StateStopped:
		return stopSymbol
	}
	return stopSymbol
}

// position renders "3/12 · 2 queued".
func position(s State) string {
	pos := fmt.Sprintf("%d/%d", s.Index+1, s.Len)
	if s.Queued > 0 {
		pos += fmt.Sprintf(" · %d queued", s.Queued)
	}
	return pos
}

func subtitle(s State) string {
	return render.OrDefault(s.Artist, "Unknown Artist") + " · " + render.OrDefault(s.Album, "Unknown Album")
}

// details renders "FLAC · vol 80%".
func details(s State) string {
	vol := fmt.Sprintf("vol %d%%", int(s.Volume*100+0.5))
	if s.Format == "" {
		return vol
	}
	return s.Format + " · " + vol
}

func truncateTo(s string, width int) string {
	return render.Truncate(s, max(width, 1))
}
