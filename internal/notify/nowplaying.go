package notify

import (
	"strings"

	"github.com/llehouerou/simplicity/internal/playlist"
	"github.com/llehouerou/simplicity/internal/tags"
)

// DefaultTimeout is how long a now-playing notification stays visible (ms).
const DefaultTimeout int32 = 5000

// NowPlaying shows one notification per track change, replacing the
// previous one instead of stacking them.
type NowPlaying struct {
	notifier Notifier
	enabled  bool
	lastID   uint32
}

// NewNowPlaying creates a now-playing notifier. A nil notifier or
// enabled == false makes Show a no-op.
func NewNowPlaying(n Notifier, enabled bool) *NowPlaying {
	return &NowPlaying{notifier: n, enabled: enabled}
}

// Show announces track. The folder cover, if any, is used as the icon.
func (p *NowPlaying) Show(track *playlist.Track) error {
	if p == nil || !p.enabled || p.notifier == nil || track == nil {
		return nil
	}

	id, err := p.notifier.Notify(Notification{
		Title:      track.Title,
		Body:       nowPlayingBody(track),
		Icon:       tags.FindCover(track.Path),
		Timeout:    DefaultTimeout,
		ReplacesID: p.lastID,
		Urgency:    UrgencyLow,
		Transient:  true,
	})
	if err != nil {
		return err
	}
	p.lastID = id
	return nil
}

// Close dismisses the last notification.
func (p *NowPlaying) Close() error {
	if p == nil || p.notifier == nil || p.lastID == 0 {
		return nil
	}
	id := p.lastID
	p.lastID = 0
	return p.notifier.Close(id)
}

func nowPlayingBody(t *playlist.Track) string {
	parts := make([]string, 0, 2)
	if a := strings.TrimSpace(t.Artist); a != "" {
		parts = append(parts, a)
	}
	if a := strings.TrimSpace(t.Album); a != "" {
		parts = append(parts, a)
	}
	return strings.Join(parts, " · ")
}
