package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// Player plays one audio file at a time through the shared speaker.
type Player struct {
	state       State
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	streamer    beep.StreamSeekCloser
	format      beep.Format
	path        string
	duration    time.Duration
	volumeLevel float64
	done        chan struct{}
	finishedCh  chan struct{}
	seekChan    chan time.Duration
}

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// New creates a stopped player at full volume.
func New() *Player {
	p := &Player{
		state:       Stopped,
		volumeLevel: 1,
		done:        make(chan struct{}),
		finishedCh:  make(chan struct{}, 1),
		seekChan:    make(chan time.Duration, 1),
	}
	close(p.done)
	go p.seekLoop()
	return p
}

// Play stops the current track and starts path.
func (p *Player) Play(path string) error {
	p.Stop()

	// Let a pending speaker callback from the previous track complete
	time.Sleep(10 * time.Millisecond)

	// Drain a stale finish signal
	select {
	case <-p.finishedCh:
	default:
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decode(f, ext)
	if err != nil {
		f.Close()
		return err
	}

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		err = speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10))
		if err != nil {
			streamer.Close()
			return err
		}
		speakerInitialized = true
	}

	// Resample if the track's sample rate differs from the speaker's
	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}

	p.streamer = streamer
	p.format = format
	p.path = path
	p.duration = format.SampleRate.D(streamer.Len())
	p.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: false}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   gain(p.volumeLevel),
	}

	p.state = Playing
	done := make(chan struct{})
	p.done = done

	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		close(done)
		select {
		case p.finishedCh <- struct{}{}:
		default:
		}
	})))

	return nil
}

// Stop stops playback and releases the decoder.
func (p *Player) Stop() {
	if p.state == Stopped {
		return
	}

	speaker.Clear()

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}

	p.ctrl = nil
	p.volume = nil
	p.path = ""
	p.duration = 0
	p.state = Stopped

	select {
	case <-p.done:
	default:
		close(p.done)
	}
}

// Pause pauses playback.
func (p *Player) Pause() {
	if !p.state.CanPause() || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Resume resumes paused playback.
func (p *Player) Resume() {
	if !p.state.CanResume() || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// Toggle toggles between playing and paused states.
func (p *Player) Toggle() {
	switch p.state {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	case Stopped:
	}
}

func (p *Player) State() State { return p.state }

// Path returns the file being played, or "" when stopped.
func (p *Player) Path() string { return p.path }

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	s := p.streamer
	if s == nil {
		return 0
	}
	// Unlocked read: may be slightly stale but never blocks the UI on the speaker
	return p.format.SampleRate.D(s.Position())
}

// Duration returns the length of the current track.
func (p *Player) Duration() time.Duration { return p.duration }

// FinishedChan receives a value each time a track plays to its end.
func (p *Player) FinishedChan() <-chan struct{} { return p.finishedCh }

// Done is closed when the current track ends or is stopped.
func (p *Player) Done() <-chan struct{} { return p.done }

// Seek moves the playback position by delta.
// Non-blocking: only the most recent pending request is kept.
func (p *Player) Seek(delta time.Duration) {
	if p.streamer == nil || p.state == Stopped {
		return
	}

	select {
	case p.seekChan <- delta:
	default:
		select {
		case <-p.seekChan:
		default:
		}
		select {
		case p.seekChan <- delta:
		default:
		}
	}
}

// SeekTo moves the playback position to pos.
func (p *Player) SeekTo(pos time.Duration) {
	p.Seek(pos - p.Position())
}

func (p *Player) seekLoop() {
	for delta := range p.seekChan {
		p.doSeek(delta)
	}
}

func (p *Player) doSeek(delta time.Duration) {
	streamer := p.streamer
	if streamer == nil || p.state == Stopped || p.volume == nil {
		return
	}

	newPos := streamer.Position() + p.format.SampleRate.N(delta)

	// Seeking past the end finishes the track
	if newPos >= streamer.Len() {
		select {
		case p.finishedCh <- struct{}{}:
		default:
		}
		return
	}

	speaker.Lock()
	if p.streamer == nil || p.state == Stopped || p.volume == nil {
		speaker.Unlock()
		return
	}
	// Mute across the seek to avoid clicks
	p.volume.Silent = true
	_ = p.streamer.Seek(max(newPos, 0))
	speaker.Unlock()

	time.Sleep(100 * time.Millisecond)

	speaker.Lock()
	if p.volume != nil && p.state != Stopped {
		p.volume.Silent = false
	}
	speaker.Unlock()
}
