package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/simplicity/internal/config"
	"github.com/llehouerou/simplicity/internal/errmsg"
	"github.com/llehouerou/simplicity/internal/playback"
	"github.com/llehouerou/simplicity/internal/playlist"
	"github.com/llehouerou/simplicity/internal/ui/action"
	"github.com/llehouerou/simplicity/internal/ui/folderprompt"
	"github.com/llehouerou/simplicity/internal/ui/librarypanel"
	"github.com/llehouerou/simplicity/internal/ui/queuepanel"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.layout()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case action.Msg:
		return m.handleAction(msg)

	case TickMsg:
		if m.svc.IsPlaying() {
			return TickCmd()
		}
		m.ticking = false
		return nil

	case TrackFinishedMsg:
		if err := m.svc.HandleFinished(); err != nil {
			log.Printf("advance after finished track: %v", err)
		}
		return m.WatchFinished()

	case ScanProgressMsg:
		if msg.ID != m.scanID {
			return nil
		}
		m.scanBar.SetProgress(msg.Progress)
		return waitScanProgress(msg.ID, m.scanProgress)

	case ScanDoneMsg:
		return m.handleScanDone(msg)

	case ServiceStateMsg:
		return tea.Batch(m.startTicking(), m.WatchServiceEvents())

	case ServiceTrackMsg:
		m.queue.SyncCursor()
		return tea.Batch(m.notifyCmd(msg.Current), m.startTicking(), m.WatchServiceEvents())

	case ServiceQueueMsg:
		m.queue.Refresh()
		return m.WatchServiceEvents()

	case ServiceErrorMsg:
		log.Printf("%s %s: %v", msg.Operation, msg.Path, msg.Err)
		m.status.setError(errmsg.FormatFile(errmsg.OpPlay, msg.Path, msg.Err))
		return m.WatchServiceEvents()

	case ServiceClosedMsg:
		return nil

	case NotifyErrorMsg:
		log.Printf("notification: %v", msg.Err)
		return nil

	case StderrMsg:
		log.Printf("stderr: %s", msg.Line)
		m.status.setWarning(msg.Line)
		return WatchStderr(m.stderrCh)
	}

	// Cursor blink and other bubbles internals
	if m.prompt.Active() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return cmd
	}
	return nil
}

// startTicking starts the position refresh if playing and not already running.
func (m *Model) startTicking() tea.Cmd {
	if m.ticking || !m.svc.IsPlaying() {
		return nil
	}
	m.ticking = true
	return TickCmd()
}

func (m *Model) handleScanDone(msg ScanDoneMsg) tea.Cmd {
	if msg.ID != m.scanID {
		return nil
	}
	m.cancelScan = nil
	m.scanProgress = nil
	m.scanBar.Finish()

	if msg.Err != nil {
		if errors.Is(msg.Err, context.Canceled) {
			return nil
		}
		log.Printf("scan %s: %v", msg.Folder, msg.Err)
		m.status.setError(errmsg.FormatFile(errmsg.OpScan, msg.Folder, msg.Err))
		return nil
	}

	for _, path := range msg.Result.Failed {
		log.Printf("scan %s: unreadable tags in %s", msg.Folder, path)
	}

	m.folder = msg.Folder
	m.library.SetTracks(msg.Folder, msg.Result.Tracks)
	err := m.svc.SetTracks(msg.Result.Tracks)
	m.queue.Refresh()
	m.queue.SyncCursor()

	if err != nil {
		// Play failures are reported through the service error event
		log.Printf("start playback: %v", err)
	}
	m.status.setInfo(fmt.Sprintf("Scanned %s: %s", msg.Folder, msg.Result.Summary()))
	return nil
}

// handleAction applies a request raised by a panel.
func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case folderprompt.Submit:
		return m.startScan(config.ExpandPath(a.Path))
	case folderprompt.Cancel:
		return nil

	case librarypanel.PlayFrom:
		return m.reportPlayError(m.svc.PlayFrom(a.Track))
	case queuepanel.PlayFrom:
		return m.reportPlayError(m.svc.PlayFrom(a.Track))

	case librarypanel.Enqueue:
		m.enqueue(a.Track, a.Next)
	case queuepanel.Enqueue:
		m.enqueue(a.Track, a.Next)

	case queuepanel.Remove:
		m.svc.Remove(a.Track)
	case queuepanel.Move:
		m.svc.Move(a.Track, a.To)
	}
	return nil
}

func (m *Model) enqueue(t *playlist.Track, next bool) {
	if next {
		m.svc.EnqueueNext(t)
	} else {
		m.svc.Enqueue(t)
	}
}

// reportPlayError handles errors returned by a service call. Play failures
// arrive through the subscription as well, so only the empty sequence is
// reported here.
func (m *Model) reportPlayError(err error) tea.Cmd {
	if errors.Is(err, playback.ErrEmptySequence) {
		m.status.setInfo("Nothing to play")
	}
	return nil
}
