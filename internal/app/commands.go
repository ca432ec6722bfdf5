package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/simplicity/internal/playlist"
	"github.com/llehouerou/simplicity/internal/scanner"
)

const scanProgressBuffer = 16

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForChannel creates a command that waits for a value from a channel and
// converts it to a message. onResult receives false once the channel is closed.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchServiceEvents waits for the next playback service event.
func (m Model) WatchServiceEvents() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateMsg(e)
		case e := <-sub.TrackChanged:
			return ServiceTrackMsg(e)
		case e := <-sub.QueueChanged:
			return ServiceQueueMsg(e)
		case e := <-sub.Error:
			return ServiceErrorMsg(e)
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// WatchFinished waits for the player to finish a track naturally.
func (m Model) WatchFinished() tea.Cmd {
	return waitForChannel(m.svc.FinishedChan(), func(struct{}, bool) tea.Msg {
		return TrackFinishedMsg{}
	})
}

// WatchStderr waits for the next captured stderr line.
func WatchStderr(lines <-chan string) tea.Cmd {
	return waitForChannel(lines, func(line string, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	})
}

// startScan cancels any running scan and returns the commands running a
// scan of folder. Nothing runs until the commands are executed.
func (m *Model) startScan(folder string) tea.Cmd {
	if m.cancelScan != nil {
		m.cancelScan()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelScan = cancel
	m.scanID++
	id := m.scanID

	progress := make(chan scanner.Progress, scanProgressBuffer)
	m.scanProgress = progress
	m.scanBar.Start(folder)

	opts := m.scanOpts
	run := func() tea.Msg {
		result, err := scanner.Scan(ctx, folder, opts, progress)
		return ScanDoneMsg{ID: id, Folder: folder, Result: result, Err: err}
	}
	return tea.Batch(run, waitScanProgress(id, progress))
}

func waitScanProgress(id int, ch <-chan scanner.Progress) tea.Cmd {
	return waitForChannel(ch, func(p scanner.Progress, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return ScanProgressMsg{ID: id, Progress: p}
	})
}

// notifyCmd shows the desktop notification off the update loop.
func (m Model) notifyCmd(t *playlist.Track) tea.Cmd {
	np := m.nowPlaying
	if np == nil || t == nil {
		return nil
	}
	return func() tea.Msg {
		if err := np.Show(t); err != nil {
			return NotifyErrorMsg{Err: err}
		}
		return nil
	}
}
