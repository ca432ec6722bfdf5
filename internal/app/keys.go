package app

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/simplicity/internal/app/handler"
	"github.com/llehouerou/simplicity/internal/keymap"
)

const (
	seekStep   = 5 * time.Second
	volumeStep = 0.05
)

// handleKeyMsg routes a key: the folder prompt takes every key while open,
// otherwise the resolved action goes through global, playback and panel
// handlers in that order.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if m.prompt.Active() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return cmd
	}

	a := m.keys.Resolve(msg.String())
	if a == "" {
		if m.showHelp && msg.Type == tea.KeyEsc {
			m.showHelp = false
		}
		return nil
	}

	_, cmd := handler.Chain(a,
		m.handleGlobalKeys,
		m.handlePlaybackKeys,
		m.handlePanelKeys,
	)
	return cmd
}

func (m *Model) handleGlobalKeys(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionQuit:
		m.Shutdown()
		return handler.Handled(tea.Quit)

	case keymap.ActionSwitchFocus:
		if m.focus == FocusLibrary {
			m.focus = FocusQueue
			m.queue.SyncCursor()
		} else {
			m.focus = FocusLibrary
		}
		return handler.HandledNoCmd

	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
		return handler.HandledNoCmd

	case keymap.ActionOpenFolder:
		return handler.Handled(m.prompt.Open(m.folder))

	case keymap.ActionRescan:
		if m.folder == "" {
			return handler.Handled(m.prompt.Open(""))
		}
		return handler.Handled(m.startScan(m.folder))
	}
	return handler.NotHandled
}

func (m *Model) handlePlaybackKeys(a keymap.Action) handler.Result {
	var err error
	switch a {
	case keymap.ActionPlayPause:
		err = m.svc.Toggle()
	case keymap.ActionStop:
		err = m.svc.Stop()
	case keymap.ActionNextTrack:
		err = m.svc.Next()
	case keymap.ActionBack:
		err = m.svc.Previous()
	case keymap.ActionSeekForward:
		err = m.svc.Seek(seekStep)
	case keymap.ActionSeekBack:
		err = m.svc.Seek(-seekStep)
	case keymap.ActionVolumeUp:
		m.svc.SetVolume(m.svc.Volume() + volumeStep)
	case keymap.ActionVolumeDown:
		m.svc.SetVolume(m.svc.Volume() - volumeStep)
	default:
		return handler.NotHandled
	}
	if err != nil {
		log.Printf("%s: %v", a, err)
	}
	return handler.Handled(m.reportPlayError(err))
}

func (m *Model) handlePanelKeys(a keymap.Action) handler.Result {
	var (
		cmd     tea.Cmd
		handled bool
	)
	if m.focus == FocusQueue {
		cmd, handled = m.queue.HandleAction(a)
	} else {
		cmd, handled = m.library.HandleAction(a)
	}
	return handler.Result{Handled: handled, Cmd: cmd}
}
