package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/simplicity/internal/notify"
	"github.com/llehouerou/simplicity/internal/playback"
	"github.com/llehouerou/simplicity/internal/player"
	"github.com/llehouerou/simplicity/internal/playlist"
	"github.com/llehouerou/simplicity/internal/scanner"
	"github.com/llehouerou/simplicity/internal/tags"
	"github.com/llehouerou/simplicity/internal/ui/action"
)

const testFolder = "/music"

func newTracks(n int) []*playlist.Track {
	tracks := make([]*playlist.Track, n)
	for i := range tracks {
		tracks[i] = &playlist.Track{
			Path:  fmt.Sprintf("%s/%02d.mp3", testFolder, i),
			Title: fmt.Sprintf("Track %d", i),
		}
	}
	return tracks
}

func newService(t *testing.T) (playback.Service, *player.Mock) {
	t.Helper()
	mock := player.NewMock()
	svc := playback.New(mock, playlist.NewSequence(), playback.Options{})
	t.Cleanup(func() { _ = svc.Close() })
	return svc, mock
}

// newTestModel returns a sized model whose startup scan of testFolder
// produced n tracks.
func newTestModel(t *testing.T, n int) (Model, *player.Mock, []*playlist.Track) {
	t.Helper()
	svc, mock := newService(t)
	m := New(Options{Service: svc, Folder: testFolder})
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	tracks := newTracks(n)
	m, _ = update(m, ScanDoneMsg{ID: m.scanID, Folder: testFolder, Result: scanner.Result{Tracks: tracks}})
	return m, mock, tracks
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends keys one by one and delivers any panel action they raise.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = update(m, keyMsg(k))
		if cmd == nil {
			continue
		}
		if msg, ok := cmd().(action.Msg); ok {
			m, _ = update(m, msg)
		}
	}
	return m
}

func trackPaths(tracks []*playlist.Track) []string {
	paths := make([]string, len(tracks))
	for i, t := range tracks {
		paths[i] = t.Path
	}
	return paths
}

func TestNew_WithoutFolderOpensPrompt(t *testing.T) {
	svc, _ := newService(t)

	m := New(Options{Service: svc})

	assert.True(t, m.prompt.Active())
	assert.False(t, m.scanBar.Active())
	assert.Equal(t, 0, m.scanID)
}

func TestNew_WithFolderStartsScan(t *testing.T) {
	svc, _ := newService(t)

	m := New(Options{Service: svc, Folder: testFolder})

	assert.False(t, m.prompt.Active())
	assert.True(t, m.scanBar.Active())
	assert.Equal(t, 1, m.scanID)
	assert.NotNil(t, m.cancelScan)
}

func TestScanDone_SetsPlaybackList(t *testing.T) {
	m, mock, tracks := newTestModel(t, 3)

	assert.Equal(t, []string{tracks[0].Path}, mock.PlayCalls())
	assert.Equal(t, 0, m.svc.CurrentIndex())
	assert.Equal(t, 3, m.library.Len())
	assert.Equal(t, testFolder, m.Folder())
	assert.False(t, m.scanBar.Active())
	assert.Nil(t, m.cancelScan)
	assert.Contains(t, m.status.text, "Scanned /music: 3 tracks")
}

func TestScanDone_StaleIgnored(t *testing.T) {
	m, mock, _ := newTestModel(t, 2)

	m, _ = update(m, ScanDoneMsg{ID: m.scanID - 1, Folder: "/old", Result: scanner.Result{Tracks: newTracks(5)}})

	assert.Equal(t, 2, m.svc.Len())
	assert.Len(t, mock.PlayCalls(), 1)
	assert.Equal(t, testFolder, m.Folder())
}

func TestScanDone_Error(t *testing.T) {
	svc, _ := newService(t)
	m := New(Options{Service: svc, Folder: "/missing"})

	m, _ = update(m, ScanDoneMsg{ID: m.scanID, Folder: "/missing", Err: scanner.ErrNotDirectory})

	assert.Equal(t, statusError, m.status.level)
	assert.Equal(t, "Failed to scan folder 'missing': not a directory", m.status.text)
	assert.Empty(t, m.Folder())
	assert.False(t, m.scanBar.Active())
}

func TestScanDone_Canceled(t *testing.T) {
	svc, _ := newService(t)
	m := New(Options{Service: svc, Folder: testFolder})

	m, _ = update(m, ScanDoneMsg{ID: m.scanID, Folder: testFolder, Err: context.Canceled})

	assert.Empty(t, m.status.text)
}

func TestScanProgress(t *testing.T) {
	svc, _ := newService(t)
	m := New(Options{Service: svc, Folder: testFolder})

	p := scanner.Progress{Phase: scanner.PhaseReading, Current: 4, Total: 10}
	m, cmd := update(m, ScanProgressMsg{ID: m.scanID, Progress: p})

	assert.Equal(t, p, m.scanBar.Progress())
	assert.NotNil(t, cmd, "expected to keep listening for progress")

	m, cmd = update(m, ScanProgressMsg{ID: m.scanID + 1, Progress: scanner.Progress{Phase: scanner.PhaseDiscovering}})
	assert.Equal(t, p, m.scanBar.Progress())
	assert.Nil(t, cmd)
}

// runScan executes the commands returned by startScan until the scan is
// done and feeds every message back to the model.
func runScan(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "expected a batch of scan commands")
	require.Len(t, batch, 2)

	done := batch[0]()
	for wait := batch[1]; wait != nil; {
		msg := wait()
		if msg == nil {
			break
		}
		m, wait = update(m, msg)
	}
	m, _ = update(m, done)
	return m
}

func TestFolderPrompt_ScansFolder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mp3", "a.flac", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}

	svc, mock := newService(t)
	m := New(Options{
		Service: svc,
		Scan: scanner.Options{
			Workers: 2,
			ReadFile: func(path string) (*tags.FileInfo, error) {
				return &tags.FileInfo{Tag: tags.Tag{Title: strings.ToUpper(tags.TitleFromPath(path))}}, nil
			},
		},
	})
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	require.True(t, m.prompt.Active())

	for _, r := range dir {
		m, _ = update(m, keyMsg(string(r)))
	}
	m, cmd := update(m, keyMsg("enter"))
	require.NotNil(t, cmd)
	m, cmd = update(m, cmd())

	assert.True(t, m.scanBar.Active())
	m = runScan(t, m, cmd)

	assert.Equal(t, dir, m.Folder())
	assert.Equal(t, []string{"A", "B"}, titles(m.svc.Tracks()))
	assert.Equal(t, []string{filepath.Join(dir, "a.flac")}, mock.PlayCalls())
	assert.False(t, m.scanBar.Active())
}

func titles(tracks []*playlist.Track) []string {
	out := make([]string, len(tracks))
	for i, t := range tracks {
		out[i] = t.Title
	}
	return out
}

func TestFolderPrompt_CapturesKeys(t *testing.T) {
	m, _, _ := newTestModel(t, 2)

	m = press(t, m, "o")
	require.True(t, m.prompt.Active())
	assert.Equal(t, testFolder, m.prompt.Value())

	m, cmd := update(m, keyMsg("q"))
	if cmd != nil {
		_, isQuit := cmd().(tea.QuitMsg)
		assert.False(t, isQuit, "q must be typed into the prompt")
	}
	assert.Equal(t, testFolder+"q", m.prompt.Value())

	m = press(t, m, "esc")
	assert.False(t, m.prompt.Active())
	assert.Equal(t, 1, m.scanID, "cancel must not start a scan")
}

func TestRescan(t *testing.T) {
	m, _, _ := newTestModel(t, 2)

	m, cmd := update(m, keyMsg("r"))

	assert.NotNil(t, cmd)
	assert.Equal(t, 2, m.scanID)
	assert.True(t, m.scanBar.Active())
}

func TestQuit(t *testing.T) {
	svc, _ := newService(t)
	m := New(Options{Service: svc, Folder: testFolder})
	m.prompt.Close()

	ctxDone := false
	m.cancelScan = func() { ctxDone = true }

	_, cmd := update(m, keyMsg("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, ctxDone, "quit must cancel the running scan")
}

func TestSwitchFocus(t *testing.T) {
	m, _, _ := newTestModel(t, 2)
	assert.Equal(t, FocusLibrary, m.Focus())

	m = press(t, m, "tab")
	assert.Equal(t, FocusQueue, m.Focus())
	assert.True(t, m.queue.IsFocused())
	assert.False(t, m.library.IsFocused())

	m = press(t, m, "tab")
	assert.Equal(t, FocusLibrary, m.Focus())
}

func TestHelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t, 2)
	before := m.PanelsHeight()

	m = press(t, m, "?")
	assert.True(t, m.showHelp)
	assert.Less(t, m.PanelsHeight(), before)

	m = press(t, m, "esc")
	assert.False(t, m.showHelp)
	assert.Equal(t, before, m.PanelsHeight())
}

func TestView(t *testing.T) {
	m, _, _ := newTestModel(t, 3)

	out := m.View()

	assert.Len(t, strings.Split(out, "\n"), 40)
	assert.Contains(t, out, "Queue")
	assert.Contains(t, out, "Track 0")
	assert.Contains(t, out, "Scanned /music")
}

func TestView_ZeroSize(t *testing.T) {
	svc, _ := newService(t)
	m := New(Options{Service: svc, Folder: testFolder})

	assert.Empty(t, m.View())
}

func TestLayout_Narrow(t *testing.T) {
	m, _, _ := newTestModel(t, 2)

	m, _ = update(m, tea.WindowSizeMsg{Width: 60, Height: 40})

	assert.True(t, m.IsNarrow())
	assert.Equal(t, 60, m.library.Width())
	assert.Equal(t, 60, m.queue.Width())
	assert.Equal(t, m.PanelsHeight(), m.library.Height()+m.queue.Height())
}

func TestLayout_Wide(t *testing.T) {
	m, _, _ := newTestModel(t, 2)

	assert.False(t, m.IsNarrow())
	assert.Equal(t, 120, m.library.Width()+m.queue.Width())
	assert.Equal(t, m.PanelsHeight(), m.library.Height())
}

type fakeNotifier struct {
	sent []notify.Notification
	err  error
}

func (f *fakeNotifier) Notify(n notify.Notification) (uint32, error) {
	f.sent = append(f.sent, n)
	return uint32(len(f.sent)), f.err
}

func (f *fakeNotifier) Close(uint32) error { return nil }

func TestNotifyCmd(t *testing.T) {
	svc, _ := newService(t)
	n := &fakeNotifier{}
	m := New(Options{Service: svc, NowPlaying: notify.NewNowPlaying(n, true)})
	track := &playlist.Track{Path: "/m/a.mp3", Title: "Song", Artist: "Band"}

	cmd := m.notifyCmd(track)

	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	require.Len(t, n.sent, 1)
	assert.Equal(t, "Song", n.sent[0].Title)
}

func TestNotifyCmd_Error(t *testing.T) {
	svc, _ := newService(t)
	n := &fakeNotifier{err: errors.New("no bus")}
	m := New(Options{Service: svc, NowPlaying: notify.NewNowPlaying(n, true)})

	msg := m.notifyCmd(&playlist.Track{Title: "Song"})()

	assert.IsType(t, NotifyErrorMsg{}, msg)
}

func TestNotifyCmd_Disabled(t *testing.T) {
	svc, _ := newService(t)
	m := New(Options{Service: svc})

	assert.Nil(t, m.notifyCmd(&playlist.Track{Title: "Song"}))
}
