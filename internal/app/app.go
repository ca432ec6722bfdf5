// Package app is the root bubbletea model: it lays out the panels, routes
// keys and turns playback and scan events into messages.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/simplicity/internal/keymap"
	"github.com/llehouerou/simplicity/internal/notify"
	"github.com/llehouerou/simplicity/internal/playback"
	"github.com/llehouerou/simplicity/internal/scanner"
	"github.com/llehouerou/simplicity/internal/ui/folderprompt"
	"github.com/llehouerou/simplicity/internal/ui/librarypanel"
	"github.com/llehouerou/simplicity/internal/ui/queuepanel"
	"github.com/llehouerou/simplicity/internal/ui/scanbar"
)

// FocusTarget identifies the panel receiving list keys.
type FocusTarget int

const (
	FocusLibrary FocusTarget = iota
	FocusQueue
)

// Options configures the root model.
type Options struct {
	Service    playback.Service
	NowPlaying *notify.NowPlaying // nil disables notifications
	Stderr     <-chan string      // captured C-library output, may be nil
	Folder     string             // scanned at startup; the folder prompt opens when empty
	Scan       scanner.Options
}

// Model is the root application model.
type Model struct {
	svc        playback.Service
	sub        *playback.Subscription
	nowPlaying *notify.NowPlaying
	stderrCh   <-chan string
	keys       *keymap.Resolver
	scanOpts   scanner.Options

	library  librarypanel.Model
	queue    queuepanel.Model
	scanBar  scanbar.Model
	prompt   folderprompt.Model
	help     help.Model
	helpKeys keymap.HelpKeys
	showHelp bool
	focus    FocusTarget

	folder       string
	scanID       int
	cancelScan   context.CancelFunc
	scanProgress <-chan scanner.Progress

	status  status
	ticking bool
	width   int
	height  int

	startup tea.Cmd
}

// New creates the root model. The startup scan, or the folder prompt when
// no folder is given, begins when the program calls Init.
func New(opts Options) Model {
	m := Model{
		svc:        opts.Service,
		sub:        opts.Service.Subscribe(),
		nowPlaying: opts.NowPlaying,
		stderrCh:   opts.Stderr,
		keys:       keymap.Default(),
		scanOpts:   opts.Scan,
		library:    librarypanel.New(opts.Service),
		queue:      queuepanel.New(opts.Service),
		scanBar:    scanbar.New(),
		prompt:     folderprompt.New(),
		help:       help.New(),
		helpKeys:   keymap.NewHelpKeys(keymap.Contexts...),
		focus:      FocusLibrary,
	}

	if opts.Folder != "" {
		m.startup = m.startScan(opts.Folder)
	} else {
		m.startup = m.prompt.Open("")
	}
	m.layout()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.startup,
		m.WatchServiceEvents(),
		m.WatchFinished(),
		WatchStderr(m.stderrCh),
	)
}

// Focus returns the focused panel.
func (m Model) Focus() FocusTarget { return m.focus }

// Folder returns the last successfully scanned folder.
func (m Model) Folder() string { return m.folder }

// Shutdown cancels a running scan. The caller owns the service.
func (m Model) Shutdown() {
	if m.cancelScan != nil {
		m.cancelScan()
	}
}
