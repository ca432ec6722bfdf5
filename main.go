package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/simplicity/internal/app"
	"github.com/llehouerou/simplicity/internal/config"
	"github.com/llehouerou/simplicity/internal/errmsg"
	"github.com/llehouerou/simplicity/internal/mpris"
	"github.com/llehouerou/simplicity/internal/notify"
	"github.com/llehouerou/simplicity/internal/playback"
	"github.com/llehouerou/simplicity/internal/player"
	"github.com/llehouerou/simplicity/internal/playlist"
	"github.com/llehouerou/simplicity/internal/scanner"
	"github.com/llehouerou/simplicity/internal/stderr"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := createRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func createRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "simplicity [folder]",
		Short: "Play a music folder with a queue",
		Long: `Scan a folder for mp3, flac and wav files and play them in title order.
Tracks can be queued ahead of the natural order from the library or queue panel.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
				return err
			}
			folder := cfg.DefaultFolder
			if len(args) == 1 {
				folder = config.ExpandPath(args[0])
			}
			if err := run(cmd.Context(), cfg, folder); err != nil {
				fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "extra config file, loaded last")
	return cmd
}

func run(ctx context.Context, cfg *config.Config, folder string) error {
	logFile, err := openLog()
	if err != nil {
		return err
	}
	defer logFile.Close()

	// C decoders write to fd 2, which would corrupt the alternate screen
	capture, err := stderr.Start()
	if err != nil {
		log.Printf("stderr capture: %v", err)
	}
	defer func() {
		if capture != nil {
			capture.Stop()
		}
	}()

	p := player.New()
	p.SetVolume(cfg.GetVolume())

	svc := playback.New(p, playlist.NewSequence(), playback.Options{
		BackWindow: cfg.GetPlaybackConfig().BackWindow(),
	})
	defer svc.Close()

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(svc)
		if err != nil {
			log.Print(errmsg.Format(errmsg.OpMPRIS, err))
		} else {
			defer adapter.Close()
		}
	}

	var nowPlaying *notify.NowPlaying
	if cfg.NotificationsEnabled() {
		notifier, err := notify.New()
		if err != nil {
			log.Print(errmsg.Format(errmsg.OpNotify, err))
		} else {
			nowPlaying = notify.NewNowPlaying(notifier, true)
			defer nowPlaying.Close()
		}
	}

	scan := cfg.GetScanConfig()
	var lines <-chan string
	if capture != nil {
		lines = capture.Lines()
	}

	model := app.New(app.Options{
		Service:    svc,
		NowPlaying: nowPlaying,
		Stderr:     lines,
		Folder:     folder,
		Scan: scanner.Options{
			Workers:    scan.Workers,
			SortBy:     scanner.SortOrder(scan.SortBy),
			Extensions: scan.Extensions,
		},
	})

	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if m, ok := final.(app.Model); ok {
		m.Shutdown()
	}
	p.Stop()
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// openLog points the standard logger at the state log file.
func openLog() (*os.File, error) {
	path, err := config.LogFile()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
