// Package scanner walks a folder for playable files and reads their
// metadata concurrently, producing the track list in play order.
package scanner

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/simplicity/internal/playlist"
	"github.com/llehouerou/simplicity/internal/tags"
)

const defaultWorkers = 8

// ErrNotDirectory is returned when the scan root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Phase identifies the stage a scan is in.
type Phase string

const (
	PhaseDiscovering Phase = "discovering"
	PhaseReading     Phase = "reading"
	PhaseDone        Phase = "done"
)

// Progress reports the progress of a scan.
type Progress struct {
	Phase   Phase
	Current int
	Total   int // 0 while discovering
}

// SortOrder decides the order of the finished track list.
type SortOrder string

const (
	SortByTitle SortOrder = "title"
	SortByPath  SortOrder = "path"
)

// Options configures a scan. The zero value is usable.
type Options struct {
	Workers    int       // default 8
	SortBy     SortOrder // default SortByTitle
	Extensions []string  // default mp3, flac, wav

	// ReadFile reads one file's metadata. Defaults to tags.ReadWithAudio.
	ReadFile func(path string) (*tags.FileInfo, error)
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = defaultWorkers
	}
	if o.SortBy != SortByPath {
		o.SortBy = SortByTitle
	}
	if len(o.Extensions) == 0 {
		o.Extensions = []string{tags.ExtMP3, tags.ExtFLAC, tags.ExtWAV}
	}
	if o.ReadFile == nil {
		o.ReadFile = tags.ReadWithAudio
	}
	return o
}

// Result is the outcome of a completed scan.
type Result struct {
	Tracks []*playlist.Track
	Bytes  int64
	Failed []string // files whose metadata could not be read
}

// Summary describes the result for the status line.
func (r Result) Summary() string {
	s := fmt.Sprintf("%s tracks, %s", humanize.Comma(int64(len(r.Tracks))), humanize.Bytes(uint64(max(r.Bytes, 0))))
	if len(r.Failed) > 0 {
		s += fmt.Sprintf(", %d unreadable", len(r.Failed))
	}
	return s
}

type fileInfo struct {
	path string
	size int64
}

// Scan walks root recursively and reads every matching file with a pool of
// workers. progress may be nil; otherwise it is closed when Scan returns.
//
// A file whose metadata cannot be read is still part of the result, titled
// after its file name, and listed in Result.Failed.
// Cancelling ctx aborts the scan and returns ctx.Err().
func Scan(ctx context.Context, root string, opts Options, progress chan<- Progress) (Result, error) {
	if progress != nil {
		defer close(progress)
	}
	opts = opts.withDefaults()

	info, err := os.Stat(root)
	if err != nil {
		return Result{}, fmt.Errorf("scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("scan %s: %w", root, ErrNotDirectory)
	}

	send(ctx, progress, Progress{Phase: PhaseDiscovering})
	files, err := discoverFiles(ctx, root, opts.Extensions, progress)
	if err != nil {
		return Result{}, err
	}

	tracks, failed := readFiles(ctx, files, opts, progress)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	sortTracks(tracks, opts.SortBy)

	result := Result{Tracks: tracks, Failed: failed}
	for _, f := range files {
		result.Bytes += f.size
	}

	send(ctx, progress, Progress{Phase: PhaseDone, Current: len(files), Total: len(files)})
	return result, nil
}

// discoverFiles walks root and returns every file with a wanted extension.
func discoverFiles(ctx context.Context, root string, extensions []string, progress chan<- Progress) ([]fileInfo, error) {
	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(ext)] = true
	}

	var files []fileInfo
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		// Unreadable entries are skipped, the rest of the tree is still scanned
		if walkErr != nil {
			return nil //nolint:nilerr // intentionally skipping errors
		}
		if d.IsDir() || !wanted[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return nil //nolint:nilerr // intentionally skipping errors
		}

		files = append(files, fileInfo{path: path, size: info.Size()})
		if len(files)%100 == 0 {
			send(ctx, progress, Progress{Phase: PhaseDiscovering, Current: len(files)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// readFiles reads metadata in parallel. Tracks keep the discovery order.
func readFiles(ctx context.Context, files []fileInfo, opts Options, progress chan<- Progress) ([]*playlist.Track, []string) {
	total := len(files)
	tracks := make([]*playlist.Track, total)
	failedAt := make([]bool, total)
	var processed atomic.Int64

	workCh := make(chan int)

	var wg sync.WaitGroup
	for range min(opts.Workers, max(total, 1)) {
		wg.Go(func() {
			for i := range workCh {
				tracks[i], failedAt[i] = readTrack(files[i], opts.ReadFile)
				processed.Add(1)
			}
		})
	}

	go func() {
		defer close(workCh)
		for i := range files {
			select {
			case workCh <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	stop := make(chan struct{})
	reporterDone := make(chan struct{})
	go func() {
		defer close(reporterDone)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				send(ctx, progress, Progress{Phase: PhaseReading, Current: int(processed.Load()), Total: total})
			case <-stop:
				return
			}
		}
	}()

	wg.Wait()
	close(stop)
	<-reporterDone

	result := make([]*playlist.Track, 0, total)
	var failed []string
	for i, t := range tracks {
		if t == nil {
			continue // not reached before cancellation
		}
		result = append(result, t)
		if failedAt[i] {
			failed = append(failed, files[i].path)
		}
	}

	send(ctx, progress, Progress{Phase: PhaseReading, Current: total, Total: total})
	return result, failed
}

func readTrack(f fileInfo, read func(string) (*tags.FileInfo, error)) (*playlist.Track, bool) {
	info, err := read(f.path)
	if err != nil || info == nil {
		return &playlist.Track{
			Path:  f.path,
			Title: tags.TitleFromPath(f.path),
			Size:  f.size,
		}, true
	}

	title := info.Title
	if title == "" {
		title = tags.TitleFromPath(f.path)
	}
	return &playlist.Track{
		Path:        f.path,
		Title:       title,
		Artist:      info.Artist,
		Album:       info.Album,
		TrackNumber: info.TrackNumber,
		Duration:    info.Duration,
		Size:        f.size,
	}, false
}

func sortTracks(tracks []*playlist.Track, order SortOrder) {
	slices.SortStableFunc(tracks, func(a, b *playlist.Track) int {
		if order == SortByTitle {
			if c := cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.Path, b.Path)
	})
}

// send delivers p unless the scan was cancelled.
func send(ctx context.Context, progress chan<- Progress, p Progress) {
	if progress == nil {
		return
	}
	select {
	case progress <- p:
	case <-ctx.Done():
	}
}
