// Package tags reads tag metadata and audio stream properties from the
// formats the player can decode: MP3, FLAC and WAV.
package tags

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// File extensions supported by the tags package.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtWAV  = ".wav"
)

const id3Magic = "ID3"

// Tag contains the metadata shown for a track.
type Tag struct {
	Path        string
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Genre       string
	TrackNumber int
	DiscNumber  int
	Date        string // YYYY-MM-DD or YYYY
}

// Year derives the year from the Date field.
// Returns 0 if Date is empty or cannot be parsed.
func (t *Tag) Year() int {
	year := t.Date
	if len(year) > 4 {
		year = year[:4]
	}
	y, _ := strconv.Atoi(year)
	return y
}

// Sanitize trims whitespace and fills the title from the file name.
func (t *Tag) Sanitize() {
	t.Title = strings.TrimSpace(t.Title)
	t.Artist = strings.TrimSpace(t.Artist)
	t.AlbumArtist = strings.TrimSpace(t.AlbumArtist)
	t.Album = strings.TrimSpace(t.Album)
	t.Genre = strings.TrimSpace(t.Genre)
	if t.Title == "" {
		t.Title = TitleFromPath(t.Path)
	}
	if t.AlbumArtist == "" {
		t.AlbumArtist = t.Artist
	}
}

// TitleFromPath returns the file name of path without its extension.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// AudioInfo contains audio stream properties (not tags).
type AudioInfo struct {
	Duration   time.Duration
	Format     string // MP3, FLAC, WAV
	SampleRate int
	BitDepth   int
}

// FileInfo combines Tag and AudioInfo for a complete file description.
type FileInfo struct {
	Tag
	AudioInfo
}

// IsMusicFile returns true if the path has a supported music file extension.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtFLAC, ExtWAV:
		return true
	}
	return false
}

// taglibTags wraps a taglib result map with helper methods.
type taglibTags map[string][]string

// get returns the first value for any of the given keys, or "" if not found.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// number parses a track/disc value that may be "N" or "N/M".
func (t taglibTags) number(key string) int {
	n, _ := parseNumberPair(t.get(key))
	return n
}

// parseNumberPair parses a number string like "5" or "5/10".
func parseNumberPair(s string) (num, total int) {
	first, rest, found := strings.Cut(strings.TrimSpace(s), "/")
	num, _ = strconv.Atoi(first)
	if found {
		total, _ = strconv.Atoi(rest)
	}
	return num, total
}
