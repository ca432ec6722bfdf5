package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
)

// Read reads tag metadata from a music file.
//
// dhowden/tag is tried first. When it fails, MP3 files fall back to
// bogem/id3v2 and FLAC/WAV files to TagLib.
func Read(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		switch strings.ToLower(filepath.Ext(path)) {
		case ExtMP3:
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			return readMP3WithID3v2(path)
		case ExtFLAC, ExtWAV:
			return readWithTaglib(path)
		}
		return nil, fmt.Errorf("read tags: %w", err)
	}

	track, _ := m.Track()
	disc, _ := m.Disc()

	t := &Tag{
		Path:        path,
		Title:       m.Title(),
		Artist:      m.Artist(),
		AlbumArtist: m.AlbumArtist(),
		Album:       m.Album(),
		Genre:       m.Genre(),
		TrackNumber: track,
		DiscNumber:  disc,
		Date:        yearToDate(m.Year()),
	}
	t.Sanitize()
	return t, nil
}

// ReadWithAudio reads both tag metadata and audio stream properties.
// Unreadable tags are not an error: the title falls back to the file name.
func ReadWithAudio(path string) (*FileInfo, error) {
	t, err := Read(path)
	if err != nil {
		t = &Tag{Path: path}
		t.Sanitize()
	}

	audio, err := ReadAudioInfo(path)
	if err != nil {
		return nil, err
	}

	return &FileInfo{
		Tag:       *t,
		AudioInfo: *audio,
	}, nil
}

func yearToDate(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}
