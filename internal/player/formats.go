package player

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
)

// ErrUnsupportedFormat is returned by Play for files that cannot be decoded.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Extensions lists the file extensions the player can decode.
func Extensions() []string {
	return []string{extMP3, extFLAC, extWAV}
}

// Supported reports whether path has a playable extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV:
		return true
	}
	return false
}

// FormatName returns the short codec name shown for path ("MP3", "FLAC", "WAV").
func FormatName(path string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
}

// decode picks a decoder by extension. On success the returned streamer owns rc.
func decode(rc io.ReadSeekCloser, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case extMP3:
		return decodeGoMP3(rc)
	case extFLAC:
		// Some taggers prepend an ID3v2 block to FLAC files
		if err := skipID3v2(rc); err != nil {
			return nil, beep.Format{}, err
		}
		return flac.Decode(rc)
	case extWAV:
		return wav.Decode(rc)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of r,
// otherwise rewinds to the start.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// Syncsafe integer: 7 bits per byte
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])

	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
