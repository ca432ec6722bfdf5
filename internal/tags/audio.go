package tags

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	goflac "github.com/go-flac/go-flac"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"
	"github.com/llehouerou/go-mp3"
)

// ErrUnsupportedFormat is returned for files that are not MP3, FLAC or WAV.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ReadAudioInfo reads audio stream properties (duration, format, sample rate).
// Header data is used where the format allows it instead of full decoding.
func ReadAudioInfo(path string) (*AudioInfo, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ExtMP3:
		return readMP3AudioInfo(path)
	case ExtFLAC:
		return readFLACStreamInfo(path)
	case ExtWAV:
		return readWAVAudioInfo(path)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

func readMP3AudioInfo(path string) (*AudioInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, err
	}

	sampleRate := decoder.SampleRate()
	if sampleRate == 0 {
		return nil, errors.New("mp3: invalid sample rate")
	}
	sampleCount := max(decoder.SampleCount(), 0)

	return &AudioInfo{
		Duration:   samplesToDuration(sampleCount, sampleRate),
		Format:     "MP3",
		SampleRate: sampleRate,
		BitDepth:   16,
	}, nil
}

// readFLACStreamInfo decodes the STREAMINFO metadata block.
func readFLACStreamInfo(path string) (*AudioInfo, error) {
	flacFile, err := goflac.ParseFile(path)
	if err != nil {
		// go-flac rejects files with a prepended ID3v2 tag
		return readFLACWithBeep(path)
	}

	for _, meta := range flacFile.Meta {
		if meta.Type != goflac.StreamInfo || len(meta.Data) < 18 {
			continue
		}
		d := meta.Data

		// Bytes 10-17: sample rate (20 bits), channels-1 (3), bits per sample-1 (5), total samples (36)
		sampleRate := int(d[10])<<12 | int(d[11])<<4 | int(d[12])>>4
		bitsPerSample := (int(d[12])&0x01)<<4 | int(d[13])>>4 + 1
		totalSamples := int64(d[13]&0x0F)<<32 | int64(d[14])<<24 | int64(d[15])<<16 | int64(d[16])<<8 | int64(d[17])

		return &AudioInfo{
			Duration:   samplesToDuration(totalSamples, sampleRate),
			Format:     "FLAC",
			SampleRate: sampleRate,
			BitDepth:   bitsPerSample,
		}, nil
	}

	return readFLACWithBeep(path)
}

func readFLACWithBeep(path string) (*AudioInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if err := skipID3v2(f); err != nil {
		f.Close()
		return nil, err
	}

	streamer, format, err := flac.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	defer streamer.Close()

	return &AudioInfo{
		Duration:   format.SampleRate.D(streamer.Len()),
		Format:     "FLAC",
		SampleRate: int(format.SampleRate),
		BitDepth:   format.Precision * 8,
	}, nil
}

func readWAVAudioInfo(path string) (*AudioInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	defer streamer.Close()

	return &AudioInfo{
		Duration:   format.SampleRate.D(streamer.Len()),
		Format:     "WAV",
		SampleRate: int(format.SampleRate),
		BitDepth:   format.Precision * 8,
	}, nil
}

func samplesToDuration[T ~int | ~int64](samples T, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(samples) / float64(sampleRate) * float64(time.Second))
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of r.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	if n < 10 || string(header[0:3]) != id3Magic {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
