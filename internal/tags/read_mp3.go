package tags

import (
	"github.com/bogem/id3v2/v2"
)

// readMP3WithID3v2 reads MP3 metadata using only the id3v2 library.
func readMP3WithID3v2(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	track, _ := parseNumberPair(textFrame(id3tag, "TRCK"))
	disc, _ := parseNumberPair(textFrame(id3tag, "TPOS"))

	date := textFrame(id3tag, "TDRC") // ID3v2.4
	if date == "" {
		date = id3tag.Year()
	}

	t := &Tag{
		Path:        path,
		Title:       id3tag.Title(),
		Artist:      id3tag.Artist(),
		AlbumArtist: textFrame(id3tag, "TPE2"),
		Album:       id3tag.Album(),
		Genre:       id3tag.Genre(),
		TrackNumber: track,
		DiscNumber:  disc,
		Date:        date,
	}
	t.Sanitize()
	return t, nil
}

// textFrame reads a text frame value from an ID3v2 tag.
func textFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}
