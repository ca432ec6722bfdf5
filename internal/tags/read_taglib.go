package tags

import (
	"go.senan.xyz/taglib"
)

// readWithTaglib reads FLAC or WAV metadata through TagLib.
func readWithTaglib(path string) (*Tag, error) {
	raw, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	tags := taglibTags(raw)

	t := &Tag{
		Path:        path,
		Title:       tags.get(taglib.Title),
		Artist:      tags.get(taglib.Artist),
		AlbumArtist: tags.get(taglib.AlbumArtist),
		Album:       tags.get(taglib.Album),
		Genre:       tags.get(taglib.Genre),
		TrackNumber: tags.number(taglib.TrackNumber),
		DiscNumber:  tags.number(taglib.DiscNumber),
		Date:        tags.get(taglib.Date, "YEAR"),
	}
	t.Sanitize()
	return t, nil
}
