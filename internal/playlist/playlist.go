package playlist

import "time"

// Track represents a single playable file.
// Tracks are compared by pointer identity: two *Track values with the same
// Path are still different entries.
type Track struct {
	Path        string // file path for playback
	Title       string
	Artist      string
	Album       string
	TrackNumber int
	Duration    time.Duration
	Size        int64 // file size in bytes
}

// Playlist holds an ordered collection of tracks.
type Playlist struct {
	tracks []*Track
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		tracks: make([]*Track, 0),
	}
}

// Set replaces the contents with tracks, preserving their order.
// Nil entries are skipped.
func (p *Playlist) Set(tracks []*Track) {
	p.tracks = make([]*Track, 0, len(tracks))
	for _, t := range tracks {
		if t != nil {
			p.tracks = append(p.tracks, t)
		}
	}
}

// Add appends tracks to the playlist.
func (p *Playlist) Add(tracks ...*Track) {
	for _, t := range tracks {
		if t != nil {
			p.tracks = append(p.tracks, t)
		}
	}
}

// Insert places track at index, clamped to [0, Len()].
// Returns the index the track ended up at.
func (p *Playlist) Insert(index int, track *Track) int {
	index = min(max(index, 0), len(p.tracks))
	p.tracks = append(p.tracks, nil)
	copy(p.tracks[index+1:], p.tracks[index:])
	p.tracks[index] = track
	return index
}

// Remove removes the track at the given index.
// Returns false if index is out of bounds.
func (p *Playlist) Remove(index int) bool {
	if index < 0 || index >= len(p.tracks) {
		return false
	}
	copy(p.tracks[index:], p.tracks[index+1:])
	p.tracks[len(p.tracks)-1] = nil
	p.tracks = p.tracks[:len(p.tracks)-1]
	return true
}

// Move moves the track at fromIndex to toIndex.
// Returns false if either index is out of bounds.
func (p *Playlist) Move(fromIndex, toIndex int) bool {
	if fromIndex < 0 || fromIndex >= len(p.tracks) {
		return false
	}
	if toIndex < 0 || toIndex >= len(p.tracks) {
		return false
	}
	if fromIndex == toIndex {
		return true
	}

	track := p.tracks[fromIndex]
	if fromIndex < toIndex {
		copy(p.tracks[fromIndex:toIndex], p.tracks[fromIndex+1:toIndex+1])
	} else {
		copy(p.tracks[toIndex+1:fromIndex+1], p.tracks[toIndex:fromIndex])
	}
	p.tracks[toIndex] = track
	return true
}

// IndexOf returns the index of the first entry identical to track, or -1.
func (p *Playlist) IndexOf(track *Track) int {
	if track == nil {
		return -1
	}
	for i, t := range p.tracks {
		if t == track {
			return i
		}
	}
	return -1
}

// Clear removes all tracks from the playlist.
func (p *Playlist) Clear() {
	clear(p.tracks)
	p.tracks = p.tracks[:0]
}

// Tracks returns a copy of the track list. The *Track values are shared.
func (p *Playlist) Tracks() []*Track {
	result := make([]*Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return p.tracks[index]
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}
