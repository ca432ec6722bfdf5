package playlist

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures listener calls.
type recorder struct {
	played []string
	states []State
}

func newSequence(t *testing.T, names ...string) (*Sequence, map[string]*Track, *recorder) {
	t.Helper()

	tracks := make([]*Track, len(names))
	byName := make(map[string]*Track, len(names))
	for i, n := range names {
		tracks[i] = &Track{Path: "/" + n + ".mp3", Title: n}
		byName[n] = tracks[i]
	}

	s := NewSequence()
	rec := &recorder{}
	s.OnTrackChanged(func(tr *Track) { rec.played = append(rec.played, tr.Title) })
	s.OnStateChanged(func(st State) { rec.states = append(rec.states, st) })

	s.SetPlaybackList(tracks)
	rec.played = nil
	rec.states = nil
	return s, byName, rec
}

func titles(s *Sequence) []string {
	result := make([]string, 0, s.Len())
	for _, t := range s.Tracks() {
		result = append(result, t.Title)
	}
	return result
}

func requireInvariants(t *testing.T, s *Sequence) {
	t.Helper()
	c, q, n := s.CurrentIndex(), s.QueuedCount(), s.Len()
	require.GreaterOrEqual(t, c, -1, "current index below sentinel")
	if c < 0 {
		require.Zero(t, n, "sentinel is only used for an empty sequence")
		require.Zero(t, q, "queued count must be 0 without a current track")
		return
	}
	require.Less(t, c, n, "current index out of range")
	require.GreaterOrEqual(t, q, 0)
	require.LessOrEqual(t, q, n-c-1, "queued segment runs past the end")
}

func TestNewSequence(t *testing.T) {
	s := NewSequence()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, -1, s.CurrentIndex())
	assert.Equal(t, 0, s.QueuedCount())
	assert.Nil(t, s.Current())
	assert.False(t, s.PlayCurrent())
}

func TestSequence_SetPlaybackList(t *testing.T) {
	s := NewSequence()
	var played []*Track
	s.OnTrackChanged(func(tr *Track) { played = append(played, tr) })

	a, b := &Track{Path: "/a.mp3"}, &Track{Path: "/b.mp3"}
	started := s.SetPlaybackList([]*Track{a, b})

	assert.True(t, started)
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, 0, s.QueuedCount())
	require.Len(t, played, 1)
	assert.Same(t, a, played[0])
}

func TestSequence_SetPlaybackList_Empty(t *testing.T) {
	s, _, rec := newSequence(t, "A", "B")

	started := s.SetPlaybackList(nil)

	assert.False(t, started)
	assert.Equal(t, -1, s.CurrentIndex())
	assert.Nil(t, s.Current())
	assert.Empty(t, rec.played, "empty list must not start playback")
	require.Len(t, rec.states, 1)
	assert.Equal(t, State{CurrentIndex: -1, Len: 0}, rec.states[0])
}

func TestSequence_SetPlaybackList_ResetsQueue(t *testing.T) {
	s, tr, _ := newSequence(t, "A", "B", "C")
	s.Enqueue(tr["C"])
	s.Next()

	s.SetPlaybackList([]*Track{tr["B"], tr["A"]})

	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, 0, s.QueuedCount())
	assert.Equal(t, []string{"B", "A"}, titles(s))
}

func TestSequence_EnqueueNext_ThenNextPlaysIt(t *testing.T) {
	s, tr, rec := newSequence(t, "A", "B", "C", "D")

	require.True(t, s.EnqueueNext(tr["D"]))
	require.True(t, s.Next())

	assert.Equal(t, []string{"D"}, rec.played)
	assert.Same(t, tr["D"], s.Current())
}

func TestSequence_EnqueueNext_GoesAheadOfQueued(t *testing.T) {
	s, tr, _ := newSequence(t, "A", "B", "C", "D")
	s.Enqueue(tr["C"])

	s.EnqueueNext(tr["D"])

	assert.Equal(t, []string{"A", "D", "C", "B"}, titles(s))
	assert.Equal(t, 2, s.QueuedCount())
}

func TestSequence_Enqueue_PlaysInOrder(t *testing.T) {
	s, tr, rec := newSequence(t, "A", "B", "C", "D", "E")

	s.Enqueue(tr["E"])
	s.Enqueue(tr["C"])
	s.Next()
	s.Next()

	assert.Equal(t, []string{"E", "C"}, rec.played)
	assert.Equal(t, 0, s.QueuedCount())
}

func TestSequence_QueueScenario(t *testing.T) {
	s, tr, rec := newSequence(t, "A", "B", "C", "D")

	s.Enqueue(tr["D"])
	assert.Equal(t, []string{"A", "D", "B", "C"}, titles(s))
	assert.Equal(t, 1, s.QueuedCount())

	s.EnqueueNext(tr["C"])
	assert.Equal(t, []string{"A", "C", "D", "B"}, titles(s))
	assert.Equal(t, 2, s.QueuedCount())

	s.Next()
	assert.Equal(t, 1, s.CurrentIndex())
	assert.Equal(t, 1, s.QueuedCount())

	s.Next()
	assert.Equal(t, 2, s.CurrentIndex())
	assert.Equal(t, 0, s.QueuedCount())

	s.Next()
	assert.Equal(t, 3, s.CurrentIndex())
	assert.Equal(t, 0, s.QueuedCount())

	assert.Equal(t, []string{"C", "D", "B"}, rec.played)
}

func TestSequence_Enqueue_NoOps(t *testing.T) {
	s, tr, rec := newSequence(t, "A", "B")
	stranger := &Track{Path: "/A.mp3", Title: "A"}

	assert.False(t, s.Enqueue(stranger), "unknown track")
	assert.False(t, s.EnqueueNext(stranger), "unknown track")
	assert.False(t, s.Enqueue(tr["A"]), "current track")
	assert.False(t, s.EnqueueNext(tr["A"]), "current track")

	assert.Equal(t, []string{"A", "B"}, titles(s))
	assert.Equal(t, 0, s.QueuedCount())
	assert.Empty(t, rec.states, "no-ops must not notify")
}

func TestSequence_Enqueue_AlreadyQueued_NotCountedTwice(t *testing.T) {
	s, tr, _ := newSequence(t, "A", "B", "C", "D")
	s.Enqueue(tr["C"])
	s.Enqueue(tr["D"])

	s.Enqueue(tr["C"])

	assert.Equal(t, []string{"A", "D", "C", "B"}, titles(s))
	assert.Equal(t, 2, s.QueuedCount())
}

func TestSequence_Enqueue_TrackBeforeCurrent(t *testing.T) {
	s, tr, _ := newSequence(t, "A", "B", "C", "D")
	s.PlayFrom(tr["C"])

	s.Enqueue(tr["A"])

	assert.Equal(t, []string{"B", "C", "A", "D"}, titles(s))
	assert.Same(t, tr["C"], s.Current())
	assert.Equal(t, 1, s.QueuedCount())
}

func TestSequence_Enqueue_AtEndOfSequence(t *testing.T) {
	s, tr, _ := newSequence(t, "A", "B", "C", "D")
	s.PlayFrom(tr["C"])
	s.Enqueue(tr["D"])

	s.Enqueue(tr["A"])

	assert.Equal(t, []string{"B", "C", "D", "A"}, titles(s))
	assert.Equal(t, 2, s.QueuedCount())
	requireInvariants(t, s)
}

func TestSequence_PlayFrom_InsideQueue(t *testing.T) {
	s, tr, rec := newSequence(t, "A", "B", "C", "D", "E", "F")
	s.Enqueue(tr["D"])
	s.Enqueue(tr["E"])
	s.Enqueue(tr["F"])
	require.Equal(t, []string{"A", "D", "E", "F", "B", "C"}, titles(s))

	require.True(t, s.PlayFrom(tr["E"]))

	assert.Equal(t, 2, s.CurrentIndex())
	assert.Equal(t, 1, s.QueuedCount(), "skipping D consumes it, F stays queued")
	assert.Equal(t, []string{"E"}, rec.played)
}

func TestSequence_PlayFrom_OutsideQueueResets(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"natural remainder", "C"},
		{"before current", "A"},
		{"current itself", "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, tr, _ := newSequence(t, "A", "B", "C", "D", "E")
			s.Next()
			s.Enqueue(tr["E"])
			require.Equal(t, 1, s.QueuedCount())

			s.PlayFrom(tr[tt.target])

			assert.Same(t, tr[tt.target], s.Current())
			assert.Equal(t, 0, s.QueuedCount())
		})
	}
}

func TestSequence_PlayFrom_Unknown(t *testing.T) {
	s, _, rec := newSequence(t, "A", "B")

	assert.False(t, s.PlayFrom(&Track{Path: "/B.mp3"}))
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Empty(t, rec.played)
}

func TestSequence_Remove(t *testing.T) {
	s, tr, _ := newSequence(t, "A", "B", "C", "D", "E")
	s.PlayFrom(tr["B"])
	s.Enqueue(tr["E"])
	require.Equal(t, []string{"A", "B", "E", "C", "D"}, titles(s))

	s.Remove(tr["A"])
	assert.Equal(t, 0, s.CurrentIndex(), "current index follows B")
	assert.Same(t, tr["B"], s.Current())
	assert.Equal(t, 1, s.QueuedCount())

	s.Remove(tr["D"])
	assert.Equal(t, 1, s.QueuedCount(), "natural track does not touch the queue")

	s.Remove(tr["E"])
	assert.Equal(t, 0, s.QueuedCount(), "queued track shrinks the queue")
	assert.Equal(t, []string{"B", "C"}, titles(s))
	requireInvariants(t, s)
}

func TestSequence_Remove_Unknown(t *testing.T) {
	s, _, rec := newSequence(t, "A", "B")

	assert.False(t, s.Remove(&Track{Path: "/A.mp3"}))
	assert.Equal(t, 2, s.Len())
	assert.Empty(t, rec.states)
}

// Removing the current track does not auto-advance: the slot keeps its
// index and nothing is played until the caller follows with Next.
func TestSequence_Remove_CurrentDoesNotAdvance(t *testing.T) {
	s, tr, rec := newSequence(t, "A", "B", "C", "D")
	s.Next()
	s.Enqueue(tr["D"])
	require.Equal(t, []string{"A", "B", "D", "C"}, titles(s))
	rec.played = nil

	require.True(t, s.Remove(tr["B"]))

	assert.Empty(t, rec.played, "no auto-advance")
	assert.Equal(t, []string{"A", "D", "C"}, titles(s))
	assert.Equal(t, 1, s.CurrentIndex())
	assert.Same(t, tr["D"], s.Current())
	assert.Equal(t, 1, s.QueuedCount())
	requireInvariants(t, s)

	s.Next()
	assert.Equal(t, []string{"C"}, rec.played)
}

func TestSequence_Remove_FirstCurrentKeepsQueue(t *testing.T) {
	s, tr, rec := newSequence(t, "A", "B", "C", "D")
	s.Enqueue(tr["D"])

	require.True(t, s.Remove(tr["A"]))

	assert.Empty(t, rec.played)
	assert.Equal(t, []string{"D", "B", "C"}, titles(s))
	assert.Equal(t, 0, s.CurrentIndex(), "a non-empty sequence keeps a current track")
	assert.Same(t, tr["D"], s.Current())
	assert.Equal(t, 1, s.QueuedCount())
	requireInvariants(t, s)
}

func TestSequence_Remove_LastCurrentClamps(t *testing.T) {
	s, tr, rec := newSequence(t, "A", "B", "C")
	s.PlayFrom(tr["C"])
	rec.played = nil

	require.True(t, s.Remove(tr["C"]))

	assert.Equal(t, 1, s.CurrentIndex())
	assert.Same(t, tr["B"], s.Current())
	assert.Equal(t, 0, s.QueuedCount())
	assert.False(t, s.Next())
	assert.Empty(t, rec.played)
	requireInvariants(t, s)
}

func TestSequence_Remove_LastRemaining(t *testing.T) {
	s, tr, _ := newSequence(t, "A")

	s.Remove(tr["A"])

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, -1, s.CurrentIndex())
	assert.False(t, s.Next())
	assert.False(t, s.Back())
}

func TestSequence_MoveAndAdjustQueue(t *testing.T) {
	tests := []struct {
		name        string
		move        string
		to          int
		wantOrder   []string
		wantCurrent string
		wantQueued  int
	}{
		{
			name:        "queued track leaves the segment",
			move:        "E",
			to:          5,
			wantOrder:   []string{"A", "B", "F", "C", "D", "E"},
			wantCurrent: "B",
			wantQueued:  1,
		},
		{
			name:        "queued track reordered inside the segment",
			move:        "F",
			to:          2,
			wantOrder:   []string{"A", "B", "F", "E", "C", "D"},
			wantCurrent: "B",
			wantQueued:  2,
		},
		{
			name:        "natural track joins at the boundary",
			move:        "D",
			to:          4,
			wantOrder:   []string{"A", "B", "E", "F", "D", "C"},
			wantCurrent: "B",
			wantQueued:  3,
		},
		{
			name:        "natural track moved within the remainder",
			move:        "C",
			to:          5,
			wantOrder:   []string{"A", "B", "E", "F", "D", "C"},
			wantCurrent: "B",
			wantQueued:  2,
		},
		{
			name:        "track before current moved past it",
			move:        "A",
			to:          5,
			wantOrder:   []string{"B", "E", "F", "C", "D", "A"},
			wantCurrent: "B",
			wantQueued:  2,
		},
		{
			name:        "queued track moved before current",
			move:        "E",
			to:          0,
			wantOrder:   []string{"E", "A", "B", "F", "C", "D"},
			wantCurrent: "B",
			wantQueued:  1,
		},
		{
			// Deliberately resets the count instead of applying the queued
			// segment rule with a zero relative position.
			name:        "current track moves and drops the queue",
			move:        "B",
			to:          5,
			wantOrder:   []string{"A", "E", "F", "C", "D", "B"},
			wantCurrent: "B",
			wantQueued:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, tr, rec := newSequence(t, "A", "B", "C", "D", "E", "F")
			s.Next()
			s.Enqueue(tr["E"])
			s.Enqueue(tr["F"])
			require.Equal(t, []string{"A", "B", "E", "F", "C", "D"}, titles(s))
			rec.played = nil

			require.True(t, s.MoveAndAdjustQueue(tr[tt.move], tt.to))

			assert.Equal(t, tt.wantOrder, titles(s))
			assert.Same(t, tr[tt.wantCurrent], s.Current())
			assert.Equal(t, tt.wantQueued, s.QueuedCount())
			assert.Empty(t, rec.played, "moving never starts playback")
			requireInvariants(t, s)
		})
	}
}

func TestSequence_MoveAndAdjustQueue_RoundTrip(t *testing.T) {
	s, tr, _ := newSequence(t, "A", "B", "C", "D", "E")
	s.Enqueue(tr["D"])
	s.Enqueue(tr["E"])
	original := titles(s)
	require.Equal(t, 2, s.QueuedCount())

	s.MoveAndAdjustQueue(tr["D"], 4)
	require.Equal(t, 1, s.QueuedCount())

	s.MoveAndAdjustQueue(tr["D"], 1)

	assert.Equal(t, original, titles(s))
	assert.Equal(t, 2, s.QueuedCount())
}

func TestSequence_MoveAndAdjustQueue_NoOps(t *testing.T) {
	s, tr, rec := newSequence(t, "A", "B", "C")

	assert.False(t, s.MoveAndAdjustQueue(&Track{}, 1), "unknown track")
	assert.False(t, s.MoveAndAdjustQueue(tr["B"], -1), "negative index")
	assert.False(t, s.MoveAndAdjustQueue(tr["B"], 3), "index past end")
	assert.False(t, s.MoveAndAdjustQueue(tr["B"], 1), "same index")

	assert.Equal(t, []string{"A", "B", "C"}, titles(s))
	assert.Empty(t, rec.states)
}

func TestSequence_Next(t *testing.T) {
	s, tr, rec := newSequence(t, "A", "B", "C")
	s.Enqueue(tr["C"])

	s.Next()
	assert.Equal(t, 0, s.QueuedCount(), "advancing consumes a queued slot")

	s.Next()
	assert.Equal(t, 2, s.CurrentIndex())

	assert.False(t, s.Next(), "end of sequence")
	assert.Equal(t, 2, s.CurrentIndex())
	assert.Equal(t, []string{"C", "B"}, rec.played)
}

// Back never gives consumed queue slots back, unlike Next which consumes them.
func TestSequence_Back_LeavesQueuedCount(t *testing.T) {
	s, tr, rec := newSequence(t, "A", "B", "C", "D")
	s.Next()
	s.Enqueue(tr["D"])
	rec.played = nil

	require.True(t, s.Back())

	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, 1, s.QueuedCount())
	assert.Equal(t, []string{"A"}, rec.played)

	assert.False(t, s.Back(), "start of sequence")
}

func TestSequence_PlayCurrent_Renotifies(t *testing.T) {
	s, _, rec := newSequence(t, "A", "B")

	assert.True(t, s.PlayCurrent())
	assert.True(t, s.PlayCurrent())

	assert.Equal(t, []string{"A", "A"}, rec.played)
	assert.Empty(t, rec.states, "PlayCurrent does not mutate")
}

func TestSequence_ListenerCancel(t *testing.T) {
	s := NewSequence()
	calls := 0
	cancel := s.OnTrackChanged(func(*Track) { calls++ })
	other := 0
	s.OnTrackChanged(func(*Track) { other++ })

	s.SetPlaybackList([]*Track{{Path: "/a.mp3"}, {Path: "/b.mp3"}})
	cancel()
	s.Next()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestSequence_QueueRange(t *testing.T) {
	s, tr, _ := newSequence(t, "A", "B", "C", "D")
	s.Next()
	s.Enqueue(tr["D"])

	start, end := s.QueueRange()

	assert.Equal(t, 2, start)
	assert.Equal(t, 3, end)
	assert.False(t, s.IsQueued(1))
	assert.True(t, s.IsQueued(2))
	assert.False(t, s.IsQueued(3))
}

func TestSequence_Invariants_RandomOperations(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}

	for range 50 {
		s, _, _ := newSequence(t, names...)
		for range 200 {
			tracks := s.Tracks()
			var pick *Track
			if len(tracks) > 0 {
				pick = tracks[rng.IntN(len(tracks))]
			}
			switch rng.IntN(8) {
			case 0:
				s.EnqueueNext(pick)
			case 1:
				s.Enqueue(pick)
			case 2:
				s.PlayFrom(pick)
			case 3:
				if rng.IntN(4) == 0 {
					s.Remove(pick)
				}
			case 4:
				s.MoveAndAdjustQueue(pick, rng.IntN(len(tracks)+1))
			case 5:
				s.Next()
			case 6:
				s.Back()
			case 7:
				s.PlayCurrent()
			}
			requireInvariants(t, s)
		}
	}
}
