package timeline

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrWindowOutOfRange marks a query window that opens before the first
// placed clip on the track, so no clip can cover or precede its start.
var ErrWindowOutOfRange = errors.New("window precedes first clip")

// Window is a half-open [Start, End) interval in track-origin time.
type Window struct {
	Start time.Duration
	End   time.Duration
}

// Duration returns End - Start.
func (w Window) Duration() time.Duration {
	return w.End - w.Start
}

// Segment is one query result: a placed clip together with the source
// sub-range to extract for the window.
type Segment struct {
	Clip        PlacedClip
	SourceStart time.Duration
	SourceEnd   time.Duration
}

// Query returns the clips intersecting the window, trimmed to it, in
// timeline order.
//
// The rightmost clip starting at or before the window start is always the
// first result, even when the window opens in a gap after it. Subsequent
// clips are included while they start before the window end. For each clip
// the source start shifts by however far the window start falls inside the
// clip, and the source end is the natural out point when the clip is
// shorter than the window, otherwise the shifted start plus the window
// length. The end is deliberately not clamped to the clip's out point in
// the long-clip case; downstream trimming tolerates over-requests the same
// way the project writer does.
func (t Track) Query(window Window) ([]Segment, error) {
	if !t.Valid || len(t.Clips) == 0 {
		return nil, fmt.Errorf("%w: track %s has no clips", ErrWindowOutOfRange, t.ID)
	}

	// First clip with TimelineStart > window.Start; its predecessor is the
	// rightmost clip starting at or before the window.
	next := sort.Search(len(t.Clips), func(i int) bool {
		return t.Clips[i].TimelineStart > window.Start
	})
	if next == 0 {
		return nil, fmt.Errorf("%w: track %s starts at %v, window starts at %v",
			ErrWindowOutOfRange, t.ID, t.Clips[0].TimelineStart, window.Start)
	}

	segments := []Segment{t.trim(t.Clips[next-1], window)}
	for i := next; i < len(t.Clips); i++ {
		if t.Clips[i].TimelineStart >= window.End {
			break
		}
		segments = append(segments, t.trim(t.Clips[i], window))
	}
	return segments, nil
}

func (t Track) trim(clip PlacedClip, window Window) Segment {
	offset := window.Start - clip.TimelineStart
	if offset < 0 {
		offset = 0
	}
	start := clip.SourceIn + offset
	end := clip.SourceOut
	if clip.Duration() >= window.Duration() {
		end = start + window.Duration()
	}
	return Segment{Clip: clip, SourceStart: start, SourceEnd: end}
}
