package timeline

import (
	"errors"
	"fmt"
	"time"
)

// ErrOutOfOrder marks placement events whose cumulative cursor would move
// backwards or clip ranges whose out point does not follow the in point.
// Input tracks are monotonic by construction, so either case means the
// project document is corrupt.
var ErrOutOfOrder = errors.New("out-of-order clip placement")

// PlacedClip is one occurrence of a media source on a track.
type PlacedClip struct {
	SourceID      string
	TimelineStart time.Duration
	SourceIn      time.Duration
	SourceOut     time.Duration
}

// Duration returns the placed length, SourceOut - SourceIn.
func (c PlacedClip) Duration() time.Duration {
	return c.SourceOut - c.SourceIn
}

// TimelineEnd returns the first instant past the clip on the track.
func (c PlacedClip) TimelineEnd() time.Duration {
	return c.TimelineStart + c.Duration()
}

// Track is an ordered sequence of placed clips. Invalid tracks carry no
// usable clip entries and are excluded from visibility filtering and
// querying.
type Track struct {
	ID    string
	Clips []PlacedClip
	Valid bool
}

// Builder turns placement event sequences into tracks. AssetBinID names the
// container track that holds imported assets rather than timeline content;
// IsMediaSource reports whether a producer identifier references an
// imported media clip (as opposed to other producer kinds).
type Builder struct {
	AssetBinID    string
	IsMediaSource func(sourceID string) bool
}

// Build folds the ordered event sequence into a track. Gaps advance the
// cursor, recognized clip references are placed at the cursor and advance
// it by their duration, and unrecognized producer references are skipped
// without moving the cursor. The asset-bin track short-circuits to an
// empty, invalid track without touching its events.
func (b Builder) Build(trackID string, events []Event) (Track, error) {
	track := Track{ID: trackID}
	if trackID == b.AssetBinID {
		return track, nil
	}

	var cursor time.Duration
	for _, event := range events {
		switch ev := event.(type) {
		case Gap:
			cursor += ev.Length
		case ClipRef:
			if b.IsMediaSource != nil && !b.IsMediaSource(ev.SourceID) {
				continue
			}
			if ev.SourceOut <= ev.SourceIn {
				return Track{ID: trackID}, fmt.Errorf("%w: track %s: clip %s out %v not after in %v",
					ErrOutOfOrder, trackID, ev.SourceID, ev.SourceOut, ev.SourceIn)
			}
			clip := PlacedClip{
				SourceID:      ev.SourceID,
				TimelineStart: cursor,
				SourceIn:      ev.SourceIn,
				SourceOut:     ev.SourceOut,
			}
			if last := len(track.Clips) - 1; last >= 0 {
				if prev := track.Clips[last]; clip.TimelineStart < prev.TimelineEnd() {
					return Track{ID: trackID}, fmt.Errorf("%w: track %s: clip %s at %v overlaps previous clip ending at %v",
						ErrOutOfOrder, trackID, ev.SourceID, clip.TimelineStart, prev.TimelineEnd())
				}
			}
			track.Clips = append(track.Clips, clip)
			track.Valid = true
			cursor += clip.Duration()
		default:
			return Track{ID: trackID}, fmt.Errorf("track %s: unknown event type %T", trackID, event)
		}
	}
	return track, nil
}
