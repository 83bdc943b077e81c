package timeline

import "time"

// Event is one placement instruction on a track, in document order.
type Event interface {
	isEvent()
}

// Gap advances the timeline cursor without placing a clip.
type Gap struct {
	Length time.Duration
}

// ClipRef places the [SourceIn, SourceOut) sub-range of a media source at
// the current cursor position.
type ClipRef struct {
	SourceID  string
	SourceIn  time.Duration
	SourceOut time.Duration
}

func (Gap) isEvent()     {}
func (ClipRef) isEvent() {}
