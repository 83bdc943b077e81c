package timeline

import (
	"errors"
	"fmt"
)

// HideMode is the per-track playback suppression flag declared by the
// project's mixer element.
type HideMode string

const (
	HideNone  HideMode = ""
	HideAudio HideMode = "audio"
	HideVideo HideMode = "video"
	HideBoth  HideMode = "both"
)

// ErrUnknownTrackDeclaration marks a valid track that has no entry at all
// in the mixer's hide declarations. The source format declares every
// combined track, so a missing entry is a structural fault rather than an
// implicit "visible".
var ErrUnknownTrackDeclaration = errors.New("track missing visibility declaration")

// FilterVisible returns the tracks that remain audible or visible, in the
// order given. Only a declaration of HideBoth excludes a track; audio-only
// and video-only suppression still leave extractable content. Invalid
// tracks are dropped silently, but a valid track without any declaration
// is an error.
func FilterVisible(tracks []Track, declarations map[string]HideMode) ([]Track, error) {
	visible := make([]Track, 0, len(tracks))
	for _, track := range tracks {
		if !track.Valid {
			continue
		}
		mode, ok := declarations[track.ID]
		if !ok {
			return nil, fmt.Errorf("%w: track %s", ErrUnknownTrackDeclaration, track.ID)
		}
		if mode == HideBoth {
			continue
		}
		visible = append(visible, track)
	}
	return visible, nil
}
