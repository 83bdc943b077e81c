package project

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"clipcut/internal/timeline"
)

// ErrMalformedProject marks project documents that cannot be decoded into a
// usable timeline: broken XML, missing required attributes, or placement
// sequences that violate track ordering.
var ErrMalformedProject = errors.New("malformed project")

// Options controls how a document maps onto timeline input.
type Options struct {
	// AssetBinID names the playlist that holds imported assets rather than
	// timeline content.
	AssetBinID string
	// MediaSourcePrefix identifies producer references that point at
	// imported media clips; other producer kinds are skipped.
	MediaSourcePrefix string
}

// DefaultOptions returns the identifiers the editor writes by default.
func DefaultOptions() Options {
	return Options{AssetBinID: "main_bin", MediaSourcePrefix: "chain"}
}

// Project is the decoded, timeline-ready view of one project file.
type Project struct {
	// Registry resolves source identifiers to media filenames.
	Registry *Registry
	// Tracks holds every built track in document order, including invalid
	// ones (the visibility filter drops those).
	Tracks []timeline.Track
	// HideModes carries the mixer's per-track hide declarations. Only
	// tracks the mixer annotates appear here.
	HideModes map[string]timeline.HideMode
}

// Parse decodes a project document and builds its tracks.
func Parse(r io.Reader, opts Options) (*Project, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProject, err)
	}

	resources := make(map[string]string, len(doc.Chains))
	for _, chain := range doc.Chains {
		if chain.ID == "" {
			return nil, fmt.Errorf("%w: chain missing id", ErrMalformedProject)
		}
		resource, ok := chain.resource()
		if !ok {
			return nil, fmt.Errorf("%w: chain %s missing resource property", ErrMalformedProject, chain.ID)
		}
		resources[chain.ID] = strings.TrimSpace(resource)
	}

	builder := timeline.Builder{
		AssetBinID: opts.AssetBinID,
		IsMediaSource: func(sourceID string) bool {
			return strings.HasPrefix(sourceID, opts.MediaSourcePrefix)
		},
	}

	tracks := make([]timeline.Track, 0, len(doc.Playlists))
	for _, playlist := range doc.Playlists {
		track, err := builder.Build(playlist.ID, playlist.Events)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedProject, err)
		}
		tracks = append(tracks, track)
	}

	hideModes := make(map[string]timeline.HideMode)
	for _, tractor := range doc.Tractors {
		for _, decl := range tractor.Tracks {
			if decl.Producer == "" || decl.Hide == nil {
				continue
			}
			hideModes[decl.Producer] = timeline.HideMode(*decl.Hide)
		}
	}

	return &Project{
		Registry:  &Registry{resources: resources},
		Tracks:    tracks,
		HideModes: hideModes,
	}, nil
}

// Load parses the project file at path.
func Load(path string, opts Options) (*Project, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open project: %w", err)
	}
	defer file.Close()
	proj, err := Parse(file, opts)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", path, err)
	}
	return proj, nil
}
