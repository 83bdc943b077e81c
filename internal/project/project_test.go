package project_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"clipcut/internal/project"
	"clipcut/internal/testsupport"
	"clipcut/internal/timeline"
)

func parseSample(t *testing.T) *project.Project {
	t.Helper()
	proj, err := project.Parse(strings.NewReader(testsupport.SampleProjectXML), project.DefaultOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return proj
}

func TestParseRegistry(t *testing.T) {
	proj := parseSample(t)

	if proj.Registry.Len() != 2 {
		t.Fatalf("expected 2 registered sources, got %d", proj.Registry.Len())
	}
	resource, err := proj.Registry.Resolve("chain0")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resource != "/media/beach_day.mp4" {
		t.Fatalf("unexpected resource: %q", resource)
	}

	_, err = proj.Registry.Resolve("chain9")
	if !errors.Is(err, project.ErrUnresolvedSource) {
		t.Fatalf("expected ErrUnresolvedSource, got %v", err)
	}
}

func TestParseBuildsTracksInDocumentOrder(t *testing.T) {
	proj := parseSample(t)

	if len(proj.Tracks) != 3 {
		t.Fatalf("expected 3 tracks, got %d", len(proj.Tracks))
	}
	if proj.Tracks[0].ID != "main_bin" || proj.Tracks[0].Valid {
		t.Fatalf("asset bin not excluded: %+v", proj.Tracks[0])
	}

	track := proj.Tracks[1]
	if track.ID != "playlist0" || !track.Valid {
		t.Fatalf("unexpected track: %+v", track)
	}
	if len(track.Clips) != 2 {
		t.Fatalf("expected 2 clips, got %d", len(track.Clips))
	}
	if track.Clips[0].TimelineStart != 2*time.Second {
		t.Fatalf("first clip start = %v, want 2s", track.Clips[0].TimelineStart)
	}
	if track.Clips[1].TimelineStart != 7*time.Second {
		t.Fatalf("second clip start = %v, want 7s", track.Clips[1].TimelineStart)
	}
	if track.Clips[1].SourceIn != time.Second || track.Clips[1].SourceOut != 3*time.Second {
		t.Fatalf("second clip range = [%v, %v]", track.Clips[1].SourceIn, track.Clips[1].SourceOut)
	}
}

func TestParseHideDeclarations(t *testing.T) {
	proj := parseSample(t)

	if mode := proj.HideModes["playlist0"]; mode != timeline.HideAudio {
		t.Fatalf("playlist0 hide mode = %q, want audio", mode)
	}
	if mode := proj.HideModes["playlist1"]; mode != timeline.HideBoth {
		t.Fatalf("playlist1 hide mode = %q, want both", mode)
	}
	if _, ok := proj.HideModes["main_bin"]; ok {
		t.Fatal("asset bin must not carry a hide declaration")
	}
}

func TestParseRejectsBrokenXML(t *testing.T) {
	_, err := project.Parse(strings.NewReader("<mlt><playlist id=\"p\">"), project.DefaultOptions())
	if !errors.Is(err, project.ErrMalformedProject) {
		t.Fatalf("expected ErrMalformedProject, got %v", err)
	}
}

func TestParseRejectsMissingAttributes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"chain without resource", `<mlt><chain id="chain0"><property name="other">x</property></chain></mlt>`},
		{"blank without length", `<mlt><playlist id="p0"><blank/></playlist></mlt>`},
		{"entry without producer", `<mlt><playlist id="p0"><entry in="00:00:00.000" out="00:00:01.000"/></playlist></mlt>`},
		{"entry without in/out", `<mlt><playlist id="p0"><entry producer="chain0"/></playlist></mlt>`},
		{"bad timecode", `<mlt><playlist id="p0"><blank length="nonsense"/></playlist></mlt>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := project.Parse(strings.NewReader(tt.body), project.DefaultOptions())
			if !errors.Is(err, project.ErrMalformedProject) {
				t.Fatalf("expected ErrMalformedProject, got %v", err)
			}
		})
	}
}

func TestParseSkipsUnknownPlaylistChildren(t *testing.T) {
	body := `<mlt>
  <chain id="chain0"><property name="resource">a.mp4</property></chain>
  <playlist id="p0">
    <property name="kdenlive:track_name">video</property>
    <blank length="00:00:01.000"/>
    <entry producer="chain0" in="00:00:00.000" out="00:00:02.000"/>
  </playlist>
</mlt>`
	proj, err := project.Parse(strings.NewReader(body), project.DefaultOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	track := proj.Tracks[0]
	if len(track.Clips) != 1 || track.Clips[0].TimelineStart != time.Second {
		t.Fatalf("unexpected track: %+v", track)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := project.Load(t.TempDir()+"/absent.kdenlive", project.DefaultOptions())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
