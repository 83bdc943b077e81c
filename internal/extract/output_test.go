package extract

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestOutputAccumulatesPerFilename(t *testing.T) {
	out := Output{}
	out.Add("beach.mp4", TrimInstruction{Clip: ClipRange{Start: "00:00:01.000", End: "00:00:04.000"}})
	out.Add("camp.mp4", TrimInstruction{Clip: ClipRange{Start: "00:00:00.000", End: "00:00:02.000"}})
	out.Add("beach.mp4", TrimInstruction{Clip: ClipRange{Start: "00:00:05.000", End: "00:00:06.000"}})

	if len(out["beach.mp4"]) != 2 {
		t.Fatalf("expected 2 instructions for beach.mp4, got %d", len(out["beach.mp4"]))
	}
	if out["beach.mp4"][0].Clip.Start != "00:00:01.000" || out["beach.mp4"][1].Clip.Start != "00:00:05.000" {
		t.Fatalf("accumulation order lost: %+v", out["beach.mp4"])
	}
	if got := out.Filenames(); len(got) != 2 || got[0] != "beach.mp4" || got[1] != "camp.mp4" {
		t.Fatalf("unexpected filenames: %v", got)
	}
}

func TestOutputMarshalRoundTrip(t *testing.T) {
	out := Output{}
	out.Add("beach.mp4", TrimInstruction{Clip: ClipRange{Start: "00:00:01.000", End: "00:00:04.000"}})

	data, err := out.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "beach.mp4") || !strings.Contains(text, "start:") {
		t.Fatalf("unexpected document:\n%s", text)
	}

	var decoded Output
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded["beach.mp4"][0].Clip.End != "00:00:04.000" {
		t.Fatalf("round trip lost data: %+v", decoded)
	}
}
