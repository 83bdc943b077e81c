package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewConsoleLoggerWritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("extraction complete", String("day", "2024-06-01"), Int("clips", 3))

	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Fatalf("missing level label: %q", line)
	}
	if !strings.Contains(line, "extraction complete") || !strings.Contains(line, "day=2024-06-01") || !strings.Contains(line, "clips=3") {
		t.Fatalf("unexpected line: %q", line)
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("parsed project", String("track", "playlist0"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "parsed project" || record["track"] != "playlist0" {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line emitted at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
