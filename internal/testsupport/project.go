// Package testsupport provides shared fixtures for clipcut tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleProjectXML is a minimal project document with two media chains, an
// asset bin, one visible track (2s gap, then both clips back to back), one
// fully muted track, and the mixer declarations for both.
const SampleProjectXML = `<?xml version="1.0" encoding="utf-8"?>
<mlt version="7.22.0" producer="main_bin">
  <chain id="chain0">
    <property name="resource">/media/beach_day.mp4</property>
    <property name="mlt_service">avformat-novalidate</property>
  </chain>
  <chain id="chain1">
    <property name="resource">/media/campfire.mp4</property>
  </chain>
  <playlist id="main_bin">
    <entry producer="chain0" in="00:00:00.000" out="00:00:05.000"/>
    <entry producer="chain1" in="00:00:00.000" out="00:00:03.000"/>
  </playlist>
  <playlist id="playlist0">
    <blank length="00:00:02.000"/>
    <entry producer="chain0" in="00:00:00.000" out="00:00:05.000"/>
    <entry producer="chain1" in="00:00:01.000" out="00:00:03.000"/>
  </playlist>
  <playlist id="playlist1">
    <entry producer="chain1" in="00:00:00.000" out="00:00:03.000"/>
  </playlist>
  <tractor id="tractor0">
    <track producer="playlist0" hide="audio"/>
    <track producer="playlist1" hide="both"/>
  </tractor>
</mlt>
`

// WriteProject writes project XML into dir under the given file name and
// returns the full path.
func WriteProject(t testing.TB, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
