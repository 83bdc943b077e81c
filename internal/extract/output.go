package extract

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ClipRange is a formatted trim boundary pair, HH:MM:SS.mmm.
type ClipRange struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// TrimInstruction is one extraction directive for a media file.
type TrimInstruction struct {
	Clip ClipRange `yaml:"clip"`
}

// Output maps resolved media filenames to their accumulated trim
// instructions. Instructions append in track-then-clip processing order;
// multiple source identifiers resolving to the same filename share one
// entry.
type Output map[string][]TrimInstruction

// Add appends an instruction under the resolved filename.
func (o Output) Add(filename string, instruction TrimInstruction) {
	o[filename] = append(o[filename], instruction)
}

// Filenames returns the output keys in sorted order for stable display.
func (o Output) Filenames() []string {
	names := make([]string, 0, len(o))
	for name := range o {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Marshal serializes the output document as YAML.
func (o Output) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("marshal output: %w", err)
	}
	return data, nil
}
