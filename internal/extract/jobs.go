package extract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"clipcut/internal/timecode"
	"clipcut/internal/timeline"
)

// Job is one configured extraction: a day label naming the project file and
// the highlight window to pull from it.
type Job struct {
	Label  string
	Window timeline.Window
}

type jobSpec struct {
	Clip struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"clip"`
}

// LoadJobs reads a batch job file: a mapping from day label to clip window,
// with MM:SS timestamps. Document order is preserved so days are processed
// in the order they were written.
func LoadJobs(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read jobs file: %w", err)
	}
	return parseJobs(data)
}

func parseJobs(data []byte) ([]Job, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse jobs file: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("jobs file: expected a mapping of day labels")
	}

	jobs := make([]Job, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valueNode := mapping.Content[i], mapping.Content[i+1]
		label := keyNode.Value
		if label == "" {
			return nil, fmt.Errorf("jobs file: empty day label")
		}

		var spec jobSpec
		if err := valueNode.Decode(&spec); err != nil {
			return nil, fmt.Errorf("job %s: %w", label, err)
		}
		start, err := timecode.ParseClock(spec.Clip.Start)
		if err != nil {
			return nil, fmt.Errorf("job %s: clip start: %w", label, err)
		}
		end, err := timecode.ParseClock(spec.Clip.End)
		if err != nil {
			return nil, fmt.Errorf("job %s: clip end: %w", label, err)
		}
		if end <= start {
			return nil, fmt.Errorf("job %s: clip end %s not after start %s", label, spec.Clip.End, spec.Clip.Start)
		}
		jobs = append(jobs, Job{Label: label, Window: timeline.Window{Start: start, End: end}})
	}
	return jobs, nil
}
