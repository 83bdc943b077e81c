package config

import "fmt"

// Validate checks configuration invariants after normalization.
func (c *Config) Validate() error {
	if c.Projects.Extension == "" {
		return fmt.Errorf("projects.extension must not be empty")
	}
	if c.Projects.MediaSourcePrefix == "" {
		return fmt.Errorf("projects.media_source_prefix must not be empty")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
