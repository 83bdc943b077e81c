package testsupport

import (
	"path/filepath"
	"testing"

	"clipcut/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ProjectsDir = filepath.Join(base, "projects")
	cfg.Paths.OutputDir = filepath.Join(base, "output")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithExtension overrides the project file extension on the test config.
func WithExtension(ext string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Projects.Extension = ext
	}
}
