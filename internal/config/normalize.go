package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeProjects()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.ProjectsDir, err = expandPath(c.Paths.ProjectsDir); err != nil {
		return fmt.Errorf("paths.projects_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeProjects() {
	c.Projects.Extension = strings.TrimSpace(c.Projects.Extension)
	if c.Projects.Extension != "" && !strings.HasPrefix(c.Projects.Extension, ".") {
		c.Projects.Extension = "." + c.Projects.Extension
	}
	c.Projects.AssetBinID = strings.TrimSpace(c.Projects.AssetBinID)
	c.Projects.MediaSourcePrefix = strings.TrimSpace(c.Projects.MediaSourcePrefix)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
