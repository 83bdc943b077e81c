// Package config loads, normalizes, and validates clipcut configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from the standard location or an
// explicit override. Downstream code should always obtain settings through
// this package so it receives sanitized paths, canonical log formats, and
// clear validation errors.
package config
