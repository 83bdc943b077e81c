package project

import (
	"errors"
	"fmt"
)

// ErrUnresolvedSource marks a lookup for a source identifier that was never
// declared by the project file.
var ErrUnresolvedSource = errors.New("unresolved media source")

// Registry maps media source identifiers to their resource filenames. Built
// once per project load and read-only afterward.
type Registry struct {
	resources map[string]string
}

// Resolve returns the resource filename declared for the source identifier.
func (r *Registry) Resolve(sourceID string) (string, error) {
	if r != nil {
		if resource, ok := r.resources[sourceID]; ok {
			return resource, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnresolvedSource, sourceID)
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.resources)
}
