// Package registry holds the ordered set of deployable components.
// The registry is built once from configuration at startup and is
// immutable afterwards.
package registry

import (
	"github.com/deploygen/deploygen/pkg/errors"
)

// Registry is an ordered, immutable list of component names
type Registry struct {
	components []string
}

// New builds a registry from an ordered component list. Duplicates are
// collapsed, keeping the first occurrence's position.
func New(components []string) (*Registry, error) {
	if len(components) == 0 {
		return nil, errors.New(errors.ErrComponentNone, "no components registered")
	}

	seen := make(map[string]bool, len(components))
	ordered := make([]string, 0, len(components))
	for _, name := range components {
		if name == "" {
			return nil, errors.New(errors.ErrInvalidInput, "component name must not be empty")
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		ordered = append(ordered, name)
	}

	return &Registry{components: ordered}, nil
}

// Components returns the component names in registration order
func (r *Registry) Components() []string {
	out := make([]string, len(r.components))
	copy(out, r.components)
	return out
}

// Has reports whether name is a registered component
func (r *Registry) Has(name string) bool {
	for _, c := range r.components {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of registered components
func (r *Registry) Len() int {
	return len(r.components)
}
