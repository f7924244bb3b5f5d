package dotenv

import "slices"

// Registry is an ordered set of variable names.
// Names keep the position at which they were first added.
type Registry struct {
	names []string
	index map[string]int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add appends name unless it is already present.
func (r *Registry) Add(name string) {
	if _, ok := r.index[name]; ok {
		return
	}
	r.index[name] = len(r.names)
	r.names = append(r.names, name)
}

// Contains reports whether name has been added.
func (r *Registry) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Len returns the number of names.
func (r *Registry) Len() int { return len(r.names) }

// Names returns a copy of the names in insertion order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}
