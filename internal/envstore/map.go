package envstore

import (
	"maps"
	"slices"
)

// Map is an in-memory Store. The zero value is not usable; use NewMap.
type Map struct {
	vars map[string]string
}

// NewMap returns a Map seeded with a copy of seed (which may be nil).
func NewMap(seed map[string]string) *Map {
	m := &Map{vars: make(map[string]string, len(seed))}
	maps.Copy(m.vars, seed)
	return m
}

func (m *Map) Lookup(name string) (string, bool) {
	v, ok := m.vars[name]
	return v, ok
}

func (m *Map) Set(name, value string, overwrite bool) error {
	if _, exists := m.vars[name]; exists && !overwrite {
		return nil
	}
	m.vars[name] = value
	return nil
}

// Names returns the names in sorted order.
func (m *Map) Names() []string {
	return slices.Sorted(maps.Keys(m.vars))
}

// Snapshot returns a copy of the table.
func (m *Map) Snapshot() map[string]string {
	return maps.Clone(m.vars)
}
