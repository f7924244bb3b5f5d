// Package envstore provides read/write access to an environment table.
//
// The process environment is the usual backing table (OS), but anything
// that can look up, set and enumerate names by string can act as one.
// Map is an in-memory table used by tests and dry runs.
package envstore

import (
	"os"
	"strings"
)

// Store is a name -> value table of environment variables.
type Store interface {
	// Lookup returns the value of name and whether it is set.
	Lookup(name string) (string, bool)
	// Set assigns value to name. When overwrite is false and name is
	// already set, the existing value is kept.
	Set(name, value string, overwrite bool) error
	// Names returns every name currently set, in no particular order.
	Names() []string
}

// OS is the process-wide environment.
type OS struct{}

func (OS) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (OS) Set(name, value string, overwrite bool) error {
	if !overwrite {
		if _, exists := os.LookupEnv(name); exists {
			return nil
		}
	}
	return os.Setenv(name, value)
}

func (OS) Names() []string {
	environ := os.Environ()
	names := make([]string, 0, len(environ))
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		// Windows keeps per-drive working directories as "=C:=C:\..."
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}
