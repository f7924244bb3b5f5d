package dotenv

import (
	"DotEnv/internal/envstore"
	"context"
)

// Default loads into the process environment. It is used by the
// package-level functions.
var Default = New(envstore.OS{})

// Load loads the env file at path into the process environment,
// overwriting variables that are already set.
func Load(ctx context.Context, path string) error {
	return Default.Load(ctx, path, true)
}

// LoadWith is Load with an explicit overwrite policy.
func LoadWith(ctx context.Context, path string, overwrite bool) error {
	return Default.Load(ctx, path, overwrite)
}

// Variables returns the names loaded from files into the process environment.
func Variables() []string { return Default.Variables() }

// AllVariables returns every name in the process environment.
func AllVariables() []string { return Default.AllVariables() }

// Get returns the value of an environment variable.
func Get(name string) (string, bool) { return Default.Get(name) }

// GetOr returns the value of an environment variable, or def if it is not set.
func GetOr(name, def string) string { return Default.GetOr(name, def) }
