package dotenv

import (
	"DotEnv/internal/envstore"
	"DotEnv/internal/envutil"
	"DotEnv/internal/logger"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// Loader reads env files into a Store and records what it wrote.
type Loader struct {
	store         envstore.Store
	registry      *Registry
	parser        *Parser
	skipMalformed bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithSkipMalformed makes the loader log and skip malformed lines instead
// of stopping at the first one.
func WithSkipMalformed() Option {
	return func(l *Loader) { l.skipMalformed = true }
}

// WithoutSubstitution disables $NAME resolution; values are taken as written.
func WithoutSubstitution() Option {
	return func(l *Loader) { l.parser.substitute = false }
}

// WithRegistry makes the loader record names in r instead of a registry of its own.
func WithRegistry(r *Registry) Option {
	return func(l *Loader) { l.registry = r }
}

// New returns a Loader writing to store.
func New(store envstore.Store, opts ...Option) *Loader {
	l := &Loader{
		store:    store,
		registry: NewRegistry(),
		parser:   NewParser(store),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the env file at path and sets every assignment in the store.
//
// If a line is malformed, Load stops and returns a *LineError; variables
// set by earlier lines stay set. If the file cannot be opened or read,
// the returned error wraps ErrFileUnavailable.
func (l *Loader) Load(ctx context.Context, path string, overwrite bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileUnavailable, err)
	}
	defer f.Close()

	return l.LoadReader(ctx, path, f, overwrite)
}

// LoadReader is Load for an already opened reader. name identifies the
// source in errors and log messages.
func (l *Loader) LoadReader(ctx context.Context, name string, r io.Reader, overwrite bool) error {
	logger.Debug(ctx, "Loading variables from '{{_File_}}%s{{|-|}}' (overwrite: %t)", name, overwrite)

	loaded := 0
	s := envutil.NewScanner(r)
	for s.Next() {
		line := s.Line()
		if envutil.IsSkippable(line) {
			continue
		}

		a, err := l.parser.Parse(line)
		if err != nil {
			lineErr := &LineError{Path: name, Line: s.Number(), Text: line, Err: err}
			if l.skipMalformed {
				logger.Warn(ctx, "Skipping line %d in '{{_File_}}%s{{|-|}}': %v", lineErr.Line, name, err)
				continue
			}
			return lineErr
		}

		if a.Value == "" {
			logger.Trace(ctx, "Skipping '{{_Var_}}%s{{|-|}}': empty value", a.Name)
			continue
		}

		if err := l.store.Set(a.Name, a.Value, overwrite); err != nil {
			return fmt.Errorf("%s:%d: setting %s: %w", name, s.Number(), a.Name, err)
		}
		l.registry.Add(a.Name)
		loaded++
		logger.Trace(ctx, "Set '{{_Var_}}%s{{|-|}}'", a.Name)
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFileUnavailable, name, err)
	}

	logger.Notice(ctx, "Loaded %d variable(s) from '{{_File_}}%s{{|-|}}'", loaded, name)
	return nil
}

// Variables returns the names the loader has set, in the order they were
// first seen.
func (l *Loader) Variables() []string {
	return l.registry.Names()
}

// AllVariables returns every name in the store, including ones the loader
// did not set. The order is whatever the store provides.
func (l *Loader) AllVariables() []string {
	return l.store.Names()
}

// Get returns the value of name in the store.
func (l *Loader) Get(name string) (string, bool) {
	return l.store.Lookup(name)
}

// GetOr returns the value of name in the store, or def if it is not set.
func (l *Loader) GetOr(name, def string) string {
	if v, ok := l.store.Lookup(name); ok {
		return v
	}
	return def
}

// IsMalformed reports whether err was caused by a malformed line.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMissingDelimiter) || errors.Is(err, ErrEmptyName)
}
