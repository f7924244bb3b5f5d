package dotenv

import (
	"DotEnv/internal/envstore"
	"regexp"
	"strings"
)

// referenceRegex matches a $NAME reference. The run of alphanumerics is greedy.
var referenceRegex = regexp.MustCompile(`\$[A-Za-z0-9]+`)

// Assignment is a parsed NAME=VALUE line.
type Assignment struct {
	Name  string
	Value string
}

// ParseLine splits line at the first '=' without resolving references.
// Anything from the first NUL byte on is ignored.
func ParseLine(line string) (Assignment, error) {
	if i := strings.IndexByte(line, 0); i >= 0 {
		line = line[:i]
	}
	name, value, ok := strings.Cut(line, "=")
	if !ok {
		return Assignment{}, ErrMissingDelimiter
	}
	if name == "" {
		return Assignment{}, ErrEmptyName
	}
	return Assignment{Name: name, Value: value}, nil
}

// Substitute replaces every $NAME reference in value with the value of NAME
// in store, or with the empty string if NAME is not set.
//
// References are found in one left-to-right pass over value. Text that was
// substituted in is not scanned again, so a value containing "$" that came
// from the store stays as it is.
func Substitute(value string, store envstore.Store) string {
	if !strings.Contains(value, "$") {
		return value
	}
	resolved := make(map[string]string)
	return referenceRegex.ReplaceAllStringFunc(value, func(ref string) string {
		if v, ok := resolved[ref]; ok {
			return v
		}
		v, _ := store.Lookup(ref[1:])
		resolved[ref] = v
		return v
	})
}

// Parser parses lines against a store. It only ever reads the store.
type Parser struct {
	store      envstore.Store
	substitute bool
}

// NewParser returns a Parser that resolves references against store.
func NewParser(store envstore.Store) *Parser {
	return &Parser{store: store, substitute: true}
}

// Parse parses line and, unless substitution is disabled, resolves the
// references in its value.
func (p *Parser) Parse(line string) (Assignment, error) {
	a, err := ParseLine(line)
	if err != nil {
		return Assignment{}, err
	}
	if p.substitute {
		a.Value = Substitute(a.Value, p.store)
	}
	return a, nil
}
