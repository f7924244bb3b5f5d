// Package output renders variable listings as text, JSON, YAML or TOML.
package output

import (
	"DotEnv/internal/constants"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Variable is a name with its current value.
type Variable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ErrUnknownFormat is returned for a format other than text, json, yaml or toml.
type ErrUnknownFormat string

func (e ErrUnknownFormat) Error() string {
	return fmt.Sprintf("unknown output format %q (want text, json, yaml or toml)", string(e))
}

// ValidFormat reports whether format is supported.
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case constants.FormatText, constants.FormatJSON, constants.FormatYAML, constants.FormatTOML:
		return true
	}
	return false
}

// WriteVariables writes vars in the given format. Text output is one
// "NAME = value" line per variable. YAML and JSON keep the order of vars;
// TOML tables are written with sorted keys.
func WriteVariables(w io.Writer, format string, vars []Variable) error {
	switch strings.ToLower(format) {
	case constants.FormatText, "":
		for _, v := range vars {
			if _, err := fmt.Fprintf(w, "%s = %s\n", v.Name, v.Value); err != nil {
				return err
			}
		}
		return nil
	case constants.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if vars == nil {
			vars = []Variable{}
		}
		return enc.Encode(vars)
	case constants.FormatYAML:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, v := range vars {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Name},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Value},
			)
		}
		return encodeYAML(w, node)
	case constants.FormatTOML:
		m := make(map[string]string, len(vars))
		for _, v := range vars {
			m[v.Name] = v.Value
		}
		return toml.NewEncoder(w).Encode(m)
	}
	return ErrUnknownFormat(format)
}

// WriteNames writes a list of names in the given format. Text output is
// one name per line; TOML output is a single "names" array.
func WriteNames(w io.Writer, format string, names []string) error {
	if names == nil {
		names = []string{}
	}
	switch strings.ToLower(format) {
	case constants.FormatText, "":
		for _, n := range names {
			if _, err := fmt.Fprintln(w, n); err != nil {
				return err
			}
		}
		return nil
	case constants.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(names)
	case constants.FormatYAML:
		return encodeYAML(w, names)
	case constants.FormatTOML:
		return toml.NewEncoder(w).Encode(map[string][]string{"names": names})
	}
	return ErrUnknownFormat(format)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
