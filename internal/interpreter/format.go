package interpreter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats understood by Format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// FormatStates renders one "x y H" line per robot with no trailing newline.
func FormatStates(states []State) string {
	lines := make([]string, len(states))
	for i, s := range states {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}

type stateDoc struct {
	Robot   int    `yaml:"robot"`
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Heading string `yaml:"heading"`
}

// MarshalStatesYAML renders states as a YAML sequence, robots numbered
// from 1.
func MarshalStatesYAML(states []State) ([]byte, error) {
	docs := make([]stateDoc, len(states))
	for i, s := range states {
		docs[i] = stateDoc{Robot: i + 1, X: s.Position.X, Y: s.Position.Y, Heading: s.Heading.String()}
	}
	return yaml.Marshal(docs)
}

// Format renders states in the named format.
func Format(format string, states []State) (string, error) {
	switch format {
	case FormatText, "":
		return FormatStates(states), nil
	case FormatYAML:
		b, err := MarshalStatesYAML(states)
		if err != nil {
			return "", fmt.Errorf("marshal yaml: %w", err)
		}
		return strings.TrimSuffix(string(b), "\n"), nil
	}
	return "", fmt.Errorf("unknown output format %q", format)
}
