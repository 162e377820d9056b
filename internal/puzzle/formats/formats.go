// Package formats provides puzzle pack file parsers.
//
// Two layouts are understood. The JSON layout is a bare object mapping
// letter keys to word lists:
//
//	{"taceors": ["actor", "coaster", ...]}
//
// The YAML layout wraps the same map with pack metadata:
//
//	difficulty: easy
//	puzzles:
//	  taceors: [actor, coaster]
package formats

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Pack is a parsed puzzle file before key validation.
type Pack struct {
	Difficulty string
	Puzzles    map[string][]string
}

// YAMLPack represents the YAML structure of a pack file.
type YAMLPack struct {
	Difficulty string              `yaml:"difficulty,omitempty"`
	Puzzles    map[string][]string `yaml:"puzzles"`
}

// ParseJSON parses the bare JSON layout.
func ParseJSON(data []byte) (Pack, error) {
	var puzzles map[string][]string
	if err := json.Unmarshal(data, &puzzles); err != nil {
		return Pack{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return Pack{Puzzles: puzzles}, nil
}

// ParseYAML parses the YAML layout.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yp.Puzzles == nil {
		yp.Puzzles = map[string][]string{}
	}
	return Pack{Difficulty: yp.Difficulty, Puzzles: yp.Puzzles}, nil
}

// EncodeJSON writes puzzles in the bare JSON layout, indented.
// Map keys come out sorted.
func EncodeJSON(puzzles map[string][]string) ([]byte, error) {
	return json.MarshalIndent(puzzles, "", "  ")
}

// EncodeYAML writes a pack in the YAML layout.
func EncodeYAML(p Pack) ([]byte, error) {
	return yaml.Marshal(YAMLPack{Difficulty: p.Difficulty, Puzzles: p.Puzzles})
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}
