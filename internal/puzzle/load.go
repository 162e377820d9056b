package puzzle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-bee/internal/puzzle/formats"
)

// LoadFile reads a pack from disk, choosing the parser by extension.
// A pack file without its own difficulty gets the file's base name.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	s, err := Parse(data, ext)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if s.Difficulty == "" {
		s.Difficulty = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse builds a pack from raw file data. ext selects the format
// (".json", ".yaml" or ".yml").
func Parse(data []byte, ext string) (*Set, error) {
	var (
		p   formats.Pack
		err error
	)
	switch ext {
	case ".json":
		p, err = formats.ParseJSON(data)
	case ".yaml", ".yml":
		p, err = formats.ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension %q (want one of %s)", ext, strings.Join(formats.FormatExtensions(), ", "))
	}
	if err != nil {
		return nil, err
	}
	return NewSet(p.Difficulty, p.Puzzles)
}

// SaveFile writes a pack to disk in the format implied by the extension.
func SaveFile(path string, s *Set) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = formats.EncodeJSON(s.Data())
	case ".yaml", ".yml":
		data, err = formats.EncodeYAML(formats.Pack{Difficulty: s.Difficulty, Puzzles: s.Data()})
	default:
		return fmt.Errorf("unsupported extension: %s", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}
