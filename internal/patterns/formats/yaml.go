// Package formats provides pluggable pattern file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"gopkg.in/yaml.v3"
)

// YAMLPattern represents the YAML structure for a pattern file.
type YAMLPattern struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Cells       []YAMLCell `yaml:"cells"`
}

// YAMLCell is a single live cell in YAML format.
type YAMLCell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Pattern is a parsed pattern ready for stamping.
type Pattern struct {
	ID          string
	Name        string
	Description string
	Cells       []automaton.Coord
}

// ParseYAML parses a YAML pattern file. Duplicate cells are kept once.
func ParseYAML(data []byte) (Pattern, error) {
	var yp YAMLPattern
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pattern{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yp.Cells) == 0 {
		return Pattern{}, fmt.Errorf("pattern %q has no cells", yp.ID)
	}

	p := Pattern{
		ID:          yp.ID,
		Name:        yp.Name,
		Description: yp.Description,
		Cells:       make([]automaton.Coord, 0, len(yp.Cells)),
	}

	seen := make(map[automaton.Coord]bool, len(yp.Cells))
	for _, c := range yp.Cells {
		coord := automaton.C(c.X, c.Y)
		if seen[coord] {
			continue
		}
		seen[coord] = true
		p.Cells = append(p.Cells, coord)
	}

	return p, nil
}

// EncodeYAML writes a pattern in the YAML format read by ParseYAML.
func EncodeYAML(p Pattern) ([]byte, error) {
	yp := YAMLPattern{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Cells:       make([]YAMLCell, len(p.Cells)),
	}
	for i, c := range p.Cells {
		yp.Cells[i] = YAMLCell{X: c.X, Y: c.Y}
	}

	data, err := yaml.Marshal(&yp)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".cells"}
}
