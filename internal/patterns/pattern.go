// Package patterns provides the built-in pattern library and loading of
// pattern files from disk.
package patterns

import (
	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/patterns/formats"
)

// Pattern is a named set of live cells relative to its own origin.
type Pattern struct {
	ID          string
	Name        string
	Description string
	Cells       []automaton.Coord
	FilePath    string // Empty for built-in patterns
}

// Bounds returns the smallest rectangle containing every cell.
func (p Pattern) Bounds() automaton.Rect {
	if len(p.Cells) == 0 {
		return automaton.Rect{MinX: 0, MinY: 0, MaxX: -1, MaxY: -1}
	}
	r := automaton.Rect{MinX: p.Cells[0].X, MinY: p.Cells[0].Y, MaxX: p.Cells[0].X, MaxY: p.Cells[0].Y}
	for _, c := range p.Cells[1:] {
		r.MinX = min(r.MinX, c.X)
		r.MinY = min(r.MinY, c.Y)
		r.MaxX = max(r.MaxX, c.X)
		r.MaxY = max(r.MaxY, c.Y)
	}
	return r
}

// CenterOffset returns the offset that places the pattern's middle on center.
func (p Pattern) CenterOffset(center automaton.Coord) automaton.Coord {
	b := p.Bounds()
	if b.Empty() {
		return center
	}
	return automaton.C(center.X-(b.MinX+b.Width()/2), center.Y-(b.MinY+b.Height()/2))
}

// StampCentered stamps the pattern into the engine centered on center.
func (p Pattern) StampCentered(e *automaton.Engine, center automaton.Coord) {
	e.Stamp(p.Cells, p.CenterOffset(center))
}

func fromParsed(parsed formats.Pattern, path string) Pattern {
	return Pattern{
		ID:          parsed.ID,
		Name:        parsed.Name,
		Description: parsed.Description,
		Cells:       parsed.Cells,
		FilePath:    path,
	}
}
