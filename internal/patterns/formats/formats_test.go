package formats_test

import (
	"testing"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/patterns/formats"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: tri
name: Triangle
description: test
cells:
  - {x: 0, y: 0}
  - {x: 1, y: 0}
  - {x: 0, y: 1}
  - {x: 0, y: 1}
`)

	p, err := formats.ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if p.ID != "tri" || p.Name != "Triangle" || p.Description != "test" {
		t.Errorf("unexpected header: %+v", p)
	}
	if len(p.Cells) != 3 {
		t.Errorf("expected duplicates dropped, got %d cells", len(p.Cells))
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "id: [unterminated"},
		{"no cells", "id: empty\nname: Empty\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := formats.ParseYAML([]byte(tc.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseCells(t *testing.T) {
	data := []byte("!Name: Glider\n!A small spaceship.\n!More notes\n.O.\n..O\nOOO\n")

	p, err := formats.ParseCells(data)
	if err != nil {
		t.Fatalf("ParseCells failed: %v", err)
	}
	if p.Name != "Glider" {
		t.Errorf("Name = %q, expected Glider", p.Name)
	}
	if p.Description != "A small spaceship." {
		t.Errorf("Description = %q", p.Description)
	}

	want := []automaton.Coord{
		automaton.C(1, 0),
		automaton.C(2, 1),
		automaton.C(0, 2), automaton.C(1, 2), automaton.C(2, 2),
	}
	if len(p.Cells) != len(want) {
		t.Fatalf("got %d cells, expected %d", len(p.Cells), len(want))
	}
	for i := range want {
		if p.Cells[i] != want[i] {
			t.Errorf("cell %d = %v, expected %v", i, p.Cells[i], want[i])
		}
	}
}

func TestParseCellsBlankRowsAdvance(t *testing.T) {
	p, err := formats.ParseCells([]byte("O\n\nO\n"))
	if err != nil {
		t.Fatalf("ParseCells failed: %v", err)
	}
	if len(p.Cells) != 2 || p.Cells[1] != automaton.C(0, 2) {
		t.Errorf("cells = %v, expected [(0,0) (0,2)]", p.Cells)
	}
}

func TestParseCellsErrors(t *testing.T) {
	if _, err := formats.ParseCells([]byte("OXO\n")); err == nil {
		t.Error("expected error for unknown character")
	}
	if _, err := formats.ParseCells([]byte("!only comments\n...\n")); err == nil {
		t.Error("expected error for a pattern without live cells")
	}
}

func TestEncodeCellsNormalizes(t *testing.T) {
	p := formats.Pattern{
		Name:  "Blinker",
		Cells: []automaton.Coord{automaton.C(-1, 5), automaton.C(0, 5), automaton.C(1, 5)},
	}

	got := string(formats.EncodeCells(p))
	want := "!Name: Blinker\nOOO\n"
	if got != want {
		t.Errorf("EncodeCells = %q, expected %q", got, want)
	}

	back, err := formats.ParseCells([]byte(got))
	if err != nil {
		t.Fatalf("ParseCells failed: %v", err)
	}
	if len(back.Cells) != 3 || back.Cells[0] != automaton.C(0, 0) {
		t.Errorf("re-parsed cells = %v", back.Cells)
	}
}

func TestEncodeYAMLReadable(t *testing.T) {
	p := formats.Pattern{ID: "pair", Name: "Pair", Cells: []automaton.Coord{automaton.C(-3, 4), automaton.C(7, 0)}}

	data, err := formats.EncodeYAML(p)
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}
	back, err := formats.ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if back.ID != "pair" || len(back.Cells) != 2 || back.Cells[0] != automaton.C(-3, 4) {
		t.Errorf("decoded %+v", back)
	}
}
