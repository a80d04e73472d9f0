package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-life/internal/automaton"
)

// ParseCells parses the plaintext .cells format.
//
//	!Name: Glider
//	!A small spaceship.
//	.O.
//	..O
//	OOO
//
// Lines starting with '!' are comments; "!Name:" sets the name and the first
// other comment becomes the description. 'O' or '*' is alive, '.' is dead.
func ParseCells(data []byte) (Pattern, error) {
	var p Pattern
	sc := bufio.NewScanner(bytes.NewReader(data))
	y := 0

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")

		if strings.HasPrefix(line, "!") {
			comment := strings.TrimSpace(line[1:])
			switch {
			case strings.HasPrefix(comment, "Name:"):
				p.Name = strings.TrimSpace(strings.TrimPrefix(comment, "Name:"))
			case p.Description == "" && comment != "":
				p.Description = comment
			}
			continue
		}

		for x, r := range line {
			switch r {
			case 'O', 'o', '*':
				p.Cells = append(p.Cells, automaton.C(x, y))
			case '.':
			default:
				return Pattern{}, fmt.Errorf("line %d: unexpected character %q", y+1, r)
			}
		}
		y++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, fmt.Errorf("reading cells: %w", err)
	}
	if len(p.Cells) == 0 {
		return Pattern{}, fmt.Errorf("pattern has no cells")
	}

	return p, nil
}

// EncodeCells renders live cells as .cells text, normalized so the top-left
// live cell row and column start at zero.
func EncodeCells(p Pattern) []byte {
	var buf bytes.Buffer
	if p.Name != "" {
		fmt.Fprintf(&buf, "!Name: %s\n", p.Name)
	}
	if p.Description != "" {
		fmt.Fprintf(&buf, "!%s\n", p.Description)
	}
	if len(p.Cells) == 0 {
		return buf.Bytes()
	}

	minX, minY := p.Cells[0].X, p.Cells[0].Y
	maxX, maxY := minX, minY
	alive := make(map[automaton.Coord]bool, len(p.Cells))
	for _, c := range p.Cells {
		alive[c] = true
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}

	for y := minY; y <= maxY; y++ {
		// Trailing dead cells are omitted
		last := minX - 1
		for x := minX; x <= maxX; x++ {
			if alive[automaton.C(x, y)] {
				last = x
			}
		}
		for x := minX; x <= last; x++ {
			if alive[automaton.C(x, y)] {
				buf.WriteByte('O')
			} else {
				buf.WriteByte('.')
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
