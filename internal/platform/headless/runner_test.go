package headless

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/patterns"
	"github.com/vovakirdan/tui-life/internal/registry"
)

func defaultOptions(start string, generations int) Options {
	cfg := config.DefaultLifeConfig()
	cfg.Start.Pattern = start
	return Options{Config: cfg, Generations: generations, Seed: 42}
}

func TestRunBlinker(t *testing.T) {
	res, err := Run(defaultOptions("blinker", 3))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Generations != 3 || res.Engine.Generation() != 3 {
		t.Errorf("Generations = %d/%d, expected 3", res.Generations, res.Engine.Generation())
	}
	if res.Population != 3 || res.Peak != 3 || res.Extinct {
		t.Errorf("result = %+v", res)
	}
}

func TestRunExtinction(t *testing.T) {
	opts := defaultOptions("", 10)
	opts.Board = &registry.BoardState{Cells: []automaton.Coord{automaton.C(0, 0)}}

	res, err := Run(opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !res.Extinct || res.Generations != 1 || res.Population != 0 {
		t.Errorf("result = %+v, expected extinction after one generation", res)
	}
}

func TestRunBoardKeepsGeneration(t *testing.T) {
	opts := defaultOptions("", 2)
	opts.Board = &registry.BoardState{
		Policy:     automaton.Unbounded,
		Generation: 10,
		Cells:      []automaton.Coord{automaton.C(0, 0), automaton.C(1, 0), automaton.C(0, 1), automaton.C(1, 1)},
	}

	res, err := Run(opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Engine.Generation() != 12 || res.Engine.Policy() != automaton.Unbounded || res.Population != 4 {
		t.Errorf("engine gen=%d policy=%v pop=%d", res.Engine.Generation(), res.Engine.Policy(), res.Population)
	}
}

func TestRunRandomIsSeeded(t *testing.T) {
	a, err := Run(defaultOptions("random", 5))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	b, err := Run(defaultOptions("random", 5))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if a.Population == 0 || a.Population != b.Population || a.Peak != b.Peak {
		t.Errorf("same seed gave different runs: %+v vs %+v", a, b)
	}
}

func TestRunStartOverride(t *testing.T) {
	p, ok := patterns.Lookup("block")
	if !ok {
		t.Fatal("block not in library")
	}
	opts := defaultOptions("glider", 4)
	opts.Start = &p

	res, err := Run(opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Population != 4 {
		t.Errorf("Population = %d, expected the block's 4", res.Population)
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := Run(defaultOptions("no-such-pattern", 1)); err == nil {
		t.Error("unknown start pattern should fail")
	}
	if _, err := Run(defaultOptions("block", -1)); err == nil {
		t.Error("negative generation count should fail")
	}
}

func TestRender(t *testing.T) {
	e := automaton.New(automaton.Square(5))
	e.SetCell(-1, 0, true)
	e.SetCell(0, 0, true)
	e.SetCell(1, 0, true)

	var buf bytes.Buffer
	if err := Render(&buf, e, CenteredView(5, 3), 'O', '.'); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := strings.Join([]string{".....", ".OOO.", "....."}, "\n") + "\n"
	if buf.String() != expected {
		t.Errorf("Render =\n%s\nexpected\n%s", buf.String(), expected)
	}
}

func TestCenteredView(t *testing.T) {
	v := CenteredView(4, 3)
	if v.MinX != -2 || v.MaxX != 1 || v.MinY != -1 || v.MaxY != 1 {
		t.Errorf("CenteredView(4, 3) = %+v", v)
	}
	if v.Width() != 4 || v.Height() != 3 {
		t.Errorf("size = %dx%d", v.Width(), v.Height())
	}
}
