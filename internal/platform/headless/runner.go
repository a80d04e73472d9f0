// Package headless runs boards without a display, as fast as the engine
// allows, for scripting and batch runs.
package headless

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/patterns"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// Options configure a headless run.
type Options struct {
	Config      config.LifeConfig
	Policy      automaton.EvalPolicy
	Start       *patterns.Pattern    // Overrides Config.Start.Pattern when set
	Board       *registry.BoardState // Overrides Start and the policy when set
	Generations int
	Seed        int64
	Every       int // Log progress every N generations, 0 disables
	Logger      *log.Logger
}

// Result summarizes a finished run.
type Result struct {
	Engine      *automaton.Engine
	Generations uint64 // Generations applied by this run
	Population  int
	Peak        int
	Elapsed     time.Duration
	Extinct     bool // Stopped early because every cell died
}

// Run builds the board and applies the requested number of generations.
func Run(opts Options) (Result, error) {
	if opts.Generations < 0 {
		return Result{}, fmt.Errorf("headless: negative generation count %d", opts.Generations)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	e, err := build(opts)
	if err != nil {
		return Result{}, err
	}

	res := Result{Engine: e, Peak: e.Population()}
	start := time.Now()
	for i := 0; i < opts.Generations; i++ {
		if e.Population() == 0 {
			res.Extinct = true
			break
		}
		e.RequestStep()
		e.Step()
		res.Generations++
		res.Peak = max(res.Peak, e.Population())

		if opts.Every > 0 && res.Generations%uint64(opts.Every) == 0 {
			opts.Logger.Info("progress", "generation", e.Generation(), "population", e.Population())
		}
	}
	res.Elapsed = time.Since(start)
	res.Population = e.Population()
	if res.Population == 0 && opts.Generations > 0 {
		res.Extinct = true
	}
	return res, nil
}

// build creates the engine and places the starting cells.
func build(opts Options) (*automaton.Engine, error) {
	bounds := opts.Config.Board.Bounds.Rect()

	if opts.Board != nil {
		e := automaton.New(bounds, automaton.WithPolicy(opts.Board.Policy))
		e.Restore(opts.Board.Cells, opts.Board.Generation)
		return e, nil
	}

	e := automaton.New(bounds, automaton.WithPolicy(opts.Policy))
	if opts.Start != nil {
		opts.Start.StampCentered(e, automaton.C(0, 0))
		return e, nil
	}

	switch name := opts.Config.Start.Pattern; name {
	case "":
	case "random":
		e.Randomize(opts.Seed, opts.Config.Board.RandomDensity)
	default:
		p, ok := patterns.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("headless: unknown start pattern %q", name)
		}
		p.StampCentered(e, automaton.C(0, 0))
	}
	return e, nil
}

// Render writes the cells inside view as text, one line per row.
func Render(w io.Writer, e *automaton.Engine, view automaton.Rect, alive, dead rune) error {
	var sb strings.Builder
	for y := view.MinY; y <= view.MaxY; y++ {
		for x := view.MinX; x <= view.MaxX; x++ {
			if e.IsAlive(x, y) {
				sb.WriteRune(alive)
			} else {
				sb.WriteRune(dead)
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// CenteredView returns a width x height view centered on the origin.
func CenteredView(width, height int) automaton.Rect {
	minX := -width / 2
	minY := -height / 2
	return automaton.Rect{MinX: minX, MinY: minY, MaxX: minX + width - 1, MaxY: minY + height - 1}
}
