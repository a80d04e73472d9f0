package life

import (
	"time"

	"github.com/vovakirdan/tui-life/internal/automaton"
)

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Generation uint64
	Population int
	Peak       int
	Tracked    int
	RunState   automaton.RunState
	Policy     automaton.EvalPolicy
	Cursor     automaton.Coord
	CameraX    int
	CameraY    int
	Interval   time.Duration
	Live       []automaton.Coord
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Generation: g.engine.Generation(),
		Population: g.engine.Population(),
		Peak:       g.peak,
		Tracked:    g.engine.Tracked(),
		RunState:   g.engine.RunState(),
		Policy:     g.engine.Policy(),
		Cursor:     g.cursor,
		CameraX:    g.cam.CenterX,
		CameraY:    g.cam.CenterY,
		Interval:   g.timer.Interval(),
		Live:       g.engine.LiveCells(),
	}
}
