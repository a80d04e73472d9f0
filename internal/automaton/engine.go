// Package automaton implements the Game of Life state and update engine.
// It has no knowledge of terminals, windows or timers: a host drives it by
// toggling cells, requesting steps and reading cell state back for display.
package automaton

import (
	"math/rand"
	"sort"
)

// RunState reports whether the simulation advances on its own.
type RunState int

const (
	Paused RunState = iota
	Playing
)

// String returns a human-readable name for the run-state.
func (s RunState) String() string {
	switch s {
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// EvalPolicy selects which coordinates are evaluated during a step.
type EvalPolicy int

const (
	// Tracked evaluates only coordinates that already exist as grid keys.
	// Cells outside the initialized bounds are never born unless something
	// set them explicitly first.
	Tracked EvalPolicy = iota

	// Unbounded evaluates every live cell and its neighborhood, so patterns
	// can grow past the initialized bounds.
	Unbounded
)

// String returns the config name of the policy.
func (p EvalPolicy) String() string {
	switch p {
	case Tracked:
		return "tracked"
	case Unbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a config name into an EvalPolicy.
func ParsePolicy(s string) (EvalPolicy, bool) {
	switch s {
	case "tracked", "":
		return Tracked, true
	case "unbounded":
		return Unbounded, true
	default:
		return Tracked, false
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy sets the evaluation policy.
func WithPolicy(p EvalPolicy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// Engine owns the sparse cell grid and the run-state.
// It is not safe for concurrent use; the host serializes all calls.
type Engine struct {
	cells      map[Coord]bool
	bounds     Rect
	policy     EvalPolicy
	state      RunState
	pending    bool
	generation uint64
	population int
}

type change struct {
	at    Coord
	alive bool
}

// New creates an engine and initializes it with the given bounds.
func New(bounds Rect, opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	e.Initialize(bounds)
	return e
}

// Initialize replaces the grid with a dead entry for every coordinate inside
// bounds. The engine returns to Paused with no pending step.
func (e *Engine) Initialize(bounds Rect) {
	e.bounds = bounds
	e.cells = make(map[Coord]bool, bounds.Width()*bounds.Height())
	for y := bounds.MinY; y <= bounds.MaxY; y++ {
		for x := bounds.MinX; x <= bounds.MaxX; x++ {
			e.cells[Coord{X: x, Y: y}] = false
		}
	}
	e.state = Paused
	e.pending = false
	e.generation = 0
	e.population = 0
}

// SetCell stores the state of (x, y). Coordinates outside the initialized
// bounds are accepted and become tracked.
func (e *Engine) SetCell(x, y int, alive bool) {
	e.set(Coord{X: x, Y: y}, alive)
}

// ToggleCell flips the state of (x, y).
func (e *Engine) ToggleCell(x, y int) {
	e.SetCell(x, y, !e.IsAlive(x, y))
}

// IsAlive reports the state of (x, y). Untracked coordinates are dead.
func (e *Engine) IsAlive(x, y int) bool {
	return e.alive(Coord{X: x, Y: y})
}

func (e *Engine) alive(c Coord) bool {
	alive, ok := e.cells[c]
	if !ok {
		return false
	}
	return alive
}

func (e *Engine) set(c Coord, alive bool) {
	if e.alive(c) != alive {
		if alive {
			e.population++
		} else {
			e.population--
		}
	}
	e.cells[c] = alive
}

// TogglePause flips between Paused and Playing.
func (e *Engine) TogglePause() {
	if e.state == Playing {
		e.state = Paused
		return
	}
	e.state = Playing
}

// Pause stops automatic stepping.
func (e *Engine) Pause() {
	e.state = Paused
}

// Resume starts automatic stepping.
func (e *Engine) Resume() {
	e.state = Playing
}

// RunState returns the current run-state.
func (e *Engine) RunState() RunState {
	return e.state
}

// Playing reports whether the run-state is Playing.
func (e *Engine) Playing() bool {
	return e.state == Playing
}

// RequestStep marks one generation as pending. Requests made before the
// next Step coalesce into a single generation.
func (e *Engine) RequestStep() {
	e.pending = true
}

// Pending reports whether a step has been requested and not yet applied.
func (e *Engine) Pending() bool {
	return e.pending
}

// Step applies one generation if a step is pending and reports whether it did.
// Every rule evaluation reads the grid as it was before the step; the
// resulting changes are applied together afterwards.
func (e *Engine) Step() bool {
	if !e.pending {
		return false
	}

	changes := e.collectChanges()
	for _, ch := range changes {
		e.set(ch.at, ch.alive)
		if !ch.alive && e.policy == Unbounded && !e.bounds.Contains(ch.at) {
			delete(e.cells, ch.at)
		}
	}

	e.pending = false
	e.generation++
	return true
}

// collectChanges evaluates the rule against the current grid without
// mutating it. A dead cell with no live neighbors cannot change, so only
// live cells and their neighborhoods are visited.
func (e *Engine) collectChanges() []change {
	candidates := make(map[Coord]struct{}, e.population*9)
	for c, alive := range e.cells {
		if !alive {
			continue
		}
		candidates[c] = struct{}{}
		for _, off := range neighborOffsets {
			candidates[c.Add(off.X, off.Y)] = struct{}{}
		}
	}

	var changes []change
	for c := range candidates {
		alive, tracked := e.cells[c]
		if !tracked && e.policy == Tracked {
			continue
		}
		next := Rule(alive, e.liveNeighbors(c))
		if next != alive {
			changes = append(changes, change{at: c, alive: next})
		}
	}
	return changes
}

// liveNeighbors counts live cells in the Moore neighborhood of c.
func (e *Engine) liveNeighbors(c Coord) int {
	n := 0
	for _, off := range neighborOffsets {
		if e.alive(c.Add(off.X, off.Y)) {
			n++
		}
	}
	return n
}

// Rule is the Conway transition: a live cell survives with two or three live
// neighbors, a dead cell is born with exactly three.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Clear kills every tracked cell. Keys are kept so the evaluation set does
// not shrink. The generation counter and run-state are left alone.
func (e *Engine) Clear() {
	for c := range e.cells {
		e.cells[c] = false
	}
	e.population = 0
	e.pending = false
}

// Stamp sets every cell of a pattern alive, offset by at.
func (e *Engine) Stamp(cells []Coord, at Coord) {
	for _, c := range cells {
		e.set(c.Add(at.X, at.Y), true)
	}
}

// Restore clears the grid, sets cells alive and sets the generation counter.
// The engine is left Paused with no pending step.
func (e *Engine) Restore(cells []Coord, generation uint64) {
	e.Clear()
	for _, c := range cells {
		e.set(c, true)
	}
	e.generation = generation
	e.state = Paused
}

// Randomize clears the grid and fills the initialized bounds with live cells
// at the given density (0..1) using a deterministic seed.
func (e *Engine) Randomize(seed int64, density float64) {
	e.Clear()
	if density <= 0 {
		return
	}
	rng := rand.New(rand.NewSource(seed))
	b := e.bounds
	for y := b.MinY; y <= b.MaxY; y++ {
		for x := b.MinX; x <= b.MaxX; x++ {
			if rng.Float64() < density {
				e.set(Coord{X: x, Y: y}, true)
			}
		}
	}
}

// Generation returns the number of generations applied since Initialize.
func (e *Engine) Generation() uint64 {
	return e.generation
}

// Population returns the number of live cells.
func (e *Engine) Population() int {
	return e.population
}

// Tracked returns the number of coordinates stored in the grid.
func (e *Engine) Tracked() int {
	return len(e.cells)
}

// Bounds returns the rectangle passed to Initialize.
func (e *Engine) Bounds() Rect {
	return e.bounds
}

// Policy returns the evaluation policy.
func (e *Engine) Policy() EvalPolicy {
	return e.policy
}

// LiveCells returns all live coordinates ordered by row then column.
func (e *Engine) LiveCells() []Coord {
	live := make([]Coord, 0, e.population)
	for c, alive := range e.cells {
		if alive {
			live = append(live, c)
		}
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].Y != live[j].Y {
			return live[i].Y < live[j].Y
		}
		return live[i].X < live[j].X
	})
	return live
}
