// Package life implements the interactive Game of Life session that hosts
// drive: cursor and camera handling, the step timer and board rendering
// around an automaton.Engine.
package life

import (
	"fmt"
	"math/rand"
	"sync"
	"unicode/utf8"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/patterns"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// Mode selects how a session evaluates the board.
type Mode string

const (
	ModeTracked   Mode = "life"           // Policy from config, tracked by default
	ModeUnbounded Mode = "life_unbounded" // Always unbounded
)

// Layout constants
const (
	hudHeight    = 2 // Status line + separator
	footerHeight = 1
	cellWidth    = 2 // Characters per grid cell
	panStep      = 5
	minScreenW   = 24
	minScreenH   = hudHeight + footerHeight + 3
)

// Options are the session defaults new games are created with.
type Options struct {
	Config config.LifeConfig
	Start  *patterns.Pattern // Overrides Config.Start.Pattern when set
}

var (
	defaultsMu sync.RWMutex
	defaults   = Options{Config: config.DefaultLifeConfig()}
)

// SetDefaults replaces the options used by registry factories.
func SetDefaults(o Options) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = o
}

// Defaults returns the options used by registry factories.
func Defaults() Options {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

// Game is a Life session.
type Game struct {
	mode   Mode
	opts   Options
	policy automaton.EvalPolicy

	engine *automaton.Engine
	timer  *config.StepTimer
	cam    core.Camera
	cursor automaton.Coord
	rng    *rand.Rand
	tick   uint64
	peak   int

	// Render settings
	aliveGlyph rune
	deadGlyph  rune
	aliveColor core.Color

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int
	tooSmall bool

	status      string
	statusTicks int
}

// New creates a game for the given mode.
func New(mode Mode, opts Options) *Game {
	g := &Game{mode: mode, opts: opts}

	g.policy, _ = opts.Config.EvalPolicy()
	if mode == ModeUnbounded {
		g.policy = automaton.Unbounded
	}

	g.aliveGlyph = firstRune(opts.Config.Render.AliveGlyph, '█')
	g.deadGlyph = firstRune(opts.Config.Render.DeadGlyph, '·')
	if c, ok := core.ParseColor(opts.Config.Render.AliveColor); ok {
		g.aliveColor = c
	} else {
		g.aliveColor = core.ColorBrightGreen
	}

	return g
}

func init() {
	registry.Register(string(ModeTracked), "Classic board, only tracked cells evolve", func() registry.Game {
		return New(ModeTracked, Defaults())
	})
	registry.Register(string(ModeUnbounded), "Board grows wherever life spreads", func() registry.Game {
		return New(ModeUnbounded, Defaults())
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeUnbounded {
		return "Life (Unbounded)"
	}
	return "Life"
}

// Engine exposes the automaton for headless and window hosts.
func (g *Game) Engine() *automaton.Engine {
	return g.engine
}

// Reset builds a fresh board from the configured start pattern.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.status = ""
	g.statusTicks = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	g.engine = automaton.New(g.opts.Config.Board.Bounds.Rect(), automaton.WithPolicy(g.policy))
	g.timer = config.NewStepTimer(g.opts.Config.EffectiveInterval(), g.tickRate)
	g.cam = core.NewCamera(core.Rect{}, cellWidth)
	g.cursor = automaton.C(0, 0)
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.applyStart()
	g.peak = g.engine.Population()
}

// applyStart stamps the start pattern or a random soup.
func (g *Game) applyStart() {
	if g.opts.Start != nil {
		g.opts.Start.StampCentered(g.engine, automaton.C(0, 0))
		return
	}

	switch name := g.opts.Config.Start.Pattern; name {
	case "":
	case "random":
		g.engine.Randomize(g.rng.Int63(), g.opts.Config.Board.RandomDensity)
	default:
		if p, ok := patterns.Lookup(name); ok {
			p.StampCentered(g.engine, automaton.C(0, 0))
		}
	}
}

// Resize adapts the board viewport to new screen dimensions without
// touching the grid.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH

	g.cam.View = core.NewRect(0, hudHeight, w, core.Max(h-hudHeight-footerHeight, 0))
}

// Step advances the session by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	if g.statusTicks > 0 {
		g.statusTicks--
		if g.statusTicks == 0 {
			g.status = ""
		}
	}

	if in.Has(core.ActionPause) {
		g.engine.TogglePause()
		g.timer.Reset()
	}

	g.handleNavigation(in)
	g.handleEdits(in)

	if in.Has(core.ActionFaster) {
		g.timer.Faster()
		g.Notify(fmt.Sprintf("Step every %v", g.timer.Interval()))
	}
	if in.Has(core.ActionSlower) {
		g.timer.Slower()
		g.Notify(fmt.Sprintf("Step every %v", g.timer.Interval()))
	}
	if in.Has(core.ActionSave) {
		events = append(events, core.EventSaveRequested)
	}

	// Manual and timed requests in the same tick coalesce into one step
	if in.Has(core.ActionStep) {
		g.engine.RequestStep()
	}
	if g.engine.Playing() && g.timer.Tick() {
		g.engine.RequestStep()
	}
	g.engine.Step()

	g.peak = core.Max(g.peak, g.engine.Population())

	return core.StepResult{State: g.State(), Events: events}
}

// handleNavigation moves the cursor and the camera.
func (g *Game) handleNavigation(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	}

	switch {
	case in.Has(core.ActionPanUp):
		g.pan(0, -panStep)
	case in.Has(core.ActionPanDown):
		g.pan(0, panStep)
	case in.Has(core.ActionPanLeft):
		g.pan(-panStep, 0)
	case in.Has(core.ActionPanRight):
		g.pan(panStep, 0)
	}

	if in.Has(core.ActionRecenter) {
		g.cam.CenterOn(0, 0)
		g.cursor = automaton.C(0, 0)
	}
}

// moveCursor moves the cursor and scrolls the camera to keep it visible.
func (g *Game) moveCursor(dx, dy int) {
	g.cursor = g.cursor.Add(dx, dy)
	if _, _, ok := g.cam.GridToScreen(g.cursor.X, g.cursor.Y); !ok {
		g.cam.Pan(dx, dy)
	}
}

// pan moves the camera and drags the cursor along.
func (g *Game) pan(dx, dy int) {
	g.cam.Pan(dx, dy)
	g.cursor = g.cursor.Add(dx, dy)
}

// handleEdits applies board edits from keys and mouse clicks.
func (g *Game) handleEdits(in core.InputFrame) {
	if in.Has(core.ActionToggleCell) {
		g.engine.ToggleCell(g.cursor.X, g.cursor.Y)
	}

	for _, click := range in.Clicks {
		g.ToggleAt(click.X, click.Y)
	}

	if in.Has(core.ActionClear) {
		g.engine.Clear()
		g.Notify("Board cleared")
	}
	if in.Has(core.ActionRandomize) {
		g.engine.Randomize(g.rng.Int63(), g.opts.Config.Board.RandomDensity)
		g.Notify("Random soup")
	}
}

// ToggleAt toggles the cell drawn at a screen position and moves the cursor
// there. Returns false when the position is outside the board.
func (g *Game) ToggleAt(sx, sy int) bool {
	gx, gy, ok := g.cam.ScreenToGrid(sx, sy)
	if !ok {
		return false
	}
	g.engine.ToggleCell(gx, gy)
	g.cursor = automaton.C(gx, gy)
	return true
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Generation: g.engine.Generation(),
		Population: g.engine.Population(),
		Peak:       g.peak,
		Paused:     !g.engine.Playing(),
	}
}

// Notify shows a status message in the footer for a few seconds.
func (g *Game) Notify(msg string) {
	g.status = msg
	g.statusTicks = 3 * g.tickRate
}

// Status returns the current status message, or "" when none is shown.
func (g *Game) Status() string {
	return g.status
}

// ExportBoard returns a copy of the board for saving.
func (g *Game) ExportBoard() registry.BoardState {
	return registry.BoardState{
		Policy:     g.engine.Policy(),
		Generation: g.engine.Generation(),
		Cells:      g.engine.LiveCells(),
	}
}

// ImportBoard replaces the board with a saved one. The session adopts the
// saved board's policy.
func (g *Game) ImportBoard(b registry.BoardState) {
	if b.Policy != g.engine.Policy() {
		g.policy = b.Policy
		g.engine = automaton.New(g.opts.Config.Board.Bounds.Rect(), automaton.WithPolicy(b.Policy))
	}
	g.engine.Restore(b.Cells, b.Generation)
	g.peak = g.engine.Population()
	g.timer.Reset()
}

// firstRune returns the first rune of s, or def if s is empty.
func firstRune(s string, def rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return def
	}
	return r
}

// Interface checks
var (
	_ registry.Game       = (*Game)(nil)
	_ registry.Persistent = (*Game)(nil)
	_ registry.Notifier   = (*Game)(nil)
	_ registry.Resizer    = (*Game)(nil)
)
