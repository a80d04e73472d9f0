package life

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/patterns"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// newTestGame creates a reset game with the given start pattern.
func newTestGame(t *testing.T, mode Mode, start string, mutate func(*config.LifeConfig)) *Game {
	t.Helper()
	cfg := config.DefaultLifeConfig()
	cfg.Start.Pattern = start
	if mutate != nil {
		mutate(&cfg)
	}
	g := New(mode, Options{Config: cfg})
	g.Reset(core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

// press returns a frame with the given actions set.
func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// idle steps the game n times with no input.
func idle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"life", "life_unbounded"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}

	g, err := registry.Create("life_unbounded")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.Title() != "Life (Unbounded)" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestUnboundedModeForcesPolicy(t *testing.T) {
	g := newTestGame(t, ModeUnbounded, "", nil)
	if g.Engine().Policy() != automaton.Unbounded {
		t.Errorf("policy = %v, expected unbounded", g.Engine().Policy())
	}

	g = newTestGame(t, ModeTracked, "", func(c *config.LifeConfig) { c.Board.Policy = "unbounded" })
	if g.Engine().Policy() != automaton.Unbounded {
		t.Error("life mode should honor the configured policy")
	}
}

func TestStartsPaused(t *testing.T) {
	g := newTestGame(t, ModeTracked, "glider", nil)

	if g.State().Population != 5 {
		t.Fatalf("glider start population = %d, expected 5", g.State().Population)
	}
	idle(g, 120)

	if !g.State().Paused || g.State().Generation != 0 {
		t.Errorf("paused session advanced: %+v", g.State())
	}
}

func TestStartPatternOverride(t *testing.T) {
	p, _ := patterns.Lookup("block")
	cfg := config.DefaultLifeConfig()
	g := New(ModeTracked, Options{Config: cfg, Start: &p})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	if g.State().Population != 4 {
		t.Errorf("population = %d, expected block of 4", g.State().Population)
	}
}

func TestRandomStart(t *testing.T) {
	g := newTestGame(t, ModeTracked, "random", func(c *config.LifeConfig) {
		c.Board.Bounds = config.BoundsConfig{MinX: -10, MinY: -10, MaxX: 10, MaxY: 10}
	})
	if g.State().Population == 0 {
		t.Error("random start produced an empty board")
	}
}

func TestTimerCadence(t *testing.T) {
	g := newTestGame(t, ModeTracked, "blinker", nil)

	// 200ms at 60 ticks/s is one generation every 12 ticks
	g.Step(press(core.ActionPause))
	idle(g, 59)

	if got := g.State().Generation; got != 5 {
		t.Errorf("generation after 1s = %d, expected 5", got)
	}

	g.Step(press(core.ActionPause))
	idle(g, 60)
	if got := g.State().Generation; got != 5 {
		t.Errorf("generation advanced while paused: %d", got)
	}
}

func TestManualStepWhilePaused(t *testing.T) {
	g := newTestGame(t, ModeTracked, "blinker", nil)

	g.Step(press(core.ActionStep))
	if g.State().Generation != 1 {
		t.Fatalf("generation = %d, expected 1", g.State().Generation)
	}
	if !g.Engine().IsAlive(0, -1) || g.Engine().IsAlive(-1, 0) {
		t.Error("blinker did not rotate after a manual step")
	}
}

func TestManualAndTimerStepCoalesce(t *testing.T) {
	g := newTestGame(t, ModeTracked, "blinker", func(c *config.LifeConfig) { c.Timing.StepInterval = 0 })

	g.Step(press(core.ActionPause)) // turbo: this tick already steps
	before := g.State().Generation

	g.Step(press(core.ActionStep))
	if got := g.State().Generation - before; got != 1 {
		t.Errorf("manual + timer in one tick applied %d generations, expected 1", got)
	}
}

func TestCursorToggle(t *testing.T) {
	g := newTestGame(t, ModeTracked, "", nil)

	g.Step(press(core.ActionRight))
	g.Step(press(core.ActionDown))
	g.Step(press(core.ActionToggleCell))

	if !g.Engine().IsAlive(1, 1) {
		t.Error("toggle at cursor (1,1) did not set the cell")
	}

	g.Step(press(core.ActionToggleCell))
	if g.Engine().IsAlive(1, 1) {
		t.Error("second toggle should kill the cell")
	}
}

func TestCursorScrollsCamera(t *testing.T) {
	g := newTestGame(t, ModeTracked, "", nil)

	// 40 columns visible, origin at -20
	for i := 0; i < 25; i++ {
		g.Step(press(core.ActionRight))
	}
	snap := g.Snapshot()
	if snap.Cursor != automaton.C(25, 0) {
		t.Fatalf("cursor = %v", snap.Cursor)
	}
	if _, _, ok := g.cam.GridToScreen(25, 0); !ok {
		t.Error("cursor moved off screen without scrolling")
	}

	g.Step(press(core.ActionRecenter))
	if g.Snapshot().Cursor != automaton.C(0, 0) || g.cam.CenterX != 0 {
		t.Error("recenter did not reset cursor and camera")
	}
}

func TestPanMovesCameraAndCursor(t *testing.T) {
	g := newTestGame(t, ModeTracked, "", nil)

	g.Step(press(core.ActionPanRight))
	g.Step(press(core.ActionPanDown))

	snap := g.Snapshot()
	if snap.CameraX != panStep || snap.CameraY != panStep {
		t.Errorf("camera = (%d,%d), expected (%d,%d)", snap.CameraX, snap.CameraY, panStep, panStep)
	}
	if snap.Cursor != automaton.C(panStep, panStep) {
		t.Errorf("cursor = %v", snap.Cursor)
	}
}

func TestMouseClickToggles(t *testing.T) {
	g := newTestGame(t, ModeTracked, "", nil)

	// 80x24: viewport rows 2..22, origin (-20,-10), cells two characters wide
	f := core.NewInputFrame()
	f.Click(41, 12)
	g.Step(f)

	if !g.Engine().IsAlive(0, 0) {
		t.Error("click at (41,12) should toggle grid (0,0)")
	}
	if g.Snapshot().Cursor != automaton.C(0, 0) {
		t.Error("click should move the cursor")
	}

	if g.ToggleAt(5, 0) {
		t.Error("click on the HUD should be ignored")
	}
	if g.State().Population != 1 {
		t.Errorf("population = %d, expected 1", g.State().Population)
	}
}

func TestClearAndRandomize(t *testing.T) {
	g := newTestGame(t, ModeTracked, "glider", nil)

	g.Step(press(core.ActionClear))
	if g.State().Population != 0 {
		t.Errorf("population after clear = %d", g.State().Population)
	}

	g.Step(press(core.ActionRandomize))
	if g.State().Population == 0 {
		t.Error("randomize produced an empty board")
	}
	if g.status == "" {
		t.Error("randomize should show a status message")
	}
}

func TestSpeedControls(t *testing.T) {
	g := newTestGame(t, ModeTracked, "", nil)

	g.Step(press(core.ActionFaster))
	if g.Snapshot().Interval >= 200*time.Millisecond {
		t.Errorf("interval after faster = %v", g.Snapshot().Interval)
	}
	g.Step(press(core.ActionSlower))
	g.Step(press(core.ActionSlower))
	if g.Snapshot().Interval <= 200*time.Millisecond {
		t.Errorf("interval after slower = %v", g.Snapshot().Interval)
	}
}

func TestSaveEmitsEvent(t *testing.T) {
	g := newTestGame(t, ModeTracked, "", nil)

	if g.Step(core.NewInputFrame()).Has(core.EventSaveRequested) {
		t.Error("idle tick should not request a save")
	}
	if !g.Step(press(core.ActionSave)).Has(core.EventSaveRequested) {
		t.Error("save action should emit EventSaveRequested")
	}
}

func TestStatusExpires(t *testing.T) {
	g := newTestGame(t, ModeTracked, "", nil)

	g.Notify("hello")
	idle(g, 3*60-1)
	if g.Status() != "hello" {
		t.Fatal("status expired early")
	}
	idle(g, 1)
	if g.Status() != "" {
		t.Errorf("status = %q, expected it to expire", g.status)
	}
}

func TestExportImportBoard(t *testing.T) {
	src := newTestGame(t, ModeTracked, "glider", nil)
	for i := 0; i < 4; i++ {
		src.Step(press(core.ActionStep))
	}
	board := src.ExportBoard()

	dst := newTestGame(t, ModeTracked, "", nil)
	dst.ImportBoard(board)

	if dst.State().Generation != 4 {
		t.Errorf("generation = %d, expected 4", dst.State().Generation)
	}
	if !reflect.DeepEqual(dst.Engine().LiveCells(), src.Engine().LiveCells()) {
		t.Error("imported board differs from exported board")
	}

	board.Policy = automaton.Unbounded
	dst.ImportBoard(board)
	if dst.Engine().Policy() != automaton.Unbounded {
		t.Error("import should adopt the saved policy")
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newTestGame(t, ModeTracked, "glider", nil)
	g.Step(press(core.ActionStep))

	g.Resize(120, 40)
	if g.State().Generation != 1 || g.State().Population != 5 {
		t.Errorf("resize changed the board: %+v", g.State())
	}
	if g.cam.Cols() != 60 {
		t.Errorf("Cols() = %d after resize, expected 60", g.cam.Cols())
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(t, ModeUnbounded, "random", nil)
	g2 := newTestGame(t, ModeUnbounded, "random", nil)

	for i := 0; i < 300; i++ {
		var in core.InputFrame
		switch i {
		case 0:
			in = press(core.ActionPause)
		case 100:
			in = press(core.ActionRandomize, core.ActionFaster)
		case 150:
			in = press(core.ActionRight, core.ActionToggleCell)
		default:
			in = core.NewInputFrame()
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if s1.Generation == 0 {
		t.Error("session never advanced")
	}
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, ModeTracked, "", nil)
	g.Engine().SetCell(1, 0, true)
	g.Engine().SetCell(0, 0, true)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Grid (1,0) is drawn at screen (42,12)
	cell := screen.GetCell(42, 12)
	if cell.Rune != '█' || cell.Color != core.ColorBrightGreen {
		t.Errorf("live cell = %+v", cell)
	}
	if screen.Get(43, 12) != '█' {
		t.Error("live cells should fill both characters")
	}

	// Cursor sits on a live cell at (0,0)
	if screen.GetCell(40, 12).Color != core.ColorBrightYellow {
		t.Errorf("cursor cell = %+v", screen.GetCell(40, 12))
	}

	if screen.Get(44, 12) != '·' {
		t.Errorf("dead cell inside bounds = %q, expected dot", screen.Get(44, 12))
	}

	hud := screen.Row(0)
	if !strings.Contains(hud, "Gen: 0") || !strings.Contains(hud, "Pop: 2") || !strings.Contains(hud, "PAUSED") {
		t.Errorf("HUD = %q", hud)
	}
}

func TestRenderCursorOnDeadCell(t *testing.T) {
	g := newTestGame(t, ModeTracked, "", func(c *config.LifeConfig) { c.Render.ShowGrid = false })

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if screen.Get(40, 12) != '[' || screen.Get(41, 12) != ']' {
		t.Errorf("cursor = %q%q", screen.Get(40, 12), screen.Get(41, 12))
	}
	if screen.Get(44, 12) != ' ' {
		t.Error("dead cells should be blank without show_grid")
	}
}

func TestRenderTooSmall(t *testing.T) {
	cfg := config.DefaultLifeConfig()
	g := New(ModeTracked, Options{Config: cfg})
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 5})

	screen := core.NewScreen(20, 5)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected too-small overlay, got:\n%s", screen.String())
	}
}
