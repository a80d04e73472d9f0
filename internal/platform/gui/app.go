//go:build ebiten

package gui

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/games/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// Available reports whether this build can open a window.
const Available = true

const panCells = 5

var (
	background  = color.RGBA{0x10, 0x10, 0x10, 0xff}
	cursorColor = color.RGBA{0xf5, 0xf5, 0x43, 0xff}
)

// keyActions maps window keys to the same actions the terminal uses.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeySpace:          core.ActionPause,
	ebiten.KeyP:              core.ActionPause,
	ebiten.KeyN:              core.ActionStep,
	ebiten.KeyPeriod:         core.ActionStep,
	ebiten.KeyEnter:          core.ActionToggleCell,
	ebiten.KeyX:              core.ActionToggleCell,
	ebiten.KeyC:              core.ActionClear,
	ebiten.KeyR:              core.ActionRandomize,
	ebiten.KeyDigit0:         core.ActionRecenter,
	ebiten.KeyArrowUp:        core.ActionUp,
	ebiten.KeyArrowDown:      core.ActionDown,
	ebiten.KeyArrowLeft:      core.ActionLeft,
	ebiten.KeyArrowRight:     core.ActionRight,
	ebiten.KeyEqual:          core.ActionFaster,
	ebiten.KeyNumpadAdd:      core.ActionFaster,
	ebiten.KeyMinus:          core.ActionSlower,
	ebiten.KeyNumpadSubtract: core.ActionSlower,
}

// panKeys maps keys to camera moves in cells.
var panKeys = map[ebiten.Key][2]int{
	ebiten.KeyW: {0, -panCells},
	ebiten.KeyA: {-panCells, 0},
	ebiten.KeyS: {0, panCells},
	ebiten.KeyD: {panCells, 0},
}

// App adapts a Life session to the ebiten.Game interface.
type App struct {
	game   *life.Game
	view   Viewport
	frame  core.InputFrame
	onSave func(registry.BoardState) (string, error)

	alive    color.RGBA
	grid     color.RGBA
	showGrid bool
}

// newApp constructs an App around a reset game.
func newApp(game *life.Game, cfg config.LifeConfig, opts Options) *App {
	alive, ok := core.ParseColor(cfg.Render.AliveColor)
	if !ok {
		alive = core.ColorBrightGreen
	}
	return &App{
		game:     game,
		view:     NewViewport(opts.Width, opts.Height, opts.CellSize),
		frame:    core.NewInputFrame(),
		onSave:   opts.OnSave,
		alive:    RGBA(alive),
		grid:     RGBA(core.ColorGray),
		showGrid: cfg.Render.ShowGrid,
	}
}

// Update collects input and advances the session by one tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.frame.Set(core.ActionSave)
	}
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			a.frame.Set(action)
		}
	}
	if !ctrl {
		for key, d := range panKeys {
			if inpututil.IsKeyJustPressed(key) {
				a.view.Pan(d[0], d[1])
			}
		}
	}
	if a.frame.Has(core.ActionRecenter) {
		a.view.CenterX, a.view.CenterY = 0, 0
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		step := max(a.view.CellSize/4, 1)
		if dy < 0 {
			step = -step
		}
		a.view.Zoom(step)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		gx, gy := a.view.ScreenToGrid(ebiten.CursorPosition())
		a.game.Engine().ToggleCell(gx, gy)
	}

	result := a.game.Step(a.frame)
	if result.Has(core.EventSaveRequested) {
		a.save()
	}
	a.frame.Clear()
	return nil
}

// save hands the board to the save callback and reports the outcome.
func (a *App) save() {
	if a.onSave == nil {
		a.game.Notify("Saving is unavailable")
		return
	}
	name, err := a.onSave(a.game.ExportBoard())
	if err != nil {
		a.game.Notify("Save failed")
		return
	}
	a.game.Notify("Saved " + name)
}

// Draw renders the visible part of the board and the HUD.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	engine := a.game.Engine()
	bounds := engine.Bounds()
	size := a.view.CellSize
	inset := 0
	if size >= 4 {
		inset = 1
	}
	drawGrid := a.showGrid && size >= 4

	minX, minY, maxX, maxY := a.view.Visible()
	for gy := minY; gy <= maxY; gy++ {
		for gx := minX; gx <= maxX; gx++ {
			var clr color.RGBA
			switch {
			case engine.IsAlive(gx, gy):
				clr = a.alive
			case drawGrid && bounds.Contains(automaton.C(gx, gy)):
				clr = a.grid
			default:
				continue
			}
			px, py := a.view.GridToScreen(gx, gy)
			fillRect(screen, image.Rect(px+inset, py+inset, px+size, py+size), clr)
		}
	}

	snap := a.game.Snapshot()
	px, py := a.view.GridToScreen(snap.Cursor.X, snap.Cursor.Y)
	drawOutline(screen, image.Rect(px, py, px+size, py+size), cursorColor)

	state := "RUNNING"
	if snap.RunState == automaton.Paused {
		state = "PAUSED"
	}
	hud := fmt.Sprintf("%s  Gen %d  Pop %d  Peak %d  Step %v  %s",
		a.game.Title(), snap.Generation, snap.Population, snap.Peak, snap.Interval, state)
	if status := a.game.Status(); status != "" {
		hud += "\n" + status
	}
	ebitenutil.DebugPrint(screen, hud)
}

// Layout follows the window size so the board fills it.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.view.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// fillRect fills r, clipped to dst.
func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	dst.SubImage(r).(*ebiten.Image).Fill(clr)
}

// drawOutline draws a one-pixel border around r.
func drawOutline(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), clr)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), clr)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), clr)
	fillRect(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), clr)
}

// Run opens a window and drives the game until it is closed.
func Run(game *life.Game, cfg config.LifeConfig, opts Options) error {
	opts = opts.withDefaults()

	game.Reset(core.RuntimeConfig{
		ScreenW:  opts.Width / 8,
		ScreenH:  opts.Height / 16,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})
	if opts.Board != nil {
		game.ImportBoard(*opts.Board)
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	if err := ebiten.RunGame(newApp(game, cfg, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
