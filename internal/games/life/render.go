package life

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/core"
)

// Render draws the board, HUD and footer to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	state := "RUNNING"
	stateColor := core.ColorBrightGreen
	if !g.engine.Playing() {
		state = "PAUSED"
		stateColor = core.ColorYellow
	}

	hud := fmt.Sprintf(" %s  Gen: %d  Pop: %d  Peak: %d  Step: %v  Cursor: %s ",
		g.Title(), g.engine.Generation(), g.engine.Population(), g.peak, g.timer.Interval(), g.cursor)
	dst.DrawText(0, 0, hud)
	dst.DrawTextColored(len([]rune(hud)), 0, state, stateColor)

	dst.DrawHLine(0, 1, dst.Width(), '─')
	if !g.engine.Playing() {
		dst.DrawTextCentered(1, " space: run  n: step  enter: toggle ")
	}
}

// renderBoard draws every visible cell.
func (g *Game) renderBoard(dst *core.Screen) {
	bounds := g.engine.Bounds()
	showGrid := g.opts.Config.Render.ShowGrid
	ox, oy := g.cam.Origin()

	for row := 0; row < g.cam.Rows(); row++ {
		for col := 0; col < g.cam.Cols(); col++ {
			gx, gy := ox+col, oy+row
			sx := g.cam.View.X + col*cellWidth
			sy := g.cam.View.Y + row

			cursor := gx == g.cursor.X && gy == g.cursor.Y
			alive := g.engine.IsAlive(gx, gy)

			switch {
			case alive && cursor:
				dst.SetColored(sx, sy, g.aliveGlyph, core.ColorBrightYellow)
				dst.SetColored(sx+1, sy, g.aliveGlyph, core.ColorBrightYellow)
			case alive:
				dst.SetColored(sx, sy, g.aliveGlyph, g.aliveColor)
				dst.SetColored(sx+1, sy, g.aliveGlyph, g.aliveColor)
			case cursor:
				dst.SetColored(sx, sy, '[', core.ColorYellow)
				dst.SetColored(sx+1, sy, ']', core.ColorYellow)
			case showGrid && bounds.Contains(automaton.C(gx, gy)):
				dst.SetColored(sx, sy, g.deadGlyph, core.ColorGray)
			}
		}
	}
}

// renderFooter draws the status message or key hints on the last row.
func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	if g.status != "" {
		dst.DrawTextColored(1, y, g.status, core.ColorBrightCyan)
		return
	}
	dst.DrawTextColored(1, y, "arrows: move  wasd: pan  c: clear  r: random  +/-: speed  ctrl+s: save  q: quit", core.ColorGray)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 4
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(x, y, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(x, y, boxW, boxH))
	dst.DrawTextCentered(y+1, title)
	dst.DrawTextCentered(y+2, subtitle)
}
