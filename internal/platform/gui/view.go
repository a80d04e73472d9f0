// Package gui hosts a Life session in a desktop window. The window itself
// needs the ebiten build tag; the viewport math and palette here build
// everywhere.
package gui

import (
	"image/color"
	"math"

	"github.com/vovakirdan/tui-life/internal/core"
)

// Zoom limits in pixels per cell.
const (
	MinCellSize     = 2
	MaxCellSize     = 64
	DefaultCellSize = 12
)

// Viewport maps window pixels to grid coordinates. Cell (CenterX, CenterY)
// is drawn centered in the window.
type Viewport struct {
	CellSize         int
	CenterX, CenterY int
	Width, Height    int // Window size in pixels
}

// NewViewport creates a viewport centered on the origin.
func NewViewport(width, height, cellSize int) Viewport {
	return Viewport{
		CellSize: core.Clamp(cellSize, MinCellSize, MaxCellSize),
		Width:    width,
		Height:   height,
	}
}

// ScreenToGrid converts a pixel position to the nearest grid coordinate.
func (v Viewport) ScreenToGrid(px, py int) (int, int) {
	s := float64(v.CellSize)
	gx := math.Floor(float64(px-v.Width/2)/s + 0.5)
	gy := math.Floor(float64(py-v.Height/2)/s + 0.5)
	return v.CenterX + int(gx), v.CenterY + int(gy)
}

// GridToScreen returns the top-left pixel of a grid cell.
func (v Viewport) GridToScreen(gx, gy int) (int, int) {
	px := v.Width/2 + (gx-v.CenterX)*v.CellSize - v.CellSize/2
	py := v.Height/2 + (gy-v.CenterY)*v.CellSize - v.CellSize/2
	return px, py
}

// Visible returns the inclusive grid range covered by the window.
func (v Viewport) Visible() (minX, minY, maxX, maxY int) {
	minX, minY = v.ScreenToGrid(0, 0)
	maxX, maxY = v.ScreenToGrid(v.Width-1, v.Height-1)
	return minX, minY, maxX, maxY
}

// Pan moves the center by (dx, dy) cells.
func (v *Viewport) Pan(dx, dy int) {
	v.CenterX += dx
	v.CenterY += dy
}

// Zoom changes the cell size by delta pixels within the zoom limits.
func (v *Viewport) Zoom(delta int) {
	v.CellSize = core.Clamp(v.CellSize+delta, MinCellSize, MaxCellSize)
}

// Resize updates the window size.
func (v *Viewport) Resize(width, height int) {
	v.Width = width
	v.Height = height
}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorRed:          {0xcd, 0x31, 0x31, 0xff},
	core.ColorGreen:        {0x0d, 0xbc, 0x79, 0xff},
	core.ColorYellow:       {0xe5, 0xe5, 0x10, 0xff},
	core.ColorBlue:         {0x24, 0x72, 0xc8, 0xff},
	core.ColorMagenta:      {0xbc, 0x3f, 0xbc, 0xff},
	core.ColorCyan:         {0x11, 0xa8, 0xcd, 0xff},
	core.ColorWhite:        {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightGreen:  {0x23, 0xd1, 0x8b, 0xff},
	core.ColorBrightYellow: {0xf5, 0xf5, 0x43, 0xff},
	core.ColorBrightCyan:   {0x29, 0xb8, 0xdb, 0xff},
	core.ColorGray:         {0x30, 0x30, 0x30, 0xff},
}

// RGBA returns the window color for a palette entry.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}
