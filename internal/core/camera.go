package core

// Camera maps between screen character positions and grid coordinates.
// A grid cell is CellW characters wide and one row tall, and the grid
// coordinate at (CenterX, CenterY) sits in the middle of the viewport.
type Camera struct {
	CenterX, CenterY int
	CellW            int
	View             Rect // Screen area the board is drawn into
}

// NewCamera creates a camera centered on the origin.
func NewCamera(view Rect, cellW int) Camera {
	if cellW <= 0 {
		cellW = 1
	}
	return Camera{CellW: cellW, View: view}
}

// Cols returns how many grid columns fit in the viewport.
func (c Camera) Cols() int {
	return c.View.W / c.CellW
}

// Rows returns how many grid rows fit in the viewport.
func (c Camera) Rows() int {
	return c.View.H
}

// Origin returns the grid coordinate drawn at the top-left of the viewport.
func (c Camera) Origin() (int, int) {
	return c.CenterX - c.Cols()/2, c.CenterY - c.Rows()/2
}

// ScreenToGrid converts a screen position into the grid coordinate under it.
// ok is false when the position is outside the drawn board.
func (c Camera) ScreenToGrid(sx, sy int) (gx, gy int, ok bool) {
	relX := sx - c.View.X
	relY := sy - c.View.Y
	if relX < 0 || relY < 0 || relX >= c.Cols()*c.CellW || relY >= c.Rows() {
		return 0, 0, false
	}
	ox, oy := c.Origin()
	return ox + FloorDiv(relX, c.CellW), oy + relY, true
}

// GridToScreen returns the screen position of the left character of a grid
// cell. ok is false when the cell is not visible.
func (c Camera) GridToScreen(gx, gy int) (sx, sy int, ok bool) {
	ox, oy := c.Origin()
	col := gx - ox
	row := gy - oy
	if col < 0 || row < 0 || col >= c.Cols() || row >= c.Rows() {
		return 0, 0, false
	}
	return c.View.X + col*c.CellW, c.View.Y + row, true
}

// Pan moves the camera center by (dx, dy) grid cells.
func (c *Camera) Pan(dx, dy int) {
	c.CenterX += dx
	c.CenterY += dy
}

// CenterOn moves the camera so (gx, gy) is in the middle of the viewport.
func (c *Camera) CenterOn(gx, gy int) {
	c.CenterX = gx
	c.CenterY = gy
}
