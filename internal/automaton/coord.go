package automaton

import "fmt"

// Coord identifies a single cell. The plane is unbounded in both directions.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// neighborOffsets is the Moore neighborhood.
var neighborOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Rect is an inclusive rectangle of coordinates.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Square returns the rectangle -r..r on both axes.
func Square(r int) Rect {
	if r < 0 {
		r = -r
	}
	return Rect{MinX: -r, MinY: -r, MaxX: r, MaxY: r}
}

// Empty reports whether the rectangle contains no coordinates.
func (r Rect) Empty() bool {
	return r.MaxX < r.MinX || r.MaxY < r.MinY
}

// Width returns the number of columns covered.
func (r Rect) Width() int {
	if r.Empty() {
		return 0
	}
	return r.MaxX - r.MinX + 1
}

// Height returns the number of rows covered.
func (r Rect) Height() int {
	if r.Empty() {
		return 0
	}
	return r.MaxY - r.MinY + 1
}

// Contains reports whether c lies within the rectangle.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Y >= r.MinY && c.Y <= r.MaxY
}
