// Package core provides fundamental types and utilities shared by the
// simulation and the terminal host. It contains no Bubble Tea code so that
// game logic stays pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps the horizontal world plane (x, z) onto screen cells.
// The world origin of the view sits at the screen centre; world -Z points up
// the screen so that running "forward" along the course moves upward.
type Viewport struct {
	CenterX, CenterZ float64 // World point at the middle of the screen
	CellW, CellH     float64 // World metres covered by one column / one row
	Cols, Rows       int
}

// NewViewport creates a viewport of the given size. Terminal cells are about
// twice as tall as they are wide, so rows cover twice the distance of columns.
func NewViewport(cols, rows int, metresPerCol float64) Viewport {
	if metresPerCol <= 0 {
		metresPerCol = 1
	}
	return Viewport{
		CellW: metresPerCol,
		CellH: metresPerCol * 2,
		Cols:  cols,
		Rows:  rows,
	}
}

// Project converts a world (x, z) point to a screen cell.
func (v Viewport) Project(x, z float64) (int, int) {
	col := float64(v.Cols)/2 + (x-v.CenterX)/v.CellW
	row := float64(v.Rows)/2 + (z-v.CenterZ)/v.CellH
	return int(math.Floor(col)), int(math.Floor(row))
}

// Unproject returns the world (x, z) point at the centre of a screen cell.
func (v Viewport) Unproject(col, row int) (float64, float64) {
	x := v.CenterX + (float64(col)+0.5-float64(v.Cols)/2)*v.CellW
	z := v.CenterZ + (float64(row)+0.5-float64(v.Rows)/2)*v.CellH
	return x, z
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
