// Package core provides fundamental types and utilities shared by the engine,
// the game logic and the frontends. It contains no external dependencies
// (especially no Bubble Tea or ebiten) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps world coordinates onto a character screen.
// World space has its origin at the centre of the window and y pointing up,
// screen space has its origin at the top-left cell and rows growing down.
type Viewport struct {
	WorldW, WorldH   float64
	ScreenW, ScreenH int
}

// Project converts a world position to the screen cell that contains it.
func (v Viewport) Project(x, y float64) (col, row int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, 0
	}
	fx := (x + v.WorldW/2) / v.WorldW * float64(v.ScreenW)
	fy := (v.WorldH/2 - y) / v.WorldH * float64(v.ScreenH)
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// Cells converts a world-space size to a size in screen cells.
// Anything visible is at least one cell wide and tall.
func (v Viewport) Cells(w, h float64) (cw, ch int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 1, 1
	}
	cw = int(math.Round(w / v.WorldW * float64(v.ScreenW)))
	ch = int(math.Round(h / v.WorldH * float64(v.ScreenH)))
	return Max(cw, 1), Max(ch, 1)
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
	return math.Max(min, math.Min(max, val))
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
