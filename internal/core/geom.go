// Package core provides fundamental types and utilities shared by the simulation
// and its front-ends. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned bounding box in arena space.
// X and Y are the top-left corner; y grows downward.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround returns the square box of half-size r centred on (cx, cy).
func RectAround(cx, cy, r float64) Rect {
	return Rect{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether the two rectangles overlap.
// Touching edges count as an overlap so a ball resting on a brick face registers.
func (r Rect) Intersects(other Rect) bool {
	if r.X > other.Right() || other.X > r.Right() {
		return false
	}
	if r.Y > other.Bottom() || other.Y > r.Bottom() {
		return false
	}
	return true
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Axis names one of the two arena axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// MinOverlapAxis returns the axis along which r penetrates other the least,
// together with that penetration depth. The four candidate depths are measured
// from each face of other; ties resolve to the vertical axis.
func (r Rect) MinOverlapAxis(other Rect) (Axis, float64) {
	fromLeft := r.Right() - other.X
	fromRight := other.Right() - r.X
	fromTop := r.Bottom() - other.Y
	fromBottom := other.Bottom() - r.Y

	horiz := math.Min(fromLeft, fromRight)
	vert := math.Min(fromTop, fromBottom)
	if horiz < vert {
		return AxisX, horiz
	}
	return AxisY, vert
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
