// Package core provides fundamental types and utilities for the catchball
// engine. It contains no external dependencies (especially no Bubble Tea and
// no websocket types) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or velocity in normalized playfield space.
// Coordinates follow the camera image convention: x grows rightward,
// y grows downward, and the visible area spans [0,1] on both axes.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// EllipticalDist returns the distance between a and b with the vertical
// delta weighted by yScale. A yScale below 1 widens the vertical reach,
// which matches how an open palm catches from above more easily than
// from the sides.
func EllipticalDist(a, b Vec2, yScale float64) float64 {
	dx := a.X - b.X
	dy := (a.Y - b.Y) * yScale
	return math.Sqrt(dx*dx + dy*dy)
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

// Clamp restricts an integer value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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
