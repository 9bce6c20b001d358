package vmath

import "math"

// Vec2 is a float64 map-space vector
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Perp returns v rotated a quarter turn clockwise in map space
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Angle returns the heading of v in the same convention as Heading
func (v Vec2) Angle() float64 { return math.Atan2(v.X, v.Y) }

// Within reports whether o lies inside the closed axis-aligned square of half-size tol around v
func (v Vec2) Within(o Vec2, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol
}
