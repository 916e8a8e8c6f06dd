// pkg/utils/vec.go
package utils

import "math"

// Vec2 is a 2D vector in world pixels.
type Vec2 struct{ X, Y float64 }

// Down is the default facing when an entity has no direction of its own.
var Down = Vec2{X: 0, Y: 1}

func (v Vec2) Add(o Vec2) Vec2     { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2     { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float64) Vec2  { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64  { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec2) IsZero() bool        { return v.X == 0 && v.Y == 0 }
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }
func (v Vec2) Scale(o Vec2) Vec2   { return Vec2{v.X * o.X, v.Y * o.Y} }

// Norm returns the unit vector, or the zero vector when v has no length.
func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// NormOr normalizes v and falls back to def for the zero vector.
func (v Vec2) NormOr(def Vec2) Vec2 {
	if v.IsZero() {
		return def
	}
	return v.Norm()
}
