package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector in world pixels
type Vec2F struct {
	X, Y float64
}

func V2F(x, y float64) Vec2F {
	return Vec2F{X: x, Y: y}
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

// V2FDist returns the straight-line distance between two points
func V2FDist(a, b Vec2F) float64 {
	return V2FMag(V2FSub(b, a))
}

func V2FNormalize(v Vec2F) Vec2F {
	mag := V2FMag(v)
	if mag == 0 {
		return Vec2F{}
	}
	inv := 1.0 / mag
	return Vec2F{v.X * inv, v.Y * inv}
}

// V2FStep moves from toward to by dist along the connecting line
// Overshoots when dist exceeds the remaining distance; callers decide whether to clamp
func V2FStep(from, to Vec2F, dist float64) Vec2F {
	dir := V2FNormalize(V2FSub(to, from))
	return V2FAdd(from, V2FScale(dir, dist))
}

// InRect reports whether p lies inside the box at origin with size, edges inclusive
func InRect(p, origin, size Vec2F) bool {
	return p.X >= origin.X && p.X <= origin.X+size.X &&
		p.Y >= origin.Y && p.Y <= origin.Y+size.Y
}
