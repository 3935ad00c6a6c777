package knobs

import "github.com/chewxy/math32"

// Vec2 is a 2D point or displacement vector.
// The widget layer works in float32 throughout, so Vec2 is the float32
// counterpart of gg's Point; Canvas widens to float64 at the gg boundary.
type Vec2 struct {
	X, Y float32
}

// V is a convenience constructor for Vec2.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Angled returns the unit vector pointing at the given angle in radians.
func Angled(theta float32) Vec2 {
	return Vec2{X: math32.Cos(theta), Y: math32.Sin(theta)}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the length of the vector.
func (v Vec2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Angle returns the direction of the vector in radians.
func (v Vec2) Angle() float32 {
	return math32.Atan2(v.Y, v.X)
}

// Rotate returns the vector rotated by angle radians around the origin.
func (v Vec2) Rotate(angle float32) Vec2 {
	sin, cos := math32.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}
