package paper

import (
	"fmt"
	"math"
)

// Vec2 is a point of the plane. It doubles as a complex number x+iy, which is
// how rotations and reflections are expressed.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v−o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// RotateScale returns the complex product v·o, which rotates v by the angle of
// o and scales it by the magnitude of o.
func (v Vec2) RotateScale(o Vec2) Vec2 {
	return Vec2{
		X: v.X*o.X - v.Y*o.Y,
		Y: v.X*o.Y + v.Y*o.X,
	}
}

// Div returns the complex quotient v/o.
func (v Vec2) Div(o Vec2) (Vec2, error) {
	den := o.X*o.X + o.Y*o.Y
	if den == 0 {
		return Vec2{}, ErrDivisionByZero
	}
	return Vec2{
		X: (o.X*v.X + o.Y*v.Y) / den,
		Y: (o.X*v.Y - o.Y*v.X) / den,
	}, nil
}

// Conj returns the complex conjugate of v, its mirror image across the x axis.
func (v Vec2) Conj() Vec2 {
	return Vec2{X: v.X, Y: -v.Y}
}

// MirrorH mirrors v across the vertical line x = 0.5, the middle of the sheet.
func (v Vec2) MirrorH() Vec2 {
	return Vec2{X: 1 - v.X, Y: v.Y}
}

// Cross returns the z component of the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Lerp linearly interpolates between v and o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return v.Add(o.Sub(v).Scale(t))
}

// Hypot returns the magnitude of v.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}
