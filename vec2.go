package fold

import (
	"fmt"
	"math"
)

// Vec2 is a two-dimensional vector. It is used both for points on the paper
// and for directions and normals; which one is meant follows from context.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the signed determinant of the matrix whose rows are v and o.
// It is positive when o lies anti-clockwise of v.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// VecFromAngle returns the unit vector at th radians anti-clockwise from
// ⟨1, 0⟩. It is a convenient way to write line normals.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{
		X: x,
		Y: y,
	}
}

// Lerp returns v + t(o − v).
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same angle as v.
//
// Vectors shorter than [DegenerateEpsilon] are divided by one instead of
// their magnitude, so the zero vector normalizes to itself rather than to
// NaN.
func (v Vec2) Normalize() Vec2 {
	m := v.Hypot()
	if m < DegenerateEpsilon {
		m = 1
	}
	return v.Div(m)
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec2) Div(f float64) Vec2 {
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}

// Rotate90 rotates the vector a quarter turn anti-clockwise, mapping (x, y)
// to (−y, x).
func (v Vec2) Rotate90() Vec2 {
	return Vec2{
		X: -v.Y,
		Y: v.X,
	}
}

// Rotate270 rotates the vector a quarter turn clockwise, mapping (x, y) to
// (y, −x).
func (v Vec2) Rotate270() Vec2 {
	return Vec2{
		X: v.Y,
		Y: -v.X,
	}
}

// Midpoint returns the midpoint of two points.
func (v Vec2) Midpoint(o Vec2) Vec2 {
	return Vec2{
		X: (v.X + o.X) / 2,
		Y: (v.Y + o.Y) / 2,
	}
}

// Distance returns the euclidean distance between two points.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Hypot()
}

// IsDegenerate reports whether the vector is too short to have a direction.
func (v Vec2) IsDegenerate() bool {
	return math.Abs(v.X)+math.Abs(v.Y) < DegenerateEpsilon
}

// Equivalent reports whether both coordinates of v and o differ by less
// than [Epsilon].
func (v Vec2) Equivalent(o Vec2) bool {
	return math.Abs(v.X-o.X) < Epsilon && math.Abs(v.Y-o.Y) < Epsilon
}

// Parallel reports whether v and o point in the same or in opposite
// directions.
func (v Vec2) Parallel(o Vec2) bool {
	return 1-math.Abs(v.Normalize().Dot(o.Normalize())) < ParallelEpsilon
}

// Transform applies the affine transformation to the vector, treating it as
// a point.
func (v Vec2) Transform(aff Affine) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y + aff.N4,
		Y: aff.N1*v.X + aff.N3*v.Y + aff.N5,
	}
}
