package fold

import (
	"iter"
	"math"
)

// Affine is a 2×3 affine transformation. The coefficients (N0, …, N5) form
// the matrix
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	|  0  0  1 |
//
// applied to column vectors, so a.Mul(b) applies b first.
//
// Transformations map paper coordinates elsewhere: onto rectangular paper,
// into image space for rendering, or across a fold.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity leaves every point where it is.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY mirrors the plane across the x-axis. It converts between the y-up
// space of the paper and the y-down space of images.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Scale scales x and y independently about the origin.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate rotates the plane anti-clockwise by th radians about the origin.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout rotates the plane anti-clockwise by th radians about center.
func RotateAbout(th float64, center Vec2) Affine {
	return Translate(center.Negate()).Then(Rotate(th)).ThenTranslate(center)
}

// Mul returns the transformation that applies o, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Then returns the transformation that applies aff, then o.
func (aff Affine) Then(o Affine) Affine {
	return o.Mul(aff)
}

// ThenScale is shorthand for aff.Then(Scale(x, y)).
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate is shorthand for aff.Then(Translate(v)).
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// MapUnitSquare returns the transformation that takes the unit square onto
// rect, keeping the corner (0, 0) at (X0, Y0).
func MapUnitSquare(rect Rect) Affine {
	return Affine{rect.Width(), 0, 0, rect.Height(), rect.X0, rect.Y0}
}

// Determinant returns the determinant of the linear part. It is negative
// for transformations that mirror the plane and zero for ones that collapse
// it.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Transform lazily applies aff to every value of seq. It works with the
// sequences returned by the axioms as well as with sequences of points and
// segments.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
