package fold

import (
	"fmt"
	"math"
)

// Line is an infinite line in normal form: the set of points p for which
// U·p = D. U must have unit length.
//
// (U, D) and (−U, −D) describe the same line. The representation isn't
// normalized automatically; use [Line.Equivalent] to compare lines and
// [Line.Canonical] to pick a representative.
type Line struct {
	// The line's unit normal.
	U Vec2
	// The line's signed distance from the origin along U.
	D float64
}

// LineThrough returns the line through origin running along direction. The
// normal is direction rotated anti-clockwise, flipped if necessary so that D
// is non-negative.
func LineThrough(origin, direction Vec2) Line {
	u := direction.Normalize().Rotate90()
	d := origin.Dot(u)
	if d < 0 {
		return Line{U: u.Negate(), D: -d}
	}
	return Line{U: u, D: d}
}

// LineFromPoints returns the line through a and b.
func LineFromPoints(a, b Vec2) Line {
	return LineThrough(a, b.Sub(a))
}

func (l Line) String() string {
	return fmt.Sprintf("Line{u: %s, d: %g}", l.U, l.D)
}

// Origin returns the point of the line closest to the coordinate origin.
func (l Line) Origin() Vec2 {
	return l.U.Mul(l.D)
}

// Direction returns the unit vector along the line, the normal rotated
// anti-clockwise.
func (l Line) Direction() Vec2 {
	return l.U.Rotate90()
}

// SignedDistance returns the distance of p from the line, positive on the
// side U points to.
func (l Line) SignedDistance(p Vec2) float64 {
	return l.U.Dot(p) - l.D
}

// IsUnit reports whether the line's normal has unit length.
func (l Line) IsUnit() bool {
	return math.Abs(l.U.Hypot2()-1) < DegenerateEpsilon
}

func (l Line) IsInf() bool {
	return l.U.IsInf() || math.IsInf(l.D, 0)
}

func (l Line) IsNaN() bool {
	return l.U.IsNaN() || math.IsNaN(l.D)
}

// Intersect computes the point where the two lines cross.
//
// It reports false when the lines are parallel, which includes coincident
// lines.
func (l Line) Intersect(o Line) (Vec2, bool) {
	det := l.U.Cross(o.U)
	if math.Abs(det) < ParallelEpsilon {
		return Vec2{}, false
	}
	x := l.D*o.U.Y - o.D*l.U.Y
	y := o.D*l.U.X - l.D*o.U.X
	return Vec2{X: x / det, Y: y / det}, true
}

// Equivalent reports whether l and o describe the same line, accounting for
// normals that point in opposite directions.
func (l Line) Equivalent(o Line) bool {
	// Scaling o.D by the normals' dot product makes (u, d) and (−u, −d)
	// compare equal.
	return math.Abs(l.U.Dot(o.U.Rotate90())) < ParallelEpsilon &&
		math.Abs(l.D-o.D*l.U.Dot(o.U)) < Epsilon
}

// Canonical returns the representation of l whose offset is positive. Lines
// through the origin are oriented so that their normal has a positive x, or
// a positive y if x is zero.
//
// Equivalent lines have canonical forms that are equal within [Epsilon].
func (l Line) Canonical() Line {
	var flip bool
	switch {
	case math.Abs(l.D) >= Epsilon:
		flip = l.D < 0
	case math.Abs(l.U.X) >= Epsilon:
		flip = l.U.X < 0
	default:
		flip = l.U.Y < 0
	}
	if flip {
		return Line{U: l.U.Negate(), D: -l.D}
	}
	return l
}

// ReflectVec mirrors p across the line.
func (l Line) ReflectVec(p Vec2) Vec2 {
	dir := l.Direction()
	// Project p onto the line, then step the same distance past it.
	proj := l.Origin().Add(dir.Mul(p.Dot(dir)))
	return proj.Add(proj.Sub(p))
}

// ReflectSegment mirrors both endpoints of s across the line.
func (l Line) ReflectSegment(s Segment) Segment {
	return Segment{
		A: l.ReflectVec(s.A),
		B: l.ReflectVec(s.B),
	}
}

// Reflection returns the affine transformation that mirrors the plane across
// the line. It agrees with [Line.ReflectVec].
func (l Line) Reflection() Affine {
	// p ↦ p − 2(U·p − D)U
	ux, uy := l.U.X, l.U.Y
	return Affine{
		1 - 2*ux*ux,
		-2 * ux * uy,
		-2 * ux * uy,
		1 - 2*uy*uy,
		2 * l.D * ux,
		2 * l.D * uy,
	}
}

// Clip returns the part of the line inside the boundary. See [Boundary.Clip].
func (l Line) Clip(bd Boundary) (Segment, bool) {
	return bd.Clip(l)
}

// Transform applies the affine transformation to the line. The result's
// normal has unit length; its orientation follows the transformed
// direction.
func (l Line) Transform(aff Affine) Line {
	p0 := l.Origin()
	p1 := p0.Add(l.Direction())
	q0 := p0.Transform(aff)
	q1 := p1.Transform(aff)
	u := q1.Sub(q0).Rotate270().Normalize()
	return Line{U: u, D: u.Dot(q0)}
}
