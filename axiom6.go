package fold

import (
	"iter"
	"math"
)

// Axiom6 returns the folds that simultaneously place the point p1 onto the
// line l1 and the point p2 onto the line l2.
//
// The image of p1 is parametrized as m1 = O + t·v, where O is the point of
// l1 closest to the origin and v runs along l1. The fold is then the
// perpendicular bisector of p1 and m1. Requiring the reflection of p2 across
// it to lie on l2, and clearing the denominator |m1 − p1|², yields a
// polynomial of degree at most three in t. Each real root is a candidate,
// and both images must lie on the paper.
//
// If p1 is within [PointOnLineTolerance] of l1, no folds are produced.
//
// Up to three roots exist, but as with the other axioms at most two folds are
// reported, the first two in root order.
func Axiom6(p1, p2 Vec2, l1, l2 Line, bd Boundary) iter.Seq[Line] {
	return lazy(func(f *folds) {
		if math.Abs(l1.SignedDistance(p1)) < PointOnLineTolerance {
			return
		}
		origin := l1.Origin()
		dir := l1.Direction()

		v1 := p1.Add(origin).Sub(p2.Mul(2))
		v2 := origin.Sub(p1)
		c1 := p2.Dot(l2.U) - l2.D
		c2 := 2 * v2.Dot(dir)
		c3 := v2.Dot(v2)
		c4 := v1.Add(v2).Dot(dir)
		c5 := v1.Dot(v2)
		c6 := dir.Dot(l2.U)
		c7 := v2.Dot(l2.U)

		a := c6
		b := c1 + c4*c6 + c7
		c := c1*c2 + c5*c6 + c4*c7
		d := c1*c3 + c5*c7

		roots, n := SolvePolynomial(PolynomialDegree(a, b, c, d), a, b, c, d)
		for _, t := range roots[:n] {
			m1 := origin.Add(dir.Mul(t))
			u := m1.Sub(p1).Normalize()
			fold := Line{U: u, D: u.Dot(m1.Midpoint(p1))}
			m2 := p2.Add(u.Mul(2 * (fold.D - p2.Dot(u))))
			if bd.Contains(m1) && bd.Contains(m2) {
				f.add(fold)
			}
		}
	})
}
