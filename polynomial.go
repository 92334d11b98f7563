package fold

import "math"

// PolynomialDegree classifies a·x³ + b·x² + c·x + d by its highest
// coefficient whose magnitude exceeds [DegenerateEpsilon]. It returns 0 if
// only d remains.
//
// Demoting near-zero leading coefficients keeps [SolvePolynomial] from
// dividing by them.
func PolynomialDegree(a, b, c, d float64) int {
	switch {
	case math.Abs(a) > DegenerateEpsilon:
		return 3
	case math.Abs(b) > DegenerateEpsilon:
		return 2
	case math.Abs(c) > DegenerateEpsilon:
		return 1
	default:
		return 0
	}
}

// SolvePolynomial finds the real roots of a·x³ + b·x² + c·x + d = 0, treated
// as a polynomial of the given degree. Coefficients above the degree are
// ignored, so degree 1 only uses c and d.
//
// Quadratics report a single root when the discriminant is within
// [DegenerateEpsilon] of zero, and none when it is more negative than that.
// Cubics are solved in closed form with Cardano's method, using the
// trigonometric form when there are three real roots.
//
// When a cubic's discriminant is within [DegenerateEpsilon] of zero, it has a
// repeated root. If the depressed cubic's r term is negative in that case,
// no roots are reported at all. This follows Robert Lang's ReferenceFinder,
// which avoids taking the cube root of a negative number there, and it
// determines which constructions [Axiom6] considers possible.
//
// The second return value states how many roots were found. Degrees other
// than 1, 2 and 3 have no roots.
func SolvePolynomial(degree int, a, b, c, d float64) ([3]float64, int) {
	switch degree {
	case 1:
		return [3]float64{-d / c}, 1
	case 2:
		return solveQuadratic(b, c, d)
	case 3:
		return solveCubic(a, b, c, d)
	default:
		return [3]float64{}, 0
	}
}

// solveQuadratic solves a·x² + b·x + c = 0.
func solveQuadratic(a, b, c float64) ([3]float64, int) {
	disc := b*b - 4*a*c
	if disc < -DegenerateEpsilon {
		return [3]float64{}, 0
	}
	q1 := -b / (2 * a)
	if disc < DegenerateEpsilon {
		return [3]float64{q1}, 1
	}
	q2 := math.Sqrt(disc) / (2 * a)
	return [3]float64{q1 + q2, q1 - q2}, 2
}

// solveCubic solves a·x³ + b·x² + c·x + d = 0.
func solveCubic(a, b, c, d float64) ([3]float64, int) {
	a2 := b / a
	a1 := c / a
	a0 := d / a
	// Substituting x = t − a2/3 gives the depressed cubic t³ + 3q·t − 2r = 0.
	q := (3*a1 - a2*a2) / 9
	r := (9*a2*a1 - 27*a0 - 2*a2*a2*a2) / 54
	disc := q*q*q + r*r
	shift := -a2 / 3

	if disc > 0 {
		sq := math.Sqrt(disc)
		s := math.Cbrt(r + sq)
		t := math.Cbrt(r - sq)
		return [3]float64{shift + s + t}, 1
	}
	if math.Abs(disc) < DegenerateEpsilon {
		if r < 0 {
			return [3]float64{}, 0
		}
		s := math.Cbrt(r)
		return [3]float64{shift + 2*s, shift - s}, 2
	}

	// Three real roots. r ± i·√−disc has modulus (r² − disc)^½, so its cube
	// roots have modulus (r² − disc)^⅙ and a third of its argument.
	phi := math.Atan2(math.Sqrt(-disc), r) / 3
	mod := math.Pow(r*r-disc, 1.0/6.0)
	sin, cos := math.Sincos(phi)
	re := mod * cos
	im := mod * sin
	return [3]float64{
		shift + 2*re,
		shift - re - math.Sqrt(3)*im,
		shift - re + math.Sqrt(3)*im,
	}, 3
}
