package fold

import (
	"iter"
	"math"
)

// folds collects the candidates an axiom derived, in derivation order.
type folds struct {
	lines [2]Line
	n     int
}

// add records a candidate. An axiom reports at most two folds; later
// candidates are dropped.
func (f *folds) add(l Line) {
	if f.n < len(f.lines) {
		f.lines[f.n] = l
		f.n++
	}
}

// lazy turns an axiom's construction into a sequence that runs the
// construction each time it is iterated.
func lazy(construct func(f *folds)) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		var f folds
		construct(&f)
		for _, l := range f.lines[:f.n] {
			if !yield(l) {
				return
			}
		}
	}
}

// Axiom1 returns the fold that passes through the points a and b.
//
// Both points must lie on the paper and must not coincide.
func Axiom1(a, b Vec2, bd Boundary) iter.Seq[Line] {
	return lazy(func(f *folds) {
		if !bd.Contains(a) || !bd.Contains(b) || b.Sub(a).IsDegenerate() {
			return
		}
		u := b.Sub(a).Rotate90().Normalize()
		f.add(Line{U: u, D: a.Add(b).Dot(u) / 2})
	})
}

// Axiom2 returns the fold that places the point a onto the point b, the
// perpendicular bisector of the two.
//
// Both points must lie on the paper and must not coincide.
func Axiom2(a, b Vec2, bd Boundary) iter.Seq[Line] {
	return lazy(func(f *folds) {
		if !bd.Contains(a) || !bd.Contains(b) || b.Sub(a).IsDegenerate() {
			return
		}
		u := b.Sub(a).Normalize()
		f.add(Line{U: u, D: a.Add(b).Dot(u) / 2})
	})
}

// Axiom3 returns the folds that place the line a onto the line b.
//
// Parallel lines have a single fold halfway between them. Otherwise each of
// the two angle bisectors is a candidate; it must cross the paper, and it
// must carry the part of a that is on the paper onto the part of b that is
// on the paper.
//
// Both lines are expected to cross the paper. If either doesn't, a warning is
// logged and no folds are produced; [Construction.Solve] reports this case as
// [ErrInputOutsideBoundary].
func Axiom3(a, b Line, bd Boundary) iter.Seq[Line] {
	return lazy(func(f *folds) {
		segA, okA := bd.Clip(a)
		segB, okB := bd.Clip(b)
		if !okA || !okB {
			Logger().Warn("axiom 3 input line does not cross the paper",
				"a", a, "b", b, "aCrosses", okA, "bCrosses", okB)
			return
		}
		x, ok := a.Intersect(b)
		if !ok {
			// The midline of two lines that cross a convex region crosses it
			// too, so there is nothing left to check.
			f.add(Line{U: a.U, D: (a.D + b.D*a.U.Dot(b.U)) / 2})
			return
		}
		bisectors := [2]Vec2{
			a.U.Add(b.U).Normalize(),
			a.U.Sub(b.U).Normalize(),
		}
		for _, u := range bisectors {
			l := Line{U: u, D: x.Dot(u)}
			if _, ok := bd.Clip(l); !ok {
				continue
			}
			if l.ReflectSegment(segA).QuickOverlap(segB) {
				f.add(l)
			}
		}
	})
}

// Axiom4 returns the fold through the point p that is perpendicular to the
// line l, folding l onto itself.
//
// The fold must cross the paper, and so must l where the fold meets it.
func Axiom4(p Vec2, l Line, bd Boundary) iter.Seq[Line] {
	return lazy(func(f *folds) {
		u := l.U.Rotate90()
		fold := Line{U: u, D: p.Dot(u)}
		foot := p.Add(l.U.Mul(l.D - p.Dot(l.U)))
		if !bd.Contains(foot) {
			return
		}
		if _, ok := bd.Clip(fold); !ok {
			return
		}
		f.add(fold)
	})
}

// Axiom5 returns the folds through the point p1 that place the point p2
// onto the line l.
//
// Such a fold maps p2 to a point of l at the same distance from p1. There
// are two of them, one, or none, depending on whether the circle about p1
// through p2 crosses l, touches it, or misses it. Each image of p2 must lie
// on the paper.
func Axiom5(p1, p2 Vec2, l Line, bd Boundary) iter.Seq[Line] {
	return lazy(func(f *folds) {
		// Right triangle: a is the leg from p1 to l, c the hypotenuse.
		a := l.D - p1.Dot(l.U)
		c := p1.Distance(p2)
		if math.Abs(a) > c {
			return
		}
		b := math.Sqrt(c*c - a*a)
		foot := p1.Add(l.U.Mul(a))
		along := l.Direction().Mul(b)

		mirrors := [2]Vec2{foot}
		n := 1
		if b >= DegenerateEpsilon {
			mirrors = [2]Vec2{foot.Add(along), foot.Sub(along)}
			n = 2
		}
		for _, m := range mirrors[:n] {
			if !bd.Contains(m) {
				continue
			}
			v := p2.Sub(m)
			if v.IsDegenerate() {
				// p2 is already on l; no fold moves it there.
				continue
			}
			u := v.Normalize()
			f.add(Line{U: u, D: p1.Dot(u)})
		}
	})
}

// Axiom7 returns the fold perpendicular to the line l1 that places the point
// p onto the line l2.
//
// There is no such fold if l1 and l2 are parallel. The image of p and the
// point where the fold meets l1 must both lie on the paper, and must not
// coincide.
func Axiom7(p Vec2, l1, l2 Line, bd Boundary) iter.Seq[Line] {
	return lazy(func(f *folds) {
		u := l1.U.Rotate90()
		uu := u.Dot(l2.U)
		if math.Abs(uu) < ParallelEpsilon {
			return
		}
		// Reflecting p across U·x = D moves it by 2(D − U·p)U; solve for
		// the D that lands it on l2.
		a := p.Dot(u)
		b := p.Dot(l2.U)
		fold := Line{U: u, D: (l2.D + 2*a*uu - b) / (2 * uu)}

		x, ok := fold.Intersect(l1)
		m := fold.ReflectVec(p)
		if !ok || !bd.Contains(m) || !bd.Contains(x) || m.Equivalent(x) {
			return
		}
		f.add(fold)
	})
}
