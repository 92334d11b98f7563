package fold

import (
	"iter"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

const sqrtHalf = math.Sqrt2 / 2

func collect(t *testing.T, seq iter.Seq[Line], n int) []Line {
	t.Helper()
	lines := slices.Collect(seq)
	if len(lines) != n {
		t.Fatalf("got %d lines %v, expected %d", len(lines), lines, n)
	}
	return lines
}

func assertOnLine(t *testing.T, p Vec2, l Line) {
	t.Helper()
	if d := l.SignedDistance(p); math.Abs(d) > 1e-9 {
		t.Errorf("%s is %g away from %s", p, d, l)
	}
}

func TestAxiom1(t *testing.T) {
	a, b := Vec(0, 0), Vec(0.5, 0.75)
	lines := collect(t, Axiom1(a, b, UnitSquare()), 1)
	l := lines[0]
	if !l.IsUnit() {
		t.Errorf("%s doesn't have a unit normal", l)
	}
	// a and b project to the same offset.
	if da, db := a.Dot(l.U), b.Dot(l.U); math.Abs(da-db) > 1e-12 {
		t.Errorf("a and b project to %g and %g", da, db)
	}
	assertOnLine(t, a, l)
	assertOnLine(t, b, l)

	collect(t, Axiom1(Vec(1.01, 0), b, UnitSquare()), 0)
	collect(t, Axiom1(a, Vec(0.5, -0.5), UnitSquare()), 0)
	collect(t, Axiom1(b, b, UnitSquare()), 0)
}

func TestAxiom2(t *testing.T) {
	a, b := Vec(0.25, 0.25), Vec(0.75, 0.75)
	lines := collect(t, Axiom2(a, b, UnitSquare()), 1)
	diff(t, Line{U: Vec(sqrtHalf, sqrtHalf), D: sqrtHalf}, lines[0], cmpopts.EquateApprox(0, 1e-12))
	assertNear(t, lines[0].ReflectVec(a), b, 1e-12)

	collect(t, Axiom2(a, Vec(1.5, 0.5), UnitSquare()), 0)
	collect(t, Axiom2(a, a, UnitSquare()), 0)
}

func TestAxiom3Parallel(t *testing.T) {
	lines := collect(t, Axiom3(Line{U: Vec(0, 1), D: 1}, Line{U: Vec(0, 1), D: 0.5}, UnitSquare()), 1)
	diff(t, Line{U: Vec(0, 1), D: 0.75}, lines[0], cmpopts.EquateApprox(0, 1e-12))

	// Opposing normals describe the same lines.
	lines = collect(t, Axiom3(Line{U: Vec(0, -1), D: -1}, Line{U: Vec(0, 1), D: 0.5}, UnitSquare()), 1)
	assertEquivalent(t, lines[0], Line{U: Vec(0, 1), D: 0.75})
}

func TestAxiom3Edges(t *testing.T) {
	// The right and top edges meet in a corner; only the diagonal through
	// that corner stays on the paper.
	a := Line{U: Vec(1, 0), D: 1}
	b := Line{U: Vec(0, 1), D: 1}
	lines := collect(t, Axiom3(a, b, UnitSquare()), 1)
	diff(t, Line{U: Vec(sqrtHalf, -sqrtHalf), D: 0}, lines[0], cmpopts.EquateApprox(0, 1e-12))
	if u := a.U.Sub(b.U).Normalize(); !u.Equivalent(lines[0].U) {
		t.Errorf("got normal %s, expected %s", lines[0].U, u)
	}
}

func TestAxiom3Crossing(t *testing.T) {
	a := Line{U: Vec(1, 0), D: 0.5}
	b := Line{U: Vec(0, 1), D: 0.5}
	lines := collect(t, Axiom3(a, b, UnitSquare()), 2)
	want := []Line{
		{U: Vec(sqrtHalf, sqrtHalf), D: sqrtHalf},
		{U: Vec(sqrtHalf, -sqrtHalf), D: 0},
	}
	diff(t, want, lines, cmpopts.EquateApprox(0, 1e-12))

	for _, l := range lines {
		segA, _ := UnitSquare().Clip(a)
		segB, _ := UnitSquare().Clip(b)
		assertSegmentNear(t, l.ReflectSegment(segA), segB, 1e-12)
	}
}

func TestAxiom3OffPaper(t *testing.T) {
	collect(t, Axiom3(Line{U: Vec(0, 1), D: 2}, Line{U: Vec(1, 0), D: 0.5}, UnitSquare()), 0)
}

func TestAxiom4(t *testing.T) {
	p := Vec(0.5, 0.5)
	l := Line{U: Vec(0, 1), D: 0.25}
	lines := collect(t, Axiom4(p, l, UnitSquare()), 1)
	diff(t, Line{U: Vec(-1, 0), D: -0.5}, lines[0])
	assertOnLine(t, p, lines[0])
	if d := lines[0].U.Dot(l.U); math.Abs(d) > 1e-12 {
		t.Errorf("fold %s isn't perpendicular to %s", lines[0], l)
	}

	// The fold would meet l off the paper.
	collect(t, Axiom4(p, Line{U: Vec(0, 1), D: 1.5}, UnitSquare()), 0)
}

func TestAxiom5(t *testing.T) {
	p1 := Vec(0.1, 0)
	p2 := Vec(0.9, 0.1)
	l := LineThrough(Vec(0, 0), Vec(1, 1))
	lines := collect(t, Axiom5(p1, p2, l, UnitSquare()), 1)
	want := Line{U: Vec(0.47835970999783817, -0.8781639868787516), D: 0.04783597099978382}
	diff(t, want, lines[0], cmpopts.EquateApprox(0, 1e-12))
	assertOnLine(t, p1, lines[0])
	assertOnLine(t, lines[0].ReflectVec(p2), l)
}

func TestAxiom5TwoFolds(t *testing.T) {
	p1 := Vec(0.5, 0.5)
	p2 := Vec(0.5, 1)
	l := Line{U: Vec(0, 1), D: 0.2}
	lines := collect(t, Axiom5(p1, p2, l, UnitSquare()), 2)
	images := make([]Vec2, len(lines))
	for i, fold := range lines {
		assertOnLine(t, p1, fold)
		images[i] = fold.ReflectVec(p2)
		assertOnLine(t, images[i], l)
	}
	slices.SortFunc(images, func(a, b Vec2) int {
		if a.X < b.X {
			return -1
		}
		return 1
	})
	diff(t, []Vec2{Vec(0.1, 0.2), Vec(0.9, 0.2)}, images, cmpopts.EquateApprox(0, 1e-12))
}

func TestAxiom5Tangent(t *testing.T) {
	lines := collect(t, Axiom5(Vec(0.5, 0.25), Vec(0.5, 0.5), Line{U: Vec(0, 1), D: 0}, UnitSquare()), 1)
	diff(t, Line{U: Vec(0, 1), D: 0.25}, lines[0])
}

func TestAxiom5Unreachable(t *testing.T) {
	// The circle about p1 through p2 doesn't reach l.
	collect(t, Axiom5(Vec(0.5, 0.5), Vec(0.5, 0.6), Line{U: Vec(0, 1), D: 0}, UnitSquare()), 0)
	// Both images of p2 are off the paper.
	collect(t, Axiom5(Vec(0.5, 0.5), Vec(0.5, 1), Line{U: Vec(1, 0), D: 1.05}, UnitSquare()), 0)
}

func TestAxiom6(t *testing.T) {
	p1 := Vec(0.63, 0.07)
	p2 := Vec(0.01, 0.84)
	l1 := Line{U: Vec(1, 0), D: 0.9}
	l2 := Line{U: Vec(0, 1), D: 0.9}
	lines := collect(t, Axiom6(p1, p2, l1, l2, UnitSquare()), 1)
	want := Line{U: Vec(0.664927477168039, 0.7469079261240618), D: 0.6742175260249359}
	diff(t, want, lines[0], cmpopts.EquateApprox(0, 1e-9))
	assertOnLine(t, lines[0].ReflectVec(p1), l1)
	assertOnLine(t, lines[0].ReflectVec(p2), l2)
}

func TestAxiom6TwoFolds(t *testing.T) {
	p1 := Vec(0.43, 0.95)
	p2 := Vec(0.93, 0.22)
	l1 := Line{U: Vec(1, 0), D: 0.9}
	l2 := Line{U: Vec(0, 1), D: 0.9}
	lines := collect(t, Axiom6(p1, p2, l1, l2, UnitSquare()), 2)
	for _, fold := range lines {
		m1 := fold.ReflectVec(p1)
		m2 := fold.ReflectVec(p2)
		assertOnLine(t, m1, l1)
		assertOnLine(t, m2, l2)
		if !UnitSquare().Contains(m1) || !UnitSquare().Contains(m2) {
			t.Errorf("fold %s moves the points to %s and %s, off the paper", fold, m1, m2)
		}
	}
	if lines[0].Equivalent(lines[1]) {
		t.Errorf("got the same fold twice: %s", lines[0])
	}
}

func TestAxiom6PointOnLine(t *testing.T) {
	l1 := Line{U: Vec(1, 0), D: 1}
	l2 := Line{U: Vec(0, 1), D: 1}
	collect(t, Axiom6(Vec(1, 0.5), Vec(0, 0.75), l1, l2, UnitSquare()), 0)
	collect(t, Axiom6(Vec(0.99, 0.5), Vec(0, 0.75), l1, l2, UnitSquare()), 0)
}

func TestAxiom7(t *testing.T) {
	p := Vec(0.25, 0.25)
	l1 := Line{U: Vec(0, 1), D: 0.5}
	l2 := Line{U: Vec(1, 0), D: 0.75}
	lines := collect(t, Axiom7(p, l1, l2, UnitSquare()), 1)
	diff(t, Line{U: Vec(-1, 0), D: -0.5}, lines[0])
	assertOnLine(t, lines[0].ReflectVec(p), l2)
	if d := lines[0].U.Dot(l1.U); math.Abs(d) > 1e-12 {
		t.Errorf("fold %s isn't perpendicular to %s", lines[0], l1)
	}
}

func TestAxiom7Parallel(t *testing.T) {
	p := Vec(0.25, 0.25)
	l1 := Line{U: Vec(0, 1), D: 0.5}
	l2 := Line{U: Vec(0, 1), D: 0.75}
	collect(t, Axiom7(p, l1, l2, UnitSquare()), 0)
}

func TestAxiom7OffPaper(t *testing.T) {
	// p would land on l2 at x = 1.75.
	p := Vec(0.25, 0.25)
	l1 := Line{U: Vec(0, 1), D: 0.5}
	l2 := Line{U: Vec(1, 0), D: 1.75}
	collect(t, Axiom7(p, l1, l2, UnitSquare()), 0)
}

func TestAxiomsIdempotent(t *testing.T) {
	bd := UnitSquare()
	seqs := map[string]iter.Seq[Line]{
		"1": Axiom1(Vec(0, 0), Vec(0.5, 0.75), bd),
		"2": Axiom2(Vec(0.1, 0.2), Vec(0.7, 0.4), bd),
		"3": Axiom3(Line{U: Vec(1, 0), D: 0.5}, Line{U: Vec(0, 1), D: 0.5}, bd),
		"4": Axiom4(Vec(0.5, 0.5), Line{U: Vec(0, 1), D: 0.25}, bd),
		"5": Axiom5(Vec(0.5, 0.5), Vec(0.5, 1), Line{U: Vec(0, 1), D: 0.2}, bd),
		"6": Axiom6(Vec(0.43, 0.95), Vec(0.93, 0.22), Line{U: Vec(1, 0), D: 0.9}, Line{U: Vec(0, 1), D: 0.9}, bd),
		"7": Axiom7(Vec(0.25, 0.25), Line{U: Vec(0, 1), D: 0.5}, Line{U: Vec(1, 0), D: 0.75}, bd),
	}
	for name, seq := range seqs {
		first := slices.Collect(seq)
		second := slices.Collect(seq)
		if len(first) == 0 {
			t.Errorf("axiom %s: expected folds", name)
		}
		diff(t, first, second)
	}
}

func TestAxiomEarlyBreak(t *testing.T) {
	var n int
	for range Axiom3(Line{U: Vec(1, 0), D: 0.5}, Line{U: Vec(0, 1), D: 0.5}, UnitSquare()) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("got %d iterations, expected 1", n)
	}
}

func TestAxiomsOtherPaper(t *testing.T) {
	bd, err := NewRectBoundary(Rect{0, 0, 2, 1})
	if err != nil {
		t.Fatal(err)
	}
	// On the unit square (1.5, 0.5) is off the paper.
	collect(t, Axiom2(Vec(0.5, 0.5), Vec(1.5, 0.5), UnitSquare()), 0)
	lines := collect(t, Axiom2(Vec(0.5, 0.5), Vec(1.5, 0.5), bd), 1)
	diff(t, Line{U: Vec(1, 0), D: 1}, lines[0])
}
