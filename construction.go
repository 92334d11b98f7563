package fold

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
)

// Construction describes one invocation of an axiom: the axiom's number and
// its inputs.
//
// Points and lines are passed to the axiom in order. For the axioms that take
// points before lines, Points holds the points and Lines the lines; for
// example, axiom 5 takes Points[0] as the point the fold passes through,
// Points[1] as the point that moves, and Lines[0] as its target.
type Construction struct {
	Axiom  int
	Points []Vec2
	Lines  []Line
}

// arity lists the number of points and lines each axiom takes.
var arity = [8]struct{ points, lines int }{
	1: {2, 0},
	2: {2, 0},
	3: {0, 2},
	4: {1, 1},
	5: {2, 1},
	6: {2, 2},
	7: {1, 2},
}

// Validate checks that the construction names an axiom, has the inputs that
// axiom takes, and that every input is finite and every line normal has
// unit length.
func (c Construction) Validate() error {
	if c.Axiom < 1 || c.Axiom >= len(arity) {
		return errors.Wrapf(ErrUnknownAxiom, "axiom %d", c.Axiom)
	}
	want := arity[c.Axiom]
	if len(c.Points) != want.points || len(c.Lines) != want.lines {
		return errors.Wrapf(ErrArity, "axiom %d takes %d points and %d lines, got %d and %d",
			c.Axiom, want.points, want.lines, len(c.Points), len(c.Lines))
	}
	for i, p := range c.Points {
		if p.IsNaN() || p.IsInf() {
			return errors.Wrapf(ErrNonFinite, "point %d", i)
		}
	}
	for i, l := range c.Lines {
		if l.IsNaN() || l.IsInf() {
			return errors.Wrapf(ErrNonFinite, "line %d", i)
		}
		if !l.IsUnit() {
			return errors.Wrapf(ErrNotUnit, "line %d has normal %s", i, l.U)
		}
	}
	return nil
}

// Folds returns the candidate folds of the construction's axiom. The
// construction must be valid; invalid constructions produce no folds.
func (c Construction) Folds(bd Boundary) iter.Seq[Line] {
	if c.Validate() != nil {
		return func(func(Line) bool) {}
	}
	p, l := c.Points, c.Lines
	switch c.Axiom {
	case 1:
		return Axiom1(p[0], p[1], bd)
	case 2:
		return Axiom2(p[0], p[1], bd)
	case 3:
		return Axiom3(l[0], l[1], bd)
	case 4:
		return Axiom4(p[0], l[0], bd)
	case 5:
		return Axiom5(p[0], p[1], l[0], bd)
	case 6:
		return Axiom6(p[0], p[1], l[0], l[1], bd)
	case 7:
		return Axiom7(p[0], l[0], l[1], bd)
	default:
		panic("unreachable")
	}
}

// Solve validates the construction and collects its folds.
//
// Axiom 3 presupposes that both input lines are creases on the paper. Solve
// reports inputs that miss the paper as [ErrInputOutsideBoundary] rather than
// as a construction without folds.
func (c Construction) Solve(bd Boundary) ([]Line, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Axiom == 3 {
		for i, l := range c.Lines {
			if _, ok := bd.Clip(l); !ok {
				return nil, errors.Wrapf(ErrInputOutsideBoundary, "line %d %s", i, l)
			}
		}
	}
	lines := slices.Collect(c.Folds(bd))
	Logger().Debug("solved construction", "axiom", c.Axiom, "folds", len(lines))
	return lines, nil
}
