package fold

import (
	"math"
	"slices"

	"github.com/pkg/errors"
)

// Boundary is a convex region of paper, described by the lines of its sides
// in order around the region.
//
// The side of each line that faces the interior is derived from the
// region's vertices when the boundary is constructed, so the normals may
// point either way. The zero Boundary has no sides; it contains every point
// and clips no line.
type Boundary struct {
	sides    []Line
	vertices []Vec2
	// +1 where the interior satisfies U·p ≤ D, −1 where it satisfies U·p ≥ D.
	inside []float64
}

var unitSquare = mustBoundary(NewBoundary(
	Line{U: Vec(0, 1), D: 0},
	Line{U: Vec(1, 0), D: 1},
	Line{U: Vec(0, -1), D: -1},
	Line{U: Vec(-1, 0), D: 0},
))

func mustBoundary(bd Boundary, err error) Boundary {
	if err != nil {
		panic(err)
	}
	return bd
}

// UnitSquare returns the boundary of the square [0, 1] × [0, 1]. Its sides
// are, in order, bottom ((0, 1), 0), right ((1, 0), 1), top ((0, −1), −1) and
// left ((−1, 0), 0).
func UnitSquare() Boundary {
	return unitSquare
}

// NewBoundary returns the convex region enclosed by sides, which must be
// given in order around the region. Consecutive sides, including the last
// and the first, meet at the region's vertices.
func NewBoundary(sides ...Line) (Boundary, error) {
	n := len(sides)
	if n < 3 {
		return Boundary{}, errors.Wrapf(ErrTooFewSides, "got %d", n)
	}
	for i, side := range sides {
		if side.IsNaN() || side.IsInf() {
			return Boundary{}, errors.Wrapf(ErrNonFinite, "side %d", i)
		}
		if !side.IsUnit() {
			return Boundary{}, errors.Wrapf(ErrNotUnit, "side %d", i)
		}
	}

	vertices := make([]Vec2, n)
	var centroid Vec2
	for i, side := range sides {
		next := sides[(i+1)%n]
		v, ok := side.Intersect(next)
		if !ok {
			return Boundary{}, errors.Wrapf(ErrParallelSides, "sides %d and %d", i, (i+1)%n)
		}
		vertices[i] = v
		centroid = centroid.Add(v)
	}
	centroid = centroid.Div(float64(n))

	inside := make([]float64, n)
	for i, side := range sides {
		s := side.D - side.U.Dot(centroid)
		if math.Abs(s) < DegenerateEpsilon {
			return Boundary{}, errors.Wrapf(ErrDegenerateBoundary, "side %d passes through the center", i)
		}
		inside[i] = math.Copysign(1, s)
	}

	bd := Boundary{
		sides:    slices.Clone(sides),
		vertices: vertices,
		inside:   inside,
	}
	for i, v := range vertices {
		if !bd.containsWithin(v, BoundaryEpsilon) {
			return Boundary{}, errors.Wrapf(ErrNotConvex, "vertex %d at %s", i, v)
		}
	}
	return bd, nil
}

// NewPolygonBoundary returns the region enclosed by a convex polygon. The
// vertices may wind either way.
func NewPolygonBoundary(vertices ...Vec2) (Boundary, error) {
	n := len(vertices)
	if n < 3 {
		return Boundary{}, errors.Wrapf(ErrTooFewSides, "got %d vertices", n)
	}
	var area float64
	for i, v := range vertices {
		area += v.Cross(vertices[(i+1)%n])
	}
	if math.Abs(area) < DegenerateEpsilon {
		return Boundary{}, errors.Wrap(ErrDegenerateBoundary, "polygon has no area")
	}

	sides := make([]Line, n)
	for i, a := range vertices {
		b := vertices[(i+1)%n]
		e := b.Sub(a)
		if e.IsDegenerate() {
			return Boundary{}, errors.Wrapf(ErrDegenerateBoundary, "vertices %d and %d coincide", i, (i+1)%n)
		}
		// Outward normals lie to the right of an anti-clockwise walk.
		var u Vec2
		if area > 0 {
			u = e.Rotate270().Normalize()
		} else {
			u = e.Rotate90().Normalize()
		}
		sides[i] = Line{U: u, D: u.Dot(a)}
	}
	return NewBoundary(sides...)
}

// NewRectBoundary returns the boundary of a rectangle, with sides in the same
// order as [UnitSquare].
func NewRectBoundary(r Rect) (Boundary, error) {
	return UnitSquare().Transform(MapUnitSquare(r.Abs()))
}

// Sides returns the boundary's side lines in order.
func (bd Boundary) Sides() []Line {
	return slices.Clone(bd.sides)
}

// Vertices returns the region's corners. Vertex i is where side i meets
// side i+1.
func (bd Boundary) Vertices() []Vec2 {
	return slices.Clone(bd.vertices)
}

// BoundingBox returns the smallest rectangle enclosing the region.
func (bd Boundary) BoundingBox() Rect {
	if len(bd.vertices) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(bd.vertices[0], bd.vertices[0])
	for _, v := range bd.vertices[1:] {
		r = r.UnionPoint(v)
	}
	return r
}

// Transform applies the affine transformation to the region. It fails if
// the transformation collapses the region.
func (bd Boundary) Transform(aff Affine) (Boundary, error) {
	sides := make([]Line, len(bd.sides))
	for i, side := range bd.sides {
		sides[i] = side.Transform(aff)
	}
	return NewBoundary(sides...)
}

// Contains reports whether p lies inside the region or on its edge.
//
// The test is exact: on the unit square it is equivalent to
// 0 ≤ x ≤ 1 ∧ 0 ≤ y ≤ 1. Points with NaN or infinite coordinates are only
// contained by the zero Boundary.
func (bd Boundary) Contains(p Vec2) bool {
	for i, side := range bd.sides {
		if !((side.D-side.U.Dot(p))*bd.inside[i] >= 0) {
			return false
		}
	}
	return true
}

func (bd Boundary) containsWithin(p Vec2, tolerance float64) bool {
	for i, side := range bd.sides {
		if !((side.D-side.U.Dot(p))*bd.inside[i] >= -tolerance) {
			return false
		}
	}
	return true
}

// Clip returns the segment of l that lies inside the region.
//
// It reports false if l misses the region, only touches it in a single
// point, or runs along a side for a span shorter than [DegenerateEpsilon].
func (bd Boundary) Clip(l Line) (Segment, bool) {
	origin := l.Origin()
	dir := l.Direction()
	lo, hi := math.Inf(1), math.Inf(-1)
	n := 0
	for _, side := range bd.sides {
		p, ok := side.Intersect(l)
		if !ok || !bd.containsWithin(p, BoundaryEpsilon) {
			continue
		}
		// Position of the intersection along l.
		t := p.Sub(origin).Dot(dir)
		lo = min(lo, t)
		hi = max(hi, t)
		n++
	}
	if n < 2 || hi-lo < DegenerateEpsilon {
		return Segment{}, false
	}
	return Segment{
		A: origin.Add(dir.Mul(lo)),
		B: origin.Add(dir.Mul(hi)),
	}, true
}
