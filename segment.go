package fold

import "fmt"

// Segment is a finite piece of a line between two endpoints. The order of
// the endpoints carries no meaning.
type Segment struct {
	A Vec2
	B Vec2
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment{%s, %s}", s.A, s.B)
}

// Vector returns the vector from A to B.
func (s Segment) Vector() Vec2 {
	return s.B.Sub(s.A)
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.Vector().Hypot()
}

func (s Segment) Midpoint() Vec2 {
	return s.A.Midpoint(s.B)
}

// Eval returns the point A + t(B − A).
func (s Segment) Eval(t float64) Vec2 {
	return s.A.Lerp(s.B, t)
}

func (s Segment) Reverse() Segment {
	return Segment{A: s.B, B: s.A}
}

func (s Segment) Transform(aff Affine) Segment {
	return Segment{
		A: s.A.Transform(aff),
		B: s.B.Transform(aff),
	}
}

// QuickOverlap reports whether two segments that are already known to be
// collinear share at least one point. Partial overlap, containment and
// touching endpoints all count.
//
// Each endpoint is projected onto the other segment's direction; the
// segments overlap if any projection falls within the other's span.
func (s Segment) QuickOverlap(o Segment) bool {
	vecA := s.Vector()
	magA := vecA.Hypot()
	normA := vecA.Normalize()

	vecB := o.Vector()
	magB := vecB.Hypot()
	normB := vecB.Normalize()

	within := func(t, span float64) bool { return t >= 0 && t <= span }
	return within(normB.Dot(s.A.Sub(o.A)), magB) ||
		within(normB.Dot(s.B.Sub(o.A)), magB) ||
		within(normA.Dot(o.A.Sub(s.A)), magA) ||
		within(normA.Dot(o.B.Sub(s.A)), magA)
}
