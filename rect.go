package fold

// Rect is an axis-aligned rectangle spanning [X0, X1] × [Y0, Y1]. It
// describes rectangular paper and the bounding box of a [Boundary].
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the rectangle with opposite corners p0 and p1.
func NewRectFromPoints(p0, p1 Vec2) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs reorders the coordinates so that X0 ≤ X1 and Y0 ≤ Y1.
func (r Rect) Abs() Rect {
	r.X0, r.X1 = min(r.X0, r.X1), max(r.X0, r.X1)
	r.Y0, r.Y1 = min(r.Y0, r.Y1), max(r.Y0, r.Y1)
	return r
}

// Width returns X1 − X0, which is negative for rectangles that aren't
// normalized by [Rect.Abs].
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1 − Y0. See [Rect.Width].
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Center() Vec2 {
	return Vec2{
		X: (r.X0 + r.X1) / 2,
		Y: (r.Y0 + r.Y1) / 2,
	}
}

// UnionPoint grows r to include pt. Starting from the zero-area rectangle
// of one point, repeated calls yield the bounding box of a point set.
func (r Rect) UnionPoint(pt Vec2) Rect {
	r.X0, r.X1 = min(r.X0, pt.X), max(r.X1, pt.X)
	r.Y0, r.Y1 = min(r.Y0, pt.Y), max(r.Y1, pt.Y)
	return r
}
