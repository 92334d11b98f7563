package fold

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got, want Vec2, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func assertEquivalent(t *testing.T, got, want Line) {
	t.Helper()
	if !got.Equivalent(want) {
		t.Errorf("got %s, expected a line equivalent to %s", got, want)
	}
}

// assertSegmentNear compares segments irrespective of endpoint order.
func assertSegmentNear(t *testing.T, got, want Segment, epsilon float64) {
	t.Helper()
	if got.A.Distance(want.A) <= epsilon && got.B.Distance(want.B) <= epsilon {
		return
	}
	if got.A.Distance(want.B) <= epsilon && got.B.Distance(want.A) <= epsilon {
		return
	}
	t.Fatalf("got %s, expected %s", got, want)
}
