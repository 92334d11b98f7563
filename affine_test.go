package fold

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Vec(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Vec(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Vec(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Vec(8, 10), epsilon)
	assertNear(t, p.Transform(FlipY), Vec(3, -4), epsilon)
	assertNear(t, p.Transform(RotateAbout(math.Pi, Vec(1, 1))), Vec(-1, -2), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Vec(1, 0)
	py := Vec(0, 1)
	pxy := Vec(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)

	assertNear(t, pxy.Transform(a1.ThenScale(2, 3)), pxy.Transform(a1).Transform(Scale(2, 3)), epsilon)
	assertNear(t, pxy.Transform(a1.Then(Rotate(1))), pxy.Transform(a1).Transform(Rotate(1)), epsilon)
	assertNear(t, pxy.Transform(a1.ThenTranslate(Vec(-1, 2))), pxy.Transform(a1).Add(Vec(-1, 2)), epsilon)
	diff(t, a2.Mul(a1), a1.Then(a2))
}

func TestLineReflectionCoefficients(t *testing.T) {
	c := math.Sqrt2 / 2
	for _, tt := range []struct {
		line Line
		want Affine
	}{
		{Line{U: Vec(0, 1), D: 0}, FlipY},
		{Line{U: Vec(1, 0), D: 0}, Affine{-1, 0, 0, 1, 0, 0}},
		{Line{U: Vec(c, -c), D: 0}, Affine{0, 1, 1, 0, 0, 0}},
		{Line{U: Vec(1, 0), D: 0.5}, Affine{-1, 0, 0, 1, 1, 0}},
		{Line{U: Vec(-c, c), D: -c}, Affine{0, 1, 1, 0, 1, -1}},
	} {
		diff(t, tt.want, tt.line.Reflection(), cmpopts.EquateApprox(0, 1e-12))
	}

	// A reflection undoes itself.
	aff := Line{U: VecFromAngle(0.3), D: 0.4}.Reflection()
	diff(t, Identity, aff.Mul(aff), cmpopts.EquateApprox(0, 1e-12))
}

func TestMapUnitSquare(t *testing.T) {
	aff := MapUnitSquare(Rect{2, 1, 6, 3})
	assertNear(t, Vec(0, 0).Transform(aff), Vec(2, 1), 1e-12)
	assertNear(t, Vec(1, 1).Transform(aff), Vec(6, 3), 1e-12)
}

func TestTransformSeq(t *testing.T) {
	c := math.Sqrt2 / 2
	folds := Axiom3(Line{U: Vec(1, 0), D: 0.5}, Line{U: Vec(0, 1), D: 0.5}, UnitSquare())
	got := slices.Collect(Transform(folds, Translate(Vec(1, 1))))
	want := []Line{
		{U: Vec(c, c), D: 3 * c},
		{U: Vec(c, -c), D: 0},
	}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))

	pts := slices.Collect(Transform(slices.Values([]Vec2{Vec(1, 2), Vec(3, 4)}), Scale(2, 0.5)))
	diff(t, []Vec2{Vec(2, 1), Vec(6, 2)}, pts)
}
