package affinetool

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func assertPolygonsEqual(t *testing.T, expected, actual Polygon) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i].X, actual[i].X, tolerance, "x of vertex %d", i)
		assert.InDelta(t, expected[i].Y, actual[i].Y, tolerance, "y of vertex %d", i)
	}
}

func single(x, y float64) Homogeneous {
	return Homogenize(Polygon{{x, y}})
}

func TestRotation(t *testing.T) {
	p := Rotate(math.Pi/2, single(2, 0))
	assertPolygonsEqual(t, Polygon{{0, 2}}, p)

	// same as the old image rotation check: (1, 2) by 90° is (-2, 1)
	p = Rotate(90*math.Pi/180, single(1, 2))
	if math.Round(p[0].X) != -2 {
		t.Errorf("unexpected value for transformed x: %v", p[0].X)
	}
	if math.Round(p[0].Y) != 1 {
		t.Errorf("unexpected value for transformed y: %v", p[0].Y)
	}
}

func TestRotationRowForm(t *testing.T) {
	angle := 0.3
	sin, cos := math.Sincos(angle)
	expected := Matrix{
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
	}
	assert.Equal(t, expected, Rotation(angle).Transpose())
}

func TestRotationOrthonormal(t *testing.T) {
	m := Rotation(1.234)
	// columns 0 and 1 of the linear part
	assert.InDelta(t, 1.0, m[0]*m[0]+m[3]*m[3], tolerance)
	assert.InDelta(t, 1.0, m[1]*m[1]+m[4]*m[4], tolerance)
	assert.InDelta(t, 0.0, m[0]*m[1]+m[3]*m[4], tolerance)
}

func TestScale(t *testing.T) {
	p := Scale(1.5, 1.5, single(2, 1.7))
	assertPolygonsEqual(t, Polygon{{3.0, 2.55}}, p)

	p = Scale(-1, 0, single(2, 1.7))
	assertPolygonsEqual(t, Polygon{{-2, 0}}, p)
}

func TestTranslate(t *testing.T) {
	p := Translate(2, 1, single(0, 0))
	assertPolygonsEqual(t, Polygon{{2, 1}}, p)
}

func TestReflect(t *testing.T) {
	p := Reflect(single(-2, 2.5))
	assertPolygonsEqual(t, Polygon{{2, 2.5}}, p)
}

func TestReflectInvolution(t *testing.T) {
	hm := Homogenize(Canonical())

	twice := Reflection().Multiply(Reflection())
	assert.Equal(t, Identity(), twice)

	p := Reflect(Homogenize(Reflect(hm)))
	assertPolygonsEqual(t, Canonical(), p)
}

func TestIdentityOperations(t *testing.T) {
	hm := Homogenize(Canonical())

	assertPolygonsEqual(t, Canonical(), Scale(1, 1, hm))
	assertPolygonsEqual(t, Canonical(), Rotate(0, hm))
	assertPolygonsEqual(t, Canonical(), Translate(0, 0, hm))
}

func TestRotateInverse(t *testing.T) {
	hm := Homogenize(Canonical())
	for _, angle := range []float64{0.1, math.Pi / 4, math.Pi, -2.5} {
		p := Rotate(-angle, Homogenize(Rotate(angle, hm)))
		assertPolygonsEqual(t, Canonical(), p)
	}
}

func TestOrderMatters(t *testing.T) {
	rot := Rotation(math.Pi / 4)
	tr := Translation(2, 1)

	rotThenTr := tr.Multiply(rot)
	trThenRot := rot.Multiply(tr)
	assert.NotEqual(t, rotThenTr, trThenRot)

	hm := single(1, 0)
	a := rotThenTr.Apply(hm)[0]
	b := trThenRot.Apply(hm)[0]
	diff := math.Hypot(a.X-b.X, a.Y-b.Y)
	assert.Greater(t, diff, 0.1, "rotate-then-translate equals translate-then-rotate")

	// composition agrees with sequential application
	seq := Translate(2, 1, Homogenize(Rotate(math.Pi/4, hm)))
	assertPolygonsEqual(t, seq, Polygon{a})
}

func TestCountAndOrderPreserved(t *testing.T) {
	hm := Homogenize(Canonical())
	results := map[string]Polygon{
		"rotate":    Rotate(math.Pi/4, hm),
		"scale":     Scale(1.5, 0.5, hm),
		"reflect":   Reflect(hm),
		"translate": Translate(2, 1, hm),
	}
	for name, p := range results {
		require.Len(t, p, len(hm), name)
		// closed ring stays closed, i.e. no reordering or dedup
		assert.True(t, p.Closed(), "%s: ring not closed", name)
	}

	tr := results["translate"]
	for i, v := range Canonical() {
		assert.InDelta(t, v.X+2, tr[i].X, tolerance)
		assert.InDelta(t, v.Y+1, tr[i].Y, tolerance)
	}
}

func TestHomogeneousColumnUntouched(t *testing.T) {
	hm := Homogenize(Canonical())
	before := make(Homogeneous, len(hm))
	copy(before, hm)

	Rotate(1, hm)
	Scale(3, -2, hm)
	Reflect(hm)
	Translate(5, 5, hm)

	assert.Equal(t, before, hm)
	for _, row := range hm {
		assert.Equal(t, 1.0, row[2])
	}
}

func TestNonFinitePropagates(t *testing.T) {
	hm := single(1, 1)

	p := Scale(math.NaN(), 1, hm)
	assert.True(t, math.IsNaN(p[0].X))
	assert.Equal(t, 1.0, p[0].Y)

	p = Translate(math.Inf(1), 0, hm)
	assert.True(t, math.IsInf(p[0].X, 1))
}

func TestEmpty(t *testing.T) {
	p := Rotate(1, Homogeneous{})
	assert.Len(t, p, 0)
}
