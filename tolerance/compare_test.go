// SPDX-License-Identifier: MIT
package tolerance_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/geomtol/geom"
	"github.com/katalvlaran/geomtol/tolerance"
)

func TestNearlyEqual_Scalars(t *testing.T) {
	ctx := tolerance.MustNew(0.01)

	assert.True(t, ctx.NearlyEqual(1, 1.005))
	assert.True(t, ctx.NearlyEqual(1.005, 1))
	assert.False(t, ctx.NearlyEqual(1, 1.02))
	assert.True(t, ctx.NearlyZero(-0.009))
	assert.False(t, ctx.NearlyZero(0.011))
	assert.True(t, ctx.Equal(-3, -3.001))
}

// TestNearlyEqual_NonFinite ensures NaN and Inf never compare equal.
func TestNearlyEqual_NonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	for _, tol := range []float64{0, 0.01, 1e6} {
		ctx := tolerance.MustNew(tol)
		assert.False(t, ctx.NearlyEqual(nan, nan), "tol=%v", tol)
		assert.False(t, ctx.NearlyEqual(nan, 0), "tol=%v", tol)
		assert.False(t, ctx.NearlyZero(nan), "NaN is never zero (tol=%v)", tol)
		assert.False(t, ctx.NearlyEqual(inf, inf), "tol=%v", tol)
		assert.False(t, ctx.NearlyEqual(-inf, 0), "tol=%v", tol)

		p := geom.Pt(0, nan, 0)
		assert.False(t, ctx.EqualPoints(p, p), "NaN point is not equal to itself")
		v := geom.Vec(inf, 0, 0)
		assert.False(t, ctx.EqualVectors(v, v))
	}
}

// TestZeroTolerance verifies that tolerance 0 degenerates to exact equality.
func TestZeroTolerance(t *testing.T) {
	ctx := tolerance.MustNew(0)

	assert.True(t, ctx.Equal(0.1, 0.1))
	assert.False(t, ctx.Equal(0.1, math.Nextafter(0.1, 1)))

	p := geom.Pt(1.25, -3.5, 1e-300)
	assert.True(t, ctx.EqualPoints(p, p))
	q := p
	q.Z = math.Nextafter(q.Z, 1)
	assert.False(t, ctx.EqualPoints(p, q))

	d := geom.Dir(0, 1.9398725363828362e-6, 1.0000002102065964)
	assert.True(t, ctx.EqualDirections(d, d))
	assert.False(t, ctx.EqualDirections(d, geom.PosZ))
}

// TestEqualPoints_PerAxis shows the rule is per axis, not Euclidean.
func TestEqualPoints_PerAxis(t *testing.T) {
	ctx := tolerance.MustNew(0.01)
	p := geom.Pt(0, 0, 0)
	q := geom.Pt(0.0075, 0.0075, 0.0075)

	assert.Greater(t, p.Distance(q), 0.01, "Euclidean distance exceeds tolerance")
	assert.True(t, ctx.EqualPoints(p, q), "each axis is within tolerance")
	assert.False(t, ctx.EqualPoints(p, geom.Pt(0, 0, 0.02)))
}

func TestEqualVectorsAndDirections(t *testing.T) {
	ctx := tolerance.MustNew(1e-3)

	assert.True(t, ctx.EqualVectors(geom.Vec(1, 2, 3), geom.Vec(1.0005, 1.9995, 3)))
	assert.False(t, ctx.EqualVectors(geom.Vec(1, 2, 3), geom.Vec(1, 2, 3.01)))
	assert.True(t, ctx.EqualDirections(geom.PosX, geom.Dir(0.9999995, 0.0009, 0)))
	assert.False(t, ctx.EqualDirections(geom.PosX, geom.NegX))
	assert.True(t, ctx.NearlyZeroVector(geom.Vec(1e-4, -1e-4, 0)))
	assert.False(t, ctx.NearlyZeroVector(geom.Vec(1e-4, -1e-2, 0)))
}

// TestEqual_Symmetric checks Equal(a,b) == Equal(b,a) over random inputs,
// including the relative term.
func TestEqual_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ctxs := []*tolerance.Context{
		tolerance.MustNew(0),
		tolerance.MustNew(1e-6),
		tolerance.MustNew(0.25),
		tolerance.MustNew(1e-9, tolerance.WithRelativeTolerance(1e-3)),
	}
	for i := 0; i < 2000; i++ {
		a := rng.NormFloat64() * 10
		b := a + rng.NormFloat64()*math.Pow(10, -float64(rng.Intn(8)))
		p := geom.Pt(a, b, a*b)
		q := geom.Pt(b, a, a*b+rng.NormFloat64()*1e-4)
		for _, ctx := range ctxs {
			assert.Equal(t, ctx.Equal(a, b), ctx.Equal(b, a))
			assert.Equal(t, ctx.EqualPoints(p, q), ctx.EqualPoints(q, p))
		}
	}
}

// TestEqual_NonTransitive builds a chain spaced exactly at the tolerance.
// Raw comparison is not transitive; snapping followed by exact equality is.
func TestEqual_NonTransitive(t *testing.T) {
	const tol = 0.25
	ctx := tolerance.MustNew(tol)
	a, b, c := 0.0, tol, 2*tol

	assert.True(t, ctx.Equal(a, b))
	assert.True(t, ctx.Equal(b, c))
	assert.False(t, ctx.Equal(a, c), "approximate equality is not transitive")

	sa, sb, sc := ctx.Snap(a), ctx.Snap(b), ctx.Snap(c)
	assert.Equal(t, sa, sb)
	assert.NotEqual(t, sb, sc)
	assert.NotEqual(t, sa, sc)

	// Over a longer chain, exact equality of snapped values is transitive.
	chain := make([]geom.Point3, 0, 17)
	for k := 0; k <= 16; k++ {
		x := float64(k) * tol / 2
		chain = append(chain, ctx.SnapPoint(geom.Pt(x, -x, 0)))
	}
	for i := range chain {
		for j := range chain {
			for k := range chain {
				if chain[i] == chain[j] && chain[j] == chain[k] {
					assert.Equal(t, chain[i], chain[k])
				}
			}
		}
	}
}

func TestRelativeTolerance(t *testing.T) {
	ctx := tolerance.MustNew(0, tolerance.WithRelativeTolerance(1e-3))

	assert.True(t, ctx.Equal(1000, 1000.5))
	assert.False(t, ctx.Equal(1, 1.5))
	assert.True(t, ctx.NearlyZero(0))
	assert.False(t, ctx.NearlyZero(1e-300))
}

func TestParallel(t *testing.T) {
	ctx := tolerance.MustNew(0.01)

	assert.True(t, ctx.Parallel(geom.PosZ, geom.NegZ))
	assert.True(t, ctx.Parallel(geom.PosZ, geom.Dir(0, 0.001, -0.9999995)))
	assert.False(t, ctx.Parallel(geom.PosZ, geom.PosX))
}

func TestColinear(t *testing.T) {
	ctx := tolerance.MustNew(1e-9)

	assert.True(t, ctx.Colinear(geom.Pt(0, 0, 0), geom.Pt(1, 1, 1), geom.Pt(2, 2, 2)))
	assert.True(t, ctx.Colinear(geom.Pt(1, 2, 3), geom.Pt(1, 2, 3), geom.Pt(1, 2, 3)))
	assert.False(t, ctx.Colinear(geom.Pt(0, 0, 0), geom.Pt(1, 0, 0), geom.Pt(0, 1, 0)))
}
