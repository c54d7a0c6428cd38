// SPDX-License-Identifier: MIT

package tolerance

import (
	"math"

	"github.com/katalvlaran/geomtol/geom"
)

// NearlyEqual reports whether |a-b| ≤ tolerance (plus the relative term when
// configured). NaN and ±Inf never compare equal, not even to themselves.
//
// Symmetric, not transitive.
func (c *Context) NearlyEqual(a, b float64) bool {
	if geom.IsNonFinite(a) || geom.IsNonFinite(b) {
		return false
	}
	diff := math.Abs(a - b)
	if diff <= c.tol {
		return true
	}
	if c.rtol == 0 {
		return false
	}
	return diff <= c.tol+c.rtol*math.Max(math.Abs(a), math.Abs(b))
}

// NearlyZero reports NearlyEqual(a, 0).
func (c *Context) NearlyZero(a float64) bool {
	return c.NearlyEqual(a, 0)
}

// Equal compares two scalars. Alias of NearlyEqual, kept so the compare family
// reads uniformly at call sites.
func (c *Context) Equal(a, b float64) bool {
	return c.NearlyEqual(a, b)
}

// EqualPoints reports whether every pair of corresponding components is
// NearlyEqual. Each axis is tested on its own; this is not a Euclidean
// distance threshold.
func (c *Context) EqualPoints(p, q geom.Point3) bool {
	return c.equal3(p.Components(), q.Components())
}

// EqualVectors applies the per-axis rule of EqualPoints to vectors.
func (c *Context) EqualVectors(v, w geom.Vector3) bool {
	return c.equal3(v.Components(), w.Components())
}

// EqualDirections applies the per-axis rule to the unit vectors as given.
// No re-normalization is performed.
func (c *Context) EqualDirections(d, e geom.Direction3) bool {
	return c.equal3(d.Components(), e.Components())
}

// NearlyZeroVector reports whether every component of v is NearlyZero.
func (c *Context) NearlyZeroVector(v geom.Vector3) bool {
	return c.NearlyZero(v.X) && c.NearlyZero(v.Y) && c.NearlyZero(v.Z)
}

func (c *Context) equal3(a, b [3]float64) bool {
	return c.NearlyEqual(a[0], b[0]) &&
		c.NearlyEqual(a[1], b[1]) &&
		c.NearlyEqual(a[2], b[2])
}
