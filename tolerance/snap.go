// SPDX-License-Identifier: MIT

package tolerance

import (
	"math"

	"github.com/katalvlaran/geomtol/geom"
)

// Snap maps x to its canonical representative:
//  1. 0 if x is within tolerance of 0 (the result is +0, never -0);
//  2. the nearest integer n if x is within tolerance of n, and n itself
//     does not snap to 0;
//  3. x unchanged otherwise, and always for NaN and ±Inf.
//
// Snap is idempotent for every x and every tolerance.
func (c *Context) Snap(x float64) float64 {
	if geom.IsNonFinite(x) {
		return x
	}
	if c.NearlyZero(x) {
		return 0
	}
	n := math.Round(x)
	if n == x {
		return x
	}
	// n must be a fixed point of Snap; a coarse tolerance could otherwise
	// send x to n and then n to 0.
	if c.NearlyEqual(x, n) && !c.NearlyZero(n) {
		return n
	}
	return x
}

// SnapPoint snaps each coordinate of p independently.
func (c *Context) SnapPoint(p geom.Point3) geom.Point3 {
	return geom.Pt(c.Snap(p.X), c.Snap(p.Y), c.Snap(p.Z))
}

// SnapVector snaps each component of v independently.
func (c *Context) SnapVector(v geom.Vector3) geom.Vector3 {
	return geom.Vec(c.Snap(v.X), c.Snap(v.Y), c.Snap(v.Z))
}

// axisClass is the canonical value a single direction component is near.
type axisClass uint8

const (
	classOther axisClass = iota
	classZero
	classPos
	classNeg
)

// classify tests ±1 before 0, so a component near both counts as an axis.
func (c *Context) classify(v float64) axisClass {
	switch {
	case geom.IsNonFinite(v):
		return classOther
	case c.NearlyEqual(v, 1):
		return classPos
	case c.NearlyEqual(v, -1):
		return classNeg
	case c.NearlyZero(v):
		return classZero
	default:
		return classOther
	}
}

// SnapDirection returns the exact signed axis direction (±X, ±Y, ±Z) when
// exactly one component of d is within tolerance of ±1 and the other two are
// within tolerance of 0. In every other case d is returned unchanged: no
// partial snapping, no renormalization. That includes zero-length and
// NaN-bearing inputs.
//
// Example (tolerance 0.01):
//
//	SnapDirection(geom.Dir(0, 1.9398725363828362e-6, 1.0000002102065964)) == geom.PosZ
func (c *Context) SnapDirection(d geom.Direction3) geom.Direction3 {
	comps := d.Components()
	axis := -1
	sign := 0.0
	for i, v := range comps {
		switch c.classify(v) {
		case classPos, classNeg:
			if axis >= 0 {
				return d // two axis-like components: not a unit vector
			}
			axis = i
			sign = 1
			if v < 0 {
				sign = -1
			}
		case classZero:
		default:
			return d
		}
	}
	if axis < 0 {
		return d
	}

	var out [3]float64
	out[axis] = sign
	return geom.Dir(out[0], out[1], out[2])
}
