// SPDX-License-Identifier: MIT

package tolerance

import "github.com/katalvlaran/geomtol/geom"

// Parallel reports whether d and e are the same or opposite directions under
// the per-axis rule.
func (c *Context) Parallel(d, e geom.Direction3) bool {
	return c.EqualDirections(d, e) || c.EqualDirections(d, e.Negate())
}

// Colinear reports whether a, b and c lie on one line: every component of
// (b-a) × (c-a), i.e. twice the triangle area projected on each coordinate
// plane, is within tolerance of 0.
//
// Coincident points are colinear.
func (c *Context) Colinear(a, b, p geom.Point3) bool {
	return c.NearlyZeroVector(b.Sub(a).Cross(p.Sub(a)))
}
