// SPDX-License-Identifier: MIT

package canon

import "github.com/katalvlaran/geomtol/geom"

// Triple is any comparable three-component value: geom.Point3, geom.Vector3
// or geom.Direction3.
type Triple interface {
	comparable
	Components() [3]float64
}

// assertTriple only compiles when T satisfies Triple.
func assertTriple[T Triple]() {}

var (
	_ = assertTriple[geom.Point3]
	_ = assertTriple[geom.Vector3]
	_ = assertTriple[geom.Direction3]
)
