// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Point3 is a location in model space.
type Point3 struct {
	X, Y, Z float64
}

// Vector3 is a displacement in model space.
type Vector3 struct {
	X, Y, Z float64
}

// Direction3 is a unit-length Vector3. Unit length is the producer's
// responsibility; nothing here re-checks it after construction.
type Direction3 struct {
	X, Y, Z float64
}

// Pt is a convenience function to create a Point3.
func Pt(x, y, z float64) Point3 { return Point3{X: x, Y: y, Z: z} }

// Vec is a convenience function to create a Vector3.
func Vec(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// Dir creates a Direction3 from raw components without normalizing.
// Use it for directions that already arrive unit length from upstream.
func Dir(x, y, z float64) Direction3 { return Direction3{X: x, Y: y, Z: z} }

// Axis directions.
var (
	PosX = Direction3{X: 1}
	NegX = Direction3{X: -1}
	PosY = Direction3{Y: 1}
	NegY = Direction3{Y: -1}
	PosZ = Direction3{Z: 1}
	NegZ = Direction3{Z: -1}
)

// Components returns (x, y, z).
func (p Point3) Components() [3]float64 { return [3]float64{p.X, p.Y, p.Z} }

// Components returns (x, y, z).
func (v Vector3) Components() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// Components returns (x, y, z).
func (d Direction3) Components() [3]float64 { return [3]float64{d.X, d.Y, d.Z} }

// IsFinite reports whether no component is NaN or ±Inf.
func (p Point3) IsFinite() bool { return finite3(p.X, p.Y, p.Z) }

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vector3) IsFinite() bool { return finite3(v.X, v.Y, v.Z) }

// IsFinite reports whether no component is NaN or ±Inf.
func (d Direction3) IsFinite() bool { return finite3(d.X, d.Y, d.Z) }

func (p Point3) String() string     { return format3("Point3", p.X, p.Y, p.Z) }
func (v Vector3) String() string    { return format3("Vector3", v.X, v.Y, v.Z) }
func (d Direction3) String() string { return format3("Direction3", d.X, d.Y, d.Z) }

func format3(name string, x, y, z float64) string {
	return fmt.Sprintf("%s(%g, %g, %g)", name, x, y, z)
}

// IsNonFinite reports whether x is NaN or ±Inf.
func IsNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

func finite3(x, y, z float64) bool {
	return !IsNonFinite(x) && !IsNonFinite(y) && !IsNonFinite(z)
}
