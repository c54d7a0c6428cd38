// SPDX-License-Identifier: MIT

package geom

import "github.com/cockroachdb/errors"

// NewDirection3 normalizes v into a Direction3.
//
// Errors:
//   - ErrNonFinite if any component of v is NaN or ±Inf.
//   - ErrZeroLength if v has zero length.
func NewDirection3(v Vector3) (Direction3, error) {
	if !v.IsFinite() {
		return Direction3{}, errors.Wrapf(ErrNonFinite, "NewDirection3: %s", v)
	}
	length := v.Length()
	if length == 0 {
		return Direction3{}, errors.Wrap(ErrZeroLength, "NewDirection3")
	}
	return Direction3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}, nil
}

// Vector returns d as a Vector3.
func (d Direction3) Vector() Vector3 {
	return Vector3{X: d.X, Y: d.Y, Z: d.Z}
}

// Negate returns the opposite direction.
func (d Direction3) Negate() Direction3 {
	return Direction3{X: -d.X, Y: -d.Y, Z: -d.Z}
}

// Dot returns the dot product of d and e (the cosine of the angle between them).
func (d Direction3) Dot(e Direction3) float64 {
	return d.X*e.X + d.Y*e.Y + d.Z*e.Z
}

// Scale returns a vector of length s along d.
func (d Direction3) Scale(s float64) Vector3 {
	return Vector3{X: d.X * s, Y: d.Y * s, Z: d.Z * s}
}
