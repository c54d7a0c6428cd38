// SPDX-License-Identifier: MIT

package geom

import "github.com/cockroachdb/errors"

var (
	// ErrZeroLength indicates a zero vector where a direction was required.
	ErrZeroLength = errors.New("geom: zero-length vector has no direction")

	// ErrNonFinite indicates a NaN or ±Inf component where finite values are required.
	ErrNonFinite = errors.New("geom: NaN or Inf component")
)
