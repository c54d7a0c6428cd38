// SPDX-License-Identifier: MIT
// Package tolerance: sentinel error set.
// Construction is the only fallible operation; comparison and snapping never
// return errors. Sentinels are wrapped with context at the boundary and must
// be matched with errors.Is.

package tolerance

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidTolerance is returned by New when the absolute tolerance is
	// negative, NaN or infinite.
	ErrInvalidTolerance = errors.New("tolerance: tolerance must be finite and non-negative")

	// ErrInvalidRelativeTolerance is returned by New when the relative term set
	// via WithRelativeTolerance is not finite or lies outside [0, 1).
	ErrInvalidRelativeTolerance = errors.New("tolerance: relative tolerance must be finite and in [0, 1)")
)
