// SPDX-License-Identifier: MIT

package tolerance

import (
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/geomtol/internal/log"
)

// Context is an equality context bound to one tolerance.
//
// The zero value is not usable; construct with New. A Context is immutable
// and safe for concurrent use.
type Context struct {
	tol  float64
	rtol float64
}

// New returns a Context that treats deviations ≤ tol as negligible.
//
// Errors:
//   - ErrInvalidTolerance if tol < 0, NaN or ±Inf.
//   - ErrInvalidRelativeTolerance if WithRelativeTolerance got a bad value.
//
// A tolerance of exactly 0 degenerates to exact equality.
func New(tol float64, opts ...Option) (*Context, error) {
	o := gatherOptions(opts...)
	logger := o.logger
	if logger == nil {
		logger = log.With("tolerance")
	}

	if err := validateTolerance(tol); err != nil {
		logger.Warn("rejected equality context", zap.Float64("tolerance", tol), zap.Error(err))
		return nil, err
	}
	if err := validateRelative(o.rtol); err != nil {
		logger.Warn("rejected equality context", zap.Float64("relative", o.rtol), zap.Error(err))
		return nil, err
	}

	logger.Debug("equality context created",
		zap.Float64("tolerance", tol),
		zap.Float64("relative", o.rtol))

	return &Context{tol: tol, rtol: o.rtol}, nil
}

// MustNew is like New but panics on error. Intended for package-level
// contexts built from constants.
func MustNew(tol float64, opts ...Option) *Context {
	ctx, err := New(tol, opts...)
	if err != nil {
		panic(err)
	}
	return ctx
}

var defaultContext = MustNew(DefaultTolerance)

// Default returns the shared Context for DefaultTolerance.
func Default() *Context {
	return defaultContext
}

// Tolerance returns the absolute tolerance.
func (c *Context) Tolerance() float64 { return c.tol }

// RelativeTolerance returns the relative term (0 unless WithRelativeTolerance was used).
func (c *Context) RelativeTolerance() float64 { return c.rtol }

func validateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return errors.Wrapf(ErrInvalidTolerance, "New: got %v", tol)
	}
	return nil
}

func validateRelative(rtol float64) error {
	if math.IsNaN(rtol) || math.IsInf(rtol, 0) || rtol < 0 || rtol >= 1 {
		return errors.Wrapf(ErrInvalidRelativeTolerance, "New: got %v", rtol)
	}
	return nil
}
