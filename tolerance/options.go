// SPDX-License-Identifier: MIT

// Package tolerance: functional configuration of a Context.
//
// Design goals:
//   - No global state: every Context carries its own policy.
//   - Option setters only record values; New validates them and reports
//     failures as errors, so profiles loaded from files never panic.
//   - Last writer wins when the same option is applied twice.
package tolerance

import "go.uber.org/zap"

// Defaults (single source of truth).
const (
	// DefaultTolerance is the absolute tolerance used by Default().
	DefaultTolerance = 1e-6

	// DefaultRelativeTolerance disables the relative term of the comparator.
	DefaultRelativeTolerance = 0.0
)

// Option configures a Context before creation.
type Option func(*options)

type options struct {
	rtol   float64     // relative term, [0, 1)
	logger *zap.Logger // nil → package logger
}

func defaultOptions() options {
	return options{rtol: DefaultRelativeTolerance}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithRelativeTolerance adds a magnitude-scaled term to the scalar comparator:
//
//	|a-b| ≤ tol + rtol·max(|a|, |b|)
//
// The max keeps the relation symmetric. rtol must be finite and in [0, 1);
// New rejects anything else with ErrInvalidRelativeTolerance.
//
// Useful when coordinates span several orders of magnitude (site plans in
// millimetres next to fixture detail).
func WithRelativeTolerance(rtol float64) Option {
	return func(o *options) { o.rtol = rtol }
}

// WithLogger makes New log through l instead of the package logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}
