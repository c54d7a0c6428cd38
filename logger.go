// SPDX-License-Identifier: MIT

package geomtol

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/geomtol/internal/log"
)

// SetLogger configures the logger for geomtol and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - Debug: equality context created
//   - Info:  tolerance profiles loaded
//   - Warn:  invalid tolerance rejected
//
// Safe for concurrent use.
func SetLogger(l *zap.Logger) {
	log.SetLogger(l)
}

// Logger returns the logger currently used by geomtol.
func Logger() *zap.Logger {
	return log.L()
}
