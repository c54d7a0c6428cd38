// SPDX-License-Identifier: MIT

// Package log holds the zap logger shared by every geomtol package.
//
// The library is silent by default: the stored logger is zap.NewNop() until
// SetLogger installs a real one. Comparison, snapping and hashing never log;
// only construction and configuration paths do.
package log

import (
	"sync/atomic"

	"go.uber.org/zap"
)

const (
	// FieldNameModule is the key used to tag records with the emitting package.
	FieldNameModule = "module"
)

var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger installs l as the logger for geomtol. Passing nil restores the
// silent default. Safe for concurrent use.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// L returns the current logger.
func L() *zap.Logger {
	return loggerPtr.Load()
}

// FieldModule returns a zap field with the module name.
func FieldModule(module string) zap.Field {
	return zap.String(FieldNameModule, module)
}

// With returns the current logger tagged with module.
func With(module string) *zap.Logger {
	return L().With(FieldModule(module))
}
