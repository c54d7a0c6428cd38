// SPDX-License-Identifier: MIT
package geomtol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/geomtol"
	"github.com/katalvlaran/geomtol/tolerance"
)

// TestSetLogger_ReachesSubPackages verifies the root logger is used by tolerance.New.
func TestSetLogger_ReachesSubPackages(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	geomtol.SetLogger(zap.New(core))
	t.Cleanup(func() { geomtol.SetLogger(nil) })

	_, err := tolerance.New(-1)
	require.Error(t, err)

	entries := logs.FilterMessage("rejected equality context").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "tolerance", entries[0].ContextMap()["module"])
}

func TestSetLogger_NilRestoresSilence(t *testing.T) {
	geomtol.SetLogger(nil)
	assert.False(t, geomtol.Logger().Core().Enabled(zap.ErrorLevel))
}
