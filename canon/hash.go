// SPDX-License-Identifier: MIT

package canon

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

var canonicalNaN = math.NaN()

// Hash returns a 64-bit hash of v's components.
//
// Contract: Compare(a, b) == 0 implies Hash(a) == Hash(b). Signed zeros are
// folded to +0 and every NaN payload to one canonical NaN.
// The hash is only meaningful for values that were snapped under one context.
func Hash[T Triple](v T) uint64 {
	var buf [24]byte
	for i, f := range v.Components() {
		switch {
		case f == 0:
			f = 0
		case math.IsNaN(f):
			f = canonicalNaN
		}
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return xxh3.Hash(buf[:])
}
