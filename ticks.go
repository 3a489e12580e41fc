// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eplot

import (
	"cogentcore.org/core/math32"
)

// minTicks is the minimum number of ticks on the axis with the smaller
// extent; the shared increment is derived from it.
const minTicks = 5

// maxTicks bounds the tick walk so a wildly unbalanced pair of ranges
// cannot stall a frame.
const maxTicks = 1024

// tickIncrement returns the tick increment for an axis extent: the nearest
// value of the form {1, 2, 5} x 10^n within [0.5, 1.5] times the rough
// increment extent/minTicks. Returns 0 if the extent is not usable.
func tickIncrement(extent float32) float32 {
	rough := extent / minTicks
	if !(rough > 0) || math32.IsInf(rough, 0) {
		return 0
	}
	mag := math32.Pow10(int(math32.Floor(math32.Log10(rough))))
	inc := float32(0)
	best := math32.Infinity
	for _, m := range []float32{1, 2, 5, 10} {
		c := m * mag
		if c < 0.5*rough || c > 1.5*rough {
			continue
		}
		if d := math32.Abs(c - rough); d < best {
			best = d
			inc = c
		}
	}
	return inc
}

// tickValues returns the tick positions for the range at the given
// increment: integer multiples of inc, walked from the truncation of
// Start/inc (stepped past zero for non-negative starts, matching the
// original axis walk) up through End.
func tickValues(rng AxisRange, inc float32) []float32 {
	if !(inc > 0) || math32.IsInf(inc, 0) {
		return nil
	}
	var ticks []float32
	i := int(rng.Start / inc)
	if i >= 0 {
		i++
	}
	for len(ticks) < maxTicks {
		v := float32(i) * inc
		if v > rng.End {
			break
		}
		ticks = append(ticks, v)
		i++
	}
	return ticks
}
