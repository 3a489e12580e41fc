// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eplot

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// AxisScalings are the ways an [AxisRange] can be mapped onto pixels.
type AxisScalings int32 //enums:enum

const (
	// Linear maps the axis range onto pixels uniformly.
	Linear AxisScalings = iota

	// Logarithmic maps the axis range onto pixels with logarithmic
	// compression. The range must be strictly positive.
	Logarithmic
)

// AxisRange is the visible data interval for one axis, together with the
// scaling used to map it onto pixels. End > Start is expected for usable
// transforms; Logarithmic additionally requires Start > 0.
type AxisRange struct {
	// Start is the data value at the low-pixel edge of the axis.
	Start float32

	// End is the data value at the high-pixel edge of the axis.
	End float32

	// Scaling selects how values are mapped onto pixels.
	Scaling AxisScalings
}

// NewAxisRange returns a [Linear] axis range spanning start to end.
func NewAxisRange(start, end float32) AxisRange {
	return AxisRange{Start: start, End: end}
}

// Extent returns the width of the range, End - Start.
func (ar *AxisRange) Extent() float32 {
	return ar.End - ar.Start
}

// Middle returns the midpoint of the range.
func (ar *AxisRange) Middle() float32 {
	return (ar.Start + ar.End) / 2
}

// Translate shifts both bounds by delta, preserving the extent (pan).
func (ar *AxisRange) Translate(delta float32) {
	ar.Start += delta
	ar.End += delta
}

// Zoom grows (amount > 0) or shrinks (amount < 0) the range by the given
// fraction of its extent. The data value at fractional position center
// (in [0, 1], measured from Start) stays fixed, which is what keeps the
// point under the cursor stationary when zooming toward it.
func (ar *AxisRange) Zoom(amount, center float32) {
	ext := ar.Extent()
	ar.Start -= amount * center * ext
	ar.End += amount * (1 - center) * ext
}

// PixelToAxis converts a pixel coordinate within the given pixel span to a
// data value in this range. flip reverses the span direction: pixel Y grows
// downward while data Y grows upward, so the Y axis converts with flip on.
func (ar *AxisRange) PixelToAxis(pixels minmax.F32, pixel float32, flip bool) float32 {
	t := (pixel - pixels.Min) / clampDenom(pixels.Range())
	if flip {
		t = 1 - t
	}
	if ar.Scaling == Logarithmic {
		return ar.Start * math32.Pow(ar.End/clampDenom(ar.Start), t)
	}
	return ar.Start + t*ar.Extent()
}

// AxisToPixel converts a data value in this range to a pixel coordinate
// within the given pixel span. It is the exact inverse of [AxisRange.PixelToAxis]
// for the same span and flip, up to floating point precision.
func (ar *AxisRange) AxisToPixel(pixels minmax.F32, value float32, flip bool) float32 {
	var t float32
	if ar.Scaling == Logarithmic {
		logSpan := math32.Log(ar.End / clampDenom(ar.Start))
		t = math32.Log(value/clampDenom(ar.Start)) / clampDenom(logSpan)
	} else {
		t = (value - ar.Start) / clampDenom(ar.Extent())
	}
	if flip {
		t = 1 - t
	}
	return math32.Lerp(pixels.Min, pixels.Max, t)
}

// denomEps is the smallest magnitude allowed in transform denominators.
const denomEps = 1e-8

// clampDenom keeps a transform denominator away from zero so that
// degenerate ranges and rectangles produce finite, if useless, output.
func clampDenom(d float32) float32 {
	if math32.Abs(d) >= denomEps {
		return d
	}
	if math32.Signbit(d) {
		return -denomEps
	}
	return denomEps
}
