// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eplot

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"github.com/stretchr/testify/assert"
)

func TestAxisRangeExtentMiddle(t *testing.T) {
	ar := NewAxisRange(-10, 10)
	assert.Equal(t, float32(20), ar.Extent())
	assert.Equal(t, float32(0), ar.Middle())

	ar = NewAxisRange(2, 5)
	assert.Equal(t, float32(3), ar.Extent())
	assert.Equal(t, float32(3.5), ar.Middle())
}

func TestAxisRangeTranslate(t *testing.T) {
	for _, delta := range []float32{0.5, 2, -4, 12.25} {
		ar := NewAxisRange(-10, 10)
		ext, mid := ar.Extent(), ar.Middle()
		ar.Translate(delta)
		assert.Equal(t, ext, ar.Extent(), "extent is preserved for delta %g", delta)
		tolassert.Equal(t, mid+delta, ar.Middle())
	}
}

func TestAxisRangeZoom(t *testing.T) {
	ar := NewAxisRange(-10, 10)
	ar.Zoom(-0.1, 0.5)
	tolassert.Equal(t, float32(-9), ar.Start)
	tolassert.Equal(t, float32(9), ar.End)

	ar = NewAxisRange(-10, 10)
	ar.Zoom(0.1, 0.5)
	tolassert.Equal(t, float32(-11), ar.Start)
	tolassert.Equal(t, float32(11), ar.End)
}

// TestAxisRangeZoomAnchor checks that the value under the zoom center
// stays fixed for any amount and center.
func TestAxisRangeZoomAnchor(t *testing.T) {
	for _, amount := range []float32{0.3, -0.25, 1.5} {
		for _, center := range []float32{0, 0.25, 0.5, 0.75, 1} {
			ar := NewAxisRange(-3, 17)
			before := ar.Start + center*ar.Extent()
			ar.Zoom(amount, center)
			after := ar.Start + center*ar.Extent()
			tolassert.EqualTol(t, before, after, 1.0e-4)
			tolassert.EqualTol(t, 20*(1+amount), ar.Extent(), 1.0e-4)
		}
	}
}

func TestAxisToPixel(t *testing.T) {
	ar := NewAxisRange(-10, 10)
	px := minmax.F32{Min: 0, Max: 800}
	assert.Equal(t, float32(0), ar.AxisToPixel(px, -10, false))
	assert.Equal(t, float32(400), ar.AxisToPixel(px, 0, false))
	assert.Equal(t, float32(800), ar.AxisToPixel(px, 10, false))

	// flipping reverses the pixel direction
	assert.Equal(t, float32(800), ar.AxisToPixel(px, -10, true))
	assert.Equal(t, float32(0), ar.AxisToPixel(px, 10, true))
}

func TestPixelToAxis(t *testing.T) {
	ar := NewAxisRange(-10, 10)
	px := minmax.F32{Min: 0, Max: 800}
	tolassert.Equal(t, float32(-10), ar.PixelToAxis(px, 0, false))
	tolassert.Equal(t, float32(0), ar.PixelToAxis(px, 400, false))
	tolassert.Equal(t, float32(10), ar.PixelToAxis(px, 800, false))
	tolassert.Equal(t, float32(10), ar.PixelToAxis(px, 0, true))
}

func TestPixelAxisRoundTrip(t *testing.T) {
	px := minmax.F32{Min: 40, Max: 790}
	ranges := []AxisRange{
		NewAxisRange(-10, 10),
		NewAxisRange(2.5, 97.25),
		{Start: 1, End: 100, Scaling: Logarithmic},
		{Start: 0.001, End: 10, Scaling: Logarithmic},
	}
	for _, ar := range ranges {
		for _, flip := range []bool{false, true} {
			for pixel := px.Min; pixel <= px.Max; pixel += 93.75 {
				v := ar.PixelToAxis(px, pixel, flip)
				tolassert.EqualTol(t, pixel, ar.AxisToPixel(px, v, flip), 0.1)
			}
		}
	}
}

// TestLogarithmicMapping checks that equal pixel steps correspond to
// equal value ratios on a logarithmic axis.
func TestLogarithmicMapping(t *testing.T) {
	ar := AxisRange{Start: 1, End: 100, Scaling: Logarithmic}
	px := minmax.F32{Min: 0, Max: 100}
	tolassert.Equal(t, float32(50), ar.AxisToPixel(px, 10, false))
	tolassert.Equal(t, float32(10), ar.PixelToAxis(px, 50, false))
	tolassert.EqualTol(t, float32(25), ar.AxisToPixel(px, math32.Sqrt(10), false), 0.01)
}

// TestZeroExtentMapping checks that a range with Start == End converts
// through clamped denominators: pixels come out useless but finite, and
// every pixel maps back to the one value in the range.
func TestZeroExtentMapping(t *testing.T) {
	px := minmax.F32{Min: 0, Max: 800}
	for _, scaling := range []AxisScalings{Linear, Logarithmic} {
		ar := AxisRange{Start: 5, End: 5, Scaling: scaling}
		for _, flip := range []bool{false, true} {
			tolassert.Equal(t, float32(5), ar.PixelToAxis(px, 200, flip))
			for _, v := range []float32{5, 6} {
				p := ar.AxisToPixel(px, v, flip)
				assert.False(t, math32.IsNaN(p), "scaling %v flip %v value %g", scaling, flip, v)
				assert.False(t, math32.IsInf(p, 0), "scaling %v flip %v value %g", scaling, flip, v)
			}
		}
	}
}
