// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eplot

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// Transform maps between data space and pixel space for one frame. It holds
// the two resolved axis ranges and the plotting rectangle in pixels, so it
// can be constructed and tested independently of the frame orchestrator.
type Transform struct {
	// X and Y are the axis ranges after this frame's pan and zoom.
	X AxisRange
	Y AxisRange

	// Rect is the plotting rectangle in pixels.
	Rect math32.Box2
}

// ToPixel converts a point in data coordinates to pixel coordinates.
func (tf *Transform) ToPixel(p math32.Vector2) math32.Vector2 {
	return math32.Vec2(
		tf.X.AxisToPixel(tf.pixelsX(), p.X, false),
		tf.Y.AxisToPixel(tf.pixelsY(), p.Y, true),
	)
}

// ToData converts a point in pixel coordinates to data coordinates.
func (tf *Transform) ToData(p math32.Vector2) math32.Vector2 {
	return math32.Vec2(
		tf.X.PixelToAxis(tf.pixelsX(), p.X, false),
		tf.Y.PixelToAxis(tf.pixelsY(), p.Y, true),
	)
}

func (tf *Transform) pixelsX() minmax.F32 {
	return minmax.F32{Min: tf.Rect.Min.X, Max: tf.Rect.Max.X}
}

func (tf *Transform) pixelsY() minmax.F32 {
	return minmax.F32{Min: tf.Rect.Min.Y, Max: tf.Rect.Max.Y}
}
