// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eplot

import (
	"cogentcore.org/core/base/option"
	"cogentcore.org/core/math32"
)

// Input is the host-collected input snapshot for one frame of one plot.
// The engine never talks to a windowing system itself; the host fills
// this in from whatever event source it has.
type Input struct {
	// Rect is the panel rectangle allocated to the plot, in pixels.
	// If it has no area, [Config.Size] is used at the origin instead.
	Rect math32.Box2

	// Pointer is the current pointer position in pixels, if there is one.
	Pointer option.Option[math32.Vector2]

	// Dragging is whether a primary-button drag is active on this panel.
	// A drag that started on the panel stays active outside of it.
	Dragging bool

	// Scroll is this frame's vertical scroll delta. It is clamped to
	// [-10, 10] before zooming.
	Scroll float32
}
