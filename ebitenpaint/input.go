// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ebitenpaint

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/eplot"
	"github.com/hajimehoshi/ebiten/v2"
)

// wheelScale converts wheel notches to scroll units; one notch is a full
// scroll step of 10, so a notch zooms by 10%.
const wheelScale = 10

// Snapshot collects Ebitengine's pointer state for one frame of a plot
// occupying the given panel rectangle. Dragging follows the primary mouse
// button, and the vertical wheel drives zoom.
func Snapshot(rect math32.Box2) eplot.Input {
	in := eplot.Input{Rect: rect}
	x, y := ebiten.CursorPosition()
	in.Pointer.Set(math32.Vec2(float32(x), float32(y)))
	in.Dragging = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	_, wy := ebiten.Wheel()
	in.Scroll = float32(wy) * wheelScale
	return in
}
