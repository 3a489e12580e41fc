// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eplot

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Painter is the primitive drawing surface the engine renders through.
// All geometry is in pixel space. Calls are synchronous and never fail;
// hosts that cannot draw simply drop the calls. A nil fill color fills
// nothing, and a [Stroke] with zero width or nil color strokes nothing.
type Painter interface {
	// Rect fills and strokes an axis-aligned rectangle.
	Rect(rect math32.Box2, fill color.Color, stroke Stroke)

	// LineSegment strokes a straight segment from a to b.
	LineSegment(a, b math32.Vector2, stroke Stroke)

	// Circle fills and strokes a circle.
	Circle(center math32.Vector2, radius float32, fill color.Color, stroke Stroke)

	// Polygon fills and strokes a closed polygon; the closing edge from
	// the last point back to the first is implied.
	Polygon(points []math32.Vector2, fill color.Color, stroke Stroke)

	// Text draws one line of text positioned by anchor relative to pos.
	Text(pos math32.Vector2, anchor TextAnchor, text string, clr color.Color)

	// Arrow strokes an arrow from a to b with the head at b.
	Arrow(a, b math32.Vector2, stroke Stroke)

	// PushClip restricts subsequent drawing to rect, intersected with
	// any clip already in effect.
	PushClip(rect math32.Box2)

	// PopClip restores the clip in effect before the matching PushClip.
	PopClip()
}

// Stroke describes how lines and outlines are drawn.
type Stroke struct {
	// Width is the line width in pixels; 0 disables stroking.
	Width float32

	// Color is the stroke color; nil disables stroking.
	Color color.Color
}

// Visible reports whether this stroke draws anything.
func (st Stroke) Visible() bool {
	return st.Width > 0 && st.Color != nil
}

// Aligns positions text relative to its anchor point along one axis.
// The zero value is [Center], the default for plot items.
type Aligns int32 //enums:enum

const (
	// Center centers the text on the anchor point.
	Center Aligns = iota

	// Start aligns the left or top edge to the anchor point.
	Start

	// End aligns the right or bottom edge to the anchor point.
	End
)

// TextAnchor aligns text relative to its anchor position on both axes.
// The zero value centers on both.
type TextAnchor struct {
	X Aligns
	Y Aligns
}
