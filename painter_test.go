// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eplot

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// recordingPainter is a [Painter] that records every primitive call, in
// order, so tests can assert on the painted geometry.
type recordingPainter struct {
	ops      []string
	rects    []paintedRect
	segments []paintedSegment
	circles  []paintedCircle
	polygons []paintedPolygon
	texts    []paintedText
	arrows   []paintedArrow
	clips    int
	maxClips int
}

type paintedRect struct {
	rect   math32.Box2
	fill   color.Color
	stroke Stroke
}

type paintedSegment struct {
	a, b   math32.Vector2
	stroke Stroke
}

type paintedCircle struct {
	center math32.Vector2
	radius float32
	fill   color.Color
	stroke Stroke
}

type paintedPolygon struct {
	points []math32.Vector2
	fill   color.Color
	stroke Stroke
}

type paintedText struct {
	pos    math32.Vector2
	anchor TextAnchor
	text   string
	color  color.Color
}

type paintedArrow struct {
	a, b   math32.Vector2
	stroke Stroke
}

// calls returns the number of primitive paint calls made so far.
func (rp *recordingPainter) calls() int {
	return len(rp.ops)
}

func (rp *recordingPainter) Rect(rect math32.Box2, fill color.Color, stroke Stroke) {
	rp.ops = append(rp.ops, "rect")
	rp.rects = append(rp.rects, paintedRect{rect, fill, stroke})
}

func (rp *recordingPainter) LineSegment(a, b math32.Vector2, stroke Stroke) {
	rp.ops = append(rp.ops, "segment")
	rp.segments = append(rp.segments, paintedSegment{a, b, stroke})
}

func (rp *recordingPainter) Circle(center math32.Vector2, radius float32, fill color.Color, stroke Stroke) {
	rp.ops = append(rp.ops, "circle")
	rp.circles = append(rp.circles, paintedCircle{center, radius, fill, stroke})
}

func (rp *recordingPainter) Polygon(points []math32.Vector2, fill color.Color, stroke Stroke) {
	rp.ops = append(rp.ops, "polygon")
	rp.polygons = append(rp.polygons, paintedPolygon{points, fill, stroke})
}

func (rp *recordingPainter) Text(pos math32.Vector2, anchor TextAnchor, text string, clr color.Color) {
	rp.ops = append(rp.ops, "text")
	rp.texts = append(rp.texts, paintedText{pos, anchor, text, clr})
}

func (rp *recordingPainter) Arrow(a, b math32.Vector2, stroke Stroke) {
	rp.ops = append(rp.ops, "arrow")
	rp.arrows = append(rp.arrows, paintedArrow{a, b, stroke})
}

func (rp *recordingPainter) PushClip(rect math32.Box2) {
	rp.clips++
	if rp.clips > rp.maxClips {
		rp.maxClips = rp.clips
	}
}

func (rp *recordingPainter) PopClip() {
	rp.clips--
}
