// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eplot

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// Margins between the panel rectangle and the plotting rectangle, leaving
// room for tick labels and, when present, the title and axis labels.
const (
	leftMargin   = 40
	rightMargin  = 10
	topMargin    = 10
	bottomMargin = 40

	// labelPad is the extra margin reserved by a title or axis label.
	labelPad = 10

	// tickLen is the length of the tick marks on the axis edges.
	tickLen = 5
)

var (
	plotFill     = color.RGBA{10, 10, 10, 255}
	borderStroke = Stroke{Width: 1, Color: color.RGBA{150, 150, 150, 150}}
	tickStroke   = Stroke{Width: 1, Color: colors.White}
	gridStroke   = Stroke{Width: 0.5, Color: color.RGBA{5, 5, 5, 5}}
	textColor    = colors.White
)

// plotRect subtracts the margins from the panel rectangle.
func plotRect(cfg *Config, panel math32.Box2) math32.Box2 {
	left, right := float32(leftMargin), float32(rightMargin)
	top, bottom := float32(topMargin), float32(bottomMargin)
	if cfg.Title != "" {
		top += labelPad
	}
	if cfg.XAxisLabel != "" {
		bottom += labelPad
	}
	if cfg.YAxisLabel != "" {
		left += labelPad
	}
	return math32.Box2{
		Min: panel.Min.Add(math32.Vec2(left, top)),
		Max: panel.Max.Sub(math32.Vec2(right, bottom)),
	}
}

// drawChrome paints the plot background, border, title, axis label, and
// the tick set. It runs before the clip is pushed, as the labels live in
// the margins.
func drawChrome(pt Painter, cfg *Config, tf *Transform) {
	rect := tf.Rect
	pt.Rect(rect, plotFill, borderStroke)

	cx := (rect.Min.X + rect.Max.X) / 2
	if cfg.Title != "" {
		pt.Text(math32.Vec2(cx, rect.Min.Y-2), TextAnchor{X: Center, Y: End}, cfg.Title, textColor)
	}
	if cfg.XAxisLabel != "" {
		pt.Text(math32.Vec2(cx, rect.Max.Y+25), TextAnchor{X: Center, Y: Start}, cfg.XAxisLabel, textColor)
	}

	drawTicks(pt, tf)
}

// drawTicks paints tick marks, gridlines, and numeric labels for both
// axes. The increment is shared between the axes, derived from the
// smaller extent, so gridlines form square cells under the aspect lock.
func drawTicks(pt Painter, tf *Transform) {
	inc := tickIncrement(math32.Min(tf.X.Extent(), tf.Y.Extent()))
	if inc <= 0 {
		return
	}
	w, h := tf.Rect.Size().X, tf.Rect.Size().Y

	for _, v := range tickValues(tf.X, inc) {
		p := tf.ToPixel(math32.Vec2(v, tf.Y.Start))
		pt.LineSegment(p, p.Add(math32.Vec2(0, -tickLen)), tickStroke)
		pt.LineSegment(p, p.Add(math32.Vec2(0, -h)), gridStroke)
		pt.Text(p.Add(math32.Vec2(0, 15)), TextAnchor{}, formatTick(v), textColor)
	}
	for _, v := range tickValues(tf.Y, inc) {
		p := tf.ToPixel(math32.Vec2(tf.X.Start, v))
		pt.LineSegment(p, p.Add(math32.Vec2(tickLen, 0)), tickStroke)
		pt.LineSegment(p, p.Add(math32.Vec2(w, 0)), gridStroke)
		pt.Text(p.Sub(math32.Vec2(15, 0)), TextAnchor{}, formatTick(v), textColor)
	}
}

// drawReadout paints the data-space cursor position in the bottom right
// corner of the plotting rectangle.
func drawReadout(pt Painter, tf *Transform, pos math32.Vector2) {
	txt := fmt.Sprintf("(%.1f, %.1f)", pos.X, pos.Y)
	pt.Text(tf.Rect.Max.Sub(math32.Vec2(10, 10)), TextAnchor{X: End, Y: End}, txt, textColor)
}

// formatTick renders a tick label with one decimal place.
func formatTick(v float32) string {
	return fmt.Sprintf("%.1f", v)
}
