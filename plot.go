// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eplot is an embeddable, immediate-mode 2D plotting engine.
// Each frame the host supplies an [Input] snapshot and a [Painter], and
// submits items in data coordinates through [Plot.Show]; the engine keeps
// per-plot pan/zoom state in a [Registry] across frames, picks nice tick
// increments at any zoom level, and maps everything through the frame's
// [Transform]. It has no windowing or font dependencies of its own; the
// ebitenpaint package provides a ready-made backend.
package eplot

//go:generate core generate

import (
	"cogentcore.org/core/base/option"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// defaultSize is the fallback panel size when neither [Input.Rect] nor
// [Config.Size] provides one.
const defaultSize = 100

// Config is the immutable per-plot configuration passed to [Plot.Show].
// A nil Config means all defaults. Optional fields resolve their defaults
// with [option.Option.Or].
type Config struct {
	// Title is drawn centered above the plotting area.
	Title string

	// XAxisLabel is drawn centered below the X tick labels.
	XAxisLabel string

	// YAxisLabel reserves margin space at the left edge. It is not drawn:
	// the [Painter] contract has no rotated text.
	YAxisLabel string

	// Size is the panel size used when [Input.Rect] has no area, for
	// hosts that do not manage layout. Defaults to 100 x 100.
	Size math32.Vector2

	// XRange is the initial X axis range. It applies only the first time
	// a plot label is shown; after that, pan and zoom state wins.
	XRange option.Option[AxisRange]

	// YRange is the initial Y axis range, first show only, like XRange.
	YRange option.Option[AxisRange]

	// ShowCursor toggles the data-space cursor readout in the bottom
	// right corner. Default on.
	ShowCursor option.Option[bool]

	// AxisEqual locks the aspect ratio so one X data unit spans the same
	// number of pixels as one Y data unit. Default on.
	AxisEqual option.Option[bool]
}

// Response reports how the pointer interacted with the plot during one
// [Plot.Show] frame.
type Response struct {
	// Hovered is whether the pointer was inside the plotting rectangle.
	Hovered bool

	// Dragged is whether a drag pan moved the ranges this frame.
	Dragged bool

	// Zoomed is whether a scroll zoom changed the ranges this frame.
	Zoomed bool
}

// Plot runs one frame of one named plot. Obtain it from [Registry.Plot];
// the label selects which [PlotMemory] the frame reads and writes.
type Plot struct {
	reg   *Registry
	id    PlotID
	label string
}

// PlotUI is the handle passed to the contents callback of [Plot.Show],
// for submitting items and querying the pointer in data space.
type PlotUI struct {
	painter  Painter
	tf       Transform
	mousePos option.Option[math32.Vector2]
	hovered  bool
}

// Add validates the item's preconditions and then paints it immediately
// through this frame's transform. The item is not retained, so the same
// item can be submitted again next frame under a different viewport.
func (pu *PlotUI) Add(it Item) {
	validateItem(it)
	paintItem(pu.painter, &pu.tf, it)
}

// MousePosition returns the pointer position mapped to data coordinates,
// whether or not it is inside the plotting rectangle; invalid when there
// is no pointer this frame.
func (pu *PlotUI) MousePosition() option.Option[math32.Vector2] {
	return pu.mousePos
}

// Hovered reports whether the pointer is inside the plotting rectangle.
func (pu *PlotUI) Hovered() bool {
	return pu.hovered
}

// Show runs one frame: it applies drag and zoom input to the plot's
// remembered axis ranges, draws the frame chrome and ticks, invokes
// contents (which may be nil) with a [PlotUI] to submit items, draws the
// cursor readout, and persists the state back into the plot's memory.
func (plt *Plot) Show(cfg *Config, pt Painter, in Input, contents func(*PlotUI)) Response {
	if pt == nil {
		panic("eplot: Show requires a Painter")
	}
	if cfg == nil {
		cfg = &Config{}
	}
	mem := plt.reg.acquire(plt.id, plt.label)
	defer plt.reg.release(mem)

	if mem.state == memoryCreated {
		if cfg.XRange.Valid {
			mem.XRange = cfg.XRange.Value
		}
		if cfg.YRange.Valid {
			mem.YRange = cfg.YRange.Value
		}
		mem.state = memoryConfigured
	}
	xr, yr := mem.XRange, mem.YRange

	rect := panelRect(cfg, in)
	prect := plotRect(cfg, rect)
	pw, ph := prect.Size().X, prect.Size().Y

	if cfg.AxisEqual.Or(true) {
		ratio := ph / clampDenom(pw)
		maxHalf := math32.Max(xr.Extent(), yr.Extent()) / 2
		if ratio > 1 {
			c := xr.Middle()
			xr.Start, xr.End = c-maxHalf/ratio, c+maxHalf/ratio
		} else {
			c := yr.Middle()
			yr.Start, yr.End = c-maxHalf*ratio, c+maxHalf*ratio
		}
	}

	xpix := minmax.F32{Min: prect.Min.X, Max: prect.Max.X}
	ypix := minmax.F32{Min: prect.Min.Y, Max: prect.Max.Y}

	// Pan: deltas are computed in data space using the pre-drag ranges,
	// from the raw pixel positions of this and the previous frame.
	dragged := false
	if in.Dragging && in.Pointer.Valid {
		pos := in.Pointer.Value
		cur := math32.Vec2(
			xr.PixelToAxis(xpix, pos.X, false),
			yr.PixelToAxis(ypix, pos.Y, true),
		)
		if lp := mem.LastDragPos; lp.Valid {
			last := math32.Vec2(
				xr.PixelToAxis(xpix, lp.Value.X, false),
				yr.PixelToAxis(ypix, lp.Value.Y, true),
			)
			delta := last.Sub(cur)
			xr.Translate(delta.X)
			yr.Translate(delta.Y)
			dragged = true
		}
		mem.LastDragPos.Set(pos)
	} else {
		mem.LastDragPos.Clear()
	}

	zoomed := false
	scroll := math32.Clamp(in.Scroll, -10, 10)
	if scroll != 0 && in.Pointer.Valid && prect.ContainsPoint(in.Pointer.Value) {
		pos := in.Pointer.Value
		leftDist := (pos.X - prect.Min.X) / clampDenom(pw)
		bottomDist := (prect.Max.Y - pos.Y) / clampDenom(ph)
		amount := -0.01 * scroll
		xr.Zoom(amount, leftDist)
		yr.Zoom(amount, bottomDist)
		zoomed = true
	}

	tf := Transform{X: xr, Y: yr, Rect: prect}

	drawChrome(pt, cfg, &tf)

	hovered := in.Pointer.Valid && prect.ContainsPoint(in.Pointer.Value)
	pu := &PlotUI{painter: pt, tf: tf, hovered: hovered}
	if in.Pointer.Valid {
		pu.mousePos.Set(tf.ToData(in.Pointer.Value))
	}

	pt.PushClip(prect)
	if contents != nil {
		contents(pu)
	}
	if cfg.ShowCursor.Or(true) && hovered {
		drawReadout(pt, &tf, pu.mousePos.Value)
	}
	pt.PopClip()

	mem.XRange, mem.YRange = xr, yr
	return Response{Hovered: hovered, Dragged: dragged, Zoomed: zoomed}
}

// panelRect resolves the panel rectangle from the input, falling back to
// [Config.Size] at the origin for hosts without layout.
func panelRect(cfg *Config, in Input) math32.Box2 {
	sz := in.Rect.Size()
	if sz.X > 0 && sz.Y > 0 {
		return in.Rect
	}
	sz = cfg.Size
	if sz.X <= 0 {
		sz.X = defaultSize
	}
	if sz.Y <= 0 {
		sz.Y = defaultSize
	}
	return math32.Box2{Max: sz}
}
