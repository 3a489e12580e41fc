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

// Item is one geometric element of a plot frame, submitted through
// [PlotUI.Add] in data coordinates and painted immediately through that
// frame's [Transform]. The set of items is closed: [Line], [Scatter],
// [Polygon], [Quiver], and [Text].
type Item interface {
	// item seals the set of plot items.
	item()
}

func (*Line) item()    {}
func (*Scatter) item() {}
func (*Polygon) item() {}
func (*Quiver) item()  {}
func (*Text) item()    {}

// paintItem dispatches painting over the closed [Item] set.
func paintItem(pt Painter, tf *Transform, it Item) {
	switch x := it.(type) {
	case *Line:
		x.paint(pt, tf)
	case *Scatter:
		x.paint(pt, tf)
	case *Polygon:
		x.paint(pt, tf)
	case *Quiver:
		x.paint(pt, tf)
	case *Text:
		x.paint(pt, tf)
	default:
		panic(fmt.Sprintf("eplot: unknown Item type %T", it))
	}
}

// validateItem checks caller preconditions before any paint call is made.
func validateItem(it Item) {
	switch x := it.(type) {
	case *Scatter:
		if x.Stem != nil && x.Stem.Ref.Series != nil && len(x.Stem.Ref.Series) != len(x.Points) {
			panic(fmt.Sprintf("eplot: Scatter stem Series has %d values for %d points",
				len(x.Stem.Ref.Series), len(x.Points)))
		}
	case *Line:
		if x.Fill != nil && x.Fill.Ref.Series != nil && len(x.Fill.Ref.Series) != len(x.Points) {
			panic(fmt.Sprintf("eplot: Line fill Series has %d values for %d points",
				len(x.Fill.Ref.Series), len(x.Points)))
		}
	case *Quiver:
		if len(x.Directions) != len(x.Points) {
			panic(fmt.Sprintf("eplot: Quiver has %d directions for %d points",
				len(x.Directions), len(x.Points)))
		}
	}
}

// YReference is a Y baseline for stems and area fills: either a constant
// value, or one value per point when Series is non-nil. A Series shorter
// than the point list is a caller precondition violation.
type YReference struct {
	// Constant is the baseline used while Series is nil.
	Constant float32

	// Series gives one baseline value per point when non-nil.
	Series []float32
}

// at returns the baseline for point index i.
func (yr *YReference) at(i int) float32 {
	if yr.Series != nil {
		return yr.Series[i]
	}
	return yr.Constant
}

// Text draws a string at a data-space position.
type Text struct {
	// Position is the anchor position in data coordinates.
	Position math32.Vector2

	// Text is the string to draw.
	Text string

	// Color is the text color; nil means white.
	Color color.Color

	// Anchor aligns the text relative to Position; the zero value centers it.
	Anchor TextAnchor

	// Rotation is accepted but not applied: the [Painter] contract has no
	// rotated text. Kept so callers can carry it through to richer hosts.
	Rotation float32
}

// NewText returns white, centered text at the given data position.
func NewText(pos math32.Vector2, text string) *Text {
	return &Text{Position: pos, Text: text}
}

func (tx *Text) paint(pt Painter, tf *Transform) {
	clr := tx.Color
	if clr == nil {
		clr = colors.White
	}
	pt.Text(tf.ToPixel(tx.Position), tx.Anchor, tx.Text, clr)
}

// Polygon is a closed filled shape; the edge from the last point back to
// the first is implied.
type Polygon struct {
	// Points are the vertices in data coordinates.
	Points []math32.Vector2

	// Fill is the interior color; nil fills nothing.
	Fill color.Color

	// Stroke outlines the polygon.
	Stroke Stroke
}

// NewPolygon returns a white-filled polygon with no outline.
func NewPolygon(points []math32.Vector2) *Polygon {
	return &Polygon{Points: points, Fill: colors.White}
}

func (pg *Polygon) paint(pt Painter, tf *Transform) {
	pts := make([]math32.Vector2, len(pg.Points))
	for i, p := range pg.Points {
		pts[i] = tf.ToPixel(p)
	}
	pt.Polygon(pts, pg.Fill, pg.Stroke)
}

// MarkerShapes are the marker geometries available to [Scatter].
type MarkerShapes int32 //enums:enum

const (
	// Circle is a circle of radius Size.
	Circle MarkerShapes = iota

	// Triangle is an upward-pointing triangle.
	Triangle

	// Square is an axis-aligned square of half-width Size.
	Square

	// Plus is a pair of axis-aligned segments through the point.
	Plus

	// X is a pair of diagonal segments through the point.
	X

	// Star is four segments through the point, at 45 degree steps.
	Star
)

// Stem describes the baseline segments drawn from scatter points down to
// a reference value.
type Stem struct {
	// Ref is the baseline the stems drop to.
	Ref YReference

	// Stroke draws the stem segments.
	Stroke Stroke
}

// Scatter draws a marker at each point, optionally with a stem from a
// baseline to the point.
type Scatter struct {
	// Points are the marker positions in data coordinates.
	Points []math32.Vector2

	// Shape is the marker geometry.
	Shape MarkerShapes

	// Fill is the marker fill color, for shapes that have an interior.
	Fill color.Color

	// Stroke outlines interior shapes and draws the segment shapes
	// (Plus, X, Star).
	Stroke Stroke

	// Size is the marker radius in pixels. Markers keep their pixel size
	// under zoom.
	Size float32

	// Stem, if set, draws a segment from the baseline to each point,
	// underneath the marker.
	Stem *Stem
}

// NewScatter returns a scatter of white circles of size 1.
func NewScatter(points []math32.Vector2) *Scatter {
	return &Scatter{Points: points, Shape: Circle, Fill: colors.White, Size: 1}
}

func (sc *Scatter) paint(pt Painter, tf *Transform) {
	for i, p := range sc.Points {
		tp := tf.ToPixel(p)
		if sc.Stem != nil {
			base := tf.ToPixel(math32.Vec2(p.X, sc.Stem.Ref.at(i)))
			pt.LineSegment(base, tp, sc.Stem.Stroke)
		}
		drawMarker(pt, tp, sc)
	}
}

// drawMarker draws one marker at pixel position p. Marker geometry is
// computed in pixel space from Size alone.
func drawMarker(pt Painter, p math32.Vector2, sc *Scatter) {
	size := sc.Size
	switch sc.Shape {
	case Circle:
		pt.Circle(p, size, sc.Fill, sc.Stroke)
	case Triangle:
		dx := math32.Sqrt(3) / 2 * size
		pt.Polygon([]math32.Vector2{
			p.Add(math32.Vec2(0, -size)),
			p.Add(math32.Vec2(dx, size/2)),
			p.Add(math32.Vec2(-dx, size/2)),
		}, sc.Fill, sc.Stroke)
	case Square:
		half := math32.Vector2Scalar(size)
		pt.Rect(math32.Box2{Min: p.Sub(half), Max: p.Add(half)}, sc.Fill, sc.Stroke)
	case Plus:
		pt.LineSegment(p.Sub(math32.Vec2(size, 0)), p.Add(math32.Vec2(size, 0)), sc.Stroke)
		pt.LineSegment(p.Sub(math32.Vec2(0, size)), p.Add(math32.Vec2(0, size)), sc.Stroke)
	case X:
		d := math32.Vector2Scalar(size / math32.Sqrt(2))
		pt.LineSegment(p.Sub(d), p.Add(d), sc.Stroke)
		r := math32.Vec2(-d.Y, d.X)
		pt.LineSegment(p.Sub(r), p.Add(r), sc.Stroke)
	case Star:
		for i := range 4 {
			ang := float32(i) / 8 * 2 * math32.Pi
			d := math32.Vec2(math32.Cos(ang), math32.Sin(ang)).MulScalar(size)
			pt.LineSegment(p.Sub(d), p.Add(d), sc.Stroke)
		}
	}
}

// AreaFill fills the region between a [Line] and a Y baseline.
type AreaFill struct {
	// Ref is the baseline the fill drops to.
	Ref YReference

	// Color fills the area.
	Color color.Color
}

// Line strokes a polyline through its points, optionally filling the area
// between the line and a baseline.
type Line struct {
	// Points are the polyline vertices in data coordinates.
	Points []math32.Vector2

	// Stroke draws the polyline.
	Stroke Stroke

	// Fill, if set, fills between the line and a baseline: one
	// quadrilateral per consecutive pair of points, painted before
	// the line itself.
	Fill *AreaFill
}

// NewLine returns a white line of width 1 through the given points.
func NewLine(points []math32.Vector2) *Line {
	return &Line{Points: points, Stroke: Stroke{Width: 1, Color: colors.White}}
}

func (ln *Line) paint(pt Painter, tf *Transform) {
	if ln.Fill != nil {
		for i := 0; i+1 < len(ln.Points); i++ {
			p0, p1 := ln.Points[i], ln.Points[i+1]
			pt.Polygon([]math32.Vector2{
				tf.ToPixel(p1),
				tf.ToPixel(p0),
				tf.ToPixel(math32.Vec2(p0.X, ln.Fill.Ref.at(i))),
				tf.ToPixel(math32.Vec2(p1.X, ln.Fill.Ref.at(i+1))),
			}, ln.Fill.Color, Stroke{})
		}
	}
	for i := 0; i+1 < len(ln.Points); i++ {
		pt.LineSegment(tf.ToPixel(ln.Points[i]), tf.ToPixel(ln.Points[i+1]), ln.Stroke)
	}
}

// Quiver draws one arrow per point, from the point along its direction
// vector. Points and Directions are parallel and must have equal length.
type Quiver struct {
	// Points are the arrow base positions in data coordinates.
	Points []math32.Vector2

	// Directions are the arrow vectors in data coordinates, one per point.
	Directions []math32.Vector2

	// Stroke draws the arrows.
	Stroke Stroke
}

// NewQuiver returns a white quiver of width 1 for the given field.
func NewQuiver(points, directions []math32.Vector2) *Quiver {
	return &Quiver{Points: points, Directions: directions,
		Stroke: Stroke{Width: 1, Color: colors.White}}
}

func (qv *Quiver) paint(pt Painter, tf *Transform) {
	for i, p := range qv.Points {
		pt.Arrow(tf.ToPixel(p), tf.ToPixel(p.Add(qv.Directions[i])), qv.Stroke)
	}
}
