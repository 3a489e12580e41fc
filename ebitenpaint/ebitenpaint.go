// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ebitenpaint implements the eplot [eplot.Painter] on an Ebitengine
// image, so a plot can be embedded in any Ebitengine game's Draw pass.
// It also snapshots Ebitengine's cursor, mouse button, and wheel state
// into an [eplot.Input].
package ebitenpaint

import (
	"image"
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/eplot"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// whiteSubImage is the uniform source for DrawTriangles fills, taken from
// the interior of a 3x3 image so that antialiased edges do not bleed.
var whiteSubImage *ebiten.Image

func init() {
	whiteImage := ebiten.NewImage(3, 3)
	whiteImage.Fill(color.White)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Painter draws eplot primitives onto an [ebiten.Image]. Clipping uses
// subimages, so a Painter is only valid for the Draw pass it was made in.
type Painter struct {
	// Face is the font face used for text. Defaults to [basicfont.Face7x13].
	Face font.Face

	base  *ebiten.Image
	clips []image.Rectangle

	// scratch buffers reused across path fills within the frame
	vertices []ebiten.Vertex
	indices  []uint16
}

// New returns a Painter drawing into dst.
func New(dst *ebiten.Image) *Painter {
	return &Painter{base: dst}
}

func (pt *Painter) face() font.Face {
	if pt.Face != nil {
		return pt.Face
	}
	return basicfont.Face7x13
}

// dst returns the clip-restricted draw target.
func (pt *Painter) dst() *ebiten.Image {
	if len(pt.clips) == 0 {
		return pt.base
	}
	return pt.base.SubImage(pt.clips[len(pt.clips)-1]).(*ebiten.Image)
}

func (pt *Painter) Rect(rect math32.Box2, fill color.Color, stroke eplot.Stroke) {
	dst := pt.dst()
	sz := rect.Size()
	if fill != nil {
		vector.DrawFilledRect(dst, rect.Min.X, rect.Min.Y, sz.X, sz.Y, fill, true)
	}
	if stroke.Visible() {
		vector.StrokeRect(dst, rect.Min.X, rect.Min.Y, sz.X, sz.Y, stroke.Width, stroke.Color, true)
	}
}

func (pt *Painter) LineSegment(a, b math32.Vector2, stroke eplot.Stroke) {
	if !stroke.Visible() {
		return
	}
	vector.StrokeLine(pt.dst(), a.X, a.Y, b.X, b.Y, stroke.Width, stroke.Color, true)
}

func (pt *Painter) Circle(center math32.Vector2, radius float32, fill color.Color, stroke eplot.Stroke) {
	dst := pt.dst()
	if fill != nil {
		vector.DrawFilledCircle(dst, center.X, center.Y, radius, fill, true)
	}
	if stroke.Visible() {
		vector.StrokeCircle(dst, center.X, center.Y, radius, stroke.Width, stroke.Color, true)
	}
}

func (pt *Painter) Polygon(points []math32.Vector2, fill color.Color, stroke eplot.Stroke) {
	if len(points) < 2 {
		return
	}
	var path vector.Path
	path.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		path.LineTo(p.X, p.Y)
	}
	path.Close()

	if fill != nil {
		pt.vertices, pt.indices = path.AppendVerticesAndIndicesForFilling(pt.vertices[:0], pt.indices[:0])
		pt.drawTriangles(fill)
	}
	if stroke.Visible() {
		op := &vector.StrokeOptions{Width: stroke.Width}
		pt.vertices, pt.indices = path.AppendVerticesAndIndicesForStroke(pt.vertices[:0], pt.indices[:0], op)
		pt.drawTriangles(stroke.Color)
	}
}

func (pt *Painter) drawTriangles(clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range pt.vertices {
		pt.vertices[i].SrcX = 1
		pt.vertices[i].SrcY = 1
		pt.vertices[i].ColorR = float32(r) / 0xffff
		pt.vertices[i].ColorG = float32(g) / 0xffff
		pt.vertices[i].ColorB = float32(b) / 0xffff
		pt.vertices[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	op.FillRule = ebiten.NonZero
	pt.dst().DrawTriangles(pt.vertices, pt.indices, whiteSubImage, op)
}

func (pt *Painter) Text(pos math32.Vector2, anchor eplot.TextAnchor, s string, clr color.Color) {
	face := pt.face()
	bounds := text.BoundString(face, s)
	x := int(pos.X) - anchorOffset(anchor.X, bounds.Min.X, bounds.Max.X)
	y := int(pos.Y) - anchorOffset(anchor.Y, bounds.Min.Y, bounds.Max.Y)
	text.Draw(pt.dst(), s, face, x, y, clr)
}

// anchorOffset returns the offset from the text dot origin to the anchored
// edge of the string bounds along one axis.
func anchorOffset(al eplot.Aligns, lo, hi int) int {
	switch al {
	case eplot.Start:
		return lo
	case eplot.End:
		return hi
	default:
		return (lo + hi) / 2
	}
}

// arrowAngle is the angle between the shaft and each head segment.
const arrowAngle = math32.Pi / 5

func (pt *Painter) Arrow(a, b math32.Vector2, stroke eplot.Stroke) {
	if !stroke.Visible() {
		return
	}
	v := b.Sub(a)
	l := v.Length()
	if l == 0 {
		return
	}
	pt.LineSegment(a, b, stroke)
	dir := v.DivScalar(l)
	tip := l / 4
	pt.LineSegment(b, b.Sub(rotate(dir, arrowAngle).MulScalar(tip)), stroke)
	pt.LineSegment(b, b.Sub(rotate(dir, -arrowAngle).MulScalar(tip)), stroke)
}

func rotate(v math32.Vector2, angle float32) math32.Vector2 {
	sin, cos := math32.Sin(angle), math32.Cos(angle)
	return math32.Vec2(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos)
}

func (pt *Painter) PushClip(rect math32.Box2) {
	r := image.Rect(
		int(math32.Floor(rect.Min.X)), int(math32.Floor(rect.Min.Y)),
		int(math32.Ceil(rect.Max.X)), int(math32.Ceil(rect.Max.Y)),
	)
	if len(pt.clips) > 0 {
		r = r.Intersect(pt.clips[len(pt.clips)-1])
	}
	pt.clips = append(pt.clips, r)
}

func (pt *Painter) PopClip() {
	pt.clips = pt.clips[:len(pt.clips)-1]
}
