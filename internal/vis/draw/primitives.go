// Package draw provides the stateless render passes for the floor-plan
// editor: building outline, walls, openings, rooms and floor drains.
package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// Segment paints a thick line between two surface points as a filled
// quad.
func Segment(gtx layout.Context, a, b f32.Point, width float32, col color.NRGBA) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}

	dx /= length
	dy /= length
	px := -dy * width / 2
	py := dx * width / 2

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(a.X+px, a.Y+py))
	path.LineTo(f32.Pt(b.X+px, b.Y+py))
	path.LineTo(f32.Pt(b.X-px, b.Y-py))
	path.LineTo(f32.Pt(a.X-px, a.Y-py))
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// DashedSegment paints a dashed line between two surface points.
func DashedSegment(gtx layout.Context, a, b f32.Point, width, dash, gap float32, col color.NRGBA) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}

	ux := dx / length
	uy := dy / length

	for t := float32(0); t < length; t += dash + gap {
		end := t + dash
		if end > length {
			end = length
		}
		Segment(gtx,
			f32.Pt(a.X+ux*t, a.Y+uy*t),
			f32.Pt(a.X+ux*end, a.Y+uy*end),
			width, col)
	}
}

// FilledCircle paints a filled circle approximated with segments.
func FilledCircle(gtx layout.Context, center f32.Point, r float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(center.X+r, center.Y))

	segments := 16
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		x := center.X + r*float32(math.Cos(angle))
		y := center.Y + r*float32(math.Sin(angle))
		path.LineTo(f32.Pt(x, y))
	}
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// Arc paints a polyline arc centered at c from startDeg spanning
// sweepDeg (surface degrees, clockwise positive).
func Arc(gtx layout.Context, c f32.Point, r float32, startDeg, sweepDeg float64, width float32, col color.NRGBA) {
	const step = 15.0
	steps := int(math.Abs(sweepDeg)/step) + 1
	inc := sweepDeg / float64(steps)

	prev := arcPoint(c, r, startDeg)
	for i := 1; i <= steps; i++ {
		next := arcPoint(c, r, startDeg+inc*float64(i))
		Segment(gtx, prev, next, width, col)
		prev = next
	}
}

func arcPoint(c f32.Point, r float32, deg float64) f32.Point {
	rad := deg * math.Pi / 180
	return f32.Pt(
		c.X+r*float32(math.Cos(rad)),
		c.Y+r*float32(math.Sin(rad)))
}

// Quad paints the closed outline through four surface points.
func Quad(gtx layout.Context, pts [4]f32.Point, width float32, col color.NRGBA) {
	for i := 0; i < 4; i++ {
		Segment(gtx, pts[i], pts[(i+1)%4], width, col)
	}
}

// Label paints text with its top-left corner at the given surface
// position.
func Label(gtx layout.Context, th *material.Theme, at f32.Point, size float32, text string, col color.NRGBA) {
	defer op.Offset(image.Pt(int(at.X), int(at.Y))).Push(gtx.Ops).Pop()
	l := material.Label(th, unit.Sp(size), text)
	l.Color = col
	l.Layout(gtx)
}
