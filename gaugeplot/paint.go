// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeplot

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	// The builtin gio stroke has a lot of issues, one being that horizontal and vertical lines
	// may have different thickness, even if the same width is specified.
	"gioui.org/x/stroke"
)

// Upper limit for label layout, labels are never wrapped.
const maxTextPx = 1 << 14

func pxPerUnit(gtx layout.Context) float32 {
	if gtx.Metric.PxPerDp == 0 {
		return 1
	}
	return gtx.Metric.PxPerDp
}

func recordText(t Text, gtx layout.Context, th *material.Theme) (op.CallOp, image.Point) {
	gtx.Constraints = layout.Constraints{Max: image.Pt(maxTextPx, maxTextPx)}
	macro := op.Record(gtx.Ops)
	lbl := material.Label(th, unit.Sp(t.Size), t.Content)
	lbl.Color = t.Color
	lbl.Alignment = text.Start
	lbl.MaxLines = 1
	dims := lbl.Layout(gtx)
	return macro.Stop(), dims.Size
}

// GioMeasurer measures text using the shaper of a material theme.
type GioMeasurer struct {
	gtx layout.Context
	th  *material.Theme
}

func NewGioMeasurer(gtx layout.Context, th *material.Theme) *GioMeasurer {
	return &GioMeasurer{gtx: gtx, th: th}
}

func (m *GioMeasurer) MeasureText(t Text) TextMetrics {
	if t.Content == "" {
		return TextMetrics{}
	}
	// Measuring must not draw anything.
	var ops op.Ops
	gtx := m.gtx
	gtx.Ops = &ops
	_, size := recordText(t, gtx, m.th)
	scale := pxPerUnit(gtx)
	return TextMetrics{Width: float32(size.X) / scale, Height: float32(size.Y) / scale}
}

type scenePainter struct {
	gtx   layout.Context
	th    *material.Theme
	scale float32
}

// PaintScene draws a final scene. Scene units are scaled by the device pixels per dp.
func PaintScene(gtx layout.Context, th *material.Theme, s *Scene) error {
	if !s.Final {
		return ErrProvisionalScene
	}
	p := scenePainter{gtx: gtx, th: th, scale: pxPerUnit(gtx)}
	defer clip.Rect{Max: p.rect(Box{Max: f32.Pt(s.Width, s.Height)}).Max}.Push(gtx.Ops).Pop()
	p.paintGroup(s.Root)
	return nil
}

func (p *scenePainter) pt(v f32.Point) f32.Point {
	return v.Mul(p.scale)
}

func (p *scenePainter) px(v float32) int {
	return int(math.Round(float64(v * p.scale)))
}

func (p *scenePainter) rect(b Box) image.Rectangle {
	return image.Rect(p.px(b.Min.X), p.px(b.Min.Y), p.px(b.Max.X), p.px(b.Max.Y))
}

func (p *scenePainter) paintGroup(g *Group) {
	ops := p.gtx.Ops
	defer op.Affine(f32.Affine2D{}.Offset(p.pt(g.Offset))).Push(ops).Pop()
	if g.Clip != nil {
		defer clip.UniformRRect(p.rect(g.Clip.Box), p.px(g.Clip.Radius)).Push(ops).Pop()
	}
	for _, item := range g.Items {
		switch v := item.(type) {
		case Rect:
			p.paintRect(v)
		case Line:
			p.paintLine(v)
		case Text:
			p.paintText(v)
		case *Group:
			p.paintGroup(v)
		}
	}
}

func (p *scenePainter) paintRect(r Rect) {
	ops := p.gtx.Ops
	shape := clip.UniformRRect(p.rect(r.Box), p.px(r.Radius))
	if r.Gradient == nil {
		paint.FillShape(ops, r.Color, shape.Op(ops))
		return
	}
	defer shape.Push(ops).Pop()
	paint.LinearGradientOp{
		Stop1:  p.pt(r.Min),
		Color1: r.Gradient.From,
		Stop2:  p.pt(f32.Pt(r.Max.X, r.Min.Y)),
		Color2: r.Gradient.To,
	}.Add(ops)
	paint.PaintOp{}.Add(ops)
}

func (p *scenePainter) strokeLine(from, to f32.Point, width float32, c color.NRGBA) {
	var path stroke.Path
	path.Segments = []stroke.Segment{
		stroke.MoveTo(p.pt(from)),
		stroke.LineTo(p.pt(to)),
	}
	paint.FillShape(
		p.gtx.Ops,
		c,
		stroke.Stroke{Path: path, Width: width * p.scale, Cap: stroke.RoundCap}.Op(p.gtx.Ops),
	)
}

func (p *scenePainter) paintLine(l Line) {
	if l.Width <= 0 {
		return
	}
	p.strokeLine(l.From, l.To, l.Width, l.Color)
}

func (p *scenePainter) paintText(t Text) {
	if t.Content == "" {
		return
	}
	call, size := recordText(t, p.gtx, p.th)
	box := t.Box(TextMetrics{Width: float32(size.X) / p.scale, Height: float32(size.Y) / p.scale})
	stack := op.Offset(image.Pt(p.px(box.Min.X), p.px(box.Min.Y))).Push(p.gtx.Ops)
	// Run recorded drawing.
	call.Add(p.gtx.Ops)
	stack.Pop()
}
