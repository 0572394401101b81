// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
)

// ErrorField takes the place of a gauge which could not be rendered.
type ErrorField struct {
	Background color.NRGBA
}

func NewErrorField() *ErrorField {
	return &ErrorField{Background: color.NRGBA{R: 150, G: 0, B: 0, A: 250}}
}

func (f *ErrorField) Layout(err error, gtx layout.Context, th *material.Theme) layout.Dimensions {
	if err == nil {
		return layout.Dimensions{}
	}
	macro := op.Record(gtx.Ops)
	lbl := material.Body1(th, err.Error())
	lbl.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	dims := lbl.Layout(gtx)
	call := macro.Stop()

	clipRect := image.Rectangle{Max: image.Point{X: gtx.Dp(50) + dims.Size.X, Y: gtx.Dp(40) + dims.Size.Y}}
	defer clip.Rect(clipRect).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, f.Background)

	textArea := op.Offset(image.Point{X: clipRect.Min.X + gtx.Dp(25), Y: clipRect.Min.Y + gtx.Dp(20)}).Push(gtx.Ops)
	// Run recorded drawing.
	call.Add(gtx.Ops)
	textArea.Pop()
	return layout.Dimensions{Size: clipRect.Size()}
}
