// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

const DefaultMargin = 10

// GaugeCard surrounds a gauge with a titled, rounded border.
type GaugeCard struct {
	Title        string
	Margin       unit.Dp
	Padding      unit.Dp
	BorderWidth  unit.Dp
	CornerRadius unit.Dp
}

func NewGaugeCard(title string) GaugeCard {
	return GaugeCard{
		Title:        title,
		Margin:       DefaultMargin,
		Padding:      DefaultMargin,
		BorderWidth:  unit.Dp(1),
		CornerRadius: unit.Dp(4),
	}
}

// A faint border in the theme foreground color.
func (c GaugeCard) borderColor(th *material.Theme) color.NRGBA {
	bc := th.Fg
	bc.A = 0x40
	return bc
}

func (c GaugeCard) Layout(gtx layout.Context, th *material.Theme, gauge layout.Widget) layout.Dimensions {
	return layout.UniformInset(c.Margin).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		border := widget.Border{Color: c.borderColor(th), Width: c.BorderWidth, CornerRadius: c.CornerRadius}
		return border.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Background{}.Layout(gtx,
				func(gtx layout.Context) layout.Dimensions {
					r := gtx.Dp(c.CornerRadius)
					paint.FillShape(gtx.Ops, th.Bg, clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, r).Op(gtx.Ops))
					return layout.Dimensions{Size: gtx.Constraints.Min}
				},
				func(gtx layout.Context) layout.Dimensions {
					return layout.UniformInset(c.Padding).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						if c.Title == "" {
							return gauge(gtx)
						}
						return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
							layout.Rigid(SubHeading(th, c.Title).Layout),
							layout.Rigid(gauge),
						)
					})
				},
			)
		})
	})
}
