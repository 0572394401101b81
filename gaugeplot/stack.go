// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeplot

import (
	"gaugemini/gaugeval"
	"gaugemini/widgets"

	"gioui.org/f32"
	"github.com/samber/lo"
)

// Bar labels end this far left of the bars.
const labelGap = 10

type StackInput struct {
	Series  gaugeval.ValueSeries
	Colors  *ColorSet
	Theme   *widgets.GaugeTheme
	Width   float32
	Format  gaugeval.Formatter
	Metrics Metrics
}

type StackResult struct {
	Bars        []Bar
	BarWidth    float32
	TotalHeight float32
	LabelMargin float32
}

func barLabel(th *widgets.GaugeTheme, field string, i int) *Text {
	label, ok := th.BarLabel(field)
	if !ok || label == "" {
		return nil
	}
	return &Text{
		Key:     LabelKey(i),
		Content: label,
		Pos:     f32.Pt(-labelGap, th.MaxBarHeight()/2),
		Anchor:  AnchorEnd,
		VAlign:  VAlignMiddle,
		Size:    th.LabelBarsFontSize,
		Color:   th.LabelBarsFontColor.NRGBA(),
	}
}

// LabelMargin is the width of the widest measured bar label.
func LabelMargin(series gaugeval.ValueSeries, m Metrics) float32 {
	widths := lo.FilterMap(series, func(_ gaugeval.FieldValue, i int) (float32, bool) {
		tm, ok := m[LabelKey(i)]
		return tm.Width, ok
	})
	return max(lo.Max(widths), 0)
}

// Stack lays out one bar per series element, from top to bottom.
func Stack(in StackInput) StackResult {
	th := in.Theme
	margin := LabelMargin(in.Series, in.Metrics)
	barWidth := max(in.Width-2*th.SidePaddings-margin, 0)
	step := th.MaxBarHeight() + th.BarPaddings
	res := StackResult{
		Bars:        make([]Bar, 0, len(in.Series)),
		BarWidth:    barWidth,
		TotalHeight: float32(len(in.Series)) * step,
		LabelMargin: margin,
	}
	for i, fv := range in.Series {
		bar := LayoutBar(BarInput{
			Index:   i,
			Field:   fv.Field,
			Value:   fv.Value,
			Y:       float32(i) * step,
			Width:   barWidth,
			Colors:  in.Colors,
			Theme:   th,
			Format:  in.Format,
			Metrics: in.Metrics,
		})
		bar.Label = barLabel(th, fv.Field, i)
		res.Bars = append(res.Bars, bar)
	}
	return res
}
