// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeplot

import (
	"fmt"
	"gaugemini/gaugeval"
	"gaugemini/widgets"

	"gioui.org/f32"
)

const (
	tickLength         = 5
	boundaryTickLength = 3
	axisLabelOffset    = 8
)

// Tick is a single axis mark. Boundary ticks are placed at min and max.
type Tick struct {
	Fraction float64
	Value    float64
	Anchor   Anchor
	Label    string
	Boundary bool
}

// Length of the tick mark.
func (t Tick) Length() float32 {
	if t.Boundary {
		return boundaryTickLength
	}
	return tickLength
}

func axisValues(cs *ColorSet, steps *gaugeval.AxesSteps) []float64 {
	switch steps.Kind {
	case gaugeval.AxesStepsList:
		return steps.Values
	case gaugeval.AxesStepsThresholds:
		values := make([]float64, len(cs.Thresholds))
		for i, s := range cs.Thresholds {
			values[i] = s.Value
		}
		return values
	case gaugeval.AxesStepsCount:
		values := make([]float64, steps.Count)
		step := cs.Span() / float64(steps.Count+1)
		for k := range values {
			values[k] = cs.Min.Value + float64(k+1)*step
		}
		return values
	}
	return nil
}

// Ticks generates the axis ticks. Interior ticks come first, followed by the min and max boundary ticks.
// No ticks are generated if steps is nil.
func Ticks(cs *ColorSet, steps *gaugeval.AxesSteps, format gaugeval.Formatter) ([]Tick, error) {
	if steps == nil {
		return nil, nil
	}
	if err := steps.Validate(); err != nil {
		return nil, fmt.Errorf("axis steps: %w", err)
	}
	values := axisValues(cs, steps)
	ticks := make([]Tick, 0, len(values)+2)
	for _, v := range values {
		ticks = append(ticks, Tick{Fraction: cs.fraction(v), Value: v, Anchor: AnchorMiddle, Label: format(v)})
	}
	ticks = append(ticks,
		Tick{Fraction: 0, Value: cs.Min.Value, Anchor: AnchorStart, Label: format(cs.Min.Value), Boundary: true},
		Tick{Fraction: 1, Value: cs.Max.Value, Anchor: AnchorEnd, Label: format(cs.Max.Value), Boundary: true},
	)
	return ticks, nil
}

// axisGroup draws the axis line with its ticks and labels, starting at y.
func axisGroup(ticks []Tick, barWidth, y float32, th *widgets.GaugeTheme) *Group {
	c := th.AxesFontColor.NRGBA()
	g := &Group{Key: "axis", Offset: f32.Pt(0, y)}
	g.Add(Line{From: f32.Pt(0, 0), To: f32.Pt(barWidth, 0), Width: th.AxesStrokeWidth, Color: c})
	for i, t := range ticks {
		x := barWidth * float32(t.Fraction)
		g.Add(
			Line{From: f32.Pt(x, 0), To: f32.Pt(x, t.Length()), Width: th.AxesStrokeWidth, Color: c},
			Text{
				Key:     AxisKey(i),
				Content: t.Label,
				Pos:     f32.Pt(x, axisLabelOffset),
				Anchor:  t.Anchor,
				VAlign:  VAlignTop,
				Size:    th.AxesFontSize,
				Color:   c,
			},
		)
	}
	return g
}
