// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeplot

import (
	"fmt"
	"gaugemini/gaugeval"
	"gaugemini/widgets"

	"gioui.org/f32"
)

// Formatters convert bar values and axis values to text.
type Formatters struct {
	BarValue gaugeval.Formatter
	Axes     gaugeval.Formatter
}

func NewFormatters(th *widgets.GaugeTheme) Formatters {
	return Formatters{
		BarValue: gaugeval.NewFormatter(th.ValueFormat),
		Axes:     gaugeval.NewFormatter(th.AxesFormat),
	}
}

// Gauge lays out values using a theme, within a fixed viewport.
// The theme is only read, so it can be shared between gauges.
type Gauge struct {
	Theme  *widgets.GaugeTheme
	Format Formatters
	Width  float32
	Height float32
}

func NewGauge(th *widgets.GaugeTheme, width, height float32) *Gauge {
	return &Gauge{
		Theme:  th,
		Format: NewFormatters(th),
		Width:  width,
		Height: height,
	}
}

// LayoutProvisional runs the first pass, without any text metrics.
// The resulting scene is only intended to be measured.
func (g *Gauge) LayoutProvisional(values gaugeval.ValueSeries) (*Scene, error) {
	return g.layout(values, nil, false)
}

// Measure returns the text metrics of a provisional scene.
func (g *Gauge) Measure(s *Scene, m Measurer) Metrics {
	return Measure(s, m)
}

// LayoutFinal runs the corrective pass using the metrics of the provisional pass and centers the result.
func (g *Gauge) LayoutFinal(values gaugeval.ValueSeries, metrics Metrics) (*Scene, error) {
	s, err := g.layout(values, metrics, true)
	if err != nil {
		return nil, err
	}
	AutoCenter(s, metrics)
	return s, nil
}

// Render runs both layout passes with a single measurement in between.
func (g *Gauge) Render(values gaugeval.ValueSeries, m Measurer) (*Scene, Metrics, error) {
	provisional, err := g.LayoutProvisional(values)
	if err != nil {
		return nil, nil, err
	}
	metrics := g.Measure(provisional, m)
	s, err := g.LayoutFinal(values, metrics)
	if err != nil {
		return nil, nil, err
	}
	return s, metrics, nil
}

func (g *Gauge) layout(values gaugeval.ValueSeries, metrics Metrics, final bool) (*Scene, error) {
	th := g.Theme
	// Configuration errors are detected before any geometry is created.
	cs, err := ResolveColorSet(th.Colors, th.ColorSecondary)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve gauge colors: %w", err)
	}
	ticks, err := Ticks(cs, th.AxesSteps, g.Format.Axes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate gauge axis: %w", err)
	}

	st := Stack(StackInput{
		Series:  values,
		Colors:  cs,
		Theme:   th,
		Width:   g.Width,
		Format:  g.Format.BarValue,
		Metrics: metrics,
	})

	root := &Group{Key: "root"}
	if th.LabelMain != "" {
		root.Add(Text{
			Key:     TitleKey,
			Content: th.LabelMain,
			Pos:     f32.Pt(0, -2*th.BarPaddings),
			Anchor:  AnchorStart,
			VAlign:  VAlignBaseline,
			Size:    th.LabelMainFontSize,
			Color:   th.LabelMainFontColor.NRGBA(),
		})
	}
	for _, b := range st.Bars {
		root.Add(b.Group(th))
	}
	if len(ticks) > 0 {
		root.Add(axisGroup(ticks, st.BarWidth, st.TotalHeight+th.BarPaddings, th))
	}
	if len(st.Bars) > 0 {
		g.addTargetLabels(root, cs, st.BarWidth)
	}

	return &Scene{
		Root:        root,
		Bars:        st.Bars,
		Ticks:       ticks,
		Width:       g.Width,
		Height:      g.Height,
		BarWidth:    st.BarWidth,
		TotalHeight: st.TotalHeight,
		LabelMargin: st.LabelMargin,
		Final:       final,
	}, nil
}

// Target values are shown once, above the first bar.
func (g *Gauge) addTargetLabels(root *Group, cs *ColorSet, barWidth float32) {
	th := g.Theme
	for i, t := range cs.Targets {
		root.Add(Text{
			Key:     TargetKey(i),
			Content: g.Format.Axes(t.Value),
			Pos:     f32.Pt(barWidth*float32(cs.fraction(t.Value)), -targetOverhang-2),
			Anchor:  AnchorMiddle,
			VAlign:  VAlignBaseline,
			Size:    th.AxesFontSize,
			Color:   t.Color,
		})
	}
}
