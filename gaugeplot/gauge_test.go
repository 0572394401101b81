// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeplot

import (
	"gaugemini/gaugeval"
	"gaugemini/widgets"
	"testing"

	"gioui.org/f32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGauge() *Gauge {
	th := widgets.NewBulletGaugeTheme()
	th.LabelMain = "Load"
	th.LabelBars = []widgets.BarLabel{{Field: "cpu", Label: "CPU"}, {Field: "mem", Label: "Memory"}}
	return NewGauge(th, 400, 200)
}

func TestGaugeProvisionalScene(t *testing.T) {
	g := newTestGauge()
	s, err := g.LayoutProvisional(newTestSeries())
	require.NoError(t, err)

	assert.False(t, s.Final)
	assert.Equal(t, f32.Point{}, s.Root.Offset)
	assert.Zero(t, s.LabelMargin)
	for _, b := range s.Bars {
		assert.False(t, b.Inside)
	}
	keys := make([]string, 0)
	for _, txt := range s.Texts() {
		keys = append(keys, txt.Key)
	}
	assert.Contains(t, keys, TitleKey)
	assert.Contains(t, keys, ValueKey(3))
	assert.Contains(t, keys, LabelKey(1))
	assert.Contains(t, keys, AxisKey(0))
}

func TestGaugeRender(t *testing.T) {
	g := newTestGauge()
	m := NewFixedWidthMeasurer()
	s, metrics, err := g.Render(newTestSeries(), m)
	require.NoError(t, err)

	assert.True(t, s.Final)
	assert.Equal(t, float32(120), s.TotalHeight)
	// "Memory" is the widest label.
	assert.Equal(t, m.MeasureText(Text{Content: "Memory", Size: 11}).Width, s.LabelMargin)
	assert.Len(t, s.Ticks, 4)
	assert.Contains(t, metrics, TitleKey)

	// The bar with value 80 has enough room for its text, the one with value 2 has not.
	assert.True(t, s.Bars[2].Inside)
	assert.False(t, s.Bars[0].Inside)

	// Content is centered.
	extent, ok := Extent(s, metrics)
	require.True(t, ok)
	centered := extent.Add(s.Root.Offset)
	assert.InDelta(t, 200, (centered.Min.X+centered.Max.X)/2, 0.01)
	assert.InDelta(t, 100, (centered.Min.Y+centered.Max.Y)/2, 0.01)
	assert.Equal(t, f32.Point{}, AutoCenter(s, metrics))
}

func TestGaugeRenderIsRepeatable(t *testing.T) {
	g := newTestGauge()
	first, metrics, err := g.Render(newTestSeries(), NewFixedWidthMeasurer())
	require.NoError(t, err)
	second, err := g.LayoutFinal(newTestSeries(), metrics)
	require.NoError(t, err)
	assert.Equal(t, first.Root.Offset, second.Root.Offset)
	assert.Equal(t, first.Bars, second.Bars)
}

func TestGaugeDoesNotModifyTheme(t *testing.T) {
	g := newTestGauge()
	before := g.Theme.Copy()
	_, _, err := g.Render(newTestSeries(), NewFixedWidthMeasurer())
	require.NoError(t, err)
	assert.True(t, cmp.Equal(before, g.Theme, cmpopts.EquateEmpty()), cmp.Diff(before, g.Theme, cmpopts.EquateEmpty()))
}

func TestGaugeConfigurationErrors(t *testing.T) {
	g := newTestGauge()
	g.Theme.Colors = g.Theme.Colors[1:]
	_, _, err := g.Render(gaugeval.Scalar(10), NewFixedWidthMeasurer())
	assert.ErrorIs(t, err, gaugeval.ErrMissingBounds)

	g = newTestGauge()
	g.Theme.AxesSteps = &gaugeval.AxesSteps{}
	_, err = g.LayoutProvisional(gaugeval.Scalar(10))
	assert.ErrorIs(t, err, gaugeval.ErrInvalidAxisSpec)
}

func TestGaugeWithoutAxisAndTitle(t *testing.T) {
	th := widgets.NewProgressGaugeTheme()
	g := NewGauge(th, 300, 60)
	s, _, err := g.Render(gaugeval.Scalar(42), NewFixedWidthMeasurer())
	require.NoError(t, err)

	assert.Empty(t, s.Ticks)
	for _, txt := range s.Texts() {
		assert.NotEqual(t, TitleKey, txt.Key)
	}
	require.Len(t, s.Bars, 1)
	assert.Equal(t, ValueColor(mustColorSet(t, th), th.Mode, 42), s.Bars[0].Color)
}

func TestGaugeTargetLabels(t *testing.T) {
	g := newTestGauge()
	g.Theme.Colors = append(g.Theme.Colors, gaugeval.ColorStop{Kind: gaugeval.ColorKindTarget, Hex: "#ffffff", Value: 90})
	s, err := g.LayoutProvisional(newTestSeries())
	require.NoError(t, err)

	var found bool
	for _, txt := range s.Texts() {
		if txt.Key == TargetKey(0) {
			found = true
			assert.Equal(t, "90", txt.Content)
		}
	}
	assert.True(t, found)
	for _, b := range s.Bars {
		assert.Len(t, b.Targets, 1)
	}
}

func mustColorSet(t *testing.T, th *widgets.GaugeTheme) *ColorSet {
	cs, err := ResolveColorSet(th.Colors, th.ColorSecondary)
	require.NoError(t, err)
	return cs
}
