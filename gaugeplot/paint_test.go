// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeplot

import (
	"gaugemini/widgets"
	"image"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() layout.Context {
	var ops op.Ops
	var gtx layout.Context
	gtx.Constraints.Max = image.Pt(400, 200)
	gtx.Ops = &ops
	return gtx
}

func TestGioMeasurer(t *testing.T) {
	gtx := newTestContext()
	m := NewGioMeasurer(gtx, widgets.NewDarkMaterialTheme())

	short := m.MeasureText(Text{Content: "1", Size: 12})
	long := m.MeasureText(Text{Content: "1000000", Size: 12})
	assert.Greater(t, short.Width, float32(0))
	assert.Greater(t, short.Height, float32(0))
	assert.Greater(t, long.Width, short.Width)
	assert.Equal(t, TextMetrics{}, m.MeasureText(Text{Size: 12}))
}

func TestPaintScene(t *testing.T) {
	gtx := newTestContext()
	th := widgets.NewDarkMaterialTheme()
	g := newTestGauge()

	provisional, err := g.LayoutProvisional(newTestSeries())
	require.NoError(t, err)
	assert.ErrorIs(t, PaintScene(gtx, th, provisional), ErrProvisionalScene)

	metrics := g.Measure(provisional, NewGioMeasurer(gtx, th))
	s, err := g.LayoutFinal(newTestSeries(), metrics)
	require.NoError(t, err)
	assert.NoError(t, PaintScene(gtx, th, s))
}
