// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package termview

import (
	"bytes"
	"gaugemini/gaugeplot"
	"gaugemini/gaugeval"
	"gaugemini/widgets"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureTextInCells(t *testing.T) {
	s := NewSurface(&bytes.Buffer{})

	tm := s.MeasureText(gaugeplot.Text{Content: "42 %", Size: 12})
	assert.Equal(t, float32(4*DefaultCellWidth), tm.Width)
	assert.Equal(t, float32(DefaultCellHeight), tm.Height)

	// Wide characters occupy two cells.
	tm = s.MeasureText(gaugeplot.Text{Content: "温度"})
	assert.Equal(t, float32(4*DefaultCellWidth), tm.Width)

	assert.Equal(t, gaugeplot.TextMetrics{}, s.MeasureText(gaugeplot.Text{}))
}

func TestRenderRefusesProvisionalScene(t *testing.T) {
	s := NewSurface(&bytes.Buffer{})
	g := gaugeplot.NewGauge(widgets.NewBulletGaugeTheme(), 400, 96)
	scene, err := g.LayoutProvisional(gaugeval.Scalar(60))
	require.NoError(t, err)

	_, err = s.Render(scene)
	assert.ErrorIs(t, err, gaugeplot.ErrProvisionalScene)
}

func TestRenderScene(t *testing.T) {
	s := NewSurface(&bytes.Buffer{})
	th := widgets.NewBulletGaugeTheme()
	th.LabelMain = "Load"
	th.LabelBars = []widgets.BarLabel{{Field: "cpu", Label: "CPU"}}
	g := gaugeplot.NewGauge(th, 480, 160)
	scene, _, err := g.Render(gaugeval.ValueSeries{{Field: "cpu", Value: 60}}, s)
	require.NoError(t, err)

	out, err := s.Render(scene)
	require.NoError(t, err)
	plain := ansi.Strip(out)
	lines := strings.Split(plain, "\n")

	assert.Len(t, lines, 10)
	for _, l := range lines {
		assert.Equal(t, 60, ansi.StringWidth(l))
	}
	assert.Contains(t, plain, "Load")
	assert.Contains(t, plain, "CPU")
	assert.Contains(t, plain, "60")
	assert.Contains(t, plain, "100")
	assert.Contains(t, plain, "─")
}
