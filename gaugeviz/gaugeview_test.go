// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeviz

import (
	"gaugemini/config"
	"gaugemini/gaugeval"
	"gaugemini/mock"
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
	gtx.Constraints.Max = image.Pt(800, 600)
	gtx.Ops = &ops
	return gtx
}

func TestGaugeViewLayout(t *testing.T) {
	logger, _ := mock.NewLogger(t)
	c := config.NewGaugeConfig("cpu", widgets.PresetProgress, gaugeval.Scalar(42))
	v := NewGaugeView(0, c, false, logger)
	require.NoError(t, v.err)

	dims := v.Layout(newTestContext(), widgets.NewDarkMaterialTheme())
	assert.Equal(t, 400, dims.Size.X)
	assert.Equal(t, 120, dims.Size.Y)
	assert.Empty(t, v.lastErr)
}

func TestGaugeViewLogsErrorOnce(t *testing.T) {
	logger, scanner := mock.NewLogger(t)
	c := config.NewGaugeConfig("broken", "radial", gaugeval.Scalar(1))
	v := NewGaugeView(3, c, false, logger)
	assert.Error(t, v.err)

	th := widgets.NewDarkMaterialTheme()
	dims := v.Layout(newTestContext(), th)
	assert.Greater(t, dims.Size.X, 0)
	v.Layout(newTestContext(), th)
	logger.Print("done")

	require.True(t, scanner.Scan())
	assert.Contains(t, scanner.Text(), "broken")
	require.True(t, scanner.Scan())
	assert.Contains(t, scanner.Text(), "done")
}

func TestGaugeViewRenderError(t *testing.T) {
	logger, scanner := mock.NewLogger(t)
	c := config.NewGaugeConfig("bad colors", widgets.PresetBullet, gaugeval.Scalar(1))
	require.NoError(t, c.Theme.Encode(map[string]any{"colorSecondary": "nope"}))
	v := NewGaugeView(0, c, false, logger)
	require.NoError(t, v.err)

	v.Layout(newTestContext(), widgets.NewDarkMaterialTheme())
	require.True(t, scanner.Scan())
	assert.Contains(t, scanner.Text(), "invalid color")
}

func TestReloadConfiguration(t *testing.T) {
	logger, _ := mock.NewLogger(t)
	c := mock.NewTestConfig()
	a := NewGaugeApp(c, logger)

	require.NoError(t, a.ReloadConfiguration())
	assert.Equal(t, 2, a.vizMap.Len())
	v, ok := a.vizMap.Load(1)
	require.True(t, ok)
	assert.Equal(t, "progress", v.Name)
	assert.NotNil(t, a.matTheme.Load())
	a.vizMap.Range(func(_ int32, v *GaugeView) bool {
		assert.NoError(t, v.err, v.Name)
		return true
	})

	f := config.NewGaugeFile()
	f.Gauges = f.Gauges[1:]
	f.Window.Width = 300
	c.Set(f)
	require.NoError(t, a.ReloadConfiguration())
	assert.Equal(t, 1, a.vizMap.Len())
	v, ok = a.vizMap.Load(0)
	require.True(t, ok)
	assert.Equal(t, "progress", v.Name)
	assert.Equal(t, float32(300), float32(a.windowSize().X))
}
