// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeviz

import (
	"gaugemini/config"
	"gaugemini/gaugeplot"
	"gaugemini/gaugeval"
	"gaugemini/widgets"
	"image"
	"log"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// GaugeView shows a single configured gauge, or the reason why it cannot be shown.
// Layout is only called from the UI goroutine.
type GaugeView struct {
	Name       string
	UiIndex    int32
	gauge      *gaugeplot.Gauge
	values     gaugeval.ValueSeries
	err        error
	lastErr    string
	errorField *widgets.ErrorField
	logger     *log.Logger
}

func NewGaugeView(uiIndex int32, c config.GaugeConfig, light bool, logger *log.Logger) *GaugeView {
	v := &GaugeView{
		Name:       c.Name,
		UiIndex:    uiIndex,
		values:     c.Values,
		errorField: widgets.NewErrorField(),
		logger:     logger,
	}
	th, err := c.NewTheme(light)
	if err != nil {
		v.err = err
		return v
	}
	v.gauge = gaugeplot.NewGauge(th, c.Width, c.Height)
	return v
}

// Errors are logged once, not on every frame.
func (v *GaugeView) logError(err error) {
	if err.Error() == v.lastErr {
		return
	}
	v.lastErr = err.Error()
	v.logger.Printf("Gauge \"%s\" cannot be rendered: %v", v.Name, err)
}

func (v *GaugeView) render(gtx layout.Context, th *material.Theme) error {
	if v.err != nil {
		return v.err
	}
	scene, _, err := v.gauge.Render(v.values, gaugeplot.NewGioMeasurer(gtx, th))
	if err != nil {
		return err
	}
	return gaugeplot.PaintScene(gtx, th, scene)
}

func (v *GaugeView) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	if v.gauge != nil {
		size := image.Pt(gtx.Dp(unit.Dp(v.gauge.Width)), gtx.Dp(unit.Dp(v.gauge.Height)))
		gtx.Constraints = layout.Exact(gtx.Constraints.Constrain(size))
	}
	// A failing gauge is replaced as a whole, so its drawing is recorded first.
	macro := op.Record(gtx.Ops)
	err := v.render(gtx, th)
	call := macro.Stop()
	if err != nil {
		v.logError(err)
		return v.errorField.Layout(err, gtx, th)
	}
	v.lastErr = ""
	call.Add(gtx.Ops)
	return layout.Dimensions{Size: gtx.Constraints.Max}
}
