// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeviz

import (
	"context"
	"gaugemini/config"
	"gaugemini/widgets"
	"log"
	"sync"
	"sync/atomic"

	"github.com/zhangyunhao116/skipmap"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

type GaugeApp struct {
	win          *app.Window
	size         widgets.DpPoint
	config       config.Config
	logger       *log.Logger
	vizMap       *skipmap.Int32Map[*GaugeView]
	matTheme     atomic.Pointer[material.Theme]
	reloadMutex  sync.Mutex
	list         widget.List
	gaugeLayouts []layout.Widget
}

func NewGaugeApp(c config.Config, logger *log.Logger) *GaugeApp {
	a := &GaugeApp{
		config: c,
		logger: logger,
		vizMap: skipmap.NewInt32[*GaugeView](),
	}
	a.list.Axis = layout.Vertical
	return a
}

// ReloadConfiguration replaces all gauge views. It may be called from any goroutine.
func (a *GaugeApp) ReloadConfiguration() error {
	a.reloadMutex.Lock()
	defer a.reloadMutex.Unlock()
	gaugeFile, err := a.config.Copy()
	if err != nil {
		return err
	}
	a.matTheme.Store(widgets.NewMaterialTheme(gaugeFile.LightTheme))
	for i, g := range gaugeFile.Gauges {
		uiIndex := int32(i)
		a.vizMap.Store(uiIndex, NewGaugeView(uiIndex, g, gaugeFile.LightTheme, a.logger))
	}
	// Removing while iterating works fine with skipmap.
	a.vizMap.Range(func(uiIndex int32, _ *GaugeView) bool {
		if int(uiIndex) >= len(gaugeFile.Gauges) {
			a.vizMap.Delete(uiIndex)
		}
		return true
	})
	a.size.X = unit.Dp(gaugeFile.Window.Width)
	a.size.Y = unit.Dp(gaugeFile.Window.Height)
	return nil
}

func (a *GaugeApp) windowSize() widgets.DpPoint {
	a.reloadMutex.Lock()
	defer a.reloadMutex.Unlock()
	return a.size
}

func (a *GaugeApp) Run(ctx context.Context) error {
	if err := a.ReloadConfiguration(); err != nil {
		return err
	}
	a.createWindow()
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		err := config.Watch(watchCtx, a.config, a.logger, func() {
			if err := a.ReloadConfiguration(); err != nil {
				a.logger.Printf("error reloading configuration: %v", err)
				return
			}
			a.Invalidate()
		})
		if err != nil && watchCtx.Err() == nil {
			a.logger.Printf("gauge file is not watched: %v", err)
		}
	}()
	return a.handleEvents()
}

func (a *GaugeApp) Invalidate() {
	if a.win != nil {
		a.win.Invalidate()
	}
}

func (a *GaugeApp) createWindow() {
	size := a.windowSize()
	a.win = app.NewWindow(
		app.Title(a.config.GetAppName()),
		app.Size(size.X, size.Y),
	)
}

func (a *GaugeApp) handleEvents() error {
	var ops op.Ops
	for {
		switch e := a.win.NextEvent().(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			th := a.matTheme.Load()
			paint.Fill(gtx.Ops, th.Bg)
			a.Layout(gtx, th)
			e.Frame(gtx.Ops)
		case system.DestroyEvent:
			return e.Err
		}
	}
}

// Layout shows all gauges below each other.
func (a *GaugeApp) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	a.gaugeLayouts = a.gaugeLayouts[:0]
	a.vizMap.Range(func(_ int32, v *GaugeView) bool {
		a.gaugeLayouts = append(a.gaugeLayouts, func(gtx layout.Context) layout.Dimensions {
			return widgets.NewGaugeCard(v.Name).Layout(gtx, th, func(gtx layout.Context) layout.Dimensions {
				return v.Layout(gtx, th)
			})
		})
		return true
	})
	return material.List(th, &a.list).Layout(gtx, len(a.gaugeLayouts), func(gtx layout.Context, i int) layout.Dimensions {
		return a.gaugeLayouts[i](gtx)
	})
}
