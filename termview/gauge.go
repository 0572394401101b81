// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package termview

import (
	"fmt"
	"gaugemini/config"
	"gaugemini/gaugeplot"
	"io"
)

// RenderGauge lays out a configured gauge using terminal cell metrics and writes it to w.
func RenderGauge(w io.Writer, c config.GaugeConfig, light bool) error {
	th, err := c.NewTheme(light)
	if err != nil {
		return err
	}
	s := NewSurface(w)
	g := gaugeplot.NewGauge(th, c.Width, c.Height)
	scene, _, err := g.Render(c.Values, s)
	if err != nil {
		return fmt.Errorf("gauge %q: %w", c.Name, err)
	}
	out, err := s.Render(scene)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
