// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"fmt"
	"gaugemini/gaugeval"
	"gaugemini/widgets"

	"gopkg.in/yaml.v3"
)

const (
	defaultGaugeWidth  = 400
	defaultGaugeHeight = 120
)

// GaugeConfig declares a gauge with static values.
// Theme contains overrides which are applied to the preset theme.
type GaugeConfig struct {
	Name   string               `yaml:"name"`
	Preset string               `yaml:"preset,omitempty"`
	Width  float32              `yaml:"width,omitempty"`
	Height float32              `yaml:"height,omitempty"`
	Theme  yaml.Node            `yaml:"theme,omitempty"`
	Values gaugeval.ValueSeries `yaml:"values"`
}

func NewGaugeConfig(name, preset string, values gaugeval.ValueSeries) GaugeConfig {
	return GaugeConfig{
		Name:   name,
		Preset: preset,
		Width:  defaultGaugeWidth,
		Height: defaultGaugeHeight,
		Values: values,
	}
}

func (g *GaugeConfig) sanitize(index int) {
	if g.Name == "" {
		g.Name = fmt.Sprintf("gauge %d", index+1)
	}
	if g.Preset == "" {
		g.Preset = widgets.PresetBullet
	}
	if g.Width <= 0 {
		g.Width = defaultGaugeWidth
	}
	if g.Height <= 0 {
		g.Height = defaultGaugeHeight
	}
	if len(g.Values) == 0 {
		g.Values = gaugeval.Scalar(0)
	}
	for i := range g.Values {
		if g.Values[i].Field == "" {
			g.Values[i].Field = gaugeval.DefaultField
		}
	}
}

// NewTheme returns a new theme based on the preset, with all overrides applied.
func (g *GaugeConfig) NewTheme(light bool) (*widgets.GaugeTheme, error) {
	th, err := widgets.NewGaugeTheme(g.Preset, light)
	if err != nil {
		return nil, fmt.Errorf("gauge %q: %w", g.Name, err)
	}
	// Deep copies keep an empty Content slice, so IsZero cannot be used here.
	if g.Theme.Kind != 0 {
		if err := g.Theme.Decode(th); err != nil {
			return nil, fmt.Errorf("gauge %q: invalid theme: %w", g.Name, err)
		}
	}
	th.Sanitize()
	return th, nil
}
