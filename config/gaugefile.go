// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"fmt"
	"gaugemini/gaugeval"
	"gaugemini/widgets"

	"github.com/barkimedes/go-deepcopy"
	"gopkg.in/yaml.v3"
)

const configFileVersion = 1

type VersionConfig struct {
	FileVersion int `yaml:"fileVersion,omitempty"`
}

type GaugeFile struct {
	LightTheme bool          `yaml:"lightTheme,omitempty"`
	Window     WindowConfig  `yaml:"window"`
	Gauges     []GaugeConfig `yaml:"gauges"`
}

// NewGaugeFile returns a demo configuration showing both presets.
func NewGaugeFile() GaugeFile {
	return GaugeFile{
		Window: NewWindowConfig(),
		Gauges: []GaugeConfig{
			NewGaugeConfig("bullet", widgets.PresetBullet, gaugeval.Scalar(60)),
			NewGaugeConfig("progress", widgets.PresetProgress, gaugeval.Scalar(42)),
		},
	}
}

// ParseGaugeFile decodes and sanitizes a gauge file.
func ParseGaugeFile(data []byte) (GaugeFile, error) {
	var version VersionConfig
	if err := yaml.Unmarshal(data, &version); err != nil {
		return GaugeFile{}, fmt.Errorf("failed to parse configuration version: %w", err)
	}
	if version.FileVersion > configFileVersion {
		return GaugeFile{}, fmt.Errorf(
			"invalid configuration file version %d instead of %d, probably from a newer release",
			version.FileVersion,
			configFileVersion)
	}
	var f GaugeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return GaugeFile{}, fmt.Errorf("failed to parse gauge configuration: %w", err)
	}
	f.Sanitize()
	return f, nil
}

func (f *GaugeFile) Sanitize() {
	f.Window.sanitize()
	for i := range f.Gauges {
		f.Gauges[i].sanitize(i)
	}
}

// Copy returns a deep copy which shares no slices with f.
func (f *GaugeFile) Copy() GaugeFile {
	c, err := deepcopy.Anything(f)
	if err != nil {
		panic(err)
	}
	return *c.(*GaugeFile)
}

func (f *GaugeFile) Gauge(name string) (GaugeConfig, bool) {
	for _, g := range f.Gauges {
		if g.Name == name {
			return g, true
		}
	}
	return GaugeConfig{}, false
}
