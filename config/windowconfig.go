// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
)

type WindowConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

func NewWindowConfig() WindowConfig {
	return WindowConfig{
		Width:  defaultWindowWidth,
		Height: defaultWindowHeight,
	}
}

func (w *WindowConfig) sanitize() {
	if w.Width <= 0 {
		w.Width = defaultWindowWidth
	}
	if w.Height <= 0 {
		w.Height = defaultWindowHeight
	}
}
