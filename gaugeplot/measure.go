// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeplot

import (
	"unicode/utf8"
)

// Measured size of a rendered text, in scene units.
type TextMetrics struct {
	Width  float32
	Height float32
}

// Metrics holds text sizes of one render cycle, keyed by text key.
type Metrics map[string]TextMetrics

// Measurer determines the size of a text as it would be rendered by a surface.
type Measurer interface {
	MeasureText(t Text) TextMetrics
}

// FixedWidthMeasurer assumes that all characters have the same width,
// given as factor of the font size.
type FixedWidthMeasurer struct {
	CharWidth  float32
	LineHeight float32
}

func NewFixedWidthMeasurer() FixedWidthMeasurer {
	return FixedWidthMeasurer{CharWidth: 0.6, LineHeight: 1.2}
}

func (f FixedWidthMeasurer) MeasureText(t Text) TextMetrics {
	if t.Content == "" {
		return TextMetrics{}
	}
	return TextMetrics{
		Width:  float32(utf8.RuneCountInString(t.Content)) * t.Size * f.CharWidth,
		Height: t.Size * f.LineHeight,
	}
}

// Measure returns the size of every text in the scene.
func Measure(s *Scene, m Measurer) Metrics {
	metrics := make(Metrics)
	s.Root.Walk(func(t Text) {
		metrics[t.Key] = m.MeasureText(t)
	})
	return metrics
}
