// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeplot

import (
	"gaugemini/gaugeval"
	"math"
)

// Fraction maps a value to its position on the [min, max] span, min being 0 and max being 1.
func (cs *ColorSet) Fraction(v float64) (float64, error) {
	if err := cs.checkRange(); err != nil {
		return 0, err
	}
	return cs.fraction(v), nil
}

// Only for resolved color sets, which always have a valid span.
func (cs *ColorSet) fraction(v float64) float64 {
	return (v - cs.Min.Value) / cs.Span()
}

// ClampFraction limits a fraction to [-overflow, 1+overflow]. NaN is mapped to 0.
func ClampFraction(f, overflow float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return gaugeval.Clamp(f, -overflow, 1+overflow)
}
