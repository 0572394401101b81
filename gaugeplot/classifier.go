// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeplot

import (
	"gaugemini/gaugeval"
	"gaugemini/widgets"
	"image/color"
)

// Brightening of the value fill, so that it can be distinguished from the background.
const BrightenFactor = 1.0

// Segment is a part of the background track, From and To are fractions.
// A gradient segment blends from Color to ColorEnd.
type Segment struct {
	From     float64
	To       float64
	Color    color.NRGBA
	ColorEnd color.NRGBA
	Gradient bool
}

// BackgroundSegments returns the track coloring for the given mode.
func BackgroundSegments(cs *ColorSet, mode widgets.GaugeMode) []Segment {
	if mode != widgets.GaugeModeBullet {
		return []Segment{{From: 0, To: 1, Color: cs.Secondary}}
	}
	if len(cs.Thresholds) == 0 {
		return []Segment{{From: 0, To: 1, Color: cs.Min.Color, ColorEnd: cs.Max.Color, Gradient: true}}
	}
	seq := cs.Sequence()
	segments := make([]Segment, 0, len(seq)-1)
	for i := 0; i < len(seq)-1; i++ {
		segments = append(segments, Segment{
			From:  cs.fraction(seq[i].Value),
			To:    cs.fraction(seq[i+1].Value),
			Color: seq[i].Color,
		})
	}
	return segments
}

// BucketIndex returns the greatest index of the min/thresholds/max sequence whose value is not above v.
func BucketIndex(cs *ColorSet, v float64) int {
	seq := cs.Sequence()
	index := 0
	for i, s := range seq {
		if v >= s.Value {
			index = i
		}
	}
	return gaugeval.Clamp(index, 0, len(seq)-1)
}

// ValueColor returns the color of the value fill.
func ValueColor(cs *ColorSet, mode widgets.GaugeMode, v float64) color.NRGBA {
	if mode == widgets.GaugeModeBullet {
		return cs.Secondary
	}
	var c color.NRGBA
	if len(cs.Thresholds) == 0 {
		t := cs.fraction(v)
		if !gaugeval.IsFinite(t) {
			t = ClampFraction(t, 0)
		}
		c = gaugeval.Lerp(cs.Min.Color, cs.Max.Color, t)
	} else {
		c = cs.Sequence()[BucketIndex(cs, v)].Color
	}
	return gaugeval.Brighter(c, BrightenFactor)
}
