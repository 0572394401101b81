// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeplot

import (
	"gaugemini/gaugeval"
	"gaugemini/widgets"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBulletScenario(t *testing.T) {
	cs := newTestColorSet(t)

	assert.Equal(t, 1, BucketIndex(cs, 60))
	assert.Equal(t, cs.Secondary, ValueColor(cs, widgets.GaugeModeBullet, 60))
	yellow := gaugeval.MustParseColor("yellow")
	assert.Equal(t, gaugeval.Brighter(yellow, BrightenFactor), ValueColor(cs, widgets.GaugeModeProgress, 60))

	segments := BackgroundSegments(cs, widgets.GaugeModeBullet)
	require.Len(t, segments, 3)
	assert.Equal(t, 0.0, segments[0].From)
	assert.Equal(t, 0.5, segments[0].To)
	assert.Equal(t, 0.5, segments[1].From)
	assert.Equal(t, 0.75, segments[1].To)
	assert.Equal(t, 0.75, segments[2].From)
	assert.Equal(t, 1.0, segments[2].To)
	assert.Equal(t, gaugeval.MustParseColor("red"), segments[0].Color)
	assert.Equal(t, yellow, segments[1].Color)
	for _, s := range segments {
		assert.False(t, s.Gradient)
	}
}

func TestProgressBackground(t *testing.T) {
	cs := newTestColorSet(t)
	segments := BackgroundSegments(cs, widgets.GaugeModeProgress)
	require.Len(t, segments, 1)
	assert.Equal(t, Segment{From: 0, To: 1, Color: cs.Secondary}, segments[0])
}

func TestGradientWithoutThresholds(t *testing.T) {
	cs, err := ResolveColorSet([]gaugeval.ColorStop{
		{Kind: gaugeval.ColorKindMin, Hex: "#000000", Value: 0},
		{Kind: gaugeval.ColorKindMax, Hex: "#646464", Value: 100},
		{Kind: gaugeval.ColorKindTarget, Hex: "#ffffff", Value: 80},
	}, testSecondary)
	require.NoError(t, err)

	segments := BackgroundSegments(cs, widgets.GaugeModeBullet)
	require.Len(t, segments, 1)
	assert.True(t, segments[0].Gradient)
	assert.Equal(t, cs.Max.Color, segments[0].ColorEnd)

	mid := gaugeval.Lerp(cs.Min.Color, cs.Max.Color, 0.5)
	assert.Equal(t, gaugeval.Brighter(mid, BrightenFactor), ValueColor(cs, widgets.GaugeModeProgress, 50))
	// Values beyond the range do not produce invalid channels.
	assert.Equal(t, uint8(255), ValueColor(cs, widgets.GaugeModeProgress, 1e300).A)
}

func TestBucketIndexBounds(t *testing.T) {
	cs := newTestColorSet(t)
	assert.Equal(t, 0, BucketIndex(cs, -10))
	assert.Equal(t, 0, BucketIndex(cs, 0))
	assert.Equal(t, 1, BucketIndex(cs, 50))
	assert.Equal(t, 2, BucketIndex(cs, 99.9))
	assert.Equal(t, 3, BucketIndex(cs, 100))
	assert.Equal(t, 3, BucketIndex(cs, 1000))
}

func TestBucketIndexMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		thresholds := rapid.SliceOfN(rapid.Float64Range(0, 100), 1, 8).Draw(t, "thresholds")
		stops := []gaugeval.ColorStop{
			{Kind: gaugeval.ColorKindMin, Hex: "#000", Value: 0},
			{Kind: gaugeval.ColorKindMax, Hex: "#fff", Value: 100},
		}
		for _, v := range thresholds {
			stops = append(stops, gaugeval.ColorStop{Kind: gaugeval.ColorKindThreshold, Hex: "#888", Value: v})
		}
		cs, err := ResolveColorSet(stops, testSecondary)
		require.NoError(t, err)

		a := rapid.Float64Range(-50, 150).Draw(t, "a")
		b := rapid.Float64Range(a, 200).Draw(t, "b")
		ia := BucketIndex(cs, a)
		ib := BucketIndex(cs, b)
		assert.LessOrEqual(t, ia, ib)
		assert.GreaterOrEqual(t, ia, 0)
		assert.Less(t, ib, len(cs.Sequence()))
	})
}
