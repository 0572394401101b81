// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeplot

import (
	"gaugemini/gaugeval"
	"gaugemini/widgets"
	"image/color"

	"gioui.org/f32"
)

// Target markers extend beyond the track by this amount.
const targetOverhang = 3

// BarInput contains everything needed to lay out a single bar.
// Metrics may be nil during the provisional pass.
type BarInput struct {
	Index   int
	Field   string
	Value   float64
	Y       float32
	Width   float32
	Colors  *ColorSet
	Theme   *widgets.GaugeTheme
	Format  gaugeval.Formatter
	Metrics Metrics
}

// Bar is the laid out representation of a single value.
// Coordinates are relative to the bar, except for Y which is the offset within the stack.
type Bar struct {
	Index     int
	Field     string
	Value     float64
	Y         float32
	Width     float32
	Fraction  float64 // clamped
	FillWidth float32 // negative if the fill grows to the left
	Color     color.NRGBA
	Segments  []Segment
	Inside    bool
	ValueText Text
	Label     *Text
	Targets   []Line
}

// FillBox returns the value fill rectangle.
func (b Bar) FillBox(th *widgets.GaugeTheme) Box {
	x := min(b.FillWidth, 0)
	y := (th.GaugeHeight - th.ValueHeight) / 2
	return Box{
		Min: f32.Pt(x, y),
		Max: f32.Pt(x+abs(b.FillWidth), y+th.ValueHeight),
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// LayoutBar computes geometry, colors and text placement of a bar.
// Text is considered to be outside the fill as long as it has not been measured.
func LayoutBar(in BarInput) Bar {
	th := in.Theme
	cs := in.Colors
	f := ClampFraction(cs.fraction(in.Value), th.OverflowFraction)
	fillW := in.Width * float32(f)
	bar := Bar{
		Index:     in.Index,
		Field:     in.Field,
		Value:     in.Value,
		Y:         in.Y,
		Width:     in.Width,
		Fraction:  f,
		FillWidth: fillW,
		Color:     ValueColor(cs, th.Mode, in.Value),
		Segments:  BackgroundSegments(cs, th.Mode),
	}
	bar.ValueText = Text{
		Key:     ValueKey(in.Index),
		Content: in.Format(in.Value),
		VAlign:  VAlignMiddle,
		Size:    th.ValueFontSize,
	}
	bar.placeValueText(th, in.Metrics)

	for _, t := range cs.Targets {
		x := in.Width * float32(cs.fraction(t.Value))
		bar.Targets = append(bar.Targets, Line{
			From:  f32.Pt(x, -targetOverhang),
			To:    f32.Pt(x, th.GaugeHeight+targetOverhang),
			Width: th.AxesStrokeWidth,
			Color: t.Color,
		})
	}
	return bar
}

func (b *Bar) placeValueText(th *widgets.GaugeTheme, m Metrics) {
	padding := th.ValuePadding
	tm, measured := m[b.ValueText.Key]
	b.Inside = measured && tm.Width > 0 && tm.Width+2*padding < b.FillWidth
	t := &b.ValueText
	t.Pos.Y = th.MaxBarHeight() / 2
	switch {
	case b.Inside && th.TextMode == widgets.TextModeFollow:
		t.Anchor = AnchorEnd
		t.Pos.X = max(b.FillWidth-padding, padding)
		t.Color = th.ValueFontColorInside.NRGBA()
	case th.TextMode == widgets.TextModeFollow:
		t.Anchor = AnchorStart
		t.Pos.X = max(b.FillWidth+padding, padding)
		t.Color = th.ValueFontColorOutside.NRGBA()
	default:
		t.Anchor = AnchorStart
		t.Pos.X = padding
		t.Color = th.ValueFontColorOutside.NRGBA()
	}
}

// Group returns the drawable items of the bar, translated by its stack offset.
func (b Bar) Group(th *widgets.GaugeTheme) *Group {
	track := Rect{
		Box:    Box{Max: f32.Pt(b.Width, th.GaugeHeight)},
		Radius: th.GaugeRounding,
	}
	background := &Group{Key: "background", Clip: &track}
	for _, s := range b.Segments {
		r := Rect{
			Box: Box{
				Min: f32.Pt(b.Width*float32(s.From), 0),
				Max: f32.Pt(b.Width*float32(s.To), th.GaugeHeight),
			},
			Color: s.Color,
		}
		if s.Gradient {
			r.Gradient = &Gradient{From: s.Color, To: s.ColorEnd}
		}
		background.Add(r)
	}
	g := &Group{Key: BarKey(b.Index), Offset: f32.Pt(0, b.Y)}
	g.Add(background)
	if b.FillWidth != 0 {
		g.Add(Rect{Box: b.FillBox(th), Radius: th.ValueRounding, Color: b.Color})
	}
	for _, t := range b.Targets {
		g.Add(t)
	}
	g.Add(b.ValueText)
	if b.Label != nil {
		g.Add(*b.Label)
	}
	return g
}
