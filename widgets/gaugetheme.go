// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"fmt"
	"gaugemini/gaugeval"

	"github.com/barkimedes/go-deepcopy"
)

type GaugeMode string

const (
	// Colored threshold bands, neutral value indicator.
	GaugeModeBullet GaugeMode = "bullet"
	// Neutral track, colored value bar.
	GaugeModeProgress GaugeMode = "progress"
)

type TextMode string

const (
	TextModeFollow TextMode = "follow"
	TextModeLeft   TextMode = "left"
)

const (
	PresetBullet   = "bullet"
	PresetProgress = "progress"
)

const DefaultOverflowFraction = 0.03

type BarLabel struct {
	Field string `yaml:"field"`
	Label string `yaml:"label"`
}

// GaugeTheme is read-only input for gauge rendering, it is never modified while rendering.
// Use Copy before changing a shared theme.
type GaugeTheme struct {
	Mode                  GaugeMode              `yaml:"mode"`
	TextMode              TextMode               `yaml:"textMode"`
	ValueHeight           float32                `yaml:"valueHeight"`
	GaugeHeight           float32                `yaml:"gaugeHeight"`
	ValueRounding         float32                `yaml:"valueRounding"`
	GaugeRounding         float32                `yaml:"gaugeRounding"`
	BarPaddings           float32                `yaml:"barPaddings"`
	SidePaddings          float32                `yaml:"sidePaddings"`
	OverflowFraction      float64                `yaml:"overflowFraction"`
	ValuePadding          float32                `yaml:"valuePadding"`
	Colors                gaugeval.ColorStopList `yaml:"colors"`
	ColorSecondary        string                 `yaml:"colorSecondary"`
	LabelMain             string                 `yaml:"labelMain,omitempty"`
	LabelMainFontSize     float32                `yaml:"labelMainFontSize"`
	LabelMainFontColor    gaugeval.HexColor      `yaml:"labelMainFontColor"`
	LabelBars             []BarLabel             `yaml:"labelBars,omitempty"`
	LabelBarsFontSize     float32                `yaml:"labelBarsFontSize"`
	LabelBarsFontColor    gaugeval.HexColor      `yaml:"labelBarsFontColor"`
	ValueFontSize         float32                `yaml:"valueFontSize"`
	ValueFontColorInside  gaugeval.HexColor      `yaml:"valueFontColorInside"`
	ValueFontColorOutside gaugeval.HexColor      `yaml:"valueFontColorOutside"`
	ValueFormat           gaugeval.FormatOptions `yaml:"valueFormat"`
	AxesSteps             *gaugeval.AxesSteps    `yaml:"axesSteps"`
	AxesFontSize          float32                `yaml:"axesFontSize"`
	AxesFontColor         gaugeval.HexColor      `yaml:"axesFontColor"`
	AxesStrokeWidth       float32                `yaml:"axesStrokeWidth"`
	AxesFormat            gaugeval.FormatOptions `yaml:"axesFormat"`
}

var (
	colorKevlar = gaugeval.HexColor(gaugeval.MustParseColor("#0f0e15"))
	colorRaven  = gaugeval.HexColor(gaugeval.MustParseColor("#292933"))
	colorForge  = gaugeval.HexColor(gaugeval.MustParseColor("#999dab"))
	colorCloud  = gaugeval.HexColor(gaugeval.MustParseColor("#f6f6f8"))
	colorGhost  = gaugeval.HexColor(gaugeval.MustParseColor("#fafafc"))
	colorPepper = gaugeval.HexColor(gaugeval.MustParseColor("#545667"))
)

const (
	hexKevlar  = "#0f0e15"
	hexPepper  = "#545667"
	hexKrypton = "#32b08c"
	hexSulfur  = "#ffe480"
	hexTopaz   = "#f48d38"
	hexMist    = "#e7e8eb"
)

func fixedDigits(digits int) gaugeval.FormatOptions {
	return gaugeval.FormatOptions{DecimalPlaces: gaugeval.DecimalPlaces{IsEnforced: true, Digits: digits}}
}

func NewBulletGaugeTheme() *GaugeTheme {
	return &GaugeTheme{
		Mode:             GaugeModeBullet,
		TextMode:         TextModeFollow,
		ValueHeight:      18,
		GaugeHeight:      25,
		ValueRounding:    2,
		GaugeRounding:    3,
		BarPaddings:      5,
		SidePaddings:     20,
		OverflowFraction: DefaultOverflowFraction,
		ValuePadding:     5,
		Colors: gaugeval.ColorStopList{
			{Id: "min", Kind: gaugeval.ColorKindMin, Name: "krypton", Hex: hexKrypton, Value: 0},
			{Id: "t50", Kind: gaugeval.ColorKindThreshold, Name: "sulfur", Hex: hexSulfur, Value: 50},
			{Id: "t75", Kind: gaugeval.ColorKindThreshold, Name: "topaz", Hex: hexTopaz, Value: 75},
			{Id: "max", Kind: gaugeval.ColorKindMax, Name: "topaz", Hex: hexTopaz, Value: 100},
		},
		ColorSecondary:        hexKevlar,
		LabelMainFontSize:     13,
		LabelMainFontColor:    colorGhost,
		LabelBarsFontSize:     11,
		LabelBarsFontColor:    colorForge,
		ValueFontSize:         12,
		ValueFontColorOutside: colorRaven,
		ValueFontColorInside:  colorCloud,
		ValueFormat:           fixedDigits(0),
		AxesSteps:             gaugeval.AxesStepsFromThresholds(),
		AxesFontSize:          11,
		AxesFontColor:         colorForge,
		AxesStrokeWidth:       2,
		AxesFormat:            fixedDigits(0),
	}
}

func NewProgressGaugeTheme() *GaugeTheme {
	return &GaugeTheme{
		Mode:             GaugeModeProgress,
		TextMode:         TextModeFollow,
		ValueHeight:      20,
		GaugeHeight:      20,
		ValueRounding:    3,
		GaugeRounding:    3,
		BarPaddings:      5,
		SidePaddings:     20,
		OverflowFraction: DefaultOverflowFraction,
		ValuePadding:     5,
		Colors: gaugeval.ColorStopList{
			{Id: "min", Kind: gaugeval.ColorKindMin, Name: "krypton", Hex: hexKrypton, Value: 0},
			{Id: "max", Kind: gaugeval.ColorKindMax, Name: "topaz", Hex: hexTopaz, Value: 100},
		},
		ColorSecondary:        hexKevlar,
		LabelMainFontSize:     13,
		LabelMainFontColor:    colorGhost,
		LabelBarsFontSize:     11,
		LabelBarsFontColor:    colorForge,
		ValueFontSize:         18,
		ValueFontColorInside:  colorRaven,
		ValueFontColorOutside: colorCloud,
		ValueFormat:           fixedDigits(0),
		AxesFontSize:          11,
		AxesFontColor:         colorForge,
		AxesStrokeWidth:       2,
		AxesFormat:            fixedDigits(0),
	}
}

// Returns a new theme for the given preset name.
func NewGaugeTheme(preset string, light bool) (*GaugeTheme, error) {
	var th *GaugeTheme
	switch preset {
	case PresetBullet, "":
		th = NewBulletGaugeTheme()
	case PresetProgress:
		th = NewProgressGaugeTheme()
	default:
		return nil, fmt.Errorf("unknown gauge preset %q", preset)
	}
	if light {
		th.useLightPalette()
	}
	return th, nil
}

// Text and track colors for bright backgrounds.
func (th *GaugeTheme) useLightPalette() {
	th.ColorSecondary = hexMist
	th.LabelMainFontColor = colorKevlar
	th.LabelBarsFontColor = colorPepper
	th.AxesFontColor = colorPepper
	if th.Mode == GaugeModeBullet {
		th.ValueFontColorInside = colorRaven
		th.ValueFontColorOutside = colorRaven
	} else {
		th.ValueFontColorOutside = colorRaven
	}
}

// Copy returns a deep copy, slices like the color list are not shared.
func (th *GaugeTheme) Copy() *GaugeTheme {
	c, err := deepcopy.Anything(th)
	if err != nil {
		panic(err)
	}
	return c.(*GaugeTheme)
}

func (th *GaugeTheme) MaxBarHeight() float32 {
	return max(th.GaugeHeight, th.ValueHeight)
}

func (th *GaugeTheme) BarLabel(field string) (string, bool) {
	for _, l := range th.LabelBars {
		if l.Field == field {
			return l.Label, true
		}
	}
	return "", false
}

// Sanitize replaces unusable layout values. Colors are not touched, they are validated during rendering.
func (th *GaugeTheme) Sanitize() {
	if th.Mode != GaugeModeBullet && th.Mode != GaugeModeProgress {
		th.Mode = GaugeModeBullet
	}
	if th.TextMode != TextModeFollow && th.TextMode != TextModeLeft {
		th.TextMode = TextModeFollow
	}
	if th.OverflowFraction < 0 {
		th.OverflowFraction = 0
	}
	for _, v := range []*float32{
		&th.ValueHeight, &th.GaugeHeight, &th.ValueRounding, &th.GaugeRounding,
		&th.BarPaddings, &th.SidePaddings, &th.ValuePadding, &th.AxesStrokeWidth,
	} {
		if *v < 0 {
			*v = 0
		}
	}
}
