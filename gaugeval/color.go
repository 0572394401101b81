// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeval

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Channel factor of a single brightness step, as used by common web color libraries.
const brighterStep = 1 / 0.7

// ParseColor accepts #rgb, #rgba, #rrggbb, #rrggbbaa and SVG color names.
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[v]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if !strings.HasPrefix(v, "#") {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColorSpec, s)
	}
	digits := v[1:]
	switch len(digits) {
	case 3, 4:
		// Expand short notation, "#abc" is "#aabbcc".
		var sb strings.Builder
		for _, d := range digits {
			sb.WriteRune(d)
			sb.WriteRune(d)
		}
		digits = sb.String()
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColorSpec, s)
	}
	if len(digits) == 6 {
		digits += "ff"
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColorSpec, s)
	}
	return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func Hex(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func clampChannel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(Clamp(math.Round(v), 0, 255))
}

// Brighter scales all channels by (1/0.7)^k. Alpha is kept.
func Brighter(c color.NRGBA, k float64) color.NRGBA {
	f := math.Pow(brighterStep, k)
	return color.NRGBA{
		R: clampChannel(float64(c.R) * f),
		G: clampChannel(float64(c.G) * f),
		B: clampChannel(float64(c.B) * f),
		A: c.A,
	}
}

// Lerp linearly interpolates between two colors.
// t is not clamped, channels are.
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	ch := func(x, y uint8) uint8 {
		return clampChannel(float64(x) + t*(float64(y)-float64(x)))
	}
	return color.NRGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}

// HexColor is a color which is stored as hex string in configuration files.
type HexColor color.NRGBA

func (h HexColor) NRGBA() color.NRGBA {
	return color.NRGBA(h)
}

func (h HexColor) MarshalYAML() (interface{}, error) {
	return Hex(color.NRGBA(h)), nil
}

func (h *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	*h = HexColor(c)
	return nil
}
