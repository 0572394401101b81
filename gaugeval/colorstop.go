// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeval

type ColorKind string

const (
	ColorKindMin        ColorKind = "min"
	ColorKindMax        ColorKind = "max"
	ColorKindThreshold  ColorKind = "threshold"
	ColorKindTarget     ColorKind = "target"
	ColorKindScale      ColorKind = "scale"
	ColorKindText       ColorKind = "text"
	ColorKindBackground ColorKind = "background"
)

func (k ColorKind) IsValid() bool {
	switch k {
	case ColorKindMin, ColorKindMax, ColorKindThreshold, ColorKindTarget,
		ColorKindScale, ColorKindText, ColorKindBackground:
		return true
	}
	return false
}

// A single entry of a gauge color list. Hex is kept as written by the user,
// it is validated when the color set is resolved.
type ColorStop struct {
	Id    string    `yaml:"id,omitempty"`
	Kind  ColorKind `yaml:"type"`
	Name  string    `yaml:"name,omitempty"`
	Hex   string    `yaml:"hex"`
	Value float64   `yaml:"value"`
}

type ColorStopList []ColorStop

func (x ColorStopList) OfKind(k ColorKind) ColorStopList {
	var stops ColorStopList
	for _, s := range x {
		if s.Kind == k {
			stops = append(stops, s)
		}
	}
	return stops
}
