// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeplot

import (
	"fmt"
	"gaugemini/gaugeval"
	"image/color"
	"sort"
)

// Stop is a color stop with a parsed color.
type Stop struct {
	Id    string
	Kind  gaugeval.ColorKind
	Name  string
	Color color.NRGBA
	Value float64
}

// ColorSet is the validated form of a theme color list.
// It is created once per layout and not modified afterwards.
type ColorSet struct {
	Min        Stop
	Max        Stop
	Secondary  color.NRGBA
	Thresholds []Stop // sorted ascending by value
	Targets    []Stop // sorted ascending by value
}

func resolveStop(s gaugeval.ColorStop) (Stop, error) {
	if !s.Kind.IsValid() {
		return Stop{}, fmt.Errorf("color stop %q has unknown type %q: %w", s.Id, s.Kind, gaugeval.ErrInvalidColorSpec)
	}
	c, err := gaugeval.ParseColor(s.Hex)
	if err != nil {
		return Stop{}, fmt.Errorf("color stop %q: %w", s.Id, err)
	}
	return Stop{Id: s.Id, Kind: s.Kind, Name: s.Name, Color: c, Value: s.Value}, nil
}

func sortStops(stops []Stop) {
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Value < stops[j].Value
	})
}

// ResolveColorSet validates all stops and the secondary color.
// Exactly one min and one max stop are required, and they need to span a finite, non-empty range.
func ResolveColorSet(stops []gaugeval.ColorStop, secondary string) (*ColorSet, error) {
	var cs ColorSet
	var numMin, numMax int
	for _, s := range stops {
		r, err := resolveStop(s)
		if err != nil {
			return nil, err
		}
		switch r.Kind {
		case gaugeval.ColorKindMin:
			cs.Min = r
			numMin++
		case gaugeval.ColorKindMax:
			cs.Max = r
			numMax++
		case gaugeval.ColorKindThreshold:
			cs.Thresholds = append(cs.Thresholds, r)
		case gaugeval.ColorKindTarget:
			cs.Targets = append(cs.Targets, r)
		}
	}
	if numMin != 1 || numMax != 1 {
		return nil, fmt.Errorf("found %d min and %d max stops, need exactly one each: %w", numMin, numMax, gaugeval.ErrMissingBounds)
	}
	if err := cs.checkRange(); err != nil {
		return nil, err
	}
	sec, err := gaugeval.ParseColor(secondary)
	if err != nil {
		return nil, fmt.Errorf("secondary color: %w", err)
	}
	cs.Secondary = sec
	sortStops(cs.Thresholds)
	sortStops(cs.Targets)
	return &cs, nil
}

// Sequence returns min, all thresholds and max, in this order.
func (cs *ColorSet) Sequence() []Stop {
	seq := make([]Stop, 0, len(cs.Thresholds)+2)
	seq = append(seq, cs.Min)
	seq = append(seq, cs.Thresholds...)
	return append(seq, cs.Max)
}

func (cs *ColorSet) checkRange() error {
	switch span := cs.Span(); {
	case span == 0:
		return fmt.Errorf("min and max values must differ, both are %v: %w", cs.Min.Value, gaugeval.ErrDegenerateRange)
	case !gaugeval.IsFinite(span):
		return fmt.Errorf("span of range [%v, %v] is not a finite number: %w", cs.Min.Value, cs.Max.Value, gaugeval.ErrDegenerateRange)
	}
	return nil
}

func (cs *ColorSet) Span() float64 {
	return cs.Max.Value - cs.Min.Value
}
