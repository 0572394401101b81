// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Field key used when a single scalar is rendered.
const DefaultField = "_default"

const NearZero = 0.000001

type FieldValue struct {
	Field string  `yaml:"field,omitempty"`
	Value float64 `yaml:"value"`
}

// Values are rendered as bars in the order of the series.
type ValueSeries []FieldValue

func Scalar(v float64) ValueSeries {
	return ValueSeries{{Field: DefaultField, Value: v}}
}

func (s ValueSeries) Fields() []string {
	fields := make([]string, len(s))
	for i, v := range s {
		fields[i] = v.Field
	}
	return fields
}

func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ParseFieldValue accepts "field=value" or a plain value for the default field.
func ParseFieldValue(s string) (FieldValue, error) {
	field, value, found := strings.Cut(s, "=")
	if !found {
		field, value = DefaultField, s
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return FieldValue{}, fmt.Errorf("invalid value %q: %w", s, err)
	}
	field = strings.TrimSpace(field)
	if field == "" {
		field = DefaultField
	}
	return FieldValue{Field: field, Value: v}, nil
}
