// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeval

import (
	"strconv"
	"strings"

	"github.com/ericlagergren/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const MaxDecimalPlaces = 10

// Formatter converts a value to its display text.
type Formatter func(v float64) string

type DecimalPlaces struct {
	IsEnforced bool `yaml:"isEnforced,omitempty"`
	Digits     int  `yaml:"digits,omitempty"`
}

type FormatOptions struct {
	DecimalPlaces DecimalPlaces `yaml:"decimalPlaces,omitempty"`
	Prefix        string        `yaml:"prefix,omitempty"`
	Suffix        string        `yaml:"suffix,omitempty"`
}

func NewFormatter(opts FormatOptions) Formatter {
	return func(v float64) string {
		return FormatValue(v, opts)
	}
}

// Fixed formats using a fixed number of decimal places, without grouping.
func Fixed(digits int, suffix string) Formatter {
	digits = Clamp(digits, 0, MaxDecimalPlaces)
	return func(v float64) string {
		return preventNegativeZero(strconv.FormatFloat(v, 'f', digits, 64)) + suffix
	}
}

// Values with fractional part are shown with two decimal places unless enforced otherwise.
func autoDigits(v float64) int {
	if strings.Contains(strconv.FormatFloat(v, 'f', -1, 64), ".") {
		return 2
	}
	return 0
}

func FormatValue(v float64, opts FormatOptions) string {
	if !IsFinite(v) {
		return opts.Prefix + strconv.FormatFloat(v, 'f', -1, 64) + opts.Suffix
	}
	digits := autoDigits(v)
	if opts.DecimalPlaces.IsEnforced {
		digits = opts.DecimalPlaces.Digits
	}
	digits = Clamp(digits, 0, MaxDecimalPlaces)

	rounded := RoundValue(v, digits)
	p := message.NewPrinter(language.English)
	s := p.Sprint(number.Decimal(rounded, number.Scale(digits)))
	return opts.Prefix + preventNegativeZero(s) + opts.Suffix
}

// RoundValue rounds half away from zero, using the decimal representation of v.
func RoundValue(v float64, digits int) float64 {
	d := ConvertFloatToDecimal(v, 64)
	if d == nil {
		return v
	}
	d.Context.RoundingMode = decimal.ToNearestAway
	// Call Quantize twice, otherwise one digit may be missing, see https://github.com/ericlagergren/decimal/issues/151
	d.Quantize(digits).Quantize(digits)
	rounded, ok := d.Float64()
	if !ok || !IsFinite(rounded) {
		// Precision exceeded, keep the value and let the printer round.
		return v
	}
	if rounded == 0 {
		return 0
	}
	return rounded
}

// The builtin decimal.Big conversion from float64 is an "exact" conversion, and useless for our cases.
// Therefore, convert using string conversion, even though this requires memory allocation.
// See also https://github.com/ericlagergren/decimal/issues/142
func ConvertFloatToDecimal(v float64, bitSize int) *decimal.Big {
	d, ok := new(decimal.Big).SetString(strconv.FormatFloat(v, 'f', -1, bitSize))
	if !ok {
		return nil
	}
	return d
}

func preventNegativeZero(s string) string {
	if !strings.HasPrefix(s, "-") {
		return s
	}
	if strings.Trim(s, "-0.,") == "" {
		return strings.TrimPrefix(s, "-")
	}
	return s
}
