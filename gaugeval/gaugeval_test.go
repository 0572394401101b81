// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalar(t *testing.T) {
	s := Scalar(3)
	assert.Equal(t, ValueSeries{{Field: DefaultField, Value: 3}}, s)
	assert.Equal(t, []string{DefaultField}, s.Fields())
}

func TestParseFieldValue(t *testing.T) {
	fv, err := ParseFieldValue("cpu=42.5")
	assert.NoError(t, err)
	assert.Equal(t, FieldValue{Field: "cpu", Value: 42.5}, fv)

	fv, err = ParseFieldValue("-7")
	assert.NoError(t, err)
	assert.Equal(t, FieldValue{Field: DefaultField, Value: -7}, fv)

	fv, err = ParseFieldValue("=1")
	assert.NoError(t, err)
	assert.Equal(t, DefaultField, fv.Field)

	_, err = ParseFieldValue("cpu=high")
	assert.Error(t, err)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(7, 0, 5))
	assert.Equal(t, 0.0, Clamp(-1.0, 0, 5))
	assert.Equal(t, "b", Clamp("b", "a", "c"))
}
