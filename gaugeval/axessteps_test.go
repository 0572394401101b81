// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type axesHolder struct {
	AxesSteps *AxesSteps `yaml:"axesSteps"`
}

func decodeAxes(t *testing.T, s string) (*AxesSteps, error) {
	var h axesHolder
	err := yaml.Unmarshal([]byte(s), &h)
	return h.AxesSteps, err
}

func TestAxesStepsYaml(t *testing.T) {
	a, err := decodeAxes(t, "axesSteps: thresholds")
	require.NoError(t, err)
	assert.Equal(t, AxesStepsFromThresholds(), a)

	a, err = decodeAxes(t, "axesSteps: 3")
	require.NoError(t, err)
	assert.Equal(t, AxesStepsEvery(3), a)

	a, err = decodeAxes(t, "axesSteps: [60, 85.5]")
	require.NoError(t, err)
	assert.Equal(t, AxesStepsOf(60, 85.5), a)

	a, err = decodeAxes(t, "axesSteps: null")
	require.NoError(t, err)
	assert.Nil(t, a)

	a, err = decodeAxes(t, "other: 1")
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestAxesStepsYamlInvalid(t *testing.T) {
	for _, s := range []string{
		"axesSteps: 2.5",
		"axesSteps: everything",
		"axesSteps: -1",
		"axesSteps: {a: 1}",
		"axesSteps: [a, b]",
	} {
		_, err := decodeAxes(t, s)
		assert.True(t, errors.Is(err, ErrInvalidAxisSpec), s)
	}
}

func TestAxesStepsRoundTrip(t *testing.T) {
	for _, a := range []*AxesSteps{AxesStepsFromThresholds(), AxesStepsEvery(4), AxesStepsOf(1, 2)} {
		out, err := yaml.Marshal(axesHolder{AxesSteps: a})
		require.NoError(t, err)
		b, err := decodeAxes(t, string(out))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestAxesStepsValidate(t *testing.T) {
	assert.True(t, errors.Is(AxesSteps{}.Validate(), ErrInvalidAxisSpec))
	assert.NoError(t, AxesStepsEvery(0).Validate())
}
