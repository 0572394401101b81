// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeval

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

const axesStepsThresholdsKeyword = "thresholds"

type AxesStepsKind int

// The zero kind is not a valid strategy.
const (
	AxesStepsList AxesStepsKind = iota + 1
	AxesStepsThresholds
	AxesStepsCount
)

// AxesSteps selects how interior axis ticks are generated.
// A nil *AxesSteps means that no axis is drawn.
type AxesSteps struct {
	Kind   AxesStepsKind
	Values []float64
	Count  int
}

func AxesStepsOf(values ...float64) *AxesSteps {
	return &AxesSteps{Kind: AxesStepsList, Values: values}
}

func AxesStepsFromThresholds() *AxesSteps {
	return &AxesSteps{Kind: AxesStepsThresholds}
}

func AxesStepsEvery(count int) *AxesSteps {
	return &AxesSteps{Kind: AxesStepsCount, Count: count}
}

func (a AxesSteps) Validate() error {
	switch a.Kind {
	case AxesStepsThresholds:
		return nil
	case AxesStepsCount:
		if a.Count < 0 {
			return fmt.Errorf("%w: negative step count %d", ErrInvalidAxisSpec, a.Count)
		}
		return nil
	case AxesStepsList:
		for _, v := range a.Values {
			if !IsFinite(v) {
				return fmt.Errorf("%w: invalid value %v", ErrInvalidAxisSpec, v)
			}
		}
		return nil
	}
	return fmt.Errorf("%w: unknown kind %d", ErrInvalidAxisSpec, a.Kind)
}

func (a AxesSteps) MarshalYAML() (interface{}, error) {
	switch a.Kind {
	case AxesStepsThresholds:
		return axesStepsThresholdsKeyword, nil
	case AxesStepsCount:
		return a.Count, nil
	case AxesStepsList:
		return a.Values, nil
	}
	return nil, a.Validate()
}

func (a *AxesSteps) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Value == axesStepsThresholdsKeyword {
			*a = AxesSteps{Kind: AxesStepsThresholds}
			return nil
		}
		n, err := strconv.Atoi(value.Value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidAxisSpec, value.Value)
		}
		*a = AxesSteps{Kind: AxesStepsCount, Count: n}
	case yaml.SequenceNode:
		var values []float64
		if err := value.Decode(&values); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAxisSpec, err)
		}
		*a = AxesSteps{Kind: AxesStepsList, Values: values}
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidAxisSpec, value.Line)
	}
	return a.Validate()
}
