// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"bufio"
	"gaugemini/config"
	"gaugemini/gaugeval"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func NewLogger(t *testing.T) (*log.Logger, *bufio.Scanner) {
	r, w, err := os.Pipe()
	if err != nil {
		assert.Fail(t, "failed to create logger mock: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	t.Cleanup(func() { w.Close() })
	return log.New(w, "", log.LstdFlags), bufio.NewScanner(r)
}

// NewGaugeConfig returns a test configuration with a single gauge.
func NewGaugeConfig(preset string, values gaugeval.ValueSeries) *TestConfig {
	c := NewTestConfig()
	c.gaugeFile.Gauges = []config.GaugeConfig{config.NewGaugeConfig("test", preset, values)}
	c.gaugeFile.Sanitize()
	return c
}
