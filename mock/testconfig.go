// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import "gaugemini/config"

type TestConfig struct {
	gaugeFile config.GaugeFile
	changed   bool
}

// Test configurations are not stored and not thread safe.
// Intended only for use in unit tests.
func NewTestConfig() *TestConfig {
	return &TestConfig{
		gaugeFile: config.NewGaugeFile(),
	}
}

func (t *TestConfig) GetAppName() string {
	return "test"
}

func (t *TestConfig) Path() string {
	return ""
}

func (t *TestConfig) Copy() (config.GaugeFile, error) {
	return t.gaugeFile.Copy(), nil
}

// Set replaces the configuration, the next reload reports a change.
func (t *TestConfig) Set(f config.GaugeFile) {
	t.gaugeFile = f
	t.changed = true
}

func (t *TestConfig) Reload() (bool, error) {
	changed := t.changed
	t.changed = false
	return changed, nil
}
