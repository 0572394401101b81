// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/go-cmp/cmp"
)

const AppName = "gaugemini"
const gaugeFileName = "gauges.yaml"

// DefaultPath returns the gauge file location within the user configuration directory.
func DefaultPath() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine configuration path: %w", err)
	}
	return filepath.Join(userConfigDir, AppName, gaugeFileName), nil
}

// FileConfig is a gauge file which is read on demand. It is never written.
type FileConfig struct {
	path       string
	logger     *log.Logger
	loaded     bool
	gaugeFile  GaugeFile
	gaugeMutex sync.Mutex
}

func NewFileConfig(path string, logger *log.Logger) Config {
	return &FileConfig{
		path:      path,
		logger:    logger,
		gaugeFile: NewGaugeFile(),
	}
}

func (c *FileConfig) GetAppName() string {
	return AppName
}

func (c *FileConfig) Path() string {
	return c.path
}

// Copy returns a copy which can be modified.
func (c *FileConfig) Copy() (GaugeFile, error) {
	c.gaugeMutex.Lock()
	defer c.gaugeMutex.Unlock()
	if !c.loaded {
		if _, err := c.read(); err != nil {
			return GaugeFile{}, err
		}
	}
	return c.gaugeFile.Copy(), nil
}

func (c *FileConfig) Reload() (bool, error) {
	c.gaugeMutex.Lock()
	defer c.gaugeMutex.Unlock()
	return c.read()
}

func (c *FileConfig) read() (bool, error) {
	if c.path == "" {
		c.loaded = true
		return false, nil
	}
	if _, err := os.Stat(c.path); os.IsNotExist(err) {
		// Without a file, the demo gauges are shown.
		c.logger.Printf("Gauge file \"%s\" does not exist, using defaults.", c.path)
		c.loaded = true
		return false, nil
	}
	file, err := os.ReadFile(c.path)
	if err != nil {
		return false, fmt.Errorf("failed to read gauge file: %w", err)
	}
	gaugeFile, err := ParseGaugeFile(file)
	if err != nil {
		return false, err
	}
	c.loaded = true
	if cmp.Equal(c.gaugeFile, gaugeFile) {
		return false, nil
	}
	c.gaugeFile = gaugeFile
	return true, nil
}
