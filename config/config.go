// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

type Config interface {
	GetAppName() string
	// Path of the watched gauge file, empty if not backed by a file.
	Path() string
	Copy() (GaugeFile, error)
	// Reload reads the gauge file again and reports whether its content changed.
	Reload() (bool, error)
}
