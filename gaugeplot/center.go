// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeplot

import (
	"gioui.org/f32"
)

// Extent returns the bounds of the scene content, without the root offset.
// The extent may reach into negative coordinates, e.g. for bar labels or overflowing fills.
func Extent(s *Scene, m Metrics) (Box, bool) {
	return s.Root.contentBounds(m)
}

// CenterOffset returns the root offset which centers the extent within the viewport.
func CenterOffset(extent Box, viewport f32.Point) f32.Point {
	return f32.Pt(
		(viewport.X-extent.Width())/2-extent.Min.X,
		(viewport.Y-extent.Height())/2-extent.Min.Y,
	)
}

// AutoCenter moves the scene content to the center of the viewport and returns the applied translation.
// Running it again with unchanged metrics returns a zero translation.
func AutoCenter(s *Scene, m Metrics) f32.Point {
	extent, ok := Extent(s, m)
	if !ok {
		return f32.Point{}
	}
	offset := CenterOffset(extent, f32.Pt(s.Width, s.Height))
	if !isFinitePoint(offset) {
		return f32.Point{}
	}
	delta := offset.Sub(s.Root.Offset)
	s.Root.Offset = offset
	return delta
}
