// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
	"github.com/stretchr/testify/assert"
)

func TestGaugeCardSize(t *testing.T) {
	var ops op.Ops
	gtx := layout.Context{Ops: &ops}
	gtx.Constraints.Max = image.Pt(800, 600)
	gauge := func(gtx layout.Context) layout.Dimensions {
		return layout.Dimensions{Size: image.Pt(100, 50)}
	}

	dims := NewGaugeCard("").Layout(gtx, NewDarkMaterialTheme(), gauge)
	// margin, border and padding on both sides
	assert.Equal(t, image.Pt(142, 92), dims.Size)

	titled := NewGaugeCard("cpu").Layout(gtx, NewLightMaterialTheme(), gauge)
	assert.Equal(t, 142, titled.Size.X)
	assert.Greater(t, titled.Size.Y, 92)
}

func TestGaugeCardBorderFollowsTheme(t *testing.T) {
	c := NewGaugeCard("x")
	dark, light := NewDarkMaterialTheme(), NewLightMaterialTheme()
	assert.NotEqual(t, c.borderColor(dark), c.borderColor(light))
	assert.Equal(t, uint8(0x40), c.borderColor(dark).A)
}
