// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

type DpPoint struct {
	X unit.Dp
	Y unit.Dp
}

func SubHeading(th *material.Theme, t string) material.LabelStyle {
	l := material.Body2(th, t)
	l.Alignment = text.Start
	return l
}
