// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeval

import "errors"

// Configuration errors. A gauge failing with one of these cannot be laid out at all.
var (
	ErrMissingBounds    = errors.New("color stops of kind min and max must be defined exactly once")
	ErrInvalidColorSpec = errors.New("invalid color")
	ErrDegenerateRange  = errors.New("degenerate value range")
	ErrInvalidAxisSpec  = errors.New(`axes steps must be a number, "thresholds", a list of numbers or undefined`)
)
