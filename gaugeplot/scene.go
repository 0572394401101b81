// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gaugeplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gioui.org/f32"
)

var ErrProvisionalScene = errors.New("scene is not final")

// Horizontal text anchor, relative to the text position.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Vertical text alignment, relative to the text position.
type VAlign int

const (
	VAlignBaseline VAlign = iota
	VAlignMiddle
	VAlignTop
)

// Box is an axis aligned bounding box in scene units.
type Box struct {
	Min f32.Point
	Max f32.Point
}

func (b Box) Width() float32 {
	return b.Max.X - b.Min.X
}

func (b Box) Height() float32 {
	return b.Max.Y - b.Min.Y
}

func (b Box) Add(p f32.Point) Box {
	return Box{Min: b.Min.Add(p), Max: b.Max.Add(p)}
}

func (b Box) Union(o Box) Box {
	return Box{
		Min: f32.Pt(min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y)),
		Max: f32.Pt(max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y)),
	}
}

// Item is a drawable element of a scene.
// Bounds returns false if the element has no known extent, e.g. unmeasured text.
type Item interface {
	Bounds(m Metrics) (Box, bool)
}

// Gradient is a horizontal two color gradient across a rectangle.
type Gradient struct {
	From color.NRGBA
	To   color.NRGBA
}

type Rect struct {
	Box
	Radius   float32
	Color    color.NRGBA
	Gradient *Gradient
}

func (r Rect) Bounds(Metrics) (Box, bool) {
	return r.Box, true
}

type Line struct {
	From  f32.Point
	To    f32.Point
	Width float32
	Color color.NRGBA
}

func (l Line) Bounds(Metrics) (Box, bool) {
	half := l.Width / 2
	return Box{
		Min: f32.Pt(min(l.From.X, l.To.X)-half, min(l.From.Y, l.To.Y)-half),
		Max: f32.Pt(max(l.From.X, l.To.X)+half, max(l.From.Y, l.To.Y)+half),
	}, true
}

// Text is a label which is identified by a key, the key is used to look up its measured size.
type Text struct {
	Key     string
	Content string
	Pos     f32.Point
	Anchor  Anchor
	VAlign  VAlign
	Size    float32
	Color   color.NRGBA
}

// Box returns the area covered by text of the given size.
func (t Text) Box(tm TextMetrics) Box {
	var x, y float32
	switch t.Anchor {
	case AnchorMiddle:
		x = t.Pos.X - tm.Width/2
	case AnchorEnd:
		x = t.Pos.X - tm.Width
	default:
		x = t.Pos.X
	}
	switch t.VAlign {
	case VAlignMiddle:
		y = t.Pos.Y - tm.Height/2
	case VAlignTop:
		y = t.Pos.Y
	default:
		y = t.Pos.Y - tm.Height
	}
	return Box{Min: f32.Pt(x, y), Max: f32.Pt(x+tm.Width, y+tm.Height)}
}

func (t Text) Bounds(m Metrics) (Box, bool) {
	if t.Content == "" {
		return Box{}, false
	}
	tm, ok := m[t.Key]
	if !ok {
		return Box{}, false
	}
	return t.Box(tm), true
}

// Group translates its items by Offset. Items are drawn in order.
// If Clip is set, the items are clipped to this rounded rectangle, given in group coordinates.
type Group struct {
	Key    string
	Offset f32.Point
	Clip   *Rect
	Items  []Item
}

func (g *Group) Add(items ...Item) {
	g.Items = append(g.Items, items...)
}

// Bounds of the content, including the group offset.
func (g *Group) Bounds(m Metrics) (Box, bool) {
	b, ok := g.contentBounds(m)
	if !ok {
		return Box{}, false
	}
	return b.Add(g.Offset), true
}

func (g *Group) contentBounds(m Metrics) (b Box, found bool) {
	for _, item := range g.Items {
		ib, ok := item.Bounds(m)
		if !ok {
			continue
		}
		if found {
			b = b.Union(ib)
		} else {
			b = ib
			found = true
		}
	}
	return
}

// Walk calls fn for every text in the group and its subgroups.
func (g *Group) Walk(fn func(t Text)) {
	for _, item := range g.Items {
		switch v := item.(type) {
		case Text:
			fn(v)
		case *Group:
			v.Walk(fn)
		}
	}
}

// Scene is the result of a layout pass.
// Scenes with Final == false are provisional, their text placement is based on missing metrics.
type Scene struct {
	Root        *Group
	Bars        []Bar
	Ticks       []Tick
	Width       float32
	Height      float32
	BarWidth    float32
	TotalHeight float32
	LabelMargin float32
	Final       bool
}

// Texts returns all texts of the scene in drawing order.
func (s *Scene) Texts() []Text {
	var texts []Text
	s.Root.Walk(func(t Text) {
		texts = append(texts, t)
	})
	return texts
}

func BarKey(bar int) string {
	return fmt.Sprintf("bar/%d", bar)
}

func ValueKey(bar int) string {
	return fmt.Sprintf("bar/%d/value", bar)
}

func LabelKey(bar int) string {
	return fmt.Sprintf("bar/%d/label", bar)
}

func AxisKey(tick int) string {
	return fmt.Sprintf("axis/%d", tick)
}

func TargetKey(target int) string {
	return fmt.Sprintf("target/%d", target)
}

const TitleKey = "title"

func isFinitePoint(p f32.Point) bool {
	return !math.IsNaN(float64(p.X)) && !math.IsNaN(float64(p.Y)) && !math.IsInf(float64(p.X), 0) && !math.IsInf(float64(p.Y), 0)
}
