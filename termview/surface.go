// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package termview

import (
	"gaugemini/gaugeplot"
	"gaugemini/gaugeval"
	"image/color"
	"io"
	"math"
	"strings"

	"gioui.org/f32"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

type cell struct {
	r     rune
	fg    color.NRGBA
	bg    color.NRGBA
	hasFg bool
	hasBg bool
}

func (c cell) style(r *lipgloss.Renderer) lipgloss.Style {
	st := r.NewStyle()
	if c.hasFg {
		st = st.Foreground(lipgloss.Color(gaugeval.Hex(opaque(c.fg))))
	}
	if c.hasBg {
		st = st.Background(lipgloss.Color(gaugeval.Hex(opaque(c.bg))))
	}
	return st
}

// Terminals do not blend.
func opaque(c color.NRGBA) color.NRGBA {
	c.A = 255
	return c
}

// Surface draws scenes as a grid of terminal cells. Each cell covers CellWidth x CellHeight scene units.
type Surface struct {
	CellWidth  float32
	CellHeight float32
	renderer   *lipgloss.Renderer
}

func NewSurface(w io.Writer) *Surface {
	return &Surface{
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		renderer:   lipgloss.NewRenderer(w),
	}
}

// MeasureText returns the size of text in scene units, one line of cells.
func (s *Surface) MeasureText(t gaugeplot.Text) gaugeplot.TextMetrics {
	if t.Content == "" {
		return gaugeplot.TextMetrics{}
	}
	return gaugeplot.TextMetrics{
		Width:  float32(lipgloss.Width(t.Content)) * s.CellWidth,
		Height: s.CellHeight,
	}
}

type canvas struct {
	s     *Surface
	cols  int
	rows  int
	cells [][]cell
}

func (s *Surface) newCanvas(width, height float32) *canvas {
	c := &canvas{
		s:    s,
		cols: max(int(math.Ceil(float64(width/s.CellWidth))), 1),
		rows: max(int(math.Ceil(float64(height/s.CellHeight))), 1),
	}
	c.cells = make([][]cell, c.rows)
	for y := range c.cells {
		c.cells[y] = make([]cell, c.cols)
		for x := range c.cells[y] {
			c.cells[y][x].r = ' '
		}
	}
	return c
}

// Render draws a final scene and returns the styled terminal lines.
func (s *Surface) Render(scene *gaugeplot.Scene) (string, error) {
	if !scene.Final {
		return "", gaugeplot.ErrProvisionalScene
	}
	c := s.newCanvas(scene.Width, scene.Height)
	view := gaugeplot.Box{Max: f32.Pt(scene.Width, scene.Height)}
	c.drawGroup(scene.Root, f32.Point{}, view)
	return c.String(), nil
}

func (c *canvas) cellCenter(x, y int) f32.Point {
	return f32.Pt((float32(x)+0.5)*c.s.CellWidth, (float32(y)+0.5)*c.s.CellHeight)
}

func contains(b gaugeplot.Box, p f32.Point) bool {
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}

func intersect(a, b gaugeplot.Box) gaugeplot.Box {
	return gaugeplot.Box{
		Min: f32.Pt(max(a.Min.X, b.Min.X), max(a.Min.Y, b.Min.Y)),
		Max: f32.Pt(min(a.Max.X, b.Max.X), min(a.Max.Y, b.Max.Y)),
	}
}

func (c *canvas) drawGroup(g *gaugeplot.Group, origin f32.Point, clip gaugeplot.Box) {
	origin = origin.Add(g.Offset)
	if g.Clip != nil {
		clip = intersect(clip, g.Clip.Box.Add(origin))
	}
	for _, item := range g.Items {
		switch v := item.(type) {
		case gaugeplot.Rect:
			c.drawRect(v, origin, clip)
		case gaugeplot.Line:
			c.drawLine(v, origin, clip)
		case gaugeplot.Text:
			c.drawText(v, origin)
		case *gaugeplot.Group:
			c.drawGroup(v, origin, clip)
		}
	}
}

func (c *canvas) drawRect(r gaugeplot.Rect, origin f32.Point, clip gaugeplot.Box) {
	b := intersect(r.Box.Add(origin), clip)
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			p := c.cellCenter(x, y)
			if !contains(b, p) {
				continue
			}
			bg := r.Color
			if r.Gradient != nil && r.Width() > 0 {
				t := (p.X - origin.X - r.Min.X) / r.Width()
				bg = gaugeval.Lerp(r.Gradient.From, r.Gradient.To, float64(t))
			}
			c.cells[y][x].bg = bg
			c.cells[y][x].hasBg = true
		}
	}
}

// Only horizontal and vertical lines can be shown.
func (c *canvas) drawLine(l gaugeplot.Line, origin f32.Point, clip gaugeplot.Box) {
	if l.Width <= 0 {
		return
	}
	from := l.From.Add(origin)
	to := l.To.Add(origin)
	switch {
	case from.Y == to.Y:
		y := int(from.Y / c.s.CellHeight)
		for x := 0; x < c.cols; x++ {
			cx := c.cellCenter(x, y).X
			if cx >= min(from.X, to.X) && cx < max(from.X, to.X) && contains(clip, f32.Pt(cx, from.Y)) {
				c.setRune(x, y, '─', l.Color)
			}
		}
	case from.X == to.X:
		x := int(from.X / c.s.CellWidth)
		for y := 0; y < c.rows; y++ {
			cy := c.cellCenter(x, y).Y
			if cy >= min(from.Y, to.Y) && cy < max(from.Y, to.Y) && contains(clip, f32.Pt(from.X, cy)) {
				c.setRune(x, y, '│', l.Color)
			}
		}
	}
}

func (c *canvas) drawText(t gaugeplot.Text, origin f32.Point) {
	if t.Content == "" {
		return
	}
	box := t.Box(c.s.MeasureText(t)).Add(origin)
	y := int(math.Floor(float64((box.Min.Y + box.Max.Y) / 2 / c.s.CellHeight)))
	x := int(math.Round(float64(box.Min.X / c.s.CellWidth)))
	for _, r := range t.Content {
		c.setRune(x, y, r, t.Color)
		x += max(ansi.StringWidth(string(r)), 1)
	}
}

func (c *canvas) setRune(x, y int, r rune, fg color.NRGBA) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.cells[y][x].r = r
	c.cells[y][x].fg = fg
	c.cells[y][x].hasFg = true
}

// String joins runs of equally styled cells.
func (c *canvas) String() string {
	lines := make([]string, c.rows)
	for y, row := range c.cells {
		var sb strings.Builder
		var run strings.Builder
		prev := row[0]
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(prev.style(c.s.renderer).Render(run.String()))
				run.Reset()
			}
		}
		for _, cl := range row {
			if cl.hasFg != prev.hasFg || cl.hasBg != prev.hasBg || cl.fg != prev.fg || cl.bg != prev.bg {
				flush()
			}
			prev = cl
			run.WriteRune(cl.r)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
