package sink

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/hireflow/pkg/render/flow/layout"
	"github.com/matzehuels/hireflow/pkg/workflow"
)

// Terminal cell size in layout pixels at zoom 1.0.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// CellClass tells a [Painter] what a run of terminal cells shows.
type CellClass int

const (
	CellBlank CellClass = iota
	CellConnector
	CellBorder
	CellLabel
	CellTitle
	CellText
)

// Painter decorates a run of cells that share a class and actor, e.g. with
// ANSI colors. The actor is meaningful for card cells only.
type Painter func(class CellClass, actor workflow.Actor, s string) string

// TextOption configures [RenderText].
type TextOption func(*textRenderer)

type textRenderer struct {
	zoom    float64
	painter Painter
}

// WithZoom scales the grid: 2.0 doubles the number of cells per card.
func WithZoom(z float64) TextOption {
	return func(r *textRenderer) {
		if z > 0 {
			r.zoom = z
		}
	}
}

// WithPainter sets the function used to decorate cell runs.
func WithPainter(p Painter) TextOption { return func(r *textRenderer) { r.painter = p } }

type cell struct {
	r     rune
	class CellClass
	actor workflow.Actor
}

type grid struct {
	cells  [][]cell
	cw, ch float64
}

// TextSize returns the number of columns and rows [RenderText] produces for
// l at the given zoom.
func TextSize(l layout.Layout, zoom float64) (int, int) {
	if zoom <= 0 {
		zoom = 1
	}
	g := grid{cw: CellWidth / zoom, ch: CellHeight / zoom}
	return g.col(l.Width) + 1, g.row(l.Height) + 1
}

// RenderText draws the layout with box-drawing characters. Card text is
// truncated to the space the card occupies at the chosen zoom.
func RenderText(l layout.Layout, opts ...TextOption) string {
	r := textRenderer{zoom: 1}
	for _, opt := range opts {
		opt(&r)
	}

	cols, rows := TextSize(l, r.zoom)
	g := grid{cw: CellWidth / r.zoom, ch: CellHeight / r.zoom, cells: make([][]cell, rows)}
	for i := range g.cells {
		g.cells[i] = make([]cell, cols)
		for j := range g.cells[i] {
			g.cells[i][j] = cell{r: ' '}
		}
	}

	for _, c := range l.Connectors {
		g.connector(c)
	}
	for _, c := range l.Cards {
		g.card(c)
	}
	return g.String(r.painter)
}

func (g *grid) col(x float64) int { return int(math.Round(x / g.cw)) }
func (g *grid) row(y float64) int { return int(math.Round(y / g.ch)) }

func (g *grid) set(r, c int, ch rune, class CellClass, actor workflow.Actor) {
	if r < 0 || r >= len(g.cells) || c < 0 || c >= len(g.cells[r]) {
		return
	}
	g.cells[r][c] = cell{r: ch, class: class, actor: actor}
}

func (g *grid) line(r, c int, ch rune) {
	if r < 0 || r >= len(g.cells) || c < 0 || c >= len(g.cells[r]) {
		return
	}
	cur := g.cells[r][c]
	switch {
	case cur.class != CellBlank && cur.class != CellConnector:
		return
	case cur.r != ' ' && cur.r != ch:
		ch = '┼'
	}
	g.cells[r][c] = cell{r: ch, class: CellConnector}
}

func (g *grid) connector(c layout.Connector) {
	if c.Kind.Horizontal() {
		r := g.row(c.Y1)
		for x := g.col(c.X1); x <= g.col(c.X2); x++ {
			g.line(r, x, '─')
		}
		return
	}
	x := g.col(c.X1)
	for r := g.row(c.Y1); r <= g.row(c.Y2); r++ {
		g.line(r, x, '│')
	}
}

func (g *grid) card(c layout.Card) {
	x0, y0 := g.col(c.X), g.row(c.Y)
	x1 := max(g.col(c.X+c.W)-1, x0+2)
	y1 := max(g.row(c.Y+c.H)-1, y0+2)
	a := c.Actor

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			ch := ' '
			class := CellText
			switch {
			case y == y0 && x == x0:
				ch, class = '╭', CellBorder
			case y == y0 && x == x1:
				ch, class = '╮', CellBorder
			case y == y1 && x == x0:
				ch, class = '╰', CellBorder
			case y == y1 && x == x1:
				ch, class = '╯', CellBorder
			case y == y0 || y == y1:
				ch, class = '─', CellBorder
			case x == x0 || x == x1:
				ch, class = '│', CellBorder
			}
			g.set(y, x, ch, class, a)
		}
	}

	type textLine struct {
		s     string
		class CellClass
	}
	lines := []textLine{{strings.ToUpper(a.String()), CellLabel}}
	for _, t := range c.Title {
		lines = append(lines, textLine{t, CellTitle})
	}
	for _, d := range c.Description {
		lines = append(lines, textLine{d, CellText})
	}

	width := x1 - x0 - 3
	for i, tl := range lines {
		y := y0 + 1 + i
		if y >= y1 || width <= 0 {
			break
		}
		x := x0 + 2
		for _, ch := range truncate(tl.s, width) {
			g.set(y, x, ch, tl.class, a)
			x++
		}
	}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}

func (g *grid) String(p Painter) string {
	var out strings.Builder
	for i, row := range g.cells {
		end := len(row)
		for end > 0 && row[end-1].class == CellBlank {
			end--
		}
		row = row[:end]

		for start := 0; start < len(row); {
			stop := start + 1
			for stop < len(row) && row[stop].class == row[start].class && row[stop].actor == row[start].actor {
				stop++
			}
			var run strings.Builder
			for _, c := range row[start:stop] {
				run.WriteRune(c.r)
			}
			if p != nil {
				out.WriteString(p(row[start].class, row[start].actor, run.String()))
			} else {
				out.WriteString(run.String())
			}
			start = stop
		}
		if i < len(g.cells)-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
