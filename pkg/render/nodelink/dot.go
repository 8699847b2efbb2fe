package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
	"golang.org/x/image/draw"

	"github.com/matzehuels/hireflow/pkg/render"
	"github.com/matzehuels/hireflow/pkg/render/flow/styles"
	"github.com/matzehuels/hireflow/pkg/workflow"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the step description to node labels.
	// When false, only the title and actor are shown.
	Detailed bool
}

// ToDOT converts a step tree to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(steps []workflow.Step, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=2];\n", styles.ConnectorColor)
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	workflow.Walk(steps, func(s workflow.Step, _ int, _ *workflow.Step) bool {
		fmt.Fprintf(&buf, "  %q [%s];\n", s.ID, strings.Join(fmtAttrs(s, fmtLabel(s, opts.Detailed)), ", "))
		return true
	})

	buf.WriteString("\n")
	for _, e := range Edges(steps) {
		if e.Merge {
			fmt.Fprintf(&buf, "  %q -> %q [style=dashed];\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Edge is a directed link between two steps. Merge edges lead from a branch
// back to the main flow.
type Edge struct {
	From, To string
	Merge    bool
}

// Edges returns the links of the step tree in pre-order.
func Edges(steps []workflow.Step) []Edge {
	var edges []Edge
	sequence(steps, "", false, &edges)
	return edges
}

// sequence links a run of sibling steps. after is the step the run
// continues into once it ends, or "" when nothing follows.
func sequence(steps []workflow.Step, after string, merge bool, edges *[]Edge) {
	for i, s := range steps {
		next, nextMerge := after, merge
		if i < len(steps)-1 {
			next, nextMerge = steps[i+1].ID, false
		}
		link(s, next, nextMerge, edges)
	}
}

func link(s workflow.Step, next string, merge bool, edges *[]Edge) {
	if !s.HasBranches() {
		if !s.Final && next != "" {
			*edges = append(*edges, Edge{From: s.ID, To: next, Merge: merge})
		}
		return
	}
	target := next
	if s.Final {
		target = ""
	}
	for _, b := range s.Branches {
		*edges = append(*edges, Edge{From: s.ID, To: b.ID})
		link(b, target, true, edges)
	}
}

func fmtLabel(s workflow.Step, detailed bool) string {
	label := s.Title + "\n(" + s.Actor.String() + ")"
	if !detailed || s.Description == "" {
		return label
	}
	return label + "\n\n" + s.Description
}

func fmtAttrs(s workflow.Step, label string) []string {
	p := styles.PaletteFor(s.Actor)
	attrs := []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("fillcolor=%q", p.Background),
		fmt.Sprintf("color=%q", p.Ring),
		fmt.Sprintf("fontcolor=%q", p.Text),
	}
	if s.Final {
		attrs = append(attrs, "peripheries=2")
	}
	return attrs
}

func parse(ctx context.Context, dot string) (*graphviz.Graphviz, *graphviz.Graph, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("init graphviz: %w", err)
	}
	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		gv.Close()
		return nil, nil, fmt.Errorf("parse DOT: %w", err)
	}
	return gv, g, nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, g, err := parse(ctx, dot)
	if err != nil {
		return nil, err
	}
	defer gv.Close()
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPNG renders a DOT graph as PNG. A scale of 2.0 produces a 2x
// resolution image; the Graphviz bitmap is resampled with Catmull-Rom.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	gv, g, err := parse(ctx, dot)
	if err != nil {
		return nil, err
	}
	defer gv.Close()
	defer g.Close()

	img, err := gv.RenderImage(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	if scale > 0 && scale != 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0,
			int(math.Ceil(float64(b.Dx())*scale)), int(math.Ceil(float64(b.Dy())*scale))))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPDF renders a DOT graph as a single-page PDF at 2x resolution.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	png, err := RenderPNG(ctx, dot, 2)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(png)
}
