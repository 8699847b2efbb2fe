package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/hireflow/pkg/render/flow/layout"
	"github.com/matzehuels/hireflow/pkg/render/flow/sink"
	"github.com/matzehuels/hireflow/pkg/render/flow/styles"
	"github.com/matzehuels/hireflow/pkg/render/nodelink"
	"github.com/matzehuels/hireflow/pkg/workflow/catalog"
)

// RenderFromLayout generates artifacts for the requested formats.
// The entry supplies the step tree for node-link and DOT output and the
// variant name for JSON output.
func RenderFromLayout(ctx context.Context, entry catalog.Entry, l layout.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if opts.IsNodelink() {
		return renderNodelink(ctx, entry, opts)
	}
	return renderFlow(entry, l, opts)
}

// renderNodelink generates node-link outputs with Graphviz.
func renderNodelink(ctx context.Context, entry catalog.Entry, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(entry.Steps, nodelink.Options{Detailed: opts.Detailed})

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, dot, opts.Scale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(ctx, dot)
		case FormatDOT:
			data = []byte(dot)
		default:
			return nil, fmt.Errorf("unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// renderFlow generates card diagram outputs.
func renderFlow(entry catalog.Entry, l layout.Layout, opts Options) (map[string][]byte, error) {
	style, err := styles.Parse(opts.Style)
	if err != nil {
		return nil, err
	}

	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	pngOpts := []sink.PNGOption{sink.WithPNGStyle(style), sink.WithScale(opts.Scale)}
	if opts.Transparent {
		svgOpts = append(svgOpts, sink.WithTransparent())
		pngOpts = append(pngOpts, sink.WithPNGTransparent())
	}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, pngOpts...)
		case FormatPDF:
			data, err = sink.RenderPDF(l, sink.WithPDFPNGOptions(pngOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONVariant(string(entry.Variant)), sink.WithJSONStyle(style.Name()))
		case FormatDOT:
			data = []byte(nodelink.ToDOT(entry.Steps, nodelink.Options{Detailed: opts.Detailed}))
		case FormatText:
			data = []byte(sink.RenderText(l, sink.WithZoom(opts.Zoom)))
		default:
			return nil, fmt.Errorf("unsupported flow format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
