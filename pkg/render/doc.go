// Package render provides visualization rendering for hiring workflows.
//
// # Overview
//
// This package contains the rendering pipeline that turns workflow step
// trees into visual outputs. It provides:
//
//   - Generic format conversion (PNG to single-page PDF)
//   - Branch/merge flow diagrams (in [flow] subpackages)
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// [ToPDF] embeds a PNG image in a one-page PDF sized to the image with one
// pixel per point. It is used by the flow and node-link renderers and by
// the export pipeline.
//
//	png, err := sink.RenderPNG(l)
//	pdf, err := render.ToPDF(png)
//
// # Flow Diagrams
//
// The flow subpackages draw the workflow the way it is read: one card per
// step on a vertical axis, branches fanned out side by side and merged back
// unless the branching step ends the process.
//
//   - [flow/layout]: card and connector positions
//   - [flow/sink]: output formats (SVG, PNG, PDF, JSON, text)
//   - [flow/styles]: visual styles (simple, mono)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the same workflow as a directed graph
// using Graphviz.
//
//	dot := nodelink.ToDOT(steps, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [flow]: github.com/matzehuels/hireflow/pkg/render/flow/layout
// [flow/layout]: github.com/matzehuels/hireflow/pkg/render/flow/layout
// [flow/sink]: github.com/matzehuels/hireflow/pkg/render/flow/sink
// [flow/styles]: github.com/matzehuels/hireflow/pkg/render/flow/styles
// [nodelink]: github.com/matzehuels/hireflow/pkg/render/nodelink
package render
