// Package nodelink renders hiring workflows as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// steps appear as boxes connected by arrows. It is an alternative to the
// branch/merge flow diagram for cases where a traditional graph is
// preferred, e.g. when importing the workflow into other tools.
//
// # Usage
//
// Convert a step tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(steps, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PNG or PDF output:
//
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0) // 2x scale
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//
// # Edges
//
// Edges follow the flow of the diagram: a step points to its branches, and
// a branch that does not end the process points to the step the branches
// merge into. Merge edges are dashed. Final steps have no outgoing edges
// other than to their own branches.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process layout and
// rendering. PDF output is built by [render.ToPDF].
//
// [render.ToPDF]: github.com/matzehuels/hireflow/pkg/render.ToPDF
package nodelink
