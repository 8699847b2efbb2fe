// Package sink renders workflow layouts to output formats.
//
// Every renderer takes a [layout.Layout] and functional options:
//
//   - [RenderSVG]: scalable vector output drawn by a [styles.Style]
//   - [Rasterize] and [RenderPNG]: native raster output at a pixel density
//     (2.0 by default) using golang.org/x/image fonts
//   - [RenderPDF]: a single-page PDF embedding the raster image
//   - [RenderJSON]: the positioned cards and connectors as JSON
//   - [RenderText]: a box-drawing grid for terminals, scaled by zoom
//
// Renderers never modify the layout and are safe for concurrent use.
//
// [layout.Layout]: github.com/matzehuels/hireflow/pkg/render/flow/layout.Layout
// [styles.Style]: github.com/matzehuels/hireflow/pkg/render/flow/styles.Style
package sink
