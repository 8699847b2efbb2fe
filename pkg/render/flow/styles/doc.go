// Package styles defines how workflow cards and connectors are drawn.
//
// A [Style] writes SVG fragments for the elements of a
// [github.com/matzehuels/hireflow/pkg/render/flow/layout.Layout]. Two styles
// ship with hireflow:
//
//   - [Simple]: tinted cards per actor with a soft shadow and round icons
//   - [Mono]: a greyscale variant suited for printing
//
// Colors per actor come from [PaletteFor], which is a total switch over
// [workflow.Actor]. Text placement inside a card is computed once by
// [TextRows] so the SVG and raster renderers agree line for line.
package styles
