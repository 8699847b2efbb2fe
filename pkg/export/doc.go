// Package export turns a rendered workflow diagram into a single-page PDF.
//
// An export run has three steps, each traced as its own span:
//
//  1. capture: the [Surface] is put into its natural style (scale 1.0,
//     overflow visible) and rasterized at [DefaultDensity]. The style is
//     restored on every exit path, including panics.
//  2. document: [BuildDocument] embeds the bitmap as the only content of
//     a page sized to the bitmap, one pixel per point.
//  3. write: the document is written atomically to
//     <output-dir>/<name>-workflow.pdf.
//
// Every run gets a UUID run id that is attached to its spans, logs and
// [observability.ExportHooks] events. Failures are returned as
// EXPORT_FAILED errors wrapping the step's own error code. There is no
// retry.
//
// [observability.ExportHooks]: github.com/matzehuels/hireflow/pkg/observability.ExportHooks
package export
