package sink

import (
	"github.com/matzehuels/hireflow/pkg/render"
	"github.com/matzehuels/hireflow/pkg/render/flow/layout"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	pngOpts []PNGOption
}

// WithPDFPNGOptions passes options through to the underlying raster renderer.
func WithPDFPNGOptions(opts ...PNGOption) PDFOption {
	return func(r *pdfRenderer) { r.pngOpts = opts }
}

// RenderPDF renders the layout as a single-page PDF whose page matches the
// raster image size (layout size times density).
func RenderPDF(l layout.Layout, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	png, err := RenderPNG(l, r.pngOpts...)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(png)
}
