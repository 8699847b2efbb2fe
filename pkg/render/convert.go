package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Page orientations reported by [Orientation].
const (
	Portrait  = "portrait"
	Landscape = "landscape"
)

var disableConfigDir sync.Once

// Orientation returns [Landscape] when the page is wider than tall and
// [Portrait] otherwise, including for square pages.
func Orientation(w, h int) string {
	if w > h {
		return Landscape
	}
	return Portrait
}

// ToPDF wraps a PNG image in a single-page PDF. The page is sized to the
// image's pixel dimensions with one pixel per point, so the image fills the
// page without scaling.
func ToPDF(png []byte) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(png))
	if err != nil {
		return nil, fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("empty image: %dx%d", cfg.Width, cfg.Height)
	}

	disableConfigDir.Do(api.DisableConfigDir)

	imp, err := api.Import(fmt.Sprintf("dimensions:%d %d, position:full", cfg.Width, cfg.Height), types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("page setup: %w", err)
	}

	var out bytes.Buffer
	if err := api.ImportImages(nil, &out, []io.Reader{bytes.NewReader(png)}, imp, nil); err != nil {
		return nil, fmt.Errorf("build pdf (%s %dx%d): %w", Orientation(cfg.Width, cfg.Height), cfg.Width, cfg.Height, err)
	}
	return out.Bytes(), nil
}

// PageCount returns the number of pages in a PDF document.
func PageCount(pdf []byte) (int, error) {
	disableConfigDir.Do(api.DisableConfigDir)
	return api.PageCount(bytes.NewReader(pdf), nil)
}
