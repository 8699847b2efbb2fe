package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		img.Set(x, h/2, color.Black)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestOrientation(t *testing.T) {
	tests := []struct {
		w, h int
		want string
	}{
		{200, 100, Landscape},
		{100, 200, Portrait},
		{100, 100, Portrait},
	}
	for _, tt := range tests {
		if got := Orientation(tt.w, tt.h); got != tt.want {
			t.Errorf("Orientation(%d, %d) = %q, want %q", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestToPDF(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"landscape", 1200, 800},
		{"portrait", 800, 1200},
		{"wide", 3000, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdf, err := ToPDF(testPNG(t, tt.w, tt.h))
			if err != nil {
				t.Fatalf("ToPDF() error: %v", err)
			}
			if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
				t.Fatal("ToPDF() did not produce a PDF header")
			}
			n, err := PageCount(pdf)
			if err != nil {
				t.Fatalf("PageCount error: %v", err)
			}
			if n != 1 {
				t.Errorf("PageCount = %d, want 1", n)
			}

			dims, err := api.PageDims(bytes.NewReader(pdf), nil)
			if err != nil {
				t.Fatalf("PageDims error: %v", err)
			}
			if len(dims) != 1 || dims[0].Width != float64(tt.w) || dims[0].Height != float64(tt.h) {
				t.Errorf("page dims = %v, want [%dx%d]", dims, tt.w, tt.h)
			}
		})
	}
}

func TestToPDFRejectsGarbage(t *testing.T) {
	if _, err := ToPDF([]byte("not an image")); err == nil {
		t.Error("ToPDF(garbage) should fail")
	}
}
