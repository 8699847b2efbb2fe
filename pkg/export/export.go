package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/matzehuels/hireflow/pkg/errors"
	"github.com/matzehuels/hireflow/pkg/observability"
	"github.com/matzehuels/hireflow/pkg/render"
)

// DefaultDensity is the capture pixel density. Documents are always
// captured at 2x regardless of the on-screen zoom.
const DefaultDensity = 2.0

// Suffix is appended to the export name to form the document filename.
const Suffix = "-workflow.pdf"

// Span names.
const (
	SpanExport   = "export"
	SpanCapture  = "export.capture"
	SpanDocument = "export.document"
	SpanWrite    = "export.write"
)

// Span attribute keys.
const (
	AttrRunID       = "hireflow.export.run_id"
	AttrName        = "hireflow.export.name"
	AttrDensity     = "hireflow.export.density"
	AttrWidth       = "hireflow.export.width"
	AttrHeight      = "hireflow.export.height"
	AttrOrientation = "hireflow.export.orientation"
	AttrBytes       = "hireflow.export.bytes"
)

const tracerName = "github.com/matzehuels/hireflow/pkg/export"

// Surface is a rendered diagram that can be captured.
type Surface interface {
	// AcquireNaturalStyle forces the surface to scale 1.0 with visible
	// overflow and returns a function that restores the previous style.
	AcquireNaturalStyle() (restore func())

	// Capture rasterizes the surface at the given pixel density.
	Capture(ctx context.Context, density float64) (image.Image, error)
}

// Result describes a completed export.
type Result struct {
	RunID       string
	Path        string
	Width       int // page width in points (= bitmap pixels)
	Height      int
	Orientation string
	Bytes       int
	Duration    time.Duration
}

// Option configures an [Exporter].
type Option func(*Exporter)

// WithOutputDir sets the directory documents are written to (default ".").
func WithOutputDir(dir string) Option {
	return func(e *Exporter) {
		if dir != "" {
			e.dir = dir
		}
	}
}

// WithDensity overrides the capture density.
func WithDensity(d float64) Option {
	return func(e *Exporter) {
		if d > 0 {
			e.density = d
		}
	}
}

// WithLogger sets the diagnostic logger (default discards).
func WithLogger(l *log.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithTracerProvider sets the provider spans are created with
// (default the global otel provider).
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Exporter) {
		if tp != nil {
			e.tracer = tp.Tracer(tracerName)
		}
	}
}

// Exporter writes captured surfaces as PDF documents.
// It is stateless between runs and safe for concurrent use.
type Exporter struct {
	dir     string
	density float64
	logger  *log.Logger
	tracer  trace.Tracer
}

// New creates an Exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		dir:     ".",
		density: DefaultDensity,
		logger:  log.New(io.Discard),
		tracer:  otel.GetTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Filename returns the document filename for an export name.
func Filename(name string) string {
	return strings.TrimSpace(name) + Suffix
}

// Export captures s and writes it to <dir>/<name>-workflow.pdf.
func (e *Exporter) Export(ctx context.Context, s Surface, name string) (res Result, err error) {
	start := time.Now()
	res.RunID = uuid.NewString()

	ctx, span := e.tracer.Start(ctx, SpanExport, trace.WithAttributes(
		attribute.String(AttrRunID, res.RunID),
		attribute.String(AttrName, name),
	))
	logger := e.logger.With("run", res.RunID[:8], "name", name)
	observability.Export().OnExportStart(ctx, res.RunID, name)

	defer func() {
		res.Duration = time.Since(start)
		if err != nil {
			err = errors.Wrap(errors.ErrCodeExport, err, "export %s", name)
			endSpan(span, err)
			logger.Error("export failed", "err", err, "elapsed", res.Duration)
		} else {
			span.SetAttributes(attribute.Int(AttrBytes, res.Bytes))
			endSpan(span, nil)
			logger.Info("exported", "path", res.Path, "size", fmt.Sprintf("%dx%d", res.Width, res.Height), "elapsed", res.Duration)
		}
		observability.Export().OnExportComplete(ctx, res.RunID, name, res.Bytes, res.Duration, err)
	}()

	if err := errors.ValidateFilename(strings.TrimSpace(name)); err != nil {
		return res, err
	}
	filename := Filename(name)
	if s == nil {
		return res, errors.New(errors.ErrCodeInvalidInput, "no surface to export")
	}

	var img image.Image
	if err := e.step(ctx, SpanCapture, func(ctx context.Context) error {
		var cerr error
		img, cerr = e.capture(ctx, s)
		return cerr
	}); err != nil {
		return res, err
	}
	b := img.Bounds()
	res.Width, res.Height = b.Dx(), b.Dy()
	res.Orientation = render.Orientation(res.Width, res.Height)
	logger.Debug("captured", "width", res.Width, "height", res.Height, "density", e.density)

	var doc []byte
	if err := e.step(ctx, SpanDocument, func(ctx context.Context) error {
		trace.SpanFromContext(ctx).SetAttributes(
			attribute.Int(AttrWidth, res.Width),
			attribute.Int(AttrHeight, res.Height),
			attribute.String(AttrOrientation, res.Orientation),
		)
		var derr error
		doc, derr = BuildDocument(img)
		return derr
	}); err != nil {
		return res, err
	}

	if err := e.step(ctx, SpanWrite, func(ctx context.Context) error {
		path, werr := writeAtomic(e.dir, filename, doc)
		res.Path = path
		return werr
	}); err != nil {
		res.Path = ""
		return res, err
	}
	res.Bytes = len(doc)
	return res, nil
}

// capture holds the natural style only for the duration of the capture.
func (e *Exporter) capture(ctx context.Context, s Surface) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCapture, err, "capture cancelled")
	}

	restore := s.AcquireNaturalStyle()
	if restore != nil {
		defer restore()
	}

	trace.SpanFromContext(ctx).SetAttributes(attribute.Float64(AttrDensity, e.density))
	img, err := s.Capture(ctx, e.density)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCapture, err, "capture surface")
	}
	if img == nil || img.Bounds().Empty() {
		return nil, errors.New(errors.ErrCodeCapture, "capture produced an empty image")
	}
	return img, nil
}

func (e *Exporter) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := e.tracer.Start(ctx, name)
	err := fn(ctx)
	endSpan(span, err)
	return err
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, strings.TrimSpace(err.Error()))
	}
	span.End()
}

// BuildDocument embeds img as the only content of a single-page PDF whose
// page is exactly the bitmap's pixel size, landscape iff wider than tall.
func BuildDocument(img image.Image) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, errors.New(errors.ErrCodeDocument, "no image to embed")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDocument, err, "encode bitmap")
	}
	doc, err := render.ToPDF(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDocument, err, "build document")
	}
	return doc, nil
}

// writeAtomic writes data next to its destination and renames it into
// place, so readers never observe a partial file.
func writeAtomic(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	dst := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, "."+name+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		cleanup()
		return "", fmt.Errorf("chmod %s: %w", name, err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		cleanup()
		return "", fmt.Errorf("rename %s: %w", name, err)
	}
	return dst, nil
}
