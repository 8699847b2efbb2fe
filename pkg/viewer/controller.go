package viewer

import (
	"context"
	"io"
	"math"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hireflow/pkg/export"
	"github.com/matzehuels/hireflow/pkg/render/flow/layout"
	"github.com/matzehuels/hireflow/pkg/render/flow/styles"
	"github.com/matzehuels/hireflow/pkg/workflow/catalog"
)

// Zoom bounds in tenths.
const (
	MinZoom     = 5
	MaxZoom     = 20
	DefaultZoom = 10
)

// Export button labels.
const (
	LabelExport    = "Export as PDF"
	LabelExporting = "Exporting..."
)

// Exporter writes a surface to a document. [*export.Exporter] satisfies it.
type Exporter interface {
	Export(ctx context.Context, s export.Surface, name string) (export.Result, error)
}

// Option configures a [Controller].
type Option func(*Controller)

// WithVariant sets the initially selected variant (default [catalog.Default]).
func WithVariant(v catalog.Variant) Option { return func(c *Controller) { c.variant = v } }

// WithZoom sets the initial zoom factor, rounded to tenths and clamped.
func WithZoom(z float64) Option {
	return func(c *Controller) { c.zoom = clampZoom(int(math.Round(z * 10))) }
}

// WithExporter replaces the export pipeline.
func WithExporter(e Exporter) Option {
	return func(c *Controller) {
		if e != nil {
			c.exporter = e
		}
	}
}

// WithLogger sets the diagnostic logger export failures are reported to.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStyle sets the card style of the diagram.
func WithStyle(s styles.Style) Option { return func(c *Controller) { c.style = s } }

// WithViewport sets the initial client size in pixels.
func WithViewport(w, h float64) Option {
	return func(c *Controller) { c.clientW, c.clientH = w, h }
}

// Controller holds the viewer state: the selected variant, the zoom
// factor and whether an export is in flight. It is safe for concurrent use.
type Controller struct {
	mu        sync.Mutex
	variant   catalog.Variant
	zoom      int
	exporting bool
	last      export.Result
	lastErr   error

	diagram  *Diagram
	exporter Exporter
	logger   *log.Logger
	style    styles.Style

	clientW, clientH float64
}

// New creates a controller showing the configured variant.
func New(opts ...Option) (*Controller, error) {
	c := &Controller{
		variant: catalog.Default,
		zoom:    DefaultZoom,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.exporter == nil {
		c.exporter = export.New(export.WithLogger(c.logger))
	}

	v, err := catalog.ParseVariant(string(c.variant))
	if err != nil {
		return nil, err
	}
	c.variant = v
	c.diagram = NewDiagram(layout.Build(catalog.Lookup(v).Steps), c.style)
	c.diagram.SetScale(c.Zoom())
	c.diagram.Resize(c.clientW, c.clientH)
	c.diagram.Center()
	return c, nil
}

// Diagram returns the rendered surface.
func (c *Controller) Diagram() *Diagram { return c.diagram }

// Variant returns the selected variant.
func (c *Controller) Variant() catalog.Variant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.variant
}

// Entry returns the selected variant's metadata and a copy of its tree.
func (c *Controller) Entry() catalog.Entry {
	return catalog.Lookup(c.Variant())
}

// SelectVariant switches the diagram to v and re-centers the horizontal
// scroll. Unknown variants are rejected and leave the state unchanged.
func (c *Controller) SelectVariant(v catalog.Variant) error {
	parsed, err := catalog.ParseVariant(string(v))
	if err != nil {
		return err
	}
	l := layout.Build(catalog.Lookup(parsed).Steps)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.variant = parsed
	c.diagram.SetLayout(l)
	c.diagram.Center()
	return nil
}

// Cycle selects the variant delta positions away in selector order.
func (c *Controller) Cycle(delta int) {
	all := catalog.All()
	i := catalog.Index(c.Variant())
	n := len(all)
	_ = c.SelectVariant(all[((i+delta)%n+n)%n])
}

// Zoom returns the zoom factor, between 0.5 and 2.0.
func (c *Controller) Zoom() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return float64(c.zoom) / 10
}

// ZoomPercent returns the zoom readout, e.g. 120 for 1.2.
func (c *Controller) ZoomPercent() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom * 10
}

// ZoomIn raises the zoom by 0.1 up to 2.0.
func (c *Controller) ZoomIn() { c.setZoom(func(z int) int { return z + 1 }) }

// ZoomOut lowers the zoom by 0.1 down to 0.5.
func (c *Controller) ZoomOut() { c.setZoom(func(z int) int { return z - 1 }) }

// ResetZoom restores 1.0.
func (c *Controller) ResetZoom() { c.setZoom(func(int) int { return DefaultZoom }) }

func (c *Controller) setZoom(fn func(int) int) {
	c.mu.Lock()
	c.zoom = clampZoom(fn(c.zoom))
	z := float64(c.zoom) / 10
	c.mu.Unlock()
	c.diagram.SetScale(z)
}

func clampZoom(z int) int {
	return min(max(z, MinZoom), MaxZoom)
}

// Resize updates the viewport client size.
func (c *Controller) Resize(w, h float64) {
	c.mu.Lock()
	c.clientW, c.clientH = w, h
	c.mu.Unlock()
	c.diagram.Resize(w, h)
}

// Scroll moves the viewport by dx, dy pixels.
func (c *Controller) Scroll(dx, dy float64) {
	vp := c.diagram.Viewport()
	c.diagram.ScrollTo(vp.X+dx, vp.Y+dy)
}

// ScrollOffset returns the current scroll position in pixels.
func (c *Controller) ScrollOffset() (x, y float64) {
	vp := c.diagram.Viewport()
	return vp.X, vp.Y
}

// Exporting reports whether an export is in flight.
func (c *Controller) Exporting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exporting
}

// ExportLabel returns the export button label for the current state.
func (c *Controller) ExportLabel() string {
	if c.Exporting() {
		return LabelExporting
	}
	return LabelExport
}

// LastExport returns the outcome of the most recent export.
func (c *Controller) LastExport() (export.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.lastErr
}

// Export runs the export pipeline for the selected variant. The diagram is
// pinned when the export starts, so selecting another variant meanwhile
// does not change what gets written. It returns
// false without doing anything while another export is in flight.
// Failures are logged, recorded for [Controller.LastExport] and otherwise
// swallowed.
func (c *Controller) Export(ctx context.Context) bool {
	c.mu.Lock()
	if c.exporting {
		c.mu.Unlock()
		return false
	}
	c.exporting = true
	name := string(c.variant)
	surface := c.diagram.pin()
	c.mu.Unlock()

	var (
		res export.Result
		err error
	)
	defer func() {
		c.mu.Lock()
		c.exporting = false
		c.last, c.lastErr = res, err
		c.mu.Unlock()
	}()

	res, err = c.exporter.Export(ctx, surface, name)
	if err != nil {
		c.logger.Error("export failed", "variant", name, "err", err)
	}
	return true
}
