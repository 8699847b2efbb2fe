package viewer

import (
	"context"
	"image"
	"math"
	"sync"

	"github.com/matzehuels/hireflow/pkg/export"
	"github.com/matzehuels/hireflow/pkg/render/flow/layout"
	"github.com/matzehuels/hireflow/pkg/render/flow/sink"
	"github.com/matzehuels/hireflow/pkg/render/flow/styles"
)

// Overflow controls whether a diagram is clipped to its viewport.
type Overflow int

const (
	OverflowClip Overflow = iota
	OverflowVisible
)

func (o Overflow) String() string {
	if o == OverflowVisible {
		return "visible"
	}
	return "clip"
}

// Viewport is the visible window onto the scaled diagram, in pixels.
type Viewport struct {
	X, Y float64 // scroll offset
	W, H float64 // client size
}

// Diagram is the rendered surface: a layout drawn at a visual scale and
// seen through a viewport. It implements [export.Surface].
type Diagram struct {
	mu       sync.Mutex
	layout   layout.Layout
	style    styles.Style
	scale    float64
	overflow Overflow
	viewport Viewport

	// held counts active natural-style acquisitions. While held, scale and
	// overflow changes are recorded in saved and applied on release.
	held  int
	saved struct {
		scale    float64
		overflow Overflow
	}
}

var _ export.Surface = (*Diagram)(nil)

// NewDiagram creates a clipped diagram at scale 1.0.
func NewDiagram(l layout.Layout, style styles.Style) *Diagram {
	if style == nil {
		style = styles.Simple{}
	}
	return &Diagram{layout: l, style: style, scale: 1, overflow: OverflowClip}
}

// Layout returns the diagram's layout.
func (d *Diagram) Layout() layout.Layout {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.layout
}

// SetLayout swaps the drawn layout.
func (d *Diagram) SetLayout(l layout.Layout) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.layout = l
	d.clampLocked()
}

// Scale returns the current visual scale.
func (d *Diagram) Scale() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scale
}

// SetScale changes the visual scale. During a natural-style acquisition
// the change takes effect on release.
func (d *Diagram) SetScale(s float64) {
	if s <= 0 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.held > 0 {
		d.saved.scale = s
		return
	}
	d.scale = s
	d.clampLocked()
}

// Overflow returns the current overflow mode.
func (d *Diagram) Overflow() Overflow {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.overflow
}

// SetOverflow changes the overflow mode, deferred like [Diagram.SetScale].
func (d *Diagram) SetOverflow(o Overflow) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.held > 0 {
		d.saved.overflow = o
		return
	}
	d.overflow = o
}

// ContentSize returns the scaled diagram size in pixels.
func (d *Diagram) ContentSize() (w, h float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.contentLocked()
}

func (d *Diagram) contentLocked() (float64, float64) {
	return d.layout.Width * d.scale, d.layout.Height * d.scale
}

// Viewport returns the visible window.
func (d *Diagram) Viewport() Viewport {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewport
}

// Resize sets the client size and clamps the scroll offset.
func (d *Diagram) Resize(w, h float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.viewport.W, d.viewport.H = math.Max(0, w), math.Max(0, h)
	d.clampLocked()
}

// ScrollTo moves the viewport, clamped to the content.
func (d *Diagram) ScrollTo(x, y float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.viewport.X, d.viewport.Y = x, y
	d.clampLocked()
}

// Center scrolls horizontally so the content is centered in the client
// area, and vertically to the top.
func (d *Diagram) Center() {
	d.mu.Lock()
	defer d.mu.Unlock()
	cw, _ := d.contentLocked()
	d.viewport.X = math.Max(0, (cw-d.viewport.W)/2)
	d.viewport.Y = 0
	d.clampLocked()
}

func (d *Diagram) clampLocked() {
	cw, ch := d.contentLocked()
	d.viewport.X = clamp(d.viewport.X, 0, math.Max(0, cw-d.viewport.W))
	d.viewport.Y = clamp(d.viewport.Y, 0, math.Max(0, ch-d.viewport.H))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// AcquireNaturalStyle forces scale 1.0 and visible overflow and returns a
// release function restoring the style in effect before (or set since)
// the acquisition. Release is idempotent.
func (d *Diagram) AcquireNaturalStyle() func() {
	d.mu.Lock()
	if d.held == 0 {
		d.saved.scale, d.saved.overflow = d.scale, d.overflow
		d.scale, d.overflow = 1, OverflowVisible
	}
	d.held++
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.held--
			if d.held == 0 {
				d.scale, d.overflow = d.saved.scale, d.saved.overflow
				d.clampLocked()
			}
		})
	}
}

// Capture rasterizes what the diagram currently shows at the given
// density: the whole diagram with visible overflow, otherwise only the
// viewport window.
func (d *Diagram) Capture(ctx context.Context, density float64) (image.Image, error) {
	d.mu.Lock()
	l, style := d.layout, d.style
	d.mu.Unlock()
	return d.capture(ctx, density, l, style)
}

func (d *Diagram) capture(ctx context.Context, density float64, l layout.Layout, style styles.Style) (image.Image, error) {
	d.mu.Lock()
	scale, overflow, vp := d.scale, d.overflow, d.viewport
	d.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if density <= 0 {
		density = export.DefaultDensity
	}

	img, err := sink.Rasterize(l, sink.WithPNGStyle(style), sink.WithScale(density*scale))
	if err != nil {
		return nil, err
	}
	if overflow == OverflowVisible || vp.W <= 0 || vp.H <= 0 {
		return img, nil
	}
	window := image.Rect(
		int(math.Round(vp.X*density)), int(math.Round(vp.Y*density)),
		int(math.Round((vp.X+vp.W)*density)), int(math.Round((vp.Y+vp.H)*density)),
	).Intersect(img.Bounds())
	return img.SubImage(window), nil
}

// pinned captures the layout a diagram showed when it was pinned, while
// style acquisition still applies to the live diagram.
type pinned struct {
	d      *Diagram
	layout layout.Layout
	style  styles.Style
}

func (p pinned) AcquireNaturalStyle() func() { return p.d.AcquireNaturalStyle() }

func (p pinned) Capture(ctx context.Context, density float64) (image.Image, error) {
	return p.d.capture(ctx, density, p.layout, p.style)
}

// pin returns a surface fixed to the current layout, unaffected by later
// [Diagram.SetLayout] calls.
func (d *Diagram) pin() export.Surface {
	d.mu.Lock()
	defer d.mu.Unlock()
	return pinned{d: d, layout: d.layout, style: d.style}
}
