// Package pipeline provides the render pipeline shared by the CLI commands.
//
// The pipeline has three stages:
//
//  1. Resolve: look up a workflow variant in the catalog
//  2. Layout: position cards and connectors for the step tree
//  3. Render: produce artifacts in one or more formats
//
// Each stage can be run on its own or as part of [Runner.Execute]. Layouts
// and artifacts are cached in memory through the runner's [cache.Cache].
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Variant: "philippines",
//	    Formats: []string{"svg", "pdf"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hireflow/pkg/cache"
	"github.com/matzehuels/hireflow/pkg/errors"
	"github.com/matzehuels/hireflow/pkg/render/flow/layout"
	"github.com/matzehuels/hireflow/pkg/render/flow/sink"
	"github.com/matzehuels/hireflow/pkg/render/flow/styles"
	"github.com/matzehuels/hireflow/pkg/workflow/catalog"
)

// =============================================================================
// Default Values
// =============================================================================

// Visualization types.
const (
	VizTypeFlow     = "flow"
	VizTypeNodelink = "nodelink"
)

const (
	// DefaultVizType is the card diagram.
	DefaultVizType = VizTypeFlow

	// DefaultStyle is the default card style.
	DefaultStyle = "simple"

	// DefaultScale is the default raster density.
	DefaultScale = sink.DefaultDensity

	// DefaultZoom is the default text grid zoom.
	DefaultZoom = 1.0
)

// DefaultVariant is the default workflow variant.
var DefaultVariant = string(catalog.Default)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatText = "txt"
)

// Formats lists every output format in display order.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatDOT, FormatText}

// vizFormats lists the formats each visualization type can produce.
var vizFormats = map[string][]string{
	VizTypeFlow:     {FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatDOT, FormatText},
	VizTypeNodelink: {FormatSVG, FormatPNG, FormatPDF, FormatDOT},
}

// VizTypes lists the visualization types.
var VizTypes = []string{VizTypeFlow, VizTypeNodelink}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Resolve options
	Variant string         `json:"variant"`
	Input   *catalog.Entry `json:"-"` // custom workflow, replaces the catalog lookup

	// Layout options
	VizType   string  `json:"viz_type,omitempty"`
	CardWidth float64 `json:"card_width,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	Scale       float64  `json:"scale,omitempty"`
	Transparent bool     `json:"transparent,omitempty"`
	Detailed    bool     `json:"detailed,omitempty"` // node-link labels include descriptions
	Zoom        float64  `json:"zoom,omitempty"`     // text output zoom
	Refresh     bool     `json:"refresh,omitempty"`  // bypass cached values

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Entry is the resolved workflow.
	Entry catalog.Entry

	// Layout is the computed card layout.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	StepCount      int
	ConnectorCount int
	LayoutTime     time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid for the visualization
// type. An empty vizType means [DefaultVizType].
func ValidateFormats(vizType string, formats []string) error {
	if vizType == "" {
		vizType = DefaultVizType
	}
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
		if !slices.Contains(vizFormats[vizType], f) {
			return errors.New(errors.ErrCodeInvalidFormat,
				"format %q is not available for %s diagrams (use one of: %s)", f, vizType, strings.Join(vizFormats[vizType], ", "))
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	_, err := styles.Parse(style)
	return err
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !slices.Contains(VizTypes, vizType) {
		return errors.New(errors.ErrCodeInvalidVizType,
			"invalid viz_type: %q (must be one of: %s)", vizType, strings.Join(VizTypes, ", "))
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults for the
// full pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForResolve(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForResolve checks the variant name. With Input set, the variant
// is taken from the input and only needs to be a usable file name stem.
func (o *Options) ValidateForResolve() error {
	if o.Input != nil {
		if len(o.Input.Steps) == 0 {
			return errors.New(errors.ErrCodeInvalidInput, "workflow has no steps")
		}
		if strings.TrimSpace(string(o.Input.Variant)) == "" {
			o.Input.Variant = "custom"
		}
		if err := errors.ValidateFilename(string(o.Input.Variant)); err != nil {
			return err
		}
		o.Variant = string(o.Input.Variant)
		o.setLogger()
		return nil
	}
	if strings.TrimSpace(o.Variant) == "" {
		o.Variant = DefaultVariant
	}
	v, err := catalog.ParseVariant(o.Variant)
	if err != nil {
		return err
	}
	o.Variant = string(v)
	o.setLogger()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.CardWidth <= 0 {
		o.CardWidth = layout.CardWidth
	}
	o.setLogger()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return ValidateVizType(o.VizType)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Zoom <= 0 {
		o.Zoom = DefaultZoom
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.VizType, o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// IsNodelink returns true if this is a node-link visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		VizType:   o.VizType,
		CardWidth: o.CardWidth,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// Only the options that affect the given format are included, so e.g. a
// scale change does not invalidate cached SVG.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Style: o.Style}
	switch format {
	case FormatPNG, FormatPDF:
		k.Scale = o.Scale
		k.Transparent = o.Transparent
	case FormatSVG:
		k.Transparent = o.Transparent
	case FormatText:
		k.Zoom = o.Zoom
	}
	if format == FormatDOT || o.IsNodelink() {
		k.Detailed = o.Detailed
	}
	return k
}
