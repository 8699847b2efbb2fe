package styles

import (
	"bytes"
	"strings"

	"github.com/matzehuels/hireflow/pkg/errors"
	"github.com/matzehuels/hireflow/pkg/workflow"
)

// Style defines the visual appearance of a workflow diagram.
type Style interface {
	// Name returns the identifier used in config files and flags.
	Name() string
	// RenderDefs writes SVG <defs> content (filters, markers).
	RenderDefs(buf *bytes.Buffer)
	// RenderCard writes the SVG for a single step card.
	RenderCard(buf *bytes.Buffer, c Card)
	// RenderConnector writes the SVG for a connector segment.
	RenderConnector(buf *bytes.Buffer, c Connector)
	// Palette returns the colors used for cards of the given actor.
	Palette(a workflow.Actor) Palette
	// ConnectorColor returns the stroke color of connector segments.
	ConnectorColor() string
}

// Card contains all data needed to draw one step.
type Card struct {
	ID          string
	Actor       workflow.Actor
	Title       []string
	Description []string
	Final       bool
	X, Y, W, H  float64
}

// Connector contains the coordinates of one connector segment.
type Connector struct {
	Kind           string
	X1, Y1, X2, Y2 float64
}

// Names lists the available styles.
func Names() []string { return []string{"simple", "mono"} }

// Parse returns the style registered under name.
func Parse(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "simple":
		return Simple{}, nil
	case "mono":
		return Mono{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be %s)", name, strings.Join(Names(), " or "))
}
