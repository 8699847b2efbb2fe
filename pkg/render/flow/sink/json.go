package sink

import (
	"encoding/json"

	"github.com/matzehuels/hireflow/pkg/render/flow/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	variant string
	style   string
}

// WithJSONVariant records the workflow variant name in the output.
func WithJSONVariant(v string) JSONOption { return func(r *jsonRenderer) { r.variant = v } }

// WithJSONStyle records the style name (e.g., "simple", "mono") in the output.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Variant    string          `json:"variant,omitempty"`
	Style      string          `json:"style,omitempty"`
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	Margin     float64         `json:"margin"`
	Cards      []jsonCard      `json:"cards"`
	Connectors []jsonConnector `json:"connectors"`
}

type jsonCard struct {
	ID          string   `json:"id"`
	Actor       string   `json:"actor"`
	Title       []string `json:"title"`
	Description []string `json:"description,omitempty"`
	Depth       int      `json:"depth"`
	Final       bool     `json:"final,omitempty"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
}

type jsonConnector struct {
	Kind  string  `json:"kind"`
	Owner string  `json:"owner"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
}

// RenderJSON exports the positioned cards and connectors as a
// pretty-printed JSON document. Cards keep pre-order step order.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Variant:    r.variant,
		Style:      r.style,
		Width:      l.Width,
		Height:     l.Height,
		Margin:     l.Margin,
		Cards:      make([]jsonCard, 0, len(l.Cards)),
		Connectors: make([]jsonConnector, 0, len(l.Connectors)),
	}
	for _, c := range l.Cards {
		out.Cards = append(out.Cards, jsonCard{
			ID:          c.StepID,
			Actor:       c.Actor.String(),
			Title:       c.Title,
			Description: c.Description,
			Depth:       c.Depth,
			Final:       c.Final,
			X:           c.X,
			Y:           c.Y,
			Width:       c.W,
			Height:      c.H,
		})
	}
	for _, c := range l.Connectors {
		out.Connectors = append(out.Connectors, jsonConnector{
			Kind: string(c.Kind), Owner: c.OwnerID,
			X1: c.X1, Y1: c.Y1, X2: c.X2, Y2: c.Y2,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
