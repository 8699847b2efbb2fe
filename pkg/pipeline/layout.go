package pipeline

import (
	"github.com/matzehuels/hireflow/pkg/render/flow/layout"
	"github.com/matzehuels/hireflow/pkg/workflow"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout computes the card layout for a step tree.
//
// Node-link diagrams are laid out by Graphviz at render time, but they
// still get a card layout so that JSON output and stats stay uniform.
func GenerateLayout(steps []workflow.Step, opts Options) (layout.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, err
	}
	return layout.Build(steps, layout.WithCardWidth(opts.CardWidth)), nil
}
