package pipeline

import (
	"github.com/matzehuels/hireflow/pkg/workflow"
	"github.com/matzehuels/hireflow/pkg/workflow/catalog"
)

// Resolve looks up the variant named in opts and returns its entry.
// The entry holds a private copy of the step tree. A custom Input is
// returned in place of a catalog entry.
func Resolve(opts Options) (catalog.Entry, error) {
	if err := opts.ValidateForResolve(); err != nil {
		return catalog.Entry{}, err
	}
	if opts.Input != nil {
		entry := *opts.Input
		entry.Steps = workflow.Clone(entry.Steps)
		opts.Logger.Debug("using custom workflow", "name", entry.Variant, "steps", workflow.Count(entry.Steps))
		return entry, nil
	}
	entry, err := catalog.Resolve(opts.Variant)
	if err != nil {
		return catalog.Entry{}, err
	}
	opts.Logger.Debug("resolved workflow", "variant", entry.Variant, "label", entry.Label)
	return entry, nil
}
