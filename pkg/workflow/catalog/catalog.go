// Package catalog holds the built-in hiring workflows and resolves them by
// variant name.
//
// Four variants ship with hireflow:
//
//   - singapore: the shared employer journey
//   - philippines: the employer journey without the Single Pass login option
//   - candidate: the candidate journey from application to hire
//   - admin: the administrator's management and approval process
//
// The philippines tree is derived from the employer base with
// [workflow.FilterBranch] when the package is initialized. [Resolve] hands
// out deep copies, so callers may modify what they receive.
package catalog

import (
	"strings"

	"github.com/matzehuels/hireflow/pkg/errors"
	"github.com/matzehuels/hireflow/pkg/workflow"
)

// Variant names one of the built-in workflows.
type Variant string

const (
	Singapore   Variant = "singapore"
	Philippines Variant = "philippines"
	Candidate   Variant = "candidate"
	Admin       Variant = "admin"
)

// Default is the variant shown when nothing else is selected.
const Default = Singapore

// Title is the heading shown above every workflow.
const Title = "Business Process Workflow"

// Footer is the caption shown below every workflow.
const Footer = "A visual representation of the hiring flow."

// Entry is a resolved workflow together with its display metadata.
type Entry struct {
	Variant  Variant
	Label    string
	Subtitle string
	Steps    []workflow.Step
}

// Filename returns the output file name for the entry, e.g.
// "singapore-workflow.pdf" for ext "pdf".
func (e Entry) Filename(ext string) string {
	return string(e.Variant) + "-workflow." + strings.TrimPrefix(ext, ".")
}

type entry struct {
	label    string
	subtitle string
	steps    []workflow.Step
}

var registry = map[Variant]entry{
	Singapore: {
		label:    "Employer Workflow (SG)",
		subtitle: "Visualizing the MingHwee.com Singapore Employer Journey",
		steps:    employerSteps,
	},
	Philippines: {
		label:    "Employer Workflow (PH)",
		subtitle: "Visualizing the MingHwee.com Philippines Employer Journey",
		steps:    workflow.FilterBranch(employerSteps, "E2", "E2a"),
	},
	Candidate: {
		label:    "Candidate Workflow",
		subtitle: "Visualizing the Complete Candidate Journey from Application to Hire",
		steps:    candidateSteps,
	},
	Admin: {
		label:    "Admin Workflow",
		subtitle: "Visualizing the Administrator's Management & Approval Process",
		steps:    adminSteps,
	},
}

// All returns every variant in selector order.
func All() []Variant {
	return []Variant{Singapore, Philippines, Candidate, Admin}
}

// ParseVariant parses a variant name case-insensitively.
func ParseVariant(name string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := registry[v]; !ok {
		return "", errors.New(errors.ErrCodeInvalidVariant,
			"unknown variant: %q (must be one of %s)", name, strings.Join(Names(), ", "))
	}
	return v, nil
}

// Names returns the variant names in selector order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, v := range all {
		names[i] = string(v)
	}
	return names
}

// Resolve looks up a variant by name and returns a deep copy of its tree.
func Resolve(name string) (Entry, error) {
	v, err := ParseVariant(name)
	if err != nil {
		return Entry{}, err
	}
	return Lookup(v), nil
}

// Lookup returns the entry for a known variant. Unknown variants yield an
// entry with no steps.
func Lookup(v Variant) Entry {
	e := registry[v]
	return Entry{
		Variant:  v,
		Label:    e.label,
		Subtitle: e.subtitle,
		Steps:    workflow.Clone(e.steps),
	}
}

// Index returns the position of v in [All], or -1.
func Index(v Variant) int {
	for i, candidate := range All() {
		if candidate == v {
			return i
		}
	}
	return -1
}
