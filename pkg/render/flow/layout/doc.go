// Package layout computes card and connector positions for workflow
// diagrams.
//
// # Overview
//
// A workflow is a sequence of top-level steps, each of which may fan out
// into branches that are laid out side by side and, unless the branching
// step is final, merge back into a single line. [Build] turns such a
// sequence into a [Layout]: one [Card] per step and the [Connector]
// segments between them. The result is a pure function of the step tree;
// no fonts are measured and no renderer state is consulted.
//
// # Geometry
//
// All values are in pixels at scale 1.0 with the origin in the top-left
// corner and y growing downwards:
//
//   - Cards are [CardWidth] wide; their height follows from the wrapped
//     title and description (see [WrapText]).
//   - Top-level steps share one vertical axis. A [KindStem] of [TopStem]
//     pixels links a step to the next one when the step is neither final
//     nor branching.
//   - A branching step draws a [KindFanoutStem] down to the fan-out line,
//     a [KindFanout] span across the child centers when there is more than
//     one child, and a [KindBranchStem] into every child.
//   - A branching step that is not final closes the branch row again with
//     one [KindMergeStem] per child, a [KindMerge] span when there is more
//     than one child, and a [KindMergeTail] leaving the merge line.
//
// # Building a Layout
//
//	l := layout.Build(entry.Steps)
//	for _, c := range l.Cards {
//	    fmt.Println(c.StepID, c.X, c.Y, c.W, c.H)
//	}
//
// The returned layout is consumed by the renderers in
// [github.com/matzehuels/hireflow/pkg/render/flow/sink].
package layout
