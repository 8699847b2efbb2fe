// Package workflow defines the step tree that hireflow renders.
//
// # Overview
//
// A workflow is an ordered sequence of top-level [Step] values. A step may
// fan out into parallel [Step.Branches]; each branch is itself a step and may
// branch again to any depth. A [Step.Final] step ends its path: no
// continuation connector is drawn after it.
//
// Trees are strict hierarchies built once as literals and never mutated.
// Every helper in this package is a pure function: [FilterBranch] and [Clone]
// return new trees and leave their input untouched.
//
// # Actors
//
// [Actor] is a closed set of three kinds (user, admin, system). It only
// selects icon and color styling; it carries no behavioral meaning.
//
// # Traversal
//
//	workflow.Walk(steps, func(s workflow.Step, depth int, parent *workflow.Step) bool {
//	    fmt.Println(strings.Repeat("  ", depth) + s.Title)
//	    return true
//	})
package workflow
