package workflow

// WalkFunc is called for every step during [Walk]. Returning false skips the
// step's branches.
type WalkFunc func(s Step, depth int, parent *Step) bool

// Walk visits steps depth-first in pre-order. Top-level steps have depth 0
// and a nil parent.
func Walk(steps []Step, fn WalkFunc) {
	walk(steps, 0, nil, fn)
}

func walk(steps []Step, depth int, parent *Step, fn WalkFunc) {
	for i := range steps {
		s := &steps[i]
		if fn(*s, depth, parent) {
			walk(s.Branches, depth+1, s, fn)
		}
	}
}

// Count returns the number of steps in the tree, branches included.
func Count(steps []Step) int {
	n := 0
	Walk(steps, func(Step, int, *Step) bool {
		n++
		return true
	})
	return n
}

// Depth returns the number of levels in the tree (0 for an empty tree).
func Depth(steps []Step) int {
	deepest := 0
	Walk(steps, func(_ Step, depth int, _ *Step) bool {
		deepest = max(deepest, depth+1)
		return true
	})
	return deepest
}

// Find returns the first step with the given id.
func Find(steps []Step, id string) (Step, bool) {
	var (
		found Step
		ok    bool
	)
	Walk(steps, func(s Step, _ int, _ *Step) bool {
		if ok {
			return false
		}
		if s.ID == id {
			found, ok = s, true
			return false
		}
		return true
	})
	return found, ok
}

// IDs returns every step id in pre-order.
func IDs(steps []Step) []string {
	ids := make([]string, 0, Count(steps))
	Walk(steps, func(s Step, _ int, _ *Step) bool {
		ids = append(ids, s.ID)
		return true
	})
	return ids
}

// Clone returns a deep copy of steps. A nil input stays nil and an empty
// branch list stays empty.
func Clone(steps []Step) []Step {
	if steps == nil {
		return nil
	}
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = s
		out[i].Branches = Clone(s.Branches)
	}
	return out
}

// FilterBranch returns a copy of steps in which the step stepID no longer
// has the direct branch branchID. Every other step is copied unchanged and
// steps itself is never modified. If either id is absent the result equals
// a plain [Clone].
func FilterBranch(steps []Step, stepID, branchID string) []Step {
	out := Clone(steps)
	filterBranch(out, stepID, branchID)
	return out
}

func filterBranch(steps []Step, stepID, branchID string) {
	for i := range steps {
		s := &steps[i]
		if s.ID == stepID && s.Branches != nil {
			kept := make([]Step, 0, len(s.Branches))
			for _, b := range s.Branches {
				if b.ID != branchID {
					kept = append(kept, b)
				}
			}
			s.Branches = kept
		}
		filterBranch(s.Branches, stepID, branchID)
	}
}
