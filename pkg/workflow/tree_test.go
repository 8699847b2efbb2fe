package workflow

import (
	"reflect"
	"slices"
	"testing"
)

func sampleTree() []Step {
	return []Step{
		{ID: "1", Title: "Start"},
		{ID: "2", Title: "Login", Branches: []Step{
			{ID: "2a", Title: "Single Pass"},
			{ID: "2b", Title: "OTP", Branches: []Step{
				{ID: "2b-1", Title: "SMS"},
			}},
		}},
		{ID: "3", Title: "Done", Final: true},
	}
}

func TestWalkPreOrder(t *testing.T) {
	var got []string
	var depths []int
	Walk(sampleTree(), func(s Step, depth int, parent *Step) bool {
		got = append(got, s.ID)
		depths = append(depths, depth)
		if depth == 0 && parent != nil {
			t.Errorf("top-level step %s has parent %s", s.ID, parent.ID)
		}
		return true
	})

	want := []string{"1", "2", "2a", "2b", "2b-1", "3"}
	if !slices.Equal(got, want) {
		t.Errorf("Walk order = %v, want %v", got, want)
	}
	if !slices.Equal(depths, []int{0, 0, 1, 1, 2, 0}) {
		t.Errorf("Walk depths = %v", depths)
	}
}

func TestWalkSkipBranches(t *testing.T) {
	var got []string
	Walk(sampleTree(), func(s Step, _ int, _ *Step) bool {
		got = append(got, s.ID)
		return s.ID != "2"
	})
	if !slices.Equal(got, []string{"1", "2", "3"}) {
		t.Errorf("Walk with skip = %v", got)
	}
}

func TestCountAndDepth(t *testing.T) {
	tree := sampleTree()
	if n := Count(tree); n != 6 {
		t.Errorf("Count() = %d, want 6", n)
	}
	if d := Depth(tree); d != 3 {
		t.Errorf("Depth() = %d, want 3", d)
	}
	if Count(nil) != 0 || Depth(nil) != 0 {
		t.Error("empty tree should have zero count and depth")
	}
}

func TestFind(t *testing.T) {
	s, ok := Find(sampleTree(), "2b-1")
	if !ok || s.Title != "SMS" {
		t.Errorf("Find(2b-1) = %+v, %v", s, ok)
	}
	if _, ok := Find(sampleTree(), "missing"); ok {
		t.Error("Find(missing) should fail")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := sampleTree()
	cp := Clone(orig)
	if !reflect.DeepEqual(orig, cp) {
		t.Fatal("Clone() should equal its input")
	}

	cp[1].Branches[1].Branches[0].Title = "changed"
	if orig[1].Branches[1].Branches[0].Title != "SMS" {
		t.Error("mutating the clone changed the original")
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}

func TestFilterBranch(t *testing.T) {
	orig := sampleTree()
	before := Clone(orig)

	got := FilterBranch(orig, "2", "2a")

	if !reflect.DeepEqual(orig, before) {
		t.Fatal("FilterBranch mutated its input")
	}

	login, _ := Find(got, "2")
	if len(login.Branches) != 1 || login.Branches[0].ID != "2b" {
		t.Errorf("filtered branches = %v", IDs(login.Branches))
	}

	// Everything except step 2's branch list is unchanged.
	want := Clone(before)
	want[1].Branches = want[1].Branches[1:]
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterBranch result differs beyond the filtered branch:\n got %+v\nwant %+v", got, want)
	}
}

func TestFilterBranchNested(t *testing.T) {
	got := FilterBranch(sampleTree(), "2b", "2b-1")
	s, _ := Find(got, "2b")
	if s.HasBranches() {
		t.Errorf("2b should have no branches left, got %v", IDs(s.Branches))
	}
}

func TestFilterBranchMissingIDs(t *testing.T) {
	orig := sampleTree()
	if got := FilterBranch(orig, "nope", "2a"); !reflect.DeepEqual(got, orig) {
		t.Error("unknown step id should leave the tree unchanged")
	}
	if got := FilterBranch(orig, "2", "nope"); !reflect.DeepEqual(got, orig) {
		t.Error("unknown branch id should leave the tree unchanged")
	}
}
