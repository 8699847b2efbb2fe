package layout

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/hireflow/pkg/workflow"
	"github.com/matzehuels/hireflow/pkg/workflow/catalog"
)

func step(id string, branches ...workflow.Step) workflow.Step {
	return workflow.Step{ID: id, Title: "Step " + id, Description: "Does " + id, Branches: branches}
}

func final(s workflow.Step) workflow.Step {
	s.Final = true
	return s
}

// ownedBy returns the connectors owned by the given step.
func ownedBy(l Layout, id string) []Connector {
	var out []Connector
	for _, c := range l.Connectors {
		if c.OwnerID == id {
			out = append(out, c)
		}
	}
	return out
}

func randomTree(r *rand.Rand, prefix string, depth int) []workflow.Step {
	n := 1 + r.IntN(4)
	steps := make([]workflow.Step, n)
	for i := range steps {
		id := fmt.Sprintf("%s%d", prefix, i)
		steps[i] = step(id)
		steps[i].Final = r.IntN(4) == 0
		if depth > 0 && r.IntN(2) == 0 {
			steps[i].Branches = randomTree(r, id+".", depth-1)
		}
	}
	return steps
}

func TestBuildEmpty(t *testing.T) {
	for _, steps := range [][]workflow.Step{nil, {}} {
		l := Build(steps)
		if len(l.Cards) != 0 || len(l.Connectors) != 0 {
			t.Fatalf("empty input produced %d cards, %d connectors", len(l.Cards), len(l.Connectors))
		}
		if l.Width != 2*Margin || l.Height != 2*Margin {
			t.Errorf("size = %vx%v, want %vx%v", l.Width, l.Height, 2*Margin, 2*Margin)
		}
	}
}

func TestBuildSingleCard(t *testing.T) {
	l := Build([]workflow.Step{{ID: "A", Title: "A"}})
	c, ok := l.CardByID("A")
	if !ok {
		t.Fatal("card A missing")
	}
	if c.X != Margin || c.Y != Margin || c.W != CardWidth {
		t.Errorf("card at (%v,%v) w=%v", c.X, c.Y, c.W)
	}
	if want := 2*CardPadding + IconSize; c.H != want {
		t.Errorf("H = %v, want %v", c.H, want)
	}
	if l.Width != CardWidth+2*Margin {
		t.Errorf("Width = %v", l.Width)
	}
	if l.Height != c.H+2*Margin {
		t.Errorf("Height = %v", l.Height)
	}
}

func TestBuildTotality(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for i := range 50 {
		steps := randomTree(r, fmt.Sprintf("t%d.", i), 4)
		l := Build(steps)

		want := workflow.Count(steps)
		if len(l.Cards) != want {
			t.Fatalf("tree %d: %d cards, want %d", i, len(l.Cards), want)
		}
		seen := make(map[string]bool, want)
		for _, c := range l.Cards {
			if seen[c.StepID] {
				t.Fatalf("tree %d: card %s placed twice", i, c.StepID)
			}
			seen[c.StepID] = true
		}
		for _, id := range workflow.IDs(steps) {
			if !seen[id] {
				t.Fatalf("tree %d: step %s has no card", i, id)
			}
		}
		assertNoOverlap(t, l)
		assertInBounds(t, l)
	}
}

func TestTopLevelStems(t *testing.T) {
	empty := step("C")
	empty.Branches = []workflow.Step{}
	steps := []workflow.Step{
		step("A"),
		final(step("B")),
		empty,
		step("D", step("D1")),
		step("E"),
	}
	l := Build(steps)

	var owners []string
	for _, c := range l.Connectors {
		if c.Kind == KindStem {
			owners = append(owners, c.OwnerID)
			if c.Length() != TopStem {
				t.Errorf("stem %s length = %v", c.OwnerID, c.Length())
			}
		}
	}
	if fmt.Sprint(owners) != "[A C]" {
		t.Errorf("stem owners = %v, want [A C]", owners)
	}

	a, _ := l.CardByID("A")
	b, _ := l.CardByID("B")
	if b.Y != a.Bottom()+TopStem {
		t.Errorf("B.Y = %v, want %v", b.Y, a.Bottom()+TopStem)
	}
	c, _ := l.CardByID("C")
	if c.Y != b.Bottom()+UnconnectedGap {
		t.Errorf("C.Y = %v, want %v", c.Y, b.Bottom()+UnconnectedGap)
	}
}

func TestLastStepHasNoStem(t *testing.T) {
	l := Build([]workflow.Step{step("A"), step("B")})
	if got := l.CountKind(KindStem); got != 1 {
		t.Errorf("stems = %d, want 1", got)
	}
}

func TestFanout(t *testing.T) {
	tests := []struct {
		name        string
		branches    int
		wantFanout  int
		wantStems   int
		wantMerge   int
		wantFanStem int
	}{
		{"single branch", 1, 0, 1, 0, 1},
		{"two branches", 2, 1, 2, 1, 1},
		{"four branches", 4, 1, 4, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kids []workflow.Step
			for i := range tt.branches {
				kids = append(kids, step(fmt.Sprintf("P%d", i)))
			}
			l := Build([]workflow.Step{step("P", kids...)})

			if got := l.CountKind(KindFanout); got != tt.wantFanout {
				t.Errorf("fanout = %d, want %d", got, tt.wantFanout)
			}
			if got := l.CountKind(KindBranchStem); got != tt.wantStems {
				t.Errorf("branch stems = %d, want %d", got, tt.wantStems)
			}
			if got := l.CountKind(KindFanoutStem); got != tt.wantFanStem {
				t.Errorf("fanout stems = %d, want %d", got, tt.wantFanStem)
			}
			if got := l.CountKind(KindMerge); got != tt.wantMerge {
				t.Errorf("merge = %d, want %d", got, tt.wantMerge)
			}
			if got := l.CountKind(KindMergeStem); got != tt.branches {
				t.Errorf("merge stems = %d, want %d", got, tt.branches)
			}
		})
	}
}

func TestMergeSuppression(t *testing.T) {
	tests := []struct {
		name  string
		final bool
		want  int
	}{
		{"open parent merges", false, 1},
		{"final parent does not merge", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := step("P", step("X"), final(step("Y")), step("Z"))
			p.Final = tt.final
			l := Build([]workflow.Step{p})

			if got := l.CountKind(KindMergeTail); got != tt.want {
				t.Errorf("merge tails = %d, want %d", got, tt.want)
			}
			if got := l.CountKind(KindMerge); got != tt.want {
				t.Errorf("merge spans = %d, want %d", got, tt.want)
			}
			if got := l.CountKind(KindMergeStem); got != 3*tt.want {
				t.Errorf("merge stems = %d, want %d", got, 3*tt.want)
			}
		})
	}
}

func TestMergeGeometry(t *testing.T) {
	tall := step("B", step("B1"), step("B2"))
	l := Build([]workflow.Step{step("P", step("A"), tall), step("Q")})

	var mergeY float64
	for _, c := range ownedBy(l, "P") {
		if c.Kind == KindMerge {
			mergeY = c.Y1
		}
	}
	if mergeY == 0 {
		t.Fatal("no merge span for P")
	}

	stems := map[string]Connector{}
	for _, c := range l.Connectors {
		if c.Kind == KindMergeStem && (c.OwnerID == "A" || c.OwnerID == "B") {
			stems[c.OwnerID] = c
		}
	}
	for id, c := range stems {
		if c.Y2 != mergeY {
			t.Errorf("%s merge stem ends at %v, want %v", id, c.Y2, mergeY)
		}
	}
	a, _ := l.CardByID("A")
	if stems["A"].Y1 != a.Bottom() {
		t.Errorf("A merge stem starts at %v, want card bottom %v", stems["A"].Y1, a.Bottom())
	}
	if stems["A"].Length() <= stems["B"].Length() {
		t.Error("shorter subtree should have the longer merge stem")
	}

	p, _ := l.CardByID("P")
	q, _ := l.CardByID("Q")
	var tail Connector
	for _, c := range ownedBy(l, "P") {
		if c.Kind == KindMergeTail {
			tail = c
		}
	}
	if tail.X1 != p.CenterX() || tail.Y1 != mergeY {
		t.Errorf("tail starts at (%v,%v)", tail.X1, tail.Y1)
	}
	if tail.Y2 != q.Y {
		t.Errorf("tail ends at %v, next card starts at %v", tail.Y2, q.Y)
	}
	if l.CountKind(KindStem) != 0 {
		t.Error("branching step should not get a top-level stem")
	}
}

func TestTrailingMergeTail(t *testing.T) {
	l := Build([]workflow.Step{step("A"), step("B", step("B1"), step("B2"))})
	if got := l.CountKind(KindMergeTail); got != 1 {
		t.Fatalf("merge tails = %d, want 1", got)
	}
	assertInBounds(t, l)
}

func TestDescriptionKeepsExplicitLines(t *testing.T) {
	s := workflow.Step{ID: "A", Title: "A", Description: "Upload passport\nUpload visa"}
	l := Build([]workflow.Step{s})
	c, _ := l.CardByID("A")
	if fmt.Sprint(c.Description) != "[Upload passport Upload visa]" || len(c.Description) != 2 {
		t.Errorf("Description = %q, want two lines", c.Description)
	}
}

func TestFinalBranchRowMargin(t *testing.T) {
	p := final(step("P", step("X"), step("Y")))
	l := Build([]workflow.Step{p, step("Q")})

	x, _ := l.CardByID("X")
	q, _ := l.CardByID("Q")
	want := x.Bottom() + BranchStem + UnconnectedGap
	if q.Y != want {
		t.Errorf("Q.Y = %v, want %v below the branch row margin", q.Y, want)
	}
	if l.CountKind(KindMergeStem) != 0 {
		t.Error("final parent should not merge")
	}
	assertInBounds(t, l)
}

func TestCatalogLayouts(t *testing.T) {
	for _, v := range catalog.All() {
		t.Run(string(v), func(t *testing.T) {
			e := catalog.Lookup(v)
			l := Build(e.Steps)
			if len(l.Cards) != workflow.Count(e.Steps) {
				t.Fatalf("cards = %d, want %d", len(l.Cards), workflow.Count(e.Steps))
			}
			assertNoOverlap(t, l)
			assertInBounds(t, l)
			for _, c := range l.Cards {
				if len(c.Title) == 0 {
					t.Errorf("%s: no title lines", c.StepID)
				}
			}
		})
	}
}

func TestBuildOptions(t *testing.T) {
	l := Build([]workflow.Step{step("A")}, WithCardWidth(300), WithMargin(0))
	c, _ := l.CardByID("A")
	if c.W != 300 || c.X != 0 || l.Width != 300 {
		t.Errorf("card w=%v x=%v, layout width %v", c.W, c.X, l.Width)
	}
}

func assertNoOverlap(t *testing.T, l Layout) {
	t.Helper()
	for i, a := range l.Cards {
		for _, b := range l.Cards[i+1:] {
			if a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H {
				t.Fatalf("cards %s and %s overlap", a.StepID, b.StepID)
			}
		}
	}
}

func assertInBounds(t *testing.T, l Layout) {
	t.Helper()
	for _, c := range l.Cards {
		if c.X < 0 || c.Y < 0 || c.X+c.W > l.Width || c.Y+c.H > l.Height {
			t.Fatalf("card %s outside %vx%v", c.StepID, l.Width, l.Height)
		}
	}
	for _, c := range l.Connectors {
		if c.X1 < 0 || c.Y1 < 0 || c.X2 > l.Width || c.Y2 > l.Height {
			t.Fatalf("%s connector of %s outside bounds", c.Kind, c.OwnerID)
		}
		if c.Length() < 0 {
			t.Fatalf("%s connector of %s has negative length", c.Kind, c.OwnerID)
		}
	}
}
