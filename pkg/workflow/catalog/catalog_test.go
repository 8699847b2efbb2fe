package catalog

import (
	"reflect"
	"testing"

	"github.com/matzehuels/hireflow/pkg/errors"
	"github.com/matzehuels/hireflow/pkg/workflow"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		want     Variant
		label    string
		firstID  string
		lastID   string
		topLevel int
	}{
		{"singapore", Singapore, "Employer Workflow (SG)", "E1", "E14", 14},
		{"philippines", Philippines, "Employer Workflow (PH)", "E1", "E14", 14},
		{"candidate", Candidate, "Candidate Workflow", "C1", "C13", 13},
		{"admin", Admin, "Admin Workflow", "A1", "A3", 3},
		{"  Admin ", Admin, "Admin Workflow", "A1", "A3", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Resolve(tt.name)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.name, err)
			}
			if e.Variant != tt.want {
				t.Errorf("Variant = %q, want %q", e.Variant, tt.want)
			}
			if e.Label != tt.label {
				t.Errorf("Label = %q, want %q", e.Label, tt.label)
			}
			if e.Subtitle == "" {
				t.Error("Subtitle is empty")
			}
			if len(e.Steps) != tt.topLevel {
				t.Fatalf("top-level steps = %d, want %d", len(e.Steps), tt.topLevel)
			}
			if got := e.Steps[0].ID; got != tt.firstID {
				t.Errorf("first step = %q, want %q", got, tt.firstID)
			}
			last := e.Steps[len(e.Steps)-1]
			if last.ID != tt.lastID {
				t.Errorf("last step = %q, want %q", last.ID, tt.lastID)
			}
			if !last.Final {
				t.Errorf("last step %q should be final", last.ID)
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, name := range []string{"", "germany", "employer"} {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(name)
			if !errors.Is(err, errors.ErrCodeInvalidVariant) {
				t.Fatalf("Resolve(%q) error = %v, want INVALID_VARIANT", name, err)
			}
		})
	}
}

func TestPhilippinesDerivation(t *testing.T) {
	sg, _ := Resolve("singapore")
	ph, _ := Resolve("philippines")

	want := workflow.Clone(sg.Steps)
	want[1].Branches = []workflow.Step{want[1].Branches[1]}
	if !reflect.DeepEqual(ph.Steps, want) {
		t.Fatal("philippines should equal singapore without the E2a branch")
	}

	if _, ok := workflow.Find(sg.Steps, "E2a"); !ok {
		t.Error("singapore lost E2a")
	}
	if _, ok := workflow.Find(ph.Steps, "E2a"); ok {
		t.Error("philippines still contains E2a")
	}
	if got, want := workflow.Count(ph.Steps), workflow.Count(sg.Steps)-1; got != want {
		t.Errorf("philippines step count = %d, want %d", got, want)
	}
}

func TestResolveReturnsCopies(t *testing.T) {
	first, _ := Resolve("admin")
	first.Steps[2].Branches[1].Branches[0].Title = "changed"
	first.Steps = first.Steps[:1]

	second, _ := Resolve("admin")
	if len(second.Steps) != 3 {
		t.Fatalf("registry was truncated: %d steps", len(second.Steps))
	}
	if got := second.Steps[2].Branches[1].Branches[0].Title; got != "Approve Employer" {
		t.Errorf("registry was mutated: %q", got)
	}
}

func TestNestedBranches(t *testing.T) {
	tests := []struct {
		variant string
		id      string
		want    int
	}{
		{"admin", "A3b", 3},
		{"candidate", "C2a", 2},
		{"candidate", "C2b", 1},
		{"candidate", "C3", 6},
		{"candidate", "C11", 7},
		{"singapore", "E11", 4},
		{"philippines", "E2", 1},
	}
	for _, tt := range tests {
		t.Run(tt.variant+"/"+tt.id, func(t *testing.T) {
			e, _ := Resolve(tt.variant)
			s, ok := workflow.Find(e.Steps, tt.id)
			if !ok {
				t.Fatalf("step %s not found", tt.id)
			}
			if got := len(s.Branches); got != tt.want {
				t.Errorf("%s branches = %d, want %d", tt.id, got, tt.want)
			}
		})
	}
}

func TestFinalBranches(t *testing.T) {
	want := map[Variant][]string{
		Singapore: {"E4b", "E11d", "E14"},
		Candidate: {"C6b", "C8b", "C10c", "C13"},
		Admin:     {"A3"},
	}
	for v, ids := range want {
		t.Run(string(v), func(t *testing.T) {
			var got []string
			workflow.Walk(Lookup(v).Steps, func(s workflow.Step, _ int, _ *workflow.Step) bool {
				if s.Final {
					got = append(got, s.ID)
				}
				return true
			})
			if !reflect.DeepEqual(got, ids) {
				t.Errorf("final steps = %v, want %v", got, ids)
			}
		})
	}
}

func TestUniqueIDs(t *testing.T) {
	for _, v := range All() {
		seen := map[string]bool{}
		for _, id := range workflow.IDs(Lookup(v).Steps) {
			if seen[id] {
				t.Errorf("%s: duplicate id %s", v, id)
			}
			seen[id] = true
		}
	}
}

func TestAllOrder(t *testing.T) {
	want := []string{"singapore", "philippines", "candidate", "admin"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if Index(Candidate) != 2 || Index("nope") != -1 {
		t.Error("Index mismatch")
	}
}

func TestFilename(t *testing.T) {
	e := Lookup(Philippines)
	if got := e.Filename("pdf"); got != "philippines-workflow.pdf" {
		t.Errorf("Filename(pdf) = %q", got)
	}
	if got := e.Filename(".svg"); got != "philippines-workflow.svg" {
		t.Errorf("Filename(.svg) = %q", got)
	}
}
