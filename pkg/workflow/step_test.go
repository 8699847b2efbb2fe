package workflow

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/hireflow/pkg/errors"
)

func TestActorString(t *testing.T) {
	tests := []struct {
		actor Actor
		want  string
	}{
		{ActorUser, "User"},
		{ActorAdmin, "Admin"},
		{ActorSystem, "System"},
	}

	for _, tt := range tests {
		if got := tt.actor.String(); got != tt.want {
			t.Errorf("Actor(%d).String() = %q, want %q", tt.actor, got, tt.want)
		}
	}
}

func TestParseActor(t *testing.T) {
	tests := []struct {
		input   string
		want    Actor
		wantErr bool
	}{
		{"User", ActorUser, false},
		{"admin", ActorAdmin, false},
		{"  SYSTEM ", ActorSystem, false},
		{"robot", ActorUser, true},
		{"", ActorUser, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseActor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseActor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidActor) {
				t.Errorf("ParseActor(%q) code = %v", tt.input, errors.GetCode(err))
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseActor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStepJSONUsesActorName(t *testing.T) {
	s := Step{ID: "E1", Title: "Login", Actor: ActorAdmin, Final: true}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"id":"E1","title":"Login","actor":"Admin","description":"","isFinal":true}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var back Step
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Actor != ActorAdmin || !back.Final {
		t.Errorf("Unmarshal = %+v", back)
	}
}

func TestHasBranches(t *testing.T) {
	if (Step{}).HasBranches() {
		t.Error("nil branches should not count as branching")
	}
	if (Step{Branches: []Step{}}).HasBranches() {
		t.Error("empty branches should not count as branching")
	}
	if !(Step{Branches: []Step{{ID: "a"}}}).HasBranches() {
		t.Error("single branch should count as branching")
	}
}

func TestDescriptionLines(t *testing.T) {
	s := Step{Description: "• Passport\n• Visa"}
	lines := s.DescriptionLines()
	if len(lines) != 2 || lines[0] != "• Passport" || lines[1] != "• Visa" {
		t.Errorf("DescriptionLines() = %q", lines)
	}
	if got := (Step{}).DescriptionLines(); got != nil {
		t.Errorf("empty DescriptionLines() = %q, want nil", got)
	}
}
