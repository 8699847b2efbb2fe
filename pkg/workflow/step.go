package workflow

import (
	"strings"

	"github.com/matzehuels/hireflow/pkg/errors"
)

// Actor identifies who performs a step. It is a closed enumeration.
type Actor int

const (
	ActorUser Actor = iota
	ActorAdmin
	ActorSystem
)

// Actors lists every actor in display order.
var Actors = []Actor{ActorUser, ActorAdmin, ActorSystem}

// String returns the display name shown above a card's title.
func (a Actor) String() string {
	switch a {
	case ActorAdmin:
		return "Admin"
	case ActorSystem:
		return "System"
	default:
		return "User"
	}
}

// MarshalText encodes the actor by its display name.
func (a Actor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an actor from its display name.
func (a *Actor) UnmarshalText(text []byte) error {
	parsed, err := ParseActor(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseActor parses a display name case-insensitively.
func ParseActor(s string) (Actor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return ActorUser, nil
	case "admin":
		return ActorAdmin, nil
	case "system":
		return ActorSystem, nil
	}
	return ActorUser, errors.New(errors.ErrCodeInvalidActor, "invalid actor: %q (must be User, Admin, or System)", s)
}

// Step is one node of a workflow tree.
type Step struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Actor       Actor  `json:"actor" yaml:"actor"`
	Description string `json:"description" yaml:"description"`
	Branches    []Step `json:"branches,omitempty" yaml:"branches,omitempty"`
	Final       bool   `json:"isFinal,omitempty" yaml:"isFinal,omitempty"`
}

// HasBranches reports whether the step fans out. An empty branch list is
// the same as none.
func (s Step) HasBranches() bool { return len(s.Branches) > 0 }

// DescriptionLines splits the description on explicit newlines.
func (s Step) DescriptionLines() []string {
	if s.Description == "" {
		return nil
	}
	return strings.Split(s.Description, "\n")
}
