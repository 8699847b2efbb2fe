package layout

import "github.com/matzehuels/hireflow/pkg/workflow"

// Geometry constants in pixels at scale 1.0.
const (
	CardWidth      = 448.0
	CardPadding    = 20.0
	IconSize       = 48.0
	IconGap        = 16.0
	TopStem        = 48.0
	BranchStem     = 64.0
	ColumnGap      = 32.0
	RowPadding     = 16.0
	Thickness      = 4.0
	Margin         = 16.0
	UnconnectedGap = 24.0
)

// Kind classifies a connector segment.
type Kind string

const (
	KindStem       Kind = "stem"
	KindFanoutStem Kind = "fanout-stem"
	KindFanout     Kind = "fanout"
	KindBranchStem Kind = "branch-stem"
	KindMergeStem  Kind = "merge-stem"
	KindMerge      Kind = "merge"
	KindMergeTail  Kind = "merge-tail"
)

// Horizontal reports whether connectors of this kind run left to right.
func (k Kind) Horizontal() bool { return k == KindFanout || k == KindMerge }

// Layout is the positioned diagram for one workflow.
type Layout struct {
	Width      float64
	Height     float64
	Margin     float64
	Cards      []Card
	Connectors []Connector
}

// Card is the positioned box for a single step. Title and Description hold
// the wrapped lines.
type Card struct {
	StepID      string
	Title       []string
	Actor       workflow.Actor
	Description []string
	Depth       int
	Final       bool
	X, Y, W, H  float64
}

// CenterX returns the horizontal center of the card.
func (c Card) CenterX() float64 { return c.X + c.W/2 }

// Bottom returns the y coordinate of the card's lower edge.
func (c Card) Bottom() float64 { return c.Y + c.H }

// Connector is a straight line segment. OwnerID names the step the segment
// belongs to: the branching step for fan-out, merge and tail segments, the
// child for branch and merge stems.
type Connector struct {
	Kind    Kind
	OwnerID string
	X1, Y1  float64
	X2, Y2  float64
}

// Length returns the segment length.
func (c Connector) Length() float64 {
	if c.Kind.Horizontal() {
		return c.X2 - c.X1
	}
	return c.Y2 - c.Y1
}

// CountKind returns how many connectors of kind k the layout holds.
func (l Layout) CountKind(k Kind) int {
	n := 0
	for _, c := range l.Connectors {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// CardByID returns the card for the given step.
func (l Layout) CardByID(id string) (Card, bool) {
	for _, c := range l.Cards {
		if c.StepID == id {
			return c, true
		}
	}
	return Card{}, false
}
