package layout

import "github.com/matzehuels/hireflow/pkg/workflow"

// Option configures [Build].
type Option func(*config)

type config struct {
	cardWidth float64
	margin    float64
}

// WithCardWidth overrides the card width (default [CardWidth]). Text wraps
// to the narrower or wider area accordingly.
func WithCardWidth(w float64) Option {
	return func(c *config) {
		if w > 0 {
			c.cardWidth = w
		}
	}
}

// WithMargin sets the blank border around the diagram (default [Margin]).
func WithMargin(m float64) Option {
	return func(c *config) {
		if m >= 0 {
			c.margin = m
		}
	}
}

// node is a measured subtree. w and h cover the card, the branch row with
// its bottom margin and, for non-final branching steps, the merge tail.
type node struct {
	step     workflow.Step
	title    []string
	desc     []string
	cardH    float64
	w, h     float64
	rowW     float64
	rowH     float64
	children []*node
}

// Build lays out steps top to bottom. It is total: every input, including
// an empty one, yields a layout with exactly one card per step.
func Build(steps []workflow.Step, opts ...Option) Layout {
	cfg := config{cardWidth: CardWidth, margin: Margin}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := builder{cfg: cfg}
	nodes := make([]*node, len(steps))
	contentW := 0.0
	for i, s := range steps {
		nodes[i] = b.measure(s)
		contentW = max(contentW, nodes[i].w)
	}

	cx := cfg.margin + contentW/2
	y := cfg.margin
	for i, n := range nodes {
		b.place(n, cx, y, 0)
		y += n.h
		if i == len(nodes)-1 {
			break
		}
		switch s := n.step; {
		case !s.Final && !s.HasBranches():
			b.connect(KindStem, s.ID, cx, y, cx, y+TopStem)
			y += TopStem
		case !s.Final && s.HasBranches():
			// the merge tail already leads into the next card
		default:
			y += UnconnectedGap
		}
	}

	return Layout{
		Width:      contentW + 2*cfg.margin,
		Height:     y + cfg.margin,
		Margin:     cfg.margin,
		Cards:      b.cards,
		Connectors: b.conns,
	}
}

type builder struct {
	cfg   config
	cards []Card
	conns []Connector
}

func (b *builder) measure(s workflow.Step) *node {
	textW := TextWidth(b.cfg.cardWidth)
	n := &node{
		step:  s,
		title: WrapText(s.Title, MaxChars(textW, TitleSize, true)),
		desc:  wrapParagraphs(s.DescriptionLines(), MaxChars(textW, DescSize, false)),
	}
	n.cardH = cardHeight(len(n.title), len(n.desc))
	n.w, n.h = b.cfg.cardWidth, n.cardH

	if !s.HasBranches() {
		return n
	}

	for i, child := range s.Branches {
		c := b.measure(child)
		n.children = append(n.children, c)
		if i > 0 {
			n.rowW += ColumnGap
		}
		n.rowW += c.w
		n.rowH = max(n.rowH, c.h)
	}
	n.w = max(n.w, n.rowW+2*RowPadding)
	// The branch row keeps a stem-high margin below it even when the
	// parent is final and nothing merges back.
	n.h += 3*BranchStem + n.rowH
	if !s.Final {
		n.h += BranchStem
	}
	return n
}

func cardHeight(titleLines, descLines int) float64 {
	text := LabelLine + TitleGap + float64(titleLines)*TitleLine
	if descLines > 0 {
		text += DescGap + float64(descLines)*DescLine
	}
	return 2*CardPadding + max(IconSize, text)
}

// place positions n with its axis at cx and its top edge at y.
func (b *builder) place(n *node, cx, y float64, depth int) {
	s := n.step
	b.cards = append(b.cards, Card{
		StepID:      s.ID,
		Title:       n.title,
		Actor:       s.Actor,
		Description: n.desc,
		Depth:       depth,
		Final:       s.Final,
		X:           cx - b.cfg.cardWidth/2,
		Y:           y,
		W:           b.cfg.cardWidth,
		H:           n.cardH,
	})
	if len(n.children) == 0 {
		return
	}

	cardBottom := y + n.cardH
	fanY := cardBottom + BranchStem
	childY := fanY + BranchStem
	mergeY := childY + n.rowH + BranchStem

	b.connect(KindFanoutStem, s.ID, cx, cardBottom, cx, fanY)

	centers := make([]float64, len(n.children))
	left := cx - n.rowW/2
	for i, c := range n.children {
		centers[i] = left + c.w/2
		left += c.w + ColumnGap
	}
	first, last := centers[0], centers[len(centers)-1]

	if len(n.children) > 1 {
		b.connect(KindFanout, s.ID, first, fanY, last, fanY)
	}
	for i, c := range n.children {
		b.connect(KindBranchStem, c.step.ID, centers[i], fanY, centers[i], childY)
		b.place(c, centers[i], childY, depth+1)
	}

	if s.Final {
		return
	}
	for i, c := range n.children {
		b.connect(KindMergeStem, c.step.ID, centers[i], childY+c.h, centers[i], mergeY)
	}
	if len(n.children) > 1 {
		b.connect(KindMerge, s.ID, first, mergeY, last, mergeY)
	}
	b.connect(KindMergeTail, s.ID, cx, mergeY, cx, mergeY+BranchStem)
}

func (b *builder) connect(k Kind, owner string, x1, y1, x2, y2 float64) {
	b.conns = append(b.conns, Connector{Kind: k, OwnerID: owner, X1: x1, Y1: y1, X2: x2, Y2: y2})
}
