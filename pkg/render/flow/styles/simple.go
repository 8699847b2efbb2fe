package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/hireflow/pkg/workflow"
)

const cardRadius = 12.0

// Simple draws tinted cards with a drop shadow.
type Simple struct{}

func (Simple) Name() string { return "simple" }

func (Simple) Palette(a workflow.Actor) Palette { return PaletteFor(a) }

func (Simple) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="card-shadow" x="-10%" y="-10%" width="120%" height="130%">
      <feDropShadow dx="0" dy="4" stdDeviation="3" flood-color="#0f172a" flood-opacity="0.08"/>
    </filter>
  </defs>
`)
}

func (s Simple) RenderCard(buf *bytes.Buffer, c Card) {
	renderCard(buf, c, s.Palette(c.Actor), ` filter="url(#card-shadow)"`)
}

func (Simple) ConnectorColor() string { return ConnectorColor }

func (s Simple) RenderConnector(buf *bytes.Buffer, c Connector) {
	renderConnector(buf, c, s.ConnectorColor())
}

func renderCard(buf *bytes.Buffer, c Card, p Palette, extra string) {
	id := EscapeXML(c.ID)
	fmt.Fprintf(buf, `  <g id="step-%s" class="card" data-actor="%s"`, id, c.Actor)
	if c.Final {
		buf.WriteString(` data-final="true"`)
	}
	buf.WriteString(">\n")
	fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.0f" fill="%s" stroke="%s" stroke-width="1"%s/>`+"\n",
		c.X, c.Y, c.W, c.H, cardRadius, p.Background, BorderColor, extra)
	fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.0f" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
		c.X+0.5, c.Y+0.5, c.W-1, c.H-1, cardRadius, p.Ring)
	renderIcon(buf, c, p.IconBg, p.Text)
	renderText(buf, c, p)
	buf.WriteString("  </g>\n")
}

func renderText(buf *bytes.Buffer, c Card, p Palette) {
	for _, r := range TextRows(c) {
		fill, weight, extra := DescriptionColor, "normal", ""
		switch r.Kind {
		case RowLabel:
			fill, weight, extra = p.Text, "600", ` letter-spacing="1.2"`
		case RowTitle:
			fill, weight = TitleColor, "bold"
		}
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-family="Inter, Helvetica, Arial, sans-serif" font-size="%.0f" font-weight="%s" fill="%s"%s>%s</text>`+"\n",
			r.X, r.Y, r.Size, weight, fill, extra, EscapeXML(r.Text))
	}
}

func renderConnector(buf *bytes.Buffer, c Connector, color string) {
	fmt.Fprintf(buf, `  <line class="connector %s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="4" stroke-linecap="square"/>`+"\n",
		c.Kind, c.X1, c.Y1, c.X2, c.Y2, color)
}
