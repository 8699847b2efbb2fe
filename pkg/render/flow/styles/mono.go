package styles

import (
	"bytes"

	"github.com/matzehuels/hireflow/pkg/workflow"
)

// Mono draws every actor in greyscale. Actor labels still tell cards apart.
type Mono struct{}

func (Mono) Name() string { return "mono" }

func (Mono) Palette(workflow.Actor) Palette {
	return Palette{Background: "#ffffff", Text: "#334155", Ring: "#cbd5e1", IconBg: "#f1f5f9"}
}

func (Mono) RenderDefs(*bytes.Buffer) {}

func (m Mono) RenderCard(buf *bytes.Buffer, c Card) {
	renderCard(buf, c, m.Palette(c.Actor), "")
}

func (Mono) ConnectorColor() string { return "#94a3b8" }

func (m Mono) RenderConnector(buf *bytes.Buffer, c Connector) {
	renderConnector(buf, c, m.ConnectorColor())
}
