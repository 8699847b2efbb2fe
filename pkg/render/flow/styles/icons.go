package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/hireflow/pkg/workflow"
)

// Icon glyphs are drawn on a 24x24 grid with stroke="currentColor".
const (
	userGlyph   = `<circle cx="12" cy="8" r="4"/><path d="M4 21c0-4.4 3.6-8 8-8s8 3.6 8 8"/>`
	adminGlyph  = `<path d="M12 3l8 3v6c0 5-3.5 8.5-8 9-4.5-.5-8-4-8-9V6z"/><path d="M9 12l2 2 4-4"/>`
	systemGlyph = `<rect x="6" y="6" width="12" height="12" rx="2"/><path d="M9 2v4M15 2v4M9 18v4M15 18v4M2 9h4M2 15h4M18 9h4M18 15h4"/>`
)

func glyphFor(a workflow.Actor) string {
	switch a {
	case workflow.ActorAdmin:
		return adminGlyph
	case workflow.ActorSystem:
		return systemGlyph
	default:
		return userGlyph
	}
}

func renderIcon(buf *bytes.Buffer, c Card, bg, fg string) {
	cx, cy := IconCenter(c)
	fmt.Fprintf(buf, `    <circle cx="%.2f" cy="%.2f" r="24.00" fill="%s"/>`+"\n", cx, cy, bg)
	fmt.Fprintf(buf, `    <g transform="translate(%.2f %.2f)" fill="none" stroke="%s" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" color="%s">%s</g>`+"\n",
		cx-12, cy-12, fg, fg, glyphFor(c.Actor))
}
