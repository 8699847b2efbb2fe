package styles

import (
	"fmt"
	"image/color"

	"github.com/matzehuels/hireflow/pkg/workflow"
)

// Palette holds the tones used for one actor.
type Palette struct {
	Background string
	Text       string
	Ring       string
	IconBg     string
}

// Shared diagram colors.
const (
	ConnectorColor   = "#cbd5e1"
	TitleColor       = "#1e293b"
	DescriptionColor = "#475569"
	BorderColor      = "#e2e8f0"
	CanvasColor      = "#ffffff"
)

// PaletteFor returns the actor's palette: blue for users, amber for admins
// and emerald for the system.
func PaletteFor(a workflow.Actor) Palette {
	switch a {
	case workflow.ActorAdmin:
		return Palette{Background: "#fffbeb", Text: "#92400e", Ring: "#fde68a", IconBg: "#fef3c7"}
	case workflow.ActorSystem:
		return Palette{Background: "#ecfdf5", Text: "#065f46", Ring: "#a7f3d0", IconBg: "#d1fae5"}
	default:
		return Palette{Background: "#eff6ff", Text: "#1e40af", Ring: "#bfdbfe", IconBg: "#dbeafe"}
	}
}

// ParseHex converts a "#rrggbb" string to an opaque color. Malformed input
// yields black.
func ParseHex(s string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
