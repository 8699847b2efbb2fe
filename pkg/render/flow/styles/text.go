package styles

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/matzehuels/hireflow/pkg/render/flow/layout"
)

// RowKind identifies the role of a text row inside a card.
type RowKind int

const (
	RowLabel RowKind = iota
	RowTitle
	RowDescription
)

// TextRow is one positioned line of card text. Y is the baseline.
type TextRow struct {
	Kind RowKind
	Text string
	X, Y float64
	Size float64
	Bold bool
}

const baselineRatio = 0.75

// TextRows places the actor label, title and description lines of c.
func TextRows(c Card) []TextRow {
	x := c.X + layout.CardPadding + layout.IconSize + layout.IconGap
	top := c.Y + layout.CardPadding

	rows := make([]TextRow, 0, 1+len(c.Title)+len(c.Description))
	rows = append(rows, TextRow{
		Kind: RowLabel, Text: strings.ToUpper(c.Actor.String()),
		X: x, Y: top + layout.LabelLine*baselineRatio, Size: layout.LabelSize, Bold: true,
	})

	top += layout.LabelLine + layout.TitleGap
	for i, line := range c.Title {
		rows = append(rows, TextRow{
			Kind: RowTitle, Text: line,
			X: x, Y: top + float64(i)*layout.TitleLine + layout.TitleLine*baselineRatio,
			Size: layout.TitleSize, Bold: true,
		})
	}
	if len(c.Description) == 0 {
		return rows
	}

	top += float64(len(c.Title))*layout.TitleLine + layout.DescGap
	for i, line := range c.Description {
		rows = append(rows, TextRow{
			Kind: RowDescription, Text: line,
			X: x, Y: top + float64(i)*layout.DescLine + layout.DescLine*baselineRatio,
			Size: layout.DescSize,
		})
	}
	return rows
}

// IconCenter returns the center of the actor icon circle.
func IconCenter(c Card) (float64, float64) {
	r := layout.IconSize / 2
	return c.X + layout.CardPadding + r, c.Y + layout.CardPadding + r
}

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
