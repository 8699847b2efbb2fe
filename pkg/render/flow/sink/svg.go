package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/hireflow/pkg/render/flow/layout"
	"github.com/matzehuels/hireflow/pkg/render/flow/styles"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	scale      float64
	background bool
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithSVGScale multiplies the intrinsic width and height. The view box is
// unchanged, so the drawing is scaled rather than re-laid out.
func WithSVGScale(s float64) SVGOption {
	return func(r *svgRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithTransparent omits the white canvas rectangle.
func WithTransparent() SVGOption { return func(r *svgRenderer) { r.background = false } }

func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width*r.scale, l.Height*r.scale)

	r.style.RenderDefs(&buf)
	if r.background {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", styles.CanvasColor)
	}

	for _, c := range l.Connectors {
		r.style.RenderConnector(&buf, toStyleConnector(c))
	}
	for _, c := range l.Cards {
		r.style.RenderCard(&buf, toStyleCard(c))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, scale: 1, background: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func toStyleCard(c layout.Card) styles.Card {
	return styles.Card{
		ID:          c.StepID,
		Actor:       c.Actor,
		Title:       c.Title,
		Description: c.Description,
		Final:       c.Final,
		X:           c.X, Y: c.Y, W: c.W, H: c.H,
	}
}

func toStyleConnector(c layout.Connector) styles.Connector {
	return styles.Connector{Kind: string(c.Kind), X1: c.X1, Y1: c.Y1, X2: c.X2, Y2: c.Y2}
}
