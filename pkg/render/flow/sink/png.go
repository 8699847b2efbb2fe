package sink

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/hireflow/pkg/render/flow/layout"
	"github.com/matzehuels/hireflow/pkg/render/flow/styles"
)

// DefaultDensity is the pixel density used for raster output.
const DefaultDensity = 2.0

// PNGOption configures raster rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	style       styles.Style
	density     float64
	transparent bool
}

// WithPNGStyle selects the palette used for cards (default [styles.Simple]).
func WithPNGStyle(s styles.Style) PNGOption { return func(r *pngRenderer) { r.style = s } }

// WithScale sets the pixel density (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.density = s
		}
	}
}

// WithPNGTransparent leaves the canvas transparent instead of white.
func WithPNGTransparent() PNGOption { return func(r *pngRenderer) { r.transparent = true } }

var parsedFonts = sync.OnceValues(func() ([2]*opentype.Font, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return [2]*opentype.Font{}, err
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return [2]*opentype.Font{}, err
	}
	return [2]*opentype.Font{regular, bold}, nil
})

// Rasterize draws the layout into an RGBA image whose size is the layout
// size multiplied by the density, rounded up.
func Rasterize(l layout.Layout, opts ...PNGOption) (*image.RGBA, error) {
	r := pngRenderer{style: styles.Simple{}, density: DefaultDensity}
	for _, opt := range opts {
		opt(&r)
	}

	fonts, err := parsedFonts()
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	w := int(math.Ceil(l.Width * r.density))
	h := int(math.Ceil(l.Height * r.density))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if !r.transparent {
		draw.Draw(img, img.Bounds(), image.NewUniform(styles.ParseHex(styles.CanvasColor)), image.Point{}, draw.Src)
	}

	c := canvas{img: img, scale: r.density, fonts: fonts, faces: map[faceKey]font.Face{}}
	stroke := styles.ParseHex(r.style.ConnectorColor())
	for _, conn := range l.Connectors {
		c.connector(conn, stroke)
	}
	for _, card := range l.Cards {
		if err := c.card(toStyleCard(card), r.style.Palette(card.Actor)); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// RenderPNG rasterizes the layout and encodes it as PNG.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	img, err := Rasterize(l, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

type faceKey struct {
	size float64
	bold bool
}

type canvas struct {
	img   *image.RGBA
	scale float64
	fonts [2]*opentype.Font
	faces map[faceKey]font.Face
}

func (c *canvas) px(v float64) int { return int(math.Round(v * c.scale)) }

func (c *canvas) connector(conn layout.Connector, col color.Color) {
	half := layout.Thickness / 2
	x1, y1 := min(conn.X1, conn.X2)-half, min(conn.Y1, conn.Y2)-half
	x2, y2 := max(conn.X1, conn.X2)+half, max(conn.Y1, conn.Y2)+half
	c.fillRect(image.Rect(c.px(x1), c.px(y1), c.px(x2), c.px(y2)), col)
}

func (c *canvas) card(card styles.Card, p styles.Palette) error {
	rect := image.Rect(c.px(card.X), c.px(card.Y), c.px(card.X+card.W), c.px(card.Y+card.H))
	radius := 12 * c.scale
	c.fillRoundRect(rect, radius, styles.ParseHex(p.Ring))
	inset := max(1, c.px(1))
	c.fillRoundRect(rect.Inset(inset), radius-float64(inset), styles.ParseHex(p.Background))

	cx, cy := styles.IconCenter(card)
	c.fillCircle(cx*c.scale, cy*c.scale, layout.IconSize/2*c.scale, styles.ParseHex(p.IconBg))
	if err := c.initial(card.Actor.String()[:1], cx, cy, styles.ParseHex(p.Text)); err != nil {
		return err
	}

	for _, row := range styles.TextRows(card) {
		col := styles.ParseHex(styles.DescriptionColor)
		switch row.Kind {
		case styles.RowLabel:
			col = styles.ParseHex(p.Text)
		case styles.RowTitle:
			col = styles.ParseHex(styles.TitleColor)
		}
		if err := c.text(row.Text, row.X, row.Y, row.Size, row.Bold, col); err != nil {
			return err
		}
	}
	return nil
}

func (c *canvas) face(size float64, bold bool) (font.Face, error) {
	key := faceKey{size, bold}
	if f, ok := c.faces[key]; ok {
		return f, nil
	}
	fnt := c.fonts[0]
	if bold {
		fnt = c.fonts[1]
	}
	f, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: size * c.scale, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("font face %.0fpt: %w", size, err)
	}
	c.faces[key] = f
	return f, nil
}

// text draws s with its baseline at (x, y) in layout coordinates.
func (c *canvas) text(s string, x, y, size float64, bold bool, col color.Color) error {
	f, err := c.face(size, bold)
	if err != nil {
		return err
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: f,
		Dot:  fixed.P(c.px(x), c.px(y)),
	}
	d.DrawString(s)
	return nil
}

// initial draws a single bold letter centered on (cx, cy).
func (c *canvas) initial(s string, cx, cy float64, col color.Color) error {
	f, err := c.face(layout.TitleSize, true)
	if err != nil {
		return err
	}
	w := float64(font.MeasureString(f, s).Ceil()) / c.scale
	capHeight := float64(f.Metrics().CapHeight.Ceil()) / c.scale
	return c.text(s, cx-w/2, cy+capHeight/2, layout.TitleSize, true, col)
}

func (c *canvas) fillRect(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// fillRoundRect fills r row by row, shortening rows inside the corner arcs.
func (c *canvas) fillRoundRect(r image.Rectangle, radius float64, col color.Color) {
	radius = min(radius, float64(r.Dx())/2, float64(r.Dy())/2)
	src := image.NewUniform(col)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		inset := 0.0
		fy := float64(y) + 0.5
		if d := float64(r.Min.Y) + radius - fy; d > 0 {
			inset = radius - math.Sqrt(max(0, radius*radius-d*d))
		} else if d := fy - (float64(r.Max.Y) - radius); d > 0 {
			inset = radius - math.Sqrt(max(0, radius*radius-d*d))
		}
		in := int(math.Round(inset))
		draw.Draw(c.img, image.Rect(r.Min.X+in, y, r.Max.X-in, y+1), src, image.Point{}, draw.Src)
	}
}

func (c *canvas) fillCircle(cx, cy, radius float64, col color.Color) {
	src := image.NewUniform(col)
	for y := int(cy - radius); y <= int(cy+radius); y++ {
		d := float64(y) + 0.5 - cy
		if d*d > radius*radius {
			continue
		}
		half := math.Sqrt(radius*radius - d*d)
		draw.Draw(c.img, image.Rect(int(math.Round(cx-half)), y, int(math.Round(cx+half)), y+1), src, image.Point{}, draw.Src)
	}
}
