package styles

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/matzehuels/hireflow/pkg/errors"
	"github.com/matzehuels/hireflow/pkg/workflow"
)

func TestPaletteFor(t *testing.T) {
	tests := []struct {
		actor workflow.Actor
		bg    string
		text  string
	}{
		{workflow.ActorUser, "#eff6ff", "#1e40af"},
		{workflow.ActorAdmin, "#fffbeb", "#92400e"},
		{workflow.ActorSystem, "#ecfdf5", "#065f46"},
	}
	for _, tt := range tests {
		t.Run(tt.actor.String(), func(t *testing.T) {
			p := PaletteFor(tt.actor)
			if p.Background != tt.bg || p.Text != tt.text {
				t.Errorf("PaletteFor(%v) = %+v", tt.actor, p)
			}
			if p.Ring == "" || p.IconBg == "" {
				t.Errorf("PaletteFor(%v) has empty tones: %+v", tt.actor, p)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#cbd5e1", color.RGBA{R: 0xcb, G: 0xd5, B: 0xe1, A: 0xff}},
		{"#000000", color.RGBA{A: 0xff}},
		{"nope", color.RGBA{A: 0xff}},
	}
	for _, tt := range tests {
		if got := ParseHex(tt.in); got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", "simple", false},
		{"simple", "simple", false},
		{" MONO ", "mono", false},
		{"handdrawn", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.name)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidStyle) {
					t.Fatalf("Parse(%q) error = %v, want INVALID_STYLE", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.name, err)
			}
			if s.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", s.Name(), tt.want)
			}
		})
	}
}

func TestRenderCard(t *testing.T) {
	c := Card{
		ID:          "E4<b>",
		Actor:       workflow.ActorAdmin,
		Title:       []string{"4. Admin Approval"},
		Description: []string{"Reviews & approves"},
		Final:       true,
		X:           16, Y: 32, W: 448, H: 120,
	}

	tests := []struct {
		name     string
		style    Style
		contains []string
	}{
		{
			name:  "simple",
			style: Simple{},
			contains: []string{
				`id="step-E4&lt;b&gt;"`,
				`data-actor="Admin"`,
				`data-final="true"`,
				`fill="#fffbeb"`,
				`filter="url(#card-shadow)"`,
				`>ADMIN</text>`,
				`>4. Admin Approval</text>`,
				`>Reviews &amp; approves</text>`,
			},
		},
		{
			name:  "mono",
			style: Mono{},
			contains: []string{
				`fill="#ffffff"`,
				`>ADMIN</text>`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.style.RenderCard(&buf, c)
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("RenderCard() output missing %q\nGot: %s", want, out)
				}
			}
		})
	}
}

func TestRenderConnector(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderConnector(&buf, Connector{Kind: "merge-tail", X1: 10, Y1: 20, X2: 10, Y2: 84})
	out := buf.String()
	for _, want := range []string{`class="connector merge-tail"`, `y2="84.00"`, `stroke="#cbd5e1"`, `stroke-width="4"`} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderConnector() output missing %q\nGot: %s", want, out)
		}
	}
}

func TestRenderDefs(t *testing.T) {
	var buf bytes.Buffer
	Mono{}.RenderDefs(&buf)
	if buf.Len() != 0 {
		t.Errorf("Mono.RenderDefs() wrote %d bytes, want 0", buf.Len())
	}
	Simple{}.RenderDefs(&buf)
	if !strings.Contains(buf.String(), `<filter id="card-shadow"`) {
		t.Error("Simple.RenderDefs() missing shadow filter")
	}
}

func TestTextRows(t *testing.T) {
	c := Card{
		Actor:       workflow.ActorSystem,
		Title:       []string{"a", "b"},
		Description: []string{"c", "d", "e"},
		X:           0, Y: 0, W: 448, H: 200,
	}
	rows := TextRows(c)
	if len(rows) != 6 {
		t.Fatalf("rows = %d, want 6", len(rows))
	}
	if rows[0].Kind != RowLabel || rows[0].Text != "SYSTEM" {
		t.Errorf("first row = %+v", rows[0])
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Y <= rows[i-1].Y {
			t.Errorf("row %d baseline %v not below row %d (%v)", i, rows[i].Y, i-1, rows[i-1].Y)
		}
		if rows[i].X != rows[0].X {
			t.Errorf("row %d x = %v, want %v", i, rows[i].X, rows[0].X)
		}
	}
	if last := rows[len(rows)-1]; last.Y > c.H {
		t.Errorf("last baseline %v below card height %v", last.Y, c.H)
	}

	c.Description = nil
	if got := len(TextRows(c)); got != 3 {
		t.Errorf("rows without description = %d, want 3", got)
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`a<b>&"c"`); got != "a&lt;b&gt;&amp;&#34;c&#34;" {
		t.Errorf("EscapeXML() = %q", got)
	}
}
