package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hireflow/pkg/cache"
	"github.com/matzehuels/hireflow/pkg/errors"
	"github.com/matzehuels/hireflow/pkg/export"
	"github.com/matzehuels/hireflow/pkg/pipeline"
	"github.com/matzehuels/hireflow/pkg/render/flow/sink"
	"github.com/matzehuels/hireflow/pkg/render/flow/styles"
	"github.com/matzehuels/hireflow/pkg/viewer"
	"github.com/matzehuels/hireflow/pkg/workflow"
	"github.com/matzehuels/hireflow/pkg/workflow/catalog"
)

type viewOpts struct {
	variant   string
	zoom      float64
	style     string
	outputDir string
}

// viewCommand creates the interactive viewer command.
func (c *CLI) viewCommand() *cobra.Command {
	var opts viewOpts

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the workflows interactively",
		Long: `Browse the workflows in the terminal.

Keys: 1-4 or tab select a variant, +/- zoom, 0 resets the zoom, arrows
scroll, e exports the selected workflow as PDF, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return errors.New(errors.ErrCodeUnsupported, "view needs an interactive terminal (use render instead)")
			}
			return c.runView(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.variant, "variant", "V", "", "initial workflow variant: "+strings.Join(catalog.Names(), ", "))
	cmd.Flags().Float64Var(&opts.zoom, "zoom", 0, "initial zoom factor between 0.5 and 2.0")
	cmd.Flags().StringVar(&opts.style, "style", "", "card style for exports: simple (default), mono")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "directory exported PDFs are written to")
	registerCompletions(cmd)

	return cmd
}

func (c *CLI) runView(ctx context.Context, opts viewOpts) error {
	ctrl, err := c.newController(opts)
	if err != nil {
		return err
	}

	// Log lines would tear the alternate screen; hold them until exit.
	var held bytes.Buffer
	c.Logger.SetOutput(&held)
	defer func() {
		c.Logger.SetOutput(c.logOut)
		_, _ = held.WriteTo(c.logOut)
	}()

	m := newViewModel(ctx, ctrl)
	defer m.frames.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}

	if res, err := ctrl.LastExport(); err == nil && res.Path != "" {
		printSuccess("Exported %s", res.Path)
	} else if err != nil {
		printError("Export failed: %v", err)
	}
	if fm, ok := final.(viewModel); ok && fm.exports > 1 {
		printDetail("%d exports this session", fm.exports)
	}
	return nil
}

// newController builds the viewer controller from flags and config.
func (c *CLI) newController(opts viewOpts) (*viewer.Controller, error) {
	variant := opts.variant
	if variant == "" {
		variant = c.Config.View.Variant
	}
	zoom := opts.zoom
	if zoom <= 0 {
		zoom = c.Config.View.Zoom
	}
	styleName := opts.style
	if styleName == "" {
		styleName = c.Config.Render.Style
	}
	style, err := styles.Parse(styleName)
	if err != nil {
		return nil, err
	}
	dir := opts.outputDir
	if dir == "" {
		dir = c.Config.Render.OutputDir
	}

	exp := export.New(
		export.WithOutputDir(dir),
		export.WithLogger(c.Logger),
		export.WithTracerProvider(c.tracer),
	)
	return viewer.New(
		viewer.WithVariant(catalog.Variant(variant)),
		viewer.WithZoom(zoom),
		viewer.WithStyle(style),
		viewer.WithLogger(c.Logger),
		viewer.WithExporter(exp),
	)
}

// =============================================================================
// Key Bindings
// =============================================================================

type viewKeyMap struct {
	Select  key.Binding
	Next    key.Binding
	Prev    key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Reset   key.Binding
	Export  key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Quit    key.Binding
}

func newViewKeyMap() viewKeyMap {
	return viewKeyMap{
		Select:  key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "variant")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		Reset:   key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "100%")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export pdf")),
		Up:      key.NewBinding(key.WithKeys("up", "k")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Left:    key.NewBinding(key.WithKeys("left", "h")),
		Right:   key.NewBinding(key.WithKeys("right", "l")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k viewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.ZoomIn, k.ZoomOut, k.Reset, k.Export, k.Quit}
}

func (k viewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Next, k.Prev}}
}

// =============================================================================
// Model
// =============================================================================

// Rows taken by the header (title, subtitle, tabs, blank) and footer
// (status, help).
const (
	headerRows = 4
	footerRows = 2
)

// exportDoneMsg reports a finished export.
type exportDoneMsg struct {
	res export.Result
	err error
}

// viewModel is the bubbletea model of the interactive viewer. Scroll and
// zoom state live in the controller; the model only maps terminal cells to
// diagram pixels.
type viewModel struct {
	ctx     context.Context
	ctrl    *viewer.Controller
	keys    viewKeyMap
	help    help.Model
	spin    spinner.Model
	vp      viewport.Model
	frames  *cache.MemoryCache
	keyer   cache.Keyer
	status  string
	pending bool // export requested, result not yet received
	exports int
}

func newViewModel(ctx context.Context, ctrl *viewer.Controller) viewModel {
	return viewModel{
		ctx:    ctx,
		ctrl:   ctrl,
		keys:   newViewKeyMap(),
		help:   help.New(),
		spin:   spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(styleIconSpinner)),
		vp:     viewport.New(0, 0),
		frames: cache.NewMemoryCache(),
		keyer:  cache.NewScopedKeyer(cache.NewDefaultKeyer(), "view:"),
	}
}

func (m viewModel) Init() tea.Cmd { return nil }

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case exportDoneMsg:
		m.pending = false
		if msg.err != nil {
			m.status = StyleError.Render("export failed: " + msg.err.Error())
			return m, nil
		}
		if msg.res.Path == "" {
			return m, nil
		}
		m.exports++
		m.status = StyleSuccess.Render(fmt.Sprintf("%s %s (%s)", iconSuccess, msg.res.Path, formatSize(msg.res.Bytes)))
		return m, nil
	}
	return m, nil
}

func (m viewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	stepX, stepY := sink.CellWidth*4, sink.CellHeight*2

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Select):
		all := catalog.All()
		if i := int(msg.String()[0] - '1'); i >= 0 && i < len(all) {
			m.selectVariant(all[i])
		}
	case key.Matches(msg, m.keys.Next):
		m.ctrl.Cycle(1)
	case key.Matches(msg, m.keys.Prev):
		m.ctrl.Cycle(-1)
	case key.Matches(msg, m.keys.ZoomIn):
		m.ctrl.ZoomIn()
	case key.Matches(msg, m.keys.ZoomOut):
		m.ctrl.ZoomOut()
	case key.Matches(msg, m.keys.Reset):
		m.ctrl.ResetZoom()
	case key.Matches(msg, m.keys.Up):
		m.ctrl.Scroll(0, -stepY)
	case key.Matches(msg, m.keys.Down):
		m.ctrl.Scroll(0, stepY)
	case key.Matches(msg, m.keys.Left):
		m.ctrl.Scroll(-stepX, 0)
	case key.Matches(msg, m.keys.Right):
		m.ctrl.Scroll(stepX, 0)
	case key.Matches(msg, m.keys.Export):
		if m.pending || m.ctrl.Exporting() {
			return m, nil
		}
		m.pending, m.status = true, ""
		return m, tea.Batch(m.exportCmd(), m.spin.Tick)
	}
	return m, nil
}

func (m *viewModel) selectVariant(v catalog.Variant) {
	if err := m.ctrl.SelectVariant(v); err != nil {
		m.status = StyleError.Render(errors.UserMessage(err))
	}
}

// exportCmd runs the export off the UI loop. A request the controller
// ignores because another export is in flight still clears the pending
// state.
func (m viewModel) exportCmd() tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		if !ctrl.Export(ctx) {
			return exportDoneMsg{}
		}
		res, err := ctrl.LastExport()
		return exportDoneMsg{res: res, err: err}
	}
}

func (m *viewModel) resize(width, height int) {
	m.vp.Width = max(width, 1)
	m.vp.Height = max(height-headerRows-footerRows, 1)
	m.help.Width = width
	m.ctrl.Resize(float64(m.vp.Width)*sink.CellWidth, float64(m.vp.Height)*sink.CellHeight)
}

func (m viewModel) View() string {
	entry := m.ctrl.Entry()

	var b strings.Builder
	b.WriteString(StyleTitle.Render(catalog.Title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(entry.Subtitle))
	b.WriteString("\n")
	b.WriteString(m.tabs())
	b.WriteString("\n\n")

	m.vp.SetContent(m.window())
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

var (
	tabStyle       = lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
	tabActiveStyle = lipgloss.NewStyle().Foreground(colorWhite).Background(colorCyan).Bold(true).Padding(0, 1)
)

func (m viewModel) tabs() string {
	current := m.ctrl.Variant()
	var tabs []string
	for i, v := range catalog.All() {
		label := fmt.Sprintf("%d %s", i+1, catalog.Lookup(v).Label)
		if v == current {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m viewModel) statusLine() string {
	parts := []string{
		StyleNumber.Render(fmt.Sprintf("%d%%", m.ctrl.ZoomPercent())),
	}
	label := m.ctrl.ExportLabel()
	if m.pending {
		label = m.spin.View() + " " + viewer.LabelExporting
	}
	parts = append(parts, StyleDim.Render("[e] ")+label)
	if m.status != "" {
		parts = append(parts, m.status)
	} else {
		parts = append(parts, StyleDim.Render(catalog.Footer))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

// window returns the visible part of the diagram: the rows and columns
// under the controller's scroll offset.
func (m viewModel) window() string {
	lines := strings.Split(m.diagramText(), "\n")
	x, y := m.ctrl.ScrollOffset()
	col, row := int(x/sink.CellWidth), int(y/sink.CellHeight)
	if row >= len(lines) {
		return ""
	}
	end := min(row+m.vp.Height, len(lines))
	visible := make([]string, 0, end-row)
	for _, line := range lines[row:end] {
		visible = append(visible, ansi.Cut(line, col, col+m.vp.Width))
	}
	return strings.Join(visible, "\n")
}

// diagramText renders the selected variant at the current zoom, reusing
// earlier renders from the frame cache.
func (m viewModel) diagramText() string {
	variant, zoom := m.ctrl.Variant(), m.ctrl.Zoom()
	k := m.keyer.ArtifactKey(string(variant), cache.ArtifactKeyOpts{
		Format: pipeline.FormatText,
		Style:  "ansi",
		Zoom:   zoom,
	})
	if data, ok, err := m.frames.Get(m.ctx, k); err == nil && ok {
		return string(data)
	}

	text := sink.RenderText(m.ctrl.Diagram().Layout(), sink.WithZoom(zoom), sink.WithPainter(paintCell))
	_ = m.frames.Set(m.ctx, k, []byte(text), cache.TTLArtifact)
	return text
}

var (
	styleConnectorCell = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.ConnectorColor))
	styleTextCell      = lipgloss.NewStyle().Foreground(colorGray)
)

// paintCell colors a run of diagram cells by class and actor.
func paintCell(class sink.CellClass, actor workflow.Actor, s string) string {
	switch class {
	case sink.CellConnector:
		return styleConnectorCell.Render(s)
	case sink.CellBorder, sink.CellLabel:
		return actorStyles[actor].Render(s)
	case sink.CellTitle:
		return StyleValue.Bold(true).Render(s)
	case sink.CellText:
		return styleTextCell.Render(s)
	}
	return s
}
