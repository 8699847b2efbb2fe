package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/hireflow/pkg/export"
	"github.com/matzehuels/hireflow/pkg/viewer"
	"github.com/matzehuels/hireflow/pkg/workflow/catalog"
)

func newTestViewModel(t *testing.T, dir string) viewModel {
	t.Helper()
	ctrl, err := viewer.New(
		viewer.WithVariant(catalog.Singapore),
		viewer.WithExporter(export.New(export.WithOutputDir(dir))),
	)
	if err != nil {
		t.Fatal(err)
	}
	m := newViewModel(context.Background(), ctrl)
	t.Cleanup(func() { m.frames.Close() })

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return updated.(viewModel)
}

func press(m viewModel, keys ...tea.KeyMsg) viewModel {
	for _, k := range keys {
		updated, _ := m.Update(k)
		m = updated.(viewModel)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewModelSelectsVariant(t *testing.T) {
	m := newTestViewModel(t, t.TempDir())

	tests := []struct {
		key  tea.KeyMsg
		want catalog.Variant
	}{
		{runes("3"), catalog.Candidate},
		{runes("4"), catalog.Admin},
		{tea.KeyMsg{Type: tea.KeyTab}, catalog.Singapore},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, catalog.Admin},
		{runes("2"), catalog.Philippines},
	}
	for _, tt := range tests {
		m = press(m, tt.key)
		if got := m.ctrl.Variant(); got != tt.want {
			t.Errorf("after %q variant = %q, want %q", tt.key.String(), got, tt.want)
		}
	}
}

func TestViewModelZoomKeys(t *testing.T) {
	m := newTestViewModel(t, t.TempDir())

	m = press(m, runes("+"), runes("="))
	if m.ctrl.ZoomPercent() != 120 {
		t.Errorf("zoom = %d%%, want 120%%", m.ctrl.ZoomPercent())
	}
	m = press(m, runes("-"))
	if m.ctrl.ZoomPercent() != 110 {
		t.Errorf("zoom = %d%%, want 110%%", m.ctrl.ZoomPercent())
	}
	m = press(m, runes("0"))
	if m.ctrl.ZoomPercent() != 100 {
		t.Errorf("zoom = %d%%, want 100%%", m.ctrl.ZoomPercent())
	}
	if !strings.Contains(m.View(), "100%") {
		t.Error("status line does not show the zoom")
	}
}

func TestViewModelWindowFitsViewport(t *testing.T) {
	m := newTestViewModel(t, t.TempDir())
	m = press(m, runes("+"), runes("+"), runes("+"))

	window := m.window()
	lines := strings.Split(window, "\n")
	if len(lines) > m.vp.Height {
		t.Errorf("window has %d lines, viewport %d", len(lines), m.vp.Height)
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w > m.vp.Width {
			t.Errorf("line %d is %d cells wide, viewport %d", i, w, m.vp.Width)
		}
	}
	if !strings.Contains(window, "╭") {
		t.Error("window shows no cards")
	}
}

func TestViewModelScrollKeys(t *testing.T) {
	m := newTestViewModel(t, t.TempDir())
	_, y0 := m.ctrl.ScrollOffset()

	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if _, y := m.ctrl.ScrollOffset(); y <= y0 {
		t.Errorf("scroll y = %v after down, want > %v", y, y0)
	}
	m = press(m, runes("k"), runes("k"), runes("k"))
	if _, y := m.ctrl.ScrollOffset(); y != 0 {
		t.Errorf("scroll y = %v after up, want 0", y)
	}
}

func TestViewModelFrameCache(t *testing.T) {
	m := newTestViewModel(t, t.TempDir())
	first := m.diagramText()
	if m.frames.Len() != 1 {
		t.Fatalf("frames = %d, want 1", m.frames.Len())
	}
	if second := m.diagramText(); second != first {
		t.Error("cached frame differs")
	}
	if m.frames.Len() != 1 {
		t.Errorf("frames = %d after cache hit, want 1", m.frames.Len())
	}

	m = press(m, runes("+"))
	m.diagramText()
	if m.frames.Len() != 2 {
		t.Errorf("frames = %d after zoom, want 2", m.frames.Len())
	}
}

func TestViewModelExport(t *testing.T) {
	dir := t.TempDir()
	m := newTestViewModel(t, dir)
	m = press(m, runes("4"), runes("+"))

	updated, cmd := m.Update(runes("e"))
	m = updated.(viewModel)
	if cmd == nil || !m.pending {
		t.Fatal("export key did not start an export")
	}
	if !strings.Contains(m.View(), viewer.LabelExporting) {
		t.Error("status line does not show the export in progress")
	}

	// A second press while pending is ignored.
	if _, again := m.Update(runes("e")); again != nil {
		t.Error("second export started while pending")
	}

	msg := m.exportCmd()()
	done, ok := msg.(exportDoneMsg)
	if !ok {
		t.Fatalf("export command returned %T", msg)
	}
	if done.err != nil {
		t.Fatalf("export error = %v", done.err)
	}
	updated, _ = m.Update(done)
	m = updated.(viewModel)

	want := filepath.Join(dir, "admin-workflow.pdf")
	if done.res.Path != want {
		t.Errorf("Path = %q, want %q", done.res.Path, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("exported file missing: %v", err)
	}
	if m.pending || m.exports != 1 {
		t.Errorf("pending = %v, exports = %d after export", m.pending, m.exports)
	}
	if !strings.Contains(m.View(), "admin-workflow.pdf") {
		t.Error("status line does not show the exported file")
	}
	if m.ctrl.ZoomPercent() != 110 {
		t.Errorf("zoom = %d%% after export, want 110%%", m.ctrl.ZoomPercent())
	}
}

func TestViewModelQuit(t *testing.T) {
	m := newTestViewModel(t, t.TempDir())
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestViewRefusesNonTerminal(t *testing.T) {
	if isTerminal(os.Stdout) {
		t.Skip("stdout is a terminal")
	}
	if _, _, err := runCLI(t, "view"); err == nil {
		t.Error("view ran without a terminal")
	}
}
