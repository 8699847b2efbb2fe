package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hireflow/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestDecode(t *testing.T) {
	input := `
[render]
style = "mono"
scale = 3
formats = ["svg", "pdf"]

[view]
variant = "candidate"
zoom = 1.2

[log]
level = "debug"
`
	cfg, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if cfg.Render.Style != "mono" || cfg.Render.Scale != 3 {
		t.Errorf("render = %+v", cfg.Render)
	}
	if !reflect.DeepEqual(cfg.Render.Formats, []string{"svg", "pdf"}) {
		t.Errorf("formats = %v", cfg.Render.Formats)
	}
	if cfg.Render.OutputDir != "." {
		t.Errorf("output_dir = %q, want default", cfg.Render.OutputDir)
	}
	if cfg.View.Variant != "candidate" || cfg.View.Zoom != 1.2 {
		t.Errorf("view = %+v", cfg.View)
	}
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel())
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax", "[render\nstyle = 1"},
		{"unknown key", "[render]\ncolour = \"red\""},
		{"unknown section", "[server]\nport = 80"},
		{"style", "[render]\nstyle = \"neon\""},
		{"format", "[render]\nformats = [\"gif\"]"},
		{"nodelink json", "[render]\nviz_type = \"nodelink\"\nformats = [\"json\"]"},
		{"scale", "[render]\nscale = 0"},
		{"variant", "[view]\nvariant = \"mars\""},
		{"zoom", "[view]\nzoom = 3.5"},
		{"level", "[log]\nlevel = \"loud\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Decode() error = %v, want %v", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("[view]\nvariant = \"admin\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.View.Variant != "admin" {
		t.Errorf("variant = %q, want admin", cfg.View.Variant)
	}
}

func TestDirXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")
	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error = %v", err)
	}
	if want := filepath.Join("/tmp/custom-config", AppName); dir != want {
		t.Errorf("Dir() = %q, want %q", dir, want)
	}

	path, _ := Path()
	if want := filepath.Join("/tmp/custom-config", AppName, FileName); path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}
}

func TestDirDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error = %v", err)
	}
	if want := filepath.Join(home, ".config", AppName); dir != want {
		t.Errorf("Dir() = %q, want %q", dir, want)
	}
}
