// Package config loads the optional hireflow configuration file.
//
// The file lives at $XDG_CONFIG_HOME/hireflow/config.toml (falling back to
// ~/.config/hireflow/config.toml) and has three sections:
//
//	[render]
//	style = "mono"
//	scale = 3
//	formats = ["svg", "pdf"]
//	output_dir = "out"
//
//	[view]
//	variant = "candidate"
//	zoom = 1.2
//
//	[log]
//	level = "debug"
//
// A missing file yields [Default]. Unknown keys and out-of-range values
// fail with INVALID_CONFIG so typos do not go unnoticed. Command-line
// flags take precedence over the file.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/hireflow/pkg/errors"
	"github.com/matzehuels/hireflow/pkg/pipeline"
	"github.com/matzehuels/hireflow/pkg/workflow/catalog"
)

// AppName is the directory name under the user config directory.
const AppName = "hireflow"

// FileName is the config file name.
const FileName = "config.toml"

// Zoom bounds accepted in [view].
const (
	MinZoom = 0.5
	MaxZoom = 2.0
)

// Config is the decoded configuration file.
type Config struct {
	Render RenderConfig `toml:"render"`
	View   ViewConfig   `toml:"view"`
	Log    LogConfig    `toml:"log"`
}

// RenderConfig holds defaults for the render command.
type RenderConfig struct {
	Style     string   `toml:"style"`
	VizType   string   `toml:"viz_type"`
	Scale     float64  `toml:"scale"`
	Formats   []string `toml:"formats"`
	OutputDir string   `toml:"output_dir"`
}

// ViewConfig holds defaults for the interactive viewer.
type ViewConfig struct {
	Variant string  `toml:"variant"`
	Zoom    float64 `toml:"zoom"`
}

// LogConfig holds logging defaults.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Style:     pipeline.DefaultStyle,
			VizType:   pipeline.DefaultVizType,
			Scale:     pipeline.DefaultScale,
			Formats:   []string{pipeline.FormatSVG},
			OutputDir: ".",
		},
		View: ViewConfig{
			Variant: string(catalog.Default),
			Zoom:    1.0,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Dir returns the hireflow config directory.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// Path returns the default config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the config file at path on top of [Default]. A missing file
// is not an error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// Decode reads TOML from r on top of [Default] and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every value against the sets the commands accept.
func (c Config) Validate() error {
	if err := pipeline.ValidateStyle(c.Render.Style); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[render] style")
	}
	if err := pipeline.ValidateVizType(c.Render.VizType); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[render] viz_type")
	}
	if err := pipeline.ValidateFormats(c.Render.VizType, c.Render.Formats); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[render] formats")
	}
	if c.Render.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "[render] scale must be positive, got %v", c.Render.Scale)
	}
	if _, err := catalog.ParseVariant(c.View.Variant); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[view] variant")
	}
	if c.View.Zoom < MinZoom || c.View.Zoom > MaxZoom {
		return errors.New(errors.ErrCodeInvalidConfig, "[view] zoom must be between %.1f and %.1f, got %v", MinZoom, MaxZoom, c.View.Zoom)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[log] level")
	}
	return nil
}

// LogLevel returns the configured log level, info if unparsable.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
