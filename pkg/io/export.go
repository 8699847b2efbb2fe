package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/hireflow/pkg/errors"
	"github.com/matzehuels/hireflow/pkg/workflow"
	"github.com/matzehuels/hireflow/pkg/workflow/catalog"
)

// Data formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is a serialized workflow.
type Document struct {
	Variant  string          `json:"variant,omitempty" yaml:"variant,omitempty"`
	Label    string          `json:"label,omitempty" yaml:"label,omitempty"`
	Subtitle string          `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Steps    []workflow.Step `json:"steps" yaml:"steps"`
}

// FromEntry builds a document from a catalog entry.
func FromEntry(e catalog.Entry) Document {
	return Document{
		Variant:  string(e.Variant),
		Label:    e.Label,
		Subtitle: e.Subtitle,
		Steps:    e.Steps,
	}
}

// FormatFromPath infers the data format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer data format from %q (use .json, .yaml or .yml)", path)
}

// Write encodes doc in the given format.
func Write(doc Document, format string, w io.Writer) error {
	switch format {
	case FormatJSON:
		return WriteJSON(doc, w)
	case FormatYAML:
		return WriteYAML(doc, w)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid data format: %q (must be json or yaml)", format)
}

// WriteJSON encodes doc as indented JSON.
func WriteJSON(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML encodes doc as YAML with two-space indentation.
func WriteYAML(doc Document, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes doc to path, choosing the format from the extension.
func Export(doc Document, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(doc, format, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
