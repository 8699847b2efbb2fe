package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/hireflow/pkg/errors"
	"github.com/matzehuels/hireflow/pkg/workflow"
	"github.com/matzehuels/hireflow/pkg/workflow/catalog"
)

// Read decodes a document in the given format.
func Read(r io.Reader, format string) (Document, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r)
	case FormatYAML:
		return ReadYAML(r)
	}
	return Document{}, errors.New(errors.ErrCodeInvalidFormat, "invalid data format: %q (must be json or yaml)", format)
}

// ReadJSON decodes a JSON document or a bare JSON array of steps.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read: %w", err)
	}

	var doc Document
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &doc.Steps); err != nil {
			return Document{}, fmt.Errorf("decode: %w", err)
		}
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}

// ReadYAML decodes a YAML document or a bare YAML sequence of steps.
// ReadYAML does not close r.
func ReadYAML(r io.Reader) (Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if err == io.EOF {
			return Document{}, nil
		}
		return Document{}, fmt.Errorf("decode: %w", err)
	}

	var doc Document
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == yaml.SequenceNode {
		var steps []workflow.Step
		if err := node.Decode(&steps); err != nil {
			return Document{}, fmt.Errorf("decode: %w", err)
		}
		doc.Steps = steps
		return doc, nil
	}
	if err := node.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}

// Import reads a document from path, choosing the format from the
// extension. Errors carry the path for context.
func Import(path string) (Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Read(f, format)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Entry converts the document to a catalog entry. A document without a
// variant name is named after fallback.
func (d Document) Entry(fallback string) catalog.Entry {
	name := strings.TrimSpace(d.Variant)
	if name == "" {
		name = fallback
	}
	return catalog.Entry{
		Variant:  catalog.Variant(name),
		Label:    d.Label,
		Subtitle: d.Subtitle,
		Steps:    d.Steps,
	}
}
