// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deckhtml/pkg/types"
)

// Format is the serialisation used for a model file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension. It reports false for
// extensions that are not model files.
func FormatFor(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// Decode reads a document from r. JSON input is accepted by the YAML
// decoder as well, so the format only matters for error messages.
func Decode(r io.Reader) (*types.Document, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &types.Document{}, nil
		}
		return nil, fmt.Errorf("decoding model: %w", err)
	}
	return f.Document()
}

// Encode writes doc to w in the given format.
func Encode(w io.Writer, doc *types.Document, format Format) error {
	f := FromDocument(doc)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(f)
	default:
		return fmt.Errorf("unknown model format %q", format)
	}
}

// ReadFile reads a document from a YAML or JSON file. Source defaults to
// path when the file does not name one.
func ReadFile(path string) (*types.Document, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	doc, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Source == "" {
		doc.Source = path
	}
	return doc, nil
}

// WriteFile writes doc to path in the format implied by its extension.
func WriteFile(path string, doc *types.Document) error {
	format, ok := FormatFor(path)
	if !ok {
		return fmt.Errorf("%s: not a model file extension", path)
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(fh, doc, format); err != nil {
		fh.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return fh.Close()
}

// Parser reads model files. It satisfies the converter's parser interface.
type Parser struct{}

// Parse reads the model file at path.
func (Parser) Parse(_ context.Context, path string) (*types.Document, error) {
	return ReadFile(path)
}
