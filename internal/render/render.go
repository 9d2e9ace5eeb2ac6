// Package render writes API responses to the terminal as JSON, YAML or an
// inferred JSON Schema.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatSchema = "schema"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatJSON, FormatYAML, FormatSchema}

// ValidFormat reports whether name is a known output format.
func ValidFormat(name string) bool {
	switch strings.ToLower(name) {
	case FormatJSON, FormatYAML, FormatSchema:
		return true
	}
	return false
}

// Write renders v to w in the given format.
func Write(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		return JSON(w, v)
	case FormatYAML:
		return YAML(w, v)
	case FormatSchema:
		return JSON(w, InferSchema(v))
	default:
		return fmt.Errorf("unknown output format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// JSON writes v indented by two spaces. Non-ASCII text and HTML characters
// are written as-is.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// YAML writes v as a YAML document.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
