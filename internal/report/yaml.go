package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/nao1215/improvements/internal/model"
	"gopkg.in/yaml.v3"
)

// yamlIndent is the number of spaces per nesting level.
const yamlIndent = 2

// YAMLWriter outputs the catalog as a YAML document with the same shape
// as the JSON output.
type YAMLWriter struct {
	baseWriter
}

// NewYAMLWriter creates a YAMLWriter that outputs to the given writer.
func NewYAMLWriter(output io.Writer) *YAMLWriter {
	return &YAMLWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the catalog in YAML format.
func (w *YAMLWriter) Write(catalog *model.Catalog) (int, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(newDocument(catalog)); err != nil {
		return 0, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("encode yaml: %w", err)
	}

	return w.output.Write(buf.Bytes())
}
