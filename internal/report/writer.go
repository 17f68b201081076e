package report

import (
	"io"

	"github.com/nao1215/improvements/internal/model"
)

// Writer defines the interface for report output.
// Implementations write a catalog in various formats.
type Writer interface {
	// Write outputs the catalog to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(catalog *model.Catalog) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// document is the serialized shape shared by the JSON and YAML writers.
// Categories are a list, not a map, so display order survives encoding.
type document struct {
	Categories []documentCategory `json:"categories" yaml:"categories"`
	Total      int                `json:"total"      yaml:"total"`
}

// documentCategory is one category with its item count.
type documentCategory struct {
	Name  string   `json:"name"  yaml:"name"`
	Items []string `json:"items" yaml:"items"`
	Count int      `json:"count" yaml:"count"`
}

// newDocument converts a catalog into its serialized shape.
func newDocument(catalog *model.Catalog) document {
	doc := document{Categories: make([]documentCategory, 0, catalog.Len())}
	for _, category := range catalog.Categories() {
		items := category.Items
		if items == nil {
			items = []string{}
		}
		doc.Categories = append(doc.Categories, documentCategory{
			Name:  category.Name,
			Items: items,
			Count: len(items),
		})
		doc.Total += len(items)
	}
	return doc
}
