package report

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/nao1215/improvements/internal/model"
	"github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// markdownTitle is the H1 heading of the Markdown report.
const markdownTitle = "Improvements"

// MarkdownWriter outputs the catalog in GitHub Flavored Markdown:
// a title, a table of contents, one section per category and a
// summary table.
type MarkdownWriter struct {
	baseWriter

	lower cases.Caser
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		lower:      cases.Lower(language.English),
	}
}

// Write outputs the catalog in Markdown format.
func (w *MarkdownWriter) Write(catalog *model.Catalog) (int, error) {
	md := markdown.NewMarkdown(w.output)
	categories := catalog.Categories()

	md.H1(markdownTitle)
	md.PlainText("")

	w.writeContents(md, categories)

	for _, category := range categories {
		w.writeCategory(md, category)
	}

	w.writeSummary(md, model.NewSummary(catalog))

	return len(md.String()), md.Build()
}

// writeContents writes a bullet list linking to each category section.
func (w *MarkdownWriter) writeContents(md *markdown.Markdown, categories []model.Category) {
	if len(categories) == 0 {
		return
	}

	links := make([]string, len(categories))
	for i, category := range categories {
		links[i] = "[" + category.Name + "](#" + w.anchor(category.Name) + ")"
	}

	md.H2("Contents")
	md.PlainText("")
	md.BulletList(links...)
	md.PlainText("")
}

// writeCategory writes a category section with its items as an ordered list.
func (w *MarkdownWriter) writeCategory(md *markdown.Markdown, category model.Category) {
	md.H2(category.Name)
	md.PlainText("")

	if len(category.Items) == 0 {
		md.PlainText("No items.")
		md.PlainText("")
		return
	}

	md.OrderedList(category.Items...)
	md.PlainText("")
}

// writeSummary writes the per-category counts and the total.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, summary *model.Summary) {
	md.H2("Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(summary.Categories)+1)
	for _, cc := range summary.Categories {
		rows = append(rows, []string{cc.Name, strconv.Itoa(cc.Count)})
	}
	rows = append(rows, []string{
		"**Total Improvements**",
		"**" + strconv.Itoa(summary.Total) + "**",
	})

	md.Table(markdown.TableSet{
		Header: []string{"Category", "Items"},
		Rows:   rows,
	})
	md.PlainText("")
}

// anchor returns the GitHub heading anchor for a heading text:
// lowercased, punctuation removed, spaces replaced by hyphens.
func (w *MarkdownWriter) anchor(heading string) string {
	var sb strings.Builder
	for _, r := range w.lower.String(heading) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			sb.WriteRune(r)
		case r == ' ':
			sb.WriteRune('-')
		}
	}
	return sb.String()
}
