package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nao1215/improvements/internal/model"
)

const (
	// SeparatorWidth is the number of characters in a separator line.
	SeparatorWidth = 60

	// separatorChar is repeated SeparatorWidth times to draw a separator.
	separatorChar = "="

	// totalLabel precedes the total item count in the closing summary.
	totalLabel = "Total Improvements: "
)

// Theme holds the marker glyphs placed before headers and the total line.
// An empty marker drops the glyph and its trailing space.
type Theme struct {
	HeaderMarker string
	TotalMarker  string
}

var (
	// DefaultTheme uses emoji markers.
	DefaultTheme = Theme{HeaderMarker: "📋", TotalMarker: "✨"}

	// ASCIITheme is for terminals and pipelines that cannot show emoji.
	ASCIITheme = Theme{HeaderMarker: "#", TotalMarker: "*"}
)

// SimpleWriter outputs the catalog in its console layout:
//
//	<blank>
//	============================================================
//	📋 <category>
//	============================================================
//	1. <item>
//	2. <item>
//	...
//	<blank>
//	============================================================
//	✨ Total Improvements: <n>
//	============================================================
type SimpleWriter struct {
	baseWriter

	theme Theme

	// color enables lipgloss styling of header and total lines.
	color bool

	headerStyle lipgloss.Style
	totalStyle  lipgloss.Style
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithTheme sets the marker glyphs.
func WithTheme(theme Theme) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.theme = theme
	}
}

// WithColor styles header and total lines when the output is a terminal.
// Non-terminal outputs receive plain text.
func WithColor(color bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.color = color
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		theme:      DefaultTheme,
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.color {
		renderer := lipgloss.NewRenderer(output)
		w.headerStyle = renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
		w.totalStyle = renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	}

	return w
}

// Write outputs the catalog in the console layout.
func (w *SimpleWriter) Write(catalog *model.Catalog) (int, error) {
	var sb strings.Builder

	for _, category := range catalog.Categories() {
		w.writeCategory(&sb, category)
	}
	w.writeTotal(&sb, catalog.Total())

	return io.WriteString(w.output, sb.String())
}

// writeCategory writes one category header followed by its numbered items.
func (w *SimpleWriter) writeCategory(sb *strings.Builder, category model.Category) {
	sb.WriteString("\n")
	w.writeSeparator(sb)
	sb.WriteString(w.style(w.headerStyle, marked(w.theme.HeaderMarker, category.Name)))
	sb.WriteString("\n")
	w.writeSeparator(sb)

	for i, item := range category.Items {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
	}
}

// writeTotal writes the closing summary with the total item count.
func (w *SimpleWriter) writeTotal(sb *strings.Builder, total int) {
	sb.WriteString("\n")
	w.writeSeparator(sb)
	line := marked(w.theme.TotalMarker, fmt.Sprintf("%s%d", totalLabel, total))
	sb.WriteString(w.style(w.totalStyle, line))
	sb.WriteString("\n")
	w.writeSeparator(sb)
}

func (w *SimpleWriter) writeSeparator(sb *strings.Builder) {
	sb.WriteString(Separator())
	sb.WriteString("\n")
}

// style renders s with the given style when color is enabled.
func (w *SimpleWriter) style(style lipgloss.Style, s string) string {
	if !w.color {
		return s
	}
	return style.Render(s)
}

// Separator returns a separator line without its trailing newline.
func Separator() string {
	return strings.Repeat(separatorChar, SeparatorWidth)
}

// marked prefixes text with a marker glyph and a space.
func marked(marker, text string) string {
	if marker == "" {
		return text
	}
	return marker + " " + text
}
