// Package report renders an improvement catalog in several output formats.
//
// This package contains writers for different output formats:
//   - SimpleWriter: The console layout with separators, headers and numbered items
//   - JSONWriter: Structured JSON output for tool integration
//   - YAMLWriter: The same document shape as JSON, in YAML
//   - MarkdownWriter: GitHub Flavored Markdown with a table of contents
//
// Every writer renders the whole report in memory and hands it to the
// destination in a single Write call. Rendering the same catalog twice
// produces byte-identical output.
package report
