package config

// AppName is the application name.
const AppName = "improvements"

// Format identifies a report output format.
type Format string

// Supported report formats.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// Config holds all configuration options for improvements.
// It is populated from CLI flags and passed to the report layer.
type Config struct {
	// Verbose enables debug log output on stderr.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport selects JSON output instead of the text report.
	// Mutually exclusive with YAMLReport and MarkdownReport.
	JSONReport bool

	// YAMLReport selects YAML output instead of the text report.
	// Mutually exclusive with JSONReport and MarkdownReport.
	YAMLReport bool

	// MarkdownReport selects GitHub Flavored Markdown output.
	// Mutually exclusive with JSONReport and YAMLReport.
	MarkdownReport bool

	// Color styles category headers and the total line of the text report
	// when stdout is a terminal.
	Color bool

	// ASCII replaces the emoji markers of the text report with ASCII ones.
	ASCII bool
}

// NewConfig creates a new Config with default values: the plain text
// report with emoji markers and no color.
func NewConfig() *Config {
	return &Config{}
}

// Format returns the selected report format.
// It returns FormatText when no structured format was requested.
func (c *Config) Format() Format {
	switch {
	case c.JSONReport:
		return FormatJSON
	case c.YAMLReport:
		return FormatYAML
	case c.MarkdownReport:
		return FormatMarkdown
	default:
		return FormatText
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	selected := 0
	for _, on := range []bool{c.JSONReport, c.YAMLReport, c.MarkdownReport} {
		if on {
			selected++
		}
	}
	if selected > 1 {
		return ErrConflictingReportFormats
	}

	if (c.Color || c.ASCII) && c.Format() != FormatText {
		return ErrTextOnlyOption
	}

	return nil
}
