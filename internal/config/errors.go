package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and can be matched
// with errors.Is().
var (
	// ErrConflictingReportFormats is returned when more than one of
	// --json, --yaml and --markdown is specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: only one of --json, --yaml and --markdown can be used")

	// ErrTextOnlyOption is returned when --color or --ascii is combined
	// with a structured output format.
	ErrTextOnlyOption = errors.New("--color and --ascii only apply to the text report")
)
