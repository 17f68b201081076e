// Package log builds the slog loggers used by improvements.
//
// Logs always go to a writer other than the report destination (stderr in
// the CLI), so enabling verbose logging never changes report output.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Debug("rendering catalog", "categories", 7)
package log
