// Package errors provides the classified error type used across make-blank-docs.
//
// Every failure the tool can hit is fatal for the run, so the classification
// exists to pick an exit code and a log line, not to drive recovery.
//
// Key features:
//   - ErrorCategory: which stage failed (config, validation, not_found, roster, filesystem)
//   - ErrorSeverity: impact level used to pick the log level
//   - ClassifiedError: structured error with category, severity, cause and context
//   - ErrorBuilder: fluent API for creating classified errors
//   - CLIErrorAdapter: exit code mapping and presentation for the CLI
//
// Example usage:
//
//	err := errors.NotFoundError("input file not found").
//		WithContext("path", input).
//		Build()
package errors
