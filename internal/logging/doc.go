// Package logging provides structured logging for the ado CLI using slog.
//
// Text output goes through [Handler], which colourises levels and keys when
// the [Terminal] allows it and masks secret-looking attributes. JSON output
// uses the standard library JSON handler with [RedactAttr]. When a log file
// is requested, [MultiHandler] mirrors records to a [FileHandler] and owns
// its file until closed.
//
// # Levels
//
// The effective level comes from, in order of precedence: --quiet,
// -v/--verbose, --log-level, ADO_LOG_LEVEL, and finally info. Use
// [ResolveSettings] to layer settings and [Settings.SlogLevel] to turn
// them into an slog level.
//
// # Context
//
// Commands retrieve the configured logger with [FromContext]:
//
//	log := logging.FromContext(cmd.Context())
//	log.Debug("resolved config", "path", path)
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework.
package logging
