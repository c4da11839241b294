// Package logging configures recentlog's own diagnostics.
//
// Diagnostics are structured slog records on stderr, quiet by default
// (warn and above). --debug lowers the level; a configured log_file also
// receives every record through a size-rotating writer.
package logging
