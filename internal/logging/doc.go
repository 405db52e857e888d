// Package logging provides structured logging for the ocbundle CLI
// built on log/slog.
//
// The default handler produces human-readable, optionally colorized
// output for terminals. A JSON handler is available for machine
// consumption, and MultiHandler fans records out to several handlers
// (e.g. terminal plus log file).
//
// Loggers travel on the context via NewContext/FromContext so commands
// and the bundle writer share one configured logger.
package logging
