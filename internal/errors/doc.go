// Package errors provides error handling conventions for the ocbundle CLI.
//
// It re-exports the wrapping helpers from cockroachdb/errors so the rest
// of the codebase imports a single errors package, and adds sentinel
// errors for common failure conditions plus an ExitError type carrying
// a process exit code and an optional user-facing suggestion.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, ocerrors.ErrNotFound) {
//	    // handle not found case
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. Use [ExitCode] in main to turn any error chain into a
// process exit status.
package errors
