package logger

import "log/slog"

// Standard field keys for structured logging.
// Use these keys consistently across all log statements so runs can be
// filtered and correlated in log aggregation.
const (
	// Run identification
	KeyRunID   = "run_id"  // Unique ID for this host process run
	KeyVersion = "version" // Application version

	// Filesystem locations
	KeyPath      = "path"     // Generic filesystem path
	KeySystemDir = "system_dir"
	KeyUserDir   = "user_dir"
	KeyBundle    = "bundle"   // Plugin manifest bundle directory
	KeyTemplate  = "template" // Template patch path
	KeyScratch   = "scratch"  // Per-run scratch directory

	// Engine parameters
	KeySampleRate = "sample_rate"
	KeyBufferSize = "buffer_size"

	// Patch operations
	KeyPatch  = "patch"  // Patch name or path
	KeyModule = "module" // Plugin module slug

	// Operation metadata
	KeyDurationMs = "duration_ms"
	KeyError      = "error"
)

// Err returns a standard error attribute.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}
