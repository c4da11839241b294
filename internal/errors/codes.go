// Package errors provides structured error handling for recentlog.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration and platform errors
//   - 2XX: IO errors (log discovery, file access)
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration or platform resolution errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates file and directory errors.
	CategoryIO Category = "IO"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates the run cannot start at all.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates the run failed.
	SeverityError Severity = "ERROR"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeUnsupportedPlatform = "ERR_101_UNSUPPORTED_PLATFORM"
	ErrCodeConfigInvalid       = "ERR_102_CONFIG_INVALID"

	// IO errors (200-299)
	ErrCodeNoLogFiles = "ERR_201_NO_LOG_FILES"
	ErrCodeFileAccess = "ERR_202_FILE_ACCESS"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// "101" from "ERR_101_UNSUPPORTED_PLATFORM"
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeUnsupportedPlatform:
		return SeverityFatal
	default:
		return SeverityError
	}
}
