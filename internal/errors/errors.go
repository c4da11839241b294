package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the structured error type for recentlog.
// It carries enough context for logging and for the CLI diagnostic.
type AppError struct {
	// Code is the unique error code (e.g., "ERR_201_NO_LOG_FILES").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches by code so errors.Is(err, &AppError{Code: ...}) works.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
func (e *AppError) WithDetail(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
func (e *AppError) WithSuggestion(suggestion string) *AppError {
	e.Suggestion = suggestion
	return e
}

// New creates a new AppError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates an AppError from an existing error.
// The error's message becomes the AppError message.
func Wrap(code string, err error) *AppError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// UnsupportedPlatform reports an OS family with no known log directory.
func UnsupportedPlatform(goos string) *AppError {
	return New(ErrCodeUnsupportedPlatform,
		fmt.Sprintf("no yarp log directory is known for platform %q", goos), nil).
		WithDetail("goos", goos).
		WithSuggestion("Pass --dir or set RECENTLOG_DIR to point at the log directory")
}

// NoLogFiles reports an empty candidate set for pattern.
func NoLogFiles(pattern string) *AppError {
	return New(ErrCodeNoLogFiles,
		fmt.Sprintf("no log files match %s", pattern), nil).
		WithDetail("pattern", pattern).
		WithSuggestion("Run yarp at least once, or check --dir/--pattern")
}

// FileAccess reports a selected log file that could not be read.
func FileAccess(path string, cause error) *AppError {
	msg := fmt.Sprintf("cannot read log file %s", path)
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return New(ErrCodeFileAccess, msg, cause).WithDetail("path", path)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *AppError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *AppError {
	return New(ErrCodeInternal, message, cause)
}

// GetCode extracts the error code from an AppError anywhere in the chain.
// Returns empty string if there is none.
func GetCode(err error) string {
	if ae, ok := As(err); ok {
		return ae.Code
	}
	return ""
}

// As finds the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var ae *AppError
	if stderrors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
