// Package errors provides structured error types for the Datanate build.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the build pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly messages that name the offending metric key or file path
//   - A non-fatal warning channel for problems that must not abort a build
//
// # Error Codes
//
// Fatal codes abort the run:
//   - INVALID_CONFIG, INVALID_METRIC, CYCLIC_DEPENDENCY: configuration errors
//   - OUTPUT_WRITE: the output directory cannot be created or written
//
// Recoverable codes are reported as [Warning] values:
//   - UNKNOWN_DEPENDENCY, MISSING_SOURCE_ASSET, MISSING_VENDORED_MODULE, MISSING_SERIES
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidMetric, "metric %q: unknown chart type %q", id, ct)
//	if errors.IsConfigurationError(err) {
//	    // abort before writing output
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeOutputWrite, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors (fatal)
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidMetric    Code = "INVALID_METRIC"
	ErrCodeCyclicDependency Code = "CYCLIC_DEPENDENCY"
	ErrCodeInvalidPath      Code = "INVALID_PATH"
	ErrCodeInvalidManifest  Code = "INVALID_MANIFEST"
	ErrCodeInvalidModule    Code = "INVALID_MODULE"

	// Recoverable conditions (reported as warnings)
	ErrCodeUnknownDependency     Code = "UNKNOWN_DEPENDENCY"
	ErrCodeMissingSourceAsset    Code = "MISSING_SOURCE_ASSET"
	ErrCodeMissingVendoredModule Code = "MISSING_VENDORED_MODULE"
	ErrCodeMissingSeries         Code = "MISSING_SERIES"
	ErrCodeMissingEntryPoint     Code = "MISSING_ENTRY_POINT"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeOutputWrite  Code = "OUTPUT_WRITE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// configurationCodes lists the codes that make a build's input unusable.
var configurationCodes = map[Code]bool{
	ErrCodeInvalidConfig:    true,
	ErrCodeInvalidMetric:    true,
	ErrCodeCyclicDependency: true,
	ErrCodeInvalidPath:      true,
	ErrCodeInvalidManifest:  true,
	ErrCodeInvalidModule:    true,
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error chain carries no code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var ce *CycleError
	if errors.As(err, &ce) {
		return ErrCodeCyclicDependency
	}
	return ""
}

// IsConfigurationError reports whether err is a fatal configuration error:
// malformed definitions, invalid paths, or a cyclic influence graph.
func IsConfigurationError(err error) bool {
	return configurationCodes[GetCode(err)]
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	var ce *CycleError
	if errors.As(err, &ce) {
		return "cyclic influence relationship: " + strings.Join(ce.Path, " -> ")
	}
	return err.Error()
}

// CycleError reports a dependency cycle in the influence graph.
// Path starts and ends with the same metric key.
type CycleError struct {
	Path []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: cyclic influence relationship: %s", ErrCodeCyclicDependency, strings.Join(e.Path, " -> "))
}

// Code returns the error code for this error type.
func (e *CycleError) Code() Code {
	return ErrCodeCyclicDependency
}
