package errors

import "fmt"

// Warning is a non-fatal build problem. Warnings are collected during a run
// and reported at the end instead of aborting the build.
type Warning struct {
	Code    Code   // One of the recoverable codes, e.g. ErrCodeMissingSourceAsset
	Subject string // Metric key, file path or module name the warning is about
	Message string // Human-readable description
}

// String formats the warning for terminal output.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// Warnings is an ordered list of warnings. The zero value is ready to use.
type Warnings []Warning

// Add appends a warning with a formatted message.
func (ws *Warnings) Add(code Code, subject, format string, args ...any) {
	*ws = append(*ws, Warning{
		Code:    code,
		Subject: subject,
		Message: fmt.Sprintf(format, args...),
	})
}

// Extend appends all warnings from other.
func (ws *Warnings) Extend(other Warnings) {
	*ws = append(*ws, other...)
}

// Len returns the number of warnings.
func (ws Warnings) Len() int { return len(ws) }

// ByCode returns the warnings with the given code, in insertion order.
func (ws Warnings) ByCode(code Code) Warnings {
	var out Warnings
	for _, w := range ws {
		if w.Code == code {
			out = append(out, w)
		}
	}
	return out
}
