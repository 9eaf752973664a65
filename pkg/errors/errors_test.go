package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidMetric, "test message: %s", "value")

	if err.Code != ErrCodeInvalidMetric {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidMetric)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_METRIC: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeOutputWrite, cause, "write dist/index.html")

	if err.Code != ErrCodeOutputWrite {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeOutputWrite)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidConfig, "test"),
			code:     ErrCodeInvalidConfig,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidConfig, "test"),
			code:     ErrCodeOutputWrite,
			expected: false,
		},
		{
			name:     "wrapped error uses outermost code",
			err:      Wrap(ErrCodeOutputWrite, New(ErrCodeInvalidConfig, "inner"), "outer"),
			code:     ErrCodeOutputWrite,
			expected: true,
		},
		{
			name:     "cycle error",
			err:      fmt.Errorf("tiers: %w", &CycleError{Path: []string{"a", "b", "a"}}),
			code:     ErrCodeCyclicDependency,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidConfig,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidConfig,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsConfigurationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"invalid config", New(ErrCodeInvalidConfig, "x"), true},
		{"invalid metric", New(ErrCodeInvalidMetric, "x"), true},
		{"cycle", &CycleError{Path: []string{"a", "a"}}, true},
		{"output write", New(ErrCodeOutputWrite, "x"), false},
		{"plain", errors.New("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfigurationError(tt.err); got != tt.want {
				t.Errorf("IsConfigurationError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidConfig, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "Error with cause",
			err:      Wrap(ErrCodeOutputWrite, errors.New("disk full"), "write index.html"),
			expected: "write index.html: disk full",
		},
		{
			name:     "cycle",
			err:      &CycleError{Path: []string{"a", "b", "a"}},
			expected: "cyclic influence relationship: a -> b -> a",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCycleError(t *testing.T) {
	err := &CycleError{Path: []string{"revenue", "signups", "revenue"}}
	want := "CYCLIC_DEPENDENCY: cyclic influence relationship: revenue -> signups -> revenue"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Code() != ErrCodeCyclicDependency {
		t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeCyclicDependency)
	}
}

func TestWarnings(t *testing.T) {
	var ws Warnings
	ws.Add(ErrCodeUnknownDependency, "signups", "unknown dependency %q referenced by metric %q", "revnue", "signups")
	ws.Add(ErrCodeMissingSourceAsset, "style.css", "source asset style.css not found")
	ws.Extend(Warnings{{Code: ErrCodeUnknownDependency, Subject: "churn"}})

	if ws.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ws.Len())
	}
	unknown := ws.ByCode(ErrCodeUnknownDependency)
	if len(unknown) != 2 || unknown[0].Subject != "signups" || unknown[1].Subject != "churn" {
		t.Errorf("ByCode() = %+v", unknown)
	}
	want := `UNKNOWN_DEPENDENCY: unknown dependency "revnue" referenced by metric "signups"`
	if ws[0].String() != want {
		t.Errorf("String() = %q, want %q", ws[0].String(), want)
	}
}
