package errors

import (
	"testing"
)

func TestValidateMetricKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "revenue", false},
		{"with underscore", "active_users", false},
		{"with dash", "net-revenue", false},
		{"with digits", "q4_revenue2", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"space", "active users", true},
		{"dot", "revenue.total", true},
		{"leading dash", "-revenue", true},
		{"quote", `rev"enue`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMetricKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMetricKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidMetric) {
				t.Errorf("ValidateMetricKey(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateManifestFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"css", "style.css", false},
		{"js", "app.js", false},
		{"multi dot", "app.min.js", false},

		{"empty", "", true},
		{"with path /", "assets/app.js", true},
		{"with path \\", "assets\\app.js", true},
		{"hidden file", ".hidden.js", true},
		{"no extension", "Makefile", true},
		{"trailing dot", "app.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateManifestFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateManifestFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "revenue.csv", false},
		{"valid nested", "finance/revenue.csv", false},
		{"valid with dots", "v1.2.3/data.csv", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"absolute path", "/etc/passwd", true},
		{"path traversal", "../../../etc/passwd", true},
		{"path traversal middle", "foo/../bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateModuleName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"d3 module", "d3-selection", false},
		{"scoped", "@observablehq/plot", false},
		{"with dot", "lodash.merge", false},

		{"empty", "", true},
		{"uppercase", "D3-Selection", true},
		{"starts with dot", ".module", true},
		{"spaces", "d3 selection", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateModuleName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateModuleName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidConfig,
		ErrCodeInvalidMetric,
		ErrCodeCyclicDependency,
		ErrCodeInvalidPath,
		ErrCodeInvalidManifest,
		ErrCodeInvalidModule,
		ErrCodeUnknownDependency,
		ErrCodeMissingSourceAsset,
		ErrCodeMissingVendoredModule,
		ErrCodeMissingSeries,
		ErrCodeMissingEntryPoint,
		ErrCodeFileNotFound,
		ErrCodeOutputWrite,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
