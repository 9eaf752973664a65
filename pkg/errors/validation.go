package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// metricKeyRegex matches metric keys. Keys end up in HTML element IDs
// (chart-<key>) and JSON object keys, so they are kept to a safe alphabet.
var metricKeyRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateMetricKey validates a metric key from the definition file.
func ValidateMetricKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidMetric, "metric key cannot be empty")
	}
	if len(key) > 128 {
		return New(ErrCodeInvalidMetric, "metric key too long (max 128 characters): %q", key[:32]+"...")
	}
	if !metricKeyRegex.MatchString(key) {
		return New(ErrCodeInvalidMetric, "invalid metric key %q (letters, digits, '_' and '-' only)", key)
	}
	return nil
}

// ValidateManifestFilename validates a logical asset name for the manifest.
// It ensures the name is a simple basename with an extension and without
// path components.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "asset name cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "asset name %q cannot contain path separators", filename)
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidManifest, "asset name %q cannot be a hidden file", filename)
	}

	dot := strings.LastIndexByte(filename, '.')
	if dot <= 0 || dot == len(filename)-1 {
		return New(ErrCodeInvalidManifest, "asset name %q must have an extension", filename)
	}

	return nil
}

// ValidatePath validates a relative file path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path %q must be relative (cannot start with /)", path)
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path %q cannot contain path traversal sequences (..)", path)
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path %q cannot contain backslashes", path)
	}

	return nil
}

// npmPackageNameRegex matches valid npm package names.
var npmPackageNameRegex = regexp.MustCompile(`^(@[a-z0-9-~][a-z0-9-._~]*/)?[a-z0-9-~][a-z0-9-._~]*$`)

// ValidateModuleName validates a vendored module name. Vendored modules are
// npm packages, so npm naming rules apply.
func ValidateModuleName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidModule, "module name cannot be empty")
	}
	if len(name) > 214 {
		return New(ErrCodeInvalidModule, "module name too long (max 214 characters)")
	}

	// npm names must be lowercase
	if strings.ToLower(name) != name {
		return New(ErrCodeInvalidModule, "module names must be lowercase: %q", name)
	}

	if !npmPackageNameRegex.MatchString(name) {
		return New(ErrCodeInvalidModule, "invalid module name: %q", name)
	}

	return nil
}
