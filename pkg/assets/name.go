package assets

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	hashedFilePattern = regexp.MustCompile(`^.+-[0-9a-f]{8}\.[A-Za-z0-9]+$`)
	hashedDirPattern  = regexp.MustCompile(`^.+-[0-9a-f]{8}$`)
)

// moduleNameReplacer flattens scoped npm names into a single path segment.
var moduleNameReplacer = strings.NewReplacer("@", "", "/", "__")

// HashedName returns the content-addressed name for a file:
// <base>-<hash>.<ext>. Only the last extension is split off, so
// "d3.min.js" becomes "d3.min-<hash>.js".
func HashedName(name string, data []byte) string {
	return withHash(name, HashPrefix(data))
}

func withHash(name, prefix string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return base + "-" + prefix + ext
}

// IsHashedName reports whether name looks like a file written by
// HashedName. Cleanup removes only files that match.
func IsHashedName(name string) bool {
	return hashedFilePattern.MatchString(name)
}

// IsHashedDir reports whether name looks like a vendored module directory
// (<module>-<hash>).
func IsHashedDir(name string) bool {
	return hashedDirPattern.MatchString(name)
}

// ModuleDirName returns the output directory name of a vendored module:
// the sanitized module name followed by the tree hash.
func ModuleDirName(module, prefix string) string {
	return SanitizeModuleName(module) + "-" + prefix
}

// SanitizeModuleName makes an npm module name usable as a directory name.
// "@scope/pkg" becomes "scope__pkg".
func SanitizeModuleName(name string) string {
	return moduleNameReplacer.Replace(name)
}
