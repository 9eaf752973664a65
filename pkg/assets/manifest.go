package assets

import (
	"maps"
	"slices"
)

// Manifest maps logical asset names to hashed output paths relative to
// the output root, e.g. "style.css" -> "assets/style-0a1b2c3d.css".
type Manifest map[string]string

// Path returns the hashed path of a logical name.
func (m Manifest) Path(name string) (string, bool) {
	p, ok := m[name]
	return p, ok
}

// URL returns the absolute URL path of a logical name, or "" when the
// asset was not written.
func (m Manifest) URL(name string) string {
	if p, ok := m[name]; ok {
		return "/" + p
	}
	return ""
}

// Names returns the logical names in sorted order.
func (m Manifest) Names() []string {
	return slices.Sorted(maps.Keys(m))
}

// ModuleManifest maps vendored module names to their hashed directory
// relative to the output root, e.g. "d3-array" -> "d3/d3-array-0a1b2c3d".
// Modules resolve to directories, not files, so this is kept apart from
// Manifest.
type ModuleManifest map[string]string

// VendoredModule describes one module tree copied into the output.
type VendoredModule struct {
	Name  string // npm module name
	Dir   string // hashed directory relative to the output root
	Hash  string // tree hash prefix
	Files int    // number of files copied
	Entry string // entry point relative to Dir, or "" when none exists
}

// BuildManifest is the content of manifest.json.
type BuildManifest struct {
	Assets  Manifest          `json:"assets"`
	Modules ModuleManifest    `json:"modules"`
	Imports map[string]string `json:"imports"`
}
