package assets

import (
	"encoding/json"
	"path"
)

// ImportMap is a browser import map.
type ImportMap struct {
	Imports map[string]string `json:"imports"`
}

// JSON encodes the import map. Keys are sorted, so equal maps always
// encode to equal bytes.
func (m ImportMap) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// BuildImportMap resolves module specifiers to hashed URLs.
//
// Each local module found in the manifest is mapped twice: by its bare
// name ("helpers.js") and by its unhashed URL ("/assets/helpers.js"), so
// that both bare and relative imports between local modules resolve.
// Each vendored module with an entry point maps its name to
// "/<dir>/<entry>". Local modules absent from the manifest and vendored
// modules without an entry point are left out.
func BuildImportMap(manifest Manifest, localModules []string, modules []VendoredModule) ImportMap {
	imports := make(map[string]string)
	for _, name := range localModules {
		url := manifest.URL(name)
		if url == "" {
			continue
		}
		imports[name] = url
		imports["/"+path.Join(AssetsDir, name)] = url
	}
	for _, m := range modules {
		if m.Entry == "" {
			continue
		}
		imports[m.Name] = "/" + path.Join(m.Dir, m.Entry)
	}
	return ImportMap{Imports: imports}
}
