package assets

import (
	"os"
	"path"
	"path/filepath"

	"github.com/matzehuels/datanate/pkg/errors"
)

// AssetsDir is the output subdirectory holding hashed first-party files.
const AssetsDir = "assets"

// DefaultVendorDir is the output subdirectory holding vendored modules.
const DefaultVendorDir = "d3"

// Clean removes hashed artifacts left by previous builds: files matching
// <name>-<hash>.<ext> in <outDir>/assets and directories matching
// <module>-<hash> in <outDir>/<vendorDir>. Other files are left alone.
//
// It returns the removed entries as slash-separated paths relative to
// outDir. Missing directories are not an error.
func Clean(outDir, vendorDir string) ([]string, error) {
	if vendorDir == "" {
		vendorDir = DefaultVendorDir
	}

	var removed []string
	files, err := removeMatching(outDir, AssetsDir, func(e os.DirEntry) bool {
		return !e.IsDir() && IsHashedName(e.Name())
	})
	if err != nil {
		return removed, err
	}
	removed = append(removed, files...)

	dirs, err := removeMatching(outDir, vendorDir, func(e os.DirEntry) bool {
		return e.IsDir() && IsHashedDir(e.Name())
	})
	removed = append(removed, dirs...)
	return removed, err
}

func removeMatching(outDir, sub string, match func(os.DirEntry) bool) ([]string, error) {
	dir := filepath.Join(outDir, filepath.FromSlash(sub))
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutputWrite, err, "read %s", dir)
	}

	var removed []string
	for _, e := range entries {
		if !match(e) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return removed, errors.Wrap(errors.ErrCodeOutputWrite, err, "remove %s", filepath.Join(dir, e.Name()))
		}
		removed = append(removed, path.Join(sub, e.Name()))
	}
	return removed, nil
}
