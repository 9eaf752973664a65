package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/matzehuels/datanate/pkg/errors"
)

// TreeFiles lists the regular files under dir as slash-separated paths
// relative to dir, sorted lexicographically.
func TreeFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// HashTree hashes the contents of every file under dir, concatenated in
// sorted path order, and returns the hash prefix together with the file
// list. The result changes whenever any file's content changes.
func HashTree(dir string) (string, []string, error) {
	files, err := TreeFiles(dir)
	if err != nil {
		return "", nil, err
	}

	h := sha256.New()
	for _, rel := range files {
		if err := appendFile(h, filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			return "", nil, err
		}
	}
	return hex.EncodeToString(h.Sum(nil))[:HashWidth], files, nil
}

func appendFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}

// CopyTree copies the given files (relative to src) into dst unmodified.
// Failures to write are OUTPUT_WRITE errors.
func CopyTree(src, dst string, files []string) error {
	for _, rel := range files {
		from := filepath.Join(src, filepath.FromSlash(rel))
		to := filepath.Join(dst, filepath.FromSlash(rel))
		if err := copyFile(from, to); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(from, to string) error {
	in, err := os.Open(from)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", from)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(to), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "create directory %s", filepath.Dir(to))
	}
	out, err := os.Create(to)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "create %s", to)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "write %s", to)
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "close %s", to)
	}
	return nil
}
