package checks

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// collectFiles returns regular files under root whose name passes keep,
// sorted by path. Unreadable subtrees are skipped.
func collectFiles(root string, keep func(name string) bool) []string {
	var files []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if keep(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files
}

func hasExt(exts ...string) func(string) bool {
	return func(name string) bool {
		ext := filepath.Ext(name)
		for _, want := range exts {
			if ext == want {
				return true
			}
		}
		return false
	}
}

// relPath renders path relative to base with forward slashes, the form
// used for report keys.
func relPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func relPaths(base string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, relPath(base, p))
	}
	return out
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
