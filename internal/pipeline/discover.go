package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/backmassage/assetpress/internal/logging"
)

// Discover walks inputDir and returns every regular file, sorted
// lexicographically for deterministic submission order. Traversal errors
// (e.g. permission denied on a subtree) are reported and skipped, never
// fatal: the rest of the tree is still processed.
func Discover(inputDir string, log *logging.Logger) []string {
	var files []string
	_ = filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("Cannot traverse %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	sort.Strings(files)
	return files
}
