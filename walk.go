package codescope

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/jward/codescope/internal/extract"
)

// sourceFiles lists every source file under root in traversal order,
// skipping excluded directories. Files whose parent directory is excluded
// are dropped as well. Unreadable directories abort the walk.
func (e *Engine) sourceFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := relPath(root, path)
		if d.IsDir() {
			if path != root && e.excluded(rel) {
				e.logger.Debug("walk: skipping excluded directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := extract.LanguageForFile(path); !ok {
			return nil
		}
		if e.excluded(filepath.Dir(rel)) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("codescope: walk %s: %w", root, err)
	}
	return paths, nil
}
