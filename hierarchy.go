package codescope

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// RenderTree renders root as an indented tree using the default Engine.
func RenderTree(root string) (string, error) {
	return New().RenderTree(root, true)
}

// RenderTree renders the directory tree under root, depth first. Each
// directory appears as "name/" indented by its depth; its files follow one
// level deeper when includeFiles is set. Children appear in os.ReadDir
// order. Excluded directories are omitted together with their subtree. A
// directory that cannot be read fails the whole render.
func (e *Engine) RenderTree(root string, includeFiles bool) (string, error) {
	var b strings.Builder
	if err := e.renderDir(&b, root, root, 0, includeFiles); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (e *Engine) renderDir(b *strings.Builder, root, dir string, depth int, includeFiles bool) error {
	if e.excluded(relPath(root, dir)) {
		e.logger.Debug("tree: skipping excluded directory", "path", dir)
		return nil
	}

	indent := strings.Repeat(" ", e.indentWidth*depth)
	b.WriteString(indent + dirName(dir) + "/\n")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("codescope: read directory %s: %w", dir, err)
	}

	fileIndent := indent + strings.Repeat(" ", e.indentWidth)
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			if err := e.renderDir(b, root, path, depth+1, includeFiles); err != nil {
				return err
			}
		case includeFiles && isRegularFile(entry, path):
			b.WriteString(fileIndent + entry.Name() + "\n")
		}
	}
	return nil
}

// dirName is the display name of a directory. Relative markers such as "."
// resolve to the name of the directory they point at.
func dirName(dir string) string {
	name := filepath.Base(dir)
	if name != "." && name != ".." {
		return name
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return name
	}
	name = filepath.Base(abs)
	if name == string(filepath.Separator) {
		return ""
	}
	return name
}

// isRegularFile reports whether entry is a regular file or a symlink that
// resolves to one. Symlinked directories are never descended.
func isRegularFile(entry fs.DirEntry, path string) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
