package codescope

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ReadmeName is the file LoadReadme looks for.
const ReadmeName = "README.md"

// ReadmeFallback is returned by LoadReadme when the project has no README.
const ReadmeFallback = "No README.md found.\n"

// LoadReadme returns the contents of README.md directly under projectPath,
// or ReadmeFallback if it does not exist. Other read errors are returned.
func LoadReadme(projectPath string) (string, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, ReadmeName))
	if errors.Is(err, fs.ErrNotExist) {
		return ReadmeFallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("codescope: read %s: %w", ReadmeName, err)
	}
	return string(data), nil
}
